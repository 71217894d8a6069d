package repository

import (
	"context"

	"github.com/S-Rohan-Kumar/CeniDiary-V2/internal/db"
	"github.com/S-Rohan-Kumar/CeniDiary-V2/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReviewRepository struct {
	col *mongo.Collection
}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{col: db.DB().Collection("reviews")}
}

// Insert crea la review. El índice único (ownerId, mediaId) hace que un
// segundo insert del mismo par falle con duplicate key.
func (r *ReviewRepository) Insert(ctx context.Context, rev *models.ReviewDoc) error {
	res, err := r.col.InsertOne(ctx, rev)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		rev.ID = oid
	}
	return nil
}

func (r *ReviewRepository) FindOne(ctx context.Context, ownerID int, mediaID primitive.ObjectID) (*models.ReviewDoc, error) {
	var rev models.ReviewDoc
	err := r.col.FindOne(ctx, bson.M{"ownerId": ownerID, "mediaId": mediaID}).Decode(&rev)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &rev, err
}

func (r *ReviewRepository) FindByMedia(ctx context.Context, mediaID primitive.ObjectID) ([]models.ReviewDoc, error) {
	return r.find(ctx, bson.M{"mediaId": mediaID})
}

func (r *ReviewRepository) FindByOwner(ctx context.Context, ownerID int) ([]models.ReviewDoc, error) {
	return r.find(ctx, bson.M{"ownerId": ownerID})
}

func (r *ReviewRepository) find(ctx context.Context, filter bson.M) ([]models.ReviewDoc, error) {
	// más nuevas primero
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.ReviewDoc
	for cur.Next(ctx) {
		var rev models.ReviewDoc
		if err := cur.Decode(&rev); err != nil {
			return nil, err
		}
		out = append(out, rev)
	}
	return out, cur.Err()
}

// DeleteByOwnerAndMedia borra la review del par (para el cascade de unwatch).
// Devuelve cuántas borró (0 o 1).
func (r *ReviewRepository) DeleteByOwnerAndMedia(ctx context.Context, ownerID int, mediaID primitive.ObjectID) (int64, error) {
	res, err := r.col.DeleteMany(ctx, bson.M{"ownerId": ownerID, "mediaId": mediaID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// CountsBySentiment agrupa las reviews de una media por sentiment.
// Solo devuelve los sentiments presentes; el servicio rellena los ceros.
func (r *ReviewRepository) CountsBySentiment(ctx context.Context, mediaID primitive.ObjectID) (map[string]int, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"mediaId": mediaID}}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$sentiment",
			"count": bson.M{"$sum": 1},
		}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	counts := map[string]int{}
	for cur.Next(ctx) {
		var row struct {
			Sentiment string `bson:"_id"`
			Count     int    `bson:"count"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, err
		}
		counts[row.Sentiment] = row.Count
	}
	return counts, cur.Err()
}
