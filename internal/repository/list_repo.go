package repository

import (
	"context"
	"time"

	"github.com/S-Rohan-Kumar/CeniDiary-V2/internal/db"
	"github.com/S-Rohan-Kumar/CeniDiary-V2/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ListRepository struct {
	col *mongo.Collection
}

func NewListRepository() *ListRepository {
	return &ListRepository{col: db.DB().Collection("lists")}
}

func (r *ListRepository) Insert(ctx context.Context, l *models.ListDoc) error {
	_, err := r.col.InsertOne(ctx, l)
	return err
}

func (r *ListRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.ListDoc, error) {
	var l models.ListDoc
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&l)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &l, err
}

func (r *ListRepository) FindByOwner(ctx context.Context, ownerID int) ([]models.ListDoc, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cur, err := r.col.Find(ctx, bson.M{"ownerId": ownerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.ListDoc
	for cur.Next(ctx) {
		var l models.ListDoc
		if err := cur.Decode(&l); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, cur.Err()
}

// UpdateFields aplica un $set parcial (title/description/isPublic).
// ownerId nunca entra acá: el owner es inmutable.
func (r *ListRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, update bson.M) error {
	update["updatedAt"] = time.Now().UTC()
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": update},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *ListRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// AddMedia agrega con semántica de set y devuelve la lista actualizada.
func (r *ListRepository) AddMedia(ctx context.Context, id primitive.ObjectID, mediaID primitive.ObjectID) (*models.ListDoc, error) {
	return r.updateMembership(ctx, id, bson.M{"$addToSet": bson.M{"media": mediaID}})
}

// RemoveMedia saca la media; si no estaba es un no-op, no un error.
func (r *ListRepository) RemoveMedia(ctx context.Context, id primitive.ObjectID, mediaID primitive.ObjectID) (*models.ListDoc, error) {
	return r.updateMembership(ctx, id, bson.M{"$pull": bson.M{"media": mediaID}})
}

func (r *ListRepository) updateMembership(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.ListDoc, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var l models.ListDoc
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&l)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}
