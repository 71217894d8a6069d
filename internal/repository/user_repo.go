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

// Campos sobre los que operan los toggles de librería.
const (
	FieldWatchlist    = "watchlist"
	FieldFavorites    = "favorites"
	FieldWatchHistory = "watchHistory"
)

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository() *UserRepository {
	return &UserRepository{col: db.DB().Collection("users")}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.UserDoc, error) {
	var u models.UserDoc
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &u, err
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*models.UserDoc, error) {
	var u models.UserDoc
	err := r.col.FindOne(ctx, bson.M{"username": username}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &u, err
}

func (r *UserRepository) FindByID(ctx context.Context, userID int) (*models.UserDoc, error) {
	var u models.UserDoc
	err := r.col.FindOne(ctx, bson.M{"userId": userID}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &u, err
}

// FindPublicByIDs devuelve los campos públicos de varios usuarios,
// indexados por userId (para hidratar reviews).
func (r *UserRepository) FindPublicByIDs(ctx context.Context, userIDs []int) (map[int]models.PublicUser, error) {
	out := make(map[int]models.PublicUser, len(userIDs))
	if len(userIDs) == 0 {
		return out, nil
	}

	cur, err := r.col.Find(ctx, bson.M{"userId": bson.M{"$in": userIDs}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var u models.PublicUser
		if err := cur.Decode(&u); err != nil {
			return nil, err
		}
		out[u.UserID] = u
	}
	return out, cur.Err()
}

func (r *UserRepository) GetNextUserID(ctx context.Context) (int, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "userId", Value: -1}})
	var u models.UserDoc
	err := r.col.FindOne(ctx, bson.M{}, opts).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return u.UserID + 1, nil
}

func (r *UserRepository) Insert(ctx context.Context, u *models.UserDoc) error {
	_, err := r.col.InsertOne(ctx, u)
	return err
}

// UpdateByID aplica un $set parcial sobre el usuario.
func (r *UserRepository) UpdateByID(ctx context.Context, userID int, update bson.M) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"userId": userID},
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

// AddToSet agrega la media al set indicado solo si no estaba.
func (r *UserRepository) AddToSet(ctx context.Context, userID int, field string, mediaID primitive.ObjectID) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"userId": userID},
		bson.M{"$addToSet": bson.M{field: mediaID}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// PullFromSet saca la media del set; no-op si no estaba.
func (r *UserRepository) PullFromSet(ctx context.Context, userID int, field string, mediaID primitive.ObjectID) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"userId": userID},
		bson.M{"$pull": bson.M{field: mediaID}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// ApplyReviewEffects aplica en un solo update los tres efectos de publicar
// una review: entra a watchHistory, sale de watchlist, sube watchNumber.
func (r *UserRepository) ApplyReviewEffects(ctx context.Context, userID int, mediaID primitive.ObjectID) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"userId": userID},
		bson.M{
			"$addToSet": bson.M{FieldWatchHistory: mediaID},
			"$pull":     bson.M{FieldWatchlist: mediaID},
			"$inc":      bson.M{"watchNumber": 1},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// DecrementWatchNumber compensa el contador cuando un unwatch borra la review.
func (r *UserRepository) DecrementWatchNumber(ctx context.Context, userID int) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"userId": userID, "watchNumber": bson.M{"$gt": 0}},
		bson.M{"$inc": bson.M{"watchNumber": -1}},
	)
	return err
}

// Follow / Unfollow tocan dos documentos (following del que sigue,
// followers del seguido), cada uno con su propio update atómico.
func (r *UserRepository) Follow(ctx context.Context, userID, targetID int) error {
	if _, err := r.col.UpdateOne(ctx,
		bson.M{"userId": userID},
		bson.M{"$addToSet": bson.M{"following": targetID}},
	); err != nil {
		return err
	}
	_, err := r.col.UpdateOne(ctx,
		bson.M{"userId": targetID},
		bson.M{"$addToSet": bson.M{"followers": userID}},
	)
	return err
}

func (r *UserRepository) Unfollow(ctx context.Context, userID, targetID int) error {
	if _, err := r.col.UpdateOne(ctx,
		bson.M{"userId": userID},
		bson.M{"$pull": bson.M{"following": targetID}},
	); err != nil {
		return err
	}
	_, err := r.col.UpdateOne(ctx,
		bson.M{"userId": targetID},
		bson.M{"$pull": bson.M{"followers": userID}},
	)
	return err
}

// SearchByUsername busca usuarios por regex (case-insensitive), solo
// campos públicos.
func (r *UserRepository) SearchByUsername(ctx context.Context, q string, limit int) ([]models.PublicUser, error) {
	opts := options.Find().SetLimit(int64(limit))

	cur, err := r.col.Find(ctx,
		bson.M{"username": bson.M{"$regex": q, "$options": "i"}},
		opts,
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.PublicUser
	for cur.Next(ctx) {
		var u models.PublicUser
		if err := cur.Decode(&u); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, cur.Err()
}
