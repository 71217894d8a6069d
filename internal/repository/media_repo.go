// internal/repository/media_repo.go
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

type MediaRepository struct {
	col *mongo.Collection
}

func NewMediaRepository() *MediaRepository {
	return &MediaRepository{col: db.DB().Collection("media")}
}

func (r *MediaRepository) GetByKey(ctx context.Context, tmdbID int, mediaType string) (*models.MediaDoc, error) {
	var m models.MediaDoc
	err := r.col.FindOne(ctx, bson.M{"tmdbId": tmdbID, "mediaType": mediaType}).Decode(&m)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &m, err
}

func (r *MediaRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.MediaDoc, error) {
	var m models.MediaDoc
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&m)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &m, err
}

func (r *MediaRepository) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.MediaDoc, error) {
	if len(ids) == 0 {
		return []models.MediaDoc{}, nil
	}

	cur, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.MediaDoc
	for cur.Next(ctx) {
		var m models.MediaDoc
		if err := cur.Decode(&m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, cur.Err()
}

// setFields son los campos denormalizados que un re-sync sobreescribe
// siempre completos.
func setFields(m *models.MediaDoc, now time.Time) bson.M {
	return bson.M{
		"tmdbId":       m.TMDBID,
		"mediaType":    m.MediaType,
		"title":        m.Title,
		"posterPath":   m.PosterPath,
		"backdropPath": m.BackdropPath,
		"overview":     m.Overview,
		"releaseDate":  m.ReleaseDate,
		"genreIds":     m.GenreIDs,
		"voteAverage":  m.VoteAverage,
		"updatedAt":    now,
	}
}

// Upsert inserta o sobreescribe la media por (tmdbId, mediaType) y devuelve
// el documento resultante. Con el índice único, dos resolve concurrentes del
// mismo par colapsan en un solo documento (last-write-wins en los campos).
func (r *MediaRepository) Upsert(ctx context.Context, m *models.MediaDoc) (*models.MediaDoc, error) {
	now := time.Now().UTC()

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var out models.MediaDoc
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"tmdbId": m.TMDBID, "mediaType": m.MediaType},
		bson.M{
			"$set":         setFields(m, now),
			"$setOnInsert": bson.M{"createdAt": now},
		},
		opts,
	).Decode(&out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// BulkUpsert aplica todos los upserts en un solo BulkWrite sin orden:
// que falle un item no frena a los demás.
func (r *MediaRepository) BulkUpsert(ctx context.Context, docs []models.MediaDoc) error {
	if len(docs) == 0 {
		return nil
	}

	now := time.Now().UTC()
	ops := make([]mongo.WriteModel, 0, len(docs))
	for i := range docs {
		m := &docs[i]
		op := mongo.NewUpdateOneModel().
			SetFilter(bson.M{"tmdbId": m.TMDBID, "mediaType": m.MediaType}).
			SetUpdate(bson.M{
				"$set":         setFields(m, now),
				"$setOnInsert": bson.M{"createdAt": now},
			}).
			SetUpsert(true)
		ops = append(ops, op)
	}

	_, err := r.col.BulkWrite(ctx, ops, options.BulkWrite().SetOrdered(false))
	return err
}
