package db

import (
	"context"
	"log"
	"time"

	"github.com/S-Rohan-Kumar/CeniDiary-V2/internal/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var mongoClient *mongo.Client
var mongoDB *mongo.Database

func InitMongo(cfg *config.Config) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("[mongo] error conectando: %v", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("[mongo] ping falló: %v", err)
	}

	mongoClient = client
	mongoDB = client.Database(cfg.MongoDB)
	log.Printf("[mongo] conectado a %s / DB=%s\n", cfg.MongoURI, cfg.MongoDB)

	ensureIndexes(ctx)
}

// ensureIndexes crea los índices únicos de los que dependen los invariantes:
// una película por (tmdbId, mediaType), una review por (ownerId, mediaId),
// username y email únicos.
func ensureIndexes(ctx context.Context) {
	media := mongoDB.Collection("media")
	if _, err := media.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "tmdbId", Value: 1}, {Key: "mediaType", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		log.Fatalf("[mongo] índice media: %v", err)
	}

	reviews := mongoDB.Collection("reviews")
	if _, err := reviews.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "ownerId", Value: 1}, {Key: "mediaId", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		log.Fatalf("[mongo] índice reviews: %v", err)
	}

	users := mongoDB.Collection("users")
	userIdx := []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := users.Indexes().CreateMany(ctx, userIdx); err != nil {
		log.Fatalf("[mongo] índices users: %v", err)
	}
}

func DB() *mongo.Database {
	return mongoDB
}
