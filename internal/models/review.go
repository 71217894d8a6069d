package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Los cuatro valores posibles de sentiment, tal cual se guardan.
const (
	SentimentSkip       = "Skip"
	SentimentTimepass   = "Timepass"
	SentimentGoForIt    = "Go for it"
	SentimentPerfection = "Perfection"
)

// Sentiments en orden fijo, para dar counts con ceros incluidos.
var Sentiments = []string{
	SentimentSkip,
	SentimentTimepass,
	SentimentGoForIt,
	SentimentPerfection,
}

func ValidSentiment(s string) bool {
	for _, v := range Sentiments {
		if s == v {
			return true
		}
	}
	return false
}

// ReviewDoc: una review por (ownerId, mediaId), garantizado por índice único.
type ReviewDoc struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Sentiment string             `json:"sentiment" bson:"sentiment"`
	Comment   string             `json:"comment" bson:"comment"`
	OwnerID   int                `json:"ownerId" bson:"ownerId"`
	MediaID   primitive.ObjectID `json:"mediaId" bson:"mediaId"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// ReviewWithOwner: review hidratada con los campos públicos del autor.
type ReviewWithOwner struct {
	ReviewDoc `bson:",inline"`
	Owner     PublicUser `json:"owner" bson:"owner"`
}

// ReviewWithMedia: review hidratada con la película completa.
type ReviewWithMedia struct {
	ReviewDoc `bson:",inline"`
	Media     MediaDoc `json:"media" bson:"media"`
}

// SentimentStats es la respuesta de /reviews/stats. Counts siempre trae
// los cuatro sentiments aunque estén en cero.
type SentimentStats struct {
	Counts     map[string]int `json:"counts"`
	TotalVotes int            `json:"totalVotes"`
}

// ZeroStats devuelve stats bien formadas con todo en cero (el read-path
// nunca falla por una película desconocida).
func ZeroStats() SentimentStats {
	counts := make(map[string]int, len(Sentiments))
	for _, s := range Sentiments {
		counts[s] = 0
	}
	return SentimentStats{Counts: counts, TotalVotes: 0}
}
