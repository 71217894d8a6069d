package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tipos de media soportados. TMDB reutiliza ids numéricos entre películas y
// series, así que la identidad local siempre es el par (tmdbId, mediaType).
const (
	MediaTypeMovie  = "movie"
	MediaTypeSeries = "series"
)

func ValidMediaType(t string) bool {
	return t == MediaTypeMovie || t == MediaTypeSeries
}

// MediaDoc es el espejo local de una película o serie de TMDB.
// Se crea lazy la primera vez que alguien la referencia y solo se
// vuelve a escribir completa en un re-sync (nunca parches parciales).
type MediaDoc struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	TMDBID       int                `json:"tmdbId" bson:"tmdbId"`
	MediaType    string             `json:"mediaType" bson:"mediaType"` // movie|series
	Title        string             `json:"title" bson:"title"`
	PosterPath   string             `json:"posterPath,omitempty" bson:"posterPath,omitempty"`
	BackdropPath string             `json:"backdropPath,omitempty" bson:"backdropPath,omitempty"`
	Overview     string             `json:"overview,omitempty" bson:"overview,omitempty"`
	ReleaseDate  string             `json:"releaseDate,omitempty" bson:"releaseDate,omitempty"`
	GenreIDs     []int              `json:"genreIds" bson:"genreIds"`
	VoteAverage  float64            `json:"voteAverage" bson:"voteAverage"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}
