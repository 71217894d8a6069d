package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type UserDoc struct {
	UserID       int    `json:"userId" bson:"userId"`
	Username     string `json:"username" bson:"username"`
	Email        string `json:"email" bson:"email"`
	PasswordHash string `json:"-" bson:"passwordHash"`
	Fullname     string `json:"fullname" bson:"fullname"`
	Avatar       string `json:"avatar,omitempty" bson:"avatar,omitempty"`
	About        string `json:"about,omitempty" bson:"about,omitempty"`

	// Sets de membresía: arrays en Mongo pero con semántica de conjunto
	// ($addToSet / $pull), nunca con duplicados.
	Favorites    []primitive.ObjectID `json:"favorites" bson:"favorites"`
	Watchlist    []primitive.ObjectID `json:"watchlist" bson:"watchlist"`
	WatchHistory []primitive.ObjectID `json:"watchHistory" bson:"watchHistory"`

	// Contador de reviews publicadas (se incrementa al crear una review).
	WatchNumber int `json:"watchNumber" bson:"watchNumber"`

	Followers []int `json:"followers" bson:"followers"`
	Following []int `json:"following" bson:"following"`

	CreatedAt string `json:"createdAt" bson:"createdAt"`
	UpdatedAt string `json:"updatedAt" bson:"updatedAt"`
}

// PublicUser es lo único que se expone de otros usuarios
// (nunca email, hash ni tokens).
type PublicUser struct {
	UserID   int    `json:"userId" bson:"userId"`
	Username string `json:"username" bson:"username"`
	Fullname string `json:"fullname" bson:"fullname"`
	Avatar   string `json:"avatar,omitempty" bson:"avatar,omitempty"`
}

// PublicProfile es el perfil que ve cualquiera en /users/u/{username}.
type PublicProfile struct {
	PublicUser
	About          string `json:"about,omitempty"`
	TotalReviews   int    `json:"totalReviews"`
	FollowersCount int    `json:"followersCount"`
	FollowingCount int    `json:"followingCount"`
	CreatedAt      string `json:"createdAt"`
}

// UserStats es la respuesta de /social/status.
type UserStats struct {
	TotalReviews   int  `json:"totalReviews"`
	FollowersCount int  `json:"followersCount"`
	FollowingCount int  `json:"followingCount"`
	IsFollowing    bool `json:"isFollowing"`
}
