package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ListDoc es una colección curada de películas/series de un usuario.
// El owner es inmutable después de la creación y es el único que puede
// editar, borrar o tocar la membresía.
type ListDoc struct {
	ID          primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Title       string               `json:"title" bson:"title"`
	Description string               `json:"description,omitempty" bson:"description,omitempty"`
	IsPublic    bool                 `json:"isPublic" bson:"isPublic"`
	OwnerID     int                  `json:"ownerId" bson:"ownerId"`
	MediaIDs    []primitive.ObjectID `json:"-" bson:"media"`
	CreatedAt   time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt" bson:"updatedAt"`
}

// ListWithMedia es la lista hidratada que devuelven los endpoints
// (membresía poblada, no solo ids).
type ListWithMedia struct {
	ListDoc `bson:",inline"`
	Media   []MediaDoc `json:"media" bson:"-"`
}
