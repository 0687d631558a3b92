package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Videogame struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Genre    []string           `bson:"genre" json:"genre"`
	Platform []string           `bson:"platform" json:"platform"`

	ImageURL    string `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`

	// Extra keeps any other fields the creation form submitted. The
	// schema is deliberately permissive beyond the two array fields.
	Extra map[string]interface{} `bson:",inline" json:"-"`
}
