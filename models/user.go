package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"`

	// Videogames holds the ids of the records this user created, in
	// creation order. It is a weak reference list: the records live in
	// their own collection.
	Videogames []primitive.ObjectID `bson:"videogames" json:"videogames"`
}

func (u *User) Owns(id primitive.ObjectID) bool {
	for _, ref := range u.Videogames {
		if ref == id {
			return true
		}
	}
	return false
}
