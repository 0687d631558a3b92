package services

import (
	"context"

	"github.com/Adria66/videogame-keeper/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserStore is the slice of the user repository the services need.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	AppendVideogame(ctx context.Context, email string, id primitive.ObjectID) error
	PullVideogame(ctx context.Context, id primitive.ObjectID) error
}

// VideogameStore is the slice of the videogame repository the services need.
type VideogameStore interface {
	Create(ctx context.Context, doc bson.M) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Videogame, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Videogame, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, fields bson.M) error
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
}
