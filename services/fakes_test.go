package services

import (
	"context"
	"errors"

	"github.com/Adria66/videogame-keeper/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// In-memory stands-ins for the Mongo repositories.

type fakeUserStore struct {
	users     map[string]*models.User
	appendErr error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*models.User)}
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) error {
	if _, ok := f.users[user.Email]; ok {
		return errors.New("duplicate key")
	}
	clone := *user
	clone.ID = primitive.NewObjectID()
	f.users[user.Email] = &clone
	return nil
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, nil
	}
	clone := *user
	clone.Videogames = append([]primitive.ObjectID(nil), user.Videogames...)
	return &clone, nil
}

func (f *fakeUserStore) AppendVideogame(_ context.Context, email string, id primitive.ObjectID) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	user, ok := f.users[email]
	if !ok {
		return mongo.ErrNoDocuments
	}
	user.Videogames = append(user.Videogames, id)
	return nil
}

func (f *fakeUserStore) PullVideogame(_ context.Context, id primitive.ObjectID) error {
	for _, user := range f.users {
		kept := user.Videogames[:0]
		for _, ref := range user.Videogames {
			if ref != id {
				kept = append(kept, ref)
			}
		}
		user.Videogames = kept
	}
	return nil
}

type fakeVideogameStore struct {
	docs map[primitive.ObjectID]bson.M
}

func newFakeVideogameStore() *fakeVideogameStore {
	return &fakeVideogameStore{docs: make(map[primitive.ObjectID]bson.M)}
}

func (f *fakeVideogameStore) Create(_ context.Context, doc bson.M) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	stored := bson.M{}
	for k, v := range doc {
		stored[k] = v
	}
	f.docs[id] = stored
	return id, nil
}

func gameFromDoc(id primitive.ObjectID, doc bson.M) models.Videogame {
	game := models.Videogame{ID: id}
	if v, ok := doc["name"].(string); ok {
		game.Name = v
	}
	if v, ok := doc["genre"].([]string); ok {
		game.Genre = v
	}
	if v, ok := doc["platform"].([]string); ok {
		game.Platform = v
	}
	if v, ok := doc["imageUrl"].(string); ok {
		game.ImageURL = v
	}
	if v, ok := doc["description"].(string); ok {
		game.Description = v
	}
	return game
}

func (f *fakeVideogameStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Videogame, error) {
	doc, ok := f.docs[id]
	if !ok {
		return nil, nil
	}
	game := gameFromDoc(id, doc)
	return &game, nil
}

func (f *fakeVideogameStore) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.Videogame, error) {
	games := make([]models.Videogame, 0, len(ids))
	for _, id := range ids {
		if doc, ok := f.docs[id]; ok {
			games = append(games, gameFromDoc(id, doc))
		}
	}
	return games, nil
}

func (f *fakeVideogameStore) UpdateByID(_ context.Context, id primitive.ObjectID, fields bson.M) error {
	doc, ok := f.docs[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	for k, v := range fields {
		doc[k] = v
	}
	return nil
}

func (f *fakeVideogameStore) DeleteByID(_ context.Context, id primitive.ObjectID) error {
	if _, ok := f.docs[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(f.docs, id)
	return nil
}
