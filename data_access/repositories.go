package data_access

import (
	"context"

	"github.com/Adria66/videogame-keeper/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepository struct {
	db         *MongoDB
	collection *mongo.Collection
}

type VideogameRepository struct {
	db         *MongoDB
	collection *mongo.Collection
}

func NewUserRepository(db *MongoDB) *UserRepository {
	return &UserRepository{
		db:         db,
		collection: db.Collection("users"),
	}
}

func NewVideogameRepository(db *MongoDB) *VideogameRepository {
	return &VideogameRepository{
		db:         db,
		collection: db.Collection("videogames"),
	}
}

// UserRepository methods

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	_, err := r.collection.InsertOne(ctx, user)
	return err
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// AppendVideogame pushes a videogame id onto the owner's reference list.
func (r *UserRepository) AppendVideogame(ctx context.Context, email string, id primitive.ObjectID) error {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$push": bson.M{"videogames": id}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// PullVideogame removes a videogame id from every user's reference list,
// so a deleted record never leaves dangling references behind.
func (r *UserRepository) PullVideogame(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.UpdateMany(ctx,
		bson.M{"videogames": id},
		bson.M{"$pull": bson.M{"videogames": id}},
	)
	return err
}

// VideogameRepository methods

func (r *VideogameRepository) Create(ctx context.Context, doc bson.M) (primitive.ObjectID, error) {
	res, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, mongo.ErrNilDocument
	}
	return id, nil
}

func (r *VideogameRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Videogame, error) {
	var game models.Videogame
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&game)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// FindByIDs fetches the given records and returns them in the order of
// ids. Ids with no matching record are skipped.
func (r *VideogameRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Videogame, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var found []models.Videogame
	if err = cursor.All(ctx, &found); err != nil {
		return nil, err
	}

	byID := make(map[primitive.ObjectID]models.Videogame, len(found))
	for _, game := range found {
		byID[game.ID] = game
	}

	games := make([]models.Videogame, 0, len(ids))
	for _, id := range ids {
		if game, ok := byID[id]; ok {
			games = append(games, game)
		}
	}
	return games, nil
}

// UpdateByID sets only the submitted fields, leaving the rest of the
// document unchanged.
func (r *VideogameRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	if len(fields) == 0 {
		return nil
	}
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": fields},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *VideogameRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
