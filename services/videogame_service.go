package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/Adria66/videogame-keeper/helper"
	"github.com/Adria66/videogame-keeper/models"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNotFound = errors.New("videogame not found")
	ErrNotOwner = errors.New("videogame belongs to another user")
)

type VideogameService struct {
	videogameRepo VideogameStore
	userRepo      UserStore
}

func NewVideogameService(videogameRepo VideogameStore, userRepo UserStore) *VideogameService {
	return &VideogameService{
		videogameRepo: videogameRepo,
		userRepo:      userRepo,
	}
}

// Create stores a new videogame from the submitted form and appends its
// id to the owner's reference list. The genre and platform fields arrive
// as single comma-separated strings and are stored as ordered lists; any
// other submitted field is stored as given.
//
// Creating the record and linking it are two store operations. If the
// link fails the orphan record is deleted again, so a user never ends up
// with a videogame that exists but is not listed.
func (s *VideogameService) Create(ctx context.Context, ownerEmail string, form url.Values) (primitive.ObjectID, error) {
	doc := helper.FlattenForm(form)
	doc["genre"] = helper.SplitList(form.Get("genre"))
	doc["platform"] = helper.SplitList(form.Get("platform"))

	id, err := s.videogameRepo.Create(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("create videogame: %w", err)
	}

	if err := s.userRepo.AppendVideogame(ctx, ownerEmail, id); err != nil {
		if delErr := s.videogameRepo.DeleteByID(ctx, id); delErr != nil {
			logrus.WithError(delErr).WithField("id", id.Hex()).Error("could not delete orphan videogame")
		}
		return primitive.NilObjectID, fmt.Errorf("link videogame to %s: %w", ownerEmail, err)
	}

	logrus.WithFields(logrus.Fields{"id": id.Hex(), "owner": ownerEmail}).Info("videogame created")
	return id, nil
}

// ListForUser expands the owner's reference list to full records, in
// list order. References that no longer resolve are skipped.
func (s *VideogameService) ListForUser(ctx context.Context, email string) ([]models.Videogame, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("look up %s: %w", email, err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	games, err := s.videogameRepo.FindByIDs(ctx, user.Videogames)
	if err != nil {
		return nil, fmt.Errorf("expand videogames of %s: %w", email, err)
	}
	return games, nil
}

func (s *VideogameService) Get(ctx context.Context, id primitive.ObjectID) (*models.Videogame, error) {
	game, err := s.videogameRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find videogame %s: %w", id.Hex(), err)
	}
	if game == nil {
		return nil, ErrNotFound
	}
	return game, nil
}

// Edit applies the submitted fields to the record, leaving unsubmitted
// fields unchanged. Only the owner may edit a record.
func (s *VideogameService) Edit(ctx context.Context, ownerEmail string, id primitive.ObjectID, form url.Values) error {
	if err := s.checkOwnership(ctx, ownerEmail, id); err != nil {
		return err
	}

	fields := helper.FlattenForm(form)
	if _, ok := fields["genre"]; ok {
		fields["genre"] = helper.SplitList(form.Get("genre"))
	}
	if _, ok := fields["platform"]; ok {
		fields["platform"] = helper.SplitList(form.Get("platform"))
	}

	if err := s.videogameRepo.UpdateByID(ctx, id, fields); err != nil {
		return fmt.Errorf("update videogame %s: %w", id.Hex(), err)
	}
	return nil
}

// Delete removes the record and pulls its id from every user's
// reference list, so no list keeps a dangling reference. Only the owner
// may delete a record.
func (s *VideogameService) Delete(ctx context.Context, ownerEmail string, id primitive.ObjectID) error {
	if err := s.checkOwnership(ctx, ownerEmail, id); err != nil {
		return err
	}

	if err := s.videogameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete videogame %s: %w", id.Hex(), err)
	}
	if err := s.userRepo.PullVideogame(ctx, id); err != nil {
		return fmt.Errorf("unlink videogame %s: %w", id.Hex(), err)
	}

	logrus.WithFields(logrus.Fields{"id": id.Hex(), "owner": ownerEmail}).Info("videogame deleted")
	return nil
}

func (s *VideogameService) checkOwnership(ctx context.Context, email string, id primitive.ObjectID) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("look up %s: %w", email, err)
	}
	if user == nil {
		return ErrUserNotFound
	}
	if !user.Owns(id) {
		return ErrNotOwner
	}
	return nil
}
