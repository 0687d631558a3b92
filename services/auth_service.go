package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Adria66/videogame-keeper/models"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// Business failures the controllers surface as form messages.
var (
	ErrUserExists    = errors.New("user already exists")
	ErrUserNotFound  = errors.New("user does not exist")
	ErrWrongPassword = errors.New("incorrect password")
)

type AuthService struct {
	userRepo UserStore
}

func NewAuthService(userRepo UserStore) *AuthService {
	return &AuthService{
		userRepo: userRepo,
	}
}

// Register creates an account with a freshly salted bcrypt hash. An
// already-taken email is a business failure (ErrUserExists), not a
// store error.
func (s *AuthService) Register(ctx context.Context, email, password string) error {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("look up %s: %w", email, err)
	}
	if existing != nil {
		return ErrUserExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Email:      email,
		Password:   string(hashedPassword),
		Videogames: []primitive.ObjectID{},
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return fmt.Errorf("create user %s: %w", email, err)
	}

	logrus.WithField("email", email).Info("user registered")
	return nil
}

// Login verifies the candidate password against the stored hash and
// returns the user on success.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("look up %s: %w", email, err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		logrus.WithField("email", email).Warn("failed login attempt")
		return nil, ErrWrongPassword
	}

	logrus.WithField("email", email).Info("user logged in")
	return user, nil
}
