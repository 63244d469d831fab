package main

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var validate = validator.New()

type credentials struct {
	Username string `validate:"required,min=3,max=64"`
	Password string `validate:"required,min=4,max=72"`
}

// Register creates a user with a bcrypt password hash. Uniqueness of
// the username is enforced by the DB index, not re-checked here.
func (s *Store) Register(ctx context.Context, username, password string) (*User, error) {
	username = strings.TrimSpace(username)
	if err := validate.Struct(credentials{Username: username, Password: password}); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := User{
		PublicID:     uuid.New().String(),
		Username:     username,
		PasswordHash: string(hash),
	}

	db, cancel := s.session(ctx)
	defer cancel()
	if err := db.Omit(clause.Associations).Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateUsername
		}
		return nil, classify(err)
	}
	return &user, nil
}

// Authenticate returns the user for a valid username/password pair.
// Unknown usernames and wrong passwords both come back as
// ErrInvalidCredentials, so callers cannot tell the two apart.
func (s *Store) Authenticate(ctx context.Context, username, password string) (*User, error) {
	username = strings.TrimSpace(username)

	db, cancel := s.session(ctx)
	defer cancel()

	var user User
	if err := db.First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, classify(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}
