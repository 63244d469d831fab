package main

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrDuplicateUsername   = errors.New("username already taken")
	ErrNotFound            = errors.New("not found")
	ErrConstraintViolation = errors.New("constraint violation")
	ErrUnavailable         = errors.New("storage unavailable") // safe to retry the whole operation
)

// classify maps driver/gorm errors onto the app taxonomy. Already
// classified errors pass through unchanged; anything unrecognized is
// returned as-is rather than guessed at.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrDuplicateUsername),
		errors.Is(err, ErrNotFound),
		errors.Is(err, ErrConstraintViolation),
		errors.Is(err, ErrUnavailable):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case isForeignKeyViolation(err):
		return ErrConstraintViolation
	case isTransient(err):
		return ErrUnavailable
	default:
		return err
	}
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// Fallbacks for dialects without error translation.
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "SQLSTATE 23505")
}

func isForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "FOREIGN KEY constraint failed") ||
		strings.Contains(msg, "SQLSTATE 23503")
}

func isTransient(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "database is locked") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "SQLSTATE 08")
}
