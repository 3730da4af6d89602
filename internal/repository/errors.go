package repository

import (
	"errors"
	"strings"
)

// Common repository errors
var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEntry = errors.New("duplicate entry")
	ErrInvalidInput   = errors.New("invalid input")
)

// isDuplicateKeyError checks if the error is a duplicate key violation
func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "duplicate key") ||
		strings.Contains(errStr, "UNIQUE constraint") ||
		strings.Contains(errStr, "23505") // PostgreSQL unique violation code
}

// isForeignKeyError checks if the error is a foreign key violation
func isForeignKeyError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "foreign key") ||
		strings.Contains(errStr, "FOREIGN KEY constraint") ||
		strings.Contains(errStr, "23503") // PostgreSQL foreign key violation code
}
