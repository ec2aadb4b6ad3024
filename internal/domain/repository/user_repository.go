// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"escuela/internal/domain/entity"
)

// ErrUserNotFound is returned when a user profile does not exist.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the interface for user-profile database operations.
type UserRepository interface {
	// FindUserByID retrieves a user profile by its document ID.
	// Returns ErrUserNotFound if the profile does not exist.
	FindUserByID(ctx context.Context, id string) (*entity.UserProfile, error)

	// FindUsersByRole retrieves every user profile holding the given role.
	FindUsersByRole(ctx context.Context, role entity.Role) ([]*entity.UserProfile, error)

	// ReplaceDeviceTokens overwrites the user's full token list. This is a
	// whole-field replacement, not a per-element removal; two concurrent
	// writers can race and the last write wins.
	ReplaceDeviceTokens(ctx context.Context, userID string, tokens []string) error
}
