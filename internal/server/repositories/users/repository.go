// Package users persists the credential store: a mapping of username to
// password digest.
package users

import (
	"context"

	"github.com/AditiGusain-14/AI-PrivacyCheck/internal/server/models"
)

type Repository interface {
	// Create stores a new user. Returns common.ErrorAlreadyExists when the
	// username is taken.
	Create(ctx context.Context, user *models.User) error

	// GetByUsername returns common.ErrorNotFound when the user is unknown.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}
