// Package repomanager vends concrete repository implementations for the
// configured storage backend.
package repomanager

import (
	"context"

	"github.com/AditiGusain-14/AI-PrivacyCheck/internal/server/repositories/sessions"
	"github.com/AditiGusain-14/AI-PrivacyCheck/internal/server/repositories/users"
)

// RepositoryManager abstracts over the file and Postgres backends.
type RepositoryManager interface {
	Users() users.Repository
	Sessions() sessions.Repository

	// RunMigrations prepares the backing store. A no-op for the file backend.
	RunMigrations(ctx context.Context) error

	Close() error
}
