// Package sessions persists per-user chat history: a mapping of session
// name to ordered transcript.
package sessions

import (
	"context"

	"github.com/AditiGusain-14/AI-PrivacyCheck/internal/server/models"
)

type Repository interface {
	// Load returns the user's full session map. A user with no history yet
	// yields an empty map, not an error. An unreadable backing store yields
	// common.ErrorCorruptData.
	Load(ctx context.Context, username string) (models.SessionMap, error)

	// Save replaces the user's entire stored history with the given map.
	Save(ctx context.Context, username string, sessions models.SessionMap) error
}
