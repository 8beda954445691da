// Package blob stores uploaded screenshot bytes. The analysis itself is a
// canned placeholder, but the image is kept so it can be reviewed later.
package blob

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Store writes an uploaded object and returns the storage key it was
// written under.
type Store interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
}

// RandomKey builds a date-partitioned object key for an upload.
func RandomKey(username string) string {
	d := time.Now()
	return fmt.Sprintf("screenshots/%s/%d/%d/%d/%v", username, d.Year(), d.Month(), d.Day(), uuid.New())
}
