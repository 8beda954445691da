package sessions

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/AditiGusain-14/AI-PrivacyCheck/internal/common"
	"github.com/AditiGusain-14/AI-PrivacyCheck/internal/filex"
	"github.com/AditiGusain-14/AI-PrivacyCheck/internal/server/models"
)

// FileRepository stores one JSON file per user under dir. Top-level keys
// are session names, values are arrays of {role, content} objects. Every
// save rewrites the whole file via a temp file and rename.
type FileRepository struct {
	dir string
}

func NewFileRepository(dir string) *FileRepository {
	return &FileRepository{dir: dir}
}

func (r *FileRepository) pathFor(username string) string {
	return filepath.Join(r.dir, fmt.Sprintf("%s_chat.json", username))
}

func (r *FileRepository) Load(ctx context.Context, username string) (models.SessionMap, error) {
	path := r.pathFor(username)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.SessionMap{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	sessions := models.SessionMap{}
	if err := json.Unmarshal(data, &sessions); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, common.ErrorCorruptData)
	}

	return sessions, nil
}

func (r *FileRepository) Save(ctx context.Context, username string, sessions models.SessionMap) error {
	data, err := json.Marshal(sessions)
	if err != nil {
		return fmt.Errorf("encode sessions for %q: %w", username, err)
	}

	return filex.WriteFileAtomic(r.pathFor(username), data, 0o600)
}
