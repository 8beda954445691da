package users

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

const credentialFileName = "users.json"

// FileRepository keeps all credentials in a single JSON object file,
// top-level keys are usernames and values are hex-encoded digests. Every
// mutation rewrites the whole file; concurrent writers from separate
// processes can clobber each other (single-process use only).
type FileRepository struct {
	path string
}

func NewFileRepository(dir string) *FileRepository {
	return &FileRepository{path: filepath.Join(dir, credentialFileName)}
}

func (r *FileRepository) load() (map[string]string, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", r.path, err)
	}

	creds := map[string]string{}
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.path, common.ErrorCorruptData)
	}

	return creds, nil
}

func (r *FileRepository) save(creds map[string]string) error {
	data, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}

	return filex.WriteFileAtomic(r.path, data, 0o600)
}

func (r *FileRepository) Create(ctx context.Context, user *models.User) error {
	creds, err := r.load()
	if err != nil {
		return err
	}

	if _, ok := creds[user.UserName]; ok {
		return fmt.Errorf("user %q: %w", user.UserName, common.ErrorAlreadyExists)
	}

	creds[user.UserName] = user.PasswordDigest
	return r.save(creds)
}

func (r *FileRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	creds, err := r.load()
	if err != nil {
		return nil, err
	}

	digest, ok := creds[username]
	if !ok {
		return nil, fmt.Errorf("user %q: %w", username, common.ErrorNotFound)
	}

	return &models.User{UserName: username, PasswordDigest: digest}, nil
}
