package repomanager

import (
	"context"

	"github.com/AditiGusain-14/AI-PrivacyCheck/internal/filex"
	"github.com/AditiGusain-14/AI-PrivacyCheck/internal/server/repositories/sessions"
	"github.com/AditiGusain-14/AI-PrivacyCheck/internal/server/repositories/users"
)

// FileRepositoryManager vends the flat-file JSON repositories rooted at a
// data directory.
type FileRepositoryManager struct {
	dir string
}

// NewFileRepositoryManager ensures the data directory exists and returns a
// manager rooted there.
func NewFileRepositoryManager(dirName string) (*FileRepositoryManager, error) {
	dir, err := filex.EnsureSubDir(dirName)
	if err != nil {
		return nil, err
	}
	return &FileRepositoryManager{dir: dir}, nil
}

func (m *FileRepositoryManager) Users() users.Repository {
	return users.NewFileRepository(m.dir)
}

func (m *FileRepositoryManager) Sessions() sessions.Repository {
	return sessions.NewFileRepository(m.dir)
}

func (m *FileRepositoryManager) RunMigrations(ctx context.Context) error {
	return nil
}

func (m *FileRepositoryManager) Close() error {
	return nil
}
