package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AditiGusain-14/AI-PrivacyCheck/internal/common"
	"github.com/AditiGusain-14/AI-PrivacyCheck/internal/logging"
	"github.com/AditiGusain-14/AI-PrivacyCheck/internal/server/auth"
	"github.com/AditiGusain-14/AI-PrivacyCheck/internal/server/config"
	"github.com/AditiGusain-14/AI-PrivacyCheck/internal/server/hashing"
	"github.com/AditiGusain-14/AI-PrivacyCheck/internal/server/models"
)

// --- helpers ---

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type fakeUsersRepo struct {
	users     map[string]string
	createErr error
	getErr    error
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{users: map[string]string{}}
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.users[u.UserName]; ok {
		return common.ErrorAlreadyExists
	}
	f.users[u.UserName] = u.PasswordDigest
	return nil
}

func (f *fakeUsersRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	digest, ok := f.users[username]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &models.User{UserName: username, PasswordDigest: digest}, nil
}

func newUserService(t *testing.T, repo *fakeUsersRepo) *UserService {
	t.Helper()
	cfg := &config.Config{
		SecretKey:             "k",
		TokenValidityDuration: time.Hour,
	}
	return NewUserService(repo, &hashing.SHA256Hasher{}, cfg, testLogger())
}

// --- tests ---

func TestRegisterThenAuthenticate(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(t, newFakeUsersRepo())

	require.NoError(t, svc.Register(ctx, "alice", "pw1"))

	ok, err := svc.Authenticate(ctx, "alice", "pw1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(t, newFakeUsersRepo())

	require.NoError(t, svc.Register(ctx, "alice", "pw1"))

	ok, err := svc.Authenticate(ctx, "alice", "pw2")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAuthenticateUnknownUserIndistinguishable(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(t, newFakeUsersRepo())

	require.NoError(t, svc.Register(ctx, "alice", "pw1"))

	wrongPw, err := svc.Authenticate(ctx, "alice", "nope")
	require.NoError(t, err)
	unknown, err2 := svc.Authenticate(ctx, "bob", "nope")
	require.NoError(t, err2)

	assert.Equal(t, wrongPw, unknown)
	assert.False(t, unknown)
}

func TestRegisterDuplicate(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(t, newFakeUsersRepo())

	require.NoError(t, svc.Register(ctx, "alice", "pw1"))

	err := svc.Register(ctx, "alice", "pw2")
	require.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(t, newFakeUsersRepo())

	require.ErrorIs(t, svc.Register(ctx, "", "pw"), common.ErrorValidation)
	require.ErrorIs(t, svc.Register(ctx, "alice", ""), common.ErrorValidation)
	require.ErrorIs(t, svc.Register(ctx, "a/b", "pw"), common.ErrorValidation)
	require.ErrorIs(t, svc.Register(ctx, `a\b`, "pw"), common.ErrorValidation)
}

func TestAuthenticateStorageErrorSurfaced(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUsersRepo()
	repo.getErr = common.ErrorCorruptData
	svc := newUserService(t, repo)

	_, err := svc.Authenticate(ctx, "alice", "pw1")
	require.ErrorIs(t, err, common.ErrorCorruptData)
}

func TestLoginIssuesToken(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(t, newFakeUsersRepo())

	require.NoError(t, svc.Register(ctx, "alice", "pw1"))

	token, err := svc.Login(ctx, "alice", "pw1")
	require.NoError(t, err)

	username, err := auth.GetUsernameFromToken(token, []byte("k"))
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
}

func TestLoginRejected(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(t, newFakeUsersRepo())

	require.NoError(t, svc.Register(ctx, "alice", "pw1"))

	_, err := svc.Login(ctx, "alice", "wrong")
	require.True(t, errors.Is(err, common.ErrorUnauthorized))
}
