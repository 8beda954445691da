// Package services holds the application services the HTTP layer calls
// into: account management and the conversation driver.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/AditiGusain-14/AI-PrivacyCheck/internal/common"
	"github.com/AditiGusain-14/AI-PrivacyCheck/internal/logging"
	"github.com/AditiGusain-14/AI-PrivacyCheck/internal/server/auth"
	"github.com/AditiGusain-14/AI-PrivacyCheck/internal/server/config"
	"github.com/AditiGusain-14/AI-PrivacyCheck/internal/server/hashing"
	"github.com/AditiGusain-14/AI-PrivacyCheck/internal/server/models"
	"github.com/AditiGusain-14/AI-PrivacyCheck/internal/server/repositories/users"
)

type UserService struct {
	repo          users.Repository
	hasher        hashing.Hasher
	secretKey     []byte
	tokenValidity time.Duration
	logger        logging.Logger
}

func NewUserService(repo users.Repository, hasher hashing.Hasher, cfg *config.Config, logger logging.Logger) *UserService {
	return &UserService{
		repo:          repo,
		hasher:        hasher,
		secretKey:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidityDuration,
		logger:        logger,
	}
}

func validateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("username must not be empty: %w", common.ErrorValidation)
	}
	// usernames become file names, so path separators are rejected
	if strings.ContainsAny(username, `/\`) {
		return fmt.Errorf("username must not contain path separators: %w", common.ErrorValidation)
	}
	return nil
}

// Register creates an account. Returns common.ErrorAlreadyExists when the
// username is taken.
func (s *UserService) Register(ctx context.Context, username, password string) error {
	if err := validateUsername(username); err != nil {
		return err
	}
	if password == "" {
		return fmt.Errorf("password must not be empty: %w", common.ErrorValidation)
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.repo.Create(ctx, &models.User{UserName: username, PasswordDigest: digest}); err != nil {
		return err
	}

	s.logger.Info(ctx, "account created", "username", username)
	return nil
}

// Authenticate reports whether the credentials are valid. An unknown user
// and a wrong password both yield false; callers cannot tell them apart.
// Storage failures are returned so they are not mistaken for a rejection.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (bool, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return false, nil
		}
		return false, err
	}

	return s.hasher.Verify(user.PasswordDigest, password), nil
}

// Login verifies credentials and issues an access token. Invalid
// credentials yield common.ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	ok, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(username, s.secretKey, s.tokenValidity)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	s.logger.Info(ctx, "login", "username", username)
	return token, nil
}
