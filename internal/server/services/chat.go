package services

import (
	"context"
	"fmt"

	"github.com/AditiGusain-14/AI-PrivacyCheck/internal/annotate"
	"github.com/AditiGusain-14/AI-PrivacyCheck/internal/common"
	"github.com/AditiGusain-14/AI-PrivacyCheck/internal/logging"
	"github.com/AditiGusain-14/AI-PrivacyCheck/internal/provider"
	"github.com/AditiGusain-14/AI-PrivacyCheck/internal/server/blob"
	"github.com/AditiGusain-14/AI-PrivacyCheck/internal/server/chats"
	"github.com/AditiGusain-14/AI-PrivacyCheck/internal/server/models"
	"github.com/AditiGusain-14/AI-PrivacyCheck/internal/server/repositories/sessions"
)

const (
	// ScreenshotSessionName is the fixed session the upload flow lands in
	// when no session is selected.
	ScreenshotSessionName = "Screenshot Analysis"

	screenshotUserMessage = "Uploaded a screenshot for analysis."

	// screenshotReply is the canned placeholder; there is no real image
	// analysis.
	screenshotReply = "**Risk Score:** 72\n\n**Privacy Summary:**\nThe screenshot contains visible tabs, personal email ID, and browser history. Avoid sharing such screenshots online."
)

// ChatService is the conversation driver: it owns turn-taking, session
// bookkeeping and persistence around the opaque model call.
type ChatService struct {
	repo     sessions.Repository
	provider provider.Provider
	blobs    blob.Store // nil when screenshot storage is not configured
	logger   logging.Logger
}

func NewChatService(repo sessions.Repository, p provider.Provider, blobs blob.Store, logger logging.Logger) *ChatService {
	return &ChatService{
		repo:     repo,
		provider: p,
		blobs:    blobs,
		logger:   logger,
	}
}

// TurnResult is what a completed conversation turn hands back to the
// presentation layer.
type TurnResult struct {
	Session        string
	SessionCreated bool
	Reply          models.Message
	Annotation     annotate.Annotation
}

// SubmitMessage appends the user message, invokes the model, appends the
// reply and persists the whole history.
//
// With an empty sessionName the session is derived from the message text
// and created; an existing session under the derived name is reused rather
// than clobbered. Provider failures do not fail the turn: the error text is
// recorded as the assistant reply so the conversation flow stays unbroken.
func (s *ChatService) SubmitMessage(ctx context.Context, username, sessionName, text string) (*TurnResult, error) {
	if text == "" {
		return nil, fmt.Errorf("message must not be empty: %w", common.ErrorValidation)
	}

	all, err := s.repo.Load(ctx, username)
	if err != nil {
		return nil, err
	}

	created := false
	if sessionName == "" {
		sessionName = chats.DeriveName(text)
		if _, ok := all[sessionName]; !ok {
			if err := chats.Create(all, sessionName); err != nil {
				return nil, err
			}
			created = true
		}
	}

	if err := chats.Append(all, sessionName, models.Message{Role: models.RoleUser, Content: text}); err != nil {
		return nil, err
	}

	reply, err := s.provider.Generate(ctx, provider.BuildPrompt(text))
	if err != nil {
		s.logger.Warn(ctx, "provider call failed", "username", username, "error", err)
		reply = fmt.Sprintf("Error: %v", err)
	}

	assistantMsg := models.Message{Role: models.RoleAssistant, Content: reply}
	if err := chats.Append(all, sessionName, assistantMsg); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, username, all); err != nil {
		return nil, err
	}

	return &TurnResult{
		Session:        sessionName,
		SessionCreated: created,
		Reply:          assistantMsg,
		Annotation:     annotate.Extract(reply),
	}, nil
}

// UploadScreenshot records the screenshot flow: a fixed user message and a
// canned assistant reply, no model call. When a blob store is configured
// the image bytes are kept there; a storage failure is logged but does not
// fail the turn.
func (s *ChatService) UploadScreenshot(ctx context.Context, username, sessionName string, image []byte, contentType string) (*TurnResult, error) {
	all, err := s.repo.Load(ctx, username)
	if err != nil {
		return nil, err
	}

	created := false
	if sessionName == "" {
		sessionName = ScreenshotSessionName
	}
	if _, ok := all[sessionName]; !ok {
		if err := chats.Create(all, sessionName); err != nil {
			return nil, err
		}
		created = true
	}

	if s.blobs != nil && len(image) > 0 {
		key := blob.RandomKey(username)
		if err := s.blobs.Put(ctx, key, image, contentType); err != nil {
			s.logger.Warn(ctx, "screenshot upload to blob store failed", "username", username, "error", err)
		} else {
			s.logger.Info(ctx, "screenshot stored", "username", username, "key", key)
		}
	}

	if err := chats.Append(all, sessionName, models.Message{Role: models.RoleUser, Content: screenshotUserMessage}); err != nil {
		return nil, err
	}

	assistantMsg := models.Message{Role: models.RoleAssistant, Content: screenshotReply}
	if err := chats.Append(all, sessionName, assistantMsg); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, username, all); err != nil {
		return nil, err
	}

	return &TurnResult{
		Session:        sessionName,
		SessionCreated: created,
		Reply:          assistantMsg,
		Annotation:     annotate.Extract(screenshotReply),
	}, nil
}

// ListSessions returns the user's session names sorted alphabetically.
func (s *ChatService) ListSessions(ctx context.Context, username string) ([]string, error) {
	all, err := s.repo.Load(ctx, username)
	if err != nil {
		return nil, err
	}
	return chats.Names(all), nil
}

// GetTranscript returns the ordered messages of one session.
func (s *ChatService) GetTranscript(ctx context.Context, username, name string) ([]models.Message, error) {
	all, err := s.repo.Load(ctx, username)
	if err != nil {
		return nil, err
	}

	msgs, ok := all[name]
	if !ok {
		return nil, fmt.Errorf("session %q: %w", name, common.ErrorNotFound)
	}
	return msgs, nil
}

// CreateSession explicitly creates an empty session and persists it.
func (s *ChatService) CreateSession(ctx context.Context, username, name string) error {
	if name == "" {
		return fmt.Errorf("session name must not be empty: %w", common.ErrorValidation)
	}

	all, err := s.repo.Load(ctx, username)
	if err != nil {
		return err
	}
	if err := chats.Create(all, name); err != nil {
		return err
	}
	return s.repo.Save(ctx, username, all)
}

// RenameSession changes a session's key, keeping its transcript intact.
func (s *ChatService) RenameSession(ctx context.Context, username, oldName, newName string) error {
	if newName == "" {
		return fmt.Errorf("session name must not be empty: %w", common.ErrorValidation)
	}

	all, err := s.repo.Load(ctx, username)
	if err != nil {
		return err
	}
	if err := chats.Rename(all, oldName, newName); err != nil {
		return err
	}
	return s.repo.Save(ctx, username, all)
}

// DeleteSession removes a session and its transcript.
func (s *ChatService) DeleteSession(ctx context.Context, username, name string) error {
	all, err := s.repo.Load(ctx, username)
	if err != nil {
		return err
	}
	if err := chats.Delete(all, name); err != nil {
		return err
	}
	return s.repo.Save(ctx, username, all)
}
