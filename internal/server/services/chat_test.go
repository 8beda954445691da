package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AditiGusain-14/AI-PrivacyCheck/internal/common"
	"github.com/AditiGusain-14/AI-PrivacyCheck/internal/provider"
	"github.com/AditiGusain-14/AI-PrivacyCheck/internal/server/models"
	"github.com/AditiGusain-14/AI-PrivacyCheck/internal/server/repositories/sessions"
)

const sampleReply = "**Reply:** hi\n\n**Risk Score:** 10\n\n**Privacy Summary:**\n- tip"

type fakeBlobStore struct {
	keys   []string
	putErr error
}

func (f *fakeBlobStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.keys = append(f.keys, key)
	return nil
}

func newChatService(t *testing.T, p provider.Provider) (*ChatService, *sessions.FileRepository) {
	t.Helper()
	repo := sessions.NewFileRepository(t.TempDir())
	return NewChatService(repo, p, nil, testLogger()), repo
}

func TestSubmitMessageCreatesDerivedSession(t *testing.T) {
	ctx := context.Background()
	fake := provider.NewFake(sampleReply)
	svc, repo := newChatService(t, fake)

	res, err := svc.SubmitMessage(ctx, "alice", "", "hello")
	require.NoError(t, err)

	assert.Equal(t, "hello", res.Session)
	assert.True(t, res.SessionCreated)
	assert.Equal(t, models.RoleAssistant, res.Reply.Role)
	assert.Equal(t, sampleReply, res.Reply.Content)
	require.True(t, res.Annotation.HasRiskScore)
	assert.Equal(t, 10, res.Annotation.RiskScore)
	require.True(t, res.Annotation.HasSummary)
	assert.Equal(t, "- tip", res.Annotation.Summary)

	// prompt carries the persona block plus the user message
	assert.Contains(t, fake.LastPrompt, "AI SafeGuard")
	assert.True(t, strings.HasSuffix(fake.LastPrompt, "\n\nhello"))

	// reload simulates a restart: both turns survived
	all, err := repo.Load(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, all["hello"], 2)
	assert.Equal(t, models.Message{Role: models.RoleUser, Content: "hello"}, all["hello"][0])
	assert.Equal(t, models.Message{Role: models.RoleAssistant, Content: sampleReply}, all["hello"][1])
}

func TestSubmitMessageLongInputDerivesTruncatedName(t *testing.T) {
	ctx := context.Background()
	svc, _ := newChatService(t, provider.NewFake(sampleReply))

	long := strings.Repeat("a", 25)
	res, err := svc.SubmitMessage(ctx, "alice", "", long)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("a", 20)+"...", res.Session)
}

func TestSubmitMessageAppendsToExistingSession(t *testing.T) {
	ctx := context.Background()
	svc, repo := newChatService(t, provider.NewFake(sampleReply))

	res, err := svc.SubmitMessage(ctx, "alice", "", "hello")
	require.NoError(t, err)

	res2, err := svc.SubmitMessage(ctx, "alice", res.Session, "and again")
	require.NoError(t, err)
	assert.False(t, res2.SessionCreated)

	all, err := repo.Load(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, all["hello"], 4)
}

func TestSubmitMessageUnknownSession(t *testing.T) {
	ctx := context.Background()
	svc, _ := newChatService(t, provider.NewFake(sampleReply))

	_, err := svc.SubmitMessage(ctx, "alice", "missing", "hi")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestSubmitMessageDerivedNameCollisionReusesSession(t *testing.T) {
	ctx := context.Background()
	svc, repo := newChatService(t, provider.NewFake(sampleReply))

	_, err := svc.SubmitMessage(ctx, "alice", "", "hello")
	require.NoError(t, err)

	// same first words, no current session: lands in the same session
	res, err := svc.SubmitMessage(ctx, "alice", "", "hello")
	require.NoError(t, err)
	assert.False(t, res.SessionCreated)

	all, err := repo.Load(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, all["hello"], 4)
}

func TestSubmitMessageProviderFailureSwallowed(t *testing.T) {
	ctx := context.Background()
	fake := provider.NewFake("")
	fake.Error = errors.New("quota exceeded")
	svc, repo := newChatService(t, fake)

	res, err := svc.SubmitMessage(ctx, "alice", "", "hello")
	require.NoError(t, err)

	assert.Equal(t, "Error: quota exceeded", res.Reply.Content)
	assert.False(t, res.Annotation.HasRiskScore)

	// the error reply is a permanent transcript entry
	all, err := repo.Load(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "Error: quota exceeded", all["hello"][1].Content)
}

func TestSubmitMessageEmptyText(t *testing.T) {
	ctx := context.Background()
	svc, _ := newChatService(t, provider.NewFake(sampleReply))

	_, err := svc.SubmitMessage(ctx, "alice", "", "")
	require.ErrorIs(t, err, common.ErrorValidation)
}

func TestUploadScreenshot(t *testing.T) {
	ctx := context.Background()
	repo := sessions.NewFileRepository(t.TempDir())
	blobs := &fakeBlobStore{}
	fake := provider.NewFake("should not be called")
	svc := NewChatService(repo, fake, blobs, testLogger())

	res, err := svc.UploadScreenshot(ctx, "alice", "", []byte{0xff, 0xd8}, "image/jpeg")
	require.NoError(t, err)

	assert.Equal(t, ScreenshotSessionName, res.Session)
	assert.True(t, res.SessionCreated)
	require.True(t, res.Annotation.HasRiskScore)
	assert.Equal(t, 72, res.Annotation.RiskScore)

	// no model call on the screenshot path
	assert.Empty(t, fake.LastPrompt)

	// image landed in the blob store
	require.Len(t, blobs.keys, 1)
	assert.Contains(t, blobs.keys[0], "screenshots/alice/")

	all, err := repo.Load(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, all[ScreenshotSessionName], 2)
	assert.Equal(t, models.RoleUser, all[ScreenshotSessionName][0].Role)
}

func TestUploadScreenshotBlobFailureSwallowed(t *testing.T) {
	ctx := context.Background()
	repo := sessions.NewFileRepository(t.TempDir())
	blobs := &fakeBlobStore{putErr: errors.New("bucket gone")}
	svc := NewChatService(repo, provider.NewFake(""), blobs, testLogger())

	res, err := svc.UploadScreenshot(ctx, "alice", "", []byte{1}, "image/png")
	require.NoError(t, err)
	assert.Equal(t, ScreenshotSessionName, res.Session)
}

func TestSessionManagement(t *testing.T) {
	ctx := context.Background()
	svc, _ := newChatService(t, provider.NewFake(sampleReply))

	require.NoError(t, svc.CreateSession(ctx, "alice", "work"))
	require.ErrorIs(t, svc.CreateSession(ctx, "alice", "work"), common.ErrorAlreadyExists)
	require.ErrorIs(t, svc.CreateSession(ctx, "alice", ""), common.ErrorValidation)

	_, err := svc.SubmitMessage(ctx, "alice", "work", "hi")
	require.NoError(t, err)

	require.NoError(t, svc.RenameSession(ctx, "alice", "work", "research"))

	msgs, err := svc.GetTranscript(ctx, "alice", "research")
	require.NoError(t, err)
	assert.Len(t, msgs, 2)

	_, err = svc.GetTranscript(ctx, "alice", "work")
	require.ErrorIs(t, err, common.ErrorNotFound)

	names, err := svc.ListSessions(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"research"}, names)

	require.NoError(t, svc.DeleteSession(ctx, "alice", "research"))
	require.ErrorIs(t, svc.DeleteSession(ctx, "alice", "research"), common.ErrorNotFound)

	names, err = svc.ListSessions(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, names)
}
