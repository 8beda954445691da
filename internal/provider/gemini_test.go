package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeminiGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/gemini-1.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var req geminiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		assert.Contains(t, req.Contents[0].Parts[0].Text, "AI SafeGuard")

		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"**Reply:** ok "},{"text":"\n**Risk Score:** 10"}]}}]}`))
	}))
	defer srv.Close()

	p := NewGemini(srv.URL, "test-key", "", 0)

	got, err := p.Generate(context.Background(), BuildPrompt("hello"))
	require.NoError(t, err)
	assert.Equal(t, "**Reply:** ok \n**Risk Score:** 10", got)
}

func TestGeminiGenerateAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"code":429,"message":"quota exceeded","status":"RESOURCE_EXHAUSTED"}}`))
	}))
	defer srv.Close()

	p := NewGemini(srv.URL, "test-key", "", 0)

	_, err := p.Generate(context.Background(), "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestGeminiGenerateNoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	p := NewGemini(srv.URL, "test-key", "", 0)

	_, err := p.Generate(context.Background(), "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no candidates")
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt("is this link safe?")

	assert.Contains(t, prompt, "**Risk Score:**")
	assert.Contains(t, prompt, "**Privacy Summary:**")
	assert.True(t, len(prompt) > len("is this link safe?"))
	assert.Contains(t, prompt, "\n\nis this link safe?")
}
