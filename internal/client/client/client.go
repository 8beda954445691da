// Package client implements the HTTP client for the AI PrivacyCheck API.
// Server errors come back as the shared sentinel errors so the CLI can
// match them with errors.Is.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/AditiGusain-14/AI-PrivacyCheck/internal/common"
)

// Message mirrors one transcript entry as the API returns it.
type Message struct {
	Role       string      `json:"role"`
	Content    string      `json:"content"`
	Annotation *Annotation `json:"annotation,omitempty"`
}

// Annotation is the risk data the server derived from a reply.
type Annotation struct {
	RiskScore *int   `json:"risk_score,omitempty"`
	Level     string `json:"level,omitempty"`
	Summary   string `json:"summary,omitempty"`
}

// TurnResult is the outcome of a chat or screenshot turn.
type TurnResult struct {
	Session        string      `json:"session"`
	SessionCreated bool        `json:"session_created"`
	Reply          Message     `json:"reply"`
	Annotation     *Annotation `json:"annotation,omitempty"`
}

// Client talks to one server and carries the bearer token after login.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 90 * time.Second},
	}
}

// Logout drops the stored token.
func (c *Client) Logout() {
	c.token = ""
}

func statusToError(status int, body []byte) error {
	var payload struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(body, &payload)
	msg := payload.Error
	if msg == "" {
		msg = http.StatusText(status)
	}

	switch status {
	case http.StatusBadRequest:
		return fmt.Errorf("%s: %w", msg, common.ErrorValidation)
	case http.StatusUnauthorized:
		return fmt.Errorf("%s: %w", msg, common.ErrorUnauthorized)
	case http.StatusNotFound:
		return fmt.Errorf("%s: %w", msg, common.ErrorNotFound)
	case http.StatusConflict:
		return fmt.Errorf("%s: %w", msg, common.ErrorAlreadyExists)
	default:
		return fmt.Errorf("server error (%d): %s", status, msg)
	}
}

func (c *Client) do(ctx context.Context, method, path string, reqBody, respBody any) error {
	var reader io.Reader
	if reqBody != nil {
		b, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("call server: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return statusToError(resp.StatusCode, body)
	}

	if respBody != nil {
		if err := json.Unmarshal(body, respBody); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	return nil
}

func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/ping", nil, nil)
}

func (c *Client) Register(ctx context.Context, username, password string) error {
	body := map[string]string{"username": username, "password": password}
	return c.do(ctx, http.MethodPost, "/api/register", body, nil)
}

// Login authenticates and stores the returned token for later calls.
func (c *Client) Login(ctx context.Context, username, password string) error {
	body := map[string]string{"username": username, "password": password}

	var resp struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/login", body, &resp); err != nil {
		return err
	}

	c.token = resp.Token
	return nil
}

func (c *Client) ListSessions(ctx context.Context) ([]string, error) {
	var resp struct {
		Sessions []string `json:"sessions"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/sessions", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Sessions, nil
}

func (c *Client) GetTranscript(ctx context.Context, name string) ([]Message, error) {
	var resp struct {
		Name     string    `json:"name"`
		Messages []Message `json:"messages"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/sessions/"+url.PathEscape(name), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Messages, nil
}

func (c *Client) CreateSession(ctx context.Context, name string) error {
	return c.do(ctx, http.MethodPost, "/api/sessions", map[string]string{"name": name}, nil)
}

func (c *Client) RenameSession(ctx context.Context, oldName, newName string) error {
	path := "/api/sessions/" + url.PathEscape(oldName) + "/rename"
	return c.do(ctx, http.MethodPost, path, map[string]string{"new_name": newName}, nil)
}

func (c *Client) DeleteSession(ctx context.Context, name string) error {
	return c.do(ctx, http.MethodDelete, "/api/sessions/"+url.PathEscape(name), nil, nil)
}

// Chat submits one message. An empty session lets the server derive and
// create one from the message text.
func (c *Client) Chat(ctx context.Context, session, message string) (*TurnResult, error) {
	body := map[string]string{"session": session, "message": message}

	var res TurnResult
	if err := c.do(ctx, http.MethodPost, "/api/chat", body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// UploadScreenshot sends image bytes as a multipart form.
func (c *Client) UploadScreenshot(ctx context.Context, session, fileName string, image []byte) (*TurnResult, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	if session != "" {
		if err := mw.WriteField("session", session); err != nil {
			return nil, fmt.Errorf("build form: %w", err)
		}
	}
	fw, err := mw.CreateFormFile("image", fileName)
	if err != nil {
		return nil, fmt.Errorf("build form: %w", err)
	}
	if _, err := fw.Write(image); err != nil {
		return nil, fmt.Errorf("build form: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("build form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/screenshot", &buf)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call server: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return nil, statusToError(resp.StatusCode, body)
	}

	var res TurnResult
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &res, nil
}
