// Package httpapi exposes the web application's JSON API: account signup
// and login, session management, chat turns, and the screenshot upload
// flow. The browser/CLI front end is driven entirely by this surface.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/AditiGusain-14/AI-PrivacyCheck/internal/logging"
	"github.com/AditiGusain-14/AI-PrivacyCheck/internal/server/services"
)

// Server wraps the HTTP server components for AI PrivacyCheck.
type Server struct {
	mux       *http.ServeMux
	addr      string
	secretKey []byte
	users     *services.UserService
	chat      *services.ChatService
	logger    logging.Logger
}

func NewServer(addr string, secretKey []byte, users *services.UserService, chat *services.ChatService, logger logging.Logger) *Server {
	s := &Server{
		mux:       http.NewServeMux(),
		addr:      addr,
		secretKey: secretKey,
		users:     users,
		chat:      chat,
		logger:    logger,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /api/ping", s.handlePing)
	s.mux.HandleFunc("POST /api/register", s.handleRegister)
	s.mux.HandleFunc("POST /api/login", s.handleLogin)

	s.mux.Handle("GET /api/sessions", s.requireAuth(s.handleListSessions))
	s.mux.Handle("POST /api/sessions", s.requireAuth(s.handleCreateSession))
	s.mux.Handle("GET /api/sessions/{name}", s.requireAuth(s.handleGetTranscript))
	s.mux.Handle("POST /api/sessions/{name}/rename", s.requireAuth(s.handleRenameSession))
	s.mux.Handle("DELETE /api/sessions/{name}", s.requireAuth(s.handleDeleteSession))

	s.mux.Handle("POST /api/chat", s.requireAuth(s.handleChat))
	s.mux.Handle("POST /api/screenshot", s.requireAuth(s.handleScreenshot))
}

// Handler returns the full middleware-wrapped handler; exposed for tests.
func (s *Server) Handler() http.Handler {
	return s.withRequestID(s.mux)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.logger.Info(ctx, "http server listening", "addr", s.addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
