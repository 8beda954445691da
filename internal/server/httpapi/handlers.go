package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/AditiGusain-14/AI-PrivacyCheck/internal/annotate"
	"github.com/AditiGusain-14/AI-PrivacyCheck/internal/common"
	"github.com/AditiGusain-14/AI-PrivacyCheck/internal/server/models"
	"github.com/AditiGusain-14/AI-PrivacyCheck/internal/server/services"
)

// maxUploadBytes caps the screenshot multipart body.
const maxUploadBytes = 8 * 1024 * 1024

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type messageDTO struct {
	Role       string         `json:"role"`
	Content    string         `json:"content"`
	Annotation *annotationDTO `json:"annotation,omitempty"`
}

type annotationDTO struct {
	RiskScore *int   `json:"risk_score,omitempty"`
	Level     string `json:"level,omitempty"`
	Summary   string `json:"summary,omitempty"`
}

type turnResponse struct {
	Session        string         `json:"session"`
	SessionCreated bool           `json:"session_created"`
	Reply          messageDTO     `json:"reply"`
	Annotation     *annotationDTO `json:"annotation,omitempty"`
}

func toAnnotationDTO(a annotate.Annotation) *annotationDTO {
	if !a.HasRiskScore && !a.HasSummary {
		return nil
	}

	dto := &annotationDTO{Summary: a.Summary}
	if a.HasRiskScore {
		clamped := annotate.Clamp(a.RiskScore)
		dto.RiskScore = &clamped
		dto.Level = annotate.Level(a.RiskScore)
	}
	return dto
}

func toMessageDTO(m models.Message) messageDTO {
	dto := messageDTO{Role: string(m.Role), Content: m.Content}
	if m.Role == models.RoleAssistant {
		dto.Annotation = toAnnotationDTO(annotate.Extract(m.Content))
	}
	return dto
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeServiceError maps service errors onto HTTP statuses. Internal
// details stay out of the response body.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrorValidation):
		writeJSONError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, common.ErrorUnauthorized), errors.Is(err, common.ErrInvalidToken):
		writeJSONError(w, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, common.ErrorNotFound):
		writeJSONError(w, http.StatusNotFound, "not found")
	case errors.Is(err, common.ErrorAlreadyExists):
		writeJSONError(w, http.StatusConflict, "already exists")
	default:
		s.logger.Error(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "internal error")
	}
}

func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := s.users.Register(r.Context(), req.Username, req.Password); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"status": "created"})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	token, err := s.users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{Token: token})
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	names, err := s.chat.ListSessions(r.Context(), usernameFromContext(r.Context()))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string][]string{"sessions": names})
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := s.chat.CreateSession(r.Context(), usernameFromContext(r.Context()), req.Name); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"status": "created"})
}

func (s *Server) handleGetTranscript(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	msgs, err := s.chat.GetTranscript(r.Context(), usernameFromContext(r.Context()), name)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	dtos := make([]messageDTO, 0, len(msgs))
	for _, m := range msgs {
		dtos = append(dtos, toMessageDTO(m))
	}

	writeJSON(w, http.StatusOK, map[string]any{"name": name, "messages": dtos})
}

func (s *Server) handleRenameSession(w http.ResponseWriter, r *http.Request) {
	var req struct {
		NewName string `json:"new_name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	err := s.chat.RenameSession(r.Context(), usernameFromContext(r.Context()), r.PathValue("name"), req.NewName)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "renamed"})
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	err := s.chat.DeleteSession(r.Context(), usernameFromContext(r.Context()), r.PathValue("name"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Session string `json:"session"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	res, err := s.chat.SubmitMessage(r.Context(), usernameFromContext(r.Context()), req.Session, req.Message)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeTurn(w, res)
}

func (s *Server) handleScreenshot(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid multipart body")
		return
	}

	var image []byte
	contentType := ""
	if file, header, err := r.FormFile("image"); err == nil {
		defer file.Close()
		image, err = io.ReadAll(file)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, "unreadable image")
			return
		}
		contentType = header.Header.Get("Content-Type")
	}

	session := r.FormValue("session")

	res, err := s.chat.UploadScreenshot(r.Context(), usernameFromContext(r.Context()), session, image, contentType)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeTurn(w, res)
}

func writeTurn(w http.ResponseWriter, res *services.TurnResult) {
	writeJSON(w, http.StatusOK, turnResponse{
		Session:        res.Session,
		SessionCreated: res.SessionCreated,
		Reply:          messageDTO{Role: string(res.Reply.Role), Content: res.Reply.Content},
		Annotation:     toAnnotationDTO(res.Annotation),
	})
}
