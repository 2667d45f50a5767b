package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/sahla-io/dukkan/internal/policy"
	"github.com/sahla-io/dukkan/internal/requestctx"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorBody{Error: code, Message: message})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := map[string]interface{}{
		"status":   "ok",
		"uptime":   time.Since(s.startTime).String(),
		"products": s.store.Len(),
	}
	writeJSON(w, http.StatusOK, resp)
}

type chatRequest struct {
	SessionID string `json:"session_id,omitempty"`
	Role      string `json:"role,omitempty"`
	Message   string `json:"message"`
}

type chatResponse struct {
	SessionID string `json:"session_id"`
	Response  string `json:"response"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid JSON: "+err.Error())
		return
	}
	if req.Message == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "message is required")
		return
	}

	var entry *sessionEntry
	if req.SessionID == "" {
		role := s.defaultRole
		if req.Role != "" {
			role = policy.ParseRole(req.Role)
		}
		entry = s.createSession(role)
	} else {
		entry = s.session(req.SessionID)
		if entry == nil {
			writeError(w, http.StatusNotFound, "unknown_session", "no such session")
			return
		}
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if req.SessionID != "" && req.Role != "" {
		entry.sess.SetRole(policy.ParseRole(req.Role))
	}

	ctx := requestctx.SetSessionID(r.Context(), entry.sess.ID())
	response := s.chatRouter.Process(ctx, entry.sess, req.Message)

	log.Debug().
		Str("session_id", entry.sess.ID()).
		Int("transcript_len", entry.sess.Len()).
		Msg("chat handled")

	writeJSON(w, http.StatusOK, chatResponse{
		SessionID: entry.sess.ID(),
		Response:  response,
	})
}

func (s *Server) handleSessionInfo(w http.ResponseWriter, r *http.Request) {
	entry := s.session(chi.URLParam(r, "sessionID"))
	if entry == nil {
		writeError(w, http.StatusNotFound, "unknown_session", "no such session")
		return
	}

	entry.mu.Lock()
	info := entry.sess.Info()
	entry.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"id":                 info.ID,
		"role":               info.Role,
		"messages_count":     info.Messages,
		"products_available": s.store.Len(),
	})
}

// handleSessionReset clears the transcript only; role and catalog persist.
func (s *Server) handleSessionReset(w http.ResponseWriter, r *http.Request) {
	entry := s.session(chi.URLParam(r, "sessionID"))
	if entry == nil {
		writeError(w, http.StatusNotFound, "unknown_session", "no such session")
		return
	}

	entry.mu.Lock()
	entry.sess.Reset()
	info := entry.sess.Info()
	entry.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"id":             info.ID,
		"role":           info.Role,
		"messages_count": info.Messages,
	})
}
