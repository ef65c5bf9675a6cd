package api

import (
	"encoding/json"
	"net/http"
	"strings"
)

type chatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
}

type chatResponse struct {
	Response string `json:"response"`
	Success  bool   `json:"success"`
}

// chat handles POST /api/chat. Malformed requests are rejected here; once a
// message reaches the pipeline the caller always gets a well-formed envelope
// with an explicit success flag.
func (s *Server) chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "message is required"})
		return
	}

	result := s.pipeline.Process(r.Context(), req.Message, req.SessionID)
	writeJSON(w, http.StatusOK, chatResponse{
		Response: result.Response,
		Success:  result.Success,
	})
}
