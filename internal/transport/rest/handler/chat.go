package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"smartcareer/internal/model"
	"smartcareer/internal/service"
)

// ChatHandler handles the chatbot relay endpoint
type ChatHandler struct {
	chatSvc *service.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatSvc *service.ChatService) *ChatHandler {
	return &ChatHandler{chatSvc: chatSvc}
}

// Chat handles POST /api/chat
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req model.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, model.ChatResponse{Error: "invalid request body", Success: false})
		return
	}

	message := strings.TrimSpace(req.Message)

	// No server-side history exists; a bare clear request is acknowledged.
	if req.ClearHistory && message == "" {
		writeJSON(w, http.StatusOK, model.ChatResponse{Message: "Chat history cleared", Success: true})
		return
	}

	reply, err := h.chatSvc.Relay(r.Context(), message)
	if err != nil {
		status := chatErrorStatus(err)
		writeJSON(w, status, model.ChatResponse{Error: err.Error(), Success: false})
		return
	}

	writeJSON(w, http.StatusOK, model.ChatResponse{Message: reply, Success: true})
}

// chatErrorStatus maps relay failures to HTTP statuses: validation 400,
// missing credential or unexpected 500, upstream timeout 504, upstream
// failure its own status.
func chatErrorStatus(err error) int {
	var upstream *service.UpstreamError
	switch {
	case errors.Is(err, service.ErrEmptyMessage):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrAPIKeyMissing):
		return http.StatusInternalServerError
	case errors.Is(err, service.ErrUpstreamTimeout):
		return http.StatusGatewayTimeout
	case errors.As(err, &upstream):
		if upstream.Status >= 400 {
			return upstream.Status
		}
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
