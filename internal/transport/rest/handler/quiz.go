package handler

import (
	"encoding/json"
	"net/http"

	"smartcareer/internal/model"
	"smartcareer/internal/service"
	"smartcareer/internal/transport/rest/middleware"
)

// QuizHandler handles the career assessment endpoint
type QuizHandler struct {
	quizSvc *service.QuizService
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(quizSvc *service.QuizService) *QuizHandler {
	return &QuizHandler{quizSvc: quizSvc}
}

// Submit handles POST /api/submit_quiz
func (h *QuizHandler) Submit(w http.ResponseWriter, r *http.Request) {
	email := middleware.GetUserEmail(r.Context())
	if email == "" {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req model.SubmitQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Answers == nil {
		req.Answers = model.AnswerSet{}
	}

	result, err := h.quizSvc.Score(email, req.Answers)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, result)
}
