package service

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"smartcareer/internal/model"
	"smartcareer/internal/store"

	"github.com/google/uuid"
)

// ValidationError reports a rejected request field
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// FeedbackService validates and stores feedback submissions, optionally
// forwarding them to the Web3Forms relay. The external forward is
// non-fatal: feedback is always recorded locally first.
type FeedbackService struct {
	feedback   store.FeedbackStore
	accessKey  string
	relayURL   string
	httpClient *http.Client
}

// NewFeedbackService creates a new feedback service
func NewFeedbackService(feedback store.FeedbackStore, accessKey, relayURL string, timeout time.Duration) *FeedbackService {
	if accessKey == "" {
		log.Println("Warning: WEB3FORMS_ACCESS_KEY not set, external feedback forwarding disabled")
	}

	return &FeedbackService{
		feedback:  feedback,
		accessKey: accessKey,
		relayURL:  relayURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// requiredFeedbackFields maps field accessors to their display names for
// validation messages
var requiredFeedbackFields = []struct {
	name  string
	value func(*model.FeedbackRequest) string
}{
	{"Name", func(r *model.FeedbackRequest) string { return r.Name }},
	{"Email", func(r *model.FeedbackRequest) string { return r.Email }},
	{"Feedback Type", func(r *model.FeedbackRequest) string { return r.FeedbackType }},
	{"Subject", func(r *model.FeedbackRequest) string { return r.Subject }},
	{"Message", func(r *model.FeedbackRequest) string { return r.Message }},
}

func validateFeedback(req *model.FeedbackRequest) error {
	for _, f := range requiredFeedbackFields {
		if f.value(req) == "" {
			return &ValidationError{Message: f.name + " is required"}
		}
	}
	if !emailPattern.MatchString(req.Email) {
		return &ValidationError{Message: "Invalid email format"}
	}
	if len(req.Message) < 10 {
		return &ValidationError{Message: "Message must be at least 10 characters long"}
	}
	return nil
}

// Submit validates the request, records it locally, and forwards it to
// the external relay when configured. The returned response reports the
// forwarding status separately from overall success.
func (s *FeedbackService) Submit(ctx context.Context, req *model.FeedbackRequest) (*model.FeedbackResponse, error) {
	if err := validateFeedback(req); err != nil {
		return nil, err
	}

	entry := &model.Feedback{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        req.Email,
		FeedbackType: req.FeedbackType,
		Subject:      req.Subject,
		Message:      req.Message,
		Rating:       req.Rating,
		Timestamp:    time.Now(),
		Status:       "new",
	}
	s.feedback.Append(entry)

	web3Status := model.ForwardSkipped
	if s.accessKey != "" {
		web3Status = s.forward(ctx, req)
	}

	return &model.FeedbackResponse{
		Success:    true,
		Message:    "Feedback submitted successfully",
		FeedbackID: entry.ID,
		Web3Status: web3Status,
	}, nil
}

// forward posts the submission to the Web3Forms API. Failures are logged
// and reported through the returned status, never as an error.
func (s *FeedbackService) forward(ctx context.Context, req *model.FeedbackRequest) string {
	payload := map[string]interface{}{
		"access_key":    s.accessKey,
		"name":          req.Name,
		"email":         req.Email,
		"subject":       req.Subject,
		"message":       req.Message,
		"feedback_type": req.FeedbackType,
		"rating":        req.Rating,
		"from":          "SmartCareer Feedback Form",
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[Feedback] ERROR: failed to marshal relay payload: %v", err)
		return model.ForwardFailed
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.relayURL, bytes.NewBuffer(jsonBody))
	if err != nil {
		log.Printf("[Feedback] ERROR: failed to create relay request: %v", err)
		return model.ForwardFailed
	}
	httpReq.Header.Set("Content-Type", "application/json")

	log.Printf("[Feedback] forwarding submission from %s <%s>", req.Name, req.Email)
	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		log.Printf("[Feedback] ERROR: relay request failed: %v", err)
		return model.ForwardFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		log.Printf("[Feedback] ERROR: relay returned %d: %s", resp.StatusCode, string(body))
		return model.ForwardFailed
	}

	return model.ForwardSubmitted
}
