package model

import "time"

// FeedbackRequest is the request body for feedback submission
type FeedbackRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	FeedbackType string `json:"feedback_type"`
	Subject      string `json:"subject"`
	Message      string `json:"message"`
	Rating       int    `json:"rating,omitempty"`
}

// Feedback is a stored feedback entry
type Feedback struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	FeedbackType string    `json:"feedback_type"`
	Subject      string    `json:"subject"`
	Message      string    `json:"message"`
	Rating       int       `json:"rating"`
	Timestamp    time.Time `json:"timestamp"`
	Status       string    `json:"status"`
}

// Forwarding status values for the external form relay
const (
	ForwardSubmitted = "submitted"
	ForwardFailed    = "failed"
	ForwardSkipped   = "skipped"
	ForwardPending   = "pending"
)

// FeedbackResponse is returned from feedback submission
type FeedbackResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	FeedbackID string `json:"feedback_id"`
	Web3Status string `json:"web3_status"`
}
