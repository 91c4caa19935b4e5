package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"smartcareer/internal/model"
	"smartcareer/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validFeedbackRequest() *model.FeedbackRequest {
	return &model.FeedbackRequest{
		Name:         "Priya",
		Email:        "priya@example.com",
		FeedbackType: "suggestion",
		Subject:      "Quiz improvements",
		Message:      "The quiz could use more questions about design careers.",
		Rating:       4,
	}
}

func TestSubmitFeedback_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*model.FeedbackRequest)
		wantMsg string
	}{
		{"missing name", func(r *model.FeedbackRequest) { r.Name = "" }, "Name is required"},
		{"missing email", func(r *model.FeedbackRequest) { r.Email = "" }, "Email is required"},
		{"missing type", func(r *model.FeedbackRequest) { r.FeedbackType = "" }, "Feedback Type is required"},
		{"missing subject", func(r *model.FeedbackRequest) { r.Subject = "" }, "Subject is required"},
		{"missing message", func(r *model.FeedbackRequest) { r.Message = "" }, "Message is required"},
		{"bad email", func(r *model.FeedbackRequest) { r.Email = "not-an-email" }, "Invalid email format"},
		{"short message", func(r *model.FeedbackRequest) { r.Message = "too short" }, "Message must be at least 10 characters long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			feedback := store.NewFeedbackStore()
			svc := NewFeedbackService(feedback, "", "http://unused.invalid", time.Second)

			req := validFeedbackRequest()
			tt.mutate(req)

			_, err := svc.Submit(context.Background(), req)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantMsg, vErr.Message)
			assert.Empty(t, feedback.All(), "rejected feedback must not be stored")
		})
	}
}

func TestSubmitFeedback_SkippedWithoutKey(t *testing.T) {
	feedback := store.NewFeedbackStore()
	svc := NewFeedbackService(feedback, "", "http://unused.invalid", time.Second)

	resp, err := svc.Submit(context.Background(), validFeedbackRequest())
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.FeedbackID)
	assert.Equal(t, model.ForwardSkipped, resp.Web3Status)

	entries := feedback.All()
	require.Len(t, entries, 1)
	assert.Equal(t, resp.FeedbackID, entries[0].ID)
	assert.Equal(t, "priya@example.com", entries[0].Email)
}

func TestSubmitFeedback_Forwarded(t *testing.T) {
	var gotPayload map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	feedback := store.NewFeedbackStore()
	svc := NewFeedbackService(feedback, "access-key-123", server.URL, time.Second)

	resp, err := svc.Submit(context.Background(), validFeedbackRequest())
	require.NoError(t, err)
	assert.Equal(t, model.ForwardSubmitted, resp.Web3Status)

	assert.Equal(t, "access-key-123", gotPayload["access_key"])
	assert.Equal(t, "Priya", gotPayload["name"])
	assert.Equal(t, "SmartCareer Feedback Form", gotPayload["from"])
}

func TestSubmitFeedback_ForwardFailureIsNonFatal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream broken", http.StatusInternalServerError)
	}))
	defer server.Close()

	feedback := store.NewFeedbackStore()
	svc := NewFeedbackService(feedback, "access-key-123", server.URL, time.Second)

	resp, err := svc.Submit(context.Background(), validFeedbackRequest())
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, model.ForwardFailed, resp.Web3Status)

	// Local record survives the failed forward.
	assert.Len(t, feedback.All(), 1)
}

func TestSubmitFeedback_ForwardUnreachableIsNonFatal(t *testing.T) {
	feedback := store.NewFeedbackStore()
	svc := NewFeedbackService(feedback, "access-key-123", "http://127.0.0.1:1/forms", 200*time.Millisecond)

	resp, err := svc.Submit(context.Background(), validFeedbackRequest())
	require.NoError(t, err)
	assert.Equal(t, model.ForwardFailed, resp.Web3Status)
	assert.Len(t, feedback.All(), 1)
}
