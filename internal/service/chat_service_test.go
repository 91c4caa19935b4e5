package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"smartcareer/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testChatConfig(baseURL string) *config.ChatConfig {
	return &config.ChatConfig{
		APIKey:      "test-key",
		BaseURL:     baseURL,
		Model:       "openai/gpt-4o-mini",
		SiteURL:     "http://localhost:8080",
		AppTitle:    "SmartCareer",
		Temperature: 0.7,
		MaxTokens:   800,
		TimeoutMS:   5000,
	}
}

// completionReply builds the minimal chat completions response body the
// upstream returns on success
func completionReply(content string) map[string]interface{} {
	return map[string]interface{}{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"model":   "openai/gpt-4o-mini",
		"choices": []map[string]interface{}{
			{
				"index": 0,
				"message": map[string]interface{}{
					"role":    "assistant",
					"content": content,
				},
				"finish_reason": "stop",
			},
		},
	}
}

func TestRelay_Success(t *testing.T) {
	var gotReferer, gotTitle, gotAuth string
	var gotBody struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotReferer = r.Header.Get("HTTP-Referer")
		gotTitle = r.Header.Get("X-Title")
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(completionReply("Consider learning Go."))
	}))
	defer server.Close()

	svc := NewChatService(testChatConfig(server.URL + "/v1"))
	reply, err := svc.Relay(context.Background(), "What language should I learn?")

	require.NoError(t, err)
	assert.Equal(t, "Consider learning Go.", reply)

	// Attribution and auth headers reach the upstream.
	assert.Equal(t, "http://localhost:8080", gotReferer)
	assert.Equal(t, "SmartCareer", gotTitle)
	assert.Equal(t, "Bearer test-key", gotAuth)

	// Every relay is a fresh system+user exchange.
	require.Len(t, gotBody.Messages, 2)
	assert.Equal(t, "system", gotBody.Messages[0].Role)
	assert.Contains(t, gotBody.Messages[0].Content, "career guidance counselor")
	assert.Equal(t, "user", gotBody.Messages[1].Role)
	assert.Equal(t, "What language should I learn?", gotBody.Messages[1].Content)
}

func TestRelay_EmptyMessage(t *testing.T) {
	svc := NewChatService(testChatConfig("http://unused.invalid/v1"))

	for _, msg := range []string{"", "   ", "\n\t"} {
		_, err := svc.Relay(context.Background(), msg)
		assert.ErrorIs(t, err, ErrEmptyMessage)
	}
}

func TestRelay_APIKeyMissing(t *testing.T) {
	cfg := testChatConfig("http://unused.invalid/v1")
	cfg.APIKey = ""
	svc := NewChatService(cfg)

	_, err := svc.Relay(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrAPIKeyMissing)
}

func TestRelay_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]interface{}{
				"message": "rate limit exceeded",
				"type":    "rate_limit_error",
			},
		})
	}))
	defer server.Close()

	svc := NewChatService(testChatConfig(server.URL + "/v1"))
	_, err := svc.Relay(context.Background(), "hello")

	var upstreamErr *UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, http.StatusTooManyRequests, upstreamErr.Status)
	assert.Contains(t, upstreamErr.Body, "rate limit exceeded")
}

func TestRelay_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		json.NewEncoder(w).Encode(completionReply("too late"))
	}))
	defer server.Close()

	cfg := testChatConfig(server.URL + "/v1")
	cfg.TimeoutMS = 50
	svc := NewChatService(cfg)

	_, err := svc.Relay(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrUpstreamTimeout)
}

func TestRelay_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"choices": []interface{}{},
		})
	}))
	defer server.Close()

	svc := NewChatService(testChatConfig(server.URL + "/v1"))
	_, err := svc.Relay(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestRelay_BlankCompletionFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(completionReply(""))
	}))
	defer server.Close()

	svc := NewChatService(testChatConfig(server.URL + "/v1"))
	reply, err := svc.Relay(context.Background(), "hello")

	require.NoError(t, err)
	assert.Equal(t, "Sorry, I could not generate a response right now.", reply)
}
