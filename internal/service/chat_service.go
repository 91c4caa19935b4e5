package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"strings"
	"time"

	"smartcareer/internal/config"

	openai "github.com/sashabaranov/go-openai"
)

var (
	ErrEmptyMessage    = errors.New("message cannot be empty")
	ErrAPIKeyMissing   = errors.New("API key not configured on server")
	ErrUpstreamTimeout = errors.New("request timed out")
	ErrEmptyCompletion = errors.New("API returned empty response")
)

// UpstreamError reports a non-success response from the completion API;
// its status code is relayed to the client
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("API request failed with status %d: %s", e.Status, e.Body)
}

// systemPrompt pins the assistant to the career counselor role for every
// relayed message
const systemPrompt = "You are a professional career guidance counselor assistant for Indian students and " +
	"professionals. Give clear, practical, step-by-step advice about careers, skills, " +
	"education paths, colleges, and job search. Keep answers structured and easy to follow."

// ChatService relays chat messages to an OpenAI-compatible completion
// API. No conversation history is kept server-side; every relay is a
// fresh two-message exchange.
type ChatService struct {
	cfg    *config.ChatConfig
	client *openai.Client
}

// headerTransport injects the attribution headers OpenRouter expects on
// every request
type headerTransport struct {
	siteURL  string
	appTitle string
	base     http.RoundTripper
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("HTTP-Referer", t.siteURL)
	req.Header.Set("X-Title", t.appTitle)
	return t.base.RoundTrip(req)
}

// NewChatService creates a new chat relay service
func NewChatService(cfg *config.ChatConfig) *ChatService {
	if !cfg.IsEnabled() {
		log.Println("Warning: OPENROUTER_API_KEY not set, chat relay disabled")
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.BaseURL = cfg.BaseURL
	clientCfg.HTTPClient = &http.Client{
		Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		Transport: &headerTransport{
			siteURL:  cfg.SiteURL,
			appTitle: cfg.AppTitle,
			base:     http.DefaultTransport,
		},
	}

	return &ChatService{
		cfg:    cfg,
		client: openai.NewClientWithConfig(clientCfg),
	}
}

// Relay forwards the user message (plus the fixed system prompt) to the
// completion API and returns the assistant reply. Nothing is retried;
// failures map to the error kinds above.
func (s *ChatService) Relay(ctx context.Context, userMessage string) (string, error) {
	userMessage = strings.TrimSpace(userMessage)
	if userMessage == "" {
		return "", ErrEmptyMessage
	}
	if !s.cfg.IsEnabled() {
		return "", ErrAPIKeyMissing
	}

	log.Printf("[Chat Relay] forwarding message (%d chars) to %s", len(userMessage), s.cfg.Model)

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.cfg.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userMessage},
		},
		Temperature: s.cfg.Temperature,
		MaxTokens:   s.cfg.MaxTokens,
	})
	if err != nil {
		return "", mapRelayError(err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	reply := resp.Choices[0].Message.Content
	if reply == "" {
		reply = "Sorry, I could not generate a response right now."
	}
	return reply, nil
}

func mapRelayError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &UpstreamError{Status: apiErr.HTTPStatusCode, Body: apiErr.Message}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &UpstreamError{Status: reqErr.HTTPStatusCode, Body: string(reqErr.Body)}
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return ErrUpstreamTimeout
	}

	return fmt.Errorf("network error: %w", err)
}
