package config

import "os"

// ChatConfig holds configuration for the career counselor chat relay.
// The relay talks to OpenRouter, which speaks the OpenAI chat completions
// protocol.
type ChatConfig struct {
	APIKey      string  `json:"-"` // Never serialize
	BaseURL     string  `json:"baseUrl"`
	Model       string  `json:"model"`
	SiteURL     string  `json:"siteUrl"`
	AppTitle    string  `json:"appTitle"`
	Temperature float32 `json:"temperature"`
	MaxTokens   int     `json:"maxTokens"`
	TimeoutMS   int     `json:"timeoutMs"`
}

// DefaultChatConfig returns the default chat relay configuration
func DefaultChatConfig() *ChatConfig {
	return &ChatConfig{
		APIKey:      os.Getenv("OPENROUTER_API_KEY"),
		BaseURL:     getEnvOrDefault("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
		Model:       getEnvOrDefault("OPENROUTER_MODEL", "openai/gpt-4o-mini"),
		SiteURL:     getEnvOrDefault("OPENROUTER_SITE_URL", "http://localhost:8080"),
		AppTitle:    getEnvOrDefault("OPENROUTER_APP_TITLE", "SmartCareer"),
		Temperature: 0.7,
		MaxTokens:   800,
		TimeoutMS:   30000, // 30 second upstream budget, no retry
	}
}

// IsEnabled returns true if the chat API is configured
func (c *ChatConfig) IsEnabled() bool {
	return c.APIKey != ""
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
