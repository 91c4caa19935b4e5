package config

import "os"

// Config holds server-level configuration read from the environment
type Config struct {
	Port             string
	JWTSecret        string
	Web3FormsKey     string
	Web3FormsURL     string
	CORSOrigins      string
	FeedbackTimeoutS int
}

// Load reads server configuration from environment variables
func Load() *Config {
	return &Config{
		Port:             getEnv("PORT", "8080"),
		JWTSecret:        getEnv("JWT_SECRET", "super-secret-key-change-in-production"),
		Web3FormsKey:     os.Getenv("WEB3FORMS_ACCESS_KEY"),
		Web3FormsURL:     getEnv("WEB3FORMS_URL", "https://api.web3forms.com/submit"),
		CORSOrigins:      getEnv("CORS_ALLOWED_ORIGINS", "*"),
		FeedbackTimeoutS: 15,
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
