package model

// ChatRequest is the request body for the chat endpoint
type ChatRequest struct {
	Message      string `json:"message"`
	ClearHistory bool   `json:"clear_history,omitempty"`
}

// ChatResponse is returned from the chat endpoint
type ChatResponse struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Success bool   `json:"success"`
}
