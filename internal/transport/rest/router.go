package rest

import (
	"net/http"
	"os"

	"smartcareer/internal/service"
	"smartcareer/internal/transport/rest/handler"
	"smartcareer/internal/transport/rest/middleware"

	"github.com/gorilla/mux"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService     *service.AuthService
	QuizService     *service.QuizService
	ChatService     *service.ChatService
	FeedbackService *service.FeedbackService
	ResumeService   *service.ResumeService
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	quizHandler := handler.NewQuizHandler(c.QuizService)
	catalogHandler := handler.NewCatalogHandler()
	chatHandler := handler.NewChatHandler(c.ChatService)
	feedbackHandler := handler.NewFeedbackHandler(c.FeedbackService)
	resumeHandler := handler.NewResumeHandler(c.ResumeService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Session lifecycle
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/register", authHandler.Register).Methods("POST", "OPTIONS")
	api.HandleFunc("/login", authHandler.Login).Methods("POST", "OPTIONS")
	r.HandleFunc("/logout", authHandler.Logout).Methods("GET")

	// Public reference data
	api.HandleFunc("/colleges", catalogHandler.Colleges).Methods("GET", "OPTIONS")
	api.HandleFunc("/skills", catalogHandler.Skills).Methods("GET", "OPTIONS")
	api.HandleFunc("/careers", catalogHandler.Careers).Methods("GET", "OPTIONS")
	api.HandleFunc("/scholarships", catalogHandler.Scholarships).Methods("GET", "OPTIONS")

	// Public tools
	api.HandleFunc("/build_resume", resumeHandler.Build).Methods("POST", "OPTIONS")
	api.HandleFunc("/chat", chatHandler.Chat).Methods("POST", "OPTIONS")
	api.HandleFunc("/submit_feedback", feedbackHandler.Submit).Methods("POST", "OPTIONS")

	// Authenticated routes
	userRoutes := api.NewRoute().Subrouter()
	userRoutes.Use(authMW.RequireUser)

	userRoutes.HandleFunc("/submit_quiz", quizHandler.Submit).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/user/stats", authHandler.Stats).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
