package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smartcareer/internal/config"
	"smartcareer/internal/service"
	"smartcareer/internal/store"
	"smartcareer/internal/transport/rest"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	cfg := config.Load()

	// Load chat config and log relay settings
	chatConfig := config.DefaultChatConfig()
	log.Printf("Chat Relay Config:")
	log.Printf("  Base URL: %s", chatConfig.BaseURL)
	log.Printf("  Model:    %s", chatConfig.Model)
	if chatConfig.IsEnabled() {
		log.Println("  API Key:  configured")
	} else {
		log.Println("  API Key:  NOT SET (chat endpoint will report a config error)")
	}

	// Initialize in-memory stores (process-lifetime state)
	userStore := store.NewUserStore()
	resultStore := store.NewResultStore()
	progressStore := store.NewProgressStore()
	feedbackStore := store.NewFeedbackStore()

	// Initialize services
	authSvc := service.NewAuthService(userStore, progressStore, cfg.JWTSecret)
	quizSvc := service.NewQuizService(resultStore, progressStore)
	chatSvc := service.NewChatService(chatConfig)
	feedbackSvc := service.NewFeedbackService(
		feedbackStore,
		cfg.Web3FormsKey,
		cfg.Web3FormsURL,
		time.Duration(cfg.FeedbackTimeoutS)*time.Second,
	)
	resumeSvc := service.NewResumeService()

	// Create router with container
	container := &rest.Container{
		AuthService:     authSvc,
		QuizService:     quizSvc,
		ChatService:     chatSvc,
		FeedbackService: feedbackSvc,
		ResumeService:   resumeSvc,
	}

	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		log.Println("Endpoints:")
		log.Println("  POST /api/register")
		log.Println("  POST /api/login")
		log.Println("  GET  /logout")
		log.Println("  POST /api/submit_quiz")
		log.Println("  POST /api/build_resume")
		log.Println("  GET  /api/colleges?type=iits|nits|aiims|private|iims|all")
		log.Println("  GET  /api/skills")
		log.Println("  GET  /api/careers")
		log.Println("  GET  /api/scholarships")
		log.Println("  GET  /api/user/stats")
		log.Println("  POST /api/chat")
		log.Println("  POST /api/submit_feedback")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
