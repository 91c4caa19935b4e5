package service

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"smartcareer/internal/model"
	"smartcareer/internal/store"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrWeakPassword       = errors.New("password must be at least 6 characters")
	ErrMissingFields      = errors.New("all fields required")
)

var emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// AuthService handles registration, login, and session tokens
type AuthService struct {
	users     store.UserStore
	progress  store.ProgressStore
	jwtSecret []byte

	mu      sync.Mutex
	revoked map[string]struct{} // revoked token IDs, cleared on restart
}

// NewAuthService creates a new auth service
func NewAuthService(users store.UserStore, progress store.ProgressStore, jwtSecret string) *AuthService {
	return &AuthService{
		users:     users,
		progress:  progress,
		jwtSecret: []byte(jwtSecret),
		revoked:   make(map[string]struct{}),
	}
}

// NormalizeEmail trims whitespace and lowercases the address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register validates and creates a new account
func (s *AuthService) Register(email, password, name string) error {
	email = NormalizeEmail(email)
	name = strings.TrimSpace(name)

	if email == "" || password == "" || name == "" {
		return ErrMissingFields
	}
	if len(password) < 6 {
		return ErrWeakPassword
	}
	if !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	if !s.users.Create(user) {
		return ErrEmailTaken
	}

	return nil
}

// Login validates credentials and returns a session token
func (s *AuthService) Login(email, password string) (*model.LoginResponse, error) {
	email = NormalizeEmail(email)

	user := s.users.GetByEmail(email)
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	claims := &model.SessionClaims{
		Email: user.Email,
		Name:  user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &model.LoginResponse{
		Token: tokenString,
		Name:  user.Name,
		Email: user.Email,
	}, nil
}

// ValidateToken validates a session JWT and returns its claims.
// Tokens revoked by logout are rejected even before expiry.
func (s *AuthService) ValidateToken(tokenString string) (*model.SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	s.mu.Lock()
	_, isRevoked := s.revoked[claims.ID]
	s.mu.Unlock()
	if isRevoked {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// Logout revokes the presented session token. Revoking an already
// invalid token is not an error.
func (s *AuthService) Logout(tokenString string) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return
	}

	s.mu.Lock()
	s.revoked[claims.ID] = struct{}{}
	s.mu.Unlock()
}

// Stats returns the profile and progress counters for a user
func (s *AuthService) Stats(email string) (*model.UserStats, error) {
	user := s.users.GetByEmail(email)
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	progress := s.progress.Get(email)
	return &model.UserStats{
		Name:           user.Name,
		Email:          user.Email,
		Joined:         user.CreatedAt.Format(time.RFC3339),
		QuizzesTaken:   progress.QuizzesTaken,
		MatchesFound:   progress.MatchesFound,
		RoadmapsViewed: progress.RoadmapsViewed,
	}, nil
}
