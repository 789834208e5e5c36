package services

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/bankist/backend/internal/bank"
	"github.com/bankist/backend/internal/middleware"
	"github.com/bankist/backend/internal/models"
	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v5"
)

type AuthService struct {
	dashboard *DashboardService
	redis     *redis.Client
	secret    []byte
	expiry    time.Duration
	validator *ValidationHelper
}

// AuthResponse represents the authentication response
// @Description Authentication response structure
type AuthResponse struct {
	Token     string           `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."` // JWT token
	Dashboard models.ViewModel `json:"dashboard"`                                               // Dashboard of the logged-in account
}

func NewAuthService(dashboard *DashboardService, redisClient *redis.Client, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		dashboard: dashboard,
		redis:     redisClient,
		secret:    []byte(secret),
		expiry:    expiry,
		validator: NewValidationHelper(),
	}
}

// Login handles user authentication
// @Summary Login
// @Description Log in with a username and PIN. Replaces any current session.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login request"
// @Success 200 {object} AuthResponse "Login successful"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 401 {object} ErrorResponse "InvalidCredentials"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (s *AuthService) Login(w http.ResponseWriter, r *http.Request) {
	log.Printf("[AUTH] Login attempt from IP: %s", r.RemoteAddr)

	var req models.LoginRequest
	if !DecodeJSONBody(w, r, &req) {
		log.Printf("[AUTH] Login failed - invalid request")
		return
	}

	if err := s.validator.ValidateStruct(&req); err != nil {
		log.Printf("[AUTH] Login validation failed: %v", err)
		SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return
	}

	pin, err := strconv.Atoi(req.PIN)
	if err != nil {
		log.Printf("[AUTH] Non-numeric PIN for user: %s", req.Username)
		SendRejection(w, bank.ErrInvalidCredentials)
		return
	}

	sid, vm, err := s.dashboard.Login(req.Username, pin)
	if err != nil {
		log.Printf("[AUTH] Invalid credentials for user: %s", req.Username)
		SendRejection(w, err)
		return
	}

	token, err := s.GenerateToken(req.Username, sid)
	if err != nil {
		log.Printf("[AUTH] JWT generation failed for user %s: %v", req.Username, err)
		s.dashboard.Logout(sid)
		SendErrorResponse(w, "Failed to generate token", http.StatusInternalServerError, nil)
		return
	}

	log.Printf("[AUTH] Login successful for user %s", req.Username)
	writeJSON(w, http.StatusOK, AuthResponse{Token: token, Dashboard: vm})
}

// Logout handles user logout
// @Summary Logout
// @Description End the session and revoke its token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string "Logout successful"
// @Failure 401 {object} ErrorResponse
// @Router /auth/logout [post]
func (s *AuthService) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	username := middleware.Username(ctx)
	s.dashboard.Logout(middleware.SessionID(ctx))

	if token := middleware.Token(ctx); token != "" && s.redis != nil {
		// Blacklist token until its expiration
		if err := s.redis.Set(ctx, middleware.BlacklistKey(token), "1", s.expiry).Err(); err != nil {
			log.Printf("[AUTH] Failed to blacklist token: %v", err)
		}
	}

	log.Printf("[AUTH] Logout for user %s", username)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logout successful"})
}

// GenerateToken signs a session token for username and sid.
func (s *AuthService) GenerateToken(username, sid string) (string, error) {
	if len(s.secret) == 0 {
		return "", fmt.Errorf("jwt secret is not configured")
	}
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, middleware.Claims{
		Username:  username,
		SessionID: sid,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	})
	return token.SignedString(s.secret)
}
