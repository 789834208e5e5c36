package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/bankist/backend/internal/bank"
	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const (
	usernameKey  contextKey = "username"
	sessionIDKey contextKey = "sessionID"
	tokenKey     contextKey = "token"
)

// Claims is the payload of a dashboard session token.
type Claims struct {
	Username  string `json:"username"`
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// SessionValidator reports whether a token still refers to the live session.
type SessionValidator interface {
	ValidateSession(username, sid string) error
}

var (
	redisClient *redis.Client
	jwtSecret   []byte
	sessions    SessionValidator
)

// InitAuthMiddleware wires the token secret, the optional redis client used
// for revoked tokens and the session validator.
func InitAuthMiddleware(rdb *redis.Client, secret string, validator SessionValidator) {
	redisClient = rdb
	jwtSecret = []byte(secret)
	sessions = validator
}

func BlacklistKey(token string) string {
	return fmt.Sprintf("blacklist:%s", token)
}

func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Get token from Authorization header
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeAuthError(w, "Authorization header required", "")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			writeAuthError(w, "Invalid authorization header format", "")
			return
		}
		token := parts[1]

		claims, err := ParseToken(token)
		if err != nil {
			log.Printf("[AUTH] Token rejected: %v", err)
			writeAuthError(w, "Invalid token", "")
			return
		}

		if redisClient != nil {
			n, err := redisClient.Exists(r.Context(), BlacklistKey(token)).Result()
			if err != nil {
				log.Printf("[AUTH] Blacklist lookup failed: %v", err)
			} else if n > 0 {
				writeAuthError(w, "Token has been revoked", "")
				return
			}
		}

		if sessions != nil {
			if err := sessions.ValidateSession(claims.Username, claims.SessionID); err != nil {
				writeAuthError(w, err.Error(), string(bank.ReasonOf(err)))
				return
			}
		}

		ctx := context.WithValue(r.Context(), usernameKey, claims.Username)
		ctx = context.WithValue(ctx, sessionIDKey, claims.SessionID)
		ctx = context.WithValue(ctx, tokenKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ParseToken verifies an HS256 session token and returns its claims.
func ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}
	if claims.Username == "" || claims.SessionID == "" {
		return nil, errors.New("token is missing session claims")
	}
	return claims, nil
}

// WithSession returns ctx carrying the values AuthMiddleware would set.
func WithSession(ctx context.Context, username, sid, token string) context.Context {
	ctx = context.WithValue(ctx, usernameKey, username)
	ctx = context.WithValue(ctx, sessionIDKey, sid)
	return context.WithValue(ctx, tokenKey, token)
}

func Username(ctx context.Context) string {
	v, _ := ctx.Value(usernameKey).(string)
	return v
}

func SessionID(ctx context.Context) string {
	v, _ := ctx.Value(sessionIDKey).(string)
	return v
}

func Token(ctx context.Context) string {
	v, _ := ctx.Value(tokenKey).(string)
	return v
}

func writeAuthError(w http.ResponseWriter, message, reason string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	body := map[string]string{"error": message}
	if reason != "" {
		body["reason"] = reason
	}
	json.NewEncoder(w).Encode(body)
}
