package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/supercells/supercells-api/internal/entity"
)

type contextKey string

const sessionKey contextKey = "session"

// Auth validates the Bearer token and stores the resulting session in the
// request context. Tokens are HS256, signed by the identity frontend.
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				unauthorized(w, "missing bearer token")
				return
			}

			tokenString := strings.TrimPrefix(header, "Bearer ")

			claims := jwt.MapClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				unauthorized(w, "invalid token")
				return
			}

			sub, err := claims.GetSubject()
			if err != nil || sub == "" {
				unauthorized(w, "token missing subject")
				return
			}

			session := &entity.Session{UserID: sub}
			if email, ok := claims["email"].(string); ok {
				session.Email = email
			}
			if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
				session.ExpiresAt = exp.Time
				if time.Now().After(exp.Time) {
					unauthorized(w, "token expired")
					return
				}
			}

			ctx := context.WithValue(r.Context(), sessionKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ContextWithSession injects a session directly, bypassing token
// parsing. The worker and tests use it.
func ContextWithSession(ctx context.Context, session *entity.Session) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}

// SessionFromContext returns the authenticated session, or nil outside the
// Auth middleware.
func SessionFromContext(ctx context.Context) *entity.Session {
	session, _ := ctx.Value(sessionKey).(*entity.Session)
	return session
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
