package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/inalogystics/DeskBookingService/internal/api/handlers"
)

type contextKey string

const (
	emailContextKey contextKey = "session_email"
	nameContextKey  contextKey = "session_name"
)

const msgUnauthorized = "authentication required"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// SessionClaims клеймы сессионного токена сервиса
type SessionClaims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// Auth проверяет Bearer-токен сессии и кладет email пользователя в контекст
func Auth(secret []byte, log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			tokenString := strings.TrimPrefix(header, "Bearer ")

			claims := &SessionClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return secret, nil
			})

			if err != nil || !token.Valid || claims.Email == "" {
				log.Warn("%s %s - Rejected session token: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			ctx := WithEmail(r.Context(), claims.Email)
			ctx = WithName(ctx, claims.Name)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithEmail кладет email аутентифицированного пользователя в контекст
func WithEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, emailContextKey, email)
}

// WithName кладет имя аутентифицированного пользователя в контекст
func WithName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, nameContextKey, name)
}

// GetEmail возвращает email пользователя из контекста запроса
func GetEmail(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(emailContextKey).(string)
	return email, ok && email != ""
}

// GetName возвращает имя пользователя из контекста запроса
func GetName(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(nameContextKey).(string)
	return name, ok && name != ""
}
