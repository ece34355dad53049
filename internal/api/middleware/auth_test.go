package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

var testSecret = []byte("test-secret")

func signToken(t *testing.T, claims *SessionClaims, secret []byte) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return token
}

func authedHandler(t *testing.T, gotEmail *string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, ok := GetEmail(r.Context())
		require.True(t, ok)
		*gotEmail = email
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuth_ValidToken(t *testing.T) {
	token := signToken(t, &SessionClaims{
		Email: "ivan@inalogystics.com",
		Name:  "Ivan Petrov",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, testSecret)

	var gotEmail string
	mw := Auth(testSecret, noopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/desks", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	mw(authedHandler(t, &gotEmail)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ivan@inalogystics.com", gotEmail)
}

func TestAuth_Rejections(t *testing.T) {
	expired := signToken(t, &SessionClaims{
		Email: "ivan@inalogystics.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}, testSecret)
	wrongKey := signToken(t, &SessionClaims{Email: "ivan@inalogystics.com"}, []byte("other-secret"))
	noEmail := signToken(t, &SessionClaims{}, testSecret)

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not bearer", "Basic abc"},
		{"garbage token", "Bearer not.a.jwt"},
		{"expired token", "Bearer " + expired},
		{"wrong signing key", "Bearer " + wrongKey},
		{"missing email claim", "Bearer " + noEmail},
	}

	mw := Auth(testSecret, noopLogger{})
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be called")
	})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/desks", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			mw(next).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestGetEmail_EmptyContext(t *testing.T) {
	_, ok := GetEmail(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	assert.False(t, ok)
}
