package identity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func TestGetUserInfo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer provider-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"sub":"abc123","email":"ivan@inalogystics.com","name":"Ivan Petrov","picture":"https://img.example/ivan.png"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, noopLogger{})

	info, err := c.GetUserInfo(context.Background(), "provider-token")
	require.NoError(t, err)

	assert.Equal(t, "abc123", info.Sub)
	assert.Equal(t, "ivan@inalogystics.com", info.Email)
	assert.Equal(t, "Ivan Petrov", info.Name)
}

func TestGetUserInfo_Unauthorized(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		c := NewClient(srv.URL, time.Second, noopLogger{})
		_, err := c.GetUserInfo(context.Background(), "expired-token")
		require.ErrorIs(t, err, ErrUnauthorized)

		srv.Close()
	}
}

func TestGetUserInfo_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, noopLogger{})
	_, err := c.GetUserInfo(context.Background(), "provider-token")
	require.ErrorIs(t, err, ErrInvalidResponse)
}

func TestGetUserInfo_MissingEmail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"sub":"abc123"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, noopLogger{})
	_, err := c.GetUserInfo(context.Background(), "provider-token")
	require.ErrorIs(t, err, ErrInvalidResponse)
}
