package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-token-gate/internal/api/middleware"
	"github.com/feral-file/ff-token-gate/internal/mocks"
)

func TestNewRejectsBadJWTKey(t *testing.T) {
	_, err := New(Config{Auth: middleware.AuthConfig{JWTPublicKey: "garbage"}}, nil, nil)
	assert.Error(t, err)
}

func TestRouter(t *testing.T) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(prometheus.NewCounter(prometheus.CounterOpts{Name: "token_gate_test_total", Help: "test"}))

	srv, err := New(Config{Auth: middleware.AuthConfig{APIKeys: []string{"k"}}}, mocks.NewMockAPIExecutor(gomock.NewController(t)), registry)
	require.NoError(t, err)
	router := srv.Router()

	t.Run("health", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("metrics", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "token_gate_test_total")
	})

	t.Run("operator routes require auth", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/settings", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
