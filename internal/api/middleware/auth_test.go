package middleware

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "operator-key"

func newKeyPair(t *testing.T) (*rsa.PrivateKey, string) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	return key, string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))
}

func signToken(t *testing.T, key *rsa.PrivateKey, method jwt.SigningMethod, claims jwt.RegisteredClaims) string {
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestNewAuthenticator(t *testing.T) {
	_, err := NewAuthenticator(AuthConfig{JWTPublicKey: "not a pem"})
	assert.Error(t, err)

	a, err := NewAuthenticator(AuthConfig{APIKeys: []string{" ", testAPIKey}})
	require.NoError(t, err)
	assert.Len(t, a.apiKeys, 1)
	assert.Nil(t, a.publicKey)
}

func TestAuthenticate(t *testing.T) {
	key, publicPEM := newKeyPair(t)
	otherKey, _ := newKeyPair(t)
	a, err := NewAuthenticator(AuthConfig{JWTPublicKey: publicPEM, APIKeys: []string{testAPIKey}})
	require.NoError(t, err)

	valid := signToken(t, key, jwt.SigningMethodRS256, jwt.RegisteredClaims{
		Subject:   "operator@example.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	expired := signToken(t, key, jwt.SigningMethodRS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})
	notYet := signToken(t, key, jwt.SigningMethodRS256, jwt.RegisteredClaims{
		NotBefore: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	foreign := signToken(t, otherKey, jwt.SigningMethodRS256, jwt.RegisteredClaims{})
	pss := signToken(t, key, jwt.SigningMethodPS256, jwt.RegisteredClaims{})

	both := []string{SchemeBearer, SchemeAPIKey}
	keyOnly := []string{SchemeAPIKey}

	tests := []struct {
		name    string
		header  string
		allowed []string
		scheme  string
	}{
		{name: "valid jwt", header: "Bearer " + valid, allowed: both, scheme: SchemeBearer},
		{name: "jwt on api key endpoint", header: "Bearer " + valid, allowed: keyOnly},
		{name: "expired jwt", header: "Bearer " + expired, allowed: both},
		{name: "jwt not yet valid", header: "Bearer " + notYet, allowed: both},
		{name: "jwt signed by another key", header: "Bearer " + foreign, allowed: both},
		{name: "jwt with a non rsa method", header: "Bearer " + pss, allowed: both},
		{name: "valid api key", header: "ApiKey " + testAPIKey, allowed: keyOnly, scheme: SchemeAPIKey},
		{name: "scheme is case insensitive", header: "APIKEY " + testAPIKey, allowed: keyOnly, scheme: SchemeAPIKey},
		{name: "wrong api key", header: "ApiKey nope", allowed: both},
		{name: "missing header", header: "", allowed: both},
		{name: "malformed header", header: "ApiKey", allowed: both},
		{name: "unsupported scheme", header: "Basic dXNlcjpwYXNz", allowed: both},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			principal, err := a.Authenticate(tt.header, tt.allowed...)
			if tt.scheme == "" {
				assert.Error(t, err)
				assert.Nil(t, principal)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.scheme, principal.Scheme)
		})
	}

	t.Run("subject is carried from the token", func(t *testing.T) {
		principal, err := a.Authenticate("Bearer "+valid, both...)
		require.NoError(t, err)
		assert.Equal(t, "operator@example.com", principal.Subject)
	})

	t.Run("bearer without a configured key", func(t *testing.T) {
		keysOnly, err := NewAuthenticator(AuthConfig{APIKeys: []string{testAPIKey}})
		require.NoError(t, err)
		_, err = keysOnly.Authenticate("Bearer "+valid, both...)
		assert.ErrorIs(t, err, errJWTDisabled)
	})
}

func TestRequire(t *testing.T) {
	gin.SetMode(gin.TestMode)
	a, err := NewAuthenticator(AuthConfig{APIKeys: []string{testAPIKey}})
	require.NoError(t, err)

	router := gin.New()
	router.GET("/admin", a.Require(SchemeBearer, SchemeAPIKey), func(c *gin.Context) {
		principal, ok := PrincipalFrom(c)
		require.True(t, ok)
		c.String(http.StatusOK, principal.Scheme)
	})
	router.GET("/machine", a.Require(SchemeAPIKey), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	t.Run("api key passes", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "ApiKey "+testAPIKey)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, SchemeAPIKey, w.Body.String())
	})

	t.Run("rejection is a json envelope", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/machine", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), `"code":"unauthorized"`)
	})
}

func TestParseRSAPublicKey(t *testing.T) {
	key, publicPEM := newKeyPair(t)

	parsed, err := parseRSAPublicKey(publicPEM)
	require.NoError(t, err)
	assert.Equal(t, key.PublicKey.N, parsed.N)

	pkcs1 := pem.EncodeToMemory(&pem.Block{Type: "RSA PUBLIC KEY", Bytes: x509.MarshalPKCS1PublicKey(&key.PublicKey)})
	parsed, err = parseRSAPublicKey(string(pkcs1))
	require.NoError(t, err)
	assert.Equal(t, key.PublicKey.E, parsed.E)

	_, err = parseRSAPublicKey("not a pem")
	assert.Error(t, err)
}
