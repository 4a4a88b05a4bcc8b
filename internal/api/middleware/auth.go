package middleware

import (
	"crypto/rsa"
	"crypto/subtle"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/ff-token-gate/internal/api/shared/errors"
	"github.com/feral-file/ff-token-gate/internal/logger"
)

// Authorization schemes, compared case-insensitively
const (
	SchemeBearer = "bearer"
	SchemeAPIKey = "apikey"
)

const principalKey = "auth_principal"

var (
	errMissingHeader = errors.New("missing Authorization header")
	errMalformed     = errors.New("invalid Authorization header format")
	errJWTDisabled   = errors.New("JWT public key not configured")
	errInvalidAPIKey = errors.New("invalid API key")
)

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string // RSA public key in PEM format, empty disables bearer tokens
	APIKeys      []string
}

// Principal is the authenticated caller of a request
type Principal struct {
	Scheme  string
	Subject string
	Claims  *jwt.RegisteredClaims
}

// Authenticator checks Authorization headers. It is built once at startup
// so a malformed public key fails the process instead of every request.
type Authenticator struct {
	publicKey *rsa.PublicKey
	apiKeys   [][]byte
	parser    *jwt.Parser
}

func NewAuthenticator(cfg AuthConfig) (*Authenticator, error) {
	a := &Authenticator{
		parser: jwt.NewParser(jwt.WithValidMethods([]string{"RS256", "RS384", "RS512"})),
	}

	if strings.TrimSpace(cfg.JWTPublicKey) != "" {
		key, err := parseRSAPublicKey(cfg.JWTPublicKey)
		if err != nil {
			return nil, fmt.Errorf("failed to parse JWT public key: %w", err)
		}
		a.publicKey = key
	}

	for _, k := range cfg.APIKeys {
		if k = strings.TrimSpace(k); k != "" {
			a.apiKeys = append(a.apiKeys, []byte(k))
		}
	}

	return a, nil
}

// Authenticate resolves the header against the allowed schemes
func (a *Authenticator) Authenticate(header string, allowed ...string) (*Principal, error) {
	if header == "" {
		return nil, errMissingHeader
	}
	scheme, credentials, ok := strings.Cut(header, " ")
	if !ok || credentials == "" {
		return nil, errMalformed
	}

	scheme = strings.ToLower(scheme)
	if !slices.Contains(allowed, scheme) {
		return nil, fmt.Errorf("authorization scheme %q not accepted here", scheme)
	}

	switch scheme {
	case SchemeBearer:
		claims, err := a.verifyJWT(credentials)
		if err != nil {
			return nil, err
		}
		return &Principal{Scheme: SchemeBearer, Subject: claims.Subject, Claims: claims}, nil
	case SchemeAPIKey:
		if !a.knownAPIKey(credentials) {
			return nil, errInvalidAPIKey
		}
		return &Principal{Scheme: SchemeAPIKey}, nil
	default:
		return nil, fmt.Errorf("unsupported authorization type: %s", scheme)
	}
}

// Require rejects requests that do not authenticate with one of the schemes
func (a *Authenticator) Require(schemes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, err := a.Authenticate(c.GetHeader("Authorization"), schemes...)
		if err != nil {
			logger.WarnCtx(c.Request.Context(), "Authentication failed",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierrors.NewUnauthorizedError("Authentication failed", err.Error()))
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// PrincipalFrom returns the caller set by Require
func PrincipalFrom(c *gin.Context) (*Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil, false
	}
	p, ok := v.(*Principal)
	return p, ok
}

// verifyJWT checks the RSA signature; exp and nbf are validated by the parser
func (a *Authenticator) verifyJWT(raw string) (*jwt.RegisteredClaims, error) {
	if a.publicKey == nil {
		return nil, errJWTDisabled
	}

	claims := &jwt.RegisteredClaims{}
	if _, err := a.parser.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return a.publicKey, nil
	}); err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	return claims, nil
}

func (a *Authenticator) knownAPIKey(candidate string) bool {
	found := false
	for _, k := range a.apiKeys {
		if subtle.ConstantTimeCompare(k, []byte(candidate)) == 1 {
			found = true
		}
	}
	return found
}

// parseRSAPublicKey accepts PKIX and PKCS1 encodings
func parseRSAPublicKey(publicKeyPEM string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(publicKeyPEM))
	if block == nil {
		return nil, errors.New("no PEM block found")
	}

	if key, err := x509.ParsePKCS1PublicKey(block.Bytes); err == nil {
		return key, nil
	}

	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, err
	}
	key, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("public key is not an RSA key")
	}
	return key, nil
}
