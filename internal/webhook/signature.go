package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/feral-file/ff-token-gate/internal/domain"
)

const (
	HeaderSignature = "X-TokenGate-Signature"
	HeaderEventID   = "X-TokenGate-Event-ID"
	HeaderEventType = "X-TokenGate-Event-Type"
	HeaderTimestamp = "X-TokenGate-Timestamp"

	signaturePrefix = "sha256="
	userAgent       = "FF-Token-Gate-Webhook/1.0"
)

var (
	ErrMissingHeaders   = errors.New("missing webhook headers")
	ErrStaleTimestamp   = errors.New("webhook timestamp outside tolerance")
	ErrInvalidSignature = errors.New("invalid webhook signature")
)

// SignedRequest is an event body ready to be POSTed to a client
type SignedRequest struct {
	Body      []byte
	Timestamp int64
	Headers   map[string]string
}

// Sign serializes the event and signs {timestamp}.{event_id}.{body} with the client secret
func Sign(secret string, event domain.ScreeningEvent, now time.Time) (*SignedRequest, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}

	ts := now.Unix()
	return &SignedRequest{
		Body:      body,
		Timestamp: ts,
		Headers: map[string]string{
			"Content-Type":  "application/json",
			"User-Agent":    userAgent,
			HeaderSignature: signature(secret, ts, event.EventID, body),
			HeaderEventID:   event.EventID,
			HeaderEventType: event.EventType,
			HeaderTimestamp: strconv.FormatInt(ts, 10),
		},
	}, nil
}

// VerifySignature checks a signature header value against the body it was sent with
func VerifySignature(secret string, body []byte, sig string, timestamp int64, eventID string) bool {
	if !strings.HasPrefix(sig, signaturePrefix) {
		return false
	}
	return hmac.Equal([]byte(signature(secret, timestamp, eventID, body)), []byte(sig))
}

// VerifyRequest is the receiver side check: headers present, timestamp within
// tolerance of now and a matching signature
func VerifyRequest(secret string, header http.Header, body []byte, tolerance time.Duration, now time.Time) error {
	sig := header.Get(HeaderSignature)
	eventID := header.Get(HeaderEventID)
	rawTS := header.Get(HeaderTimestamp)
	if sig == "" || eventID == "" || rawTS == "" {
		return ErrMissingHeaders
	}

	ts, err := strconv.ParseInt(rawTS, 10, 64)
	if err != nil {
		return ErrMissingHeaders
	}
	if age := now.Sub(time.Unix(ts, 0)); age > tolerance || age < -tolerance {
		return ErrStaleTimestamp
	}

	if !VerifySignature(secret, body, sig, ts, eventID) {
		return ErrInvalidSignature
	}
	return nil
}

func signature(secret string, timestamp int64, eventID string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s.", timestamp, eventID)
	mac.Write(body)
	return signaturePrefix + hex.EncodeToString(mac.Sum(nil))
}
