package webhook

import (
	"slices"

	"github.com/feral-file/ff-token-gate/internal/domain"
)

// SupportedEventTypes are the values a client may put in its event filters
var SupportedEventTypes = []string{
	domain.EventTypeMembershipAdded,
	domain.EventTypeMembershipRemoved,
	domain.EventTypeRunCompleted,
	domain.EventTypeWildcard,
}

func IsValidEventType(eventType string) bool {
	return slices.Contains(SupportedEventTypes, eventType)
}

// DeliveryResult is what the delivery activity hands back to the workflow
type DeliveryResult struct {
	Delivered  bool
	StatusCode int
	// Body is truncated to MaxResponseBody bytes
	Body  string
	Error string
}

// MaxResponseBody caps how much of a client response is kept
const MaxResponseBody = 4 * 1024

// Retryable reports whether a failed delivery with this status is worth
// another attempt. Client errors other than timeouts and rate limits are final.
func Retryable(statusCode int) bool {
	if statusCode == 408 || statusCode == 429 {
		return true
	}
	return statusCode < 400 || statusCode >= 500
}
