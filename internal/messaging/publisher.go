package messaging

import (
	"context"

	"github.com/feral-file/ff-token-gate/internal/domain"
)

// Publisher defines the interface for publishing screening events to the message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishEvent publishes a screening event to the message broker
	PublishEvent(ctx context.Context, event *domain.ScreeningEvent) error
	// Close closes the connection
	Close()
}
