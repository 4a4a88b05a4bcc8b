package notification

import "context"

// Sink delivers a rendered message to an external channel
//
//go:generate mockgen -source=sink.go -destination=../mocks/sink.go -package=mocks -mock_names=Sink=MockSink
type Sink interface {
	// Send delivers text to the chat. Failures wrap domain.ErrNotificationDelivery.
	Send(ctx context.Context, chatID string, text string) error
}
