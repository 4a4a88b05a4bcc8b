package domain

import "time"

// Event types published for screening outcomes
const (
	// EventTypeMembershipAdded is fired when a profile becomes eligible
	EventTypeMembershipAdded = "screening.membership.added"

	// EventTypeMembershipRemoved is fired when a previously eligible profile drops out
	EventTypeMembershipRemoved = "screening.membership.removed"

	// EventTypeRunCompleted is fired once a run reaches a terminal status
	EventTypeRunCompleted = "screening.run.completed"

	// EventTypeWildcard is a special filter that matches all event types
	EventTypeWildcard = "*"
)

// ScreeningEvent is the envelope shared by the event stream and webhook deliveries
type ScreeningEvent struct {
	// EventID is a unique identifier for this event (ULID for time-sortable uniqueness)
	EventID string `json:"event_id"`
	// EventType is one of the EventType constants
	EventType string `json:"event_type"`
	// Timestamp is when the event was generated
	Timestamp time.Time `json:"timestamp"`
	// Data contains the event-specific payload
	Data ScreeningEventData `json:"data"`
}

// ScreeningEventData carries either a membership change or a run outcome
type ScreeningEventData struct {
	RunID      string          `json:"run_id"`
	Membership *MembershipData `json:"membership,omitempty"`
	Run        *RunData        `json:"run,omitempty"`
}

// MembershipData describes one profile's membership change
type MembershipData struct {
	ProfileID string `json:"profile_id"`
	Handle    string `json:"handle"`
	Total     string `json:"total"`
}

// RunData summarizes a finished run
type RunData struct {
	Status            RunStatus `json:"status"`
	BlockNumber       *uint64   `json:"block_number,omitempty"`
	ProfilesProcessed int       `json:"profiles_processed"`
	WalletsProcessed  int       `json:"wallets_processed"`
	WalletsFailed     int       `json:"wallets_failed"`
	EligibleCount     int       `json:"eligible_count"`
	NewlyEligible     int       `json:"newly_eligible"`
	Dropped           int       `json:"dropped"`
	MessageSent       bool      `json:"message_sent"`
}
