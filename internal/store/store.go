package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/feral-file/ff-token-gate/internal/domain"
	"github.com/feral-file/ff-token-gate/internal/store/schema"
)

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// =============================================================================
	// Settings
	// =============================================================================

	// SetKeyValue sets a key-value pair in the key-value store
	SetKeyValue(ctx context.Context, key string, value string) error
	// GetKeyValue retrieves a value by key, returning "" when the key is absent
	GetKeyValue(ctx context.Context, key string) (string, error)
	// GetKeyValues retrieves the present keys among the requested ones
	GetKeyValues(ctx context.Context, keys []string) (map[string]string, error)

	// =============================================================================
	// Run lease
	// =============================================================================

	// AcquireRunLease takes the named lease for holder until now+ttl.
	// It succeeds when the lease is free, expired or already held by holder.
	AcquireRunLease(ctx context.Context, name string, holder string, ttl time.Duration, now time.Time) (bool, error)
	// ExtendRunLease moves the expiry of a lease held by holder to now+ttl.
	// It reports false once another holder has taken the lease over.
	ExtendRunLease(ctx context.Context, name string, holder string, ttl time.Duration, now time.Time) (bool, error)
	// ReleaseRunLease releases the named lease if holder still owns it
	ReleaseRunLease(ctx context.Context, name string, holder string) error

	// =============================================================================
	// Screening runs
	// =============================================================================

	// CreateScreeningRun inserts a run in running state
	CreateScreeningRun(ctx context.Context, input CreateScreeningRunInput) (*schema.ScreeningRun, error)
	// CompleteScreeningRun writes the terminal status of a running run.
	// Returns domain.ErrRunFinalized when the run is not running anymore.
	CompleteScreeningRun(ctx context.Context, runID uuid.UUID, input CompleteScreeningRunInput) error
	// GetScreeningRun retrieves a run by ID
	GetScreeningRun(ctx context.Context, runID uuid.UUID) (*schema.ScreeningRun, error)
	// GetLastSuccessfulRun retrieves the most recently started success run
	GetLastSuccessfulRun(ctx context.Context) (*schema.ScreeningRun, error)
	// ListScreeningRuns lists runs newest first with the total count
	ListScreeningRuns(ctx context.Context, limit int, offset int) ([]schema.ScreeningRun, int64, error)

	// =============================================================================
	// Profile snapshots
	// =============================================================================

	// CreateProfileSnapshot inserts an immutable snapshot
	CreateProfileSnapshot(ctx context.Context, input CreateProfileSnapshotInput) error
	// GetSnapshotsByRun retrieves all snapshots of a run
	GetSnapshotsByRun(ctx context.Context, runID uuid.UUID) ([]schema.ProfileSnapshot, error)
	// GetEligibleProfiles retrieves the profiles that were eligible in a run, ordered by handle
	GetEligibleProfiles(ctx context.Context, runID uuid.UUID) ([]ProfileRef, error)
	// GetLatestProfileSnapshot retrieves the profile's snapshot from its latest success run
	GetLatestProfileSnapshot(ctx context.Context, profileID uuid.UUID) (*ProfileSnapshotRecord, error)
	// GetProfileSnapshotBefore retrieves the profile's latest success-run snapshot started at or before the given time
	GetProfileSnapshotBefore(ctx context.Context, profileID uuid.UUID, before time.Time) (*ProfileSnapshotRecord, error)

	// =============================================================================
	// Profiles and wallets
	// =============================================================================

	// GetProfilesWithWallets retrieves every profile that has at least one wallet, ordered by handle
	GetProfilesWithWallets(ctx context.Context) ([]schema.Profile, error)
	// GetProfileByHandle retrieves a profile with its wallets
	GetProfileByHandle(ctx context.Context, handle string) (*schema.Profile, error)
	// LinkWallet binds a verified address, creating the profile on its first link
	LinkWallet(ctx context.Context, input LinkWalletInput) (*LinkWalletResult, error)
	// UnlinkWallet deletes a wallet bound to the profile
	UnlinkWallet(ctx context.Context, profileID uuid.UUID, address string) error
	// UpdateProfileSecret replaces the secret hash of a profile
	UpdateProfileSecret(ctx context.Context, profileID uuid.UUID, secretHash string) error
	// UpdateWalletExposure records fresh balances and marks the wallet verified
	UpdateWalletExposure(ctx context.Context, input UpdateWalletExposureInput) error
	// MarkWalletError records a failed exposure read
	MarkWalletError(ctx context.Context, walletID uint64, reason string, checkedAt time.Time) error

	// =============================================================================
	// Liquidity pools
	// =============================================================================

	// GetEnabledPools retrieves the pools participating in exposure calculation
	GetEnabledPools(ctx context.Context) ([]schema.LiquidityPool, error)
	// ListPools retrieves all pools
	ListPools(ctx context.Context) ([]schema.LiquidityPool, error)
	// UpsertPool creates or replaces a pool by address
	UpsertPool(ctx context.Context, input UpsertPoolInput) (*schema.LiquidityPool, error)

	// =============================================================================
	// Webhooks
	// =============================================================================

	// GetActiveWebhookClientsByEventType retrieves active webhook clients matching the event type
	GetActiveWebhookClientsByEventType(ctx context.Context, eventType string) ([]*schema.WebhookClient, error)
	// GetWebhookClientByID retrieves a webhook client by client ID
	GetWebhookClientByID(ctx context.Context, clientID string) (*schema.WebhookClient, error)
	// CreateWebhookClient creates a new webhook client
	CreateWebhookClient(ctx context.Context, input CreateWebhookClientInput) (*schema.WebhookClient, error)
	// CreateWebhookDelivery creates a new webhook delivery record
	CreateWebhookDelivery(ctx context.Context, delivery *schema.WebhookDelivery) error
	// RecordWebhookAttempt stores the outcome of one delivery attempt on its delivery row
	RecordWebhookAttempt(ctx context.Context, deliveryID uint64, attempt WebhookAttempt) error
}

// CreateScreeningRunInput represents the input for creating a screening run
type CreateScreeningRunInput struct {
	ID        uuid.UUID
	Forced    bool
	StartedAt time.Time
}

// CompleteScreeningRunInput represents the terminal state of a screening run
type CompleteScreeningRunInput struct {
	Status            domain.RunStatus
	Error             *string
	BlockNumber       *uint64
	ProfilesProcessed int
	WalletsProcessed  int
	WalletsFailed     int
	EligibleCount     int
	MessageSent       bool
	FinishedAt        time.Time
}

// CreateProfileSnapshotInput represents the input for writing a profile snapshot
type CreateProfileSnapshotInput struct {
	RunID        uuid.UUID
	ProfileID    uuid.UUID
	TotalBalance string
	Eligible     bool
	Breakdown    []domain.WalletContribution
}

// ProfileRef identifies a profile by id and handle
type ProfileRef struct {
	ID     uuid.UUID `gorm:"column:id"`
	Handle string    `gorm:"column:handle"`
}

// ProfileSnapshotRecord is a snapshot joined with the start time of its run
type ProfileSnapshotRecord struct {
	schema.ProfileSnapshot `gorm:"embedded"`
	RunStartedAt           time.Time `gorm:"column:run_started_at"`
}

// LinkWalletInput represents a verified (handle, address) binding
type LinkWalletInput struct {
	Handle  string
	Address string
	// SecretHash is used only when the profile does not exist yet
	SecretHash string
	Metadata   json.RawMessage
}

// LinkWalletResult represents the outcome of a wallet link
type LinkWalletResult struct {
	Profile        *schema.Profile
	Wallet         *schema.Wallet
	ProfileCreated bool
	AlreadyLinked  bool
}

// UpdateWalletExposureInput represents freshly computed wallet balances
type UpdateWalletExposureInput struct {
	WalletID      uint64
	DirectBalance string
	PoolBalance   string
	TotalBalance  string
	CheckedAt     time.Time
}

// UpsertPoolInput represents the input for creating or editing a pool
type UpsertPoolInput struct {
	Address    string
	Name       string
	Token0     string
	Token1     string
	TargetSide int
	Enabled    bool
}

// WebhookAttempt is the outcome of one HTTP delivery attempt
type WebhookAttempt struct {
	Number         int
	Delivered      bool
	ResponseStatus *int
	ResponseBody   string
	Err            error
}

// Status maps the attempt onto the delivery status it leaves behind
func (a WebhookAttempt) Status() schema.DeliveryStatus {
	if a.Delivered {
		return schema.DeliveryDelivered
	}
	return schema.DeliveryFailed
}

// CreateWebhookClientInput represents the input for creating a webhook client
type CreateWebhookClientInput struct {
	ClientID         string
	Description      string
	WebhookURL       string
	WebhookSecret    string
	EventFilters     []byte
	IsActive         bool
	RetryMaxAttempts int
}
