package schema

import (
	"time"

	"github.com/google/uuid"

	"github.com/feral-file/ff-token-gate/internal/domain"
)

// ScreeningRun represents the screening_runs table - one execution of the screening job
type ScreeningRun struct {
	// ID is the run identifier
	ID uuid.UUID `gorm:"column:id;primaryKey;type:uuid"`
	// Status is running until the single terminal transition
	Status domain.RunStatus `gorm:"column:status;not null;type:screening_run_status"`
	// Forced records whether the interval gate was bypassed
	Forced bool `gorm:"column:forced;not null;default:false"`
	// Error holds the failure message for error runs
	Error *string `gorm:"column:error;type:text"`
	// BlockNumber is the block all chain reads of the run were pinned to
	BlockNumber *uint64 `gorm:"column:block_number"`
	// ProfilesProcessed is the number of profiles evaluated
	ProfilesProcessed int `gorm:"column:profiles_processed;not null;default:0"`
	// WalletsProcessed is the number of wallets whose exposure was attempted
	WalletsProcessed int `gorm:"column:wallets_processed;not null;default:0"`
	// WalletsFailed is the number of wallets that contributed zero because of a read failure
	WalletsFailed int `gorm:"column:wallets_failed;not null;default:0"`
	// EligibleCount is the number of eligible profiles
	EligibleCount int `gorm:"column:eligible_count;not null;default:0"`
	// MessageSent records whether the summary reached the notification sink
	MessageSent bool `gorm:"column:message_sent;not null;default:false"`
	// StartedAt is when the run record was created
	StartedAt time.Time `gorm:"column:started_at;not null;type:timestamptz"`
	// FinishedAt is set with the terminal status
	FinishedAt *time.Time `gorm:"column:finished_at;type:timestamptz"`
}

// TableName specifies the table name for the ScreeningRun model
func (ScreeningRun) TableName() string {
	return "screening_runs"
}
