package schema

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ProfileSnapshot represents the profile_snapshots table - one profile's immutable result within a run
type ProfileSnapshot struct {
	// RunID is the owning screening run
	RunID uuid.UUID `gorm:"column:run_id;primaryKey;type:uuid"`
	// ProfileID is the evaluated profile
	ProfileID uuid.UUID `gorm:"column:profile_id;primaryKey;type:uuid"`
	// TotalBalance is the aggregate raw exposure across wallets, unbounded
	TotalBalance string `gorm:"column:total_balance;not null;type:numeric"`
	// Eligible is the outcome of the threshold comparison
	Eligible bool `gorm:"column:eligible;not null"`
	// Breakdown is a JSON array of domain.WalletContribution
	Breakdown datatypes.JSON `gorm:"column:breakdown;not null;type:jsonb"`
	// CreatedAt is when the snapshot was written
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the ProfileSnapshot model
func (ProfileSnapshot) TableName() string {
	return "profile_snapshots"
}
