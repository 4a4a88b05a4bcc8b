package schema

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/feral-file/ff-token-gate/internal/domain"
)

// Wallet represents the wallets table - an address bound to exactly one profile
type Wallet struct {
	// ID is an auto-incrementing sequence number
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ProfileID is the owning profile
	ProfileID uuid.UUID `gorm:"column:profile_id;not null;type:uuid;index"`
	// Address is the lower-cased chain address, unique system-wide
	Address string `gorm:"column:address;not null;uniqueIndex;type:varchar(42)"`
	// Metadata holds optional discovery details supplied by the linking flow
	Metadata datatypes.JSON `gorm:"column:metadata;type:jsonb"`
	// DirectBalance is the last known raw token balance held directly (uint256 as string)
	DirectBalance string `gorm:"column:direct_balance;not null;default:0;type:numeric(78,0)"`
	// PoolBalance is the last known raw pool-derived balance, a sum across pools
	PoolBalance string `gorm:"column:pool_balance;not null;default:0;type:numeric"`
	// TotalBalance is DirectBalance + PoolBalance and may exceed a uint256
	TotalBalance string `gorm:"column:total_balance;not null;default:0;type:numeric"`
	// LastCheckedAt is when the balances were last refreshed
	LastCheckedAt *time.Time `gorm:"column:last_checked_at;type:timestamptz"`
	// Status is the verification status
	Status domain.WalletStatus `gorm:"column:status;not null;default:verified;type:wallet_status"`
	// ErrorReason holds the last failure when Status is error
	ErrorReason *string `gorm:"column:error_reason;type:text"`
	// CreatedAt is the timestamp when the wallet was linked
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when the wallet was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Wallet model
func (Wallet) TableName() string {
	return "wallets"
}
