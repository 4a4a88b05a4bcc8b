package schema

import (
	"time"

	"github.com/google/uuid"
)

// Profile represents the profiles table - the identity anchor for a Telegram handle
type Profile struct {
	// ID is the profile identifier
	ID uuid.UUID `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()"`
	// Handle is the normalized Telegram handle (lower-case, no leading '@')
	Handle string `gorm:"column:handle;not null;uniqueIndex;type:varchar(64)"`
	// SecretHash is the bcrypt hash of the secret authorizing mutations
	SecretHash string `gorm:"column:secret_hash;not null;type:text"`
	// Wallets are the addresses bound to this profile
	Wallets []Wallet `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`
	// CreatedAt is the timestamp when the profile was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when the profile was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Profile model
func (Profile) TableName() string {
	return "profiles"
}
