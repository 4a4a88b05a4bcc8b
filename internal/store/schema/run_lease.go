package schema

import "time"

// RunLease represents the run_leases table - a named mutual-exclusion lease with expiry
type RunLease struct {
	Name      string    `gorm:"column:name;primaryKey;type:varchar(64)"`
	Holder    string    `gorm:"column:holder;not null;type:varchar(64)"`
	ExpiresAt time.Time `gorm:"column:expires_at;not null;type:timestamptz"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the RunLease model
func (RunLease) TableName() string {
	return "run_leases"
}
