package schema

import "time"

// LiquidityPool represents the liquidity_pools table - whitelisted AMM pairs
type LiquidityPool struct {
	// Address is the pool (and share token) contract address, lower-cased
	Address string `gorm:"column:address;primaryKey;type:varchar(42)"`
	// Name is an optional display name
	Name string `gorm:"column:name;type:text"`
	// Token0 is the pair's first underlying token
	Token0 string `gorm:"column:token0;not null;type:varchar(42)"`
	// Token1 is the pair's second underlying token
	Token1 string `gorm:"column:token1;not null;type:varchar(42)"`
	// TargetSide selects which reserve (0 or 1) holds the target token
	TargetSide int `gorm:"column:target_side;not null"`
	// Enabled pools participate in exposure calculation
	Enabled bool `gorm:"column:enabled;not null;default:true"`
	// CreatedAt is the timestamp when the pool was added
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when the pool was last edited
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the LiquidityPool model
func (LiquidityPool) TableName() string {
	return "liquidity_pools"
}
