package schema

import "time"

// KeyValueStore holds operator settings such as the screening interval and
// the eligibility threshold. Values are stored as text and parsed by the
// settings provider.
type KeyValueStore struct {
	Key       string    `gorm:"primaryKey;type:text"`
	Value     string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (KeyValueStore) TableName() string {
	return "key_value_store"
}
