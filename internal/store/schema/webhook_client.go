package schema

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// WebhookClient is a downstream endpoint subscribed to screening events
type WebhookClient struct {
	ID       uint64 `gorm:"primaryKey;autoIncrement"`
	ClientID string `gorm:"type:varchar(36);not null;uniqueIndex"`
	// Description is an operator label, e.g. "membership bot"
	Description   string `gorm:"type:text;not null;default:''"`
	WebhookURL    string `gorm:"type:text;not null"`
	WebhookSecret string `gorm:"type:text;not null"`
	// EventFilters is a JSON array of event types, ["*"] subscribes to everything
	EventFilters     datatypes.JSON `gorm:"type:jsonb;not null"`
	IsActive         bool           `gorm:"not null;default:true"`
	RetryMaxAttempts int            `gorm:"not null;default:5"`
	CreatedAt        time.Time      `gorm:"autoCreateTime"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime"`
}

func (WebhookClient) TableName() string {
	return "webhook_clients"
}

// Filters decodes EventFilters, a malformed column yields no filters
func (c *WebhookClient) Filters() []string {
	var filters []string
	if err := json.Unmarshal(c.EventFilters, &filters); err != nil {
		return nil
	}
	return filters
}
