package schema

import (
	"time"

	"gorm.io/datatypes"
)

// DeliveryStatus tracks one event delivered to one webhook client
type DeliveryStatus string

const (
	DeliveryPending   DeliveryStatus = "pending"
	DeliveryDelivered DeliveryStatus = "delivered"
	DeliveryFailed    DeliveryStatus = "failed"
)

// WebhookDelivery is the audit row of a screening event pushed to a client.
// Attempts and the last response are overwritten on every retry.
type WebhookDelivery struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	ClientID  string `gorm:"type:varchar(36);not null"`
	EventID   string `gorm:"type:varchar(255);not null;index"`
	EventType string `gorm:"type:varchar(50);not null"`
	// RunID is the screening run that emitted the event
	RunID   string         `gorm:"type:varchar(36)"`
	Payload datatypes.JSON `gorm:"type:jsonb;not null"`

	WorkflowID    string `gorm:"type:varchar(255);not null"`
	WorkflowRunID string `gorm:"type:varchar(255)"`

	DeliveryStatus DeliveryStatus `gorm:"type:varchar(20);not null;default:pending"`
	Attempts       int            `gorm:"not null;default:0"`
	LastAttemptAt  *time.Time
	ResponseStatus *int
	// ResponseBody is capped at 4KB by the delivery activity
	ResponseBody string `gorm:"type:text"`
	ErrorMessage string `gorm:"type:text"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (WebhookDelivery) TableName() string {
	return "webhook_deliveries"
}
