package dto

import (
	"encoding/json"
	"fmt"

	"github.com/feral-file/ff-token-gate/internal/api/shared/constants"
	apierrors "github.com/feral-file/ff-token-gate/internal/api/shared/errors"
	"github.com/feral-file/ff-token-gate/internal/domain"
	"github.com/feral-file/ff-token-gate/internal/types"
	"github.com/feral-file/ff-token-gate/internal/webhook"
)

// TriggerRunRequest represents the request body for a run-now call
type TriggerRunRequest struct {
	// Force bypasses the interval gate, defaults to true
	Force *bool `json:"force,omitempty"`
}

// ShouldForce returns the force flag with its default applied
func (r *TriggerRunRequest) ShouldForce() bool {
	return r.Force == nil || *r.Force
}

// LinkWalletRequest represents a verified link from the linking subsystem
type LinkWalletRequest struct {
	Handle   string          `json:"handle"`
	Address  string          `json:"address"`
	Secret   string          `json:"secret,omitempty"`
	Metadata json.RawMessage `json:"metadata,omitempty"`
}

// Validate validates the request body
func (r *LinkWalletRequest) Validate() error {
	if !domain.ValidHandle(domain.NormalizeHandle(r.Handle)) {
		return apierrors.NewValidationError("handle must be 1-64 characters of a-z, 0-9 or _")
	}
	if !domain.ValidAddress(r.Address) {
		return apierrors.NewValidationError("address must be a 20-byte hex address")
	}
	if len(r.Metadata) > 0 && !json.Valid(r.Metadata) {
		return apierrors.NewValidationError("metadata must be valid JSON")
	}
	return nil
}

// UpsertPoolRequest represents the request body for creating or editing a pool
type UpsertPoolRequest struct {
	Address    string `json:"address"`
	Name       string `json:"name"`
	Token0     string `json:"token0"`
	Token1     string `json:"token1"`
	TargetSide int    `json:"target_side"`
	Enabled    *bool  `json:"enabled,omitempty"`
}

// Validate validates the request body
func (r *UpsertPoolRequest) Validate() error {
	for field, address := range map[string]string{"address": r.Address, "token0": r.Token0, "token1": r.Token1} {
		if !domain.ValidAddress(address) {
			return apierrors.NewValidationError(fmt.Sprintf("%s must be a 20-byte hex address", field))
		}
	}
	if r.TargetSide != 0 && r.TargetSide != 1 {
		return apierrors.NewValidationError("target_side must be 0 or 1")
	}
	return nil
}

// IsEnabled returns the enabled flag with its default applied
func (r *UpsertPoolRequest) IsEnabled() bool {
	return r.Enabled == nil || *r.Enabled
}

// UpdateSettingsRequest represents a partial settings update
type UpdateSettingsRequest struct {
	Settings map[string]string `json:"settings"`
}

// Validate validates the request body
func (r *UpdateSettingsRequest) Validate() error {
	if len(r.Settings) == 0 {
		return apierrors.NewValidationError("settings is required and must not be empty")
	}
	return nil
}

// CreateWebhookClientRequest represents the request body for creating a webhook client
type CreateWebhookClientRequest struct {
	WebhookURL       string   `json:"webhook_url"`
	Description      string   `json:"description,omitempty"`
	EventFilters     []string `json:"event_filters"`
	RetryMaxAttempts *int     `json:"retry_max_attempts,omitempty"`
}

// Validate validates the request body
func (r *CreateWebhookClientRequest) Validate(debug bool) error {
	if r.WebhookURL == "" {
		return apierrors.NewValidationError("webhook_url is required")
	}

	// Plain http endpoints are accepted only in debug mode
	if debug {
		if !types.IsValidURL(r.WebhookURL) {
			return apierrors.NewValidationError("webhook_url must be a valid URL")
		}
	} else if !types.IsHTTPSURL(r.WebhookURL) {
		return apierrors.NewValidationError("webhook_url must be a valid HTTPS URL")
	}

	if len(r.Description) > constants.MAX_WEBHOOK_DESCRIPTION_LENGTH {
		return apierrors.NewValidationError(fmt.Sprintf("description must be at most %d characters", constants.MAX_WEBHOOK_DESCRIPTION_LENGTH))
	}

	if len(r.EventFilters) == 0 {
		return apierrors.NewValidationError("event_filters is required and must not be empty")
	}
	for _, eventType := range r.EventFilters {
		if !webhook.IsValidEventType(eventType) {
			return apierrors.NewValidationError(fmt.Sprintf("unsupported event type: %s. Supported types: %v", eventType, webhook.SupportedEventTypes))
		}
	}

	if r.RetryMaxAttempts != nil {
		if *r.RetryMaxAttempts < 0 || *r.RetryMaxAttempts > constants.MAX_RETRY_MAX_ATTEMPTS {
			return apierrors.NewValidationError(fmt.Sprintf("retry_max_attempts must be between 0 and %d", constants.MAX_RETRY_MAX_ATTEMPTS))
		}
	}

	return nil
}
