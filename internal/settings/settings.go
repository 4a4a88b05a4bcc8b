package settings

import (
	"context"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/ff-token-gate/internal/domain"
	"github.com/feral-file/ff-token-gate/internal/eligibility"
	"github.com/feral-file/ff-token-gate/internal/logger"
	"github.com/feral-file/ff-token-gate/internal/providers/ethereum"
	"github.com/feral-file/ff-token-gate/internal/store"
)

// maxTokenDecimals bounds decimals to what a uint256 amount can carry
const maxTokenDecimals = 77

// RunSettings are the operator settings a screening run reads once at its start
type RunSettings struct {
	Threshold            *big.Int
	NotificationsEnabled bool
	ChatID               string
	Decimals             int
	SummaryTemplate      string
}

// Provider reads and writes operator settings
//
//go:generate mockgen -source=settings.go -destination=../mocks/settings.go -package=mocks -mock_names=Provider=MockSettingsProvider
type Provider interface {
	// Interval returns the configured screening interval
	Interval(ctx context.Context) (time.Duration, error)

	// Load reads the run settings fresh from the store.
	// Failures wrap domain.ErrConfigurationLoad.
	Load(ctx context.Context) (*RunSettings, error)

	// All returns every recognised setting that is present
	All(ctx context.Context) (map[string]string, error)

	// Update validates and writes the given settings
	Update(ctx context.Context, values map[string]string) error
}

type provider struct {
	store       store.Store
	reader      ethereum.ChainReader
	targetToken string
}

// NewProvider creates a settings provider backed by the key-value store.
// The chain reader resolves token decimals when the setting is absent.
func NewProvider(st store.Store, reader ethereum.ChainReader, targetToken string) Provider {
	return &provider{
		store:       st,
		reader:      reader,
		targetToken: targetToken,
	}
}

// Interval returns the configured screening interval
func (p *provider) Interval(ctx context.Context) (time.Duration, error) {
	raw, err := p.store.GetKeyValue(ctx, domain.SettingScreeningIntervalHours)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrConfigurationLoad, err)
	}
	if raw == "" {
		return 0, fmt.Errorf("%w: %s is not set", domain.ErrConfigurationLoad, domain.SettingScreeningIntervalHours)
	}

	hours, err := parseIntervalHours(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrConfigurationLoad, err)
	}

	return time.Duration(hours) * time.Hour, nil
}

// Load reads the run settings fresh from the store
func (p *provider) Load(ctx context.Context) (*RunSettings, error) {
	values, err := p.store.GetKeyValues(ctx, domain.SettingKeys)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrConfigurationLoad, err)
	}

	rawThreshold, ok := values[domain.SettingEligibilityThresholdRaw]
	if !ok {
		return nil, fmt.Errorf("%w: %s is not set", domain.ErrConfigurationLoad, domain.SettingEligibilityThresholdRaw)
	}
	threshold, err := domain.ParseRawAmount(rawThreshold)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrConfigurationLoad, domain.SettingEligibilityThresholdRaw, err)
	}

	settings := &RunSettings{
		Threshold:       threshold,
		ChatID:          strings.TrimSpace(values[domain.SettingNotificationChatID]),
		SummaryTemplate: values[domain.SettingSummaryTemplate],
	}

	if raw := values[domain.SettingBotNotificationsEnabled]; raw != "" {
		settings.NotificationsEnabled, err = strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrConfigurationLoad, domain.SettingBotNotificationsEnabled, err)
		}
	}

	if raw := values[domain.SettingTokenDecimals]; raw != "" {
		settings.Decimals, err = parseDecimals(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrConfigurationLoad, domain.SettingTokenDecimals, err)
		}
	} else {
		settings.Decimals = p.readDecimals(ctx)
	}

	return settings, nil
}

// readDecimals asks the token contract; decimals only affect display so a failure falls back to the default
func (p *provider) readDecimals(ctx context.Context) int {
	decimals, err := p.reader.ReadDecimals(ctx, p.targetToken)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to read token decimals, using default",
			zap.String("token", p.targetToken),
			zap.Int("default", domain.DEFAULT_TOKEN_DECIMALS),
			zap.Error(err))
		return domain.DEFAULT_TOKEN_DECIMALS
	}
	return int(decimals)
}

// All returns every recognised setting that is present
func (p *provider) All(ctx context.Context) (map[string]string, error) {
	values, err := p.store.GetKeyValues(ctx, domain.SettingKeys)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return values, nil
}

// Update validates every value before writing any of them
func (p *provider) Update(ctx context.Context, values map[string]string) error {
	for key, value := range values {
		if err := Validate(key, value); err != nil {
			return err
		}
	}

	for _, key := range domain.SettingKeys {
		value, ok := values[key]
		if !ok {
			continue
		}
		if err := p.store.SetKeyValue(ctx, key, strings.TrimSpace(value)); err != nil {
			return fmt.Errorf("failed to update setting %s: %w", key, err)
		}
	}

	return nil
}

// Validate checks a single setting value
func Validate(key, value string) error {
	value = strings.TrimSpace(value)

	var err error
	switch key {
	case domain.SettingScreeningIntervalHours:
		_, err = parseIntervalHours(value)
	case domain.SettingEligibilityThresholdRaw:
		_, err = domain.ParseRawAmount(value)
	case domain.SettingBotNotificationsEnabled:
		_, err = strconv.ParseBool(value)
	case domain.SettingNotificationChatID:
		// Telegram chat ids are numeric or @channelusername
		if value != "" && !strings.HasPrefix(value, "@") {
			_, err = strconv.ParseInt(value, 10, 64)
		}
	case domain.SettingTokenDecimals:
		if value != "" {
			_, err = parseDecimals(value)
		}
	case domain.SettingSummaryTemplate:
		err = eligibility.ValidateSummaryTemplate(value)
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidSetting, key)
	}

	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrInvalidSetting, key, err)
	}
	return nil
}

func parseIntervalHours(raw string) (int, error) {
	hours, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid interval %q: %w", raw, err)
	}
	if hours <= 0 {
		return 0, fmt.Errorf("interval must be positive, got %d", hours)
	}
	return hours, nil
}

func parseDecimals(raw string) (int, error) {
	decimals, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid decimals %q: %w", raw, err)
	}
	if decimals < 0 || decimals > maxTokenDecimals {
		return 0, fmt.Errorf("decimals out of range: %d", decimals)
	}
	return decimals, nil
}
