package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/ff-token-gate/internal/domain"
	"github.com/feral-file/ff-token-gate/internal/store/schema"
)

const (
	// maxDeliveryErrorLength caps the stored error of a webhook attempt, in bytes
	maxDeliveryErrorLength = 1024
	// maxWalletErrorLength caps the stored wallet error reason, in bytes
	maxWalletErrorLength = 1024
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool of the underlying *sql.DB.
// Zero values fall back to the defaults of NormalizeConnectionPoolSettings.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 10
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns <= 0 {
		maxOpenConns = 10
	}
	if maxIdleConns <= 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime <= 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime <= 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// =============================================================================
// Settings
// =============================================================================

// SetKeyValue sets a key-value pair in the key-value store
func (s *pgStore) SetKeyValue(ctx context.Context, key string, value string) error {
	kv := schema.KeyValueStore{
		Key:   key,
		Value: value,
	}

	err := s.db.WithContext(ctx).Save(&kv).Error
	if err != nil {
		return fmt.Errorf("failed to set key-value: %w", err)
	}

	return nil
}

// GetKeyValue retrieves a value by key from the key-value store
func (s *pgStore) GetKeyValue(ctx context.Context, key string) (string, error) {
	var kv schema.KeyValueStore
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&kv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get key-value: %w", err)
	}

	return kv.Value, nil
}

// GetKeyValues retrieves the present keys among the requested ones
func (s *pgStore) GetKeyValues(ctx context.Context, keys []string) (map[string]string, error) {
	result := make(map[string]string, len(keys))
	if len(keys) == 0 {
		return result, nil
	}

	var kvs []schema.KeyValueStore
	err := s.db.WithContext(ctx).Where("key IN ?", keys).Find(&kvs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get key-values: %w", err)
	}

	for _, kv := range kvs {
		result[kv.Key] = kv.Value
	}

	return result, nil
}

// =============================================================================
// Run lease
// =============================================================================

// AcquireRunLease takes the named lease with a single conditional upsert
func (s *pgStore) AcquireRunLease(ctx context.Context, name string, holder string, ttl time.Duration, now time.Time) (bool, error) {
	result := s.db.WithContext(ctx).Exec(`
		INSERT INTO run_leases (name, holder, expires_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (name) DO UPDATE
		SET holder = EXCLUDED.holder, expires_at = EXCLUDED.expires_at, updated_at = EXCLUDED.updated_at
		WHERE run_leases.expires_at <= ? OR run_leases.holder = EXCLUDED.holder`,
		name, holder, now.Add(ttl), now, now)
	if result.Error != nil {
		return false, fmt.Errorf("failed to acquire run lease: %w", result.Error)
	}

	return result.RowsAffected == 1, nil
}

// ExtendRunLease pushes the expiry of the lease while holder still owns it.
// An expired lease nobody has taken over is still extended since the holder never changed.
func (s *pgStore) ExtendRunLease(ctx context.Context, name string, holder string, ttl time.Duration, now time.Time) (bool, error) {
	result := s.db.WithContext(ctx).
		Model(&schema.RunLease{}).
		Where("name = ? AND holder = ?", name, holder).
		Updates(map[string]interface{}{
			"expires_at": now.Add(ttl),
			"updated_at": now,
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to extend run lease: %w", result.Error)
	}

	return result.RowsAffected == 1, nil
}

// ReleaseRunLease releases the named lease if holder still owns it
func (s *pgStore) ReleaseRunLease(ctx context.Context, name string, holder string) error {
	err := s.db.WithContext(ctx).
		Where("name = ? AND holder = ?", name, holder).
		Delete(&schema.RunLease{}).Error
	if err != nil {
		return fmt.Errorf("failed to release run lease: %w", err)
	}

	return nil
}

// =============================================================================
// Screening runs
// =============================================================================

// CreateScreeningRun inserts a run in running state
func (s *pgStore) CreateScreeningRun(ctx context.Context, input CreateScreeningRunInput) (*schema.ScreeningRun, error) {
	id := input.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	run := &schema.ScreeningRun{
		ID:        id,
		Status:    domain.RunStatusRunning,
		Forced:    input.Forced,
		StartedAt: input.StartedAt,
	}

	if err := s.db.WithContext(ctx).Create(run).Error; err != nil {
		return nil, fmt.Errorf("failed to create screening run: %w", err)
	}

	return run, nil
}

// CompleteScreeningRun writes the terminal status of a running run exactly once
func (s *pgStore) CompleteScreeningRun(ctx context.Context, runID uuid.UUID, input CompleteScreeningRunInput) error {
	if !input.Status.IsTerminal() {
		return fmt.Errorf("status %q is not terminal", input.Status)
	}

	updates := map[string]interface{}{
		"status":             input.Status,
		"error":              input.Error,
		"block_number":       input.BlockNumber,
		"profiles_processed": input.ProfilesProcessed,
		"wallets_processed":  input.WalletsProcessed,
		"wallets_failed":     input.WalletsFailed,
		"eligible_count":     input.EligibleCount,
		"message_sent":       input.MessageSent,
		"finished_at":        input.FinishedAt,
	}

	result := s.db.WithContext(ctx).
		Model(&schema.ScreeningRun{}).
		Where("id = ? AND status = ?", runID, domain.RunStatusRunning).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to complete screening run: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("run %s: %w", runID, domain.ErrRunFinalized)
	}

	return nil
}

// GetScreeningRun retrieves a run by ID
func (s *pgStore) GetScreeningRun(ctx context.Context, runID uuid.UUID) (*schema.ScreeningRun, error) {
	var run schema.ScreeningRun
	err := s.db.WithContext(ctx).Where("id = ?", runID).First(&run).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get screening run: %w", err)
	}

	return &run, nil
}

// GetLastSuccessfulRun retrieves the most recently started success run
func (s *pgStore) GetLastSuccessfulRun(ctx context.Context) (*schema.ScreeningRun, error) {
	var run schema.ScreeningRun
	err := s.db.WithContext(ctx).
		Where("status = ?", domain.RunStatusSuccess).
		Order("started_at DESC").
		First(&run).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get last successful run: %w", err)
	}

	return &run, nil
}

// ListScreeningRuns lists runs newest first with the total count
func (s *pgStore) ListScreeningRuns(ctx context.Context, limit int, offset int) ([]schema.ScreeningRun, int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&schema.ScreeningRun{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count screening runs: %w", err)
	}

	var runs []schema.ScreeningRun
	err := s.db.WithContext(ctx).
		Order("started_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&runs).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list screening runs: %w", err)
	}

	return runs, total, nil
}

// =============================================================================
// Profile snapshots
// =============================================================================

// CreateProfileSnapshot inserts an immutable snapshot
func (s *pgStore) CreateProfileSnapshot(ctx context.Context, input CreateProfileSnapshotInput) error {
	breakdown := input.Breakdown
	if breakdown == nil {
		breakdown = []domain.WalletContribution{}
	}
	data, err := json.Marshal(breakdown)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot breakdown: %w", err)
	}

	snapshot := &schema.ProfileSnapshot{
		RunID:        input.RunID,
		ProfileID:    input.ProfileID,
		TotalBalance: input.TotalBalance,
		Eligible:     input.Eligible,
		Breakdown:    datatypes.JSON(data),
	}

	if err := s.db.WithContext(ctx).Create(snapshot).Error; err != nil {
		return fmt.Errorf("failed to create profile snapshot: %w", err)
	}

	return nil
}

// GetSnapshotsByRun retrieves all snapshots of a run
func (s *pgStore) GetSnapshotsByRun(ctx context.Context, runID uuid.UUID) ([]schema.ProfileSnapshot, error) {
	var snapshots []schema.ProfileSnapshot
	err := s.db.WithContext(ctx).
		Where("run_id = ?", runID).
		Order("total_balance DESC, profile_id ASC").
		Find(&snapshots).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshots by run: %w", err)
	}

	return snapshots, nil
}

// GetEligibleProfiles retrieves the profiles that were eligible in a run, ordered by handle
func (s *pgStore) GetEligibleProfiles(ctx context.Context, runID uuid.UUID) ([]ProfileRef, error) {
	var refs []ProfileRef
	err := s.db.WithContext(ctx).
		Table("profile_snapshots").
		Select("profiles.id AS id, profiles.handle AS handle").
		Joins("JOIN profiles ON profiles.id = profile_snapshots.profile_id").
		Where("profile_snapshots.run_id = ? AND profile_snapshots.eligible", runID).
		Order("profiles.handle ASC").
		Scan(&refs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get eligible profiles: %w", err)
	}

	return refs, nil
}

// GetLatestProfileSnapshot retrieves the profile's snapshot from its latest success run
func (s *pgStore) GetLatestProfileSnapshot(ctx context.Context, profileID uuid.UUID) (*ProfileSnapshotRecord, error) {
	return s.findProfileSnapshot(ctx, profileID, nil)
}

// GetProfileSnapshotBefore retrieves the latest success-run snapshot started at or before the given time
func (s *pgStore) GetProfileSnapshotBefore(ctx context.Context, profileID uuid.UUID, before time.Time) (*ProfileSnapshotRecord, error) {
	return s.findProfileSnapshot(ctx, profileID, &before)
}

func (s *pgStore) findProfileSnapshot(ctx context.Context, profileID uuid.UUID, before *time.Time) (*ProfileSnapshotRecord, error) {
	query := s.db.WithContext(ctx).
		Table("profile_snapshots").
		Select("profile_snapshots.*, screening_runs.started_at AS run_started_at").
		Joins("JOIN screening_runs ON screening_runs.id = profile_snapshots.run_id").
		Where("profile_snapshots.profile_id = ? AND screening_runs.status = ?", profileID, domain.RunStatusSuccess)
	if before != nil {
		query = query.Where("screening_runs.started_at <= ?", *before)
	}

	var records []ProfileSnapshotRecord
	err := query.Order("screening_runs.started_at DESC").Limit(1).Scan(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get profile snapshot: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	return &records[0], nil
}

// =============================================================================
// Profiles and wallets
// =============================================================================

// GetProfilesWithWallets retrieves every profile that has at least one wallet
func (s *pgStore) GetProfilesWithWallets(ctx context.Context) ([]schema.Profile, error) {
	var profiles []schema.Profile
	err := s.db.WithContext(ctx).
		Preload("Wallets", func(db *gorm.DB) *gorm.DB {
			return db.Order("wallets.id ASC")
		}).
		Where("EXISTS (SELECT 1 FROM wallets WHERE wallets.profile_id = profiles.id)").
		Order("handle ASC").
		Find(&profiles).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get profiles with wallets: %w", err)
	}

	return profiles, nil
}

// GetProfileByHandle retrieves a profile with its wallets
func (s *pgStore) GetProfileByHandle(ctx context.Context, handle string) (*schema.Profile, error) {
	var profile schema.Profile
	err := s.db.WithContext(ctx).
		Preload("Wallets", func(db *gorm.DB) *gorm.DB {
			return db.Order("wallets.id ASC")
		}).
		Where("handle = ?", domain.NormalizeHandle(handle)).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile by handle: %w", err)
	}

	return &profile, nil
}

// LinkWallet binds a verified address, creating the profile on its first link
func (s *pgStore) LinkWallet(ctx context.Context, input LinkWalletInput) (*LinkWalletResult, error) {
	handle := domain.NormalizeHandle(input.Handle)
	address := domain.NormalizeAddress(input.Address)
	result := &LinkWalletResult{}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var profile schema.Profile
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("handle = ?", handle).First(&profile).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if input.SecretHash == "" {
				return errors.New("secret hash is required to create a profile")
			}
			profile = schema.Profile{
				ID:         uuid.New(),
				Handle:     handle,
				SecretHash: input.SecretHash,
			}
			if err := tx.Create(&profile).Error; err != nil {
				return fmt.Errorf("failed to create profile: %w", err)
			}
			result.ProfileCreated = true
		case err != nil:
			return fmt.Errorf("failed to get profile: %w", err)
		}

		var existing schema.Wallet
		err = tx.Where("address = ?", address).First(&existing).Error
		if err == nil {
			if existing.ProfileID != profile.ID {
				return domain.ErrWalletAlreadyLinked
			}
			result.Profile = &profile
			result.Wallet = &existing
			result.AlreadyLinked = true
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check wallet: %w", err)
		}

		wallet := schema.Wallet{
			ProfileID:     profile.ID,
			Address:       address,
			DirectBalance: "0",
			PoolBalance:   "0",
			TotalBalance:  "0",
			Status:        domain.WalletStatusPending,
		}
		if len(input.Metadata) > 0 {
			wallet.Metadata = datatypes.JSON(input.Metadata)
		}
		if err := tx.Create(&wallet).Error; err != nil {
			return fmt.Errorf("failed to create wallet: %w", err)
		}

		if !result.ProfileCreated {
			if err := tx.Model(&profile).Update("updated_at", time.Now()).Error; err != nil {
				return fmt.Errorf("failed to touch profile: %w", err)
			}
		}

		result.Profile = &profile
		result.Wallet = &wallet
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// UnlinkWallet deletes a wallet bound to the profile
func (s *pgStore) UnlinkWallet(ctx context.Context, profileID uuid.UUID, address string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("profile_id = ? AND address = ?", profileID, domain.NormalizeAddress(address)).
			Delete(&schema.Wallet{})
		if result.Error != nil {
			return fmt.Errorf("failed to unlink wallet: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("wallet %s: %w", address, domain.ErrNotFound)
		}

		err := tx.Model(&schema.Profile{}).Where("id = ?", profileID).Update("updated_at", time.Now()).Error
		if err != nil {
			return fmt.Errorf("failed to touch profile: %w", err)
		}
		return nil
	})
}

// UpdateProfileSecret replaces the secret hash of a profile
func (s *pgStore) UpdateProfileSecret(ctx context.Context, profileID uuid.UUID, secretHash string) error {
	result := s.db.WithContext(ctx).
		Model(&schema.Profile{}).
		Where("id = ?", profileID).
		Updates(map[string]interface{}{
			"secret_hash": secretHash,
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update profile secret: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("profile %s: %w", profileID, domain.ErrNotFound)
	}

	return nil
}

// UpdateWalletExposure records fresh balances and marks the wallet verified
func (s *pgStore) UpdateWalletExposure(ctx context.Context, input UpdateWalletExposureInput) error {
	err := s.db.WithContext(ctx).
		Model(&schema.Wallet{}).
		Where("id = ?", input.WalletID).
		Updates(map[string]interface{}{
			"direct_balance":  input.DirectBalance,
			"pool_balance":    input.PoolBalance,
			"total_balance":   input.TotalBalance,
			"last_checked_at": input.CheckedAt,
			"status":          domain.WalletStatusVerified,
			"error_reason":    nil,
			"updated_at":      time.Now(),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update wallet exposure: %w", err)
	}

	return nil
}

// MarkWalletError records a failed exposure read, keeping the previous balances
func (s *pgStore) MarkWalletError(ctx context.Context, walletID uint64, reason string, checkedAt time.Time) error {
	reason = truncateUTF8(reason, maxWalletErrorLength)

	err := s.db.WithContext(ctx).
		Model(&schema.Wallet{}).
		Where("id = ?", walletID).
		Updates(map[string]interface{}{
			"status":          domain.WalletStatusError,
			"error_reason":    reason,
			"last_checked_at": checkedAt,
			"updated_at":      time.Now(),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to mark wallet error: %w", err)
	}

	return nil
}

// =============================================================================
// Liquidity pools
// =============================================================================

// GetEnabledPools retrieves the pools participating in exposure calculation
func (s *pgStore) GetEnabledPools(ctx context.Context) ([]schema.LiquidityPool, error) {
	var pools []schema.LiquidityPool
	err := s.db.WithContext(ctx).Where("enabled").Order("address ASC").Find(&pools).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get enabled pools: %w", err)
	}

	return pools, nil
}

// ListPools retrieves all pools
func (s *pgStore) ListPools(ctx context.Context) ([]schema.LiquidityPool, error) {
	var pools []schema.LiquidityPool
	err := s.db.WithContext(ctx).Order("address ASC").Find(&pools).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list pools: %w", err)
	}

	return pools, nil
}

// UpsertPool creates or replaces a pool by address
func (s *pgStore) UpsertPool(ctx context.Context, input UpsertPoolInput) (*schema.LiquidityPool, error) {
	if input.TargetSide != 0 && input.TargetSide != 1 {
		return nil, fmt.Errorf("target side must be 0 or 1, got %d", input.TargetSide)
	}

	now := time.Now()
	pool := &schema.LiquidityPool{
		Address:    domain.NormalizeAddress(input.Address),
		Name:       input.Name,
		Token0:     domain.NormalizeAddress(input.Token0),
		Token1:     domain.NormalizeAddress(input.Token1),
		TargetSide: input.TargetSide,
		Enabled:    input.Enabled,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "address"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "token0", "token1", "target_side", "enabled", "updated_at"}),
	}).Create(pool).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert pool: %w", err)
	}

	return pool, nil
}

// =============================================================================
// Webhooks
// =============================================================================

// GetActiveWebhookClientsByEventType retrieves active webhook clients that match the given event type
func (s *pgStore) GetActiveWebhookClientsByEventType(ctx context.Context, eventType string) ([]*schema.WebhookClient, error) {
	var clients []*schema.WebhookClient

	filter, err := json.Marshal([]string{eventType})
	if err != nil {
		return nil, fmt.Errorf("failed to encode event filter: %w", err)
	}

	// JSONB containment matches either the exact event type or the wildcard
	err = s.db.WithContext(ctx).
		Where("is_active").
		Where("event_filters @> ?::jsonb OR event_filters @> ?::jsonb", string(filter), `["*"]`).
		Find(&clients).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get webhook clients by event type: %w", err)
	}

	return clients, nil
}

// GetWebhookClientByID retrieves a webhook client by client ID
func (s *pgStore) GetWebhookClientByID(ctx context.Context, clientID string) (*schema.WebhookClient, error) {
	var client schema.WebhookClient
	err := s.db.WithContext(ctx).Where("client_id = ?", clientID).First(&client).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get webhook client: %w", err)
	}
	return &client, nil
}

// CreateWebhookClient creates a new webhook client
func (s *pgStore) CreateWebhookClient(ctx context.Context, input CreateWebhookClientInput) (*schema.WebhookClient, error) {
	client := &schema.WebhookClient{
		ClientID:         input.ClientID,
		Description:      input.Description,
		WebhookURL:       input.WebhookURL,
		WebhookSecret:    input.WebhookSecret,
		EventFilters:     datatypes.JSON(input.EventFilters),
		IsActive:         input.IsActive,
		RetryMaxAttempts: input.RetryMaxAttempts,
	}

	err := s.db.WithContext(ctx).Create(client).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create webhook client: %w", err)
	}
	return client, nil
}

// CreateWebhookDelivery creates a new webhook delivery record
func (s *pgStore) CreateWebhookDelivery(ctx context.Context, delivery *schema.WebhookDelivery) error {
	err := s.db.WithContext(ctx).Create(delivery).Error
	if err != nil {
		return fmt.Errorf("failed to create webhook delivery: %w", err)
	}
	return nil
}

// RecordWebhookAttempt overwrites the last-attempt columns of a delivery.
// The error column is cleared on success so a late success does not keep a stale failure.
func (s *pgStore) RecordWebhookAttempt(ctx context.Context, deliveryID uint64, attempt WebhookAttempt) error {
	now := time.Now()
	errorMessage := ""
	if attempt.Err != nil {
		errorMessage = truncateUTF8(attempt.Err.Error(), maxDeliveryErrorLength)
	}

	result := s.db.WithContext(ctx).
		Model(&schema.WebhookDelivery{}).
		Where("id = ?", deliveryID).
		Updates(map[string]interface{}{
			"delivery_status": attempt.Status(),
			"attempts":        attempt.Number,
			"response_status": attempt.ResponseStatus,
			"response_body":   attempt.ResponseBody,
			"error_message":   errorMessage,
			"last_attempt_at": now,
			"updated_at":      now,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to record webhook attempt: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("webhook delivery %d not found", deliveryID)
	}

	return nil
}

// truncateUTF8 cuts s to at most limit bytes without splitting a rune,
// postgres rejects text that is not valid UTF-8
func truncateUTF8(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit]
}
