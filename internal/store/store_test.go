package store

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-token-gate/internal/domain"
	"github.com/feral-file/ff-token-gate/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

func buildLinkInput(handle, address string) LinkWalletInput {
	return LinkWalletInput{
		Handle:     handle,
		Address:    address,
		SecretHash: "$2a$10$testhashtesthashtesthashtesthashtesthashtesthashtesth",
	}
}

func mustLink(t *testing.T, store Store, handle, address string) *LinkWalletResult {
	t.Helper()
	result, err := store.LinkWallet(context.Background(), buildLinkInput(handle, address))
	require.NoError(t, err)
	return result
}

func mustCreateRun(t *testing.T, store Store, startedAt time.Time) *schema.ScreeningRun {
	t.Helper()
	run, err := store.CreateScreeningRun(context.Background(), CreateScreeningRunInput{StartedAt: startedAt})
	require.NoError(t, err)
	return run
}

func completeRun(t *testing.T, store Store, runID uuid.UUID, status domain.RunStatus, finishedAt time.Time) {
	t.Helper()
	err := store.CompleteScreeningRun(context.Background(), runID, CompleteScreeningRunInput{
		Status:     status,
		FinishedAt: finishedAt,
	})
	require.NoError(t, err)
}

// =============================================================================
// Tests
// =============================================================================

func testKeyValueStore(t *testing.T, store Store) {
	ctx := context.Background()

	value, err := store.GetKeyValue(ctx, "missing_key")
	require.NoError(t, err)
	assert.Equal(t, "", value)

	require.NoError(t, store.SetKeyValue(ctx, domain.SettingEligibilityThresholdRaw, "42"))
	require.NoError(t, store.SetKeyValue(ctx, domain.SettingEligibilityThresholdRaw, "43"))

	value, err = store.GetKeyValue(ctx, domain.SettingEligibilityThresholdRaw)
	require.NoError(t, err)
	assert.Equal(t, "43", value)

	values, err := store.GetKeyValues(ctx, []string{domain.SettingEligibilityThresholdRaw, "missing_key"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{domain.SettingEligibilityThresholdRaw: "43"}, values)

	values, err = store.GetKeyValues(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, values)
}

func testRunLease(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Now().UTC()

	ok, err := store.AcquireRunLease(ctx, "test-lease", "holder-a", time.Minute, now)
	require.NoError(t, err)
	assert.True(t, ok)

	// Held by another holder and not expired
	ok, err = store.AcquireRunLease(ctx, "test-lease", "holder-b", time.Minute, now.Add(30*time.Second))
	require.NoError(t, err)
	assert.False(t, ok)

	// Re-entrant for the same holder
	ok, err = store.AcquireRunLease(ctx, "test-lease", "holder-a", time.Minute, now.Add(10*time.Second))
	require.NoError(t, err)
	assert.True(t, ok)

	// Expired leases can be taken over
	ok, err = store.AcquireRunLease(ctx, "test-lease", "holder-b", time.Minute, now.Add(2*time.Minute))
	require.NoError(t, err)
	assert.True(t, ok)

	// Extending keeps a running holder ahead of takeovers
	ok, err = store.ExtendRunLease(ctx, "test-lease", "holder-b", 10*time.Minute, now.Add(2*time.Minute))
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = store.AcquireRunLease(ctx, "test-lease", "holder-a", time.Minute, now.Add(5*time.Minute))
	require.NoError(t, err)
	assert.False(t, ok, "extended lease is not expired yet")

	// A holder that lost the lease cannot extend it
	ok, err = store.ExtendRunLease(ctx, "test-lease", "holder-a", time.Minute, now.Add(5*time.Minute))
	require.NoError(t, err)
	assert.False(t, ok)

	// Releasing with a stale holder is a no-op
	require.NoError(t, store.ReleaseRunLease(ctx, "test-lease", "holder-a"))
	ok, err = store.AcquireRunLease(ctx, "test-lease", "holder-c", time.Minute, now.Add(2*time.Minute))
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.ReleaseRunLease(ctx, "test-lease", "holder-b"))
	ok, err = store.AcquireRunLease(ctx, "test-lease", "holder-c", time.Minute, now.Add(2*time.Minute))
	require.NoError(t, err)
	assert.True(t, ok)
}

func testScreeningRuns(t *testing.T, store Store) {
	ctx := context.Background()
	base := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	last, err := store.GetLastSuccessfulRun(ctx)
	require.NoError(t, err)
	assert.Nil(t, last)

	first := mustCreateRun(t, store, base)
	assert.Equal(t, domain.RunStatusRunning, first.Status)
	completeRun(t, store, first.ID, domain.RunStatusSuccess, base.Add(time.Minute))

	second := mustCreateRun(t, store, base.Add(time.Hour))
	errMsg := "cannot load profiles"
	block := uint64(123)
	err = store.CompleteScreeningRun(ctx, second.ID, CompleteScreeningRunInput{
		Status:      domain.RunStatusError,
		Error:       &errMsg,
		BlockNumber: &block,
		FinishedAt:  base.Add(time.Hour + time.Minute),
	})
	require.NoError(t, err)

	t.Run("terminal status is written once", func(t *testing.T) {
		err := store.CompleteScreeningRun(ctx, first.ID, CompleteScreeningRunInput{
			Status:     domain.RunStatusError,
			FinishedAt: base.Add(2 * time.Hour),
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrRunFinalized))

		run, err := store.GetScreeningRun(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.RunStatusSuccess, run.Status)
	})

	t.Run("non terminal status is rejected", func(t *testing.T) {
		third := mustCreateRun(t, store, base.Add(3*time.Hour))
		err := store.CompleteScreeningRun(ctx, third.ID, CompleteScreeningRunInput{Status: domain.RunStatusRunning})
		assert.Error(t, err)
	})

	t.Run("last successful run ignores error runs", func(t *testing.T) {
		last, err := store.GetLastSuccessfulRun(ctx)
		require.NoError(t, err)
		require.NotNil(t, last)
		assert.Equal(t, first.ID, last.ID)
	})

	t.Run("error details are persisted", func(t *testing.T) {
		run, err := store.GetScreeningRun(ctx, second.ID)
		require.NoError(t, err)
		require.NotNil(t, run)
		assert.Equal(t, domain.RunStatusError, run.Status)
		require.NotNil(t, run.Error)
		assert.Equal(t, errMsg, *run.Error)
		require.NotNil(t, run.BlockNumber)
		assert.Equal(t, block, *run.BlockNumber)
		assert.NotNil(t, run.FinishedAt)
	})

	t.Run("list newest first", func(t *testing.T) {
		runs, total, err := store.ListScreeningRuns(ctx, 2, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, runs, 2)
		assert.True(t, runs[0].StartedAt.After(runs[1].StartedAt))
	})

	t.Run("missing run", func(t *testing.T) {
		run, err := store.GetScreeningRun(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, run)
	})
}

func testProfileSnapshots(t *testing.T, store Store) {
	ctx := context.Background()
	base := time.Date(2030, 2, 1, 0, 0, 0, 0, time.UTC)

	alice := mustLink(t, store, "@Alice", "0x00000000000000000000000000000000000000a1")
	bob := mustLink(t, store, "bob", "0x00000000000000000000000000000000000000b1")

	older := mustCreateRun(t, store, base)
	reason := "chain read failed"
	require.NoError(t, store.CreateProfileSnapshot(ctx, CreateProfileSnapshotInput{
		RunID:        older.ID,
		ProfileID:    alice.Profile.ID,
		TotalBalance: "1000000000000000000000000",
		Eligible:     true,
		Breakdown: []domain.WalletContribution{
			{Address: "0x00000000000000000000000000000000000000a1", Direct: "1000000000000000000000000", PoolDerived: "0", Total: "1000000000000000000000000"},
		},
	}))
	require.NoError(t, store.CreateProfileSnapshot(ctx, CreateProfileSnapshotInput{
		RunID:        older.ID,
		ProfileID:    bob.Profile.ID,
		TotalBalance: "0",
		Eligible:     false,
		Breakdown: []domain.WalletContribution{
			{Address: "0x00000000000000000000000000000000000000b1", Direct: "0", PoolDerived: "0", Total: "0", Error: &reason},
		},
	}))
	completeRun(t, store, older.ID, domain.RunStatusSuccess, base.Add(time.Minute))

	newer := mustCreateRun(t, store, base.Add(48*time.Hour))
	require.NoError(t, store.CreateProfileSnapshot(ctx, CreateProfileSnapshotInput{
		RunID:        newer.ID,
		ProfileID:    alice.Profile.ID,
		TotalBalance: "1500",
		Eligible:     false,
	}))
	completeRun(t, store, newer.ID, domain.RunStatusSuccess, base.Add(49*time.Hour))

	failed := mustCreateRun(t, store, base.Add(72*time.Hour))
	require.NoError(t, store.CreateProfileSnapshot(ctx, CreateProfileSnapshotInput{
		RunID:        failed.ID,
		ProfileID:    alice.Profile.ID,
		TotalBalance: "9",
		Eligible:     false,
	}))
	completeRun(t, store, failed.ID, domain.RunStatusError, base.Add(73*time.Hour))

	t.Run("aggregate totals wider than a uint256", func(t *testing.T) {
		wide := strings.Repeat("9", 79)
		wideRun := mustCreateRun(t, store, base.Add(96*time.Hour))
		require.NoError(t, store.CreateProfileSnapshot(ctx, CreateProfileSnapshotInput{
			RunID:        wideRun.ID,
			ProfileID:    bob.Profile.ID,
			TotalBalance: wide,
			Eligible:     true,
		}))

		snapshots, err := store.GetSnapshotsByRun(ctx, wideRun.ID)
		require.NoError(t, err)
		require.Len(t, snapshots, 1)
		assert.Equal(t, wide, snapshots[0].TotalBalance)
		completeRun(t, store, wideRun.ID, domain.RunStatusError, base.Add(97*time.Hour))
	})

	t.Run("snapshot identity is unique per run and profile", func(t *testing.T) {
		err := store.CreateProfileSnapshot(ctx, CreateProfileSnapshotInput{
			RunID:        older.ID,
			ProfileID:    alice.Profile.ID,
			TotalBalance: "1",
		})
		assert.Error(t, err)
	})

	t.Run("snapshots by run", func(t *testing.T) {
		snapshots, err := store.GetSnapshotsByRun(ctx, older.ID)
		require.NoError(t, err)
		require.Len(t, snapshots, 2)
		assert.Equal(t, alice.Profile.ID, snapshots[0].ProfileID)

		var breakdown []domain.WalletContribution
		require.NoError(t, json.Unmarshal(snapshots[1].Breakdown, &breakdown))
		require.Len(t, breakdown, 1)
		require.NotNil(t, breakdown[0].Error)
		assert.Equal(t, reason, *breakdown[0].Error)
	})

	t.Run("eligible profiles", func(t *testing.T) {
		refs, err := store.GetEligibleProfiles(ctx, older.ID)
		require.NoError(t, err)
		assert.Equal(t, []ProfileRef{{ID: alice.Profile.ID, Handle: "alice"}}, refs)

		refs, err = store.GetEligibleProfiles(ctx, newer.ID)
		require.NoError(t, err)
		assert.Empty(t, refs)
	})

	t.Run("latest snapshot skips failed runs", func(t *testing.T) {
		record, err := store.GetLatestProfileSnapshot(ctx, alice.Profile.ID)
		require.NoError(t, err)
		require.NotNil(t, record)
		assert.Equal(t, newer.ID, record.RunID)
		assert.Equal(t, "1500", record.TotalBalance)
		assert.True(t, record.RunStartedAt.Equal(base.Add(48*time.Hour)))
	})

	t.Run("snapshot before a point in time", func(t *testing.T) {
		record, err := store.GetProfileSnapshotBefore(ctx, alice.Profile.ID, base.Add(24*time.Hour))
		require.NoError(t, err)
		require.NotNil(t, record)
		assert.Equal(t, older.ID, record.RunID)

		record, err = store.GetProfileSnapshotBefore(ctx, alice.Profile.ID, base.Add(-time.Hour))
		require.NoError(t, err)
		assert.Nil(t, record)
	})
}

func testLinkWallet(t *testing.T, store Store) {
	ctx := context.Background()

	first := mustLink(t, store, "@Carol", "0x00000000000000000000000000000000000000C1")
	assert.True(t, first.ProfileCreated)
	assert.False(t, first.AlreadyLinked)
	assert.Equal(t, "carol", first.Profile.Handle)
	assert.Equal(t, "0x00000000000000000000000000000000000000c1", first.Wallet.Address)
	assert.Equal(t, domain.WalletStatusPending, first.Wallet.Status)

	t.Run("second wallet joins the existing profile", func(t *testing.T) {
		second, err := store.LinkWallet(ctx, LinkWalletInput{Handle: "CAROL", Address: "0x00000000000000000000000000000000000000c2"})
		require.NoError(t, err)
		assert.False(t, second.ProfileCreated)
		assert.Equal(t, first.Profile.ID, second.Profile.ID)
	})

	t.Run("relinking the same address is idempotent", func(t *testing.T) {
		again, err := store.LinkWallet(ctx, LinkWalletInput{Handle: "carol", Address: "0x00000000000000000000000000000000000000c1"})
		require.NoError(t, err)
		assert.True(t, again.AlreadyLinked)
		assert.Equal(t, first.Wallet.ID, again.Wallet.ID)
	})

	t.Run("address cannot move to another profile", func(t *testing.T) {
		_, err := store.LinkWallet(ctx, buildLinkInput("dave", "0x00000000000000000000000000000000000000c1"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrWalletAlreadyLinked))

		profile, err := store.GetProfileByHandle(ctx, "dave")
		require.NoError(t, err)
		assert.Nil(t, profile, "profile must not be created when the link fails")
	})

	t.Run("new profile requires a secret hash", func(t *testing.T) {
		_, err := store.LinkWallet(ctx, LinkWalletInput{Handle: "erin", Address: "0x00000000000000000000000000000000000000e1"})
		assert.Error(t, err)
	})

	t.Run("profiles with wallets", func(t *testing.T) {
		mustLink(t, store, "aaron", "0x00000000000000000000000000000000000000aa")
		profiles, err := store.GetProfilesWithWallets(ctx)
		require.NoError(t, err)
		require.Len(t, profiles, 2)
		assert.Equal(t, "aaron", profiles[0].Handle)
		assert.Equal(t, "carol", profiles[1].Handle)
		assert.Len(t, profiles[1].Wallets, 2)
	})

	t.Run("unlink", func(t *testing.T) {
		require.NoError(t, store.UnlinkWallet(ctx, first.Profile.ID, "0x00000000000000000000000000000000000000C2"))

		err := store.UnlinkWallet(ctx, first.Profile.ID, "0x00000000000000000000000000000000000000c2")
		assert.True(t, errors.Is(err, domain.ErrNotFound))

		profile, err := store.GetProfileByHandle(ctx, "@carol")
		require.NoError(t, err)
		require.NotNil(t, profile)
		assert.Len(t, profile.Wallets, 1)
	})

	t.Run("rotate secret", func(t *testing.T) {
		require.NoError(t, store.UpdateProfileSecret(ctx, first.Profile.ID, "new-hash"))
		profile, err := store.GetProfileByHandle(ctx, "carol")
		require.NoError(t, err)
		assert.Equal(t, "new-hash", profile.SecretHash)

		err = store.UpdateProfileSecret(ctx, uuid.New(), "x")
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}

func testWalletExposure(t *testing.T, store Store) {
	ctx := context.Background()
	checkedAt := time.Date(2030, 3, 1, 12, 0, 0, 0, time.UTC)

	linked := mustLink(t, store, "frank", "0x00000000000000000000000000000000000000f1")

	require.NoError(t, store.UpdateWalletExposure(ctx, UpdateWalletExposureInput{
		WalletID:      linked.Wallet.ID,
		DirectBalance: "100",
		PoolBalance:   "500",
		TotalBalance:  "600",
		CheckedAt:     checkedAt,
	}))

	profile, err := store.GetProfileByHandle(ctx, "frank")
	require.NoError(t, err)
	wallet := profile.Wallets[0]
	assert.Equal(t, domain.WalletStatusVerified, wallet.Status)
	assert.Equal(t, "600", wallet.TotalBalance)
	assert.Nil(t, wallet.ErrorReason)
	require.NotNil(t, wallet.LastCheckedAt)
	assert.True(t, wallet.LastCheckedAt.Equal(checkedAt))

	t.Run("sums wider than a uint256", func(t *testing.T) {
		wide := "2" + strings.Repeat("0", 80)
		require.NoError(t, store.UpdateWalletExposure(ctx, UpdateWalletExposureInput{
			WalletID:      linked.Wallet.ID,
			DirectBalance: "0",
			PoolBalance:   wide,
			TotalBalance:  wide,
			CheckedAt:     checkedAt,
		}))

		profile, err := store.GetProfileByHandle(ctx, "frank")
		require.NoError(t, err)
		assert.Equal(t, wide, profile.Wallets[0].TotalBalance)
	})

	require.NoError(t, store.UpdateWalletExposure(ctx, UpdateWalletExposureInput{
		WalletID:      linked.Wallet.ID,
		DirectBalance: "100",
		PoolBalance:   "500",
		TotalBalance:  "600",
		CheckedAt:     checkedAt,
	}))

	t.Run("long multi-byte reason is stored on a rune boundary", func(t *testing.T) {
		reason := "ошибка " + strings.Repeat("узел недоступен ", 200)
		require.NoError(t, store.MarkWalletError(ctx, linked.Wallet.ID, reason, checkedAt))

		profile, err := store.GetProfileByHandle(ctx, "frank")
		require.NoError(t, err)
		wallet := profile.Wallets[0]
		assert.Equal(t, domain.WalletStatusError, wallet.Status)
		require.NotNil(t, wallet.ErrorReason)
		assert.LessOrEqual(t, len(*wallet.ErrorReason), maxWalletErrorLength)
		assert.True(t, utf8.ValidString(*wallet.ErrorReason))
		assert.True(t, strings.HasPrefix(reason, *wallet.ErrorReason))
	})

	require.NoError(t, store.MarkWalletError(ctx, linked.Wallet.ID, "timeout", checkedAt.Add(time.Hour)))

	profile, err = store.GetProfileByHandle(ctx, "frank")
	require.NoError(t, err)
	wallet = profile.Wallets[0]
	assert.Equal(t, domain.WalletStatusError, wallet.Status)
	require.NotNil(t, wallet.ErrorReason)
	assert.Equal(t, "timeout", *wallet.ErrorReason)
	assert.Equal(t, "600", wallet.TotalBalance, "previous balances are kept on failure")
}

func testLiquidityPools(t *testing.T, store Store) {
	ctx := context.Background()

	_, err := store.UpsertPool(ctx, UpsertPoolInput{
		Address:    "0x00000000000000000000000000000000000000P1",
		Token0:     "0x0000000000000000000000000000000000000001",
		Token1:     "0x0000000000000000000000000000000000000002",
		TargetSide: 2,
	})
	assert.Error(t, err)

	pool, err := store.UpsertPool(ctx, UpsertPoolInput{
		Address:    "0x00000000000000000000000000000000000000D1",
		Name:       "TOKEN/WETH",
		Token0:     "0x0000000000000000000000000000000000000001",
		Token1:     "0x0000000000000000000000000000000000000002",
		TargetSide: 0,
		Enabled:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, "0x00000000000000000000000000000000000000d1", pool.Address)

	_, err = store.UpsertPool(ctx, UpsertPoolInput{
		Address:    "0x00000000000000000000000000000000000000d2",
		Token0:     "0x0000000000000000000000000000000000000003",
		Token1:     "0x0000000000000000000000000000000000000001",
		TargetSide: 1,
		Enabled:    false,
	})
	require.NoError(t, err)

	enabled, err := store.GetEnabledPools(ctx)
	require.NoError(t, err)
	require.Len(t, enabled, 1)
	assert.Equal(t, "TOKEN/WETH", enabled[0].Name)

	// Disable through upsert
	_, err = store.UpsertPool(ctx, UpsertPoolInput{
		Address:    "0x00000000000000000000000000000000000000d1",
		Name:       "TOKEN/WETH",
		Token0:     "0x0000000000000000000000000000000000000001",
		Token1:     "0x0000000000000000000000000000000000000002",
		TargetSide: 0,
		Enabled:    false,
	})
	require.NoError(t, err)

	enabled, err = store.GetEnabledPools(ctx)
	require.NoError(t, err)
	assert.Empty(t, enabled)

	all, err := store.ListPools(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func testWebhookClients(t *testing.T, store Store) {
	ctx := context.Background()

	_, err := store.CreateWebhookClient(ctx, CreateWebhookClientInput{
		ClientID:         "11111111-1111-1111-1111-111111111111",
		Description:      "membership bot",
		WebhookURL:       "https://example.com/hook",
		WebhookSecret:    "secret",
		EventFilters:     []byte(`["screening.run.completed"]`),
		IsActive:         true,
		RetryMaxAttempts: 3,
	})
	require.NoError(t, err)

	_, err = store.CreateWebhookClient(ctx, CreateWebhookClientInput{
		ClientID:         "22222222-2222-2222-2222-222222222222",
		WebhookURL:       "https://example.com/all",
		WebhookSecret:    "secret",
		EventFilters:     []byte(`["*"]`),
		IsActive:         true,
		RetryMaxAttempts: 3,
	})
	require.NoError(t, err)

	_, err = store.CreateWebhookClient(ctx, CreateWebhookClientInput{
		ClientID:         "33333333-3333-3333-3333-333333333333",
		WebhookURL:       "https://example.com/off",
		WebhookSecret:    "secret",
		EventFilters:     []byte(`["screening.run.completed"]`),
		IsActive:         false,
		RetryMaxAttempts: 3,
	})
	require.NoError(t, err)

	clients, err := store.GetActiveWebhookClientsByEventType(ctx, "screening.run.completed")
	require.NoError(t, err)
	assert.Len(t, clients, 2)

	clients, err = store.GetActiveWebhookClientsByEventType(ctx, "screening.membership.added")
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "22222222-2222-2222-2222-222222222222", clients[0].ClientID)

	client, err := store.GetWebhookClientByID(ctx, "11111111-1111-1111-1111-111111111111")
	require.NoError(t, err)
	require.NotNil(t, client)
	assert.Equal(t, "https://example.com/hook", client.WebhookURL)
	assert.Equal(t, "membership bot", client.Description)
	assert.Equal(t, []string{"screening.run.completed"}, client.Filters())

	missing, err := store.GetWebhookClientByID(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func testWebhookDeliveries(t *testing.T, store Store) {
	ctx := context.Background()

	_, err := store.CreateWebhookClient(ctx, CreateWebhookClientInput{
		ClientID:         "44444444-4444-4444-4444-444444444444",
		WebhookURL:       "https://example.com/hook",
		WebhookSecret:    "secret",
		EventFilters:     []byte(`["*"]`),
		IsActive:         true,
		RetryMaxAttempts: 3,
	})
	require.NoError(t, err)

	delivery := &schema.WebhookDelivery{
		ClientID:       "44444444-4444-4444-4444-444444444444",
		EventID:        "01JTESTEVENT",
		EventType:      "screening.run.completed",
		RunID:          "4b8e2d8e-6f0a-4a38-9a53-6e0a1f3b9c11",
		Payload:        []byte(`{"run_id":"4b8e2d8e-6f0a-4a38-9a53-6e0a1f3b9c11"}`),
		WorkflowID:     "webhook-delivery-1",
		DeliveryStatus: schema.DeliveryPending,
	}
	require.NoError(t, store.CreateWebhookDelivery(ctx, delivery))
	require.NotZero(t, delivery.ID)

	unavailable := 503
	require.NoError(t, store.RecordWebhookAttempt(ctx, delivery.ID, WebhookAttempt{
		Number:         1,
		ResponseStatus: &unavailable,
		Err:            errors.New(strings.Repeat("x", 2000)),
	}))

	ok := 200
	require.NoError(t, store.RecordWebhookAttempt(ctx, delivery.ID, WebhookAttempt{
		Number:         2,
		Delivered:      true,
		ResponseStatus: &ok,
		ResponseBody:   "ok",
	}))

	err = store.RecordWebhookAttempt(ctx, delivery.ID+1000, WebhookAttempt{Number: 1})
	assert.Error(t, err)
}

// RunStoreTests runs every store test against a freshly initialized store
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"KeyValueStore", testKeyValueStore},
		{"RunLease", testRunLease},
		{"ScreeningRuns", testScreeningRuns},
		{"ProfileSnapshots", testProfileSnapshots},
		{"LinkWallet", testLinkWallet},
		{"WalletExposure", testWalletExposure},
		{"LiquidityPools", testLiquidityPools},
		{"WebhookClients", testWebhookClients},
		{"WebhookDeliveries", testWebhookDeliveries},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.fn(t, initDB(t))
		})
	}
}

func TestTruncateUTF8(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		limit    int
		expected string
	}{
		{name: "short", input: "timeout", limit: 10, expected: "timeout"},
		{name: "ascii cut", input: "abcdef", limit: 3, expected: "abc"},
		{name: "cut inside a two byte rune", input: "aé", limit: 2, expected: "a"},
		{name: "cut inside a three byte rune", input: "ab€", limit: 4, expected: "ab"},
		{name: "cut after a rune", input: "€€", limit: 3, expected: "€"},
		{name: "zero limit", input: "é", limit: 0, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateUTF8(tt.input, tt.limit)
			assert.Equal(t, tt.expected, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}
