package executor

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/feral-file/ff-token-gate/internal/api/shared/constants"
	"github.com/feral-file/ff-token-gate/internal/api/shared/dto"
	apierrors "github.com/feral-file/ff-token-gate/internal/api/shared/errors"
	"github.com/feral-file/ff-token-gate/internal/domain"
	"github.com/feral-file/ff-token-gate/internal/eligibility"
	"github.com/feral-file/ff-token-gate/internal/logger"
	"github.com/feral-file/ff-token-gate/internal/profile"
	"github.com/feral-file/ff-token-gate/internal/screening"
	"github.com/feral-file/ff-token-gate/internal/settings"
	"github.com/feral-file/ff-token-gate/internal/store"
)

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// TriggerRun executes a screening run synchronously
	TriggerRun(ctx context.Context, force bool) (*dto.RunResultResponse, error)

	// ListRuns retrieves runs newest first
	ListRuns(ctx context.Context, limit int, offset int) (*dto.RunListResponse, error)

	// GetRun retrieves a run by ID
	GetRun(ctx context.Context, runID uuid.UUID) (*dto.RunResponse, error)

	// GetRunSnapshots retrieves the profile snapshots of a run
	GetRunSnapshots(ctx context.Context, runID uuid.UUID) (*dto.SnapshotListResponse, error)

	// GetProfile retrieves a profile with its wallets and latest snapshot
	GetProfile(ctx context.Context, handle string) (*dto.ProfileResponse, error)

	// GetProfileTrend compares the latest snapshot with one at least days older
	GetProfileTrend(ctx context.Context, handle string, days int) (*dto.TrendResponse, error)

	// LinkWallet binds a verified address to a handle
	LinkWallet(ctx context.Context, req dto.LinkWalletRequest) (*dto.LinkWalletResponse, error)

	// UnlinkWallet removes an address from a profile
	UnlinkWallet(ctx context.Context, handle string, address string, secret string) error

	// RotateProfileSecret issues a new profile secret
	RotateProfileSecret(ctx context.Context, handle string) (*dto.SecretResponse, error)

	// ListPools retrieves all liquidity pools
	ListPools(ctx context.Context) (*dto.PoolListResponse, error)

	// UpsertPool creates or replaces a liquidity pool
	UpsertPool(ctx context.Context, req dto.UpsertPoolRequest) (*dto.PoolResponse, error)

	// GetSettings retrieves the stored operator settings
	GetSettings(ctx context.Context) (*dto.SettingsResponse, error)

	// UpdateSettings validates and writes operator settings
	UpdateSettings(ctx context.Context, values map[string]string) (*dto.SettingsResponse, error)

	// CreateWebhookClient registers a webhook endpoint
	CreateWebhookClient(ctx context.Context, req dto.CreateWebhookClientRequest) (*dto.CreateWebhookClientResponse, error)
}

type executor struct {
	store        store.Store
	orchestrator screening.Orchestrator
	profiles     profile.Service
	settings     settings.Provider
}

// NewExecutor creates the executor shared by the REST handlers
func NewExecutor(st store.Store, orchestrator screening.Orchestrator, profiles profile.Service, settingsProvider settings.Provider) Executor {
	return &executor{
		store:        st,
		orchestrator: orchestrator,
		profiles:     profiles,
		settings:     settingsProvider,
	}
}

func (e *executor) TriggerRun(ctx context.Context, force bool) (*dto.RunResultResponse, error) {
	result, err := e.orchestrator.Run(ctx, screening.RunOptions{Force: force})
	if err != nil {
		if errors.Is(err, domain.ErrRunInProgress) {
			return nil, apierrors.NewConflictError("A screening run is already in progress")
		}
		if result == nil {
			return nil, apierrors.NewInternalError("Failed to run screening")
		}
		// The run executed but its terminal status could not be written
		logger.ErrorCtx(ctx, err, zap.String("run_id", result.RunID.String()))
	}

	return dto.MapRunResultToDTO(result), nil
}

func (e *executor) ListRuns(ctx context.Context, limit int, offset int) (*dto.RunListResponse, error) {
	runs, total, err := e.store.ListScreeningRuns(ctx, limit, offset)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list runs: %v", err))
	}

	response := &dto.RunListResponse{
		Runs:   make([]dto.RunResponse, 0, len(runs)),
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}
	for _, run := range runs {
		response.Runs = append(response.Runs, dto.MapRunToDTO(run))
	}

	return response, nil
}

func (e *executor) GetRun(ctx context.Context, runID uuid.UUID) (*dto.RunResponse, error) {
	run, err := e.store.GetScreeningRun(ctx, runID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get run: %v", err))
	}
	if run == nil {
		return nil, nil
	}

	response := dto.MapRunToDTO(*run)
	return &response, nil
}

func (e *executor) GetRunSnapshots(ctx context.Context, runID uuid.UUID) (*dto.SnapshotListResponse, error) {
	run, err := e.store.GetScreeningRun(ctx, runID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get run: %v", err))
	}
	if run == nil {
		return nil, nil
	}

	snapshots, err := e.store.GetSnapshotsByRun(ctx, runID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get snapshots: %v", err))
	}

	response := &dto.SnapshotListResponse{
		RunID:     runID.String(),
		Snapshots: make([]dto.SnapshotResponse, 0, len(snapshots)),
	}
	for _, snapshot := range snapshots {
		mapped, err := dto.MapSnapshotToDTO(snapshot)
		if err != nil {
			return nil, apierrors.NewInternalError("Failed to decode snapshot", err.Error())
		}
		response.Snapshots = append(response.Snapshots, mapped)
	}

	return response, nil
}

func (e *executor) GetProfile(ctx context.Context, handle string) (*dto.ProfileResponse, error) {
	p, err := e.store.GetProfileByHandle(ctx, domain.NormalizeHandle(handle))
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get profile: %v", err))
	}
	if p == nil {
		return nil, nil
	}

	response := dto.MapProfileToDTO(*p)

	latest, err := e.store.GetLatestProfileSnapshot(ctx, p.ID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get latest snapshot: %v", err))
	}
	if latest != nil {
		snapshot, err := dto.MapSnapshotToDTO(latest.ProfileSnapshot)
		if err != nil {
			return nil, apierrors.NewInternalError("Failed to decode snapshot", err.Error())
		}
		response.LatestSnapshot = &snapshot
	}

	return &response, nil
}

func (e *executor) GetProfileTrend(ctx context.Context, handle string, days int) (*dto.TrendResponse, error) {
	p, err := e.store.GetProfileByHandle(ctx, domain.NormalizeHandle(handle))
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get profile: %v", err))
	}
	if p == nil {
		return nil, nil
	}

	response := &dto.TrendResponse{Handle: p.Handle, Days: days}

	latest, err := e.store.GetLatestProfileSnapshot(ctx, p.ID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get latest snapshot: %v", err))
	}
	if latest == nil {
		return response, nil
	}
	response.Latest = dto.MapTrendPoint(latest)

	cutoff := latest.RunStartedAt.Add(-time.Duration(days) * 24 * time.Hour)
	baseline, err := e.store.GetProfileSnapshotBefore(ctx, p.ID, cutoff)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get baseline snapshot: %v", err))
	}
	if baseline == nil {
		return response, nil
	}
	response.Baseline = dto.MapTrendPoint(baseline)

	newer, err := domain.ParseRawAmount(latest.TotalBalance)
	if err != nil {
		return nil, apierrors.NewInternalError("Failed to parse latest total", err.Error())
	}
	older, err := domain.ParseRawAmount(baseline.TotalBalance)
	if err != nil {
		return nil, apierrors.NewInternalError("Failed to parse baseline total", err.Error())
	}
	delta := eligibility.Trend(older, newer).String()
	response.Delta = &delta

	return response, nil
}

func (e *executor) LinkWallet(ctx context.Context, req dto.LinkWalletRequest) (*dto.LinkWalletResponse, error) {
	result, err := e.profiles.Link(ctx, profile.LinkInput{
		Handle:   req.Handle,
		Address:  req.Address,
		Secret:   req.Secret,
		Metadata: req.Metadata,
	})
	if err != nil {
		return nil, apierrors.FromError(err, "Failed to link wallet")
	}

	return &dto.LinkWalletResponse{
		ProfileID:      result.Profile.ID.String(),
		Handle:         result.Profile.Handle,
		Address:        result.Wallet.Address,
		ProfileCreated: result.ProfileCreated,
		AlreadyLinked:  result.AlreadyLinked,
		Secret:         result.Secret,
	}, nil
}

func (e *executor) UnlinkWallet(ctx context.Context, handle string, address string, secret string) error {
	if err := e.profiles.Unlink(ctx, handle, address, secret); err != nil {
		return apierrors.FromError(err, "Failed to unlink wallet")
	}
	return nil
}

func (e *executor) RotateProfileSecret(ctx context.Context, handle string) (*dto.SecretResponse, error) {
	secret, err := e.profiles.RotateSecret(ctx, handle)
	if err != nil {
		return nil, apierrors.FromError(err, "Failed to rotate secret")
	}
	return &dto.SecretResponse{Handle: domain.NormalizeHandle(handle), Secret: secret}, nil
}

func (e *executor) ListPools(ctx context.Context) (*dto.PoolListResponse, error) {
	pools, err := e.store.ListPools(ctx)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list pools: %v", err))
	}

	response := &dto.PoolListResponse{Pools: make([]dto.PoolResponse, 0, len(pools))}
	for _, pool := range pools {
		response.Pools = append(response.Pools, dto.MapPoolToDTO(pool))
	}
	return response, nil
}

func (e *executor) UpsertPool(ctx context.Context, req dto.UpsertPoolRequest) (*dto.PoolResponse, error) {
	pool, err := e.store.UpsertPool(ctx, store.UpsertPoolInput{
		Address:    domain.NormalizeAddress(req.Address),
		Name:       req.Name,
		Token0:     domain.NormalizeAddress(req.Token0),
		Token1:     domain.NormalizeAddress(req.Token1),
		TargetSide: req.TargetSide,
		Enabled:    req.IsEnabled(),
	})
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to upsert pool: %v", err))
	}

	response := dto.MapPoolToDTO(*pool)
	return &response, nil
}

func (e *executor) GetSettings(ctx context.Context) (*dto.SettingsResponse, error) {
	values, err := e.settings.All(ctx)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get settings: %v", err))
	}
	return &dto.SettingsResponse{Settings: values}, nil
}

func (e *executor) UpdateSettings(ctx context.Context, values map[string]string) (*dto.SettingsResponse, error) {
	if err := e.settings.Update(ctx, values); err != nil {
		return nil, apierrors.FromError(err, "Failed to update settings")
	}
	return e.GetSettings(ctx)
}

// CreateWebhookClient stores a validated request. The generated secret is only returned here.
func (e *executor) CreateWebhookClient(ctx context.Context, req dto.CreateWebhookClientRequest) (*dto.CreateWebhookClientResponse, error) {
	secret, err := generateWebhookSecret()
	if err != nil {
		return nil, apierrors.NewInternalError("Failed to generate webhook secret")
	}

	filters, err := json.Marshal(req.EventFilters)
	if err != nil {
		return nil, apierrors.NewInternalError("Failed to encode event filters")
	}

	retryMaxAttempts := constants.DEFAULT_RETRY_MAX_ATTEMPTS
	if req.RetryMaxAttempts != nil {
		retryMaxAttempts = *req.RetryMaxAttempts
	}

	client, err := e.store.CreateWebhookClient(ctx, store.CreateWebhookClientInput{
		ClientID:         uuid.NewString(),
		Description:      strings.TrimSpace(req.Description),
		WebhookURL:       req.WebhookURL,
		WebhookSecret:    secret,
		EventFilters:     filters,
		IsActive:         true,
		RetryMaxAttempts: retryMaxAttempts,
	})
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to create webhook client: %v", err))
	}

	return &dto.CreateWebhookClientResponse{
		ClientID:         client.ClientID,
		Description:      client.Description,
		WebhookURL:       client.WebhookURL,
		WebhookSecret:    client.WebhookSecret,
		EventFilters:     client.Filters(),
		IsActive:         client.IsActive,
		RetryMaxAttempts: client.RetryMaxAttempts,
		CreatedAt:        client.CreatedAt,
		UpdatedAt:        client.UpdatedAt,
	}, nil
}

// generateWebhookSecret returns 32 random bytes as hex
func generateWebhookSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
