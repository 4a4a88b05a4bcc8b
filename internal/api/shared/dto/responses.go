package dto

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/feral-file/ff-token-gate/internal/domain"
	"github.com/feral-file/ff-token-gate/internal/eligibility"
	"github.com/feral-file/ff-token-gate/internal/screening"
	"github.com/feral-file/ff-token-gate/internal/store"
	"github.com/feral-file/ff-token-gate/internal/store/schema"
)

// RunResponse represents a stored screening run
type RunResponse struct {
	ID                string           `json:"id"`
	Status            domain.RunStatus `json:"status"`
	Forced            bool             `json:"forced"`
	Error             *string          `json:"error,omitempty"`
	BlockNumber       *uint64          `json:"block_number,omitempty"`
	ProfilesProcessed int              `json:"profiles_processed"`
	WalletsProcessed  int              `json:"wallets_processed"`
	WalletsFailed     int              `json:"wallets_failed"`
	EligibleCount     int              `json:"eligible_count"`
	MessageSent       bool             `json:"message_sent"`
	StartedAt         time.Time        `json:"started_at"`
	FinishedAt        *time.Time       `json:"finished_at,omitempty"`
}

// RunListResponse represents a page of runs
type RunListResponse struct {
	Runs   []RunResponse `json:"runs"`
	Total  int64         `json:"total"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}

// MemberResponse identifies a profile whose membership changed
type MemberResponse struct {
	ProfileID string `json:"profile_id"`
	Handle    string `json:"handle"`
}

// LeaderboardEntryResponse is one ranked holder
type LeaderboardEntryResponse struct {
	Rank           int    `json:"rank"`
	ProfileID      string `json:"profile_id"`
	Handle         string `json:"handle"`
	Total          string `json:"total"`
	TotalFormatted string `json:"total_formatted"`
}

// RunResultResponse represents the outcome of a run-now call
type RunResultResponse struct {
	RunID             *string                    `json:"run_id,omitempty"`
	Status            domain.RunStatus           `json:"status,omitempty"`
	Skipped           bool                       `json:"skipped"`
	BlockNumber       *uint64                    `json:"block_number,omitempty"`
	ProfilesProcessed int                        `json:"profiles_processed"`
	WalletsProcessed  int                        `json:"wallets_processed"`
	WalletsFailed     int                        `json:"wallets_failed"`
	EligibleCount     int                        `json:"eligible_count"`
	MessageSent       bool                       `json:"message_sent"`
	NewlyEligible     []MemberResponse           `json:"newly_eligible"`
	Dropped           []MemberResponse           `json:"dropped"`
	Leaderboard       []LeaderboardEntryResponse `json:"leaderboard"`
	Error             *string                    `json:"error,omitempty"`
}

// SnapshotResponse represents one profile's result within a run
type SnapshotResponse struct {
	RunID        string                      `json:"run_id"`
	ProfileID    string                      `json:"profile_id"`
	TotalBalance string                      `json:"total_balance"`
	Eligible     bool                        `json:"eligible"`
	Breakdown    []domain.WalletContribution `json:"breakdown"`
	CreatedAt    time.Time                   `json:"created_at"`
}

// SnapshotListResponse represents the snapshots of a run
type SnapshotListResponse struct {
	RunID     string             `json:"run_id"`
	Snapshots []SnapshotResponse `json:"snapshots"`
}

// WalletResponse represents a linked wallet
type WalletResponse struct {
	Address       string              `json:"address"`
	DirectBalance string              `json:"direct_balance"`
	PoolBalance   string              `json:"pool_balance"`
	TotalBalance  string              `json:"total_balance"`
	Status        domain.WalletStatus `json:"status"`
	ErrorReason   *string             `json:"error_reason,omitempty"`
	LastCheckedAt *time.Time          `json:"last_checked_at,omitempty"`
	Metadata      json.RawMessage     `json:"metadata,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
}

// ProfileResponse represents a profile with its wallets and latest snapshot
type ProfileResponse struct {
	ID             string            `json:"id"`
	Handle         string            `json:"handle"`
	Wallets        []WalletResponse  `json:"wallets"`
	LatestSnapshot *SnapshotResponse `json:"latest_snapshot,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
}

// TrendPoint is a profile total at a given run
type TrendPoint struct {
	RunID        string    `json:"run_id"`
	RunStartedAt time.Time `json:"run_started_at"`
	TotalBalance string    `json:"total_balance"`
	Eligible     bool      `json:"eligible"`
}

// TrendResponse represents the change of a profile total over a window
type TrendResponse struct {
	Handle   string      `json:"handle"`
	Days     int         `json:"days"`
	Latest   *TrendPoint `json:"latest,omitempty"`
	Baseline *TrendPoint `json:"baseline,omitempty"`
	// Delta is latest minus baseline, absent without both points
	Delta *string `json:"delta,omitempty"`
}

// LinkWalletResponse represents the outcome of a link
type LinkWalletResponse struct {
	ProfileID      string `json:"profile_id"`
	Handle         string `json:"handle"`
	Address        string `json:"address"`
	ProfileCreated bool   `json:"profile_created"`
	AlreadyLinked  bool   `json:"already_linked"`
	// Secret is returned once, when the profile was created with a generated secret
	Secret string `json:"secret,omitempty"`
}

// SecretResponse carries a freshly rotated profile secret
type SecretResponse struct {
	Handle string `json:"handle"`
	Secret string `json:"secret"`
}

// PoolResponse represents a whitelisted liquidity pool
type PoolResponse struct {
	Address    string    `json:"address"`
	Name       string    `json:"name,omitempty"`
	Token0     string    `json:"token0"`
	Token1     string    `json:"token1"`
	TargetSide int       `json:"target_side"`
	Enabled    bool      `json:"enabled"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// PoolListResponse represents all pools
type PoolListResponse struct {
	Pools []PoolResponse `json:"pools"`
}

// SettingsResponse represents the stored operator settings
type SettingsResponse struct {
	Settings map[string]string `json:"settings"`
}

// CreateWebhookClientResponse represents the response for creating a webhook client
type CreateWebhookClientResponse struct {
	ClientID         string    `json:"client_id"`
	Description      string    `json:"description,omitempty"`
	WebhookURL       string    `json:"webhook_url"`
	WebhookSecret    string    `json:"webhook_secret"`
	EventFilters     []string  `json:"event_filters"`
	IsActive         bool      `json:"is_active"`
	RetryMaxAttempts int       `json:"retry_max_attempts"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// MapRunToDTO maps a stored run
func MapRunToDTO(run schema.ScreeningRun) RunResponse {
	return RunResponse{
		ID:                run.ID.String(),
		Status:            run.Status,
		Forced:            run.Forced,
		Error:             run.Error,
		BlockNumber:       run.BlockNumber,
		ProfilesProcessed: run.ProfilesProcessed,
		WalletsProcessed:  run.WalletsProcessed,
		WalletsFailed:     run.WalletsFailed,
		EligibleCount:     run.EligibleCount,
		MessageSent:       run.MessageSent,
		StartedAt:         run.StartedAt,
		FinishedAt:        run.FinishedAt,
	}
}

// MapRunResultToDTO maps the outcome of an orchestrator invocation
func MapRunResultToDTO(result *screening.Result) *RunResultResponse {
	response := &RunResultResponse{
		Status:            result.Status,
		Skipped:           result.Skipped,
		BlockNumber:       result.BlockNumber,
		ProfilesProcessed: result.ProfilesProcessed,
		WalletsProcessed:  result.WalletsProcessed,
		WalletsFailed:     result.WalletsFailed,
		EligibleCount:     result.EligibleCount,
		MessageSent:       result.MessageSent,
		NewlyEligible:     mapMembers(result.NewlyEligible),
		Dropped:           mapMembers(result.Dropped),
		Leaderboard:       make([]LeaderboardEntryResponse, 0, len(result.Leaderboard)),
		Error:             result.Error,
	}
	if !result.Skipped {
		runID := result.RunID.String()
		response.RunID = &runID
	}

	for i, entry := range result.Leaderboard {
		response.Leaderboard = append(response.Leaderboard, LeaderboardEntryResponse{
			Rank:           i + 1,
			ProfileID:      entry.ProfileID.String(),
			Handle:         entry.Handle,
			Total:          domain.AmountString(entry.Total),
			TotalFormatted: eligibility.FormatAmount(entry.Total, result.Decimals),
		})
	}

	return response
}

func mapMembers(members []eligibility.Member) []MemberResponse {
	out := make([]MemberResponse, 0, len(members))
	for _, m := range members {
		out = append(out, MemberResponse{ProfileID: m.ProfileID.String(), Handle: m.Handle})
	}
	return out
}

// MapSnapshotToDTO maps a stored snapshot, decoding its breakdown
func MapSnapshotToDTO(snapshot schema.ProfileSnapshot) (SnapshotResponse, error) {
	breakdown := []domain.WalletContribution{}
	if len(snapshot.Breakdown) > 0 {
		if err := json.Unmarshal(snapshot.Breakdown, &breakdown); err != nil {
			return SnapshotResponse{}, fmt.Errorf("failed to decode snapshot breakdown: %w", err)
		}
	}

	return SnapshotResponse{
		RunID:        snapshot.RunID.String(),
		ProfileID:    snapshot.ProfileID.String(),
		TotalBalance: snapshot.TotalBalance,
		Eligible:     snapshot.Eligible,
		Breakdown:    breakdown,
		CreatedAt:    snapshot.CreatedAt,
	}, nil
}

// MapProfileToDTO maps a profile with its wallets
func MapProfileToDTO(profile schema.Profile) ProfileResponse {
	wallets := make([]WalletResponse, 0, len(profile.Wallets))
	for _, w := range profile.Wallets {
		wallet := WalletResponse{
			Address:       w.Address,
			DirectBalance: w.DirectBalance,
			PoolBalance:   w.PoolBalance,
			TotalBalance:  w.TotalBalance,
			Status:        w.Status,
			ErrorReason:   w.ErrorReason,
			LastCheckedAt: w.LastCheckedAt,
			CreatedAt:     w.CreatedAt,
		}
		if len(w.Metadata) > 0 {
			wallet.Metadata = json.RawMessage(w.Metadata)
		}
		wallets = append(wallets, wallet)
	}

	return ProfileResponse{
		ID:        profile.ID.String(),
		Handle:    profile.Handle,
		Wallets:   wallets,
		CreatedAt: profile.CreatedAt,
	}
}

// MapTrendPoint maps a snapshot record to a trend point
func MapTrendPoint(record *store.ProfileSnapshotRecord) *TrendPoint {
	if record == nil {
		return nil
	}
	return &TrendPoint{
		RunID:        record.RunID.String(),
		RunStartedAt: record.RunStartedAt,
		TotalBalance: record.TotalBalance,
		Eligible:     record.Eligible,
	}
}

// MapPoolToDTO maps a liquidity pool
func MapPoolToDTO(pool schema.LiquidityPool) PoolResponse {
	return PoolResponse{
		Address:    pool.Address,
		Name:       pool.Name,
		Token0:     pool.Token0,
		Token1:     pool.Token1,
		TargetSide: pool.TargetSide,
		Enabled:    pool.Enabled,
		UpdatedAt:  pool.UpdatedAt,
	}
}
