package screening

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/feral-file/ff-token-gate/internal/adapter"
	"github.com/feral-file/ff-token-gate/internal/domain"
	"github.com/feral-file/ff-token-gate/internal/eligibility"
	"github.com/feral-file/ff-token-gate/internal/exposure"
	"github.com/feral-file/ff-token-gate/internal/logger"
	"github.com/feral-file/ff-token-gate/internal/messaging"
	"github.com/feral-file/ff-token-gate/internal/metrics"
	"github.com/feral-file/ff-token-gate/internal/notification"
	"github.com/feral-file/ff-token-gate/internal/providers/ethereum"
	"github.com/feral-file/ff-token-gate/internal/providers/temporal"
	"github.com/feral-file/ff-token-gate/internal/settings"
	"github.com/feral-file/ff-token-gate/internal/store"
	"github.com/feral-file/ff-token-gate/internal/store/schema"
)

const (
	defaultWalletTimeout = 30 * time.Second
	defaultLeaseTTL      = 30 * time.Minute
)

// Config holds the orchestrator configuration
type Config struct {
	TargetToken     string
	DefaultInterval time.Duration // used when the interval setting cannot be read
	WalletTimeout   time.Duration
	LeaseTTL        time.Duration // the lease is extended every third of it while a run executes
	LeaderboardSize int
	WorkerPoolSize  int
	WorkerQueueSize int
	// Holder identifies this process as the lease owner, a random id is used when empty
	Holder string
	// WebhookTaskQueue is the Temporal task queue of the webhook worker
	WebhookTaskQueue string
}

// RunOptions controls a single invocation
type RunOptions struct {
	// Force bypasses the interval gate
	Force bool
}

// Result is the outcome of an invocation
type Result struct {
	RunID             uuid.UUID
	Status            domain.RunStatus
	Skipped           bool
	BlockNumber       *uint64
	ProfilesProcessed int
	WalletsProcessed  int
	WalletsFailed     int
	EligibleCount     int
	MessageSent       bool
	NewlyEligible     []eligibility.Member
	Dropped           []eligibility.Member
	Leaderboard       []eligibility.Entry
	Decimals          int
	Error             *string

	totals map[uuid.UUID]*big.Int
}

// Orchestrator executes screening runs
//
//go:generate mockgen -source=orchestrator.go -destination=../mocks/screening_orchestrator.go -package=mocks -mock_names=Orchestrator=MockScreeningOrchestrator
type Orchestrator interface {
	// Run executes one screening run unless the interval gate says it is not due.
	// It returns domain.ErrRunInProgress when another invocation holds the run lease.
	// A run that fails after its record was created is reported through Result.Status and Result.Error.
	Run(ctx context.Context, opts RunOptions) (*Result, error)
}

type orchestrator struct {
	config       Config
	store        store.Store
	calculator   exposure.Calculator
	reader       ethereum.ChainReader
	settings     settings.Provider
	sink         notification.Sink
	publisher    messaging.Publisher
	temporal     temporal.TemporalOrchestrator
	metrics      *metrics.Metrics
	clock        adapter.Clock
	completeWait func() backoff.BackOff
}

// NewOrchestrator creates a new screening orchestrator.
// sink, publisher, temporalOrchestrator and m may be nil to disable the matching side channel.
func NewOrchestrator(
	config Config,
	st store.Store,
	calculator exposure.Calculator,
	reader ethereum.ChainReader,
	settingsProvider settings.Provider,
	sink notification.Sink,
	publisher messaging.Publisher,
	temporalOrchestrator temporal.TemporalOrchestrator,
	m *metrics.Metrics,
	clock adapter.Clock,
) Orchestrator {
	if config.Holder == "" {
		config.Holder = uuid.NewString()
	}
	if config.LeaderboardSize <= 0 {
		config.LeaderboardSize = domain.DEFAULT_LEADERBOARD_SIZE
	}
	if config.WorkerPoolSize <= 0 {
		config.WorkerPoolSize = 1
	}
	if config.WalletTimeout <= 0 {
		config.WalletTimeout = defaultWalletTimeout
	}
	if config.LeaseTTL <= 0 {
		config.LeaseTTL = defaultLeaseTTL
	}

	return &orchestrator{
		config:       config,
		store:        st,
		calculator:   calculator,
		reader:       reader,
		settings:     settingsProvider,
		sink:         sink,
		publisher:    publisher,
		temporal:     temporalOrchestrator,
		metrics:      m,
		clock:        clock,
		completeWait: defaultCompleteBackOff,
	}
}

func defaultCompleteBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = time.Second
	b.MaxInterval = 30 * time.Second
	b.MaxElapsedTime = 5 * time.Minute
	return b
}

// ShouldRun reports whether a run is due.
// A forced invocation or one without a prior successful run always runs.
func ShouldRun(force bool, lastSuccess *schema.ScreeningRun, interval time.Duration, now time.Time) bool {
	if force || lastSuccess == nil {
		return true
	}
	return now.Sub(lastSuccess.StartedAt) >= interval
}

// Run executes one screening run
func (o *orchestrator) Run(ctx context.Context, opts RunOptions) (*Result, error) {
	// A started run always finishes, even when the caller goes away
	ctx = context.WithoutCancel(ctx)

	acquired, err := o.store.AcquireRunLease(ctx, domain.RUN_LEASE_NAME, o.config.Holder, o.config.LeaseTTL, o.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to acquire run lease: %w", err)
	}
	if !acquired {
		return nil, domain.ErrRunInProgress
	}
	defer func() {
		if err := o.store.ReleaseRunLease(ctx, domain.RUN_LEASE_NAME, o.config.Holder); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("holder", o.config.Holder))
		}
	}()

	lastSuccess, err := o.store.GetLastSuccessfulRun(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get last successful run: %w", err)
	}

	if !opts.Force {
		interval := o.interval(ctx)
		if !ShouldRun(false, lastSuccess, interval, o.clock.Now()) {
			logger.InfoCtx(ctx, "Screening run not due yet",
				zap.Time("last_success_started_at", lastSuccess.StartedAt),
				zap.Duration("interval", interval))
			o.metrics.ObserveSkip()
			return &Result{Skipped: true}, nil
		}
	}

	startedAt := o.clock.Now()
	run, err := o.store.CreateScreeningRun(ctx, store.CreateScreeningRunInput{
		ID:        uuid.New(),
		Forced:    opts.Force,
		StartedAt: startedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create screening run: %w", err)
	}

	ctx = logger.WithRun(ctx, run.ID.String())
	logger.InfoCtx(ctx, "Screening run started", zap.Bool("forced", opts.Force))

	result := &Result{RunID: run.ID, Status: domain.RunStatusRunning}
	leaseCtx, stopLease := o.holdLease(ctx)
	err = o.execute(leaseCtx, run, lastSuccess, result)
	stopLease()
	if err != nil {
		logger.ErrorCtx(ctx, err)
		message := err.Error()
		result.Status = domain.RunStatusError
		result.Error = &message
	} else {
		result.Status = domain.RunStatusSuccess
	}

	if err := o.complete(ctx, run.ID, result); err != nil {
		return result, err
	}

	logger.InfoCtx(ctx, "Screening run finished",
		zap.String("status", string(result.Status)),
		zap.Int("profiles", result.ProfilesProcessed),
		zap.Int("wallets", result.WalletsProcessed),
		zap.Int("wallets_failed", result.WalletsFailed),
		zap.Int("eligible", result.EligibleCount),
		zap.Bool("message_sent", result.MessageSent),
		zap.Duration("duration", o.clock.Since(startedAt)))

	o.metrics.ObserveRun(metrics.RunOutcome{
		Status:        result.Status,
		StartedAt:     startedAt,
		Duration:      o.clock.Since(startedAt),
		Wallets:       result.WalletsProcessed,
		WalletsFailed: result.WalletsFailed,
		EligibleCount: result.EligibleCount,
		NewlyEligible: len(result.NewlyEligible),
		Dropped:       len(result.Dropped),
	})
	o.emitEvents(ctx, result)

	return result, nil
}

// interval returns the configured interval or the default when the setting is unusable
func (o *orchestrator) interval(ctx context.Context) time.Duration {
	interval, err := o.settings.Interval(ctx)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to read screening interval, using default",
			zap.Duration("default", o.config.DefaultInterval),
			zap.Error(err))
		return o.config.DefaultInterval
	}
	return interval
}

// execute runs the screening pass and fills result.
// A returned error marks the run as error.
func (o *orchestrator) execute(ctx context.Context, run *schema.ScreeningRun, lastSuccess *schema.ScreeningRun, result *Result) error {
	runSettings, err := o.settings.Load(ctx)
	if err != nil {
		return err
	}
	result.Decimals = runSettings.Decimals

	var previous []eligibility.Member
	if lastSuccess != nil {
		refs, err := o.store.GetEligibleProfiles(ctx, lastSuccess.ID)
		if err != nil {
			return fmt.Errorf("%w: previous eligible set: %v", domain.ErrConfigurationLoad, err)
		}
		previous = make([]eligibility.Member, 0, len(refs))
		for _, ref := range refs {
			previous = append(previous, eligibility.Member{ProfileID: ref.ID, Handle: ref.Handle})
		}
	}

	profiles, err := o.store.GetProfilesWithWallets(ctx)
	if err != nil {
		return fmt.Errorf("%w: profiles: %v", domain.ErrConfigurationLoad, err)
	}

	pools, err := o.store.GetEnabledPools(ctx)
	if err != nil {
		return fmt.Errorf("%w: pools: %v", domain.ErrConfigurationLoad, err)
	}

	var blockNumber *big.Int
	if head, err := o.reader.BlockNumber(ctx); err != nil {
		logger.WarnCtx(ctx, "Failed to read block number, reading latest state", zap.Error(err))
	} else {
		blockNumber = new(big.Int).SetUint64(head)
		result.BlockNumber = &head
	}

	outcomes := o.computeExposures(ctx, profiles, pools, blockNumber)
	if err := leaseErr(ctx); err != nil {
		return err
	}

	entries := make([]eligibility.Entry, 0, len(profiles))
	result.totals = make(map[uuid.UUID]*big.Int, len(profiles))
	for i, profile := range profiles {
		total := new(big.Int)
		breakdown := make([]domain.WalletContribution, 0, len(profile.Wallets))
		for j, wallet := range profile.Wallets {
			outcome := outcomes[i][j]
			result.WalletsProcessed++
			if outcome.err != nil {
				result.WalletsFailed++
				reason := outcome.err.Error()
				breakdown = append(breakdown, domain.WalletContribution{
					Address:     wallet.Address,
					Direct:      "0",
					PoolDerived: "0",
					Total:       "0",
					Error:       &reason,
				})
				continue
			}
			total.Add(total, outcome.exposure.Total)
			breakdown = append(breakdown, outcome.exposure.Contribution(wallet.Address))
		}

		eligible := eligibility.IsEligible(total, runSettings.Threshold)
		if err := o.store.CreateProfileSnapshot(ctx, store.CreateProfileSnapshotInput{
			RunID:        run.ID,
			ProfileID:    profile.ID,
			TotalBalance: total.String(),
			Eligible:     eligible,
			Breakdown:    breakdown,
		}); err != nil {
			return fmt.Errorf("failed to write snapshot for profile %s: %w", profile.Handle, err)
		}

		result.ProfilesProcessed++
		result.totals[profile.ID] = total
		if eligible {
			result.EligibleCount++
		}
		entries = append(entries, eligibility.Entry{
			ProfileID: profile.ID,
			Handle:    profile.Handle,
			Total:     total,
			Eligible:  eligible,
		})
	}

	result.NewlyEligible, result.Dropped = eligibility.Diff(previous, entries)
	result.Leaderboard = eligibility.Leaderboard(entries, o.config.LeaderboardSize)
	if err := leaseErr(ctx); err != nil {
		return err
	}

	o.notify(ctx, runSettings, eligibility.Summary{
		RunID:             run.ID,
		FinishedAt:        o.clock.Now(),
		ProfilesProcessed: result.ProfilesProcessed,
		WalletsProcessed:  result.WalletsProcessed,
		WalletsFailed:     result.WalletsFailed,
		EligibleCount:     result.EligibleCount,
		Threshold:         runSettings.Threshold,
		Decimals:          runSettings.Decimals,
		NewlyEligible:     result.NewlyEligible,
		Dropped:           result.Dropped,
		Leaderboard:       result.Leaderboard,
	}, result)

	return nil
}

// holdLease extends the run lease every third of its TTL until stop is called.
// The returned context is canceled with domain.ErrLeaseLost once another holder owns the lease.
func (o *orchestrator) holdLease(ctx context.Context) (context.Context, func()) {
	leaseCtx, cancel := context.WithCancelCause(ctx)
	done := make(chan struct{})
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		every := o.config.LeaseTTL / 3
		for {
			select {
			case <-done:
				return
			case <-o.clock.After(every):
			}

			held, err := o.store.ExtendRunLease(ctx, domain.RUN_LEASE_NAME, o.config.Holder, o.config.LeaseTTL, o.clock.Now())
			if err != nil {
				logger.WarnCtx(ctx, "Failed to extend run lease, retrying on next tick", zap.Error(err))
				continue
			}
			if !held {
				logger.ErrorCtx(ctx, domain.ErrLeaseLost, zap.String("holder", o.config.Holder))
				cancel(domain.ErrLeaseLost)
				return
			}
			logger.DebugCtx(ctx, "Run lease extended", zap.Duration("ttl", o.config.LeaseTTL))
		}
	}()

	return leaseCtx, func() {
		close(done)
		wg.Wait()
		cancel(nil)
	}
}

// leaseErr returns domain.ErrLeaseLost when the lease keeper gave up the run
func leaseErr(ctx context.Context) error {
	if cause := context.Cause(ctx); errors.Is(cause, domain.ErrLeaseLost) {
		return fmt.Errorf("screening run aborted: %w", cause)
	}
	return nil
}

type walletOutcome struct {
	exposure *exposure.Exposure
	err      error
}

// computeExposures fans the wallets out on a bounded pool.
// Outcomes are indexed like profiles[i].Wallets[j].
func (o *orchestrator) computeExposures(ctx context.Context, profiles []schema.Profile, pools []schema.LiquidityPool, blockNumber *big.Int) [][]walletOutcome {
	outcomes := make([][]walletOutcome, len(profiles))

	pool := pond.NewPool(
		o.config.WorkerPoolSize,
		pond.WithQueueSize(o.config.WorkerQueueSize),
		pond.WithContext(ctx),
	)

	for i := range profiles {
		outcomes[i] = make([]walletOutcome, len(profiles[i].Wallets))
		for j := range profiles[i].Wallets {
			wallet := profiles[i].Wallets[j]
			slot := &outcomes[i][j]
			pool.Submit(func() {
				*slot = o.computeWallet(ctx, wallet, pools, blockNumber)
			})
		}
	}

	pool.StopAndWait()

	return outcomes
}

// computeWallet reads one wallet's exposure and records the outcome on the wallet row
func (o *orchestrator) computeWallet(ctx context.Context, wallet schema.Wallet, pools []schema.LiquidityPool, blockNumber *big.Int) walletOutcome {
	walletCtx, cancel := context.WithTimeout(ctx, o.config.WalletTimeout)
	defer cancel()

	exp, err := o.calculator.ComputeExposure(walletCtx, wallet.Address, o.config.TargetToken, pools, blockNumber)
	checkedAt := o.clock.Now()
	if err == nil && walletCtx.Err() != nil {
		err = fmt.Errorf("%w: %v", domain.ErrChainRead, walletCtx.Err())
	}

	if err != nil {
		logger.WarnCtx(ctx, "Failed to compute wallet exposure",
			zap.String("wallet", wallet.Address),
			zap.Error(err))
		if markErr := o.store.MarkWalletError(ctx, wallet.ID, err.Error(), checkedAt); markErr != nil {
			logger.ErrorCtx(ctx, markErr, zap.String("wallet", wallet.Address))
		}
		return walletOutcome{err: err}
	}

	if updateErr := o.store.UpdateWalletExposure(ctx, store.UpdateWalletExposureInput{
		WalletID:      wallet.ID,
		DirectBalance: domain.AmountString(exp.Direct),
		PoolBalance:   domain.AmountString(exp.PoolDerived),
		TotalBalance:  domain.AmountString(exp.Total),
		CheckedAt:     checkedAt,
	}); updateErr != nil {
		logger.ErrorCtx(ctx, updateErr, zap.String("wallet", wallet.Address))
	}

	return walletOutcome{exposure: exp}
}

// notify renders and sends the summary; failures never change the run status
func (o *orchestrator) notify(ctx context.Context, runSettings *settings.RunSettings, summary eligibility.Summary, result *Result) {
	if !runSettings.NotificationsEnabled {
		return
	}
	if runSettings.ChatID == "" || o.sink == nil {
		logger.WarnCtx(ctx, "Notifications enabled without a chat or sink, skipping summary")
		return
	}

	text, err := eligibility.RenderSummary(runSettings.SummaryTemplate, summary)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to render configured summary template, using default", zap.Error(err))
		text, err = eligibility.RenderSummary("", summary)
		if err != nil {
			logger.ErrorCtx(ctx, err)
			o.metrics.ObserveNotification(false)
			return
		}
	}

	if err := o.sink.Send(ctx, runSettings.ChatID, text); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("chat_id", runSettings.ChatID))
		o.metrics.ObserveNotification(false)
		return
	}

	result.MessageSent = true
	o.metrics.ObserveNotification(true)
}

// complete writes the terminal status once, retrying transient store failures
func (o *orchestrator) complete(ctx context.Context, runID uuid.UUID, result *Result) error {
	input := store.CompleteScreeningRunInput{
		Status:            result.Status,
		Error:             result.Error,
		BlockNumber:       result.BlockNumber,
		ProfilesProcessed: result.ProfilesProcessed,
		WalletsProcessed:  result.WalletsProcessed,
		WalletsFailed:     result.WalletsFailed,
		EligibleCount:     result.EligibleCount,
		MessageSent:       result.MessageSent,
		FinishedAt:        o.clock.Now(),
	}

	operation := func() error {
		err := o.store.CompleteScreeningRun(ctx, runID, input)
		if errors.Is(err, domain.ErrRunFinalized) {
			return backoff.Permanent(err)
		}
		return err
	}

	var attemptCount int
	notifyOnError := func(err error, duration time.Duration) {
		attemptCount++
		logger.WarnCtx(ctx, "Failed to complete screening run, retrying",
			zap.Int("attempt", attemptCount),
			zap.Duration("next_retry_in", duration),
			zap.Error(err))
	}

	if err := backoff.RetryNotify(operation, backoff.WithContext(o.completeWait(), ctx), notifyOnError); err != nil {
		return fmt.Errorf("failed to complete screening run %s: %w", runID, err)
	}

	return nil
}
