package screening

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/ff-token-gate/internal/adapter"
	"github.com/feral-file/ff-token-gate/internal/domain"
	"github.com/feral-file/ff-token-gate/internal/logger"
)

// Service is a long-running background task
//
//go:generate mockgen -source=service.go -destination=../mocks/screening_service.go -package=mocks -mock_names=Service=MockScreeningService
type Service interface {
	// Start runs the main loop until the context is canceled or Stop is called
	Start(ctx context.Context) error

	// Stop asks the loop to exit and waits for an in-flight run to finish
	Stop(ctx context.Context) error

	// Name returns the service name for logging
	Name() string
}

// ErrSchedulerStarted is returned when Start is called on a scheduler that has already been started
var ErrSchedulerStarted = errors.New("scheduler already started")

// scheduler asks the orchestrator for a non-forced run every check interval.
// The interval gate inside the orchestrator decides whether a run is actually due.
// A scheduler runs at most once; create a new one to start again.
type scheduler struct {
	orchestrator  Orchestrator
	checkInterval time.Duration
	clock         adapter.Clock
	started       atomic.Bool
	stopOnce      sync.Once
	stopChan      chan struct{}
	stoppedCh     chan struct{}
}

// NewService creates the screening scheduler service
func NewService(orchestrator Orchestrator, checkInterval time.Duration, clock adapter.Clock) Service {
	return &scheduler{
		orchestrator:  orchestrator,
		checkInterval: checkInterval,
		clock:         clock,
		stopChan:      make(chan struct{}),
		stoppedCh:     make(chan struct{}),
	}
}

// Name returns the service name
func (s *scheduler) Name() string {
	return "screening-scheduler"
}

// Start begins the scheduler loop
func (s *scheduler) Start(ctx context.Context) error {
	if !s.started.CompareAndSwap(false, true) {
		return ErrSchedulerStarted
	}
	defer close(s.stoppedCh)

	logger.InfoCtx(ctx, "Starting screening scheduler", zap.Duration("check_interval", s.checkInterval))

	for {
		s.tick(ctx)

		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Screening scheduler stopping due to context cancellation", zap.Error(ctx.Err()))
			return nil
		case <-s.stopChan:
			logger.InfoCtx(ctx, "Screening scheduler stop requested")
			return nil
		case <-s.clock.After(s.checkInterval):
		}
	}
}

// tick runs one gated invocation
func (s *scheduler) tick(ctx context.Context) {
	result, err := s.orchestrator.Run(ctx, RunOptions{})
	switch {
	case errors.Is(err, domain.ErrRunInProgress):
		logger.InfoCtx(ctx, "Screening run already in progress elsewhere")
	case err != nil:
		logger.ErrorCtx(ctx, err)
	case result.Skipped:
		logger.DebugCtx(ctx, "Screening run skipped")
	}
}

// Stop gracefully stops the scheduler
func (s *scheduler) Stop(ctx context.Context) error {
	if !s.started.Load() {
		return nil
	}

	s.stopOnce.Do(func() {
		logger.InfoCtx(ctx, "Stopping screening scheduler")
		close(s.stopChan)
	})

	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Screening scheduler stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Screening scheduler stop interrupted by context timeout")
		return ctx.Err()
	}
}
