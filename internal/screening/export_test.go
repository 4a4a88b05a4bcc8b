package screening

import (
	"time"

	"github.com/cenkalti/backoff/v4"
)

// SetCompleteBackOff replaces the retry policy used when finalizing a run
func SetCompleteBackOff(o Orchestrator, newBackOff func() backoff.BackOff) {
	o.(*orchestrator).completeWait = newBackOff
}

// DisableEvents drops the event publisher and the workflow starter
func DisableEvents(o Orchestrator) {
	impl := o.(*orchestrator)
	impl.publisher = nil
	impl.temporal = nil
}

// SetWalletTimeout replaces the per-wallet read deadline
func SetWalletTimeout(o Orchestrator, timeout time.Duration) {
	o.(*orchestrator).config.WalletTimeout = timeout
}
