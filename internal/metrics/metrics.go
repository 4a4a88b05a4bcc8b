package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/feral-file/ff-token-gate/internal/domain"
)

const namespace = "token_gate"

// Metrics holds the screening metrics. A nil *Metrics records nothing.
type Metrics struct {
	RunsTotal          *prometheus.CounterVec
	RunDuration        prometheus.Histogram
	RunsSkipped        prometheus.Counter
	WalletsProcessed   prometheus.Counter
	WalletsFailed      prometheus.Counter
	EligibleProfiles   prometheus.Gauge
	MembershipChanges  *prometheus.CounterVec
	NotificationsTotal *prometheus.CounterVec
	LastSuccessfulRun  prometheus.Gauge
}

// New registers the screening metrics with the given registerer
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RunsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "screening",
			Name:      "runs_total",
			Help:      "Total number of screening runs by terminal status",
		}, []string{"status"}),
		RunDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "screening",
			Name:      "run_duration_seconds",
			Help:      "Duration of screening runs",
			Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600, 1800},
		}),
		RunsSkipped: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "screening",
			Name:      "runs_skipped_total",
			Help:      "Total number of invocations skipped because the interval had not elapsed",
		}),
		WalletsProcessed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "screening",
			Name:      "wallets_processed_total",
			Help:      "Total number of wallets whose exposure was computed",
		}),
		WalletsFailed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "screening",
			Name:      "wallets_failed_total",
			Help:      "Total number of wallets whose exposure could not be read",
		}),
		EligibleProfiles: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "screening",
			Name:      "eligible_profiles",
			Help:      "Number of eligible profiles in the latest successful run",
		}),
		MembershipChanges: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "screening",
			Name:      "membership_changes_total",
			Help:      "Total number of membership changes by kind",
		}, []string{"change"}),
		NotificationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notification",
			Name:      "messages_total",
			Help:      "Total number of summary messages by result",
		}, []string{"result"}),
		LastSuccessfulRun: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "screening",
			Name:      "last_success_timestamp_seconds",
			Help:      "Start time of the latest successful run",
		}),
	}
}

// RunOutcome is what a finished run reports to metrics
type RunOutcome struct {
	Status        domain.RunStatus
	StartedAt     time.Time
	Duration      time.Duration
	Wallets       int
	WalletsFailed int
	EligibleCount int
	NewlyEligible int
	Dropped       int
}

// ObserveRun records a finished run
func (m *Metrics) ObserveRun(o RunOutcome) {
	if m == nil {
		return
	}

	m.RunsTotal.WithLabelValues(string(o.Status)).Inc()
	m.RunDuration.Observe(o.Duration.Seconds())
	m.WalletsProcessed.Add(float64(o.Wallets))
	m.WalletsFailed.Add(float64(o.WalletsFailed))

	if o.Status == domain.RunStatusSuccess {
		m.EligibleProfiles.Set(float64(o.EligibleCount))
		m.MembershipChanges.WithLabelValues(string(domain.MembershipNewlyEligible)).Add(float64(o.NewlyEligible))
		m.MembershipChanges.WithLabelValues(string(domain.MembershipDropped)).Add(float64(o.Dropped))
		m.LastSuccessfulRun.Set(float64(o.StartedAt.Unix()))
	}
}

// ObserveSkip records a skipped invocation
func (m *Metrics) ObserveSkip() {
	if m == nil {
		return
	}
	m.RunsSkipped.Inc()
}

// ObserveNotification records a summary delivery attempt
func (m *Metrics) ObserveNotification(sent bool) {
	if m == nil {
		return
	}
	result := "sent"
	if !sent {
		result = "failed"
	}
	m.NotificationsTotal.WithLabelValues(result).Inc()
}

// Handler serves the metrics of the given gatherer
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
