package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/lvsearch/search"
)

const (
	namespace = "lvsearch"
	subsystem = "driver"
)

// expansionBuckets spans toy puzzles up to several million expansions.
var expansionBuckets = prometheus.ExponentialBuckets(1, 4, 12)

// Collector counts driver events on Prometheus vectors.
type Collector struct {
	// Events counts driver events.
	//
	// Labels:
	//   - mode: "maximize" or "minimize"
	//   - event: "push", "pop", "expand", "dominated", "filtered",
	//     "bound_pruned", "improvement" or "cutoff"
	Events *prometheus.CounterVec

	// Runs counts finished runs.
	//
	// Labels:
	//   - mode: "maximize" or "minimize"
	//   - status: "exhausted", "solved" or "aborted"
	Runs *prometheus.CounterVec

	// Expansions observes the number of expanded states per finished run.
	Expansions *prometheus.HistogramVec
}

var _ search.Observer = (*Collector)(nil)

// NewCollector creates the vectors and registers them on reg.
// A nil reg leaves them unregistered, which is handy in tests.
// It panics if the metrics are already registered on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	f := promauto.With(reg)

	return &Collector{
		Events: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "events_total",
				Help:      "Total search driver events by mode and kind",
			},
			[]string{"mode", "event"},
		),
		Runs: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "runs_total",
				Help:      "Total finished search runs by mode and status",
			},
			[]string{"mode", "status"},
		),
		Expansions: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "expansions",
				Help:      "Expanded states per finished search run",
				Buckets:   expansionBuckets,
			},
			[]string{"mode"},
		),
	}
}

// OnEvent implements search.Observer.
func (c *Collector) OnEvent(mode search.Mode, kind search.EventKind) {
	c.Events.WithLabelValues(mode.String(), kind.String()).Inc()
}

// OnFinish implements search.Observer.
func (c *Collector) OnFinish(status search.Status, stats search.Stats) {
	mode := stats.Mode.String()
	c.Runs.WithLabelValues(mode, status.String()).Inc()
	c.Expansions.WithLabelValues(mode).Observe(float64(stats.Expanded))
}
