package telemetry

import (
	"math"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vango-dev/accordion/pkg/accordion"
)

// MetricsConfig configures the Prometheus metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "accordion").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for transition distance in pixels.
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "accordion",
		Buckets:   []float64{16, 64, 128, 256, 512, 1024, 2048},
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the accordion Prometheus collectors.
type Metrics struct {
	transitionsStarted  *prometheus.CounterVec
	transitionsFinished prometheus.Counter
	transitionsDropped  prometheus.Counter
	transitionDistance  prometheus.Histogram
	recomputes          prometheus.Counter
	groups              prometheus.Gauge
	groupsDisabled      prometheus.Gauge
	liveMessages        *prometheus.CounterVec
	liveSessions        prometheus.Gauge
}

// NewMetrics registers the accordion collectors.
//
// Metrics collected:
//   - accordion_transitions_started_total: Counter by direction (open, close)
//   - accordion_transitions_finished_total: Counter of completed transitions
//   - accordion_transitions_dropped_total: Counter of stale frames dropped
//   - accordion_transition_distance_pixels: Histogram of |to - from|
//   - accordion_recomputes_total: Counter of breakpoint evaluations
//   - accordion_groups: Gauge of observed groups
//   - accordion_groups_disabled: Gauge of groups currently disabled
//   - accordion_live_messages_total: Counter of live messages by type and status
//   - accordion_live_sessions: Gauge of open live sessions
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}

	factory := promauto.With(config.Registry)

	return &Metrics{
		transitionsStarted: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "transitions_started_total",
			Help:        "Total number of height transitions started",
			ConstLabels: config.ConstLabels,
		}, []string{"direction"}),

		transitionsFinished: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "transitions_finished_total",
			Help:        "Total number of height transitions that ran to completion",
			ConstLabels: config.ConstLabels,
		}),

		transitionsDropped: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "transitions_dropped_total",
			Help:        "Total number of frames dropped because a newer transition superseded them",
			ConstLabels: config.ConstLabels,
		}),

		transitionDistance: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "transition_distance_pixels",
			Help:        "Height covered by each transition in pixels",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		recomputes: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "recomputes_total",
			Help:        "Total number of breakpoint evaluations",
			ConstLabels: config.ConstLabels,
		}),

		groups: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "groups",
			Help:        "Number of observed accordion groups",
			ConstLabels: config.ConstLabels,
		}),

		groupsDisabled: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "groups_disabled",
			Help:        "Number of groups whose breakpoints currently disable collapsing",
			ConstLabels: config.ConstLabels,
		}),

		liveMessages: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "live_messages_total",
			Help:        "Total live messages received by type and status",
			ConstLabels: config.ConstLabels,
		}, []string{"type", "status"}),

		liveSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "live_sessions",
			Help:        "Number of open live sessions",
			ConstLabels: config.ConstLabels,
		}),
	}
}

// Observer returns an accordion.Observer for one group. Call Release on it
// when the group goes away so the group gauges stay accurate.
func (m *Metrics) Observer() *GroupObserver {
	m.groups.Inc()
	return &GroupObserver{m: m}
}

// RecordMessage counts one live message.
func (m *Metrics) RecordMessage(kind string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.liveMessages.WithLabelValues(kind, status).Inc()
}

// SessionOpened records a new live session.
func (m *Metrics) SessionOpened() { m.liveSessions.Inc() }

// SessionClosed records the end of a live session.
func (m *Metrics) SessionClosed() { m.liveSessions.Dec() }

// GroupObserver feeds one group's events into Metrics. Like the group it
// observes, it is driven from a single event loop.
type GroupObserver struct {
	m        *Metrics
	disabled bool
	released bool
}

var _ accordion.Observer = (*GroupObserver)(nil)

// TransitionStarted implements accordion.Observer.
func (o *GroupObserver) TransitionStarted(_ *accordion.Item, from, to float64) {
	direction := "open"
	if to < from {
		direction = "close"
	}
	o.m.transitionsStarted.WithLabelValues(direction).Inc()
	o.m.transitionDistance.Observe(math.Abs(to - from))
}

// TransitionFinished implements accordion.Observer.
func (o *GroupObserver) TransitionFinished(*accordion.Item) {
	o.m.transitionsFinished.Inc()
}

// TransitionDropped implements accordion.Observer.
func (o *GroupObserver) TransitionDropped(*accordion.Item) {
	o.m.transitionsDropped.Inc()
}

// Recomputed implements accordion.Observer.
func (o *GroupObserver) Recomputed(_ float64, disabled bool) {
	o.m.recomputes.Inc()
	if o.released || disabled == o.disabled {
		return
	}
	o.disabled = disabled
	if disabled {
		o.m.groupsDisabled.Inc()
	} else {
		o.m.groupsDisabled.Dec()
	}
}

// Release removes the group from the gauges.
func (o *GroupObserver) Release() {
	if o.released {
		return
	}
	o.released = true
	o.m.groups.Dec()
	if o.disabled {
		o.m.groupsDisabled.Dec()
	}
}
