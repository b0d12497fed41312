package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)

	HTTPRequestsBlocked = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsBlocked,
			Help: HelpTextHTTPRequestsBlocked,
		},
		[]string{LabelReason},
	)
)

// Gacha Metrics
var (
	DrawsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDrawsTotal,
			Help: HelpTextDrawsTotal,
		},
		[]string{LabelGacha, LabelTier},
	)

	HandsDealt = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHandsDealt,
			Help: HelpTextHandsDealt,
		},
		[]string{LabelHand},
	)

	DrawFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDrawFailures,
			Help: HelpTextDrawFailures,
		},
		[]string{LabelReason},
	)

	SimulationsRun = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSimulationsRun,
			Help: HelpTextSimulationsRun,
		},
		[]string{LabelGacha},
	)

	SimulationDraws = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSimulationDraws,
			Help: HelpTextSimulationDraws,
		},
	)

	GachaCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGachaCacheLookup,
			Help: HelpTextGachaCacheLookup,
		},
		[]string{LabelResult},
	)
)

// Points Metrics
var (
	PointsPurchased = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePointsPurchased,
			Help: HelpTextPointsPurchased,
		},
	)

	PointsSpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePointsSpent,
			Help: HelpTextPointsSpent,
		},
	)

	PointsAdjusted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePointsAdjusted,
			Help: HelpTextPointsAdjusted,
		},
		[]string{LabelDirection},
	)

	PaymentEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePaymentEvents,
			Help: HelpTextPaymentEvents,
		},
		[]string{LabelType},
	)
)
