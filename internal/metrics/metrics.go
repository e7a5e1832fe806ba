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
)

// Business Metrics
var (
	CommandsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCommandsProcessed,
			Help: HelpTextCommandsProcessed,
		},
		[]string{LabelCommand},
	)

	CommandErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCommandErrors,
			Help: HelpTextCommandErrors,
		},
		[]string{LabelCommand},
	)

	MessagesProcessed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMessagesProcessed,
			Help: HelpTextMessagesProcessed,
		},
	)

	PointsPaidOut = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePointsPaidOut,
			Help: HelpTextPointsPaidOut,
		},
		[]string{LabelGame},
	)

	PointsWagered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePointsWagered,
			Help: HelpTextPointsWagered,
		},
		[]string{LabelGame},
	)

	LotteryBonus = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameLotteryBonus,
			Help: HelpTextLotteryBonus,
		},
	)

	ScamballJackpot = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameScamballJackpot,
			Help: HelpTextScamballJackpot,
		},
	)

	DumpsterDives = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDumpsterDives,
			Help: HelpTextDumpsterDives,
		},
	)
)
