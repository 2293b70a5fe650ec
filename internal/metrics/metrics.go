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

	AuthFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAuthFailures,
			Help: HelpTextAuthFailures,
		},
	)

	RateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRateLimited,
			Help: HelpTextRateLimited,
		},
	)
)

// Game Metrics
var (
	MealsRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMealsRecorded,
			Help: HelpTextMealsRecorded,
		},
		[]string{LabelQuality},
	)

	DaysClosed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDaysClosed,
			Help: HelpTextDaysClosed,
		},
		[]string{LabelBadge},
	)

	BossVictories = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBossVictories,
			Help: HelpTextBossVictories,
		},
	)

	DestinationsUnlocked = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDestinationsUnlocked,
			Help: HelpTextDestinationsUnlocked,
		},
	)

	Explorations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameExplorations,
			Help: HelpTextExplorations,
		},
		[]string{LabelOutcome},
	)

	AvatarLevel = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameAvatarLevel,
			Help: HelpTextAvatarLevel,
		},
	)

	AvatarXP = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameAvatarXP,
			Help: HelpTextAvatarXP,
		},
	)
)

// Storage Metrics
var (
	StorageRotations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameStorageRotations,
			Help: HelpTextStorageRotations,
		},
	)

	StorageFilesRotated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameStorageFilesRotated,
			Help: HelpTextStorageFilesRotated,
		},
	)

	StorageBytesFreed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameStorageBytesFreed,
			Help: HelpTextStorageBytesFreed,
		},
	)

	StorageUsedBytes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameStorageUsedBytes,
			Help: HelpTextStorageUsedBytes,
		},
	)

	StorageErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStorageErrors,
			Help: HelpTextStorageErrors,
		},
		[]string{LabelOperation},
	)
)
