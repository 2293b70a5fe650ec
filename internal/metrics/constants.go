package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
	MetricNameAuthFailures         = "healthquest_auth_failures_total"
	MetricNameRateLimited          = "healthquest_rate_limited_requests_total"
)

// Game metric names
const (
	MetricNameMealsRecorded        = "healthquest_meals_recorded_total"
	MetricNameDaysClosed           = "healthquest_days_closed_total"
	MetricNameBossVictories        = "healthquest_boss_victories_total"
	MetricNameDestinationsUnlocked = "healthquest_destinations_unlocked_total"
	MetricNameExplorations         = "healthquest_explorations_total"
	MetricNameAvatarLevel          = "healthquest_avatar_level"
	MetricNameAvatarXP             = "healthquest_avatar_xp"
)

// Storage metric names
const (
	MetricNameStorageRotations    = "healthquest_storage_rotations_total"
	MetricNameStorageFilesRotated = "healthquest_storage_files_rotated_total"
	MetricNameStorageBytesFreed   = "healthquest_storage_bytes_freed_total"
	MetricNameStorageUsedBytes    = "healthquest_storage_used_bytes"
	MetricNameStorageErrors       = "healthquest_storage_errors_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
	HelpTextAuthFailures         = "Total number of requests rejected for a missing or wrong API key"
	HelpTextRateLimited          = "Total number of requests rejected by the per-client rate limit"
)

// Game metric help text
const (
	HelpTextMealsRecorded        = "Total number of meals recorded, by quality"
	HelpTextDaysClosed           = "Total number of days closed, by badge"
	HelpTextBossVictories        = "Total number of bosses defeated"
	HelpTextDestinationsUnlocked = "Total number of journey destinations unlocked"
	HelpTextExplorations         = "Total number of explorations, by outcome"
	HelpTextAvatarLevel          = "Current avatar level"
	HelpTextAvatarXP             = "Current avatar XP"
)

// Storage metric help text
const (
	HelpTextStorageRotations    = "Total number of rotation passes that removed files"
	HelpTextStorageFilesRotated = "Total number of files removed by rotation"
	HelpTextStorageBytesFreed   = "Total bytes freed by rotation"
	HelpTextStorageUsedBytes    = "Bytes used by the storage directory at the last scan"
	HelpTextStorageErrors       = "Total number of storage failures, by operation"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelQuality   = "quality"
	LabelBadge     = "badge"
	LabelOutcome   = "outcome"
	LabelOperation = "operation"
)

// HTTPLatencyBuckets are the histogram buckets for request latency
var HTTPLatencyBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
