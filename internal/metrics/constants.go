package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameCommandsProcessed = "commands_processed_total"
	MetricNameCommandErrors     = "command_errors_total"
	MetricNameMessagesProcessed = "messages_processed_total"
	MetricNamePointsPaidOut     = "points_paid_out_total"
	MetricNamePointsWagered     = "points_wagered_total"
	MetricNameLotteryBonus      = "lottery_bonus_points"
	MetricNameScamballJackpot   = "scamball_jackpot_points"
	MetricNameDumpsterDives     = "dumpster_dives_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextCommandsProcessed = "Total number of chat commands processed"
	HelpTextCommandErrors     = "Total number of chat commands rejected with an error"
	HelpTextMessagesProcessed = "Total number of chat messages processed"
	HelpTextPointsPaidOut     = "Total points paid out by games"
	HelpTextPointsWagered     = "Total points wagered on games"
	HelpTextLotteryBonus      = "Current lottery bonus pot"
	HelpTextScamballJackpot   = "Current scamball jackpot"
	HelpTextDumpsterDives     = "Total number of dumpster dives"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelCommand = "command"
	LabelGame    = "game"
)

// HTTPLatencyBuckets covers the fast-command to slow-query range.
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}
