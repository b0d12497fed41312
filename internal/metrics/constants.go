package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
	MetricNameHTTPRequestsBlocked  = "http_requests_blocked_total"
)

// Gacha metric names
const (
	MetricNameDrawsTotal       = "gacha_draws_total"
	MetricNameHandsDealt       = "gacha_hands_dealt_total"
	MetricNameDrawFailures     = "gacha_draw_failures_total"
	MetricNameSimulationsRun   = "gacha_simulations_total"
	MetricNameSimulationDraws  = "gacha_simulation_iterations_total"
	MetricNameGachaCacheLookup = "gacha_type_cache_lookups_total"
)

// Points metric names
const (
	MetricNamePointsPurchased = "points_purchased_total"
	MetricNamePointsSpent     = "points_spent_total"
	MetricNamePointsAdjusted  = "points_adjusted_total"
	MetricNamePaymentEvents   = "payment_webhook_events_total"
)

// ============================================================================
// Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Number of HTTP requests currently being processed"
	HelpTextHTTPRequestsBlocked  = "HTTP requests rejected by the rate limiter or admin lockout"

	HelpTextDrawsTotal       = "Total number of committed gacha draws by gacha type and tier"
	HelpTextHandsDealt       = "Total number of poker hands dealt by hand rank"
	HelpTextDrawFailures     = "Total number of draws rejected by reason"
	HelpTextSimulationsRun   = "Total number of simulator runs by gacha type"
	HelpTextSimulationDraws  = "Total number of simulated draws"
	HelpTextGachaCacheLookup = "Gacha type cache lookups by result"

	HelpTextPointsPurchased = "Total points credited from purchases"
	HelpTextPointsSpent     = "Total points spent on draws"
	HelpTextPointsAdjusted  = "Total admin point adjustments by direction"
	HelpTextPaymentEvents   = "Payment webhook events received by type"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelGacha     = "gacha"
	LabelTier      = "tier"
	LabelHand      = "hand"
	LabelReason    = "reason"
	LabelResult    = "result"
	LabelDirection = "direction"
	LabelType      = "type"
)

// Label values
const (
	ResultHit       = "hit"
	ResultMiss      = "miss"
	DirectionCredit = "credit"
	DirectionDebit  = "debit"
	UnmatchedRoute  = "unmatched"
	BlockedRate     = "rate_limit"
	BlockedLockout  = "admin_lockout"
)

// HTTPLatencyBuckets are the histogram buckets for request latency
var HTTPLatencyBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5}
