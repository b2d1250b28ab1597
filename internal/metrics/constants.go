package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Namespace prefixes every metric this service exports
const Namespace = "growpot"

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
	MetricNameIntentsRefused       = "intents_refused_total"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Garden metric names
const (
	MetricNameHarvests      = "harvests_total"
	MetricNameHarvestYield  = "harvest_yield_total"
	MetricNamePestsSpawned  = "pests_spawned_total"
	MetricNamePestsCaught   = "pests_caught_total"
	MetricNamePetAssists    = "pet_assists_total"
	MetricNameItemsSold     = "items_sold_total"
	MetricNameItemsBought   = "items_bought_total"
	MetricNameMoneyEarned   = "money_earned_total"
	MetricNameMoneySpent    = "money_spent_total"
	MetricNameQuestsClaimed = "quests_claimed_total"
	MetricNameLevelUps      = "level_ups_total"
	MetricNameGrowth        = "crop_growth"
	MetricNameWater         = "crop_water"
	MetricNameMoney         = "wallet_money"
	MetricNamePlayerLevel   = "player_level"
	MetricNameSaveFailures  = "state_save_failures_total"
	MetricNameTickDuration  = "tick_duration_seconds"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
	HelpTextIntentsRefused       = "Total number of player actions refused by the game rules"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Garden metric help text
const (
	HelpTextHarvests      = "Total number of harvests by plant and quality"
	HelpTextHarvestYield  = "Total harvested units by plant"
	HelpTextPestsSpawned  = "Total number of pests that appeared"
	HelpTextPestsCaught   = "Total number of pests caught"
	HelpTextPetAssists    = "Total number of pet auto-waterings"
	HelpTextItemsSold     = "Total number of items sold"
	HelpTextItemsBought   = "Total number of items bought"
	HelpTextMoneyEarned   = "Total money earned from selling items"
	HelpTextMoneySpent    = "Total money spent in the shop"
	HelpTextQuestsClaimed = "Total number of daily quests claimed"
	HelpTextLevelUps      = "Total number of player level ups"
	HelpTextGrowth        = "Current growth of the crop in the slot"
	HelpTextWater         = "Current water of the crop in the slot"
	HelpTextMoney         = "Current wallet balance"
	HelpTextPlayerLevel   = "Current player level"
	HelpTextSaveFailures  = "Total number of failed state saves"
	HelpTextTickDuration  = "Time spent in one simulation tick"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelItem    = "item"
	LabelPlant   = "plant"
	LabelQuality = "quality"
)

// UnmatchedRoute labels requests chi could not route
const UnmatchedRoute = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// TickLatencyBuckets covers ticks from 10µs to 100ms
var TickLatencyBuckets = []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05, .1}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgPayloadDecodeFailed = "Event payload could not be decoded"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
