package stats

// Error messages
const (
	ErrMsgCountUsersFailed     = "failed to count users"
	ErrMsgCountDrawsFailed     = "failed to count draws"
	ErrMsgGachaBreakdownFailed = "failed to count draws by gacha"
	ErrMsgTierBreakdownFailed  = "failed to count draws by tier"
	ErrMsgDailyBreakdownFailed = "failed to count draws by day"
	ErrMsgSumPurchasesFailed   = "failed to sum purchased points"
	ErrMsgEndBeforeStart       = "end date is before start date"
	ErrMsgUnknownPeriod        = "unknown period"
)

// Log messages
const (
	LogMsgStatisticsComputed = "Statistics computed"
)

// lastMillisecond is the nanosecond offset of 23:59:59.999
const lastMillisecond = 999_000_000
