package points

// Error messages
const (
	ErrMsgGetBalanceFailed    = "failed to get balance"
	ErrMsgCreateIntentFailed  = "failed to create purchase"
	ErrMsgGetIntentFailed     = "failed to retrieve payment"
	ErrMsgParseWebhookFailed  = "failed to parse payment webhook"
	ErrMsgBeginTxFailed       = "failed to begin points transaction"
	ErrMsgLockUserFailed      = "failed to lock user"
	ErrMsgLookupPaymentFailed = "failed to look up payment"
	ErrMsgUpdateBalanceFailed = "failed to update balance"
	ErrMsgRecordHistoryFailed = "failed to record point history"
	ErrMsgCommitFailed        = "failed to commit points transaction"
	ErrMsgAmountNotPositive   = "amount and points must be positive"
	ErrMsgDeltaZero           = "adjustment must not be zero"
)

// Log messages
const (
	LogMsgPurchaseCreated   = "Point purchase created"
	LogMsgPointsCredited    = "Purchased points credited"
	LogMsgAlreadyCredited   = "Payment already credited"
	LogMsgWebhookIgnored    = "Payment webhook event ignored"
	LogMsgWebhookNotPoints  = "Payment succeeded for a non point purchase"
	LogMsgPointsAdjusted    = "Points adjusted by admin"
	LogMsgInvalidMetadata   = "Payment metadata is invalid"
	LogMsgPaymentNotSettled = "Payment has not succeeded yet"
)
