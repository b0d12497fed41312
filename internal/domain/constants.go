package domain

// Simulator iteration bounds enforced by the admin API
const (
	DefaultSimulationIterations = 10000
	MinSimulationIterations     = 100
	MaxSimulationIterations     = 1000000
)

// Point purchase metadata written onto payment intents
const (
	PaymentTypePointPurchase = "point_purchase"
	MetadataKeyUserID        = "userId"
	MetadataKeyPoints        = "points"
	MetadataKeyType          = "type"
	PaymentCurrencyJPY       = "jpy"
	PaymentStatusSucceeded   = "succeeded"
)

// Payment webhook event types
const (
	EventPaymentIntentSucceeded = "payment_intent.succeeded"
)

// Point ledger descriptions
const (
	DescPointPurchase = "%dポイント購入"
	DescGachaDraw     = "ガチャ: %s"
	DescAdminAdjust   = "管理者調整: %s"
)

// Reporting limits
const (
	DailyStatsLimit    = 30
	RecentHistoryLimit = 20
)
