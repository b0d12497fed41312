package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"
	ErrMsgMissingPathParam      = "Missing %s path parameter"
	ErrMsgInvalidPathParam      = "Invalid %s path parameter"
	ErrMsgInvalidDateParam      = "Invalid %s date, expected YYYY-MM-DD"
	ErrMsgReadBodyFailed        = "Failed to read request body"
	ErrMsgMissingSignature      = "Missing signature header"
)

// User-facing messages for service errors
const (
	ErrMsgGenericServerError     = "Something went wrong"
	ErrMsgUnknownError           = "Unknown error"
	ErrMsgInvalidRequestError    = "Invalid request. Please check your inputs."
	ErrMsgUserNotFoundError      = "ユーザーが見つかりません"
	ErrMsgGachaTypeNotFoundError = "ガチャが見つかりません"
	ErrMsgGachaTypeInactiveError = "このガチャは現在利用できません"
	ErrMsgItemNotFoundError      = "アイテムが見つかりません"
	ErrMsgNoMatchingItemError    = "景品が登録されていません"
	ErrMsgInsufficientPointsErr  = "ポイントが不足しています"
	ErrMsgZeroTotalWeightError   = "重みの合計が0です"
	ErrMsgPaymentNotSucceededErr = "決済が成功していません"
	ErrMsgPaymentMismatchError   = "ユーザーIDが一致しません"
	ErrMsgInvalidPaymentError    = "ポイント購入用の決済ではありません"
	ErrMsgInvalidSignatureError  = "Invalid signature"
)

// Success messages
const (
	MsgWebhookAccepted = "ok"
	MsgCacheCleared    = "Gacha type cache cleared"
)

// Log messages
const (
	LogMsgDecodeFailed      = "Failed to decode request"
	LogMsgRequestDecoded    = "Request decoded"
	LogMsgServiceError      = "Service call failed"
	LogMsgReadinessFailed   = "Readiness check failed"
	LogMsgEncodeFailed      = "Failed to encode JSON response"
	LogMsgWriteFailed       = "Failed to write response buffer"
	LogMsgWebhookRejected   = "Webhook rejected"
	LogMsgDrawCompleted     = "Draw completed"
	LogMsgPointsAdjusted    = "Points adjusted by admin"
	LogMsgSimulationStarted = "Simulation requested"
)
