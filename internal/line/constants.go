package line

// DefaultAdminPath is used when no admin URL or base URL is configured
const DefaultAdminPath = "/admin"

// AdminReplyFormat is the reply sent for the admin keyword
const AdminReplyFormat = "管理画面はこちら:\n%s"

// Error messages
const (
	ErrMsgParseRequestFailed = "failed to parse LINE webhook"
	ErrMsgReplyFailed        = "failed to send LINE reply"
	ErrMsgCreateClientFailed = "failed to create LINE messaging client"
)

// Log messages
const (
	LogMsgWebhookReceived  = "LINE webhook received"
	LogMsgAdminKeywordSeen = "Admin keyword received, replying with console URL"
	LogMsgReplyFailed      = "Failed to reply to LINE message"
	LogMsgKeywordMissing   = "Admin keyword is not configured; LINE messages are ignored"
)
