package payment

// Error messages
const (
	ErrMsgCreateIntentFailed   = "failed to create payment intent"
	ErrMsgGetIntentFailed      = "failed to retrieve payment intent"
	ErrMsgVerifySignature      = "webhook signature verification failed"
	ErrMsgDecodeEventObject    = "failed to decode webhook event object"
	ErrMsgMissingWebhookSecret = "webhook secret is not configured"
)

// Log messages
const (
	LogMsgIntentCreated    = "Payment intent created"
	LogMsgIntentRetrieved  = "Payment intent retrieved"
	LogMsgWebhookVerified  = "Payment webhook verified"
	LogMsgWebhookRejected  = "Payment webhook rejected"
	LogMsgStripeCallFailed = "Stripe API call failed"
)

// AllowRedirectsAlways enables redirect-based methods such as PayPay
const AllowRedirectsAlways = "always"
