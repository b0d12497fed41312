package payment

import (
	"context"
	"errors"

	"github.com/osse101/GachaLab_Go/internal/domain"
)

// ErrInvalidSignature is returned when a webhook payload fails verification
var ErrInvalidSignature = errors.New(ErrMsgVerifySignature)

// IntentRequest describes a payment to be collected
type IntentRequest struct {
	Amount   int64
	Currency string
	Metadata map[string]string
}

// WebhookEvent is a verified notification from the payment processor
type WebhookEvent struct {
	ID     string
	Type   string
	Intent *domain.PaymentIntent
}

// Gateway abstracts the payment processor
type Gateway interface {
	CreateIntent(ctx context.Context, req IntentRequest) (*domain.PaymentIntent, error)
	GetIntent(ctx context.Context, intentID string) (*domain.PaymentIntent, error)
	ParseWebhook(payload []byte, signature string) (*WebhookEvent, error)
}
