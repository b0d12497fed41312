package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
	"github.com/stripe/stripe-go/v82/webhook"

	"github.com/osse101/GachaLab_Go/internal/domain"
	"github.com/osse101/GachaLab_Go/internal/logger"
)

// StripeConfig holds the credentials for the Stripe gateway
type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
	// BackendURL overrides the API endpoint, used by tests
	BackendURL string
}

// StripeGateway implements Gateway on the Stripe PaymentIntents API
type StripeGateway struct {
	intents       *paymentintent.Client
	webhookSecret string
}

// NewStripeGateway creates a gateway bound to the given secret key
func NewStripeGateway(cfg StripeConfig) *StripeGateway {
	backend := stripe.GetBackend(stripe.APIBackend)
	if cfg.BackendURL != "" {
		backend = stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
			URL: stripe.String(cfg.BackendURL),
		})
	}
	return &StripeGateway{
		intents:       &paymentintent.Client{B: backend, Key: cfg.SecretKey},
		webhookSecret: cfg.WebhookSecret,
	}
}

// CreateIntent creates a PaymentIntent with automatic payment methods
func (g *StripeGateway) CreateIntent(ctx context.Context, req IntentRequest) (*domain.PaymentIntent, error) {
	log := logger.FromContext(ctx)

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(req.Amount),
		Currency: stripe.String(strings.ToLower(req.Currency)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled:        stripe.Bool(true),
			AllowRedirects: stripe.String(AllowRedirectsAlways),
		},
	}
	params.Context = ctx
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	pi, err := g.intents.New(params)
	if err != nil {
		log.Error(LogMsgStripeCallFailed, "operation", "create", "error", err)
		return nil, fmt.Errorf("%s: %w", ErrMsgCreateIntentFailed, err)
	}

	log.Info(LogMsgIntentCreated, "intent_id", pi.ID, "amount", pi.Amount, "currency", pi.Currency)
	return toDomainIntent(pi), nil
}

// GetIntent retrieves a PaymentIntent by id
func (g *StripeGateway) GetIntent(ctx context.Context, intentID string) (*domain.PaymentIntent, error) {
	log := logger.FromContext(ctx)

	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := g.intents.Get(intentID, params)
	if err != nil {
		log.Error(LogMsgStripeCallFailed, "operation", "get", "intent_id", intentID, "error", err)
		return nil, fmt.Errorf("%s: %w", ErrMsgGetIntentFailed, err)
	}

	log.Debug(LogMsgIntentRetrieved, "intent_id", pi.ID, "status", pi.Status)
	return toDomainIntent(pi), nil
}

// ParseWebhook verifies the Stripe-Signature header and decodes the event.
// Only payment_intent.* events carry an Intent.
func (g *StripeGateway) ParseWebhook(payload []byte, signature string) (*WebhookEvent, error) {
	if g.webhookSecret == "" {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSignature, ErrMsgMissingWebhookSecret)
	}

	event, err := webhook.ConstructEventWithOptions(payload, signature, g.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	out := &WebhookEvent{ID: event.ID, Type: string(event.Type)}
	if strings.HasPrefix(out.Type, "payment_intent.") && event.Data != nil {
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgDecodeEventObject, err)
		}
		out.Intent = toDomainIntent(&pi)
	}
	return out, nil
}

func toDomainIntent(pi *stripe.PaymentIntent) *domain.PaymentIntent {
	return &domain.PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
		Status:       string(pi.Status),
		Metadata:     pi.Metadata,
	}
}
