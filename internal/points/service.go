package points

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/osse101/GachaLab_Go/internal/domain"
	"github.com/osse101/GachaLab_Go/internal/logger"
	"github.com/osse101/GachaLab_Go/internal/metrics"
	"github.com/osse101/GachaLab_Go/internal/payment"
	"github.com/osse101/GachaLab_Go/internal/repository"
)

// Service defines point balance and purchase operations
type Service interface {
	Balance(ctx context.Context, userID string) (int, error)
	CreatePurchase(ctx context.Context, userID string, amount int64, points int) (*domain.PurchaseResult, error)
	// Confirm credits a succeeded payment. Safe to call repeatedly for the same intent.
	Confirm(ctx context.Context, userID, intentID string) (*domain.CreditResult, error)
	// HandleWebhook verifies and applies a processor notification
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
	AdminAdjust(ctx context.Context, userID string, delta int, reason string) (*domain.PointHistory, error)
}

type service struct {
	repo    repository.Points
	gateway payment.Gateway
}

// NewService creates a new points service
func NewService(repo repository.Points, gateway payment.Gateway) Service {
	return &service{
		repo:    repo,
		gateway: gateway,
	}
}

func (s *service) Balance(ctx context.Context, userID string) (int, error) {
	balance, err := s.repo.GetBalance(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return 0, err
		}
		return 0, fmt.Errorf("%s: %w", ErrMsgGetBalanceFailed, err)
	}
	return balance, nil
}

// CreatePurchase opens a payment intent tagged with the points it will grant
func (s *service) CreatePurchase(ctx context.Context, userID string, amount int64, points int) (*domain.PurchaseResult, error) {
	if amount <= 0 || points <= 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgAmountNotPositive)
	}
	if _, err := s.Balance(ctx, userID); err != nil {
		return nil, err
	}

	intent, err := s.gateway.CreateIntent(ctx, payment.IntentRequest{
		Amount:   amount,
		Currency: domain.PaymentCurrencyJPY,
		Metadata: map[string]string{
			domain.MetadataKeyUserID: userID,
			domain.MetadataKeyPoints: strconv.Itoa(points),
			domain.MetadataKeyType:   domain.PaymentTypePointPurchase,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCreateIntentFailed, err)
	}

	logger.FromContext(ctx).Info(LogMsgPurchaseCreated,
		"user_id", userID,
		"intent_id", intent.ID,
		"amount", amount,
		"points", points)

	return &domain.PurchaseResult{
		PaymentIntentID: intent.ID,
		ClientSecret:    intent.ClientSecret,
		Amount:          intent.Amount,
		Points:          points,
	}, nil
}

func (s *service) Confirm(ctx context.Context, userID, intentID string) (*domain.CreditResult, error) {
	log := logger.FromContext(ctx)

	intent, err := s.gateway.GetIntent(ctx, intentID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGetIntentFailed, err)
	}
	if intent.Status != domain.PaymentStatusSucceeded {
		log.Warn(LogMsgPaymentNotSettled, "intent_id", intentID, "status", intent.Status)
		return nil, domain.ErrPaymentNotSucceeded
	}

	owner, points, err := purchaseMetadata(intent)
	if err != nil {
		log.Warn(LogMsgInvalidMetadata, "intent_id", intentID, "error", err)
		return nil, err
	}
	if owner != userID {
		return nil, domain.ErrPaymentUserMismatch
	}

	return s.credit(ctx, intent.ID, owner, points)
}

func (s *service) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	log := logger.FromContext(ctx)

	evt, err := s.gateway.ParseWebhook(payload, signature)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgParseWebhookFailed, err)
	}
	metrics.PaymentEvents.WithLabelValues(evt.Type).Inc()

	if evt.Type != domain.EventPaymentIntentSucceeded || evt.Intent == nil {
		log.Debug(LogMsgWebhookIgnored, "event_id", evt.ID, "type", evt.Type)
		return nil
	}
	if evt.Intent.Metadata[domain.MetadataKeyType] != domain.PaymentTypePointPurchase {
		log.Info(LogMsgWebhookNotPoints, "intent_id", evt.Intent.ID)
		return nil
	}

	userID, points, err := purchaseMetadata(evt.Intent)
	if err != nil {
		log.Warn(LogMsgInvalidMetadata, "intent_id", evt.Intent.ID, "error", err)
		return err
	}
	_, err = s.credit(ctx, evt.Intent.ID, userID, points)
	return err
}

// credit grants points for a payment at most once. The user row lock serialises
// concurrent confirm and webhook deliveries for the same payment.
func (s *service) credit(ctx context.Context, paymentID, userID string, points int) (*domain.CreditResult, error) {
	ctx = logger.WithUserID(ctx, userID)
	log := logger.FromContext(ctx)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	user, err := tx.GetUserForUpdate(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgLockUserFailed, err)
	}

	existing, err := tx.FindPurchaseByPaymentID(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLookupPaymentFailed, err)
	}
	if existing != nil {
		log.Info(LogMsgAlreadyCredited, "payment_id", paymentID)
		return &domain.CreditResult{Points: existing.Amount, Balance: user.Points, AlreadyGranted: true}, nil
	}

	balance := user.Points + points
	if err := tx.UpdateUserPoints(ctx, userID, balance); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgUpdateBalanceFailed, err)
	}
	if err := tx.InsertPointHistory(ctx, &domain.PointHistory{
		UserID:          userID,
		TransactionType: domain.TransactionPurchase,
		Amount:          points,
		BalanceAfter:    balance,
		Description:     fmt.Sprintf(domain.DescPointPurchase, points),
		PaymentID:       &paymentID,
	}); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgRecordHistoryFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCommitFailed, err)
	}

	metrics.PointsPurchased.Add(float64(points))
	log.Info(LogMsgPointsCredited, "payment_id", paymentID, "points", points, "balance", balance)

	return &domain.CreditResult{Points: points, Balance: balance}, nil
}

// AdminAdjust adds delta (which may be negative) to a balance
func (s *service) AdminAdjust(ctx context.Context, userID string, delta int, reason string) (*domain.PointHistory, error) {
	if delta == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgDeltaZero)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	user, err := tx.GetUserForUpdate(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgLockUserFailed, err)
	}

	balance := user.Points + delta
	if balance < 0 {
		return nil, domain.ErrInsufficientPoints
	}
	if err := tx.UpdateUserPoints(ctx, userID, balance); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgUpdateBalanceFailed, err)
	}
	history := &domain.PointHistory{
		UserID:          userID,
		TransactionType: domain.TransactionAdminAdjust,
		Amount:          delta,
		BalanceAfter:    balance,
		Description:     fmt.Sprintf(domain.DescAdminAdjust, strings.TrimSpace(reason)),
	}
	if err := tx.InsertPointHistory(ctx, history); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgRecordHistoryFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCommitFailed, err)
	}

	direction := metrics.DirectionCredit
	if delta < 0 {
		direction = metrics.DirectionDebit
	}
	metrics.PointsAdjusted.WithLabelValues(direction).Inc()
	logger.FromContext(ctx).Info(LogMsgPointsAdjusted, "user_id", userID, "delta", delta, "balance", balance)

	return history, nil
}

func purchaseMetadata(intent *domain.PaymentIntent) (string, int, error) {
	if intent.Metadata[domain.MetadataKeyType] != domain.PaymentTypePointPurchase {
		return "", 0, fmt.Errorf("%w: unexpected payment type %q", domain.ErrInvalidPaymentPayload, intent.Metadata[domain.MetadataKeyType])
	}
	userID := intent.Metadata[domain.MetadataKeyUserID]
	points, err := strconv.Atoi(intent.Metadata[domain.MetadataKeyPoints])
	if userID == "" || err != nil || points <= 0 {
		return "", 0, domain.ErrInvalidPaymentPayload
	}
	return userID, points, nil
}
