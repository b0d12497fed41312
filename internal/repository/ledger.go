package repository

import (
	"context"

	"github.com/osse101/GachaLab_Go/internal/domain"
)

// LedgerTx changes a user's point balance inside a transaction
type LedgerTx interface {
	Tx
	// GetUserForUpdate locks the user row until the transaction ends
	GetUserForUpdate(ctx context.Context, userID string) (*domain.User, error)
	UpdateUserPoints(ctx context.Context, userID string, points int) error
	InsertPointHistory(ctx context.Context, history *domain.PointHistory) error
}

// GachaTx records a draw together with its point deduction
type GachaTx interface {
	LedgerTx
	InsertGachaHistory(ctx context.Context, history *domain.GachaHistory) error
}

// PointsTx credits purchases idempotently
type PointsTx interface {
	LedgerTx
	// FindPurchaseByPaymentID returns nil, nil when the payment was never credited
	FindPurchaseByPaymentID(ctx context.Context, paymentID string) (*domain.PointHistory, error)
}
