package repository

import "context"

// Points defines the persistence needed for balances and purchases
type Points interface {
	GetBalance(ctx context.Context, userID string) (int, error)
	BeginTx(ctx context.Context) (PointsTx, error)
}
