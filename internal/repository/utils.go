package repository

import (
	"context"
	"errors"

	"github.com/osse101/GachaLab_Go/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error.
// Rolling back a committed transaction is expected and not logged.
func SafeRollback(ctx context.Context, tx Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, ErrTxClosed) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}
