package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/osse101/GachaLab_Go/internal/domain"
)

const pointHistoryColumns = `id, user_id, transaction_type, amount, balance_after, description, payment_id, created_at`

// ledgerTx implements repository.GachaTx and repository.PointsTx
type ledgerTx struct {
	tx pgx.Tx
}

func (t *ledgerTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommit, err)
	}
	return nil
}

func (t *ledgerTx) Rollback(ctx context.Context) error {
	return wrapRollbackErr(t.tx.Rollback(ctx))
}

func (t *ledgerTx) GetUserForUpdate(ctx context.Context, userID string) (*domain.User, error) {
	user, err := scanUser(t.tx.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE user_id = $1 FOR UPDATE`, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUser, err)
	}
	return user, nil
}

func (t *ledgerTx) UpdateUserPoints(ctx context.Context, userID string, points int) error {
	tag, err := t.tx.Exec(ctx, `UPDATE users SET points = $2, updated_at = NOW() WHERE user_id = $1`, userID, points)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdatePoints, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (t *ledgerTx) InsertPointHistory(ctx context.Context, h *domain.PointHistory) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	query := `
		INSERT INTO point_histories (id, user_id, transaction_type, amount, balance_after, description, payment_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`

	err := t.tx.QueryRow(ctx, query, h.ID, h.UserID, string(h.TransactionType), h.Amount, h.BalanceAfter, h.Description, h.PaymentID).
		Scan(&h.CreatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertPointEntry, err)
	}
	return nil
}

func (t *ledgerTx) InsertGachaHistory(ctx context.Context, h *domain.GachaHistory) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	cards, err := cardsToJSON(h.Cards)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertHistory, err)
	}

	query := `
		INSERT INTO gacha_histories (id, user_id, gacha_type_id, item_id, tier, hand_rank, cards, points_spent)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at`

	err = t.tx.QueryRow(ctx, query, h.ID, h.UserID, h.GachaTypeID, h.ItemID, string(h.Tier), handToText(h.HandRank), cards, h.PointsSpent).
		Scan(&h.CreatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertHistory, err)
	}
	return nil
}

func (t *ledgerTx) FindPurchaseByPaymentID(ctx context.Context, paymentID string) (*domain.PointHistory, error) {
	query := `SELECT ` + pointHistoryColumns + ` FROM point_histories
		WHERE payment_id = $1 AND transaction_type = $2`

	entry, err := scanPointHistory(t.tx.QueryRow(ctx, query, paymentID, string(domain.TransactionPurchase)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToFindPurchase, err)
	}
	return entry, nil
}

func scanPointHistory(row pgx.Row) (*domain.PointHistory, error) {
	var (
		h      domain.PointHistory
		txType string
	)
	if err := row.Scan(&h.ID, &h.UserID, &txType, &h.Amount, &h.BalanceAfter, &h.Description, &h.PaymentID, &h.CreatedAt); err != nil {
		return nil, err
	}
	h.TransactionType = domain.TransactionType(txType)
	return &h, nil
}
