package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/GachaLab_Go/internal/domain"
	"github.com/osse101/GachaLab_Go/internal/repository"
)

// PointsRepository implements repository.Points for PostgreSQL
type PointsRepository struct {
	db *pgxpool.Pool
}

// NewPointsRepository creates a new PointsRepository
func NewPointsRepository(db *pgxpool.Pool) *PointsRepository {
	return &PointsRepository{db: db}
}

// GetBalance returns domain.ErrUserNotFound for unknown users
func (r *PointsRepository) GetBalance(ctx context.Context, userID string) (int, error) {
	var points int
	if err := r.db.QueryRow(ctx, `SELECT points FROM users WHERE user_id = $1`, userID).Scan(&points); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrUserNotFound
		}
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToGetUser, err)
	}
	return points, nil
}

// BeginTx starts a transaction for crediting or adjusting points
func (r *PointsRepository) BeginTx(ctx context.Context) (repository.PointsTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &ledgerTx{tx: tx}, nil
}
