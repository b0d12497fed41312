package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/GachaLab_Go/internal/domain"
	"github.com/osse101/GachaLab_Go/internal/prize"
)

// StatsRepository implements repository.Stats for PostgreSQL
type StatsRepository struct {
	pool *pgxpool.Pool
}

// NewStatsRepository creates a new StatsRepository
func NewStatsRepository(pool *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{pool: pool}
}

// CountUsers returns the number of registered users
func (r *StatsRepository) CountUsers(ctx context.Context) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCountUsers, err)
	}
	return n, nil
}

// CountDraws returns the number of draws in [start, end]
func (r *StatsRepository) CountDraws(ctx context.Context, start, end time.Time) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM gacha_histories WHERE created_at BETWEEN $1 AND $2`, start, end).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCountDraws, err)
	}
	return n, nil
}

// CountDrawsByGacha groups draws in [start, end] by gacha type, busiest first
func (r *StatsRepository) CountDrawsByGacha(ctx context.Context, start, end time.Time) ([]domain.GachaCount, error) {
	query := `
		SELECT h.gacha_type_id, COALESCE(g.name, h.gacha_type_id), COUNT(*)
		FROM gacha_histories h
		LEFT JOIN gacha_types g ON g.id = h.gacha_type_id
		WHERE h.created_at BETWEEN $1 AND $2
		GROUP BY h.gacha_type_id, g.name
		ORDER BY COUNT(*) DESC, h.gacha_type_id`

	rows, err := r.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGroupDraws, err)
	}
	defer rows.Close()

	counts := []domain.GachaCount{}
	for rows.Next() {
		var c domain.GachaCount
		if err := rows.Scan(&c.GachaTypeID, &c.GachaTypeName, &c.Count); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanStatsRow, err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// CountDrawsByTier groups draws in [start, end] by the tier awarded
func (r *StatsRepository) CountDrawsByTier(ctx context.Context, start, end time.Time) (map[prize.Tier]int, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT tier, COUNT(*) FROM gacha_histories
		WHERE created_at BETWEEN $1 AND $2
		GROUP BY tier`, start, end)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGroupDraws, err)
	}
	defer rows.Close()

	counts := make(map[prize.Tier]int)
	for rows.Next() {
		var (
			tier  string
			count int
		)
		if err := rows.Scan(&tier, &count); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanStatsRow, err)
		}
		counts[prize.Tier(tier)] = count
	}
	return counts, rows.Err()
}

// CountDrawsByDay returns per-day draw counts in [start, end], latest day first
func (r *StatsRepository) CountDrawsByDay(ctx context.Context, start, end time.Time, limit int) ([]domain.DailyCount, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT DATE(created_at) AS day, COUNT(*)
		FROM gacha_histories
		WHERE created_at BETWEEN $1 AND $2
		GROUP BY day
		ORDER BY day DESC
		LIMIT $3`, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGroupDraws, err)
	}
	defer rows.Close()

	days := []domain.DailyCount{}
	for rows.Next() {
		var d domain.DailyCount
		if err := rows.Scan(&d.Date, &d.Count); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanStatsRow, err)
		}
		days = append(days, d)
	}
	return days, rows.Err()
}

// SumPointsPurchased totals points credited by purchases in [start, end]
func (r *StatsRepository) SumPointsPurchased(ctx context.Context, start, end time.Time) (int, error) {
	var total int
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0) FROM point_histories
		WHERE transaction_type = $1 AND created_at BETWEEN $2 AND $3`,
		string(domain.TransactionPurchase), start, end).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToSumPurchases, err)
	}
	return total, nil
}
