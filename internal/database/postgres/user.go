package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/GachaLab_Go/internal/domain"
	"github.com/osse101/GachaLab_Go/internal/prize"
)

const userColumns = `user_id, display_name, picture_url, points, created_at, updated_at`

const historyColumns = `h.id, h.user_id, h.gacha_type_id, g.name, h.item_id, h.tier, h.hand_rank, h.cards, h.points_spent, h.created_at,
	i.id, i.name, i.rarity, i.video_url, i.gacha_type_id, i.is_active, i.created_at, i.updated_at`

const historyJoins = `FROM gacha_histories h
	JOIN gacha_items i ON i.id = h.item_id
	JOIN gacha_types g ON g.id = h.gacha_type_id`

// UserRepository implements repository.User for PostgreSQL
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.UserID, &u.DisplayName, &u.PictureURL, &u.Points, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpsertUser creates the user on first login and refreshes the LINE profile afterwards
func (r *UserRepository) UpsertUser(ctx context.Context, profile domain.UserProfile) (*domain.User, error) {
	query := `
		INSERT INTO users (user_id, display_name, picture_url)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE
		SET display_name = EXCLUDED.display_name,
		    picture_url = EXCLUDED.picture_url,
		    updated_at = NOW()
		RETURNING ` + userColumns

	user, err := scanUser(r.db.QueryRow(ctx, query, profile.UserID, profile.DisplayName, profile.PictureURL))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUpsertUser, err)
	}
	return user, nil
}

// GetUserByID returns domain.ErrUserNotFound when no row matches
func (r *UserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE user_id = $1`, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUser, err)
	}
	return user, nil
}

// ListUsers searches user ids and display names case-insensitively, newest first
func (r *UserRepository) ListUsers(ctx context.Context, search string, page domain.Page) ([]domain.UserSummary, int, error) {
	page = page.Normalize()
	where := `WHERE $1 = '' OR u.user_id ILIKE '%' || $1 || '%' OR u.display_name ILIKE '%' || $1 || '%'`

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users u `+where, search).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", ErrMsgFailedToCountUsers, err)
	}

	query := `
		SELECT u.user_id, u.display_name, u.picture_url, u.points, u.created_at, u.updated_at,
		       (SELECT COUNT(*) FROM gacha_histories h WHERE h.user_id = u.user_id)
		FROM users u ` + where + `
		ORDER BY u.created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, search, page.Limit, page.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", ErrMsgFailedToListUsers, err)
	}
	defer rows.Close()

	users := []domain.UserSummary{}
	for rows.Next() {
		var s domain.UserSummary
		if err := rows.Scan(&s.UserID, &s.DisplayName, &s.PictureURL, &s.Points, &s.CreatedAt, &s.UpdatedAt, &s.DrawCount); err != nil {
			return nil, 0, fmt.Errorf("%s: %w", ErrMsgFailedToListUsers, err)
		}
		users = append(users, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", ErrMsgFailedToListUsers, err)
	}
	return users, total, nil
}

// GetUserStats counts a user's draws overall and per tier
func (r *UserRepository) GetUserStats(ctx context.Context, userID string) (*domain.UserStats, error) {
	rows, err := r.db.Query(ctx, `SELECT tier, COUNT(*) FROM gacha_histories WHERE user_id = $1 GROUP BY tier`, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUserStats, err)
	}
	defer rows.Close()

	stats := &domain.UserStats{RarityStats: make(map[prize.Tier]int)}
	for rows.Next() {
		var tier string
		var count int
		if err := rows.Scan(&tier, &count); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUserStats, err)
		}
		stats.RarityStats[prize.Tier(tier)] = count
		stats.TotalDraws += count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUserStats, err)
	}
	return stats, nil
}

// ListGachaHistories returns one page of a user's draws, newest first
func (r *UserRepository) ListGachaHistories(ctx context.Context, userID string, page domain.Page) ([]domain.GachaHistory, int, error) {
	page = page.Normalize()

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM gacha_histories WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", ErrMsgFailedToListHistories, err)
	}

	query := `SELECT ` + historyColumns + ` ` + historyJoins + `
		WHERE h.user_id = $1
		ORDER BY h.created_at DESC
		LIMIT $2 OFFSET $3`
	histories, err := queryHistories(ctx, r.db, query, userID, page.Limit, page.Offset())
	if err != nil {
		return nil, 0, err
	}
	return histories, total, nil
}

// ListWonItems returns every non-loser draw of a user, newest first
func (r *UserRepository) ListWonItems(ctx context.Context, userID string) ([]domain.GachaHistory, error) {
	query := `SELECT ` + historyColumns + ` ` + historyJoins + `
		WHERE h.user_id = $1 AND h.tier <> $2
		ORDER BY h.created_at DESC`
	return queryHistories(ctx, r.db, query, userID, string(prize.Loser))
}

// ListPointHistories returns the latest ledger entries of a user
func (r *UserRepository) ListPointHistories(ctx context.Context, userID string, limit int) ([]domain.PointHistory, error) {
	query := `SELECT ` + pointHistoryColumns + ` FROM point_histories
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListPointHistory, err)
	}
	defer rows.Close()

	entries := []domain.PointHistory{}
	for rows.Next() {
		entry, err := scanPointHistory(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListPointHistory, err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListPointHistory, err)
	}
	return entries, nil
}

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func queryHistories(ctx context.Context, q querier, query string, args ...any) ([]domain.GachaHistory, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListHistories, err)
	}
	defer rows.Close()

	histories := []domain.GachaHistory{}
	for rows.Next() {
		h, err := scanHistory(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListHistories, err)
		}
		histories = append(histories, *h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListHistories, err)
	}
	return histories, nil
}

func scanHistory(row pgx.Row) (*domain.GachaHistory, error) {
	var (
		h        domain.GachaHistory
		item     domain.GachaItem
		tier     string
		rarity   string
		handText *string
		cards    []byte
	)
	err := row.Scan(
		&h.ID, &h.UserID, &h.GachaTypeID, &h.GachaTypeName, &h.ItemID, &tier, &handText, &cards, &h.PointsSpent, &h.CreatedAt,
		&item.ID, &item.Name, &rarity, &item.VideoURL, &item.GachaTypeID, &item.IsActive, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	h.Tier = prize.Tier(tier)
	item.Rarity = prize.Tier(rarity)
	h.Item = &item

	if h.HandRank, err = textToHand(handText); err != nil {
		return nil, err
	}
	if h.Cards, err = jsonToCards(cards); err != nil {
		return nil, err
	}
	return &h, nil
}
