package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/GachaLab_Go/internal/domain"
	"github.com/osse101/GachaLab_Go/internal/prize"
	"github.com/osse101/GachaLab_Go/internal/repository"
)

const gachaTypeColumns = `id, name, description, draw_mode, point_cost, is_active, start_at, end_at,
	first_prize_weight, second_prize_weight, third_prize_weight, fourth_prize_weight, fifth_prize_weight, loser_weight,
	first_prize_hands, second_prize_hands, third_prize_hands, fourth_prize_hands, fifth_prize_hands,
	created_at, updated_at`

const itemColumns = `id, name, rarity, video_url, gacha_type_id, is_active, created_at, updated_at`

// GachaRepository implements repository.Gacha and repository.Catalog for PostgreSQL
type GachaRepository struct {
	db *pgxpool.Pool
}

// NewGachaRepository creates a new GachaRepository
func NewGachaRepository(db *pgxpool.Pool) *GachaRepository {
	return &GachaRepository{db: db}
}

func scanGachaType(row pgx.Row) (*domain.GachaType, error) {
	var (
		g     domain.GachaType
		mode  string
		hands [prize.PrizeTierCount][]string
	)
	err := row.Scan(
		&g.ID, &g.Name, &g.Description, &mode, &g.PointCost, &g.IsActive, &g.StartAt, &g.EndAt,
		&g.Weights.First, &g.Weights.Second, &g.Weights.Third, &g.Weights.Fourth, &g.Weights.Fifth, &g.Weights.Loser,
		&hands[0], &hands[1], &hands[2], &hands[3], &hands[4],
		&g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	g.DrawMode = domain.DrawMode(mode)

	if g.Hands.First, err = textToHands(hands[0]); err != nil {
		return nil, err
	}
	if g.Hands.Second, err = textToHands(hands[1]); err != nil {
		return nil, err
	}
	if g.Hands.Third, err = textToHands(hands[2]); err != nil {
		return nil, err
	}
	if g.Hands.Fourth, err = textToHands(hands[3]); err != nil {
		return nil, err
	}
	if g.Hands.Fifth, err = textToHands(hands[4]); err != nil {
		return nil, err
	}
	return &g, nil
}

// ListGachaTypes returns gacha types in creation order
func (r *GachaRepository) ListGachaTypes(ctx context.Context, activeOnly bool) ([]domain.GachaType, error) {
	query := `SELECT ` + gachaTypeColumns + ` FROM gacha_types
		WHERE NOT $1 OR is_active
		ORDER BY created_at ASC, id ASC`

	rows, err := r.db.Query(ctx, query, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListGachaTypes, err)
	}
	defer rows.Close()

	types := []domain.GachaType{}
	for rows.Next() {
		g, err := scanGachaType(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListGachaTypes, err)
		}
		types = append(types, *g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListGachaTypes, err)
	}
	return types, nil
}

// GetGachaType returns domain.ErrGachaTypeNotFound when no row matches
func (r *GachaRepository) GetGachaType(ctx context.Context, id string) (*domain.GachaType, error) {
	g, err := scanGachaType(r.db.QueryRow(ctx, `SELECT `+gachaTypeColumns+` FROM gacha_types WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrGachaTypeNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetGachaType, err)
	}
	return g, nil
}

// UpsertGachaType inserts or fully replaces a gacha type keyed by its id
func (r *GachaRepository) UpsertGachaType(ctx context.Context, g *domain.GachaType) error {
	query := `
		INSERT INTO gacha_types (` + gachaTypeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, NOW(), NOW())
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			draw_mode = EXCLUDED.draw_mode,
			point_cost = EXCLUDED.point_cost,
			is_active = EXCLUDED.is_active,
			start_at = EXCLUDED.start_at,
			end_at = EXCLUDED.end_at,
			first_prize_weight = EXCLUDED.first_prize_weight,
			second_prize_weight = EXCLUDED.second_prize_weight,
			third_prize_weight = EXCLUDED.third_prize_weight,
			fourth_prize_weight = EXCLUDED.fourth_prize_weight,
			fifth_prize_weight = EXCLUDED.fifth_prize_weight,
			loser_weight = EXCLUDED.loser_weight,
			first_prize_hands = EXCLUDED.first_prize_hands,
			second_prize_hands = EXCLUDED.second_prize_hands,
			third_prize_hands = EXCLUDED.third_prize_hands,
			fourth_prize_hands = EXCLUDED.fourth_prize_hands,
			fifth_prize_hands = EXCLUDED.fifth_prize_hands,
			updated_at = NOW()
		RETURNING created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		g.ID, g.Name, g.Description, string(g.DrawMode), g.PointCost, g.IsActive, g.StartAt, g.EndAt,
		g.Weights.First, g.Weights.Second, g.Weights.Third, g.Weights.Fourth, g.Weights.Fifth, g.Weights.Loser,
		handsToText(g.Hands.First), handsToText(g.Hands.Second), handsToText(g.Hands.Third),
		handsToText(g.Hands.Fourth), handsToText(g.Hands.Fifth),
	).Scan(&g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertGachaType, err)
	}
	return nil
}

func scanItem(row pgx.Row) (*domain.GachaItem, error) {
	var (
		item   domain.GachaItem
		rarity string
	)
	if err := row.Scan(&item.ID, &item.Name, &rarity, &item.VideoURL, &item.GachaTypeID, &item.IsActive, &item.CreatedAt, &item.UpdatedAt); err != nil {
		return nil, err
	}
	item.Rarity = prize.Tier(rarity)
	return &item, nil
}

func collectItems(rows pgx.Rows) ([]domain.GachaItem, error) {
	defer rows.Close()
	items := []domain.GachaItem{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

// ListCandidateItems returns the active items a draw of tier on gachaTypeID may award
func (r *GachaRepository) ListCandidateItems(ctx context.Context, tier prize.Tier, gachaTypeID string) ([]domain.GachaItem, error) {
	query := `SELECT ` + itemColumns + ` FROM gacha_items
		WHERE rarity = $1 AND is_active AND (gacha_type_id = $2 OR gacha_type_id IS NULL)
		ORDER BY id`

	rows, err := r.db.Query(ctx, query, string(tier), gachaTypeID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListItems, err)
	}
	items, err := collectItems(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListItems, err)
	}
	return items, nil
}

// BeginTx starts a transaction for recording a draw
func (r *GachaRepository) BeginTx(ctx context.Context) (repository.GachaTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &ledgerTx{tx: tx}, nil
}
