package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/GachaLab_Go/internal/domain"
)

// itemFilterClause builds the WHERE clause and arguments for an item listing
func itemFilterClause(filter domain.ItemFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.Rarity != nil {
		add("rarity = $%d", string(*filter.Rarity))
	}
	switch {
	case filter.AnyGachaOnly:
		conds = append(conds, "gacha_type_id IS NULL")
	case filter.GachaTypeID != nil:
		add("gacha_type_id = $%d", *filter.GachaTypeID)
	}
	if filter.IsActive != nil {
		add("is_active = $%d", *filter.IsActive)
	}

	if len(conds) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

// ListItems returns one page of items matching filter, newest first
func (r *GachaRepository) ListItems(ctx context.Context, filter domain.ItemFilter) ([]domain.GachaItem, int, error) {
	where, args := itemFilterClause(filter)
	page := filter.Page.Normalize()

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM gacha_items `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", ErrMsgFailedToListItems, err)
	}

	args = append(args, page.Limit, page.Offset())
	query := fmt.Sprintf(`SELECT %s FROM gacha_items %s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`,
		itemColumns, where, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", ErrMsgFailedToListItems, err)
	}
	items, err := collectItems(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", ErrMsgFailedToListItems, err)
	}
	return items, total, nil
}

// GetItem returns domain.ErrItemNotFound when no row matches
func (r *GachaRepository) GetItem(ctx context.Context, id int64) (*domain.GachaItem, error) {
	item, err := scanItem(r.db.QueryRow(ctx, `SELECT `+itemColumns+` FROM gacha_items WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetItem, err)
	}
	return item, nil
}

// CreateItem inserts item and fills in its id and timestamps
func (r *GachaRepository) CreateItem(ctx context.Context, item *domain.GachaItem) error {
	query := `
		INSERT INTO gacha_items (name, rarity, video_url, gacha_type_id, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query, item.Name, string(item.Rarity), item.VideoURL, item.GachaTypeID, item.IsActive).
		Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if isPgError(err, PgErrorCodeForeignKeyViolation) {
			return fmt.Errorf("%w: %w", domain.ErrGachaTypeNotFound, err)
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToCreateItem, err)
	}
	return nil
}

// UpdateItem replaces every editable column of item
func (r *GachaRepository) UpdateItem(ctx context.Context, item *domain.GachaItem) error {
	query := `
		UPDATE gacha_items
		SET name = $2, rarity = $3, video_url = $4, gacha_type_id = $5, is_active = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at`

	err := r.db.QueryRow(ctx, query, item.ID, item.Name, string(item.Rarity), item.VideoURL, item.GachaTypeID, item.IsActive).
		Scan(&item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrItemNotFound
		}
		if isPgError(err, PgErrorCodeForeignKeyViolation) {
			return fmt.Errorf("%w: %w", domain.ErrGachaTypeNotFound, err)
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateItem, err)
	}
	return nil
}

// DeactivateItem hides an item from future draws without touching past histories
func (r *GachaRepository) DeactivateItem(ctx context.Context, id int64) (*domain.GachaItem, error) {
	query := `UPDATE gacha_items SET is_active = FALSE, updated_at = NOW() WHERE id = $1 RETURNING ` + itemColumns

	item, err := scanItem(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUpdateItem, err)
	}
	return item, nil
}
