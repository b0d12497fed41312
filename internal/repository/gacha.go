package repository

import (
	"context"

	"github.com/osse101/GachaLab_Go/internal/domain"
	"github.com/osse101/GachaLab_Go/internal/prize"
)

// GachaTypes defines read and write access to gacha configuration
type GachaTypes interface {
	ListGachaTypes(ctx context.Context, activeOnly bool) ([]domain.GachaType, error)
	GetGachaType(ctx context.Context, id string) (*domain.GachaType, error)
	UpsertGachaType(ctx context.Context, gacha *domain.GachaType) error
}

// Gacha defines the persistence needed to perform draws
type Gacha interface {
	GachaTypes
	// ListCandidateItems returns active items of tier for the gacha, including items usable by any gacha
	ListCandidateItems(ctx context.Context, tier prize.Tier, gachaTypeID string) ([]domain.GachaItem, error)
	BeginTx(ctx context.Context) (GachaTx, error)
}

// Catalog defines admin management of gacha types and items
type Catalog interface {
	GachaTypes
	ListItems(ctx context.Context, filter domain.ItemFilter) ([]domain.GachaItem, int, error)
	GetItem(ctx context.Context, id int64) (*domain.GachaItem, error)
	CreateItem(ctx context.Context, item *domain.GachaItem) error
	UpdateItem(ctx context.Context, item *domain.GachaItem) error
	// DeactivateItem is a logical delete: the item stays referenced by past draws
	DeactivateItem(ctx context.Context, id int64) (*domain.GachaItem, error)
}
