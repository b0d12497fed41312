package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/osse101/GachaLab_Go/internal/domain"
	"github.com/osse101/GachaLab_Go/internal/logger"
	"github.com/osse101/GachaLab_Go/internal/repository"
)

// Invalidator drops cached gacha configuration after an edit
type Invalidator interface {
	InvalidateGachaType(ctx context.Context, id string)
}

// Service defines admin management of gacha types and items
type Service interface {
	ListGachaTypes(ctx context.Context) ([]domain.GachaType, error)
	SaveGachaType(ctx context.Context, g *domain.GachaType) (*domain.GachaType, error)
	ListItems(ctx context.Context, filter domain.ItemFilter) (*domain.PagedResult[domain.GachaItem], error)
	GetItem(ctx context.Context, id int64) (*domain.GachaItem, error)
	CreateItem(ctx context.Context, item *domain.GachaItem) (*domain.GachaItem, error)
	UpdateItem(ctx context.Context, item *domain.GachaItem) (*domain.GachaItem, error)
	// DeleteItem deactivates the item; draw history keeps referencing it
	DeleteItem(ctx context.Context, id int64) (*domain.GachaItem, error)
}

type service struct {
	repo        repository.Catalog
	invalidator Invalidator
}

// NewService creates a new catalog service. invalidator may be nil.
func NewService(repo repository.Catalog, invalidator Invalidator) Service {
	return &service{repo: repo, invalidator: invalidator}
}

// ListGachaTypes returns every gacha type, active or not
func (s *service) ListGachaTypes(ctx context.Context) ([]domain.GachaType, error) {
	types, err := s.repo.ListGachaTypes(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgListGachaTypesFailed, err)
	}
	if types == nil {
		types = []domain.GachaType{}
	}
	return types, nil
}

// SaveGachaType creates or replaces a gacha type after validating its configuration
func (s *service) SaveGachaType(ctx context.Context, g *domain.GachaType) (*domain.GachaType, error) {
	log := logger.FromContext(ctx)

	if err := ValidateGachaType(g); err != nil {
		return nil, err
	}
	if g.DrawMode == domain.DrawModePoker {
		if missing := g.Hands.Unassigned(); len(missing) > 0 {
			log.Info(LogMsgUnassignedHands, "gacha_type_id", g.ID, "hands", missing)
		}
		if overlaps := g.Hands.Overlaps(); len(overlaps) > 0 {
			log.Warn(LogMsgOverlappingHands, "gacha_type_id", g.ID, "hands", overlaps)
		}
	}

	if err := s.repo.UpsertGachaType(ctx, g); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgUpsertGachaTypeFailed, err)
	}
	s.invalidate(ctx, g.ID)

	log.Info(LogMsgGachaTypeSaved, "gacha_type_id", g.ID, "draw_mode", g.DrawMode)
	return g, nil
}

// ValidateGachaType checks a gacha type before it is stored
func ValidateGachaType(g *domain.GachaType) error {
	g.ID = strings.TrimSpace(g.ID)
	g.Name = strings.TrimSpace(g.Name)

	switch {
	case g.ID == "":
		return invalid(ErrMsgIDRequired)
	case g.Name == "":
		return invalid(ErrMsgNameRequired)
	case !g.DrawMode.Valid():
		return invalid(ErrMsgUnknownDrawMode)
	case g.PointCost < 0:
		return invalid(ErrMsgNegativeCost)
	case g.StartAt != nil && g.EndAt != nil && g.EndAt.Before(*g.StartAt):
		return invalid(ErrMsgWindowInverted)
	}
	if err := g.Weights.Validate(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if err := g.Hands.Validate(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

func (s *service) ListItems(ctx context.Context, filter domain.ItemFilter) (*domain.PagedResult[domain.GachaItem], error) {
	filter.Page = filter.Page.Normalize()
	items, total, err := s.repo.ListItems(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgListItemsFailed, err)
	}
	if items == nil {
		items = []domain.GachaItem{}
	}
	return &domain.PagedResult[domain.GachaItem]{
		Items:      items,
		Pagination: domain.NewPagination(filter.Page, total),
	}, nil
}

func (s *service) GetItem(ctx context.Context, id int64) (*domain.GachaItem, error) {
	item, err := s.repo.GetItem(ctx, id)
	if err != nil {
		return nil, wrapItemErr(ErrMsgGetItemFailed, err)
	}
	return item, nil
}

func (s *service) CreateItem(ctx context.Context, item *domain.GachaItem) (*domain.GachaItem, error) {
	if err := validateItem(item); err != nil {
		return nil, err
	}
	if err := s.repo.CreateItem(ctx, item); err != nil {
		return nil, wrapItemErr(ErrMsgCreateItemFailed, err)
	}
	logger.FromContext(ctx).Info(LogMsgItemCreated, "item_id", item.ID, "rarity", item.Rarity)
	return item, nil
}

func (s *service) UpdateItem(ctx context.Context, item *domain.GachaItem) (*domain.GachaItem, error) {
	if item.ID <= 0 {
		return nil, invalid(ErrMsgItemIDRequired)
	}
	if err := validateItem(item); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateItem(ctx, item); err != nil {
		return nil, wrapItemErr(ErrMsgUpdateItemFailed, err)
	}
	logger.FromContext(ctx).Info(LogMsgItemUpdated, "item_id", item.ID)
	return item, nil
}

func (s *service) DeleteItem(ctx context.Context, id int64) (*domain.GachaItem, error) {
	item, err := s.repo.DeactivateItem(ctx, id)
	if err != nil {
		return nil, wrapItemErr(ErrMsgDeleteItemFailed, err)
	}
	logger.FromContext(ctx).Info(LogMsgItemDeactivated, "item_id", id)
	return item, nil
}

func validateItem(item *domain.GachaItem) error {
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" {
		return invalid(ErrMsgNameRequired)
	}
	if !item.Rarity.Valid() {
		return invalid(fmt.Sprintf("%s %q", ErrMsgUnknownRarity, item.Rarity))
	}
	if item.GachaTypeID != nil && strings.TrimSpace(*item.GachaTypeID) == "" {
		return invalid(ErrMsgEmptyGachaTypeRef)
	}
	return nil
}

func (s *service) invalidate(ctx context.Context, id string) {
	if s.invalidator != nil {
		s.invalidator.InvalidateGachaType(ctx, id)
	}
}

// wrapItemErr passes domain sentinels through and wraps everything else
func wrapItemErr(msg string, err error) error {
	if errors.Is(err, domain.ErrItemNotFound) || errors.Is(err, domain.ErrGachaTypeNotFound) {
		return err
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, msg)
}
