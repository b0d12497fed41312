// Package seed loads gacha types and items from a YAML file and applies them
// through the catalog service.
package seed

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/GachaLab_Go/internal/catalog"
	"github.com/osse101/GachaLab_Go/internal/domain"
	"github.com/osse101/GachaLab_Go/internal/logger"
	"github.com/osse101/GachaLab_Go/internal/prize"
	"github.com/osse101/GachaLab_Go/internal/utils"
	"github.com/osse101/GachaLab_Go/internal/validation"
)

// File is the seed document
type File struct {
	GachaTypes []GachaType `yaml:"gacha_types"`
	Items      []Item      `yaml:"items"`
}

// GachaType is a gacha machine as written in the seed file
type GachaType struct {
	ID          string          `yaml:"id"`
	Name        string          `yaml:"name"`
	Description string          `yaml:"description"`
	DrawMode    domain.DrawMode `yaml:"draw_mode"`
	PointCost   int             `yaml:"point_cost"`
	IsActive    *bool           `yaml:"is_active"`
	Weights     prize.Weights   `yaml:"weights"`
	Hands       prize.TierHands `yaml:"hands"`
}

// Item is a prize as written in the seed file. An empty GachaType makes it shared.
type Item struct {
	Name      string     `yaml:"name"`
	Rarity    prize.Tier `yaml:"rarity"`
	VideoURL  string     `yaml:"video_url"`
	GachaType string     `yaml:"gacha_type"`
}

// Summary reports what Apply changed
type Summary struct {
	GachaTypes   int
	ItemsCreated int
	ItemsSkipped int
}

// Load validates path against the schema and decodes it
func Load(path, schemaPath string, v validation.SchemaValidator) (*File, error) {
	if err := v.ValidateFile(path, schemaPath); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgSchemaValidationFailed, err)
	}
	var f File
	if err := utils.LoadYAML(path, &f); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadFailed, err)
	}
	return &f, nil
}

// Find returns the gacha type with the given id
func (f *File) Find(id string) (*GachaType, error) {
	for i := range f.GachaTypes {
		if f.GachaTypes[i].ID == id {
			return &f.GachaTypes[i], nil
		}
	}
	return nil, fmt.Errorf("%s: %q", ErrMsgGachaTypeNotInSeed, id)
}

// ToDomain converts the seed entry into a gacha type. Missing is_active means active.
func (g GachaType) ToDomain() *domain.GachaType {
	gt := &domain.GachaType{
		ID:        g.ID,
		Name:      g.Name,
		DrawMode:  g.DrawMode,
		PointCost: g.PointCost,
		IsActive:  g.IsActive == nil || *g.IsActive,
		Weights:   g.Weights,
		Hands:     g.Hands,
	}
	if g.Description != "" {
		desc := g.Description
		gt.Description = &desc
	}
	return gt
}

// Apply upserts every gacha type, then creates the items not already present.
// An item counts as present when an item with the same name, rarity and gacha exists.
func Apply(ctx context.Context, svc catalog.Service, f *File) (*Summary, error) {
	log := logger.FromContext(ctx)
	summary := &Summary{}

	known := make(map[string]bool, len(f.GachaTypes))
	for _, g := range f.GachaTypes {
		saved, err := svc.SaveGachaType(ctx, g.ToDomain())
		if err != nil {
			return summary, fmt.Errorf("%s %q: %w", ErrMsgSaveGachaTypeFailed, g.ID, err)
		}
		known[saved.ID] = true
		summary.GachaTypes++
		log.Info(LogMsgGachaTypeSeeded, "gacha_type_id", saved.ID, "draw_mode", saved.DrawMode)
	}

	existing, err := existingItemKeys(ctx, svc)
	if err != nil {
		return summary, err
	}

	for _, it := range f.Items {
		var gachaRef *string
		if it.GachaType != "" {
			ref := it.GachaType
			gachaRef = &ref
			if !known[ref] {
				if err := addStoredGachaTypes(ctx, svc, known); err != nil {
					return summary, err
				}
				if !known[ref] {
					return summary, fmt.Errorf("%w: %s %q", domain.ErrInvalidInput, ErrMsgUnknownGachaRef, ref)
				}
			}
		}

		key := itemKey(it.Name, it.Rarity, it.GachaType)
		if existing[key] {
			summary.ItemsSkipped++
			log.Debug(LogMsgItemExists, "name", it.Name, "rarity", it.Rarity)
			continue
		}

		item := &domain.GachaItem{
			Name:        it.Name,
			Rarity:      it.Rarity,
			GachaTypeID: gachaRef,
			IsActive:    true,
		}
		if it.VideoURL != "" {
			u := it.VideoURL
			item.VideoURL = &u
		}
		created, err := svc.CreateItem(ctx, item)
		if err != nil {
			return summary, fmt.Errorf("%s %q: %w", ErrMsgCreateItemFailed, it.Name, err)
		}
		existing[key] = true
		summary.ItemsCreated++
		log.Info(LogMsgItemSeeded, "item_id", created.ID, "name", created.Name, "rarity", created.Rarity)
	}

	return summary, nil
}

// addStoredGachaTypes lets items reference gacha types seeded by an earlier run
func addStoredGachaTypes(ctx context.Context, svc catalog.Service, known map[string]bool) error {
	types, err := svc.ListGachaTypes(ctx)
	if err != nil {
		return err
	}
	for _, g := range types {
		known[g.ID] = true
	}
	return nil
}

func existingItemKeys(ctx context.Context, svc catalog.Service) (map[string]bool, error) {
	keys := make(map[string]bool)
	page := domain.Page{Page: 1, Limit: existingItemsPageLimit}
	for {
		res, err := svc.ListItems(ctx, domain.ItemFilter{Page: page})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgListItemsFailed, err)
		}
		for _, it := range res.Items {
			ref := ""
			if it.GachaTypeID != nil {
				ref = *it.GachaTypeID
			}
			keys[itemKey(it.Name, it.Rarity, ref)] = true
		}
		if page.Page >= res.Pagination.TotalPages {
			return keys, nil
		}
		page.Page++
	}
}

func itemKey(name string, rarity prize.Tier, gachaRef string) string {
	return strings.TrimSpace(name) + "\x00" + string(rarity) + "\x00" + gachaRef
}
