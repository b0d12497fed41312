package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GachaLab_Go/internal/domain"
	"github.com/osse101/GachaLab_Go/internal/poker"
	"github.com/osse101/GachaLab_Go/internal/prize"
	"github.com/osse101/GachaLab_Go/internal/validation"
)

const (
	repoSeedPath   = "../../configs/seed.yaml"
	repoSchemaPath = "../../configs/schemas/seed.schema.json"
)

// fakeCatalog stores gacha types and items in memory
type fakeCatalog struct {
	types  map[string]domain.GachaType
	items  []domain.GachaItem
	nextID int64
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{types: map[string]domain.GachaType{}}
}

func (f *fakeCatalog) ListGachaTypes(_ context.Context) ([]domain.GachaType, error) {
	out := make([]domain.GachaType, 0, len(f.types))
	for _, g := range f.types {
		out = append(out, g)
	}
	return out, nil
}

func (f *fakeCatalog) SaveGachaType(_ context.Context, g *domain.GachaType) (*domain.GachaType, error) {
	f.types[g.ID] = *g
	return g, nil
}

func (f *fakeCatalog) ListItems(_ context.Context, filter domain.ItemFilter) (*domain.PagedResult[domain.GachaItem], error) {
	p := filter.Page.Normalize()
	start := min(p.Offset(), len(f.items))
	end := min(start+p.Limit, len(f.items))
	return &domain.PagedResult[domain.GachaItem]{
		Items:      append([]domain.GachaItem(nil), f.items[start:end]...),
		Pagination: domain.NewPagination(p, len(f.items)),
	}, nil
}

func (f *fakeCatalog) GetItem(_ context.Context, id int64) (*domain.GachaItem, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			return &f.items[i], nil
		}
	}
	return nil, domain.ErrItemNotFound
}

func (f *fakeCatalog) CreateItem(_ context.Context, item *domain.GachaItem) (*domain.GachaItem, error) {
	f.nextID++
	item.ID = f.nextID
	f.items = append(f.items, *item)
	return item, nil
}

func (f *fakeCatalog) UpdateItem(_ context.Context, item *domain.GachaItem) (*domain.GachaItem, error) {
	return item, nil
}

func (f *fakeCatalog) DeleteItem(ctx context.Context, id int64) (*domain.GachaItem, error) {
	return f.GetItem(ctx, id)
}

func TestLoad_RepositorySeed(t *testing.T) {
	f, err := Load(repoSeedPath, repoSchemaPath, validation.NewSchemaValidator())
	require.NoError(t, err)

	normal, err := f.Find("normal")
	require.NoError(t, err)
	assert.Equal(t, domain.DrawModePoker, normal.DrawMode)
	assert.Equal(t, prize.Weights{First: 1, Second: 2, Third: 5, Fourth: 10, Fifth: 20, Loser: 62}, normal.Weights)
	assert.Equal(t, prize.DefaultTierHands(), normal.Hands)

	premium, err := f.Find("premium")
	require.NoError(t, err)
	assert.Equal(t, domain.DrawModeWeighted, premium.DrawMode)
	assert.Equal(t, 100, premium.Weights.Total())

	// every tier has at least one candidate item for each gacha
	for _, g := range f.GachaTypes {
		for _, tier := range prize.AllTiers {
			found := false
			for _, it := range f.Items {
				if it.Rarity == tier && (it.GachaType == "" || it.GachaType == g.ID) {
					found = true
					break
				}
			}
			assert.True(t, found, "gacha %s has no item for %s", g.ID, tier)
		}
	}

	_, err = f.Find("missing")
	assert.Error(t, err)
}

func TestLoad_RejectsSchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown draw mode", "gacha_types:\n  - id: x\n    name: X\n    draw_mode: slots\n"},
		{"negative weight", "gacha_types:\n  - id: x\n    name: X\n    draw_mode: weighted\n    weights:\n      loser_weight: -1\n"},
		{"unknown hand", "gacha_types:\n  - id: x\n    name: X\n    draw_mode: poker\n    hands:\n      first_prize_hands: [five_of_a_kind]\n"},
		{"unknown rarity", "gacha_types:\n  - id: x\n    name: X\n    draw_mode: poker\nitems:\n  - name: a\n    rarity: SIXTH_PRIZE\n"},
		{"no gacha types", "items: []\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "seed.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0600))

			_, err := Load(path, repoSchemaPath, validation.NewSchemaValidator())
			require.Error(t, err)
			assert.Contains(t, err.Error(), ErrMsgSchemaValidationFailed)
		})
	}
}

func TestGachaType_ToDomain(t *testing.T) {
	inactive := false
	g := GachaType{
		ID: "x", Name: "X", Description: "desc", DrawMode: domain.DrawModePoker, PointCost: 50,
		Hands: prize.TierHands{First: []poker.HandRank{poker.RoyalFlush}},
	}

	gt := g.ToDomain()
	assert.True(t, gt.IsActive, "missing is_active defaults to active")
	require.NotNil(t, gt.Description)
	assert.Equal(t, "desc", *gt.Description)

	g.IsActive = &inactive
	g.Description = ""
	gt = g.ToDomain()
	assert.False(t, gt.IsActive)
	assert.Nil(t, gt.Description)
}

func TestApply(t *testing.T) {
	ctx := context.Background()
	f, err := Load(repoSeedPath, repoSchemaPath, validation.NewSchemaValidator())
	require.NoError(t, err)

	t.Run("first run creates everything", func(t *testing.T) {
		cat := newFakeCatalog()

		summary, err := Apply(ctx, cat, f)
		require.NoError(t, err)
		assert.Equal(t, len(f.GachaTypes), summary.GachaTypes)
		assert.Equal(t, len(f.Items), summary.ItemsCreated)
		assert.Zero(t, summary.ItemsSkipped)
		assert.Len(t, cat.items, len(f.Items))

		// second run is a no-op for items
		summary, err = Apply(ctx, cat, f)
		require.NoError(t, err)
		assert.Zero(t, summary.ItemsCreated)
		assert.Equal(t, len(f.Items), summary.ItemsSkipped)
		assert.Len(t, cat.items, len(f.Items))
	})

	t.Run("items may reference previously stored gacha types", func(t *testing.T) {
		cat := newFakeCatalog()
		cat.types["legacy"] = domain.GachaType{ID: "legacy"}
		only := &File{Items: []Item{{Name: "old", Rarity: prize.Loser, GachaType: "legacy"}}}

		summary, err := Apply(ctx, cat, only)
		require.NoError(t, err)
		assert.Equal(t, 1, summary.ItemsCreated)
		require.NotNil(t, cat.items[0].GachaTypeID)
		assert.Equal(t, "legacy", *cat.items[0].GachaTypeID)
	})

	t.Run("unknown gacha reference is rejected", func(t *testing.T) {
		cat := newFakeCatalog()
		bad := &File{Items: []Item{{Name: "ghost", Rarity: prize.Loser, GachaType: "nope"}}}

		_, err := Apply(ctx, cat, bad)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Empty(t, cat.items)
	})
}
