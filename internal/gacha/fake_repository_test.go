package gacha

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/GachaLab_Go/internal/domain"
	"github.com/osse101/GachaLab_Go/internal/prize"
	"github.com/osse101/GachaLab_Go/internal/repository"
)

// fakeRepository is an in-memory repository.Gacha whose transactions apply on commit
type fakeRepository struct {
	mu             sync.Mutex
	types          map[string]*domain.GachaType
	items          []domain.GachaItem
	users          map[string]*domain.User
	gachaHistories []domain.GachaHistory
	pointHistories []domain.PointHistory

	getTypeCalls     int
	insertHistoryErr error
	rollbacks        int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		types: make(map[string]*domain.GachaType),
		users: make(map[string]*domain.User),
	}
}

func (f *fakeRepository) addUser(id string, points int) {
	f.users[id] = &domain.User{UserID: id, Points: points}
}

func (f *fakeRepository) addItem(name string, tier prize.Tier, gachaTypeID *string) domain.GachaItem {
	item := domain.GachaItem{ID: int64(len(f.items) + 1), Name: name, Rarity: tier, GachaTypeID: gachaTypeID, IsActive: true}
	f.items = append(f.items, item)
	return item
}

func (f *fakeRepository) ListGachaTypes(_ context.Context, activeOnly bool) ([]domain.GachaType, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.GachaType
	for _, g := range f.types {
		if activeOnly && !g.IsActive {
			continue
		}
		out = append(out, *g)
	}
	return out, nil
}

func (f *fakeRepository) GetGachaType(_ context.Context, id string) (*domain.GachaType, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getTypeCalls++
	g, ok := f.types[id]
	if !ok {
		return nil, domain.ErrGachaTypeNotFound
	}
	cp := *g
	return &cp, nil
}

func (f *fakeRepository) UpsertGachaType(_ context.Context, g *domain.GachaType) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *g
	f.types[g.ID] = &cp
	return nil
}

func (f *fakeRepository) ListCandidateItems(_ context.Context, tier prize.Tier, gachaTypeID string) ([]domain.GachaItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.GachaItem
	for _, item := range f.items {
		if !item.IsActive || item.Rarity != tier {
			continue
		}
		if item.GachaTypeID != nil && *item.GachaTypeID != gachaTypeID {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (f *fakeRepository) BeginTx(_ context.Context) (repository.GachaTx, error) {
	return &fakeTx{repo: f, points: make(map[string]int)}, nil
}

type fakeTx struct {
	repo           *fakeRepository
	points         map[string]int
	gachaHistories []domain.GachaHistory
	pointHistories []domain.PointHistory
	closed         bool
}

func (t *fakeTx) Commit(_ context.Context) error {
	if t.closed {
		return repository.ErrTxClosed
	}
	t.closed = true
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	for id, p := range t.points {
		t.repo.users[id].Points = p
	}
	t.repo.gachaHistories = append(t.repo.gachaHistories, t.gachaHistories...)
	t.repo.pointHistories = append(t.repo.pointHistories, t.pointHistories...)
	return nil
}

func (t *fakeTx) Rollback(_ context.Context) error {
	if t.closed {
		return repository.ErrTxClosed
	}
	t.closed = true
	t.repo.mu.Lock()
	t.repo.rollbacks++
	t.repo.mu.Unlock()
	return nil
}

func (t *fakeTx) GetUserForUpdate(_ context.Context, userID string) (*domain.User, error) {
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	u, ok := t.repo.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (t *fakeTx) UpdateUserPoints(_ context.Context, userID string, points int) error {
	t.points[userID] = points
	return nil
}

func (t *fakeTx) InsertPointHistory(_ context.Context, h *domain.PointHistory) error {
	h.ID = uuid.New()
	h.CreatedAt = time.Now()
	t.pointHistories = append(t.pointHistories, *h)
	return nil
}

func (t *fakeTx) InsertGachaHistory(_ context.Context, h *domain.GachaHistory) error {
	if t.repo.insertHistoryErr != nil {
		return t.repo.insertHistoryErr
	}
	h.ID = uuid.New()
	h.CreatedAt = time.Now()
	t.gachaHistories = append(t.gachaHistories, *h)
	return nil
}
