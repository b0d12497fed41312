package points

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/GachaLab_Go/internal/domain"
	"github.com/osse101/GachaLab_Go/internal/payment"
	"github.com/osse101/GachaLab_Go/internal/repository"
)

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) CreateIntent(ctx context.Context, req payment.IntentRequest) (*domain.PaymentIntent, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentIntent), args.Error(1)
}

func (m *MockGateway) GetIntent(ctx context.Context, intentID string) (*domain.PaymentIntent, error) {
	args := m.Called(ctx, intentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentIntent), args.Error(1)
}

func (m *MockGateway) ParseWebhook(payload []byte, signature string) (*payment.WebhookEvent, error) {
	args := m.Called(payload, signature)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.WebhookEvent), args.Error(1)
}

// fakeRepository keeps balances and history in memory; a mutex stands in for the row lock
type fakeRepository struct {
	mu        sync.Mutex
	rowLock   sync.Mutex
	balances  map[string]int
	histories []domain.PointHistory
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{balances: make(map[string]int)}
}

func (f *fakeRepository) GetBalance(_ context.Context, userID string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.balances[userID]
	if !ok {
		return 0, domain.ErrUserNotFound
	}
	return b, nil
}

func (f *fakeRepository) BeginTx(_ context.Context) (repository.PointsTx, error) {
	return &fakeTx{repo: f, points: map[string]int{}}, nil
}

type fakeTx struct {
	repo      *fakeRepository
	locked    bool
	points    map[string]int
	histories []domain.PointHistory
	closed    bool
}

func (t *fakeTx) release() {
	if t.locked {
		t.repo.rowLock.Unlock()
		t.locked = false
	}
}

func (t *fakeTx) Commit(_ context.Context) error {
	if t.closed {
		return repository.ErrTxClosed
	}
	t.closed = true
	defer t.release()
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	for id, p := range t.points {
		t.repo.balances[id] = p
	}
	t.repo.histories = append(t.repo.histories, t.histories...)
	return nil
}

func (t *fakeTx) Rollback(_ context.Context) error {
	if t.closed {
		return repository.ErrTxClosed
	}
	t.closed = true
	t.release()
	return nil
}

func (t *fakeTx) GetUserForUpdate(_ context.Context, userID string) (*domain.User, error) {
	t.repo.rowLock.Lock()
	t.locked = true
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	b, ok := t.repo.balances[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &domain.User{UserID: userID, Points: b}, nil
}

func (t *fakeTx) UpdateUserPoints(_ context.Context, userID string, points int) error {
	t.points[userID] = points
	return nil
}

func (t *fakeTx) InsertPointHistory(_ context.Context, h *domain.PointHistory) error {
	h.ID = uuid.New()
	t.histories = append(t.histories, *h)
	return nil
}

func (t *fakeTx) FindPurchaseByPaymentID(_ context.Context, paymentID string) (*domain.PointHistory, error) {
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	for _, h := range t.repo.histories {
		if h.TransactionType == domain.TransactionPurchase && h.PaymentID != nil && *h.PaymentID == paymentID {
			cp := h
			return &cp, nil
		}
	}
	return nil, nil
}
