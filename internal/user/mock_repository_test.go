package user

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/GachaLab_Go/internal/domain"
)

// MockRepository implements repository.User for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) UpsertUser(ctx context.Context, profile domain.UserProfile) (*domain.User, error) {
	args := m.Called(ctx, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockRepository) ListUsers(ctx context.Context, search string, page domain.Page) ([]domain.UserSummary, int, error) {
	args := m.Called(ctx, search, page)
	rows, _ := args.Get(0).([]domain.UserSummary)
	return rows, args.Int(1), args.Error(2)
}

func (m *MockRepository) GetUserStats(ctx context.Context, userID string) (*domain.UserStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserStats), args.Error(1)
}

func (m *MockRepository) ListGachaHistories(ctx context.Context, userID string, page domain.Page) ([]domain.GachaHistory, int, error) {
	args := m.Called(ctx, userID, page)
	rows, _ := args.Get(0).([]domain.GachaHistory)
	return rows, args.Int(1), args.Error(2)
}

func (m *MockRepository) ListWonItems(ctx context.Context, userID string) ([]domain.GachaHistory, error) {
	args := m.Called(ctx, userID)
	rows, _ := args.Get(0).([]domain.GachaHistory)
	return rows, args.Error(1)
}

func (m *MockRepository) ListPointHistories(ctx context.Context, userID string, limit int) ([]domain.PointHistory, error) {
	args := m.Called(ctx, userID, limit)
	rows, _ := args.Get(0).([]domain.PointHistory)
	return rows, args.Error(1)
}
