package stats

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GachaLab_Go/internal/domain"
	"github.com/osse101/GachaLab_Go/internal/prize"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CountUsers(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) CountDraws(ctx context.Context, start, end time.Time) (int, error) {
	args := m.Called(ctx, start, end)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) CountDrawsByGacha(ctx context.Context, start, end time.Time) ([]domain.GachaCount, error) {
	args := m.Called(ctx, start, end)
	rows, _ := args.Get(0).([]domain.GachaCount)
	return rows, args.Error(1)
}

func (m *MockRepository) CountDrawsByTier(ctx context.Context, start, end time.Time) (map[prize.Tier]int, error) {
	args := m.Called(ctx, start, end)
	counts, _ := args.Get(0).(map[prize.Tier]int)
	return counts, args.Error(1)
}

func (m *MockRepository) CountDrawsByDay(ctx context.Context, start, end time.Time, limit int) ([]domain.DailyCount, error) {
	args := m.Called(ctx, start, end, limit)
	rows, _ := args.Get(0).([]domain.DailyCount)
	return rows, args.Error(1)
}

func (m *MockRepository) SumPointsPurchased(ctx context.Context, start, end time.Time) (int, error) {
	args := m.Called(ctx, start, end)
	return args.Int(0), args.Error(1)
}

var tokyo = time.FixedZone("JST", 9*60*60)

// 2025-03-15 10:30 JST
var now = time.Date(2025, 3, 15, 10, 30, 0, 0, tokyo)

func newTestService(repo *MockRepository) Service {
	return NewService(repo, WithClock(func() time.Time { return now }), WithLocation(tokyo))
}

func expectRange(repo *MockRepository, start, end time.Time) {
	repo.On("CountUsers", mock.Anything).Return(7, nil)
	repo.On("CountDraws", mock.Anything, start, end).Return(12, nil)
	repo.On("SumPointsPurchased", mock.Anything, start, end).Return(3000, nil)
	repo.On("CountDrawsByGacha", mock.Anything, start, end).Return([]domain.GachaCount{{GachaTypeID: "normal", Count: 12}}, nil)
	repo.On("CountDrawsByTier", mock.Anything, start, end).Return(map[prize.Tier]int{prize.Loser: 10, prize.FifthPrize: 2}, nil)
	repo.On("CountDrawsByDay", mock.Anything, start, end, domain.DailyStatsLimit).Return([]domain.DailyCount(nil), nil)
}

func TestGetStatistics_Periods(t *testing.T) {
	customStart := time.Date(2025, 1, 10, 15, 0, 0, 0, tokyo)
	customEnd := time.Date(2025, 1, 20, 8, 0, 0, 0, tokyo)

	tests := []struct {
		name       string
		period     domain.StatsPeriod
		start, end *time.Time
		wantPeriod domain.StatsPeriod
		wantStart  time.Time
		wantEnd    time.Time
	}{
		{
			name:       "day starts at local midnight",
			period:     domain.PeriodDay,
			wantPeriod: domain.PeriodDay,
			wantStart:  time.Date(2025, 3, 15, 0, 0, 0, 0, tokyo),
			wantEnd:    now,
		},
		{
			name:       "month starts on the first",
			period:     domain.PeriodMonth,
			wantPeriod: domain.PeriodMonth,
			wantStart:  time.Date(2025, 3, 1, 0, 0, 0, 0, tokyo),
			wantEnd:    now,
		},
		{
			name:       "empty period defaults to month",
			wantPeriod: domain.PeriodMonth,
			wantStart:  time.Date(2025, 3, 1, 0, 0, 0, 0, tokyo),
			wantEnd:    now,
		},
		{
			name:       "custom covers whole end day",
			period:     domain.PeriodCustom,
			start:      &customStart,
			end:        &customEnd,
			wantPeriod: domain.PeriodCustom,
			wantStart:  time.Date(2025, 1, 10, 0, 0, 0, 0, tokyo),
			wantEnd:    time.Date(2025, 1, 20, 23, 59, 59, 999_000_000, tokyo),
		},
		{
			name:       "custom without dates falls back to month",
			period:     domain.PeriodCustom,
			start:      &customStart,
			wantPeriod: domain.PeriodMonth,
			wantStart:  time.Date(2025, 3, 1, 0, 0, 0, 0, tokyo),
			wantEnd:    now,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			expectRange(repo, tt.wantStart, tt.wantEnd)

			got, err := newTestService(repo).GetStatistics(context.Background(), tt.period, tt.start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPeriod, got.Period)
			assert.True(t, tt.wantStart.Equal(got.StartDate), "start %v", got.StartDate)
			assert.True(t, tt.wantEnd.Equal(got.EndDate), "end %v", got.EndDate)
			repo.AssertExpectations(t)
		})
	}
}

func TestGetStatistics_FillsEveryTier(t *testing.T) {
	repo := new(MockRepository)
	expectRange(repo, time.Date(2025, 3, 1, 0, 0, 0, 0, tokyo), now)

	got, err := newTestService(repo).GetStatistics(context.Background(), domain.PeriodMonth, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 7, got.TotalUsers)
	assert.Equal(t, 12, got.TotalDraws)
	assert.Equal(t, 3000, got.PointsPurchased)
	assert.Len(t, got.RarityStats, len(prize.AllTiers))
	assert.Equal(t, 10, got.RarityStats[prize.Loser])
	assert.Equal(t, 0, got.RarityStats[prize.FirstPrize])
	assert.NotNil(t, got.DailyStats)
}

func TestGetStatistics_InvalidInput(t *testing.T) {
	svc := newTestService(new(MockRepository))
	start := time.Date(2025, 2, 10, 0, 0, 0, 0, tokyo)
	end := time.Date(2025, 2, 1, 0, 0, 0, 0, tokyo)

	_, err := svc.GetStatistics(context.Background(), domain.PeriodCustom, &start, &end)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.GetStatistics(context.Background(), "week", nil, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetStatistics_RepositoryError(t *testing.T) {
	repo := new(MockRepository)
	repo.On("CountUsers", mock.Anything).Return(0, errors.New("db down"))

	_, err := newTestService(repo).GetStatistics(context.Background(), domain.PeriodDay, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgCountUsersFailed)
}
