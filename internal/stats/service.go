package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/GachaLab_Go/internal/domain"
	"github.com/osse101/GachaLab_Go/internal/logger"
	"github.com/osse101/GachaLab_Go/internal/prize"
	"github.com/osse101/GachaLab_Go/internal/repository"
)

// Service defines the admin statistics operations
type Service interface {
	// GetStatistics aggregates activity for a period. Custom periods need both
	// start and end; without them the current month is used.
	GetStatistics(ctx context.Context, period domain.StatsPeriod, start, end *time.Time) (*domain.Statistics, error)
}

type service struct {
	repo repository.Stats
	now  func() time.Time
	loc  *time.Location
}

// Option customises the stats service
type Option func(*service)

// WithClock injects the clock used for day and month periods
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

// WithLocation sets the time zone that defines day and month boundaries
func WithLocation(loc *time.Location) Option {
	return func(s *service) { s.loc = loc }
}

// NewService creates a new stats service
func NewService(repo repository.Stats, opts ...Option) Service {
	s := &service{
		repo: repo,
		now:  time.Now,
		loc:  time.Local,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) GetStatistics(ctx context.Context, period domain.StatsPeriod, start, end *time.Time) (*domain.Statistics, error) {
	period, from, to, err := s.resolveRange(period, start, end)
	if err != nil {
		return nil, err
	}

	out := &domain.Statistics{Period: period, StartDate: from, EndDate: to}

	if out.TotalUsers, err = s.repo.CountUsers(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCountUsersFailed, err)
	}
	if out.TotalDraws, err = s.repo.CountDraws(ctx, from, to); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCountDrawsFailed, err)
	}
	if out.PointsPurchased, err = s.repo.SumPointsPurchased(ctx, from, to); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgSumPurchasesFailed, err)
	}
	if out.GachaStats, err = s.repo.CountDrawsByGacha(ctx, from, to); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGachaBreakdownFailed, err)
	}
	byTier, err := s.repo.CountDrawsByTier(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgTierBreakdownFailed, err)
	}
	if out.DailyStats, err = s.repo.CountDrawsByDay(ctx, from, to, domain.DailyStatsLimit); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgDailyBreakdownFailed, err)
	}

	// every tier is reported, including those with no draws
	out.RarityStats = make(map[prize.Tier]int, len(prize.AllTiers))
	for _, t := range prize.AllTiers {
		out.RarityStats[t] = byTier[t]
	}
	if out.GachaStats == nil {
		out.GachaStats = []domain.GachaCount{}
	}
	if out.DailyStats == nil {
		out.DailyStats = []domain.DailyCount{}
	}

	logger.FromContext(ctx).Debug(LogMsgStatisticsComputed,
		"period", period,
		"start", from,
		"end", to,
		"total_draws", out.TotalDraws)
	return out, nil
}

// resolveRange returns the effective period and its inclusive bounds
func (s *service) resolveRange(period domain.StatsPeriod, start, end *time.Time) (domain.StatsPeriod, time.Time, time.Time, error) {
	now := s.now().In(s.loc)

	switch period {
	case domain.PeriodCustom:
		if start != nil && end != nil {
			from := startOfDay(start.In(s.loc))
			to := startOfDay(end.In(s.loc)).Add(23*time.Hour + 59*time.Minute + 59*time.Second + lastMillisecond)
			if to.Before(from) {
				return "", time.Time{}, time.Time{}, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgEndBeforeStart)
			}
			return period, from, to, nil
		}
		return domain.PeriodMonth, startOfMonth(now), now, nil
	case domain.PeriodDay:
		return period, startOfDay(now), now, nil
	case domain.PeriodMonth, "":
		return domain.PeriodMonth, startOfMonth(now), now, nil
	default:
		return "", time.Time{}, time.Time{}, fmt.Errorf("%w: %s %q", domain.ErrInvalidInput, ErrMsgUnknownPeriod, period)
	}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func startOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}
