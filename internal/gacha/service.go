package gacha

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/GachaLab_Go/internal/domain"
	"github.com/osse101/GachaLab_Go/internal/logger"
	"github.com/osse101/GachaLab_Go/internal/metrics"
	"github.com/osse101/GachaLab_Go/internal/prize"
	"github.com/osse101/GachaLab_Go/internal/repository"
	"github.com/osse101/GachaLab_Go/internal/utils"
)

// Service defines the player-facing gacha operations
type Service interface {
	ListAvailable(ctx context.Context) ([]domain.GachaType, error)
	GetGachaType(ctx context.Context, id string) (*domain.GachaType, error)
	Draw(ctx context.Context, userID, gachaTypeID string) (*domain.DrawResult, error)
	Simulate(ctx context.Context, gachaTypeID string, iterations int) (*domain.GachaSimulation, error)
	// InvalidateGachaType drops a cached gacha type; an empty id clears the whole cache
	InvalidateGachaType(ctx context.Context, id string)
}

type service struct {
	repo  repository.Gacha
	rng   utils.RandomSource
	now   func() time.Time
	cache *typeCache
}

// Option customises a gacha service
type Option func(*service)

// WithRandomSource injects the random source used for draws and simulations
func WithRandomSource(src utils.RandomSource) Option {
	return func(s *service) { s.rng = src }
}

// WithClock injects the clock used for availability windows
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

// NewService creates a new gacha service
func NewService(repo repository.Gacha, opts ...Option) Service {
	s := &service{
		repo:  repo,
		rng:   utils.DefaultSource(),
		now:   time.Now,
		cache: newTypeCache(CacheSize, CacheTTL),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListAvailable returns gacha types that are active and inside their window, oldest first
func (s *service) ListAvailable(ctx context.Context) ([]domain.GachaType, error) {
	all, err := s.repo.ListGachaTypes(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgListGachaTypesFailed, err)
	}

	now := s.now()
	available := make([]domain.GachaType, 0, len(all))
	for i := range all {
		s.cache.Set(&all[i])
		if all[i].IsAvailable(now) {
			available = append(available, all[i])
		}
	}
	return available, nil
}

func (s *service) GetGachaType(ctx context.Context, id string) (*domain.GachaType, error) {
	if g, ok := s.cache.Get(id); ok {
		return g, nil
	}

	g, err := s.repo.GetGachaType(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrGachaTypeNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgGetGachaTypeFailed, err)
	}
	s.cache.Set(g)
	return g, nil
}

func (s *service) InvalidateGachaType(ctx context.Context, id string) {
	if id == "" {
		s.cache.Clear()
	} else {
		s.cache.Invalidate(id)
	}
	logger.FromContext(ctx).Debug(LogMsgCacheInvalidated, "gacha_type_id", id)
}

// Draw resolves a prize and persists it. The tier is chosen before any write;
// the point deduction and history rows commit together or not at all.
func (s *service) Draw(ctx context.Context, userID, gachaTypeID string) (*domain.DrawResult, error) {
	ctx = logger.WithUserID(ctx, userID)
	log := logger.FromContext(ctx)

	g, err := s.GetGachaType(ctx, gachaTypeID)
	if err != nil {
		if errors.Is(err, domain.ErrGachaTypeNotFound) {
			s.reject(ctx, ReasonNotFound, gachaTypeID)
		}
		return nil, err
	}
	now := s.now()
	if !g.IsAvailable(now) {
		s.reject(ctx, ReasonInactive, gachaTypeID)
		return nil, domain.ErrGachaTypeInactive
	}

	outcome := prize.Resolve(g.Mode(), s.rng)

	candidates, err := s.repo.ListCandidateItems(ctx, outcome.Tier, g.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgListCandidatesFailed, err)
	}
	item, err := prize.PickItem(candidates, s.rng)
	if err != nil {
		s.reject(ctx, ReasonNoItem, gachaTypeID)
		return nil, fmt.Errorf("%s %s: %w", ErrMsgNoItemForTier, outcome.Tier, err)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	user, err := tx.GetUserForUpdate(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.reject(ctx, ReasonUnknownUser, gachaTypeID)
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgLockUserFailed, err)
	}

	balance := user.Points
	if !g.IsFree() {
		if balance < g.PointCost {
			s.reject(ctx, ReasonInsufficient, gachaTypeID)
			return nil, domain.ErrInsufficientPoints
		}
		balance -= g.PointCost
		if err := tx.UpdateUserPoints(ctx, userID, balance); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgDeductPointsFailed, err)
		}
		if err := tx.InsertPointHistory(ctx, &domain.PointHistory{
			UserID:          userID,
			TransactionType: domain.TransactionGacha,
			Amount:          -g.PointCost,
			BalanceAfter:    balance,
			Description:     fmt.Sprintf(domain.DescGachaDraw, g.Name),
		}); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgRecordPointsFailed, err)
		}
	}

	history := &domain.GachaHistory{
		UserID:      userID,
		GachaTypeID: g.ID,
		ItemID:      item.ID,
		Tier:        outcome.Tier,
		PointsSpent: max(g.PointCost, 0),
	}
	if outcome.Poker != nil {
		hand := outcome.Poker.Hand
		history.HandRank = &hand
		history.Cards = outcome.Poker.Deal.Cards
	}
	if err := tx.InsertGachaHistory(ctx, history); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgRecordDrawFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCommitDrawFailed, err)
	}

	metrics.DrawsTotal.WithLabelValues(g.ID, string(outcome.Tier)).Inc()
	if outcome.Poker != nil {
		metrics.HandsDealt.WithLabelValues(outcome.Poker.Hand.String()).Inc()
	}
	if history.PointsSpent > 0 {
		metrics.PointsSpent.Add(float64(history.PointsSpent))
	}

	log.Info(LogMsgDrawCompleted,
		"gacha_type_id", g.ID,
		"tier", outcome.Tier,
		"item_id", item.ID,
		"points_spent", history.PointsSpent)

	return &domain.DrawResult{
		HistoryID:    history.ID,
		GachaTypeID:  g.ID,
		Item:         item,
		Tier:         outcome.Tier,
		TierLabel:    outcome.Tier.Label(),
		Poker:        outcome.Poker,
		PointsSpent:  history.PointsSpent,
		BalanceAfter: balance,
		Timestamp:    history.CreatedAt,
	}, nil
}

// Simulate runs the production weighted sampler against the gacha's weights.
// Poker gachas additionally get an observed hand distribution.
func (s *service) Simulate(ctx context.Context, gachaTypeID string, iterations int) (*domain.GachaSimulation, error) {
	if iterations == 0 {
		iterations = domain.DefaultSimulationIterations
	}
	if iterations < domain.MinSimulationIterations || iterations > domain.MaxSimulationIterations {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgIterationsOutOfRange)
	}

	g, err := s.GetGachaType(ctx, gachaTypeID)
	if err != nil {
		return nil, err
	}
	if g.Weights.Total() == 0 {
		return nil, domain.ErrZeroTotalWeight
	}

	sim := &domain.GachaSimulation{
		GachaTypeID:   g.ID,
		GachaTypeName: g.Name,
		DrawMode:      g.DrawMode,
		Weighted:      prize.Simulate(g.Weights, iterations, s.rng),
	}
	if g.DrawMode == domain.DrawModePoker {
		hands := prize.SimulateHands(g.Hands, iterations, s.rng)
		sim.Hands = &hands
	}

	metrics.SimulationsRun.WithLabelValues(g.ID).Inc()
	metrics.SimulationDraws.Add(float64(iterations))

	logger.FromContext(ctx).Info(LogMsgSimulationFinished,
		"gacha_type_id", g.ID,
		"iterations", iterations)
	return sim, nil
}

func (s *service) reject(ctx context.Context, reason, gachaTypeID string) {
	metrics.DrawFailures.WithLabelValues(reason).Inc()
	logger.FromContext(ctx).Warn(LogMsgDrawRejected,
		"reason", reason,
		"gacha_type_id", gachaTypeID)
}
