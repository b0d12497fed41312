package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/GachaLab_Go/internal/domain"
	"github.com/osse101/GachaLab_Go/internal/logger"
	"github.com/osse101/GachaLab_Go/internal/repository"
)

// Service defines user profile and history operations
type Service interface {
	Register(ctx context.Context, profile domain.UserProfile) (*domain.User, error)
	// Get always reads the current balance from storage
	Get(ctx context.Context, userID string) (*domain.User, error)
	ListHistories(ctx context.Context, userID string, page domain.Page) (*domain.PagedResult[domain.GachaHistory], error)
	ListItems(ctx context.Context, userID string) ([]domain.GachaHistory, error)
	Stats(ctx context.Context, userID string) (*domain.UserStats, error)

	// Admin operations
	List(ctx context.Context, search string, page domain.Page) (*domain.PagedResult[domain.UserSummary], error)
	Detail(ctx context.Context, userID string) (*domain.UserDetail, error)
}

type service struct {
	repo  repository.User
	known *knownUsers
}

// NewService creates a new user service
func NewService(repo repository.User) Service {
	return &service{
		repo:  repo,
		known: newKnownUsers(UserCacheSize, UserCacheTTL),
	}
}

// Register creates the user or refreshes the stored LINE profile
func (s *service) Register(ctx context.Context, profile domain.UserProfile) (*domain.User, error) {
	if profile.UserID == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}

	u, err := s.repo.UpsertUser(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgRegisterFailed, err)
	}
	s.known.Add(u.UserID)

	logger.FromContext(ctx).Info(LogMsgUserRegistered, "user_id", u.UserID)
	return u, nil
}

func (s *service) Get(ctx context.Context, userID string) (*domain.User, error) {
	u, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.known.Forget(userID)
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgGetUserFailed, err)
	}
	s.known.Add(u.UserID)
	return u, nil
}

// ensureExists skips the query for recently seen users
func (s *service) ensureExists(ctx context.Context, userID string) error {
	if s.known.Has(userID) {
		return nil
	}
	_, err := s.Get(ctx, userID)
	return err
}

func (s *service) ListHistories(ctx context.Context, userID string, page domain.Page) (*domain.PagedResult[domain.GachaHistory], error) {
	if err := s.ensureExists(ctx, userID); err != nil {
		return nil, err
	}

	page = page.Normalize()
	rows, total, err := s.repo.ListGachaHistories(ctx, userID, page)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgListHistoriesFailed, err)
	}
	return &domain.PagedResult[domain.GachaHistory]{
		Items:      nonNil(rows),
		Pagination: domain.NewPagination(page, total),
	}, nil
}

// ListItems returns every prize the user has won, newest first
func (s *service) ListItems(ctx context.Context, userID string) ([]domain.GachaHistory, error) {
	if err := s.ensureExists(ctx, userID); err != nil {
		return nil, err
	}
	rows, err := s.repo.ListWonItems(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgListItemsFailed, err)
	}
	return nonNil(rows), nil
}

func (s *service) Stats(ctx context.Context, userID string) (*domain.UserStats, error) {
	if err := s.ensureExists(ctx, userID); err != nil {
		return nil, err
	}
	stats, err := s.repo.GetUserStats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGetStatsFailed, err)
	}
	return stats, nil
}

func (s *service) List(ctx context.Context, search string, page domain.Page) (*domain.PagedResult[domain.UserSummary], error) {
	page = page.Normalize()
	rows, total, err := s.repo.ListUsers(ctx, search, page)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgListUsersFailed, err)
	}
	return &domain.PagedResult[domain.UserSummary]{
		Items:      nonNil(rows),
		Pagination: domain.NewPagination(page, total),
	}, nil
}

// Detail gathers the profile, stats and recent activity for the admin console
func (s *service) Detail(ctx context.Context, userID string) (*domain.UserDetail, error) {
	u, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats, err := s.repo.GetUserStats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGetStatsFailed, err)
	}
	histories, _, err := s.repo.ListGachaHistories(ctx, userID, domain.Page{Page: 1, Limit: domain.RecentHistoryLimit})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgListHistoriesFailed, err)
	}
	points, err := s.repo.ListPointHistories(ctx, userID, domain.RecentHistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgListPointsFailed, err)
	}

	return &domain.UserDetail{
		User:         *u,
		Stats:        *stats,
		GachaHistory: nonNil(histories),
		PointHistory: nonNil(points),
	}, nil
}

func nonNil[T any](rows []T) []T {
	if rows == nil {
		return []T{}
	}
	return rows
}
