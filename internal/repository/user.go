package repository

import (
	"context"

	"github.com/osse101/GachaLab_Go/internal/domain"
)

// User defines the interface for user persistence
type User interface {
	UpsertUser(ctx context.Context, profile domain.UserProfile) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	ListUsers(ctx context.Context, search string, page domain.Page) ([]domain.UserSummary, int, error)
	GetUserStats(ctx context.Context, userID string) (*domain.UserStats, error)
	ListGachaHistories(ctx context.Context, userID string, page domain.Page) ([]domain.GachaHistory, int, error)
	ListWonItems(ctx context.Context, userID string) ([]domain.GachaHistory, error)
	ListPointHistories(ctx context.Context, userID string, limit int) ([]domain.PointHistory, error)
}
