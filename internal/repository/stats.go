package repository

import (
	"context"
	"time"

	"github.com/osse101/GachaLab_Go/internal/domain"
	"github.com/osse101/GachaLab_Go/internal/prize"
)

// Stats defines aggregate queries for the admin dashboard.
// All ranges are inclusive of start and end.
type Stats interface {
	CountUsers(ctx context.Context) (int, error)
	CountDraws(ctx context.Context, start, end time.Time) (int, error)
	CountDrawsByGacha(ctx context.Context, start, end time.Time) ([]domain.GachaCount, error)
	CountDrawsByTier(ctx context.Context, start, end time.Time) (map[prize.Tier]int, error)
	CountDrawsByDay(ctx context.Context, start, end time.Time, limit int) ([]domain.DailyCount, error)
	SumPointsPurchased(ctx context.Context, start, end time.Time) (int, error)
}
