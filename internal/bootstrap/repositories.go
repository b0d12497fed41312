package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/GachaLab_Go/internal/database/postgres"
)

// Repositories holds all repository implementations used by the application
type Repositories struct {
	Gacha  *postgres.GachaRepository
	Points *postgres.PointsRepository
	Users  *postgres.UserRepository
	Stats  *postgres.StatsRepository
}

// InitializeRepositories creates all repository implementations.
// Gacha serves both draws and catalog administration.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Gacha:  postgres.NewGachaRepository(dbPool),
		Points: postgres.NewPointsRepository(dbPool),
		Users:  postgres.NewUserRepository(dbPool),
		Stats:  postgres.NewStatsRepository(dbPool),
	}
}
