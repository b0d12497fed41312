package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/GachaLab_Go/internal/catalog"
	"github.com/osse101/GachaLab_Go/internal/config"
	"github.com/osse101/GachaLab_Go/internal/gacha"
	"github.com/osse101/GachaLab_Go/internal/line"
	"github.com/osse101/GachaLab_Go/internal/payment"
	"github.com/osse101/GachaLab_Go/internal/points"
	"github.com/osse101/GachaLab_Go/internal/repository"
	"github.com/osse101/GachaLab_Go/internal/stats"
	"github.com/osse101/GachaLab_Go/internal/user"
	"github.com/osse101/GachaLab_Go/internal/utils"
)

// Services holds the application services
type Services struct {
	Gacha   gacha.Service
	Points  points.Service
	Users   user.Service
	Stats   stats.Service
	Catalog catalog.Service
	Line    *line.Service
}

// RepositorySet is the persistence the services are built on
type RepositorySet struct {
	Gacha   repository.Gacha
	Catalog repository.Catalog
	Points  repository.Points
	Users   repository.User
	Stats   repository.Stats
}

// Set returns the repositories viewed through their interfaces
func (r *Repositories) Set() RepositorySet {
	return RepositorySet{
		Gacha:   r.Gacha,
		Catalog: r.Gacha,
		Points:  r.Points,
		Users:   r.Users,
		Stats:   r.Stats,
	}
}

// InitializeServices wires the services from configuration and repositories.
// gateway and replier are built from cfg when nil.
func InitializeServices(cfg *config.Config, repos RepositorySet, gateway payment.Gateway, replier line.Replier) (*Services, error) {
	var gachaOpts []gacha.Option
	if cfg.RandomSeed != 0 {
		slog.Warn(LogMsgSeededRandomSource, "seed", cfg.RandomSeed)
		gachaOpts = append(gachaOpts, gacha.WithRandomSource(utils.NewSeededSource(cfg.RandomSeed)))
	}

	if gateway == nil {
		gateway = payment.NewStripeGateway(payment.StripeConfig{
			SecretKey:     cfg.StripeSecretKey,
			WebhookSecret: cfg.StripeWebhookSecret,
		})
	}

	if replier == nil {
		if cfg.LineChannelToken == "" {
			slog.Warn(LogMsgLineReplyDisabled)
			replier = noopReplier{}
		} else {
			r, err := line.NewMessagingReplier(cfg.LineChannelToken, "")
			if err != nil {
				return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateLine, err)
			}
			replier = r
		}
	}

	gachaSvc := gacha.NewService(repos.Gacha, gachaOpts...)

	return &Services{
		Gacha:   gachaSvc,
		Points:  points.NewService(repos.Points, gateway),
		Users:   user.NewService(repos.Users),
		Stats:   stats.NewService(repos.Stats, stats.WithLocation(cfg.TimeZone)),
		Catalog: catalog.NewService(repos.Catalog, gachaSvc),
		Line: line.NewService(line.Config{
			ChannelSecret: cfg.LineChannelSecret,
			AdminKeyword:  cfg.AdminKeyword,
			AdminURL:      cfg.AdminURL,
			BaseURL:       cfg.BaseURL,
		}, replier),
	}, nil
}

type noopReplier struct{}

func (noopReplier) ReplyText(context.Context, string, string) error { return nil }
