package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/osse101/GachaLab_Go/internal/poker"
	"github.com/osse101/GachaLab_Go/internal/prize"
)

// DrawMode is the stored form of a gacha's prize.Mode
type DrawMode string

const (
	DrawModePoker    DrawMode = "poker"
	DrawModeWeighted DrawMode = "weighted"
)

// Valid reports whether m is a known draw mode
func (m DrawMode) Valid() bool {
	return m == DrawModePoker || m == DrawModeWeighted
}

// GachaType is an admin-configured gacha machine
type GachaType struct {
	ID          string          `json:"id" db:"id"`
	Name        string          `json:"name" db:"name"`
	Description *string         `json:"description,omitempty" db:"description"`
	DrawMode    DrawMode        `json:"draw_mode" db:"draw_mode"`
	PointCost   int             `json:"point_cost" db:"point_cost"`
	IsActive    bool            `json:"is_active" db:"is_active"`
	StartAt     *time.Time      `json:"start_at,omitempty" db:"start_at"`
	EndAt       *time.Time      `json:"end_at,omitempty" db:"end_at"`
	Weights     prize.Weights   `json:"weights"`
	Hands       prize.TierHands `json:"hands"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at" db:"updated_at"`
}

// Clone returns a deep copy of g
func (g *GachaType) Clone() *GachaType {
	c := *g
	c.Hands = g.Hands.Clone()
	if g.Description != nil {
		d := *g.Description
		c.Description = &d
	}
	if g.StartAt != nil {
		t := *g.StartAt
		c.StartAt = &t
	}
	if g.EndAt != nil {
		t := *g.EndAt
		c.EndAt = &t
	}
	return &c
}

// Mode returns the resolution strategy for this gacha
func (g *GachaType) Mode() prize.Mode {
	switch g.DrawMode {
	case DrawModePoker:
		return prize.PokerEvaluated{Hands: g.Hands}
	default:
		return prize.WeightSampled{Weights: g.Weights}
	}
}

// IsAvailable reports whether the gacha is active and inside its window at now
func (g *GachaType) IsAvailable(now time.Time) bool {
	if !g.IsActive {
		return false
	}
	if g.StartAt != nil && now.Before(*g.StartAt) {
		return false
	}
	if g.EndAt != nil && now.After(*g.EndAt) {
		return false
	}
	return true
}

// IsFree reports whether drawing costs nothing
func (g *GachaType) IsFree() bool {
	return g.PointCost <= 0
}

// GachaItem is a prize that can be won. A nil GachaTypeID means any gacha may award it.
type GachaItem struct {
	ID          int64      `json:"id" db:"id"`
	Name        string     `json:"name" db:"name"`
	Rarity      prize.Tier `json:"rarity" db:"rarity"`
	VideoURL    *string    `json:"video_url,omitempty" db:"video_url"`
	GachaTypeID *string    `json:"gacha_type_id,omitempty" db:"gacha_type_id"`
	IsActive    bool       `json:"is_active" db:"is_active"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

// ItemFilter narrows admin item listings. AnyGachaOnly selects items with no gacha type.
type ItemFilter struct {
	Rarity       *prize.Tier
	GachaTypeID  *string
	AnyGachaOnly bool
	IsActive     *bool
	Page         Page
}

// GachaHistory records one completed draw
type GachaHistory struct {
	ID            uuid.UUID       `json:"id" db:"id"`
	UserID        string          `json:"user_id" db:"user_id"`
	GachaTypeID   string          `json:"gacha_type_id" db:"gacha_type_id"`
	GachaTypeName string          `json:"gacha_type_name,omitempty"`
	ItemID        int64           `json:"item_id" db:"item_id"`
	Item          *GachaItem      `json:"item,omitempty"`
	Tier          prize.Tier      `json:"tier" db:"tier"`
	HandRank      *poker.HandRank `json:"hand_rank,omitempty" db:"hand_rank"`
	Cards         []poker.Card    `json:"cards,omitempty" db:"cards"`
	PointsSpent   int             `json:"points_spent" db:"points_spent"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
}

// DrawResult is returned to the player after a draw
type DrawResult struct {
	HistoryID    uuid.UUID           `json:"history_id"`
	GachaTypeID  string              `json:"gacha_type_id"`
	Item         GachaItem           `json:"item"`
	Tier         prize.Tier          `json:"tier"`
	TierLabel    string              `json:"tier_label"`
	Poker        *prize.PokerOutcome `json:"poker,omitempty"`
	PointsSpent  int                 `json:"points_spent"`
	BalanceAfter int                 `json:"balance_after"`
	Timestamp    time.Time           `json:"timestamp"`
}

// GachaSimulation is the admin simulator response
type GachaSimulation struct {
	GachaTypeID   string                      `json:"gacha_type_id"`
	GachaTypeName string                      `json:"gacha_type_name"`
	DrawMode      DrawMode                    `json:"draw_mode"`
	Weighted      prize.SimulationResult      `json:"weighted"`
	Hands         *prize.HandSimulationResult `json:"hands,omitempty"`
}
