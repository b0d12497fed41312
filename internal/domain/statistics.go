package domain

import (
	"time"

	"github.com/osse101/GachaLab_Go/internal/prize"
)

// StatsPeriod selects the reporting window for admin statistics
type StatsPeriod string

const (
	PeriodDay    StatsPeriod = "day"
	PeriodMonth  StatsPeriod = "month"
	PeriodCustom StatsPeriod = "custom"
)

// UserStats summarises a single user's draws
type UserStats struct {
	TotalDraws  int                `json:"total_gacha_count"`
	RarityStats map[prize.Tier]int `json:"rarity_stats"`
}

// GachaCount is the number of draws of one gacha type
type GachaCount struct {
	GachaTypeID   string `json:"gacha_type_id"`
	GachaTypeName string `json:"gacha_type_name"`
	Count         int    `json:"count"`
}

// DailyCount is the number of draws on one day
type DailyCount struct {
	Date  time.Time `json:"date"`
	Count int       `json:"count"`
}

// Statistics is the admin dashboard summary for a period
type Statistics struct {
	Period          StatsPeriod        `json:"period"`
	StartDate       time.Time          `json:"start_date"`
	EndDate         time.Time          `json:"end_date"`
	TotalUsers      int                `json:"total_users"`
	TotalDraws      int                `json:"total_gacha_count"`
	PointsPurchased int                `json:"points_purchased"`
	GachaStats      []GachaCount       `json:"gacha_stats"`
	RarityStats     map[prize.Tier]int `json:"rarity_stats"`
	DailyStats      []DailyCount       `json:"daily_stats"`
}
