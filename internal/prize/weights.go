package prize

import (
	"fmt"

	"github.com/osse101/GachaLab_Go/internal/utils"
)

// Weights is the relative draw weight of each tier for weight-sampled gachas
type Weights struct {
	First  int `json:"first_prize_weight" yaml:"first_prize_weight" validate:"gte=0"`
	Second int `json:"second_prize_weight" yaml:"second_prize_weight" validate:"gte=0"`
	Third  int `json:"third_prize_weight" yaml:"third_prize_weight" validate:"gte=0"`
	Fourth int `json:"fourth_prize_weight" yaml:"fourth_prize_weight" validate:"gte=0"`
	Fifth  int `json:"fifth_prize_weight" yaml:"fifth_prize_weight" validate:"gte=0"`
	Loser  int `json:"loser_weight" yaml:"loser_weight" validate:"gte=0"`
}

// For returns the weight of t, 0 for unknown tiers
func (w Weights) For(t Tier) int {
	switch t {
	case FirstPrize:
		return w.First
	case SecondPrize:
		return w.Second
	case ThirdPrize:
		return w.Third
	case FourthPrize:
		return w.Fourth
	case FifthPrize:
		return w.Fifth
	case Loser:
		return w.Loser
	default:
		return 0
	}
}

// Total sums all six weights
func (w Weights) Total() int {
	total := 0
	for _, t := range AllTiers {
		total += w.For(t)
	}
	return total
}

// Validate rejects negative weights. A zero total is valid and always loses.
func (w Weights) Validate() error {
	for _, t := range AllTiers {
		if w.For(t) < 0 {
			return fmt.Errorf("%s: %s", t, ErrMsgNegativeWeight)
		}
	}
	return nil
}

// ResolveTierByWeight samples one tier. r is drawn in [0, total) and the first
// tier whose running sum exceeds r wins, accumulating in AllTiers order.
// A zero total returns Loser without consuming randomness.
func ResolveTierByWeight(w Weights, src utils.RandomSource) Tier {
	total := w.Total()
	if total <= 0 {
		return Loser
	}

	r := src.Float64() * float64(total)
	cumulative := 0
	for _, t := range AllTiers {
		cumulative += w.For(t)
		if r < float64(cumulative) {
			return t
		}
	}
	return Loser
}

// ExpectedRates returns weight/total*100 for each tier in the same order the
// sampler accumulates. All rates are 0 when the total is 0.
func ExpectedRates(w Weights) map[Tier]float64 {
	total := float64(w.Total())
	rates := make(map[Tier]float64, len(AllTiers))
	for _, t := range AllTiers {
		if total <= 0 {
			rates[t] = 0
			continue
		}
		rates[t] = utils.Percent(float64(w.For(t)), total)
	}
	return rates
}
