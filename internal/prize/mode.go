package prize

import (
	"github.com/osse101/GachaLab_Go/internal/poker"
	"github.com/osse101/GachaLab_Go/internal/utils"
)

// Mode selects how a gacha turns randomness into a tier.
// It is either PokerEvaluated or WeightSampled.
type Mode interface {
	isMode()
}

// PokerEvaluated deals seven cards and maps the best hand onto a tier
type PokerEvaluated struct {
	Hands TierHands
}

// WeightSampled draws a tier directly from the weight table
type WeightSampled struct {
	Weights Weights
}

func (PokerEvaluated) isMode() {}
func (WeightSampled) isMode()  {}

// PokerOutcome is the card breakdown of a poker-mode draw
type PokerOutcome struct {
	Deal      poker.Deal     `json:"deal"`
	Hand      poker.HandRank `json:"hand_rank"`
	HandName  string         `json:"hand_name"`
	BestCards []poker.Card   `json:"best_cards"`
}

// Outcome is the result of resolving one draw. Poker is nil for weighted draws.
type Outcome struct {
	Tier  Tier          `json:"tier"`
	Poker *PokerOutcome `json:"poker,omitempty"`
}

// Resolve produces a tier for one draw under mode. It has no side effects
// beyond consuming randomness from src. A nil or unknown mode loses.
func Resolve(mode Mode, src utils.RandomSource) Outcome {
	switch m := mode.(type) {
	case PokerEvaluated:
		deal := poker.NewDeal(src)
		hand := poker.EvaluateHand(deal.Cards)
		return Outcome{
			Tier: ResolveTierFromHand(hand, m.Hands),
			Poker: &PokerOutcome{
				Deal:      deal,
				Hand:      hand,
				HandName:  poker.HandName(hand),
				BestCards: poker.BestHandCards(deal.Cards),
			},
		}
	case WeightSampled:
		return Outcome{Tier: ResolveTierByWeight(m.Weights, src)}
	default:
		return Outcome{Tier: Loser}
	}
}
