package prize

import (
	"fmt"
	"slices"

	"github.com/osse101/GachaLab_Go/internal/poker"
)

// TierHands assigns poker hand ranks to each winning tier.
// The loser tier has no set of its own: every hand no tier claims is a loser.
type TierHands struct {
	First  []poker.HandRank `json:"first_prize_hands" yaml:"first_prize_hands"`
	Second []poker.HandRank `json:"second_prize_hands" yaml:"second_prize_hands"`
	Third  []poker.HandRank `json:"third_prize_hands" yaml:"third_prize_hands"`
	Fourth []poker.HandRank `json:"fourth_prize_hands" yaml:"fourth_prize_hands"`
	Fifth  []poker.HandRank `json:"fifth_prize_hands" yaml:"fifth_prize_hands"`
}

// Clone returns a copy that shares no backing arrays with h
func (h TierHands) Clone() TierHands {
	return TierHands{
		First:  slices.Clone(h.First),
		Second: slices.Clone(h.Second),
		Third:  slices.Clone(h.Third),
		Fourth: slices.Clone(h.Fourth),
		Fifth:  slices.Clone(h.Fifth),
	}
}

// For returns the hands assigned to t. Loser and unknown tiers have none.
func (h TierHands) For(t Tier) []poker.HandRank {
	switch t {
	case FirstPrize:
		return h.First
	case SecondPrize:
		return h.Second
	case ThirdPrize:
		return h.Third
	case FourthPrize:
		return h.Fourth
	case FifthPrize:
		return h.Fifth
	default:
		return nil
	}
}

// Unassigned returns the hands no tier claims, weakest first.
// These are the hands that resolve to Loser.
func (h TierHands) Unassigned() []poker.HandRank {
	var out []poker.HandRank
	for _, rank := range poker.AllHandRanks() {
		if h.claimedBy(rank) == Loser {
			out = append(out, rank)
		}
	}
	return out
}

// Overlaps returns hands claimed by more than one tier. Resolution still works
// for these (strongest tier wins) but admins usually want to know.
func (h TierHands) Overlaps() []poker.HandRank {
	var out []poker.HandRank
	for _, rank := range poker.AllHandRanks() {
		claims := 0
		for _, t := range PrizeTiers {
			if slices.Contains(h.For(t), rank) {
				claims++
			}
		}
		if claims > 1 {
			out = append(out, rank)
		}
	}
	return out
}

// Validate rejects out-of-range hand ranks and repeats within one tier
func (h TierHands) Validate() error {
	for _, t := range PrizeTiers {
		seen := make(map[poker.HandRank]bool)
		for _, rank := range h.For(t) {
			if !rank.Valid() {
				return fmt.Errorf("%s: %s: %d", t, poker.ErrMsgUnknownHandRank, int(rank))
			}
			if seen[rank] {
				return fmt.Errorf("%s: %s: %s", t, ErrMsgDuplicateInTier, rank)
			}
			seen[rank] = true
		}
	}
	return nil
}

func (h TierHands) claimedBy(hand poker.HandRank) Tier {
	for _, t := range PrizeTiers {
		if slices.Contains(h.For(t), hand) {
			return t
		}
	}
	return Loser
}

// ResolveTierFromHand walks the tiers strongest first and returns the first one
// whose set contains hand. A hand claimed by no tier is a Loser.
func ResolveTierFromHand(hand poker.HandRank, hands TierHands) Tier {
	return hands.claimedBy(hand)
}

// DefaultTierHands is the suggested assignment offered when an admin creates a
// new poker gacha. Resolution never falls back to it.
func DefaultTierHands() TierHands {
	return TierHands{
		First:  []poker.HandRank{poker.RoyalFlush, poker.StraightFlush, poker.FourOfAKind},
		Second: []poker.HandRank{poker.FullHouse, poker.Flush},
		Third:  []poker.HandRank{poker.Straight, poker.ThreeOfAKind},
		Fourth: []poker.HandRank{poker.TwoPair},
		Fifth:  []poker.HandRank{poker.OnePair},
	}
}
