package prize

import (
	"fmt"
	"strings"
)

// Tier is a reward rarity. The string form is what is stored and sent over the wire.
type Tier string

const (
	FirstPrize  Tier = "FIRST_PRIZE"
	SecondPrize Tier = "SECOND_PRIZE"
	ThirdPrize  Tier = "THIRD_PRIZE"
	FourthPrize Tier = "FOURTH_PRIZE"
	FifthPrize  Tier = "FIFTH_PRIZE"
	Loser       Tier = "LOSER"
)

// PrizeTiers lists the winning tiers from strongest to weakest.
// Hand lookup and weight accumulation both walk this order.
var PrizeTiers = [PrizeTierCount]Tier{FirstPrize, SecondPrize, ThirdPrize, FourthPrize, FifthPrize}

// AllTiers is PrizeTiers followed by Loser
var AllTiers = [PrizeTierCount + 1]Tier{FirstPrize, SecondPrize, ThirdPrize, FourthPrize, FifthPrize, Loser}

var tierLabels = map[Tier]string{
	FirstPrize:  "1等",
	SecondPrize: "2等",
	ThirdPrize:  "3等",
	FourthPrize: "4等",
	FifthPrize:  "5等",
	Loser:       "ハズレ",
}

// Valid reports whether t is one of the six defined tiers
func (t Tier) Valid() bool {
	_, ok := tierLabels[t]
	return ok
}

// Label returns the display label shown to players
func (t Tier) Label() string {
	return tierLabels[t]
}

// ParseTier converts a stored tier string into a Tier
func ParseTier(s string) (Tier, error) {
	t := Tier(strings.ToUpper(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%s: %q", ErrMsgUnknownTier, s)
	}
	return t, nil
}
