package poker

import (
	"fmt"
	"strings"
)

// HandRank is a poker hand category. Values are ordered weakest to strongest,
// so plain integer comparison gives the category order.
type HandRank int

const (
	HighCard HandRank = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

var handKeys = [...]string{
	HighCard:      "high_card",
	OnePair:       "one_pair",
	TwoPair:       "two_pair",
	ThreeOfAKind:  "three_of_a_kind",
	Straight:      "straight",
	Flush:         "flush",
	FullHouse:     "full_house",
	FourOfAKind:   "four_of_a_kind",
	StraightFlush: "straight_flush",
	RoyalFlush:    "royal_flush",
}

var handNames = [...]string{
	HighCard:      "ハイカード",
	OnePair:       "ワンペア",
	TwoPair:       "ツーペア",
	ThreeOfAKind:  "スリーカード",
	Straight:      "ストレート",
	Flush:         "フラッシュ",
	FullHouse:     "フルハウス",
	FourOfAKind:   "フォーカード",
	StraightFlush: "ストレートフラッシュ",
	RoyalFlush:    "ロイヤルフラッシュ",
}

// AllHandRanks returns every hand rank, weakest first
func AllHandRanks() []HandRank {
	ranks := make([]HandRank, 0, len(handKeys))
	for r := HighCard; r <= RoyalFlush; r++ {
		ranks = append(ranks, r)
	}
	return ranks
}

// Valid reports whether h is one of the 10 defined categories
func (h HandRank) Valid() bool {
	return h >= HighCard && h <= RoyalFlush
}

// String returns the snake_case key used on the wire and in storage
func (h HandRank) String() string {
	if !h.Valid() {
		return fmt.Sprintf("hand_rank(%d)", int(h))
	}
	return handKeys[h]
}

// Compare returns -1 if h is weaker than other, 0 if equal, 1 if stronger
func (h HandRank) Compare(other HandRank) int {
	switch {
	case h < other:
		return -1
	case h > other:
		return 1
	default:
		return 0
	}
}

// HandName returns the display name shown to players
func HandName(h HandRank) string {
	if !h.Valid() {
		return ""
	}
	return handNames[h]
}

// ParseHandRank converts a snake_case key into a HandRank
func ParseHandRank(s string) (HandRank, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, k := range handKeys {
		if k == key {
			return HandRank(i), nil
		}
	}
	return HighCard, fmt.Errorf("%s: %q", ErrMsgUnknownHandRank, s)
}

// MarshalText implements encoding.TextMarshaler
func (h HandRank) MarshalText() ([]byte, error) {
	if !h.Valid() {
		return nil, fmt.Errorf("%s: %d", ErrMsgUnknownHandRank, int(h))
	}
	return []byte(h.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (h *HandRank) UnmarshalText(text []byte) error {
	parsed, err := ParseHandRank(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}
