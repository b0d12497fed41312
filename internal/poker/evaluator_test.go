package poker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GachaLab_Go/internal/utils"
)

// parseCards builds cards from short codes such as "AS", "10H", "2C"
func parseCards(t *testing.T, codes ...string) []Card {
	t.Helper()
	suits := map[byte]Suit{'S': SuitSpade, 'H': SuitHeart, 'D': SuitDiamond, 'C': SuitClub}
	cards := make([]Card, 0, len(codes))
	for _, code := range codes {
		code = strings.ToUpper(code)
		suit, ok := suits[code[len(code)-1]]
		require.True(t, ok, "bad suit in %q", code)
		rank := Rank(code[:len(code)-1])
		_, ok = rankValues[rank]
		require.True(t, ok, "bad rank in %q", code)
		cards = append(cards, Card{Suit: suit, Rank: rank})
	}
	return cards
}

func five(t *testing.T, codes ...string) [HandSize]Card {
	t.Helper()
	cards := parseCards(t, codes...)
	require.Len(t, cards, HandSize)
	var hand [HandSize]Card
	copy(hand[:], cards)
	return hand
}

func TestEvaluateFive(t *testing.T) {
	tests := []struct {
		name  string
		cards []string
		want  HandRank
	}{
		{"royal flush", []string{"10H", "JH", "QH", "KH", "AH"}, RoyalFlush},
		{"straight flush king high", []string{"9C", "10C", "JC", "QC", "KC"}, StraightFlush},
		{"wheel straight flush", []string{"AS", "2S", "3S", "4S", "5S"}, StraightFlush},
		{"wheel straight mixed suits", []string{"AS", "2H", "3S", "4D", "5S"}, Straight},
		{"four of a kind", []string{"KS", "KH", "KD", "KC", "2S"}, FourOfAKind},
		{"full house", []string{"KD", "KS", "KH", "2C", "2D"}, FullHouse},
		{"flush", []string{"2H", "5H", "9H", "JH", "KH"}, Flush},
		{"straight", []string{"5C", "6D", "7H", "8S", "9C"}, Straight},
		{"broadway straight", []string{"10C", "JD", "QH", "KS", "AC"}, Straight},
		{"three of a kind", []string{"7C", "7D", "7H", "2S", "9C"}, ThreeOfAKind},
		{"two pair", []string{"7C", "7D", "9H", "9S", "2C"}, TwoPair},
		{"one pair", []string{"7C", "7D", "9H", "JS", "2C"}, OnePair},
		{"high card", []string{"2C", "5D", "9H", "JS", "KC"}, HighCard},
		{"no wrap-around straight", []string{"QS", "KH", "AD", "2C", "3S"}, HighCard},
		{"duplicate cards still flush", []string{"AS", "AS", "KS", "QS", "JS"}, Flush},
		{"duplicate cards pair", []string{"AS", "AS", "KH", "QS", "JS"}, OnePair},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EvaluateFive(five(t, tt.cards...)))
		})
	}
}

func TestEvaluateFive_PermutationInvariant(t *testing.T) {
	hands := [][]string{
		{"10H", "JH", "QH", "KH", "AH"},
		{"AS", "2S", "3S", "4S", "5S"},
		{"KD", "KS", "KH", "2C", "2D"},
		{"7C", "7D", "9H", "9S", "2C"},
		{"AS", "2H", "3S", "4D", "5S"},
	}

	for _, codes := range hands {
		base := parseCards(t, codes...)
		want := EvaluateFive(five(t, codes...))

		idx := [HandSize]int{0, 1, 2, 3, 4}
		permute(idx[:], 0, func(p []int) {
			var hand [HandSize]Card
			for i, j := range p {
				hand[i] = base[j]
			}
			assert.Equal(t, want, EvaluateFive(hand), "permutation %v of %v", p, codes)
		})
	}
}

func permute(a []int, k int, visit func([]int)) {
	if k == len(a) {
		visit(a)
		return
	}
	for i := k; i < len(a); i++ {
		a[k], a[i] = a[i], a[k]
		permute(a, k+1, visit)
		a[k], a[i] = a[i], a[k]
	}
}

func TestEvaluateHand(t *testing.T) {
	t.Run("wheel straight flush with extra cards", func(t *testing.T) {
		cards := parseCards(t, "AS", "2S", "3S", "4S", "5S", "KD", "9H")
		assert.Equal(t, StraightFlush, EvaluateHand(cards))
	})

	t.Run("royal beats straight flush in the same seven", func(t *testing.T) {
		cards := parseCards(t, "9H", "10H", "JH", "QH", "KH", "AH", "2C")
		assert.Equal(t, RoyalFlush, EvaluateHand(cards))
	})

	t.Run("full house hidden across hole and board", func(t *testing.T) {
		cards := parseCards(t, "KD", "2D", "KS", "KH", "2C", "7S", "9H")
		assert.Equal(t, FullHouse, EvaluateHand(cards))
	})

	t.Run("fewer than five cards", func(t *testing.T) {
		assert.Equal(t, HighCard, EvaluateHand(parseCards(t, "AS", "AH", "AD", "AC")))
		assert.Equal(t, HighCard, EvaluateHand(nil))
	})

	t.Run("exactly five cards", func(t *testing.T) {
		assert.Equal(t, Flush, EvaluateHand(parseCards(t, "2H", "5H", "9H", "JH", "KH")))
	})
}

func TestEvaluateHand_BestOfSeven(t *testing.T) {
	src := utils.NewSeededSource(7)

	for round := 0; round < 500; round++ {
		deal := NewDeal(src)
		best := EvaluateHand(deal.Cards)

		matched := false
		idx := []int{0, 1, 2, 3, 4}
		subsets := 0
		for {
			var hand [HandSize]Card
			for i, j := range idx {
				hand[i] = deal.Cards[j]
			}
			rank := EvaluateFive(hand)
			require.LessOrEqual(t, rank, best, "subset %v outranks best for %v", idx, deal.Cards)
			if rank == best {
				matched = true
			}
			subsets++
			if !nextCombination(idx, DealSize) {
				break
			}
		}
		assert.Equal(t, 21, subsets)
		assert.True(t, matched, "no subset reaches %s for %v", best, deal.Cards)
	}
}

func TestBestHandCards(t *testing.T) {
	cards := parseCards(t, "2C", "AS", "2S", "3S", "4S", "5S", "9H")

	best := BestHandCards(cards)
	require.Len(t, best, HandSize)

	var hand [HandSize]Card
	copy(hand[:], best)
	assert.Equal(t, StraightFlush, EvaluateFive(hand))
	assert.ElementsMatch(t, parseCards(t, "AS", "2S", "3S", "4S", "5S"), best)

	assert.Nil(t, BestHandCards(cards[:4]))
}

func TestBestHandCards_FirstComboOnTies(t *testing.T) {
	cards := parseCards(t, "2C", "5D", "9H", "JS", "KC", "3D", "7H")
	assert.Equal(t, cards[:HandSize], BestHandCards(cards))
}

func TestNextCombination(t *testing.T) {
	idx := []int{0, 1, 2}
	count := 1
	for nextCombination(idx, 5) {
		count++
	}
	assert.Equal(t, 10, count)
	assert.Equal(t, []int{2, 3, 4}, idx)
}
