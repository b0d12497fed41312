package poker

import (
	"fmt"

	"github.com/osse101/GachaLab_Go/internal/utils"
)

// Suit is one of the four card suits
type Suit string

const (
	SuitSpade   Suit = "spade"
	SuitHeart   Suit = "heart"
	SuitDiamond Suit = "diamond"
	SuitClub    Suit = "club"
)

// Rank is a card face value
type Rank string

const (
	RankAce   Rank = "A"
	RankKing  Rank = "K"
	RankQueen Rank = "Q"
	RankJack  Rank = "J"
	RankTen   Rank = "10"
	RankNine  Rank = "9"
	RankEight Rank = "8"
	RankSeven Rank = "7"
	RankSix   Rank = "6"
	RankFive  Rank = "5"
	RankFour  Rank = "4"
	RankThree Rank = "3"
	RankTwo   Rank = "2"
)

// Suits lists every suit in generation order
var Suits = []Suit{SuitSpade, SuitHeart, SuitDiamond, SuitClub}

// Ranks lists every rank in generation order
var Ranks = []Rank{
	RankAce, RankKing, RankQueen, RankJack, RankTen, RankNine, RankEight,
	RankSeven, RankSix, RankFive, RankFour, RankThree, RankTwo,
}

var rankValues = map[Rank]int{
	RankAce:   14,
	RankKing:  13,
	RankQueen: 12,
	RankJack:  11,
	RankTen:   10,
	RankNine:  9,
	RankEight: 8,
	RankSeven: 7,
	RankSix:   6,
	RankFive:  5,
	RankFour:  4,
	RankThree: 3,
	RankTwo:   2,
}

var suitSymbols = map[Suit]string{
	SuitSpade:   "♠",
	SuitHeart:   "♥",
	SuitDiamond: "♦",
	SuitClub:    "♣",
}

// value maps a rank to its numeric value with the ace high.
// Panics on a rank outside the 13 defined values.
func (r Rank) value() int {
	v, ok := rankValues[r]
	if !ok {
		panic(fmt.Sprintf("poker: unknown rank %q", string(r)))
	}
	return v
}

// Card is an immutable suit/rank pair
type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

// String renders the card as rank followed by the suit symbol, e.g. "A♠"
func (c Card) String() string {
	return string(c.Rank) + suitSymbols[c.Suit]
}

// GenerateRandomCard draws a suit and a rank independently and uniformly.
// Cards are generated with replacement, so repeated calls may return equal cards.
func GenerateRandomCard(src utils.RandomSource) Card {
	suit := Suits[utils.RandomIndex(src, len(Suits))]
	rank := Ranks[utils.RandomIndex(src, len(Ranks))]
	return Card{Suit: suit, Rank: rank}
}

// Deal is the 7 cards of one poker-mode draw
type Deal struct {
	Cards     []Card `json:"cards"`
	Hole      []Card `json:"hole_cards"`
	Community []Card `json:"community_cards"`
}

// NewDeal generates DealSize independent cards. The first HoleCardCount are the
// player's hole cards and the rest are the community cards.
func NewDeal(src utils.RandomSource) Deal {
	cards := make([]Card, DealSize)
	for i := range cards {
		cards[i] = GenerateRandomCard(src)
	}
	return Deal{
		Cards:     cards,
		Hole:      cards[:HoleCardCount],
		Community: cards[HoleCardCount:],
	}
}
