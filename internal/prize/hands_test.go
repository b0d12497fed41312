package prize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GachaLab_Go/internal/poker"
)

func TestResolveTierFromHand(t *testing.T) {
	hands := DefaultTierHands()

	tests := []struct {
		hand poker.HandRank
		want Tier
	}{
		{poker.RoyalFlush, FirstPrize},
		{poker.StraightFlush, FirstPrize},
		{poker.FourOfAKind, FirstPrize},
		{poker.FullHouse, SecondPrize},
		{poker.Flush, SecondPrize},
		{poker.Straight, ThirdPrize},
		{poker.ThreeOfAKind, ThirdPrize},
		{poker.TwoPair, FourthPrize},
		{poker.OnePair, FifthPrize},
		{poker.HighCard, Loser},
	}

	for _, tt := range tests {
		t.Run(tt.hand.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveTierFromHand(tt.hand, hands))
		})
	}
}

func TestResolveTierFromHand_StrongestTierWinsOnOverlap(t *testing.T) {
	hands := TierHands{
		First: []poker.HandRank{poker.FullHouse},
		Third: []poker.HandRank{poker.Straight, poker.FullHouse},
	}

	for i := 0; i < 10; i++ {
		assert.Equal(t, FirstPrize, ResolveTierFromHand(poker.FullHouse, hands))
	}
	assert.Equal(t, ThirdPrize, ResolveTierFromHand(poker.Straight, hands))
	assert.Equal(t, []poker.HandRank{poker.FullHouse}, hands.Overlaps())
}

func TestResolveTierFromHand_UnclaimedHandsLose(t *testing.T) {
	hands := TierHands{
		First:  []poker.HandRank{poker.RoyalFlush},
		Second: []poker.HandRank{poker.StraightFlush},
		Third:  []poker.HandRank{poker.FourOfAKind},
		Fourth: []poker.HandRank{poker.FullHouse},
		Fifth:  []poker.HandRank{poker.Flush},
	}

	assert.Equal(t, Loser, ResolveTierFromHand(poker.Straight, hands))
	assert.Equal(t, Loser, ResolveTierFromHand(poker.OnePair, hands))
	assert.Equal(t, FifthPrize, ResolveTierFromHand(poker.Flush, hands))
	assert.Equal(t, []poker.HandRank{
		poker.HighCard, poker.OnePair, poker.TwoPair, poker.ThreeOfAKind, poker.Straight,
	}, hands.Unassigned())
}

func TestResolveTierFromHand_EmptyConfiguration(t *testing.T) {
	for _, h := range poker.AllHandRanks() {
		assert.Equal(t, Loser, ResolveTierFromHand(h, TierHands{}), h.String())
	}
	assert.Len(t, TierHands{}.Unassigned(), len(poker.AllHandRanks()))
}

func TestTierHands_Validate(t *testing.T) {
	assert.NoError(t, DefaultTierHands().Validate())
	assert.NoError(t, TierHands{}.Validate())

	dup := TierHands{Second: []poker.HandRank{poker.Flush, poker.Flush}}
	assert.ErrorContains(t, dup.Validate(), ErrMsgDuplicateInTier)

	bad := TierHands{Fifth: []poker.HandRank{poker.HandRank(11)}}
	assert.ErrorContains(t, bad.Validate(), poker.ErrMsgUnknownHandRank)
}

func TestTierHands_ForLoserIsEmpty(t *testing.T) {
	assert.Nil(t, DefaultTierHands().For(Loser))
}

func TestTierHands_CloneSharesNoBacking(t *testing.T) {
	orig := DefaultTierHands()
	c := orig.Clone()
	require.Equal(t, orig, c)

	c.First[0] = poker.HighCard
	assert.Equal(t, DefaultTierHands().First, orig.First)
}
