package prize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GachaLab_Go/internal/poker"
	"github.com/osse101/GachaLab_Go/internal/utils"
)

var normalWeights = Weights{First: 1, Second: 2, Third: 5, Fourth: 10, Fifth: 20, Loser: 62}

func TestSimulate_MatchesConfiguredProportions(t *testing.T) {
	res := Simulate(normalWeights, 100000, utils.NewSeededSource(42))

	assert.Equal(t, 100000, res.Iterations)
	assert.Equal(t, 100, res.TotalWeight)

	sum := 0
	for _, tier := range AllTiers {
		sum += res.Results[tier]
		assert.InDelta(t, res.ExpectedRates[tier], res.ActualRates[tier], 1.0, tier)
	}
	assert.Equal(t, 100000, sum)

	require.NotNil(t, res.ChiSquare)
	assert.Equal(t, 5, res.ChiSquare.DegreesOfFreedom)
	assert.Greater(t, res.ChiSquare.PValue, 0.001)
}

func TestSimulate_UsesProductionSampler(t *testing.T) {
	const seed = 20240601
	const n = 25000

	res := Simulate(normalWeights, n, utils.NewSeededSource(seed))

	manual := make(map[Tier]int)
	src := utils.NewSeededSource(seed)
	for i := 0; i < n; i++ {
		manual[ResolveTierByWeight(normalWeights, src)]++
	}

	for _, tier := range AllTiers {
		assert.Equal(t, manual[tier], res.Results[tier], tier)
	}
}

func TestSimulate_RowsFollowTierOrder(t *testing.T) {
	res := Simulate(normalWeights, 1000, utils.NewSeededSource(1))

	require.Len(t, res.Rows, len(AllTiers))
	for i, row := range res.Rows {
		assert.Equal(t, AllTiers[i], row.Tier)
		assert.Equal(t, res.Results[row.Tier], row.Count)
		assert.LessOrEqual(t, row.Interval.Low, row.ActualRate)
		assert.GreaterOrEqual(t, row.Interval.High, row.ActualRate)
	}
}

func TestSimulate_AllZeroWeights(t *testing.T) {
	res := Simulate(Weights{}, 500, utils.NewSeededSource(1))

	assert.Equal(t, 500, res.Results[Loser])
	assert.InDelta(t, 100.0, res.ActualRates[Loser], 1e-9)
	assert.Zero(t, res.ExpectedRates[Loser])
	assert.Nil(t, res.ChiSquare)
}

func TestSimulate_NoIterations(t *testing.T) {
	res := Simulate(normalWeights, 0, utils.NewSeededSource(1))

	assert.Zero(t, res.Iterations)
	for _, tier := range AllTiers {
		assert.Zero(t, res.Results[tier])
		assert.Zero(t, res.ActualRates[tier])
	}
	assert.Nil(t, res.ChiSquare)

	assert.Zero(t, Simulate(normalWeights, -5, utils.NewSeededSource(1)).Iterations)
}

func TestSimulate_DetectsBiasedSource(t *testing.T) {
	res := Simulate(normalWeights, 10000, fixed(0))

	assert.Equal(t, 10000, res.Results[FirstPrize])
	require.NotNil(t, res.ChiSquare)
	assert.Less(t, res.ChiSquare.PValue, 1e-6)
	assert.False(t, res.Rows[0].WithinInterval)
}

func TestSimulate_SingleWeightedTierHasNoFitTest(t *testing.T) {
	res := Simulate(Weights{Loser: 1}, 100, utils.NewSeededSource(1))
	assert.Equal(t, 100, res.Results[Loser])
	assert.Nil(t, res.ChiSquare)
}

func TestSimulateHands(t *testing.T) {
	res := SimulateHands(DefaultTierHands(), 5000, utils.NewSeededSource(5))

	assert.Equal(t, 5000, res.Iterations)

	handTotal := 0
	for _, c := range res.HandCounts {
		handTotal += c
	}
	tierTotal := 0
	for _, c := range res.TierCounts {
		tierTotal += c
	}
	assert.Equal(t, 5000, handTotal)
	assert.Equal(t, 5000, tierTotal)

	assert.Equal(t, res.HandCounts[poker.HighCard], res.TierCounts[Loser])
	assert.Equal(t, res.HandCounts[poker.OnePair], res.TierCounts[FifthPrize])
	assert.Greater(t, res.HandRates[poker.OnePair], res.HandRates[poker.FullHouse])
}

func TestSummarize_BatchedRunsMatchSingleRun(t *testing.T) {
	const seed = 7
	single := Simulate(normalWeights, 3000, utils.NewSeededSource(seed))

	src := utils.NewSeededSource(seed)
	merged := make(map[Tier]int)
	for i := 0; i < 3; i++ {
		batch := Simulate(normalWeights, 1000, src)
		for tier, c := range batch.Results {
			merged[tier] += c
		}
	}

	assert.Equal(t, single, Summarize(normalWeights, merged, 3000))
}

func TestSummarize_FillsMissingTiers(t *testing.T) {
	res := Summarize(normalWeights, map[Tier]int{Loser: 10}, 10)

	assert.Len(t, res.Rows, len(AllTiers))
	assert.Equal(t, 0, res.Results[FirstPrize])
	assert.Equal(t, 100.0, res.ActualRates[Loser])
}
