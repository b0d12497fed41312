package core_bench

import (
	"testing"

	"github.com/osse101/GachaLab_Go/internal/poker"
	"github.com/osse101/GachaLab_Go/internal/prize"
	"github.com/osse101/GachaLab_Go/internal/utils"
)

var (
	sinkHand poker.HandRank
	sinkTier prize.Tier
)

func BenchmarkEvaluateHand(b *testing.B) {
	src := utils.NewSeededSource(3)
	deals := make([]poker.Deal, 1024)
	for i := range deals {
		deals[i] = poker.NewDeal(src)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkHand = poker.EvaluateHand(deals[i%len(deals)].Cards)
	}
}

func BenchmarkNewDeal(b *testing.B) {
	src := utils.NewSeededSource(3)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = poker.NewDeal(src)
	}
}

func BenchmarkResolveTierByWeight(b *testing.B) {
	w := prize.Weights{First: 1, Second: 2, Third: 5, Fourth: 10, Fifth: 20, Loser: 62}
	src := utils.NewSeededSource(3)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkTier = prize.ResolveTierByWeight(w, src)
	}
}

func BenchmarkResolvePokerMode(b *testing.B) {
	mode := prize.PokerEvaluated{Hands: prize.DefaultTierHands()}
	src := utils.NewSeededSource(3)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkTier = prize.Resolve(mode, src).Tier
	}
}

func BenchmarkSimulate100k(b *testing.B) {
	w := prize.Weights{First: 1, Second: 2, Third: 5, Fourth: 10, Fifth: 20, Loser: 62}
	src := utils.NewSeededSource(3)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = prize.Simulate(w, 100000, src)
	}
}
