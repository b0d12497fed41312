package prize

import (
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/osse101/GachaLab_Go/internal/poker"
	"github.com/osse101/GachaLab_Go/internal/utils"
)

// Interval is a closed range of percentages
type Interval struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// TierStat is one row of a simulation report
type TierStat struct {
	Tier         Tier     `json:"tier"`
	Count        int      `json:"count"`
	ActualRate   float64  `json:"actual_rate"`
	ExpectedRate float64  `json:"expected_rate"`
	Interval     Interval `json:"confidence_interval"`
	// WithinInterval is true when ExpectedRate falls inside Interval
	WithinInterval bool `json:"within_interval"`
}

// GoodnessOfFit is a Pearson chi-square test of observed counts against the weights
type GoodnessOfFit struct {
	Statistic        float64 `json:"statistic"`
	DegreesOfFreedom int     `json:"degrees_of_freedom"`
	PValue           float64 `json:"p_value"`
}

// SimulationResult compares observed tier rates with the configured weights
type SimulationResult struct {
	Iterations    int              `json:"iterations"`
	TotalWeight   int              `json:"total_weight"`
	Results       map[Tier]int     `json:"results"`
	ActualRates   map[Tier]float64 `json:"actual_rates"`
	ExpectedRates map[Tier]float64 `json:"expected_rates"`
	Rows          []TierStat       `json:"rows"`
	// ChiSquare is nil when fewer than two tiers have a non-zero weight
	ChiSquare *GoodnessOfFit `json:"chi_square,omitempty"`
}

// Simulate calls ResolveTierByWeight iterations times and tallies the tiers.
// Iterations below 1 produce an empty result with zero actual rates.
func Simulate(w Weights, iterations int, src utils.RandomSource) SimulationResult {
	counts := make(map[Tier]int, len(AllTiers))
	for _, t := range AllTiers {
		counts[t] = 0
	}
	if iterations < 0 {
		iterations = 0
	}

	for i := 0; i < iterations; i++ {
		counts[ResolveTierByWeight(w, src)]++
	}

	return Summarize(w, counts, iterations)
}

// Summarize builds the report for counts tallied over iterations weighted draws.
// Callers that run Simulate in batches merge the Results maps and summarize once.
func Summarize(w Weights, counts map[Tier]int, iterations int) SimulationResult {
	for _, t := range AllTiers {
		if _, ok := counts[t]; !ok {
			counts[t] = 0
		}
	}
	expected := ExpectedRates(w)
	res := SimulationResult{
		Iterations:    iterations,
		TotalWeight:   w.Total(),
		Results:       counts,
		ActualRates:   make(map[Tier]float64, len(AllTiers)),
		ExpectedRates: make(map[Tier]float64, len(AllTiers)),
		Rows:          make([]TierStat, 0, len(AllTiers)),
	}

	for _, t := range AllTiers {
		actual := utils.Percent(float64(counts[t]), float64(iterations))
		lo, hi := clopperPearson(counts[t], iterations, ConfidenceLevel)
		interval := Interval{Low: utils.RoundTo(lo*100, RatePrecision), High: utils.RoundTo(hi*100, RatePrecision)}

		res.ActualRates[t] = actual
		res.ExpectedRates[t] = expected[t]
		res.Rows = append(res.Rows, TierStat{
			Tier:           t,
			Count:          counts[t],
			ActualRate:     utils.RoundTo(actual, RatePrecision),
			ExpectedRate:   utils.RoundTo(expected[t], RatePrecision),
			Interval:       interval,
			WithinInterval: expected[t] >= lo*100 && expected[t] <= hi*100,
		})
	}

	res.ChiSquare = chiSquareFit(w, counts, iterations)
	return res
}

// chiSquareFit skips zero-weight tiers since their expected count is 0
func chiSquareFit(w Weights, counts map[Tier]int, iterations int) *GoodnessOfFit {
	total := float64(w.Total())
	if total <= 0 || iterations == 0 {
		return nil
	}

	var observed, expected []float64
	for _, t := range AllTiers {
		weight := w.For(t)
		if weight <= 0 {
			continue
		}
		observed = append(observed, float64(counts[t]))
		expected = append(expected, float64(iterations)*float64(weight)/total)
	}

	df := len(observed) - 1
	if df < 1 {
		return nil
	}

	statistic := stat.ChiSquare(observed, expected)
	dist := distuv.ChiSquared{K: float64(df)}
	return &GoodnessOfFit{
		Statistic:        statistic,
		DegreesOfFreedom: df,
		PValue:           dist.Survival(statistic),
	}
}

// clopperPearson returns the exact binomial interval for k successes in n trials
func clopperPearson(k, n int, confidence float64) (float64, float64) {
	if n == 0 {
		return 0, 1
	}
	alpha := 1 - confidence

	lo := 0.0
	if k > 0 {
		lo = distuv.Beta{Alpha: float64(k), Beta: float64(n - k + 1)}.Quantile(alpha / 2)
	}
	hi := 1.0
	if k < n {
		hi = distuv.Beta{Alpha: float64(k + 1), Beta: float64(n - k)}.Quantile(1 - alpha/2)
	}
	return lo, hi
}

// HandSimulationResult reports observed hand and tier frequencies for poker gachas
type HandSimulationResult struct {
	Iterations int                        `json:"iterations"`
	HandCounts map[poker.HandRank]int     `json:"hand_counts"`
	HandRates  map[poker.HandRank]float64 `json:"hand_rates"`
	TierCounts map[Tier]int               `json:"tier_counts"`
	TierRates  map[Tier]float64           `json:"tier_rates"`
}

// SimulateHands deals and evaluates iterations hands through the same path as a live draw
func SimulateHands(hands TierHands, iterations int, src utils.RandomSource) HandSimulationResult {
	if iterations < 0 {
		iterations = 0
	}
	res := HandSimulationResult{
		Iterations: iterations,
		HandCounts: make(map[poker.HandRank]int),
		HandRates:  make(map[poker.HandRank]float64),
		TierCounts: make(map[Tier]int, len(AllTiers)),
		TierRates:  make(map[Tier]float64, len(AllTiers)),
	}
	for _, h := range poker.AllHandRanks() {
		res.HandCounts[h] = 0
	}
	for _, t := range AllTiers {
		res.TierCounts[t] = 0
	}

	mode := PokerEvaluated{Hands: hands}
	for i := 0; i < iterations; i++ {
		out := Resolve(mode, src)
		res.TierCounts[out.Tier]++
		res.HandCounts[out.Poker.Hand]++
	}

	for h, c := range res.HandCounts {
		res.HandRates[h] = utils.Percent(float64(c), float64(iterations))
	}
	for t, c := range res.TierCounts {
		res.TierRates[t] = utils.Percent(float64(c), float64(iterations))
	}
	return res
}
