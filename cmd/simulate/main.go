// Command simulate runs the draw sampler offline against a gacha from the seed
// file and prints observed rates next to the configured ones.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/cheggaaa/pb/v3"

	"github.com/osse101/GachaLab_Go/internal/config"
	"github.com/osse101/GachaLab_Go/internal/domain"
	"github.com/osse101/GachaLab_Go/internal/poker"
	"github.com/osse101/GachaLab_Go/internal/prize"
	"github.com/osse101/GachaLab_Go/internal/seed"
	"github.com/osse101/GachaLab_Go/internal/utils"
	"github.com/osse101/GachaLab_Go/internal/validation"
)

const batchSize = 10000

type options struct {
	seedPath   string
	schemaPath string
	gachaID    string
	iterations int
	seed       uint64
	progress   bool
}

func main() {
	var opts options
	flag.StringVar(&opts.seedPath, "config", config.ConfigPathSeed, "seed file with gacha types")
	flag.StringVar(&opts.schemaPath, "schema", config.ConfigPathSeedSchema, "JSON schema for the seed file")
	flag.StringVar(&opts.gachaID, "gacha", "normal", "gacha type id")
	flag.IntVar(&opts.iterations, "n", domain.DefaultSimulationIterations, "number of draws")
	flag.Uint64Var(&opts.seed, "seed", 0, "random seed, 0 uses the crypto source")
	flag.BoolVar(&opts.progress, "progress", true, "show a progress bar")
	flag.Parse()

	if err := run(opts, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "simulate:", err)
		os.Exit(1)
	}
}

func run(opts options, out, progressOut io.Writer) error {
	if opts.iterations < 1 {
		return fmt.Errorf("-n must be positive, got %d", opts.iterations)
	}

	file, err := seed.Load(opts.seedPath, opts.schemaPath, validation.NewSchemaValidator())
	if err != nil {
		return err
	}
	g, err := file.Find(opts.gachaID)
	if err != nil {
		return err
	}
	gacha := g.ToDomain()
	if gacha.Weights.Total() == 0 {
		return domain.ErrZeroTotalWeight
	}

	var src utils.RandomSource = utils.DefaultSource()
	if opts.seed != 0 {
		src = utils.NewSeededSource(opts.seed)
	}

	report := simulationReport{gacha: gacha, seed: opts.seed}

	report.weighted = runWeighted(gacha.Weights, opts.iterations, src, newBar(opts, progressOut, "weights"))
	if gacha.DrawMode == domain.DrawModePoker {
		hands := runHands(gacha.Hands, opts.iterations, src, newBar(opts, progressOut, "hands"))
		report.hands = &hands
	}

	report.write(out)
	return nil
}

func newBar(opts options, w io.Writer, label string) *pb.ProgressBar {
	bar := pb.New(opts.iterations)
	bar.Set("prefix", label+" ")
	bar.SetWriter(w)
	if !opts.progress {
		bar.SetWriter(io.Discard)
	}
	return bar.Start()
}

// runWeighted calls prize.Simulate in batches so the bar can advance; the
// draws are the same sequence a single call would make with src.
func runWeighted(w prize.Weights, n int, src utils.RandomSource, bar *pb.ProgressBar) prize.SimulationResult {
	defer bar.Finish()

	counts := make(map[prize.Tier]int, len(prize.AllTiers))
	for done := 0; done < n; {
		step := min(batchSize, n-done)
		batch := prize.Simulate(w, step, src)
		for tier, c := range batch.Results {
			counts[tier] += c
		}
		done += step
		bar.Add(step)
	}
	return prize.Summarize(w, counts, n)
}

func runHands(hands prize.TierHands, n int, src utils.RandomSource, bar *pb.ProgressBar) prize.HandSimulationResult {
	defer bar.Finish()

	merged := prize.HandSimulationResult{
		Iterations: n,
		HandCounts: make(map[poker.HandRank]int),
		HandRates:  make(map[poker.HandRank]float64),
		TierCounts: make(map[prize.Tier]int),
		TierRates:  make(map[prize.Tier]float64),
	}
	for done := 0; done < n; {
		step := min(batchSize, n-done)
		batch := prize.SimulateHands(hands, step, src)
		for h, c := range batch.HandCounts {
			merged.HandCounts[h] += c
		}
		for t, c := range batch.TierCounts {
			merged.TierCounts[t] += c
		}
		done += step
		bar.Add(step)
	}

	for h, c := range merged.HandCounts {
		merged.HandRates[h] = utils.Percent(float64(c), float64(n))
	}
	for t, c := range merged.TierCounts {
		merged.TierRates[t] = utils.Percent(float64(c), float64(n))
	}
	return merged
}
