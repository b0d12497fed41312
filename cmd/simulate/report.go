package main

import (
	"io"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/GachaLab_Go/internal/domain"
	"github.com/osse101/GachaLab_Go/internal/poker"
	"github.com/osse101/GachaLab_Go/internal/prize"
)

type simulationReport struct {
	gacha    *domain.GachaType
	seed     uint64
	weighted prize.SimulationResult
	hands    *prize.HandSimulationResult
}

func (r simulationReport) write(out io.Writer) {
	p := message.NewPrinter(language.English)

	p.Fprintf(out, "Gacha     : %s (%s, %s)\n", r.gacha.Name, r.gacha.ID, r.gacha.DrawMode)
	p.Fprintf(out, "Iterations: %d\n", r.weighted.Iterations)
	if r.seed != 0 {
		p.Fprintf(out, "Seed      : %d\n", r.seed)
	}
	p.Fprintln(out)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	p.Fprintf(tw, "Tier\tWeight\tCount\tExpected %%\tActual %%\t95%% CI\tOK\t\n")
	for _, row := range r.weighted.Rows {
		ok := "yes"
		if !row.WithinInterval {
			ok = "no"
		}
		p.Fprintf(tw, "%s\t%d\t%d\t%.2f\t%.2f\t[%.2f, %.2f]\t%s\t\n",
			row.Tier.Label(), r.gacha.Weights.For(row.Tier), row.Count,
			row.ExpectedRate, row.ActualRate, row.Interval.Low, row.Interval.High, ok)
	}
	_ = tw.Flush()

	if fit := r.weighted.ChiSquare; fit != nil {
		p.Fprintf(out, "\nChi-square: %.3f (df=%d, p=%.4f)\n", fit.Statistic, fit.DegreesOfFreedom, fit.PValue)
	}

	if r.hands == nil {
		return
	}

	p.Fprintf(out, "\nPoker draws\n")
	tw = tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	p.Fprintf(tw, "Hand\tTier\tCount\tActual %%\t\n")
	ranks := poker.AllHandRanks()
	for i := len(ranks) - 1; i >= 0; i-- {
		h := ranks[i]
		p.Fprintf(tw, "%s\t%s\t%d\t%.3f\t\n",
			h, prize.ResolveTierFromHand(h, r.gacha.Hands).Label(), r.hands.HandCounts[h], r.hands.HandRates[h])
	}
	_ = tw.Flush()

	p.Fprintln(out)
	tw = tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	p.Fprintf(tw, "Tier\tCount\tActual %%\t\n")
	for _, t := range prize.AllTiers {
		p.Fprintf(tw, "%s\t%d\t%.3f\t\n", t.Label(), r.hands.TierCounts[t], r.hands.TierRates[t])
	}
	_ = tw.Flush()
}
