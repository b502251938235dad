package utils

import (
	"fmt"
	"math"

	"github.com/imtiyazakiwat/driverbench/internal/api"
)

// DriverSummary aggregates the probe outcomes for one driver.
type DriverSummary struct {
	Driver        string  `json:"driver" yaml:"driver"`
	Samples       int     `json:"samples" yaml:"samples"`
	Successes     int     `json:"successes" yaml:"successes"`
	SuccessRatio  float64 `json:"success_ratio" yaml:"success-ratio"`
	MeanLatencyMs int64   `json:"mean_latency_ms" yaml:"mean-latency-ms"`
	MeanTokens    int     `json:"mean_tokens" yaml:"mean-tokens"`
	MeanCost      int64   `json:"mean_cost" yaml:"mean-cost"`
	CostSamples   int     `json:"cost_samples" yaml:"cost-samples"`
}

// Summarize computes per-driver means over successful probes only.
// Means are rounded arithmetic means and stay zero when no probe
// succeeded. MeanCost is averaged over the probes that reported a cost;
// CostSamples says how many did, so a zero MeanCost with zero
// CostSamples reads as unavailable rather than free.
func Summarize(driver string, results []api.ProbeResult) DriverSummary {
	s := DriverSummary{
		Driver:  driver,
		Samples: len(results),
	}

	var latencySum, tokenSum, costSum int64
	for _, r := range results {
		if !r.OK {
			continue
		}
		s.Successes++
		latencySum += r.LatencyMs
		tokenSum += int64(r.Tokens.Total())
		if r.Cost.Available {
			s.CostSamples++
			costSum += r.Cost.Total
		}
	}

	if s.Samples > 0 {
		s.SuccessRatio = float64(s.Successes) / float64(s.Samples)
	}
	if s.Successes > 0 {
		s.MeanLatencyMs = roundDiv(latencySum, int64(s.Successes))
		s.MeanTokens = int(roundDiv(tokenSum, int64(s.Successes)))
	}
	if s.CostSamples > 0 {
		s.MeanCost = roundDiv(costSum, int64(s.CostSamples))
	}

	return s
}

func roundDiv(sum, n int64) int64 {
	return int64(math.Round(float64(sum) / float64(n)))
}

// Recommend applies the deterministic tie-break between the two driver
// summaries and returns the report lines. Whichever driver had strictly
// more successes wins on availability; with equal availability, a
// claude mean latency under 0.8x openrouter's earns a speed note but
// openrouter is still recommended for its cost visibility and model
// variety. The default branch always emits a line, even when every
// probe failed.
func Recommend(claude, openrouter DriverSummary) []string {
	switch {
	case claude.Successes < openrouter.Successes:
		return []string{
			"Recommendation: openrouter — higher availability this run.",
			"Note: the claude driver reports no cost data.",
		}
	case openrouter.Successes < claude.Successes:
		return []string{
			"Recommendation: claude — higher availability this run.",
			"Note: the claude driver reports no cost data.",
		}
	case claude.Successes > 0 && float64(claude.MeanLatencyMs) < 0.8*float64(openrouter.MeanLatencyMs):
		return []string{
			fmt.Sprintf("Note: claude responded faster on average (%d ms vs %d ms).",
				claude.MeanLatencyMs, openrouter.MeanLatencyMs),
			"Recommendation: openrouter — cost visibility and model variety.",
		}
	default:
		return []string{
			"Recommendation: openrouter — consistent results, model variety, and cost tracking.",
		}
	}
}
