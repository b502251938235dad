package utils_test

import (
	"testing"

	"github.com/imtiyazakiwat/driverbench/internal/api"
	"github.com/imtiyazakiwat/driverbench/internal/usage"
	"github.com/imtiyazakiwat/driverbench/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okProbe(latency int64, tokens int, cost *int64) api.ProbeResult {
	r := api.ProbeResult{
		OK:        true,
		LatencyMs: latency,
		Tokens:    usage.TokenCount{InputTokens: tokens},
	}
	if cost != nil {
		r.Cost = usage.Cost{Total: *cost, Available: true}
	}
	return r
}

func failedProbe() api.ProbeResult {
	return api.ProbeResult{Err: "boom"}
}

func nano(v int64) *int64 { return &v }

func TestSummarize_Means(t *testing.T) {
	results := []api.ProbeResult{
		okProbe(400, 10, nano(3000)),
		okProbe(601, 13, nano(5000)),
	}

	s := utils.Summarize(api.DriverOpenRouter, results)

	assert.Equal(t, 2, s.Samples)
	assert.Equal(t, 2, s.Successes)
	assert.Equal(t, 1.0, s.SuccessRatio)
	assert.Equal(t, int64(501), s.MeanLatencyMs) // rounded up from 500.5
	assert.Equal(t, 12, s.MeanTokens)            // rounded up from 11.5
	assert.Equal(t, 2, s.CostSamples)
	assert.Equal(t, int64(4000), s.MeanCost)
}

func TestSummarize_ExcludesFailures(t *testing.T) {
	results := []api.ProbeResult{
		okProbe(100, 10, nil),
		failedProbe(),
	}

	s := utils.Summarize(api.DriverClaude, results)

	assert.Equal(t, 2, s.Samples)
	assert.Equal(t, 1, s.Successes)
	assert.Equal(t, 0.5, s.SuccessRatio)
	assert.Equal(t, int64(100), s.MeanLatencyMs)
	assert.Equal(t, 10, s.MeanTokens)
}

func TestSummarize_NoSuccesses(t *testing.T) {
	s := utils.Summarize(api.DriverClaude, []api.ProbeResult{failedProbe(), failedProbe()})

	assert.Equal(t, 0, s.Successes)
	assert.Equal(t, 0.0, s.SuccessRatio)
	assert.Equal(t, int64(0), s.MeanLatencyMs)
	assert.Equal(t, 0, s.CostSamples)
}

func TestSummarize_CostOnlyOverCostBearingProbes(t *testing.T) {
	results := []api.ProbeResult{
		okProbe(100, 10, nano(6000)),
		okProbe(100, 10, nil), // successful but no cost reported
	}

	s := utils.Summarize(api.DriverOpenRouter, results)

	assert.Equal(t, 2, s.Successes)
	assert.Equal(t, 1, s.CostSamples)
	assert.Equal(t, int64(6000), s.MeanCost)
}

func TestSummarize_CostUnavailableWithoutSamples(t *testing.T) {
	s := utils.Summarize(api.DriverClaude, []api.ProbeResult{okProbe(100, 10, nil)})

	assert.Equal(t, 0, s.CostSamples)
	assert.Equal(t, int64(0), s.MeanCost)
}

func TestRecommend_OpenRouterMoreAvailable(t *testing.T) {
	claude := utils.DriverSummary{Samples: 2, Successes: 1}
	openrouter := utils.DriverSummary{Samples: 2, Successes: 2}

	lines := utils.Recommend(claude, openrouter)

	require.NotEmpty(t, lines)
	assert.Contains(t, lines[0], "openrouter")
	assert.Contains(t, lines[0], "availability")
}

func TestRecommend_ClaudeMoreAvailable(t *testing.T) {
	claude := utils.DriverSummary{Samples: 2, Successes: 2}
	openrouter := utils.DriverSummary{Samples: 2, Successes: 1}

	lines := utils.Recommend(claude, openrouter)

	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "claude")
	assert.Contains(t, lines[0], "availability")
	assert.Contains(t, lines[1], "no cost data")
}

func TestRecommend_LatencyTieBreak(t *testing.T) {
	claude := utils.DriverSummary{Samples: 3, Successes: 3, MeanLatencyMs: 400}
	openrouter := utils.DriverSummary{Samples: 3, Successes: 3, MeanLatencyMs: 600}

	lines := utils.Recommend(claude, openrouter)

	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "claude responded faster")
	assert.Contains(t, lines[1], "Recommendation: openrouter")
}

func TestRecommend_LatencyWithinThreshold(t *testing.T) {
	// 500 vs 600 is a 0.83 ratio, above the 0.8 cutoff.
	claude := utils.DriverSummary{Samples: 3, Successes: 3, MeanLatencyMs: 500}
	openrouter := utils.DriverSummary{Samples: 3, Successes: 3, MeanLatencyMs: 600}

	lines := utils.Recommend(claude, openrouter)

	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "Recommendation: openrouter")
}

func TestRecommend_AllFailures(t *testing.T) {
	claude := utils.DriverSummary{Samples: 2}
	openrouter := utils.DriverSummary{Samples: 2}

	lines := utils.Recommend(claude, openrouter)

	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "Recommendation: openrouter")
}
