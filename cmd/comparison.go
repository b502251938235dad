package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/imtiyazakiwat/driverbench/internal/api"
	"github.com/imtiyazakiwat/driverbench/internal/utils"
	"github.com/schollz/progressbar/v3"
)

func (c *Comparison) client() *api.Client {
	// The client carries no per-request timeout; cancellation happens
	// at run granularity through the context.
	return api.NewClient(c.Endpoint, c.Origin, c.Token, nil)
}

func (c *Comparison) writer() io.Writer {
	if c.out != nil {
		return c.out
	}
	return os.Stdout
}

// runCli probes every pair sequentially in input order, claude before
// openrouter, printing one status row per probe as it lands, then the
// per-driver summaries and the recommendation.
func (c *Comparison) runCli(ctx context.Context) error {
	client := c.client()
	out := c.writer()

	fmt.Fprintln(out, utils.Separator())
	fmt.Fprintln(out, "Driver comparison: claude vs openrouter")
	fmt.Fprintf(out, "Prompt: %s\n", utils.Preview(c.Prompt))
	fmt.Fprintln(out, utils.Separator())

	var claudeResults, openRouterResults []api.ProbeResult
	for _, pair := range c.Pairs {
		fmt.Fprintf(out, "\n%s\n", pair.DisplayName)

		claudeRes := client.Probe(ctx, api.DriverClaude, pair.ClaudeModel, c.Prompt)
		claudeResults = append(claudeResults, claudeRes)
		printRow(out, claudeRes)

		openRouterRes := client.Probe(ctx, api.DriverOpenRouter, pair.OpenRouterModel, c.Prompt)
		openRouterResults = append(openRouterResults, openRouterRes)
		printRow(out, openRouterRes)
	}

	fmt.Fprintln(out)

	claudeSummary := utils.Summarize(api.DriverClaude, claudeResults)
	openRouterSummary := utils.Summarize(api.DriverOpenRouter, openRouterResults)
	printSummary(out, claudeSummary)
	printSummary(out, openRouterSummary)

	fmt.Fprintln(out)
	for _, line := range utils.Recommend(claudeSummary, openRouterSummary) {
		fmt.Fprintln(out, line)
	}

	return nil
}

// run is the quiet counterpart of runCli for the json and yaml output
// modes: the same sequential loop, with progress on stderr instead of
// live rows.
func (c *Comparison) run(ctx context.Context) (ComparisonResult, error) {
	client := c.client()

	result := ComparisonResult{
		Prompt: c.Prompt,
		Pairs:  c.Pairs,
	}

	bar := progressbar.Default(int64(len(c.Pairs)*2), "probing")
	for _, pair := range c.Pairs {
		result.Claude = append(result.Claude,
			client.Probe(ctx, api.DriverClaude, pair.ClaudeModel, c.Prompt))
		bar.Add(1)

		result.OpenRouter = append(result.OpenRouter,
			client.Probe(ctx, api.DriverOpenRouter, pair.OpenRouterModel, c.Prompt))
		bar.Add(1)
	}
	bar.Finish()

	result.ClaudeSummary = utils.Summarize(api.DriverClaude, result.Claude)
	result.OpenRouterSummary = utils.Summarize(api.DriverOpenRouter, result.OpenRouter)
	result.Recommendation = utils.Recommend(result.ClaudeSummary, result.OpenRouterSummary)

	return result, nil
}

func printRow(w io.Writer, r api.ProbeResult) {
	if !r.OK {
		fmt.Fprintf(w, "  %-10s error: %s\n", r.Driver, r.Err)
		return
	}

	cost := "N/A"
	if r.Cost.Available {
		cost = utils.FormatNanoUSD(r.Cost.Total)
	}

	fmt.Fprintf(w, "  %-10s %5d ms  %5d tokens  %10s  %s\n",
		r.Driver, r.LatencyMs, r.Tokens.Total(), cost, utils.Preview(r.Content))
}

func printSummary(w io.Writer, s utils.DriverSummary) {
	fmt.Fprintln(w, utils.Separator())
	fmt.Fprintf(w, "%s summary\n", s.Driver)
	fmt.Fprintf(w, "  successes:    %d/%d (%.0f%%)\n", s.Successes, s.Samples, s.SuccessRatio*100)
	if s.Successes > 0 {
		fmt.Fprintf(w, "  mean latency: %d ms\n", s.MeanLatencyMs)
		fmt.Fprintf(w, "  mean tokens:  %d\n", s.MeanTokens)
	}
	if s.CostSamples > 0 {
		fmt.Fprintf(w, "  mean cost:    %s\n", utils.FormatNanoUSD(s.MeanCost))
	} else {
		fmt.Fprintln(w, "  mean cost:    unavailable")
	}
	fmt.Fprintln(w, utils.Separator())
}
