package api

import (
	"context"

	"github.com/imtiyazakiwat/driverbench/internal/usage"
)

// openRouterPrefix is the aggregator's model namespace. The openrouter
// driver expects its model ids prefixed; the claude driver takes ids
// verbatim.
const openRouterPrefix = "openrouter:"

// ModelPair names one comparison row: the native claude model id and the
// OpenRouter id for the same model.
type ModelPair struct {
	DisplayName     string `json:"display_name" yaml:"display-name"`
	ClaudeModel     string `json:"claude_model" yaml:"claude-model"`
	OpenRouterModel string `json:"openrouter_model" yaml:"openrouter-model"`
}

// DefaultPairs is the built-in comparison table.
var DefaultPairs = []ModelPair{
	{
		DisplayName:     "Claude Sonnet 4",
		ClaudeModel:     "claude-sonnet-4",
		OpenRouterModel: "anthropic/claude-sonnet-4",
	},
	{
		DisplayName:     "Claude 3.7 Sonnet",
		ClaudeModel:     "claude-3-7-sonnet",
		OpenRouterModel: "anthropic/claude-3.7-sonnet",
	},
	{
		DisplayName:     "Claude 3.5 Haiku",
		ClaudeModel:     "claude-3-5-haiku",
		OpenRouterModel: "anthropic/claude-3.5-haiku",
	},
}

// ProbeResult is the canonical outcome of one driver call.
type ProbeResult struct {
	Driver    string           `json:"driver" yaml:"driver"`
	Model     string           `json:"model" yaml:"model"`
	OK        bool             `json:"ok" yaml:"ok"`
	LatencyMs int64            `json:"latency_ms" yaml:"latency-ms"`
	Content   string           `json:"content,omitempty" yaml:"content,omitempty"`
	Tokens    usage.TokenCount `json:"tokens" yaml:"tokens"`
	Cost      usage.Cost       `json:"cost" yaml:"cost"`
	Err       string           `json:"error,omitempty" yaml:"error,omitempty"`
}

// Probe issues one complete call through the given driver and folds the
// reply into a ProbeResult. A server-reported failure keeps the error
// payload verbatim with zero tokens and no cost; a reply without usage
// or content still counts as a success.
func (c *Client) Probe(ctx context.Context, driver, model, prompt string) ProbeResult {
	wireModel := model
	if driver == DriverOpenRouter {
		wireModel = openRouterPrefix + model
	}

	resp, latency := c.Call(ctx, driver, wireModel, prompt)

	res := ProbeResult{
		Driver:    driver,
		Model:     model,
		LatencyMs: latency,
	}

	if !resp.Success {
		res.Err = "driver call failed"
		if resp.Error != nil && resp.Error.Message != "" {
			res.Err = resp.Error.Message
		}
		return res
	}

	res.OK = true
	if resp.Result != nil {
		res.Content = resp.Result.Text()
		res.Tokens, res.Cost = usage.Parse(resp.Result.Usage)
	}

	return res
}
