package main

import (
	"io"
	"time"

	"github.com/imtiyazakiwat/driverbench/internal/api"
	"github.com/imtiyazakiwat/driverbench/internal/utils"
)

// Comparison holds one run's configuration. Everything is injected via
// flags; nothing is read from the environment or from files.
type Comparison struct {
	Endpoint string
	Origin   string
	Token    string
	Prompt   string
	Timeout  time.Duration
	Pairs    []api.ModelPair

	out io.Writer
}

// ComparisonResult is the serialisable outcome of one run, used by the
// json and yaml output modes.
type ComparisonResult struct {
	Prompt            string              `json:"prompt" yaml:"prompt"`
	Pairs             []api.ModelPair     `json:"pairs" yaml:"pairs"`
	Claude            []api.ProbeResult   `json:"claude" yaml:"claude"`
	OpenRouter        []api.ProbeResult   `json:"openrouter" yaml:"openrouter"`
	ClaudeSummary     utils.DriverSummary `json:"claude_summary" yaml:"claude-summary"`
	OpenRouterSummary utils.DriverSummary `json:"openrouter_summary" yaml:"openrouter-summary"`
	Recommendation    []string            `json:"recommendation" yaml:"recommendation"`
}
