// Package usage normalises the token-usage encodings returned by the
// drivers endpoint into one canonical record. The two drivers report
// usage in incompatible shapes: the openrouter driver returns a per-item
// list with nano-dollar costs, the claude driver a flat token record
// with no cost at all. This package is the only place that knows about
// either shape.
package usage

import (
	"bytes"
	"encoding/json"
)

// TokenCount holds input and output token counts for a single driver call.
type TokenCount struct {
	InputTokens  int `json:"input_tokens" yaml:"input-tokens"`
	OutputTokens int `json:"output_tokens" yaml:"output-tokens"`
}

// Total returns the sum of input and output tokens.
func (tc TokenCount) Total() int {
	return tc.InputTokens + tc.OutputTokens
}

// Cost holds per-stream cost in nano-dollars (1e-9 USD). The zero value
// means the driver reported no cost; when Available is true all three
// fields are set together. Missing cost is never folded into zero.
type Cost struct {
	Input     int64 `json:"input" yaml:"input"`
	Output    int64 `json:"output" yaml:"output"`
	Total     int64 `json:"total" yaml:"total"`
	Available bool  `json:"available" yaml:"available"`
}

// usageItem is one entry of the per-item list shape.
type usageItem struct {
	Type   string `json:"type"`
	Amount int64  `json:"amount"`
	Cost   int64  `json:"cost"`
}

// flatUsage is the keyed-record shape.
type flatUsage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// Parse converts a raw usage payload into canonical records. The shape
// is discriminated once here: a JSON array is the per-item list, a JSON
// object the flat record, anything else (including a missing payload or
// one that fails to decode) counts as absent — zero tokens, cost
// unavailable.
func Parse(raw json.RawMessage) (TokenCount, Cost) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return TokenCount{}, Cost{}
	}

	switch raw[0] {
	case '[':
		return parseItemList(raw)
	case '{':
		return parseFlat(raw)
	default:
		return TokenCount{}, Cost{}
	}
}

// parseItemList handles the per-item shape. Only the first entry of
// each type counts; later duplicates are ignored. Negative amounts and
// costs are clamped to 0. A list that parses always carries cost, even
// when entries are missing.
func parseItemList(raw []byte) (TokenCount, Cost) {
	var items []usageItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return TokenCount{}, Cost{}
	}

	var (
		tc                         TokenCount
		cost                       Cost
		seenPrompt, seenCompletion bool
	)

	for _, it := range items {
		switch it.Type {
		case "prompt":
			if seenPrompt {
				continue
			}
			seenPrompt = true
			tc.InputTokens = int(clamp(it.Amount))
			cost.Input = clamp(it.Cost)
		case "completion":
			if seenCompletion {
				continue
			}
			seenCompletion = true
			tc.OutputTokens = int(clamp(it.Amount))
			cost.Output = clamp(it.Cost)
		}
	}

	cost.Total = cost.Input + cost.Output
	cost.Available = true

	return tc, cost
}

// parseFlat handles the keyed-record shape, which never carries cost.
func parseFlat(raw []byte) (TokenCount, Cost) {
	var flat flatUsage
	if err := json.Unmarshal(raw, &flat); err != nil {
		return TokenCount{}, Cost{}
	}

	return TokenCount{
		InputTokens:  int(clamp(int64(flat.InputTokens))),
		OutputTokens: int(clamp(int64(flat.OutputTokens))),
	}, Cost{}
}

func clamp(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}
