package utils

import (
	"fmt"
	"strings"

	"github.com/imtiyazakiwat/driverbench/internal/api"
)

// ParseModelPairs parses --pair flag values of the form
// "Display Name=claude-id|openrouter/id". OpenRouter ids contain
// slashes, so '|' separates the two ids.
func ParseModelPairs(values []string) ([]api.ModelPair, error) {
	pairs := make([]api.ModelPair, 0, len(values))

	for _, v := range values {
		name, ids, ok := strings.Cut(v, "=")
		if !ok {
			return nil, fmt.Errorf("invalid pair %q: want \"Name=claude-id|openrouter-id\"", v)
		}

		claudeID, openRouterID, ok := strings.Cut(ids, "|")
		if !ok {
			return nil, fmt.Errorf("invalid pair %q: missing '|' between model ids", v)
		}

		name = strings.TrimSpace(name)
		claudeID = strings.TrimSpace(claudeID)
		openRouterID = strings.TrimSpace(openRouterID)
		if name == "" || claudeID == "" || openRouterID == "" {
			return nil, fmt.Errorf("invalid pair %q: empty field", v)
		}

		pairs = append(pairs, api.ModelPair{
			DisplayName:     name,
			ClaudeModel:     claudeID,
			OpenRouterModel: openRouterID,
		})
	}

	return pairs, nil
}
