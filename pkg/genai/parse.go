package genai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// parseJSON decodes a model response, tolerating the markdown code
// fences models occasionally wrap JSON in despite the response MIME
// type.
func parseJSON(text string, v any) error {
	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "```") {
		trimmed = strings.TrimPrefix(trimmed, "```json")
		trimmed = strings.TrimPrefix(trimmed, "```")
		trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	}
	if err := json.Unmarshal([]byte(trimmed), v); err != nil {
		return fmt.Errorf("malformed data from the AI: %w", err)
	}
	return nil
}
