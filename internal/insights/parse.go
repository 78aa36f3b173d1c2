package insights

import (
	"encoding/json"
	"fmt"
	"strings"
)

// parseJSON tolerates markdown fences and text around the object the model
// was asked for.
func parseJSON(content string, dst any) error {
	s := strings.TrimSpace(content)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end < start {
		return fmt.Errorf("%w: no json object", ErrInvalidAIResponse)
	}

	if err := json.Unmarshal([]byte(s[start:end+1]), dst); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidAIResponse, err)
	}
	return nil
}

type feedbackAnswer struct {
	Summary         string   `json:"summary"`
	Highlights      []string `json:"highlights"`
	Recommendations []string `json:"recommendations"`
}

type readinessAnswer struct {
	ReadinessScore  float64  `json:"readinessScore"`
	Summary         string   `json:"summary"`
	Recommendations []string `json:"recommendations"`
}

func clampScore(v float64) int {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	}
	return int(v + 0.5)
}

func cleanList(list []string) []string {
	out := make([]string, 0, len(list))
	for _, item := range list {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
