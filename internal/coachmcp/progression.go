package coachmcp

import (
	"strings"

	"github.com/2beens/fitcoach/internal/analytics"
)

func filterProgressions(list []analytics.Progression, exercise string) []analytics.Progression {
	want := strings.ToLower(strings.TrimSpace(exercise))
	filtered := make([]analytics.Progression, 0, 1)
	for _, p := range list {
		if strings.ToLower(strings.TrimSpace(p.Exercise)) == want {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
