package analytics

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/2beens/fitcoach/internal/traininglogs"
)

// E1RM estimates the one rep max with the reps in reserve variant of the
// Epley formula. A missing RPE counts as 10 (no reps left in the tank).
func E1RM(weight float64, reps int, rpe float64) float64 {
	if weight <= 0 || reps <= 0 {
		return 0
	}
	if rpe <= 0 {
		rpe = 10
	}
	return weight * (1 + (float64(reps)+(10-rpe))/30)
}

type ExerciseBest struct {
	Name string  `json:"name"`
	E1RM float64 `json:"e1rm"`
}

// exerciseKey makes exercise names case insensitive.
func exerciseKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// SessionBests returns the best E1RM of each exercise of the log, counting
// completed sets only. Keys are the lower cased exercise names.
func SessionBests(log traininglogs.TrainingLog) map[string]ExerciseBest {
	bests := make(map[string]ExerciseBest)
	for _, ex := range log.Exercises {
		key := exerciseKey(ex.Name)
		if key == "" {
			continue
		}
		for _, set := range ex.Sets {
			if !set.Completed {
				continue
			}
			e := E1RM(set.Weight, set.Reps, set.RPE)
			best, seen := bests[key]
			if !seen || e > best.E1RM {
				bests[key] = ExerciseBest{Name: ex.Name, E1RM: e}
			}
		}
	}
	return bests
}

type ProgressPoint struct {
	Date  time.Time `json:"date"`
	LogID string    `json:"logId"`
	E1RM  float64   `json:"e1rm"`
}

type Progression struct {
	Exercise string          `json:"exercise"`
	Points   []ProgressPoint `json:"points"`
	Latest   float64         `json:"latest"`
	Previous float64         `json:"previous"`
	DeltaPct float64         `json:"deltaPct"`
}

// ExerciseProgression collects the session bests of one exercise over the
// completed logs, newest first.
func ExerciseProgression(logs []traininglogs.TrainingLog, exercise string) Progression {
	key := exerciseKey(exercise)
	p := Progression{
		Exercise: strings.TrimSpace(exercise),
		Points:   make([]ProgressPoint, 0),
	}

	for _, l := range logs {
		if !l.IsCompleted() {
			continue
		}
		best, ok := SessionBests(l)[key]
		if !ok {
			continue
		}
		p.Points = append(p.Points, ProgressPoint{
			Date:  l.Date,
			LogID: l.ID,
			E1RM:  best.E1RM,
		})
	}

	sort.SliceStable(p.Points, func(i, j int) bool {
		return p.Points[i].Date.After(p.Points[j].Date)
	})

	if len(p.Points) > 0 {
		p.Latest = p.Points[0].E1RM
	}
	if len(p.Points) > 1 {
		p.Previous = p.Points[1].E1RM
		p.DeltaPct = DeltaPct(p.Latest, p.Previous)
	}

	return p
}

// DeltaPct is the change from previous to current in percent, rounded to two
// decimals. It is 0 when there is nothing to compare against.
func DeltaPct(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return round2((current - previous) / previous * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// progressions builds one progression per exercise found in the logs, sorted
// by exercise name. The display name comes from the newest log.
func progressions(logs []traininglogs.TrainingLog) []Progression {
	names := make(map[string]string)
	sorted := append([]traininglogs.TrainingLog(nil), logs...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	for _, l := range sorted {
		if !l.IsCompleted() {
			continue
		}
		for key, best := range SessionBests(l) {
			if _, ok := names[key]; !ok {
				names[key] = best.Name
			}
		}
	}

	out := make([]Progression, 0, len(names))
	for _, name := range names {
		p := ExerciseProgression(sorted, name)
		p.Exercise = name
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return exerciseKey(out[i].Exercise) < exerciseKey(out[j].Exercise)
	})
	return out
}
