package analytics

import (
	"sort"
	"time"

	"github.com/2beens/fitcoach/internal/traininglogs"
	"github.com/2beens/fitcoach/pkg"
)

type WeekStats struct {
	WeekStart     string         `json:"weekStart"`
	Sessions      int            `json:"sessions"`
	TotalSets     int            `json:"totalSets"`
	TotalVolume   float64        `json:"totalVolume"`
	AvgSessionRPE float64        `json:"avgSessionRpe"`
	ExerciseBests []ExerciseBest `json:"exerciseBests"`
}

type ExerciseDelta struct {
	Name     string  `json:"name"`
	Current  float64 `json:"current"`
	Previous float64 `json:"previous"`
	DeltaPct float64 `json:"deltaPct"`
}

type WeekComparison struct {
	Current          WeekStats       `json:"current"`
	Previous         WeekStats       `json:"previous"`
	SessionsDeltaPct float64         `json:"sessionsDeltaPct"`
	VolumeDeltaPct   float64         `json:"volumeDeltaPct"`
	Exercises        []ExerciseDelta `json:"exercises"`
}

// weekStats sums up the completed logs dated inside the week starting on monday.
// Sessions without a session RPE are left out of the average.
func weekStats(logs []traininglogs.TrainingLog, monday time.Time) (WeekStats, map[string]ExerciseBest) {
	stats := WeekStats{WeekStart: monday.Format(pkg.DateLayout)}
	end := monday.AddDate(0, 0, 7)
	bests := make(map[string]ExerciseBest)

	var rpeSum float64
	rpeCount := 0
	for _, l := range logs {
		if !l.IsCompleted() || l.Date.Before(monday) || !l.Date.Before(end) {
			continue
		}
		stats.Sessions++
		stats.TotalSets += l.CompletedSets()
		stats.TotalVolume += l.Volume()
		if l.SessionRPE > 0 {
			rpeSum += l.SessionRPE
			rpeCount++
		}
		for key, best := range SessionBests(l) {
			if cur, ok := bests[key]; !ok || best.E1RM > cur.E1RM {
				bests[key] = best
			}
		}
	}

	stats.TotalVolume = round2(stats.TotalVolume)
	if rpeCount > 0 {
		stats.AvgSessionRPE = round2(rpeSum / float64(rpeCount))
	}

	stats.ExerciseBests = make([]ExerciseBest, 0, len(bests))
	for _, b := range bests {
		stats.ExerciseBests = append(stats.ExerciseBests, b)
	}
	sort.Slice(stats.ExerciseBests, func(i, j int) bool {
		return exerciseKey(stats.ExerciseBests[i].Name) < exerciseKey(stats.ExerciseBests[j].Name)
	})

	return stats, bests
}

// CompareWeeks compares the ISO week containing date with the one before it.
func CompareWeeks(logs []traininglogs.TrainingLog, date time.Time) WeekComparison {
	monday := pkg.StartOfWeek(date)
	current, currentBests := weekStats(logs, monday)
	previous, previousBests := weekStats(logs, monday.AddDate(0, 0, -7))

	cmp := WeekComparison{
		Current:          current,
		Previous:         previous,
		SessionsDeltaPct: DeltaPct(float64(current.Sessions), float64(previous.Sessions)),
		VolumeDeltaPct:   DeltaPct(current.TotalVolume, previous.TotalVolume),
		Exercises:        make([]ExerciseDelta, 0),
	}

	keys := make(map[string]string)
	for k, b := range previousBests {
		keys[k] = b.Name
	}
	for k, b := range currentBests {
		keys[k] = b.Name
	}
	for k, name := range keys {
		cur := currentBests[k].E1RM
		prev := previousBests[k].E1RM
		cmp.Exercises = append(cmp.Exercises, ExerciseDelta{
			Name:     name,
			Current:  round2(cur),
			Previous: round2(prev),
			DeltaPct: DeltaPct(cur, prev),
		})
	}
	sort.Slice(cmp.Exercises, func(i, j int) bool {
		return exerciseKey(cmp.Exercises[i].Name) < exerciseKey(cmp.Exercises[j].Name)
	})

	return cmp
}
