package extractors

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/life-tools/life-atlas/pkg/models/domain"
)

// Metric names produced by the habit extractor.
const (
	MetricCheckCount = "check_count"
	MetricCheckRate  = "check_rate"
	MetricBestStreak = "best_streak"
)

type HabitReader interface {
	GetWindow(ctx context.Context, start, end time.Time) ([]domain.HabitCheck, error)
}

type habitExtractor struct {
	reader HabitReader
}

func NewHabitExtractor(reader HabitReader) Extractor {
	return &habitExtractor{reader: reader}
}

func (e *habitExtractor) Module() domain.Module { return domain.ModuleHabit }

func (e *habitExtractor) Extract(ctx context.Context, start, end time.Time) (domain.MetricBundle, error) {
	checks, err := e.reader.GetWindow(ctx, start, end)
	if err != nil {
		return domain.MetricBundle{}, fmt.Errorf("habit window read: %w", err)
	}

	daysChecked := make(map[string]bool)
	for _, check := range checks {
		daysChecked[dayKey(check.CheckedOn)] = true
	}

	metrics := map[string]float64{
		MetricCheckCount: float64(len(checks)),
		MetricCheckRate:  float64(len(daysChecked)) / windowDays(start, end),
		MetricBestStreak: float64(bestStreak(daysChecked)),
	}

	return domain.MetricBundle{
		Module:  domain.ModuleHabit,
		Metrics: metrics,
		Records: len(checks),
		Start:   start,
		End:     end,
	}, nil
}

// bestStreak finds the longest run of consecutive checked days.
func bestStreak(daysChecked map[string]bool) int {
	if len(daysChecked) == 0 {
		return 0
	}

	days := make([]time.Time, 0, len(daysChecked))
	for key := range daysChecked {
		day, err := time.Parse("2006-01-02", key)
		if err != nil {
			continue
		}
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	best, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i].Sub(days[i-1]) == 24*time.Hour {
			run++
			if run > best {
				best = run
			}
		} else {
			run = 1
		}
	}
	return best
}
