package extractors

import (
	"context"
	"fmt"
	"time"

	"github.com/life-tools/life-atlas/pkg/models/domain"
)

// Metric names produced by the diary extractor.
const (
	MetricEntryCount    = "entry_count"
	MetricEntryRate     = "entry_rate"
	MetricAvgWords      = "avg_words"
	MetricGoodMoodRatio = "good_mood_ratio"
)

// Mood labels as stored by the diary editor.
const (
	MoodGood    = "good"
	MoodNeutral = "neutral"
	MoodBad     = "bad"
)

type DiaryReader interface {
	GetWindow(ctx context.Context, start, end time.Time) ([]domain.DiaryEntry, error)
}

type diaryExtractor struct {
	reader DiaryReader
}

func NewDiaryExtractor(reader DiaryReader) Extractor {
	return &diaryExtractor{reader: reader}
}

func (e *diaryExtractor) Module() domain.Module { return domain.ModuleDiary }

func (e *diaryExtractor) Extract(ctx context.Context, start, end time.Time) (domain.MetricBundle, error) {
	entries, err := e.reader.GetWindow(ctx, start, end)
	if err != nil {
		return domain.MetricBundle{}, fmt.Errorf("diary window read: %w", err)
	}

	daysWritten := make(map[string]bool)
	var words, good, labelled int
	for _, entry := range entries {
		daysWritten[dayKey(entry.WrittenOn)] = true
		words += entry.Words
		if entry.Mood != "" {
			labelled++
			if entry.Mood == MoodGood {
				good++
			}
		}
	}

	metrics := map[string]float64{
		MetricEntryCount: float64(len(entries)),
		MetricEntryRate:  float64(len(daysWritten)) / windowDays(start, end),
	}
	if len(entries) > 0 {
		metrics[MetricAvgWords] = float64(words) / float64(len(entries))
	}
	if labelled > 0 {
		metrics[MetricGoodMoodRatio] = float64(good) / float64(labelled)
	}

	return domain.MetricBundle{
		Module:  domain.ModuleDiary,
		Metrics: metrics,
		Records: len(entries),
		Start:   start,
		End:     end,
	}, nil
}
