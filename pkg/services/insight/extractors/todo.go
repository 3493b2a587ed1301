package extractors

import (
	"context"
	"fmt"
	"time"

	"github.com/life-tools/life-atlas/pkg/models/domain"
)

// Metric names produced by the todo extractor.
const (
	MetricCreatedCount   = "created_count"
	MetricCompletedCount = "completed_count"
	MetricCompletionRate = "completion_rate"
	MetricOverdueCount   = "overdue_count"
)

type TodoReader interface {
	GetWindow(ctx context.Context, start, end time.Time) ([]domain.TodoItem, error)
}

type todoExtractor struct {
	reader TodoReader
}

func NewTodoExtractor(reader TodoReader) Extractor {
	return &todoExtractor{reader: reader}
}

func (e *todoExtractor) Module() domain.Module { return domain.ModuleTodo }

func (e *todoExtractor) Extract(ctx context.Context, start, end time.Time) (domain.MetricBundle, error) {
	items, err := e.reader.GetWindow(ctx, start, end)
	if err != nil {
		return domain.MetricBundle{}, fmt.Errorf("todo window read: %w", err)
	}

	var completed, overdue int
	for _, item := range items {
		if item.Completed {
			completed++
			continue
		}
		// An open task counts as overdue once its due date has passed
		// within the window's horizon.
		if item.DueOn != nil && item.DueOn.Before(end) {
			overdue++
		}
	}

	metrics := map[string]float64{
		MetricCreatedCount:   float64(len(items)),
		MetricCompletedCount: float64(completed),
		MetricOverdueCount:   float64(overdue),
	}
	if len(items) > 0 {
		metrics[MetricCompletionRate] = float64(completed) / float64(len(items))
	}

	return domain.MetricBundle{
		Module:  domain.ModuleTodo,
		Metrics: metrics,
		Records: len(items),
		Start:   start,
		End:     end,
	}, nil
}
