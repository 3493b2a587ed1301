package extractors

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/life-tools/life-atlas/pkg/models/domain"
)

// Metric names produced by the savings extractor.
const (
	MetricDepositCount      = "deposit_count"
	MetricDepositTotal      = "deposit_total"
	MetricDepositRegularity = "deposit_regularity"
)

type SavingsReader interface {
	GetWindow(ctx context.Context, start, end time.Time) ([]domain.SavingsDeposit, error)
}

type savingsExtractor struct {
	reader SavingsReader
}

func NewSavingsExtractor(reader SavingsReader) Extractor {
	return &savingsExtractor{reader: reader}
}

func (e *savingsExtractor) Module() domain.Module { return domain.ModuleSavings }

func (e *savingsExtractor) Extract(ctx context.Context, start, end time.Time) (domain.MetricBundle, error) {
	deposits, err := e.reader.GetWindow(ctx, start, end)
	if err != nil {
		return domain.MetricBundle{}, fmt.Errorf("savings window read: %w", err)
	}

	daysDeposited := make(map[string]bool)
	var total decimal.Decimal
	for _, deposit := range deposits {
		daysDeposited[dayKey(deposit.DepositedOn)] = true
		total = total.Add(deposit.Amount)
	}

	metrics := map[string]float64{
		MetricDepositCount:      float64(len(deposits)),
		MetricDepositTotal:      total.InexactFloat64(),
		MetricDepositRegularity: float64(len(daysDeposited)) / windowDays(start, end),
	}

	return domain.MetricBundle{
		Module:  domain.ModuleSavings,
		Metrics: metrics,
		Records: len(deposits),
		Start:   start,
		End:     end,
	}, nil
}
