package extractors

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/life-tools/life-atlas/pkg/models/domain"
)

// Metric names produced by the finance extractor.
const (
	MetricExpenseTotal   = "expense_total"
	MetricIncomeTotal    = "income_total"
	MetricExpenseCount   = "expense_count"
	MetricIncomeCount    = "income_count"
	MetricOnBudgetRatio  = "on_budget_ratio"
	MetricSavingsRate    = "savings_rate"
	MetricIncomeCoverage = "income_coverage"
)

type FinanceReader interface {
	GetWindow(ctx context.Context, start, end time.Time) ([]domain.Transaction, error)
}

type financeExtractor struct {
	reader FinanceReader
}

func NewFinanceExtractor(reader FinanceReader) Extractor {
	return &financeExtractor{reader: reader}
}

func (e *financeExtractor) Module() domain.Module { return domain.ModuleFinance }

func (e *financeExtractor) Extract(ctx context.Context, start, end time.Time) (domain.MetricBundle, error) {
	txs, err := e.reader.GetWindow(ctx, start, end)
	if err != nil {
		return domain.MetricBundle{}, fmt.Errorf("finance window read: %w", err)
	}

	var expenseTotal, incomeTotal decimal.Decimal
	var expenseCount, incomeCount, onBudget int
	for _, tx := range txs {
		if tx.Income {
			incomeTotal = incomeTotal.Add(tx.Amount)
			incomeCount++
			continue
		}
		expenseTotal = expenseTotal.Add(tx.Amount)
		expenseCount++
		if !tx.OverBudget {
			onBudget++
		}
	}

	metrics := map[string]float64{
		MetricExpenseTotal: expenseTotal.InexactFloat64(),
		MetricIncomeTotal:  incomeTotal.InexactFloat64(),
		MetricExpenseCount: float64(expenseCount),
		MetricIncomeCount:  float64(incomeCount),
	}

	if expenseCount > 0 {
		metrics[MetricOnBudgetRatio] = float64(onBudget) / float64(expenseCount)
	}
	if incomeTotal.IsPositive() {
		saved := incomeTotal.Sub(expenseTotal)
		rate, _ := saved.Div(incomeTotal).Float64()
		if rate < 0 {
			rate = 0
		}
		metrics[MetricSavingsRate] = rate
	}
	if expenseTotal.IsPositive() {
		coverage, _ := incomeTotal.Div(expenseTotal).Float64()
		metrics[MetricIncomeCoverage] = coverage
	}

	return domain.MetricBundle{
		Module:  domain.ModuleFinance,
		Metrics: metrics,
		Records: len(txs),
		Start:   start,
		End:     end,
	}, nil
}
