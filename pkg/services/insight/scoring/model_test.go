package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/life-tools/life-atlas/pkg/models/domain"
	"github.com/life-tools/life-atlas/pkg/services/insight/extractors"
)

func bundle(module domain.Module, records int, metrics map[string]float64) domain.MetricBundle {
	return domain.MetricBundle{
		Module:  module,
		Metrics: metrics,
		Records: records,
		Start:   time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC),
		End:     time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestSentimentFor_ThresholdsHoldAcrossFullRange(t *testing.T) {
	for score := 0; score <= 100; score++ {
		sentiment := SentimentFor(score)
		switch {
		case score >= PositiveThreshold:
			assert.Equal(t, domain.SentimentPositive, sentiment, "score %d", score)
		case score >= NeutralThreshold:
			assert.Equal(t, domain.SentimentNeutral, sentiment, "score %d", score)
		default:
			assert.Equal(t, domain.SentimentNegative, sentiment, "score %d", score)
		}
	}
}

func TestScore_EmptyBundleIsUnknown(t *testing.T) {
	for _, module := range domain.Modules {
		score, sentiment := Score(bundle(module, 0, map[string]float64{}))
		assert.Nil(t, score, "module %s", module)
		assert.Equal(t, domain.SentimentNeutral, sentiment, "module %s", module)
	}
}

func TestScore_OutlierMetricIsClamped(t *testing.T) {
	b := bundle(domain.ModuleFinance, 3, map[string]float64{
		extractors.MetricOnBudgetRatio:  1,
		extractors.MetricSavingsRate:    1,
		extractors.MetricIncomeCoverage: 40, // huge outlier, clamps to 1
	})

	score, sentiment := Score(b)
	require.NotNil(t, score)
	assert.Equal(t, 100, *score)
	assert.Equal(t, domain.SentimentPositive, sentiment)
}

func TestScore_FinanceMostlyOnBudget(t *testing.T) {
	// 10 transactions, 8 within budget: the on-budget ratio alone keeps the
	// score out of the negative band.
	b := bundle(domain.ModuleFinance, 10, map[string]float64{
		extractors.MetricOnBudgetRatio: 0.8,
		extractors.MetricExpenseCount:  10,
	})

	score, sentiment := Score(b)
	require.NotNil(t, score)
	assert.Equal(t, 40, *score)
	assert.Equal(t, domain.SentimentNeutral, sentiment)
}

func TestScore_TodoOverduePressure(t *testing.T) {
	b := bundle(domain.ModuleTodo, 4, map[string]float64{
		extractors.MetricCompletionRate: 0.5,
		extractors.MetricOverdueCount:   1,
	})

	score, sentiment := Score(b)
	require.NotNil(t, score)
	// 0.6*0.5 + 0.4*(1-1/5) = 0.62
	assert.Equal(t, 62, *score)
	assert.Equal(t, domain.SentimentNeutral, sentiment)
}

func TestScore_ManyOverdueNeverGoesNegative(t *testing.T) {
	b := bundle(domain.ModuleTodo, 20, map[string]float64{
		extractors.MetricCompletionRate: 0,
		extractors.MetricOverdueCount:   20,
	})

	score, _ := Score(b)
	require.NotNil(t, score)
	assert.Equal(t, 0, *score)
}

func TestOverall_ExcludesEmptyDomains(t *testing.T) {
	bundles := []domain.MetricBundle{
		bundle(domain.ModuleFinance, 5, map[string]float64{
			extractors.MetricOnBudgetRatio:  1,
			extractors.MetricSavingsRate:    1,
			extractors.MetricIncomeCoverage: 1,
		}),
		bundle(domain.ModuleHabit, 0, nil),
		bundle(domain.ModuleTodo, 2, map[string]float64{
			extractors.MetricCompletionRate: 1,
			extractors.MetricOverdueCount:   0,
		}),
	}

	score, sentiment := Overall(bundles)
	require.NotNil(t, score)
	assert.Equal(t, 100, *score, "empty habit bundle must not drag the average down")
	assert.Equal(t, domain.SentimentPositive, sentiment)
}

func TestOverall_AllEmpty(t *testing.T) {
	bundles := []domain.MetricBundle{
		bundle(domain.ModuleFinance, 0, nil),
		bundle(domain.ModuleDiary, 0, nil),
	}

	score, sentiment := Overall(bundles)
	assert.Nil(t, score)
	assert.Equal(t, domain.SentimentNeutral, sentiment)
}
