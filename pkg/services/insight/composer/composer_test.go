package composer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/life-tools/life-atlas/pkg/models/domain"
	"github.com/life-tools/life-atlas/pkg/services/insight/extractors"
)

func financeBundle(metrics map[string]float64, records int) domain.MetricBundle {
	return domain.MetricBundle{
		Module:  domain.ModuleFinance,
		Metrics: metrics,
		Records: records,
		Start:   time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC),
		End:     time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
	}
}

func intPtr(v int) *int { return &v }

func TestCompose_Deterministic(t *testing.T) {
	bundle := financeBundle(map[string]float64{
		extractors.MetricExpenseCount:  10,
		extractors.MetricOnBudgetRatio: 0.8,
		extractors.MetricSavingsRate:   0.25,
	}, 10)

	title1, content1, details1 := Compose(domain.ModuleFinance, intPtr(55), domain.SentimentNeutral, bundle)
	title2, content2, details2 := Compose(domain.ModuleFinance, intPtr(55), domain.SentimentNeutral, bundle)

	assert.Equal(t, title1, title2)
	assert.Equal(t, content1, content2)
	assert.Equal(t, details1, details2)
}

func TestCompose_HighlightForOnBudgetRatio(t *testing.T) {
	bundle := financeBundle(map[string]float64{
		extractors.MetricExpenseCount:  10,
		extractors.MetricOnBudgetRatio: 0.8,
	}, 10)

	_, content, details := Compose(domain.ModuleFinance, intPtr(40), domain.SentimentNeutral, bundle)

	assert.Contains(t, content, "40")
	require.NotEmpty(t, details.Highlights)
	assert.Contains(t, details.Highlights[0], "80%")
	assert.Empty(t, details.Warnings, "no metric crossed a warning threshold")
	assert.Empty(t, details.TopPriority)
}

func TestCompose_WarningsAndMotivationWhenNegative(t *testing.T) {
	bundle := financeBundle(map[string]float64{
		extractors.MetricExpenseCount:  6,
		extractors.MetricOnBudgetRatio: 0.2,
		extractors.MetricExpenseTotal:  900,
		extractors.MetricIncomeTotal:   500,
	}, 6)

	_, _, details := Compose(domain.ModuleFinance, intPtr(20), domain.SentimentNegative, bundle)

	require.NotEmpty(t, details.Warnings)
	assert.Equal(t, "over_budget", details.TopPriority)
	assert.NotEmpty(t, details.Motivation)
	assert.Empty(t, details.Encouragement, "never both closing lines")
}

func TestCompose_EncouragementWhenPositive(t *testing.T) {
	bundle := financeBundle(map[string]float64{
		extractors.MetricExpenseCount:  4,
		extractors.MetricOnBudgetRatio: 1,
		extractors.MetricSavingsRate:   0.4,
	}, 4)

	_, _, details := Compose(domain.ModuleFinance, intPtr(85), domain.SentimentPositive, bundle)

	assert.NotEmpty(t, details.Encouragement)
	assert.Empty(t, details.Motivation)
}

func TestCompose_InsufficientData(t *testing.T) {
	bundle := financeBundle(nil, 0)

	_, content, details := Compose(domain.ModuleFinance, nil, domain.SentimentNeutral, bundle)

	assert.Contains(t, content, "nothing to score")
	assert.Empty(t, details.Highlights)
	assert.Empty(t, details.Warnings)
}

func TestCompose_ItemCountsCapped(t *testing.T) {
	for _, module := range domain.Modules {
		tmpl, ok := templates[module]
		require.True(t, ok, "module %s needs a template", module)
		assert.NotEmpty(t, tmpl.insufficient)
		assert.LessOrEqual(t, len(tmpl.rules), 6)
		for _, sentiment := range []domain.Sentiment{
			domain.SentimentPositive, domain.SentimentNeutral, domain.SentimentNegative,
		} {
			assert.NotEmpty(t, tmpl.titles[sentiment])
			assert.NotEmpty(t, tmpl.summaries[sentiment])
		}
	}
}
