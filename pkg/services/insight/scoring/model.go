package scoring

import (
	"math"

	"github.com/life-tools/life-atlas/pkg/models/domain"
	"github.com/life-tools/life-atlas/pkg/services/insight/extractors"
)

// Sentiment thresholds. These are the single source of truth: composer, UI
// and API all derive sentiment from score through SentimentFor, never on
// their own.
const (
	PositiveThreshold = 70
	NeutralThreshold  = 40
)

// SentimentFor maps a 0-100 score onto the three-way sentiment.
func SentimentFor(score int) domain.Sentiment {
	switch {
	case score >= PositiveThreshold:
		return domain.SentimentPositive
	case score >= NeutralThreshold:
		return domain.SentimentNeutral
	default:
		return domain.SentimentNegative
	}
}

// term is one weighted sub-metric of a module score. The normalizer maps the
// raw metric into [0,1]; its output is clamped again so no outlier metric can
// push a score outside range. Weights per module sum to 1.
type term struct {
	metric string
	weight float64
	norm   func(v float64) float64
}

func identity(v float64) float64 { return v }

func fraction(of float64) func(float64) float64 {
	return func(v float64) float64 { return v / of }
}

// inversePressure maps a count where 0 is best and `worst` or more is worst.
func inversePressure(worst float64) func(float64) float64 {
	return func(v float64) float64 { return 1 - v/worst }
}

var modelTerms = map[domain.Module][]term{
	domain.ModuleFinance: {
		{metric: extractors.MetricOnBudgetRatio, weight: 0.5, norm: identity},
		{metric: extractors.MetricSavingsRate, weight: 0.3, norm: identity},
		{metric: extractors.MetricIncomeCoverage, weight: 0.2, norm: identity},
	},
	domain.ModuleTodo: {
		{metric: extractors.MetricCompletionRate, weight: 0.6, norm: identity},
		{metric: extractors.MetricOverdueCount, weight: 0.4, norm: inversePressure(5)},
	},
	domain.ModuleHabit: {
		{metric: extractors.MetricCheckRate, weight: 0.7, norm: identity},
		{metric: extractors.MetricBestStreak, weight: 0.3, norm: fraction(7)},
	},
	domain.ModuleDiary: {
		{metric: extractors.MetricEntryRate, weight: 0.5, norm: identity},
		{metric: extractors.MetricGoodMoodRatio, weight: 0.3, norm: identity},
		{metric: extractors.MetricAvgWords, weight: 0.2, norm: fraction(150)},
	},
	domain.ModuleSavings: {
		{metric: extractors.MetricDepositRegularity, weight: 0.6, norm: identity},
		{metric: extractors.MetricDepositCount, weight: 0.4, norm: fraction(5)},
	},
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Score computes the deterministic 0-100 score and sentiment for one module
// bundle. An empty bundle means "no data", not failure: it scores nil with
// NEUTRAL sentiment so zero activity never reads as a zero score.
func Score(bundle domain.MetricBundle) (*int, domain.Sentiment) {
	if bundle.Empty() {
		return nil, domain.SentimentNeutral
	}

	terms, ok := modelTerms[bundle.Module]
	if !ok {
		return nil, domain.SentimentNeutral
	}

	var weighted float64
	for _, t := range terms {
		weighted += t.weight * clamp01(t.norm(bundle.Metric(t.metric)))
	}

	score := int(math.Round(weighted * 100))
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return &score, SentimentFor(score)
}

// Overall averages the per-domain scores with equal weight, excluding empty
// bundles from the average rather than imputing them as zero. With no
// non-empty bundle at all, the composite is nil and NEUTRAL.
func Overall(bundles []domain.MetricBundle) (*int, domain.Sentiment) {
	var sum, n int
	for _, bundle := range bundles {
		score, _ := Score(bundle)
		if score == nil {
			continue
		}
		sum += *score
		n++
	}

	if n == 0 {
		return nil, domain.SentimentNeutral
	}

	avg := int(math.Round(float64(sum) / float64(n)))
	return &avg, SentimentFor(avg)
}
