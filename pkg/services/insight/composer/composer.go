package composer

import (
	"fmt"

	"github.com/life-tools/life-atlas/pkg/models/domain"
)

const maxItems = 3

// Compose builds the title, one-paragraph summary and structured details for
// one module from its score, sentiment and metric bundle. It is pure:
// identical inputs always produce identical output, byte for byte.
//
// A nil score means the window had no data; the summary then explains the
// missing data instead of pretending a score of zero.
func Compose(
	module domain.Module,
	score *int,
	sentiment domain.Sentiment,
	bundle domain.MetricBundle,
) (title, content string, details domain.AnalysisDetails) {
	tmpl, ok := templates[module]
	if !ok {
		return string(module), fmt.Sprintf("No insight template for %s.", module), details
	}

	title = tmpl.titles[sentiment]

	if score == nil {
		content = tmpl.insufficient
		details.Suggestions = []string{"Record a little activity here and check back."}
		return title, content, details
	}

	content = fmt.Sprintf(tmpl.summaries[sentiment], *score)

	for _, rule := range tmpl.rules {
		if !rule.applies(bundle) {
			continue
		}
		if rule.highlight != nil && len(details.Highlights) < maxItems {
			details.Highlights = append(details.Highlights, rule.highlight(bundle))
		}
		if rule.warning != nil && len(details.Warnings) < maxItems {
			details.Warnings = append(details.Warnings, rule.warning(bundle))
			if details.TopPriority == "" {
				details.TopPriority = rule.flag
			}
		}
		if rule.suggestion != nil && len(details.Suggestions) < maxItems {
			details.Suggestions = append(details.Suggestions, rule.suggestion(bundle))
		}
	}

	// One closing line at most: encouragement when things go well,
	// motivation when they do not.
	switch sentiment {
	case domain.SentimentPositive:
		details.Encouragement = tmpl.encouragement
	case domain.SentimentNegative:
		details.Motivation = tmpl.motivation
	}

	return title, content, details
}
