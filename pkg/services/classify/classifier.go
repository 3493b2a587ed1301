// Package classify wraps the external LLM call that labels an utterance with
// a coarse intent and a loose slot map. The rest of the system depends only
// on the Classifier interface; malformed model output degrades to UNKNOWN
// rather than an error.
package classify

import (
	"context"

	"github.com/life-tools/life-atlas/pkg/models/domain"
)

type Classifier interface {
	Classify(ctx context.Context, utterance string) (domain.Classification, error)
}

// Unknown is the degenerate classification used for empty or unusable
// model responses.
func Unknown() domain.Classification {
	return domain.Classification{Intent: domain.IntentUnknown, Slots: map[string]string{}}
}

func knownIntent(s string) (domain.Intent, bool) {
	switch domain.Intent(s) {
	case domain.IntentRecordExpense,
		domain.IntentRecordIncome,
		domain.IntentAddTodo,
		domain.IntentCheckHabit,
		domain.IntentQuerySummary:
		return domain.Intent(s), true
	}
	return domain.IntentUnknown, false
}
