package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/life-tools/life-atlas/pkg/models/domain"
)

func TestParseResponse(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		wantIntent domain.Intent
		wantSlots  map[string]string
	}{
		{
			name:       "plain json",
			content:    `{"intent": "RECORD_EXPENSE", "slots": {"amount": "45", "category": "lunch"}}`,
			wantIntent: domain.IntentRecordExpense,
			wantSlots:  map[string]string{"amount": "45", "category": "lunch"},
		},
		{
			name:       "fenced json",
			content:    "```json\n{\"intent\": \"ADD_TODO\", \"slots\": {\"title\": \"call mom\"}}\n```",
			wantIntent: domain.IntentAddTodo,
			wantSlots:  map[string]string{"title": "call mom"},
		},
		{
			name:       "missing slots object",
			content:    `{"intent": "QUERY_SUMMARY"}`,
			wantIntent: domain.IntentQuerySummary,
			wantSlots:  map[string]string{},
		},
		{
			name:       "unknown intent label",
			content:    `{"intent": "ORDER_PIZZA", "slots": {}}`,
			wantIntent: domain.IntentUnknown,
		},
		{
			name:       "not json at all",
			content:    "sorry, I can't help with that",
			wantIntent: domain.IntentUnknown,
		},
		{
			name:       "empty response",
			content:    "",
			wantIntent: domain.IntentUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseResponse(tt.content)
			assert.Equal(t, tt.wantIntent, got.Intent)
			if tt.wantSlots != nil {
				assert.Equal(t, tt.wantSlots, got.Slots)
			}
		})
	}
}
