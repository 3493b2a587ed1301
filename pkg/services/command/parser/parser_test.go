package parser

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/life-tools/life-atlas/pkg/models/domain"
)

type fakeCategories struct {
	categories []domain.Category
}

func (f *fakeCategories) ValidCategories(_ context.Context, _ domain.Module) ([]domain.Category, error) {
	return f.categories, nil
}

var testCategories = []domain.Category{
	{ID: "cat-dining", Name: "Dining", Aliases: []string{"lunch", "dinner", "restaurant"}},
	{ID: "cat-groceries", Name: "Groceries", Aliases: []string{"supermarket"}},
	{ID: "cat-transport", Name: "Transport", Aliases: []string{"bus", "taxi"}},
	{ID: "cat-fun", Name: "Entertainment", Aliases: []string{"movies"}},
}

// Wednesday.
var testNow = time.Date(2025, 3, 12, 15, 30, 0, 0, time.UTC)

func fixedNow() time.Time { return testNow }

func newParser() *Parser {
	return New(&fakeCategories{categories: testCategories}, fixedNow)
}

func classification(intent domain.Intent, slots map[string]string) domain.Classification {
	return domain.Classification{Intent: intent, Slots: slots}
}

func TestParse_FullySpecifiedExpense(t *testing.T) {
	// "spent 45 on lunch today"
	outcome, err := newParser().Parse(context.Background(), classification(
		domain.IntentRecordExpense,
		map[string]string{"amount": "45", "category": "lunch", "date": "today"},
	))
	require.NoError(t, err)

	require.Equal(t, domain.OutcomeReady, outcome.Status)
	cmd, ok := outcome.Command.(domain.RecordTransaction)
	require.True(t, ok)
	assert.True(t, cmd.Amount.Equal(decimal.NewFromInt(45)))
	assert.Equal(t, "cat-dining", cmd.CategoryID)
	assert.Equal(t, "Dining", cmd.CategoryName)
	assert.False(t, cmd.Income)
	assert.Equal(t, time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), cmd.OccurredOn)
}

func TestParse_MissingTitleAsksForTask(t *testing.T) {
	// "add a task"
	outcome, err := newParser().Parse(context.Background(), classification(
		domain.IntentAddTodo,
		map[string]string{},
	))
	require.NoError(t, err)

	assert.Equal(t, domain.OutcomeNeedsClarification, outcome.Status)
	assert.Equal(t, SlotTitle, outcome.Slot)
	assert.Equal(t, "What is the task?", outcome.Question)
}

func TestParse_UnknownIntentRejected(t *testing.T) {
	outcome, err := newParser().Parse(context.Background(), classification(domain.IntentUnknown, nil))
	require.NoError(t, err)

	assert.Equal(t, domain.OutcomeRejected, outcome.Status)
	assert.Equal(t, "unsupported", outcome.Reason)
}

func TestParse_AmountCoercion(t *testing.T) {
	tests := []struct {
		name      string
		amount    string
		wantReady bool
	}{
		{"plain integer", "45", true},
		{"decimal", "45.50", true},
		{"currency symbol", "$45", true},
		{"thousands separator", "1,200", true},
		{"negative", "-5", false},
		{"zero", "0", false},
		{"words", "forty five", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, err := newParser().Parse(context.Background(), classification(
				domain.IntentRecordExpense,
				map[string]string{"amount": tt.amount, "category": "lunch"},
			))
			require.NoError(t, err)

			if tt.wantReady {
				assert.Equal(t, domain.OutcomeReady, outcome.Status)
			} else {
				assert.Equal(t, domain.OutcomeNeedsClarification, outcome.Status)
				assert.Equal(t, SlotAmount, outcome.Slot)
			}
		})
	}
}

func TestParse_RelativeDates(t *testing.T) {
	tests := []struct {
		date string
		want time.Time
	}{
		{"today", time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)},
		{"yesterday", time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)},
		{"monday", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)},
		{"wednesday", time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)}, // today's weekday is today
		{"thursday", time.Date(2025, 3, 6, 0, 0, 0, 0, time.UTC)},  // most recent past thursday
		{"2025-03-01", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			outcome, err := newParser().Parse(context.Background(), classification(
				domain.IntentRecordExpense,
				map[string]string{"amount": "10", "category": "bus", "date": tt.date},
			))
			require.NoError(t, err)

			require.Equal(t, domain.OutcomeReady, outcome.Status)
			cmd := outcome.Command.(domain.RecordTransaction)
			assert.Equal(t, tt.want, cmd.OccurredOn)
		})
	}
}

func TestParse_UnreadableDateClarifies(t *testing.T) {
	outcome, err := newParser().Parse(context.Background(), classification(
		domain.IntentRecordExpense,
		map[string]string{"amount": "10", "category": "bus", "date": "whenever"},
	))
	require.NoError(t, err)

	assert.Equal(t, domain.OutcomeNeedsClarification, outcome.Status)
	assert.Equal(t, SlotDate, outcome.Slot)
}

func TestParse_MissingDateDefaultsToToday(t *testing.T) {
	outcome, err := newParser().Parse(context.Background(), classification(
		domain.IntentRecordExpense,
		map[string]string{"amount": "10", "category": "bus"},
	))
	require.NoError(t, err)

	require.Equal(t, domain.OutcomeReady, outcome.Status)
	cmd := outcome.Command.(domain.RecordTransaction)
	assert.Equal(t, time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), cmd.OccurredOn)
	assert.Empty(t, cmd.Note, "missing note defaults to empty, never clarifies")
}

func TestParse_CategoryFuzzyMatch(t *testing.T) {
	outcome, err := newParser().Parse(context.Background(), classification(
		domain.IntentRecordExpense,
		map[string]string{"amount": "30", "category": "SUPERMARKET"},
	))
	require.NoError(t, err)

	require.Equal(t, domain.OutcomeReady, outcome.Status)
	cmd := outcome.Command.(domain.RecordTransaction)
	assert.Equal(t, "cat-groceries", cmd.CategoryID)
}

func TestParse_CategoryNoMatchClarifies(t *testing.T) {
	outcome, err := newParser().Parse(context.Background(), classification(
		domain.IntentRecordExpense,
		map[string]string{"amount": "30", "category": "spaceship"},
	))
	require.NoError(t, err)

	assert.Equal(t, domain.OutcomeNeedsClarification, outcome.Status)
	assert.Equal(t, SlotCategory, outcome.Slot)
}

func TestParse_CategoryTieClarifies(t *testing.T) {
	// "din" sits inside both "Dining" and "dinner" (same category), but a
	// three-letter hit on two different categories must not be guessed.
	parser := New(&fakeCategories{categories: []domain.Category{
		{ID: "cat-a", Name: "Car"},
		{ID: "cat-b", Name: "Care"},
	}}, fixedNow)

	outcome, err := parser.Parse(context.Background(), classification(
		domain.IntentRecordExpense,
		map[string]string{"amount": "30", "category": "car"},
	))
	require.NoError(t, err)

	assert.Equal(t, domain.OutcomeNeedsClarification, outcome.Status)
	assert.Equal(t, SlotCategory, outcome.Slot)
	assert.Contains(t, outcome.Question, "Car")
	assert.Contains(t, outcome.Question, "Care")
}

func TestParse_IncomeSkipsCategory(t *testing.T) {
	outcome, err := newParser().Parse(context.Background(), classification(
		domain.IntentRecordIncome,
		map[string]string{"amount": "2500"},
	))
	require.NoError(t, err)

	require.Equal(t, domain.OutcomeReady, outcome.Status)
	cmd := outcome.Command.(domain.RecordTransaction)
	assert.True(t, cmd.Income)
	assert.Empty(t, cmd.CategoryID)
}

func TestParse_CheckHabit(t *testing.T) {
	outcome, err := newParser().Parse(context.Background(), classification(
		domain.IntentCheckHabit,
		map[string]string{"habit": "running", "date": "yesterday"},
	))
	require.NoError(t, err)

	require.Equal(t, domain.OutcomeReady, outcome.Status)
	cmd := outcome.Command.(domain.CheckHabit)
	assert.Equal(t, "running", cmd.Habit)
	assert.Equal(t, time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), cmd.CheckedOn)
}

func TestParse_QuerySummaryDefaultsToOverall(t *testing.T) {
	outcome, err := newParser().Parse(context.Background(), classification(
		domain.IntentQuerySummary, map[string]string{},
	))
	require.NoError(t, err)

	require.Equal(t, domain.OutcomeReady, outcome.Status)
	cmd := outcome.Command.(domain.QuerySummary)
	assert.Equal(t, domain.ModuleOverall, cmd.Module)
}

func TestParse_QuerySummaryUnknownModuleClarifies(t *testing.T) {
	outcome, err := newParser().Parse(context.Background(), classification(
		domain.IntentQuerySummary, map[string]string{"module": "astrology"},
	))
	require.NoError(t, err)

	assert.Equal(t, domain.OutcomeNeedsClarification, outcome.Status)
	assert.Equal(t, SlotModule, outcome.Slot)
}

func TestParse_TodoWithDueDate(t *testing.T) {
	outcome, err := newParser().Parse(context.Background(), classification(
		domain.IntentAddTodo,
		map[string]string{"title": "file taxes", "date": "tomorrow"},
	))
	require.NoError(t, err)

	require.Equal(t, domain.OutcomeReady, outcome.Status)
	cmd := outcome.Command.(domain.AddTodo)
	require.NotNil(t, cmd.DueOn)
	assert.Equal(t, time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC), *cmd.DueOn)
}

func TestParse_TodoWithoutDateHasNoDueDate(t *testing.T) {
	outcome, err := newParser().Parse(context.Background(), classification(
		domain.IntentAddTodo,
		map[string]string{"title": "call dentist"},
	))
	require.NoError(t, err)

	require.Equal(t, domain.OutcomeReady, outcome.Status)
	cmd := outcome.Command.(domain.AddTodo)
	assert.Nil(t, cmd.DueOn)
}
