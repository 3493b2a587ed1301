package command

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/life-tools/life-atlas/pkg/models/domain"
)

// Recorder interfaces cover the one mutation entry point per command kind.
// Each command touches exactly one of these stores, so all-or-nothing
// execution reduces to the single call's own transactional guarantee.

type FinanceRecorder interface {
	Add(ctx context.Context, t domain.Transaction) error
}

type TodoRecorder interface {
	Add(ctx context.Context, item domain.TodoItem) error
}

type HabitRecorder interface {
	Add(ctx context.Context, check domain.HabitCheck) error
}

// Insights is the slice of the insight facade the executor needs: a
// read-only summary for queries, and the invalidate signal after mutations.
type Insights interface {
	RefreshAnalysis(ctx context.Context, module domain.Module) (domain.Analysis, error)
	Invalidate(module domain.Module)
}

type Executor struct {
	finance  FinanceRecorder
	todos    TodoRecorder
	habits   HabitRecorder
	insights Insights
	newID    func() string
	now      func() time.Time
}

func NewExecutor(
	finance FinanceRecorder,
	todos TodoRecorder,
	habits HabitRecorder,
	insights Insights,
) *Executor {
	return &Executor{
		finance:  finance,
		todos:    todos,
		habits:   habits,
		insights: insights,
		newID:    uuid.NewString,
		now:      time.Now,
	}
}

// Execute runs one validated command against its single domain store and
// returns exactly one terminal result. On success the touched module's
// analysis is invalidated synchronously; on failure no store was mutated and
// the cache is left alone. The executor never retries.
func (e *Executor) Execute(ctx context.Context, cmd domain.Command) domain.ExecutionResult {
	switch c := cmd.(type) {
	case domain.RecordTransaction:
		return e.recordTransaction(ctx, c)
	case domain.AddTodo:
		return e.addTodo(ctx, c)
	case domain.CheckHabit:
		return e.checkHabit(ctx, c)
	case domain.QuerySummary:
		return e.querySummary(ctx, c)
	default:
		return domain.Failed(domain.ErrUnsupportedIntent, apology)
	}
}

func (e *Executor) recordTransaction(ctx context.Context, c domain.RecordTransaction) domain.ExecutionResult {
	tx := domain.Transaction{
		ID:         e.newID(),
		Amount:     c.Amount,
		Income:     c.Income,
		CategoryID: c.CategoryID,
		Category:   c.CategoryName,
		Note:       c.Note,
		OccurredOn: c.OccurredOn,
	}

	if err := e.finance.Add(ctx, tx); err != nil {
		return domain.Failed(domain.ErrExecution, fmt.Sprintf("could not complete: %v", err))
	}
	e.insights.Invalidate(domain.ModuleFinance)

	kind := "expense"
	if c.Income {
		kind = "income"
	}
	summary := fmt.Sprintf("Recorded %s of %s", kind, c.Amount.StringFixed(2))
	if c.CategoryName != "" {
		summary += fmt.Sprintf(" (%s)", c.CategoryName)
	}
	summary += fmt.Sprintf(" on %s.", c.OccurredOn.Format("2006-01-02"))
	return domain.Succeeded(summary)
}

func (e *Executor) addTodo(ctx context.Context, c domain.AddTodo) domain.ExecutionResult {
	item := domain.TodoItem{
		ID:        e.newID(),
		Title:     c.Title,
		Note:      c.Note,
		DueOn:     c.DueOn,
		CreatedAt: e.now(),
	}

	if err := e.todos.Add(ctx, item); err != nil {
		return domain.Failed(domain.ErrExecution, fmt.Sprintf("could not complete: %v", err))
	}
	e.insights.Invalidate(domain.ModuleTodo)

	if c.DueOn != nil {
		return domain.Succeeded(fmt.Sprintf("Added task %q, due %s.", c.Title, c.DueOn.Format("2006-01-02")))
	}
	return domain.Succeeded(fmt.Sprintf("Added task %q.", c.Title))
}

func (e *Executor) checkHabit(ctx context.Context, c domain.CheckHabit) domain.ExecutionResult {
	check := domain.HabitCheck{
		ID:        e.newID(),
		Habit:     c.Habit,
		CheckedOn: c.CheckedOn,
	}

	if err := e.habits.Add(ctx, check); err != nil {
		return domain.Failed(domain.ErrExecution, fmt.Sprintf("could not complete: %v", err))
	}
	e.insights.Invalidate(domain.ModuleHabit)

	return domain.Succeeded(fmt.Sprintf("Checked off %q for %s.", c.Habit, c.CheckedOn.Format("2006-01-02")))
}

// querySummary reads through the insight facade and leaves the cache alone.
func (e *Executor) querySummary(ctx context.Context, c domain.QuerySummary) domain.ExecutionResult {
	a, err := e.insights.RefreshAnalysis(ctx, c.Module)
	if err != nil {
		return domain.Failed(domain.ErrExecution, fmt.Sprintf("could not complete: %v", err))
	}
	return domain.Succeeded(fmt.Sprintf("%s %s", a.Title+".", a.Content))
}
