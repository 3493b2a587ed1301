// Package parser converts the loose intent + slot map from the LLM boundary
// into a strongly-typed Command. Untyped slot maps stop here; nothing past
// this package sees them.
package parser

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/life-tools/life-atlas/pkg/models/domain"
)

// Slot names as supplied by the classification call.
const (
	SlotAmount   = "amount"
	SlotCategory = "category"
	SlotDate     = "date"
	SlotNote     = "note"
	SlotTitle    = "title"
	SlotHabit    = "habit"
	SlotModule   = "module"
)

// CategorySource lists the valid categorization targets for a module. Owned
// by the app's category settings; this core only matches against it.
type CategorySource interface {
	ValidCategories(ctx context.Context, module domain.Module) ([]domain.Category, error)
}

type Parser struct {
	categories CategorySource
	now        func() time.Time
}

func New(categories CategorySource, now func() time.Time) *Parser {
	if now == nil {
		now = time.Now
	}
	return &Parser{categories: categories, now: now}
}

// Parse validates and coerces one classification into a ParseOutcome.
// Required slots that fail coercion, or fuzzy matches without a single
// unambiguous candidate, yield a clarification naming exactly that slot.
// Optional slots default silently: a missing date is today, a missing note
// is empty.
func (p *Parser) Parse(ctx context.Context, c domain.Classification) (domain.ParseOutcome, error) {
	switch c.Intent {
	case domain.IntentRecordExpense:
		return p.parseTransaction(ctx, c.Slots, false)
	case domain.IntentRecordIncome:
		return p.parseTransaction(ctx, c.Slots, true)
	case domain.IntentAddTodo:
		return p.parseAddTodo(c.Slots)
	case domain.IntentCheckHabit:
		return p.parseCheckHabit(c.Slots)
	case domain.IntentQuerySummary:
		return p.parseQuerySummary(c.Slots)
	default:
		return rejected("unsupported"), nil
	}
}

func (p *Parser) parseTransaction(ctx context.Context, slots map[string]string, income bool) (domain.ParseOutcome, error) {
	raw, ok := slots[SlotAmount]
	if !ok || strings.TrimSpace(raw) == "" {
		return clarify(SlotAmount, "How much was it?"), nil
	}
	amount, err := parseAmount(raw)
	if err != nil {
		return clarify(SlotAmount, fmt.Sprintf("I couldn't read %q as an amount. How much was it?", raw)), nil
	}

	cmd := domain.RecordTransaction{
		Amount: amount,
		Income: income,
		Note:   slots[SlotNote],
	}

	// Expenses get categorized; income entries may skip the category.
	catSlot := strings.TrimSpace(slots[SlotCategory])
	if catSlot == "" && !income {
		return clarify(SlotCategory, "Which category is this for?"), nil
	}
	if catSlot != "" {
		categories, err := p.categories.ValidCategories(ctx, domain.ModuleFinance)
		if err != nil {
			return domain.ParseOutcome{}, fmt.Errorf("load categories: %w", err)
		}
		candidates := matchCategory(catSlot, categories)
		switch len(candidates) {
		case 0:
			return clarify(SlotCategory, fmt.Sprintf("I don't know a category like %q. Which category is this for?", catSlot)), nil
		case 1:
			cmd.CategoryID = candidates[0].ID
			cmd.CategoryName = candidates[0].Name
		default:
			names := make([]string, 0, len(candidates))
			for _, c := range candidates {
				names = append(names, c.Name)
			}
			return clarify(SlotCategory, fmt.Sprintf("Did you mean %s?", strings.Join(names, " or "))), nil
		}
	}

	occurredOn, outcome, done := p.resolveDateSlot(slots)
	if done {
		return outcome, nil
	}
	cmd.OccurredOn = occurredOn

	return ready(cmd), nil
}

func (p *Parser) parseAddTodo(slots map[string]string) (domain.ParseOutcome, error) {
	title, ok := slots[SlotTitle]
	if !ok || strings.TrimSpace(title) == "" {
		return clarify(SlotTitle, "What is the task?"), nil
	}

	cmd := domain.AddTodo{
		Title: strings.TrimSpace(title),
		Note:  slots[SlotNote],
	}

	// Due date is optional: absent means no due date at all, present but
	// unreadable still needs clarifying.
	if raw, present := slots[SlotDate]; present && strings.TrimSpace(raw) != "" {
		due, err := resolveDate(raw, p.now())
		if err != nil {
			return clarify(SlotDate, fmt.Sprintf("I couldn't read %q as a date. When is it due?", raw)), nil
		}
		cmd.DueOn = &due
	}

	return ready(cmd), nil
}

func (p *Parser) parseCheckHabit(slots map[string]string) (domain.ParseOutcome, error) {
	habit, ok := slots[SlotHabit]
	if !ok || strings.TrimSpace(habit) == "" {
		return clarify(SlotHabit, "Which habit did you check off?"), nil
	}

	checkedOn, outcome, done := p.resolveDateSlot(slots)
	if done {
		return outcome, nil
	}

	return ready(domain.CheckHabit{
		Habit:     strings.TrimSpace(habit),
		CheckedOn: checkedOn,
	}), nil
}

func (p *Parser) parseQuerySummary(slots map[string]string) (domain.ParseOutcome, error) {
	raw, present := slots[SlotModule]
	if !present || strings.TrimSpace(raw) == "" {
		return ready(domain.QuerySummary{Module: domain.ModuleOverall}), nil
	}

	module := domain.Module(strings.ToLower(strings.TrimSpace(raw)))
	if !module.Valid() {
		return clarify(SlotModule, fmt.Sprintf("I don't track %q. Which area do you want a summary of?", raw)), nil
	}
	return ready(domain.QuerySummary{Module: module}), nil
}

// resolveDateSlot handles the common optional date slot: missing defaults to
// today and never clarifies; present but unreadable clarifies.
func (p *Parser) resolveDateSlot(slots map[string]string) (time.Time, domain.ParseOutcome, bool) {
	raw, present := slots[SlotDate]
	if !present || strings.TrimSpace(raw) == "" {
		now := p.now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), domain.ParseOutcome{}, false
	}

	resolved, err := resolveDate(raw, p.now())
	if err != nil {
		return time.Time{}, clarify(SlotDate, fmt.Sprintf("I couldn't read %q as a date. When did this happen?", raw)), true
	}
	return resolved, domain.ParseOutcome{}, false
}

func ready(cmd domain.Command) domain.ParseOutcome {
	return domain.ParseOutcome{Status: domain.OutcomeReady, Command: cmd}
}

func clarify(slot, question string) domain.ParseOutcome {
	return domain.ParseOutcome{Status: domain.OutcomeNeedsClarification, Slot: slot, Question: question}
}

func rejected(reason string) domain.ParseOutcome {
	return domain.ParseOutcome{Status: domain.OutcomeRejected, Reason: reason}
}
