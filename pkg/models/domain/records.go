package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one finance record. OverBudget is stamped by the budgeting
// layer that owns category budgets; this core only reads it.
type Transaction struct {
	ID         string
	Amount     decimal.Decimal
	Income     bool
	CategoryID string
	Category   string
	Note       string
	OverBudget bool
	OccurredOn time.Time
}

// TodoItem is one productivity record.
type TodoItem struct {
	ID          string
	Title       string
	Note        string
	DueOn       *time.Time
	Completed   bool
	CompletedAt *time.Time
	CreatedAt   time.Time
}

// HabitCheck is one habit check-in for a day.
type HabitCheck struct {
	ID        string
	Habit     string
	CheckedOn time.Time
}

// DiaryEntry is one diary record. Mood is the author's own three-way label.
type DiaryEntry struct {
	ID        string
	Words     int
	Mood      string // good | neutral | bad
	WrittenOn time.Time
}

// SavingsDeposit is one deposit toward a savings goal.
type SavingsDeposit struct {
	ID          string
	Amount      decimal.Decimal
	Goal        string
	DepositedOn time.Time
}
