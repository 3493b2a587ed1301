package store

import "time"

// Flat row shapes for the duckdb stores. Amounts travel as float64 at the
// storage boundary; the adapters restore decimal precision domain-side.

type Transaction struct {
	ID         string
	Amount     float64
	Income     bool
	CategoryID string
	Category   string
	Note       string
	OverBudget bool
	OccurredOn time.Time
}

type TodoItem struct {
	ID          string
	Title       string
	Note        string
	DueOn       *time.Time
	Completed   bool
	CompletedAt *time.Time
	CreatedAt   time.Time
}

type HabitCheck struct {
	ID        string
	Habit     string
	CheckedOn time.Time
}

type DiaryEntry struct {
	ID        string
	Words     int
	Mood      string
	WrittenOn time.Time
}

type SavingsDeposit struct {
	ID          string
	Amount      float64
	Goal        string
	DepositedOn time.Time
}
