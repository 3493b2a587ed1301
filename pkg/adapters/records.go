package adapters

import (
	"github.com/shopspring/decimal"

	"github.com/life-tools/life-atlas/pkg/models/domain"
	"github.com/life-tools/life-atlas/pkg/models/store"
)

func MapStoreTransactionToDomain(t store.Transaction) domain.Transaction {
	return domain.Transaction{
		ID:         t.ID,
		Amount:     decimal.NewFromFloat(t.Amount),
		Income:     t.Income,
		CategoryID: t.CategoryID,
		Category:   t.Category,
		Note:       t.Note,
		OverBudget: t.OverBudget,
		OccurredOn: t.OccurredOn,
	}
}

func MapDomainTransactionToStore(t domain.Transaction) store.Transaction {
	return store.Transaction{
		ID:         t.ID,
		Amount:     t.Amount.InexactFloat64(),
		Income:     t.Income,
		CategoryID: t.CategoryID,
		Category:   t.Category,
		Note:       t.Note,
		OverBudget: t.OverBudget,
		OccurredOn: t.OccurredOn,
	}
}

func MapStoreTodoToDomain(t store.TodoItem) domain.TodoItem {
	return domain.TodoItem{
		ID:          t.ID,
		Title:       t.Title,
		Note:        t.Note,
		DueOn:       t.DueOn,
		Completed:   t.Completed,
		CompletedAt: t.CompletedAt,
		CreatedAt:   t.CreatedAt,
	}
}

func MapDomainTodoToStore(t domain.TodoItem) store.TodoItem {
	return store.TodoItem{
		ID:          t.ID,
		Title:       t.Title,
		Note:        t.Note,
		DueOn:       t.DueOn,
		Completed:   t.Completed,
		CompletedAt: t.CompletedAt,
		CreatedAt:   t.CreatedAt,
	}
}

func MapStoreHabitCheckToDomain(h store.HabitCheck) domain.HabitCheck {
	return domain.HabitCheck{ID: h.ID, Habit: h.Habit, CheckedOn: h.CheckedOn}
}

func MapDomainHabitCheckToStore(h domain.HabitCheck) store.HabitCheck {
	return store.HabitCheck{ID: h.ID, Habit: h.Habit, CheckedOn: h.CheckedOn}
}

func MapStoreDiaryEntryToDomain(d store.DiaryEntry) domain.DiaryEntry {
	return domain.DiaryEntry{ID: d.ID, Words: d.Words, Mood: d.Mood, WrittenOn: d.WrittenOn}
}

func MapDomainDiaryEntryToStore(d domain.DiaryEntry) store.DiaryEntry {
	return store.DiaryEntry{ID: d.ID, Words: d.Words, Mood: d.Mood, WrittenOn: d.WrittenOn}
}

func MapStoreSavingsDepositToDomain(s store.SavingsDeposit) domain.SavingsDeposit {
	return domain.SavingsDeposit{
		ID:          s.ID,
		Amount:      decimal.NewFromFloat(s.Amount),
		Goal:        s.Goal,
		DepositedOn: s.DepositedOn,
	}
}

func MapDomainSavingsDepositToStore(s domain.SavingsDeposit) store.SavingsDeposit {
	return store.SavingsDeposit{
		ID:          s.ID,
		Amount:      s.Amount.InexactFloat64(),
		Goal:        s.Goal,
		DepositedOn: s.DepositedOn,
	}
}
