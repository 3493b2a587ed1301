package records

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/life-tools/life-atlas/pkg/adapters"
	"github.com/life-tools/life-atlas/pkg/models/domain"
	"github.com/life-tools/life-atlas/pkg/models/store"
)

// FinanceStore persists transactions and serves windowed reads for the
// finance extractor. Add is the single mutation entry point used by the
// command executor.
type FinanceStore interface {
	Add(ctx context.Context, t domain.Transaction) error
	GetWindow(ctx context.Context, start, end time.Time) ([]domain.Transaction, error)
}

type financeStore struct {
	db *sql.DB
}

func NewFinanceStore(db *sql.DB) (FinanceStore, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &financeStore{db: db}, nil
}

func (s *financeStore) Add(ctx context.Context, t domain.Transaction) error {
	row := adapters.MapDomainTransactionToStore(t)
	query := `
		INSERT INTO transactions (
			id, amount, income, category_id, category, note, over_budget, occurred_on
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		row.ID,
		row.Amount,
		row.Income,
		row.CategoryID,
		row.Category,
		row.Note,
		row.OverBudget,
		row.OccurredOn,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

func (s *financeStore) GetWindow(ctx context.Context, start, end time.Time) ([]domain.Transaction, error) {
	query := `
		SELECT id, amount, income, category_id, category, note, over_budget, occurred_on
		FROM transactions
		WHERE occurred_on >= ? AND occurred_on < ?
		ORDER BY occurred_on`

	rows, err := s.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var result []domain.Transaction
	for rows.Next() {
		var row store.Transaction
		if err := rows.Scan(
			&row.ID,
			&row.Amount,
			&row.Income,
			&row.CategoryID,
			&row.Category,
			&row.Note,
			&row.OverBudget,
			&row.OccurredOn,
		); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		result = append(result, adapters.MapStoreTransactionToDomain(row))
	}
	return result, rows.Err()
}
