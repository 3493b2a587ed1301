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

type SavingsStore interface {
	Add(ctx context.Context, deposit domain.SavingsDeposit) error
	GetWindow(ctx context.Context, start, end time.Time) ([]domain.SavingsDeposit, error)
}

type savingsStore struct {
	db *sql.DB
}

func NewSavingsStore(db *sql.DB) (SavingsStore, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &savingsStore{db: db}, nil
}

func (s *savingsStore) Add(ctx context.Context, deposit domain.SavingsDeposit) error {
	row := adapters.MapDomainSavingsDepositToStore(deposit)
	query := `INSERT INTO savings_deposits (id, amount, goal, deposited_on) VALUES (?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query, row.ID, row.Amount, row.Goal, row.DepositedOn)
	if err != nil {
		return fmt.Errorf("insert savings deposit: %w", err)
	}
	return nil
}

func (s *savingsStore) GetWindow(ctx context.Context, start, end time.Time) ([]domain.SavingsDeposit, error) {
	query := `
		SELECT id, amount, goal, deposited_on
		FROM savings_deposits
		WHERE deposited_on >= ? AND deposited_on < ?
		ORDER BY deposited_on`

	rows, err := s.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("query savings deposits: %w", err)
	}
	defer rows.Close()

	var result []domain.SavingsDeposit
	for rows.Next() {
		var row store.SavingsDeposit
		if err := rows.Scan(&row.ID, &row.Amount, &row.Goal, &row.DepositedOn); err != nil {
			return nil, fmt.Errorf("scan savings deposit: %w", err)
		}
		result = append(result, adapters.MapStoreSavingsDepositToDomain(row))
	}
	return result, rows.Err()
}
