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

type HabitStore interface {
	Add(ctx context.Context, check domain.HabitCheck) error
	GetWindow(ctx context.Context, start, end time.Time) ([]domain.HabitCheck, error)
}

type habitStore struct {
	db *sql.DB
}

func NewHabitStore(db *sql.DB) (HabitStore, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &habitStore{db: db}, nil
}

func (s *habitStore) Add(ctx context.Context, check domain.HabitCheck) error {
	row := adapters.MapDomainHabitCheckToStore(check)
	query := `INSERT INTO habit_checks (id, habit, checked_on) VALUES (?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query, row.ID, row.Habit, row.CheckedOn)
	if err != nil {
		return fmt.Errorf("insert habit check: %w", err)
	}
	return nil
}

func (s *habitStore) GetWindow(ctx context.Context, start, end time.Time) ([]domain.HabitCheck, error) {
	query := `
		SELECT id, habit, checked_on
		FROM habit_checks
		WHERE checked_on >= ? AND checked_on < ?
		ORDER BY checked_on`

	rows, err := s.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("query habit checks: %w", err)
	}
	defer rows.Close()

	var result []domain.HabitCheck
	for rows.Next() {
		var row store.HabitCheck
		if err := rows.Scan(&row.ID, &row.Habit, &row.CheckedOn); err != nil {
			return nil, fmt.Errorf("scan habit check: %w", err)
		}
		result = append(result, adapters.MapStoreHabitCheckToDomain(row))
	}
	return result, rows.Err()
}
