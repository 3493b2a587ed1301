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

// TodoStore persists todo items. The window read keys on creation time so a
// task created in the window counts toward it regardless of due date.
type TodoStore interface {
	Add(ctx context.Context, item domain.TodoItem) error
	GetWindow(ctx context.Context, start, end time.Time) ([]domain.TodoItem, error)
}

type todoStore struct {
	db *sql.DB
}

func NewTodoStore(db *sql.DB) (TodoStore, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &todoStore{db: db}, nil
}

func (s *todoStore) Add(ctx context.Context, item domain.TodoItem) error {
	row := adapters.MapDomainTodoToStore(item)
	query := `
		INSERT INTO todo_items (
			id, title, note, due_on, completed, completed_at, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		row.ID,
		row.Title,
		row.Note,
		row.DueOn,
		row.Completed,
		row.CompletedAt,
		row.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert todo item: %w", err)
	}
	return nil
}

func (s *todoStore) GetWindow(ctx context.Context, start, end time.Time) ([]domain.TodoItem, error) {
	query := `
		SELECT id, title, note, due_on, completed, completed_at, created_at
		FROM todo_items
		WHERE created_at >= ? AND created_at < ?
		ORDER BY created_at`

	rows, err := s.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("query todo items: %w", err)
	}
	defer rows.Close()

	var result []domain.TodoItem
	for rows.Next() {
		var row store.TodoItem
		if err := rows.Scan(
			&row.ID,
			&row.Title,
			&row.Note,
			&row.DueOn,
			&row.Completed,
			&row.CompletedAt,
			&row.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan todo item: %w", err)
		}
		result = append(result, adapters.MapStoreTodoToDomain(row))
	}
	return result, rows.Err()
}
