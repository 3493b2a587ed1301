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

type DiaryStore interface {
	Add(ctx context.Context, entry domain.DiaryEntry) error
	GetWindow(ctx context.Context, start, end time.Time) ([]domain.DiaryEntry, error)
}

type diaryStore struct {
	db *sql.DB
}

func NewDiaryStore(db *sql.DB) (DiaryStore, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &diaryStore{db: db}, nil
}

func (s *diaryStore) Add(ctx context.Context, entry domain.DiaryEntry) error {
	row := adapters.MapDomainDiaryEntryToStore(entry)
	query := `INSERT INTO diary_entries (id, words, mood, written_on) VALUES (?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query, row.ID, row.Words, row.Mood, row.WrittenOn)
	if err != nil {
		return fmt.Errorf("insert diary entry: %w", err)
	}
	return nil
}

func (s *diaryStore) GetWindow(ctx context.Context, start, end time.Time) ([]domain.DiaryEntry, error) {
	query := `
		SELECT id, words, mood, written_on
		FROM diary_entries
		WHERE written_on >= ? AND written_on < ?
		ORDER BY written_on`

	rows, err := s.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("query diary entries: %w", err)
	}
	defer rows.Close()

	var result []domain.DiaryEntry
	for rows.Next() {
		var row store.DiaryEntry
		if err := rows.Scan(&row.ID, &row.Words, &row.Mood, &row.WrittenOn); err != nil {
			return nil, fmt.Errorf("scan diary entry: %w", err)
		}
		result = append(result, adapters.MapStoreDiaryEntryToDomain(row))
	}
	return result, rows.Err()
}
