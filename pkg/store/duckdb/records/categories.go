package records

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/life-tools/life-atlas/pkg/models/domain"
)

// CategoryStore serves the valid categorization targets the command parser
// matches against. Aliases are stored comma-separated.
type CategoryStore interface {
	ValidCategories(ctx context.Context, module domain.Module) ([]domain.Category, error)
	SeedDefaults(ctx context.Context) error
}

type categoryStore struct {
	db *sql.DB
}

func NewCategoryStore(db *sql.DB) (CategoryStore, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &categoryStore{db: db}, nil
}

func (s *categoryStore) ValidCategories(ctx context.Context, module domain.Module) ([]domain.Category, error) {
	query := `
		SELECT id, name, aliases
		FROM categories
		WHERE module = ?
		ORDER BY name`

	rows, err := s.db.QueryContext(ctx, query, string(module))
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var result []domain.Category
	for rows.Next() {
		var (
			c       domain.Category
			aliases sql.NullString
		)
		if err := rows.Scan(&c.ID, &c.Name, &aliases); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		if aliases.Valid && aliases.String != "" {
			c.Aliases = strings.Split(aliases.String, ",")
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

// defaultCategories is the out-of-the-box expense categorization set. Users
// extend it through the app's settings.
var defaultCategories = []domain.Category{
	{ID: "cat-dining", Name: "Dining", Aliases: []string{"lunch", "dinner", "breakfast", "coffee", "restaurant"}},
	{ID: "cat-groceries", Name: "Groceries", Aliases: []string{"supermarket", "food"}},
	{ID: "cat-transport", Name: "Transport", Aliases: []string{"bus", "taxi", "fuel", "gas", "metro"}},
	{ID: "cat-housing", Name: "Housing", Aliases: []string{"rent", "mortgage", "utilities"}},
	{ID: "cat-health", Name: "Health", Aliases: []string{"pharmacy", "doctor", "gym"}},
	{ID: "cat-entertainment", Name: "Entertainment", Aliases: []string{"movies", "games", "streaming"}},
	{ID: "cat-shopping", Name: "Shopping", Aliases: []string{"clothes", "electronics"}},
	{ID: "cat-other", Name: "Other", Aliases: nil},
}

// SeedDefaults inserts the default finance categories when the table is empty.
func (s *categoryStore) SeedDefaults(ctx context.Context) error {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories`).Scan(&count); err != nil {
		return fmt.Errorf("count categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	query := `INSERT INTO categories (id, module, name, aliases) VALUES (?, ?, ?, ?)`
	for _, c := range defaultCategories {
		_, err := s.db.ExecContext(ctx, query,
			c.ID,
			string(domain.ModuleFinance),
			c.Name,
			strings.Join(c.Aliases, ","),
		)
		if err != nil {
			return fmt.Errorf("seed category %s: %w", c.ID, err)
		}
	}
	return nil
}
