package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

const TransactionsSchema = `
	CREATE TABLE IF NOT EXISTS transactions (
		id VARCHAR NOT NULL PRIMARY KEY,
		amount DOUBLE NOT NULL,
		income BOOLEAN NOT NULL DEFAULT FALSE,
		category_id VARCHAR,
		category VARCHAR,
		note VARCHAR,
		over_budget BOOLEAN NOT NULL DEFAULT FALSE,
		occurred_on TIMESTAMP NOT NULL
	);
`

const TodosSchema = `
	CREATE TABLE IF NOT EXISTS todo_items (
		id VARCHAR NOT NULL PRIMARY KEY,
		title VARCHAR NOT NULL,
		note VARCHAR,
		due_on TIMESTAMP NULL,
		completed BOOLEAN NOT NULL DEFAULT FALSE,
		completed_at TIMESTAMP NULL,
		created_at TIMESTAMP NOT NULL
	);
`

const HabitChecksSchema = `
	CREATE TABLE IF NOT EXISTS habit_checks (
		id VARCHAR NOT NULL PRIMARY KEY,
		habit VARCHAR NOT NULL,
		checked_on TIMESTAMP NOT NULL
	);
`

const DiaryEntriesSchema = `
	CREATE TABLE IF NOT EXISTS diary_entries (
		id VARCHAR NOT NULL PRIMARY KEY,
		words INTEGER NOT NULL,
		mood VARCHAR,
		written_on TIMESTAMP NOT NULL
	);
`

const SavingsDepositsSchema = `
	CREATE TABLE IF NOT EXISTS savings_deposits (
		id VARCHAR NOT NULL PRIMARY KEY,
		amount DOUBLE NOT NULL,
		goal VARCHAR,
		deposited_on TIMESTAMP NOT NULL
	);
`

const CategoriesSchema = `
	CREATE TABLE IF NOT EXISTS categories (
		id VARCHAR NOT NULL PRIMARY KEY,
		module VARCHAR NOT NULL,
		name VARCHAR NOT NULL,
		aliases VARCHAR
	);
`

var bootQueries = []string{
	TransactionsSchema,
	TodosSchema,
	HabitChecksSchema,
	DiaryEntriesSchema,
	SavingsDepositsSchema,
	CategoriesSchema,
}

type Settings struct {
	DbPath string
}

func NewDB(settings Settings) (*sql.DB, error) {
	c, err := duckdb.NewConnector(fmt.Sprintf("%s?threads=4", settings.DbPath), func(exec driver.ExecerContext) error {
		bootQueries := append([]string{}, bootQueries...)

		for _, query := range bootQueries {
			_, err := exec.ExecContext(context.Background(), query, nil)
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	db := sql.OpenDB(c)
	return db, nil
}
