package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/life-tools/life-atlas/pkg/runtime/terminal"
	"github.com/life-tools/life-atlas/pkg/services/classify"
	"github.com/life-tools/life-atlas/pkg/services/command"
	"github.com/life-tools/life-atlas/pkg/services/command/parser"
	"github.com/life-tools/life-atlas/pkg/services/config"
	"github.com/life-tools/life-atlas/pkg/services/insight"
	"github.com/life-tools/life-atlas/pkg/services/insight/extractors"
	"github.com/life-tools/life-atlas/pkg/store/duckdb"
	"github.com/life-tools/life-atlas/pkg/store/duckdb/records"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfgPath := os.Getenv("LIFE_CONFIG")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := duckdb.NewDB(duckdb.Settings{DbPath: cfg.DB.Path})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	financeStore, err := records.NewFinanceStore(db)
	if err != nil {
		return err
	}
	todoStore, err := records.NewTodoStore(db)
	if err != nil {
		return err
	}
	habitStore, err := records.NewHabitStore(db)
	if err != nil {
		return err
	}
	diaryStore, err := records.NewDiaryStore(db)
	if err != nil {
		return err
	}
	savingsStore, err := records.NewSavingsStore(db)
	if err != nil {
		return err
	}
	categoryStore, err := records.NewCategoryStore(db)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if err := categoryStore.SeedDefaults(ctx); err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	registry, err := extractors.NewRegistry(
		extractors.NewFinanceExtractor(financeStore),
		extractors.NewTodoExtractor(todoStore),
		extractors.NewHabitExtractor(habitStore),
		extractors.NewDiaryExtractor(diaryStore),
		extractors.NewSavingsExtractor(savingsStore),
	)
	if err != nil {
		return err
	}

	insights, err := insight.NewService(registry, insight.Config{
		TTL:    cfg.Insight.TTL,
		Window: time.Duration(cfg.Insight.WindowDays) * 24 * time.Hour,
	})
	if err != nil {
		return err
	}

	classifier, err := classify.NewLLMClassifier(ctx, classify.Config{
		BaseURL: cfg.LLM.BaseURL,
		APIKey:  cfg.LLM.APIKey,
		Model:   cfg.LLM.Model,
		RPM:     cfg.LLM.RPM,
		Burst:   cfg.LLM.Burst,
	})
	if err != nil {
		return fmt.Errorf("failed to create classifier: %w", err)
	}

	executor := command.NewExecutor(financeStore, todoStore, habitStore, insights)
	dispatcher, err := command.NewDispatcher(classifier, parser.New(categoryStore, nil), executor)
	if err != nil {
		return err
	}

	cli := terminal.NewCLI(terminal.Options{
		Insights:   insights,
		Dispatcher: dispatcher,
		Input:      os.Stdin,
		Output:     os.Stdout,
	})

	return cli.Execute()
}
