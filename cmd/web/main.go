package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/life-tools/life-atlas/pkg/server"
	"github.com/life-tools/life-atlas/pkg/services/classify"
	"github.com/life-tools/life-atlas/pkg/services/command"
	"github.com/life-tools/life-atlas/pkg/services/command/parser"
	"github.com/life-tools/life-atlas/pkg/services/config"
	"github.com/life-tools/life-atlas/pkg/services/insight"
	"github.com/life-tools/life-atlas/pkg/services/insight/extractors"
	"github.com/life-tools/life-atlas/pkg/store/duckdb"
	"github.com/life-tools/life-atlas/pkg/store/duckdb/records"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Life Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "config.yaml",
		"Path to the configuration file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := duckdb.NewDB(duckdb.Settings{DbPath: cfg.DB.Path})
	if err != nil {
		return fmt.Errorf("failed to create DuckDB instance: %w", err)
	}
	defer db.Close()

	financeStore, err := records.NewFinanceStore(db)
	if err != nil {
		return fmt.Errorf("failed to create finance store: %w", err)
	}
	todoStore, err := records.NewTodoStore(db)
	if err != nil {
		return fmt.Errorf("failed to create todo store: %w", err)
	}
	habitStore, err := records.NewHabitStore(db)
	if err != nil {
		return fmt.Errorf("failed to create habit store: %w", err)
	}
	diaryStore, err := records.NewDiaryStore(db)
	if err != nil {
		return fmt.Errorf("failed to create diary store: %w", err)
	}
	savingsStore, err := records.NewSavingsStore(db)
	if err != nil {
		return fmt.Errorf("failed to create savings store: %w", err)
	}
	categoryStore, err := records.NewCategoryStore(db)
	if err != nil {
		return fmt.Errorf("failed to create category store: %w", err)
	}
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
		return fmt.Errorf("failed to build extractor registry: %w", err)
	}

	insights, err := insight.NewService(registry, insight.Config{
		TTL:    cfg.Insight.TTL,
		Window: time.Duration(cfg.Insight.WindowDays) * 24 * time.Hour,
	})
	if err != nil {
		return fmt.Errorf("failed to create insight service: %w", err)
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
		return fmt.Errorf("failed to create dispatcher: %w", err)
	}

	webAPI := server.NewWebAPI(logger, server.Config{
		Addr:            cfg.Server.Addr,
		ShutdownTimeout: 10 * time.Second,
		Dependencies: server.Dependencies{
			Insights:   insights,
			Dispatcher: dispatcher,
		},
	})

	return webAPI.Start()
}
