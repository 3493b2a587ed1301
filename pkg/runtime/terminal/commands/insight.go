package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/life-tools/life-atlas/pkg/models/domain"
)

// Insights is the slice of the insight service the CLI needs.
type Insights interface {
	GetAnalysis(ctx context.Context, module domain.Module) (*domain.Analysis, error)
	RefreshAnalysis(ctx context.Context, module domain.Module) (domain.Analysis, error)
}

// Renderer prints one analysis to the terminal.
type Renderer interface {
	Handle(analysis domain.Analysis) error
}

type InsightCmd struct {
	refresh  bool
	insights Insights
	renderer Renderer
}

func NewInsightCmd(insights Insights, renderer Renderer) *cobra.Command {
	ic := &InsightCmd{insights: insights, renderer: renderer}
	cmd := &cobra.Command{
		Use:   "insight [module]",
		Short: "Show the analysis for a life module",
		Args:  cobra.MaximumNArgs(1),
		RunE:  ic.run,
	}

	cmd.Flags().BoolVar(&ic.refresh, "refresh", false, "Recompute the analysis even if a fresh one is cached")

	return cmd
}

func (ic *InsightCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	module := domain.ModuleOverall
	if len(args) > 0 {
		module = domain.Module(args[0])
	}
	if !module.Valid() {
		return fmt.Errorf("unknown module %q. Known modules: %v", args[0], domain.Modules)
	}

	if ic.refresh {
		analysis, err := ic.insights.RefreshAnalysis(ctx, module)
		if err != nil {
			return fmt.Errorf("failed to refresh analysis: %w", err)
		}
		return ic.renderer.Handle(analysis)
	}

	analysis, err := ic.insights.GetAnalysis(ctx, module)
	if err != nil {
		return fmt.Errorf("failed to get analysis: %w", err)
	}
	if analysis == nil {
		// Nothing cached yet: compute on demand.
		computed, err := ic.insights.RefreshAnalysis(ctx, module)
		if err != nil {
			return fmt.Errorf("failed to compute analysis: %w", err)
		}
		return ic.renderer.Handle(computed)
	}
	return ic.renderer.Handle(*analysis)
}
