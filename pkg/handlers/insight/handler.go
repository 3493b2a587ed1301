package insight

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/life-tools/life-atlas/pkg/adapters"
	"github.com/life-tools/life-atlas/pkg/models/api"
	"github.com/life-tools/life-atlas/pkg/models/domain"
)

// Insights is the slice of the insight service the HTTP layer needs.
type Insights interface {
	GetAnalysis(ctx context.Context, module domain.Module) (*domain.Analysis, error)
	RefreshAnalysis(ctx context.Context, module domain.Module) (domain.Analysis, error)
}

type Handler struct {
	insights Insights
}

func NewHandler(insights Insights) *Handler {
	return &Handler{insights: insights}
}

func (h *Handler) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	module := domain.Module(chi.URLParam(r, "module"))

	if !module.Valid() {
		http.Error(w, "unknown module", http.StatusNotFound)
		return
	}

	a, err := h.insights.GetAnalysis(ctx, module)
	if err != nil {
		logger.Error().Err(err).Str("module", string(module)).Msg("failed to get analysis")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if a == nil {
		http.Error(w, "no analysis computed yet", http.StatusNotFound)
		return
	}

	writeJSON(w, logger, adapters.MapDomainAnalysisToAPI(*a))
}

func (h *Handler) RefreshAnalysis(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	module := domain.Module(chi.URLParam(r, "module"))

	if !module.Valid() {
		http.Error(w, "unknown module", http.StatusNotFound)
		return
	}

	a, err := h.insights.RefreshAnalysis(ctx, module)
	if err != nil {
		logger.Error().Err(err).Str("module", string(module)).Msg("failed to refresh analysis")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, logger, adapters.MapDomainAnalysisToAPI(a))
}

func (h *Handler) ListModules(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	response := make([]api.Module, 0, len(domain.Modules)+1)
	for _, m := range domain.Modules {
		response = append(response, api.Module{Name: string(m)})
	}
	response = append(response, api.Module{Name: string(domain.ModuleOverall)})

	writeJSON(w, logger, response)
}

func writeJSON(w http.ResponseWriter, logger *zerolog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}
