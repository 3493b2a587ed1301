package extractors

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/life-tools/life-atlas/pkg/models/domain"
)

// Extractor computes the metric bundle for one module over a half-open
// window. Extractors are pure readers: they never mutate a store and never
// fail on an empty window — an empty window yields a bundle with zero counts.
type Extractor interface {
	Module() domain.Module
	Extract(ctx context.Context, start, end time.Time) (domain.MetricBundle, error)
}

// Registry manages the per-module extractors. Adding a new life domain means
// registering an extractor here and teaching the scoring model its metrics;
// there is no dynamic metric discovery.
type Registry interface {
	Register(e Extractor) error
	Get(module domain.Module) (Extractor, error)
	ListModules() []domain.Module
}

type registry struct {
	mu         sync.RWMutex
	extractors map[domain.Module]Extractor
}

func NewRegistry(extractors ...Extractor) (Registry, error) {
	r := &registry{extractors: make(map[domain.Module]Extractor)}
	for _, e := range extractors {
		if err := r.Register(e); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *registry) Register(e Extractor) error {
	if e == nil {
		return fmt.Errorf("extractor cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	module := e.Module()
	if _, exists := r.extractors[module]; exists {
		return fmt.Errorf("module %q is already registered", module)
	}

	r.extractors[module] = e
	return nil
}

func (r *registry) Get(module domain.Module) (Extractor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.extractors[module]
	if !ok {
		return nil, fmt.Errorf("unsupported module: %s", module)
	}
	return e, nil
}

func (r *registry) ListModules() []domain.Module {
	r.mu.RLock()
	defer r.mu.RUnlock()

	modules := make([]domain.Module, 0, len(r.extractors))
	for _, known := range domain.Modules {
		if _, ok := r.extractors[known]; ok {
			modules = append(modules, known)
		}
	}
	return modules
}

// windowDays returns the whole number of days covered by [start, end),
// never less than one so per-day rates stay defined.
func windowDays(start, end time.Time) float64 {
	days := end.Sub(start).Hours() / 24
	if days < 1 {
		return 1
	}
	return float64(int(days))
}

// dayKey buckets a timestamp to its calendar day for per-day rates.
func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
