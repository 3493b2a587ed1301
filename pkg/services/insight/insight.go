// Package insight turns raw per-module records into cached, scored analysis
// artifacts: extract metrics, score them, compose the payload, cache the
// result behind a TTL with deduplicated refresh.
package insight

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/life-tools/life-atlas/pkg/models/domain"
	"github.com/life-tools/life-atlas/pkg/services/insight/composer"
	"github.com/life-tools/life-atlas/pkg/services/insight/extractors"
	"github.com/life-tools/life-atlas/pkg/services/insight/scoring"
)

// DefaultWindow is the record window analyses are computed over.
const DefaultWindow = 7 * 24 * time.Hour

type Config struct {
	TTL    time.Duration
	Window time.Duration
	Now    Clock
}

// Service is the insight facade the UI talks to.
type Service struct {
	registry extractors.Registry
	cache    *Cache
	group    singleflight.Group
	window   time.Duration
	now      Clock
}

func NewService(registry extractors.Registry, cfg Config) (*Service, error) {
	if registry == nil {
		return nil, fmt.Errorf("extractor registry is nil")
	}
	if cfg.Window <= 0 {
		cfg.Window = DefaultWindow
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Service{
		registry: registry,
		cache:    NewCache(cfg.TTL, cfg.Now),
		window:   cfg.Window,
		now:      cfg.Now,
	}, nil
}

// GetAnalysis returns the cached analysis for the module, or nil when none
// has been computed yet. It never recomputes; a stale entry is still served.
func (s *Service) GetAnalysis(_ context.Context, module domain.Module) (*domain.Analysis, error) {
	if !module.Valid() {
		return nil, fmt.Errorf("unknown module: %s", module)
	}
	a, ok := s.cache.Get(module)
	if !ok {
		return nil, nil
	}
	return &a, nil
}

// RefreshAnalysis returns a fresh analysis for the module, recomputing only
// when the cached entry is stale. Concurrent refreshes for the same module
// collapse into one in-flight computation; waiting callers receive its
// result. Refreshes of different modules never block each other.
func (s *Service) RefreshAnalysis(ctx context.Context, module domain.Module) (domain.Analysis, error) {
	if !module.Valid() {
		return domain.Analysis{}, fmt.Errorf("unknown module: %s", module)
	}

	if !s.cache.IsStale(module) {
		a, _ := s.cache.Get(module)
		return a, nil
	}

	v, err, _ := s.group.Do(string(module), func() (interface{}, error) {
		// Re-check under the flight: a racing caller may have completed a
		// refresh between our staleness check and joining the group.
		if !s.cache.IsStale(module) {
			a, _ := s.cache.Get(module)
			return a, nil
		}
		return s.recompute(ctx, module)
	})
	if err != nil {
		return domain.Analysis{}, err
	}
	return v.(domain.Analysis), nil
}

// Invalidate marks a module's analysis stale. The command executor calls
// this after a successful mutation so the next refresh sees the new data.
func (s *Service) Invalidate(module domain.Module) {
	s.cache.Invalidate(module)
	s.cache.Invalidate(domain.ModuleOverall)
}

func (s *Service) recompute(ctx context.Context, module domain.Module) (domain.Analysis, error) {
	end := s.now()
	start := end.Add(-s.window)

	var (
		score     *int
		sentiment domain.Sentiment
		bundle    domain.MetricBundle
	)

	if module == domain.ModuleOverall {
		bundles := make([]domain.MetricBundle, 0, len(s.registry.ListModules()))
		for _, m := range s.registry.ListModules() {
			e, err := s.registry.Get(m)
			if err != nil {
				return domain.Analysis{}, err
			}
			b, err := e.Extract(ctx, start, end)
			if err != nil {
				return domain.Analysis{}, fmt.Errorf("extract %s: %w", m, err)
			}
			bundles = append(bundles, b)
		}
		score, sentiment = scoring.Overall(bundles)
		bundle = domain.MetricBundle{Module: domain.ModuleOverall, Start: start, End: end}
	} else {
		e, err := s.registry.Get(module)
		if err != nil {
			return domain.Analysis{}, err
		}
		bundle, err = e.Extract(ctx, start, end)
		if err != nil {
			return domain.Analysis{}, fmt.Errorf("extract %s: %w", module, err)
		}
		score, sentiment = scoring.Score(bundle)
	}

	title, content, details := composer.Compose(module, score, sentiment, bundle)

	a := domain.Analysis{
		Module:      module,
		Score:       score,
		Sentiment:   sentiment,
		Title:       title,
		Content:     content,
		Details:     details,
		LastUpdated: s.now(),
	}
	s.cache.Put(module, a)
	return a, nil
}
