package domain

import "time"

// MetricBundle holds the named metrics extracted for one module over a
// half-open window [Start, End). Bundles are built fresh on every extraction
// and never persisted.
type MetricBundle struct {
	Module  Module
	Metrics map[string]float64
	Records int
	Start   time.Time
	End     time.Time
}

// Empty reports whether the window contained no records. An empty bundle is
// "unknown", not "bad": scoring excludes it from composites instead of
// treating it as zero.
func (b MetricBundle) Empty() bool {
	return b.Records == 0
}

func (b MetricBundle) Metric(name string) float64 {
	return b.Metrics[name]
}
