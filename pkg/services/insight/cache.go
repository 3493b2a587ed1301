package insight

import (
	"sync"
	"time"

	"github.com/life-tools/life-atlas/pkg/models/domain"
)

// Clock supplies the current time. Injected so staleness is testable.
type Clock func() time.Time

// DefaultTTL is how long a composed analysis stays fresh without an explicit
// invalidate.
const DefaultTTL = 6 * time.Hour

// Cache holds the latest composed analysis per module. One live entry per
// module; Put overwrites. An entry is stale once its age exceeds the TTL or
// an invalidate was issued for the module since the last Put.
type Cache struct {
	mu          sync.RWMutex
	ttl         time.Duration
	now         Clock
	entries     map[domain.Module]domain.Analysis
	invalidated map[domain.Module]bool
}

func NewCache(ttl time.Duration, now Clock) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if now == nil {
		now = time.Now
	}
	return &Cache{
		ttl:         ttl,
		now:         now,
		entries:     make(map[domain.Module]domain.Analysis),
		invalidated: make(map[domain.Module]bool),
	}
}

func (c *Cache) Get(module domain.Module) (domain.Analysis, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	a, ok := c.entries[module]
	return a, ok
}

func (c *Cache) Put(module domain.Module, a domain.Analysis) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[module] = a
	delete(c.invalidated, module)
}

// Invalidate marks the module's entry stale without removing it; readers can
// still serve the old artifact until the next refresh completes.
func (c *Cache) Invalidate(module domain.Module) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.invalidated[module] = true
}

func (c *Cache) IsStale(module domain.Module) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	a, ok := c.entries[module]
	if !ok {
		return true
	}
	if c.invalidated[module] {
		return true
	}
	return c.now().Sub(a.LastUpdated) > c.ttl
}
