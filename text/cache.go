package text

import "sync"

// measureCacheCap bounds the number of memoized strings per face. Tick
// labels repeat heavily across renders; a small bound is plenty.
const measureCacheCap = 1024

// measureCache memoizes advance widths per face. Shaping a string walks
// the whole HarfBuzz pipeline, so repeated labels (ticks redrawn every
// render) are worth caching.
type measureCache struct {
	mu     sync.RWMutex
	widths map[string]int
}

func newMeasureCache() *measureCache {
	return &measureCache{widths: make(map[string]int)}
}

// get returns the cached advance for s, if present.
func (c *measureCache) get(s string) (int, bool) {
	c.mu.RLock()
	w, ok := c.widths[s]
	c.mu.RUnlock()
	return w, ok
}

// put stores the advance for s. When the cache is full it is dropped
// wholesale; label sets are small and rebuild in one render pass.
func (c *measureCache) put(s string, w int) {
	c.mu.Lock()
	if len(c.widths) >= measureCacheCap {
		c.widths = make(map[string]int)
	}
	c.widths[s] = w
	c.mu.Unlock()
}
