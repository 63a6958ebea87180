package service

import "sync"

// prefixCache keeps the longest pi string computed so far.
// A limit of 0 disables it.
type prefixCache struct {
	mu    sync.RWMutex
	limit uint32
	pi    string
}

func newPrefixCache(limit uint32) *prefixCache {
	return &prefixCache{limit: limit}
}

// get returns "3." plus digits fractional digits if the cached string is long enough.
func (c *prefixCache) get(digits uint32) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	n := int(digits) + 2
	if len(c.pi) < n {
		return "", false
	}
	return c.pi[:n], true
}

// put stores s when it is longer than the cached string and within limit.
func (c *prefixCache) put(s string) {
	if len(s) < 2 || uint64(len(s)-2) > uint64(c.limit) {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if len(s) > len(c.pi) {
		c.pi = s
	}
}

// digits reports how many fractional digits are cached.
func (c *prefixCache) digits() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.pi == "" {
		return 0
	}
	return len(c.pi) - 2
}
