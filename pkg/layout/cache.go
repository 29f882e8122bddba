package layout

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"slices"
	"sync"

	"github.com/graphtier/graphtier/pkg/graph"
	"github.com/graphtier/graphtier/pkg/observability"
)

// DefaultCacheSize is the number of layout results kept before the
// oldest-inserted entry is evicted.
const DefaultCacheSize = 10

// Cache is a bounded memo of layout computations, keyed by graph content.
// Eviction follows insertion order, not access order: when an insert pushes
// the cache past its capacity, the oldest-inserted entry goes.
//
// The cache is an explicitly owned component - construct one with NewCache
// and hand it to the engine; there is no package-level instance. A mutex
// guards read/insert/evict so the engine can be shared across goroutines.
type Cache struct {
	mu         sync.Mutex
	maxEntries int
	entries    map[string]*Result
	order      []string // insertion order, oldest first
}

// NewCache creates a cache bounded to maxEntries results.
// Non-positive values fall back to DefaultCacheSize.
func NewCache(maxEntries int) *Cache {
	if maxEntries <= 0 {
		maxEntries = DefaultCacheSize
	}
	return &Cache{
		maxEntries: maxEntries,
		entries:    make(map[string]*Result, maxEntries),
	}
}

// Get returns the cached result for key, if present.
// Hits return the prior Result unchanged; callers must not mutate it.
func (c *Cache) Get(key string) (*Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.entries[key]
	if ok {
		observability.Cache().OnCacheHit()
	} else {
		observability.Cache().OnCacheMiss()
	}
	return r, ok
}

// Put inserts a result, evicting the oldest-inserted entry when the cache
// would exceed its bound. Re-inserting an existing key refreshes the value
// without touching the insertion order.
func (c *Cache) Put(key string, r *Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists {
		c.order = append(c.order, key)
	}
	c.entries[key] = r

	for len(c.order) > c.maxEntries {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
		observability.Cache().OnCacheEvict(oldest)
	}
}

// Len returns the number of cached results.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clear drops every cached result.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*Result, c.maxEntries)
	c.order = nil
}

// cacheKey derives a deterministic key from the graph content: sorted node
// IDs, sorted source-target-kind edge descriptors, and the serialized
// options, hashed together. Input order never changes the key.
func cacheKey(nodes []graph.Node, edges []graph.Edge, opts Options) string {
	ids := make([]string, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID
	}
	slices.Sort(ids)

	descriptors := make([]string, len(edges))
	for i, e := range edges {
		descriptors[i] = e.Descriptor()
	}
	slices.Sort(descriptors)

	payload, _ := json.Marshal(struct {
		Nodes   []string `json:"nodes"`
		Edges   []string `json:"edges"`
		Options Options  `json:"options"`
	}{ids, descriptors, opts})

	sum := sha256.Sum256(payload)
	return "layout:" + hex.EncodeToString(sum[:])
}
