// internal/cache/cache.go
//
// In-memory feedback pattern cache.
// Responsibilities:
//   - Memoize Feedback Encoder results keyed by (secret, guess).
//   - Lazy fill on miss (LookupOrCompute) and bulk precompute at startup.
//   - Track a dirty flag so the owning driver can decide when to persist
//     (the cache never writes to disk on its own; see store.go).
//
// Concurrency:
//   - Safe for concurrent use. Reads take the shared lock; a miss upgrades
//     to the exclusive lock and re-checks. Racing fills write identical
//     values, so duplicate computation is tolerated, never incorrect.
//   - Entries are only ever added, never invalidated or evicted; the full
//     cross product of the bounded vocabularies fits in memory.

package cache

import (
	"sync"

	"github.com/robalobadob/wordle-solver/internal/feedback"
)

// Cache maps secret → guess → feedback pattern.
type Cache struct {
	mu       sync.RWMutex
	patterns map[string]map[string]feedback.Pattern
	dirty    bool
}

// New returns an empty cache.
func New() *Cache {
	return &Cache{patterns: make(map[string]map[string]feedback.Pattern)}
}

// LookupOrCompute returns the cached pattern for (secret, guess), computing
// and storing it on a miss. A miss marks the cache dirty.
func (c *Cache) LookupOrCompute(secret, guess string) feedback.Pattern {
	c.mu.RLock()
	if p, ok := c.patterns[secret][guess]; ok {
		c.mu.RUnlock()
		return p
	}
	c.mu.RUnlock()

	p := feedback.Encode(guess, secret)

	c.mu.Lock()
	defer c.mu.Unlock()
	byGuess, ok := c.patterns[secret]
	if !ok {
		byGuess = make(map[string]feedback.Pattern)
		c.patterns[secret] = byGuess
	}
	if _, ok := byGuess[guess]; !ok {
		byGuess[guess] = p
		c.dirty = true
	}
	return p
}

// BulkPrecompute eagerly fills the secrets × guesses cross product.
// Meant for one-time startup amortization, not the game loop.
func (c *Cache) BulkPrecompute(secrets, guesses []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, s := range secrets {
		byGuess, ok := c.patterns[s]
		if !ok {
			byGuess = make(map[string]feedback.Pattern, len(guesses))
			c.patterns[s] = byGuess
		}
		for _, g := range guesses {
			if _, ok := byGuess[g]; !ok {
				byGuess[g] = feedback.Encode(g, s)
				c.dirty = true
			}
		}
	}
}

// Len returns the number of cached (secret, guess) pairs.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n := 0
	for _, byGuess := range c.patterns {
		n += len(byGuess)
	}
	return n
}

// Dirty reports whether entries were added since the last ClearDirty.
func (c *Cache) Dirty() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.dirty
}

// ClearDirty resets the dirty flag; called by the driver after a flush.
func (c *Cache) ClearDirty() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dirty = false
}

// snapshot copies all entries under the read lock, for persistence.
func (c *Cache) snapshot() map[string]map[string]feedback.Pattern {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]map[string]feedback.Pattern, len(c.patterns))
	for s, byGuess := range c.patterns {
		cp := make(map[string]feedback.Pattern, len(byGuess))
		for g, p := range byGuess {
			cp[g] = p
		}
		out[s] = cp
	}
	return out
}

// addLoaded installs entries read from the store without touching the dirty
// flag (loaded entries are already persisted).
func (c *Cache) addLoaded(secret, guess string, p feedback.Pattern) {
	byGuess, ok := c.patterns[secret]
	if !ok {
		byGuess = make(map[string]feedback.Pattern)
		c.patterns[secret] = byGuess
	}
	byGuess[guess] = p
}
