package peg

import lru "github.com/hashicorp/golang-lru/v2"

// memoKey identifies one packrat cell: a rule, addressed by its index into
// Grammar.rules, tried at a given input offset.
type memoKey struct {
	rule int
	pos  int
}

// memoEntry is a packrat cache cell. pending marks a cell that has been
// seeded but not yet resolved: the rule at this position is currently being
// evaluated further up the call stack. A Reference that finds a pending
// cell is a left-recursive call and fails immediately, rather than
// recursing forever.
type memoEntry struct {
	pending bool
	result  MatchResult
}

// memoCache is the packrat memoization table for one Parse invocation. It is
// sized to |rules| x (|input|+1) cells so no still-reachable entry is ever
// evicted mid-parse.
type memoCache struct {
	cache *lru.Cache[memoKey, memoEntry]
}

func newMemoCache(numRules, inputLen int) *memoCache {
	size := numRules * (inputLen + 1)
	if size < 1 {
		size = 1
	}
	c, err := lru.New[memoKey, memoEntry](size)
	if err != nil {
		// Only returns an error for a non-positive size, which size<1 above
		// already excludes.
		panic(err)
	}
	return &memoCache{cache: c}
}

func (mc *memoCache) get(key memoKey) (memoEntry, bool) {
	return mc.cache.Get(key)
}

func (mc *memoCache) seedPending(key memoKey) {
	mc.cache.Add(key, memoEntry{pending: true})
}

func (mc *memoCache) resolve(key memoKey, result MatchResult) {
	mc.cache.Add(key, memoEntry{result: result})
}
