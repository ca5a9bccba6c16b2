package ndp

import "sync"

// Clause is a fixed-width three-literal clause. A literal is a signed
// variable index; positive asserts the variable, negative negates it, and
// zero is a structural hole, not an end-of-clause marker.
//
// Two shapes occur in practice: the unit clause {0, 0, x} and the ternary
// clause {x, y, z} with no zero slot. The all-zero clause {0, 0, 0} is the
// conflict clause and denotes unsatisfiability of the assignment that
// produced it.
type Clause struct {
	L [3]int
}

// IsConflict reports whether c is the conflict clause {0, 0, 0}.
func (c Clause) IsConflict() bool {
	return c.L[0] == 0 && c.L[1] == 0 && c.L[2] == 0
}

// ClauseSet is an ordered multiset of clauses. Order matters: the pivot
// chooser (Choice) is order-sensitive, so two clause sets equal as
// multisets can yield different pivots.
type ClauseSet []Clause

// Clone returns an independent copy of cs.
func (cs ClauseSet) Clone() ClauseSet {
	out := make(ClauseSet, len(cs))
	copy(out, cs)
	return out
}

// clausePool is a free list of ClauseSet buffers. splitPooled can draw its
// two result clause sets from one to amortize allocation churn; Split, which
// the DFS and BFS paths call, passes no pool and allocates fresh sets. This
// is a performance contract, not a correctness one: callers must not retain
// a reference to a clause set after releasing it. obtain and release are
// safe for concurrent use.
//
// obtain recycles-or-allocates and release returns a buffer to the free
// list without freeing its backing storage.
type clausePool struct {
	mu       sync.Mutex
	freeList []ClauseSet
}

// newClausePool returns an empty pool.
func newClausePool() *clausePool {
	return &clausePool{}
}

// obtain returns an empty ClauseSet with at least reserve capacity, either
// recycled from the free list or freshly allocated.
func (p *clausePool) obtain(reserve int) ClauseSet {
	p.mu.Lock()
	defer p.mu.Unlock()
	if n := len(p.freeList); n > 0 {
		cs := p.freeList[n-1]
		p.freeList = p.freeList[:n-1]
		cs = cs[:0]
		if reserve > cap(cs) {
			cs = make(ClauseSet, 0, reserve)
		}
		return cs
	}
	return make(ClauseSet, 0, reserve)
}

// release returns cs to the pool. The caller must not use cs afterward.
func (p *clausePool) release(cs ClauseSet) {
	if cs == nil {
		return
	}
	p.mu.Lock()
	p.freeList = append(p.freeList, cs)
	p.mu.Unlock()
}
