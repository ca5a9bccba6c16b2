package ndp

// Split performs the resolution step of the Purdom-Sabry encoding: given a
// clause set A and a positive pivot i, it produces LA (the successor under
// i := true) and RA (the successor under i := false).
//
// LA is built by adding i to every nonzero slot of every clause in A,
// discarding any clause whose shifted slot equals 2*i (the shift encoding's
// marker for a tautology containing both i and -i), then subtracting i back
// out of every nonzero slot of the clauses that survive. RA mirrors this
// with -i. Zero slots are structural holes and are never touched by the
// shift or the subtraction.
//
// This is the only unit propagation this solver performs.
func Split(a ClauseSet, i int) (la, ra ClauseSet) {
	return splitPooled(a, i, nil)
}

// splitPooled is Split but obtains its result buffers from pool when pool is
// non-nil, so callers on the hot DFS/BFS paths can recycle clause sets
// instead of allocating two new ones per split.
func splitPooled(a ClauseSet, i int, pool *clausePool) (la, ra ClauseSet) {
	if pool != nil {
		la = pool.obtain(len(a))
		ra = pool.obtain(len(a))
	} else {
		la = make(ClauseSet, 0, len(a))
		ra = make(ClauseSet, 0, len(a))
	}

	twoI := 2 * i
	for _, cl := range a {
		var nc Clause
		skip := false
		for j, lit := range cl.L {
			v := lit
			if v != 0 {
				v += i
			}
			if v == twoI {
				skip = true
				break
			}
			nc.L[j] = v
		}
		if skip {
			continue
		}
		for j, v := range nc.L {
			if v != 0 {
				nc.L[j] = v - i
			}
		}
		la = append(la, nc)
	}

	minusTwoI := -twoI
	for _, cl := range a {
		var nc Clause
		skip := false
		for j, lit := range cl.L {
			v := lit
			if v != 0 {
				v -= i
			}
			if v == minusTwoI {
				skip = true
				break
			}
			nc.L[j] = v
		}
		if skip {
			continue
		}
		for j, v := range nc.L {
			if v != 0 {
				nc.L[j] = v + i
			}
		}
		ra = append(ra, nc)
	}

	return la, ra
}
