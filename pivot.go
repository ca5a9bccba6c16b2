package ndp

// Choice selects the pivot variable from a clause set, in priority order:
//
//  1. The first clause with exactly two zero holes (a unit clause): return
//     the absolute value of its one nonzero literal.
//  2. Else the first clause with exactly one zero hole: return the absolute
//     value of the first nonzero literal encountered in it.
//  3. Else return the absolute value of the first nonzero slot of A[0].
//
// Choice returns 0 when A is empty, and also when rule 3 is reached with the
// conflict clause {0, 0, 0} at A[0]. Ties are broken purely by clause-set
// order, never by literal value, which is what makes the search deterministic
// given a fixed parse order.
//
// Rule 3 scans A[0] for its first nonzero slot rather than reading slot 0
// alone. Once rule 3 is reached every clause has either no hole or three, so
// the scan returns 0 only when A[0] is the conflict clause.
func Choice(a ClauseSet) int {
	for _, cl := range a {
		zeros, nonzero := 0, 0
		for _, lit := range cl.L {
			if lit == 0 {
				zeros++
			} else {
				nonzero = lit
			}
		}
		if zeros == 2 {
			return abs(nonzero)
		}
	}
	for _, cl := range a {
		zeros, nonzero := 0, 0
		for _, lit := range cl.L {
			if lit == 0 {
				zeros++
			} else if nonzero == 0 {
				nonzero = lit
			}
		}
		if zeros == 1 {
			return abs(nonzero)
		}
	}
	if len(a) == 0 {
		return 0
	}
	for _, lit := range a[0].L {
		if lit != 0 {
			return abs(lit)
		}
	}
	return 0
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
