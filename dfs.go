package ndp

import (
	"context"

	"github.com/kr/pretty"
)

// Debug gates verbose kr/pretty dumps of the DFS stack as Satisfy runs. It
// has no effect on correctness or on the DFS/BFS termination rules.
var Debug = false

// stackEntry is a (clause set, partial assignment) pair kept on the DFS
// worker's explicit stack.
type stackEntry struct {
	clauses    ClauseSet
	assignment Assignment
}

// Satisfy runs an iterative depth-first search over a starting task,
// returning every distinct satisfying assignment reached, or just the first
// one if first is true.
//
// Push order for a split's two children is LA then RA, so RA is explored
// first under the stack's LIFO discipline; this fixed exploration order
// makes Satisfy deterministic for a fixed clause set.
//
// ctx is checked once per outer loop iteration so a winning worker in the
// parallel driver (driver.go) can cancel outstanding DFS work promptly; it
// is never used to implement a timeout.
func Satisfy(ctx context.Context, a ClauseSet, first bool) []Assignment {
	stack := []stackEntry{{clauses: a, assignment: nil}}
	var results []Assignment
	seen := make(map[string]struct{})

	record := func(asn Assignment) bool {
		k := asn.key()
		if _, ok := seen[k]; ok {
			return false
		}
		seen[k] = struct{}{}
		results = append(results, asn)
		return true
	}

	for len(stack) > 0 {
		select {
		case <-ctx.Done():
			return results
		default:
		}

		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if containsConflict(top.clauses) {
			continue
		}

		if Debug {
			pretty.Println(top)
		}

		i := Choice(top.clauses)
		if i == 0 {
			if record(top.assignment) && first {
				return results
			}
			continue
		}

		la, ra := Split(top.clauses, i)

		if len(la) == 0 {
			if record(top.assignment.extended(i)) && first {
				return results
			}
		} else if !containsConflict(la) {
			stack = append(stack, stackEntry{clauses: la, assignment: top.assignment.extended(i)})
		}

		if len(ra) == 0 {
			if record(top.assignment.extended(-i)) && first {
				return results
			}
		} else if !containsConflict(ra) {
			stack = append(stack, stackEntry{clauses: ra, assignment: top.assignment.extended(-i)})
		}
	}

	return results
}

func containsConflict(cs ClauseSet) bool {
	for _, cl := range cs {
		if cl.IsConflict() {
			return true
		}
	}
	return false
}
