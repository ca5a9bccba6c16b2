package ndp

import (
	"context"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// A hand-built, two-bit-per-factor DIMACS fixture for 2 * 3 = 6. It isn't a
// real Purdom-Sabry Tseitin encoding of a multiplier circuit (building one
// of those is out of scope here); it's the smallest clause set that still
// exercises the full pipeline end to end: parse, a shallow BFS handoff, a
// DFS completion, and factor decoding.
const sixDimacs = `c Circuit for product = 6 [fixture]
c Variables for first input [msb,...,lsb]: [1,2]
c Variables for second input [msb,...,lsb]: [3,4]
p cnf 4 3
1 0
3 0
4 0
`

func TestEndToEndParseExpandSolveDecode(t *testing.T) {
	problem, err := ParseDIMACS(strings.NewReader(sixDimacs))
	require.NoError(t, err)
	require.Equal(t, "6", problem.InputNumber.String())
	require.Equal(t, []int{1, 2}, problem.V1)
	require.Equal(t, []int{3, 4}, problem.V2)
	require.Len(t, problem.Clauses, 3)

	root := Task{Clauses: problem.Clauses, Assignment: nil}
	// A shallow BFS handoff: just one expansion step, leaving the rest of
	// the search to the DFS phase, the way a real run with a small
	// max_depth would.
	frontier, taskCount := Expand(root, ExpandConfig{MaxDepth: 1, OverrideMaxTasks: true})
	require.Equal(t, 2, taskCount)
	require.Len(t, frontier, 1)

	result := Solve(context.Background(), frontier, 1)
	require.True(t, result.Satisfiable)

	fact1, fact2 := Decode(result.Assignment, problem.V1, problem.V2)
	product := new(big.Int).Mul(fact1, fact2)
	require.Equal(t, problem.InputNumber.String(), product.String())
	require.Equal(t, "2", fact1.String())
	require.Equal(t, "3", fact2.String())
}

func TestEndToEndUnsatisfiableFixture(t *testing.T) {
	// A unit clause and its negation: {5} and {-5} can never both hold.
	const unsat = `c Circuit for product = 7 [fixture]
c Variables for first input [msb,...,lsb]: [5]
c Variables for second input [msb,...,lsb]: [6]
p cnf 6 2
5 0
-5 0
`
	problem, err := ParseDIMACS(strings.NewReader(unsat))
	require.NoError(t, err)

	root := Task{Clauses: problem.Clauses}
	frontier, _ := Expand(root, ExpandConfig{MaxDepth: 10, MaxTasks: 10})
	result := Solve(context.Background(), frontier, 2)
	require.False(t, result.Satisfiable)
}
