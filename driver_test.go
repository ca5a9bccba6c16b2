package ndp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSolveFindsSatisfyingAssignment(t *testing.T) {
	frontier := []Task{
		{Clauses: ClauseSet{{L: [3]int{0, 0, 1}}}, Assignment: nil},
	}
	result := Solve(context.Background(), frontier, 2)
	require.True(t, result.Satisfiable)
	require.Contains(t, result.Assignment, 1)
}

func TestSolveUnsatisfiableDrainsFrontier(t *testing.T) {
	frontier := []Task{
		{Clauses: ClauseSet{{L: [3]int{0, 0, 0}}}, Assignment: Assignment{1}},
		{Clauses: ClauseSet{{L: [3]int{0, 0, 0}}}, Assignment: Assignment{-1}},
	}
	result := Solve(context.Background(), frontier, 4)
	require.False(t, result.Satisfiable)
	require.Empty(t, result.Assignment)
}

func TestSolveOnlyOneWinner(t *testing.T) {
	// Many tasks each trivially satisfiable; regardless of how many workers
	// race, only one winning assignment is ever published.
	frontier := make([]Task, 50)
	for i := range frontier {
		v := i + 1
		frontier[i] = Task{Clauses: ClauseSet{{L: [3]int{0, 0, v}}}, Assignment: nil}
	}
	result := Solve(context.Background(), frontier, 8)
	require.True(t, result.Satisfiable)
	require.Len(t, result.Assignment, 1)
}

func TestSolveConcatenatesBFSPrefixAndDFSSuffix(t *testing.T) {
	frontier := []Task{
		{Clauses: ClauseSet{{L: [3]int{0, 0, 2}}}, Assignment: Assignment{1}},
	}
	result := Solve(context.Background(), frontier, 1)
	require.True(t, result.Satisfiable)
	require.Equal(t, Assignment{1, 2}, result.Assignment)
}

func TestSolvePanicsOnZeroUsableCores(t *testing.T) {
	frontier := []Task{
		{Clauses: ClauseSet{{L: [3]int{0, 0, 1}}}, Assignment: nil},
	}
	require.Panics(t, func() {
		Solve(context.Background(), frontier, 0)
	})
}
