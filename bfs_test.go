package ndp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpandMaxQueuesZeroReturnsRootUnexpanded(t *testing.T) {
	root := Task{
		Clauses:    ClauseSet{{L: [3]int{1, 2, 3}}},
		Assignment: nil,
	}
	frontier, taskCount := Expand(root, ExpandConfig{MaxQueues: 0, MaxQueuesSet: true})
	require.Len(t, frontier, 1)
	require.Equal(t, 1, taskCount)
	require.Equal(t, root.Clauses, frontier[0].Clauses)
}

func TestExpandHonorsMaxQueues(t *testing.T) {
	root := Task{Clauses: ClauseSet{
		{L: [3]int{1, 2, 3}},
		{L: [3]int{-1, 4, 5}},
		{L: [3]int{0, 0, 2}},
	}}
	frontier, _ := Expand(root, ExpandConfig{MaxQueues: 4, MaxQueuesSet: true})
	require.LessOrEqual(t, len(frontier), 4)
}

func TestExpandHonorsMaxTasks(t *testing.T) {
	root := Task{Clauses: ClauseSet{
		{L: [3]int{1, 2, 3}},
		{L: [3]int{-1, 4, 5}},
		{L: [3]int{0, 0, 2}},
	}}
	_, taskCount := Expand(root, ExpandConfig{MaxTasks: 1, MaxDepth: 100})
	require.GreaterOrEqual(t, taskCount, 1)
	require.LessOrEqual(t, taskCount, 1)
}

func TestExpandOverrideMaxTasksHonorsDepthOnly(t *testing.T) {
	root := Task{Clauses: ClauseSet{
		{L: [3]int{1, 2, 3}},
	}}
	frontier, _ := Expand(root, ExpandConfig{MaxDepth: 1, MaxTasks: 0, OverrideMaxTasks: true})
	require.NotNil(t, frontier)
}

func TestExpandNeverRecordsDegenerateSolution(t *testing.T) {
	// A task popped from the frontier must always have a nonzero pivot
	// before the configured bound is reached; Expand asserts this rather
	// than silently treating it as a solution. Build a tiny formula with
	// plenty of expansion headroom and check Expand doesn't panic.
	root := Task{Clauses: ClauseSet{
		{L: [3]int{1, 2, 3}},
		{L: [3]int{-1, -2, 3}},
	}}
	require.NotPanics(t, func() {
		Expand(root, ExpandConfig{MaxDepth: 10, MaxTasks: 10})
	})
}

func TestDefaultExpandConfig(t *testing.T) {
	cfg := DefaultExpandConfig(10, 15)
	require.Equal(t, 5, cfg.MaxTasks)
	require.Equal(t, 5, cfg.MaxDepth)
}
