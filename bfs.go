package ndp

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// ExpandConfig bounds the breadth-first frontier expansion of Expand.
type ExpandConfig struct {
	// MaxDepth is the upper bound on expansion iterations.
	MaxDepth int
	// MaxTasks is the upper bound on cumulative tasks produced, including
	// the root. Ignored when MaxQueues is set, or when OverrideMaxTasks is
	// true.
	MaxTasks int
	// MaxQueues is the upper bound on simultaneous frontier size. When
	// MaxQueuesSet is true it supersedes MaxTasks, even when MaxQueues is
	// itself 0 (which makes Expand return the root frontier unexpanded).
	MaxQueues    int
	MaxQueuesSet bool
	// OverrideMaxTasks, when true, ignores the task-count bound and honors
	// depth only.
	OverrideMaxTasks bool
}

// Expand grows the frontier from root under cfg. The first of the following
// to hold stops expansion: the queue is empty; MaxQueues is set and the
// current queue size is at least MaxQueues; MaxQueues is unset,
// OverrideMaxTasks is false, and the task count is at least MaxTasks; or
// MaxQueues is unset and the iteration count is at least MaxDepth.
//
// BFS never discovers a full satisfying assignment itself — that's the DFS
// phase's job on whatever remains on the frontier — so a popped task whose
// pivot is 0 means a bug upstream of this function, not a valid outcome, and
// Expand panics rather than silently treating it as a solution.
func Expand(root Task, cfg ExpandConfig) ([]Task, int) {
	queue := []Task{root}
	taskCount := 1
	iterations := 0

	for len(queue) > 0 {
		if cfg.MaxQueuesSet && len(queue) >= cfg.MaxQueues {
			break
		}
		if !cfg.MaxQueuesSet && !cfg.OverrideMaxTasks && taskCount >= cfg.MaxTasks {
			break
		}

		current := queue[0]
		queue = queue[1:]

		i := Choice(current.Clauses)
		if i == 0 {
			panic(fmt.Sprintf("ndp: BFS frontier produced an already-satisfied task with assignment %v; this violates the invariant that Expand never encounters a solved task before its bound is reached", current.Assignment))
		}

		la, ra := Split(current.Clauses, i)

		if len(la) > 0 && !containsConflict(la) {
			queue = append(queue, Task{Clauses: la, Assignment: current.Assignment.extended(i)})
			taskCount++
		}
		if len(ra) > 0 && !containsConflict(ra) {
			queue = append(queue, Task{Clauses: ra, Assignment: current.Assignment.extended(-i)})
			taskCount++
		}

		iterations++
		if !cfg.MaxQueuesSet && iterations >= cfg.MaxDepth {
			break
		}
	}

	logrus.WithFields(logrus.Fields{
		"queue_size": len(queue),
		"depth":      iterations,
		"tasks":      taskCount,
	}).Debug("ndp: BFS expansion finished")

	return queue, taskCount
}

// DefaultExpandConfig returns the default bound for a parsed problem of the
// given size: MaxTasks = numClauses - numVars, MaxDepth = MaxTasks.
func DefaultExpandConfig(numVars, numClauses int) ExpandConfig {
	maxTasks := numClauses - numVars
	return ExpandConfig{
		MaxDepth: maxTasks,
		MaxTasks: maxTasks,
	}
}
