package ndp

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// Result is the outcome of a parallel search over a BFS frontier.
type Result struct {
	// Satisfiable reports whether any worker found a satisfying assignment.
	Satisfiable bool
	// Assignment is the winning assignment (BFS prefix concatenated with
	// the DFS suffix that completed it). Zero value when !Satisfiable.
	Assignment Assignment
	// Threads is the number of worker goroutines the driver started.
	Threads int
}

// frontierQueue is the shared, mutex-guarded FIFO the worker pool drains.
// A channel isn't used because workers need to observe an empty queue and
// exit rather than block forever waiting for a send that will never come.
type frontierQueue struct {
	mu    sync.Mutex
	tasks []Task
}

func newFrontierQueue(tasks []Task) *frontierQueue {
	return &frontierQueue{tasks: tasks}
}

func (q *frontierQueue) take() (Task, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.tasks) == 0 {
		return Task{}, false
	}
	t := q.tasks[0]
	q.tasks = q.tasks[1:]
	return t, true
}

// Solve races usableCores worker goroutines over frontier, each running
// Satisfy in first-assignment mode on the tasks it dequeues. Exactly one
// worker can become the winner; as soon as one does, ctx is canceled so the
// rest stop promptly and the driver returns after joining them.
//
// usableCores must be >= 1; validate total/reserve core accounting before
// calling Solve (see Config.Validate). Solve panics otherwise rather than
// starting zero workers and silently reporting every input as unsatisfiable.
func Solve(ctx context.Context, frontier []Task, usableCores int) Result {
	if usableCores < 1 {
		panic(fmt.Sprintf("ndp: Solve called with usableCores=%d, want >= 1", usableCores))
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	queue := newFrontierQueue(frontier)

	var (
		winnerMu sync.Mutex
		winner   Assignment
		found    bool
	)

	var wg sync.WaitGroup
	var running atomic.Int32

	worker := func(id int) {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			default:
			}

			task, ok := queue.take()
			if !ok {
				return
			}

			running.Add(1)
			suffixes := Satisfy(ctx, task.Clauses, true)
			running.Add(-1)

			if len(suffixes) == 0 {
				continue
			}

			winnerMu.Lock()
			alreadyFound := found
			if !alreadyFound {
				found = true
				full := make(Assignment, 0, len(task.Assignment)+len(suffixes[0]))
				full = append(full, task.Assignment...)
				full = append(full, suffixes[0]...)
				winner = full
			}
			winnerMu.Unlock()

			if !alreadyFound {
				logrus.WithField("worker", id).Debug("ndp: worker found a satisfying assignment")
				cancel()
				return
			}
			return
		}
	}

	wg.Add(usableCores)
	for id := 0; id < usableCores; id++ {
		go worker(id)
	}
	wg.Wait()

	winnerMu.Lock()
	defer winnerMu.Unlock()
	return Result{
		Satisfiable: found,
		Assignment:  winner,
		Threads:     usableCores,
	}
}

