package ndp

import "fmt"

// Config holds the CNF input path and the bounds the BFS expander and
// parallel driver run under. cmd/ndp builds one of these from cobra flags;
// library callers can build one directly.
type Config struct {
	Input            string
	Depth            int
	MaxTasks         int
	MaxQueues        int
	MaxQueuesSet     bool
	ReserveCores     int
	OutputDirectory  string
	OverrideMaxTasks bool
}

// Normalize applies the default policy and cross-field rules in place,
// given the parsed problem's size:
//
//   - depth sets OverrideMaxTasks (handled by the caller setting Depth
//     directly, since that's a CLI-flag-time decision — see cmd/ndp).
//   - max_tasks, if set, also sets depth = max_tasks.
//   - max_queues, if set, supersedes max_tasks; Normalize leaves both as
//     given and Expand applies this rule.
//   - unset fields fall back to max_tasks = num_clauses - num_vars,
//     depth = max_tasks, reserve_cores = 0, output_directory = cwd.
func (c *Config) Normalize(numVars, numClauses int, cwdDir string) {
	if c.MaxTasks != 0 {
		c.Depth = c.MaxTasks
	}
	if c.MaxTasks == 0 && !c.OverrideMaxTasks && c.Depth == 0 {
		def := DefaultExpandConfig(numVars, numClauses)
		c.MaxTasks = def.MaxTasks
		c.Depth = def.MaxDepth
	}
	if c.OutputDirectory == "" {
		c.OutputDirectory = cwdDir
	}
}

// Validate enforces the hard preconditions on configuration: reserve_cores
// must be non-negative and must leave at least one usable core, since the
// parallel driver requires usableCores >= 1.
func (c *Config) Validate(totalCores int) error {
	if c.ReserveCores >= totalCores {
		return wrapf(ErrReserveExceedsCores, "reserve_cores=%d, total_cores=%d", c.ReserveCores, totalCores)
	}
	if c.ReserveCores < 0 {
		return fmt.Errorf("ndp: reserve_cores must be non-negative, got %d", c.ReserveCores)
	}
	return nil
}

// UsableCores returns totalCores - c.ReserveCores. Callers must call
// Validate first.
func (c *Config) UsableCores(totalCores int) int {
	return totalCores - c.ReserveCores
}

// ExpandConfig builds the ExpandConfig this Config implies by copying its
// bounds across; Expand itself lets max_queues supersede max_tasks when
// MaxQueuesSet is true.
func (c *Config) ExpandConfig() ExpandConfig {
	return ExpandConfig{
		MaxDepth:         c.Depth,
		MaxTasks:         c.MaxTasks,
		MaxQueues:        c.MaxQueues,
		MaxQueuesSet:     c.MaxQueuesSet,
		OverrideMaxTasks: c.OverrideMaxTasks,
	}
}

// Flag returns the CLI-flag component of the report filename: "auto" when
// no depth/max_tasks/max_queues override was given, "d<depth>",
// "t<max_tasks>", or "q<max_queues>" otherwise.
func (c *Config) Flag() string {
	switch {
	case c.MaxQueuesSet:
		return fmt.Sprintf("q%d", c.MaxQueues)
	case c.OverrideMaxTasks:
		return fmt.Sprintf("d%d", c.Depth)
	case c.MaxTasks != 0:
		return fmt.Sprintf("t%d", c.MaxTasks)
	default:
		return "auto"
	}
}
