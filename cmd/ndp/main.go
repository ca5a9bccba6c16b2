// Command ndp runs the Purdom-Sabry factoring engine against a DIMACS file
// and writes a report of the result.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gridsat/ndp"
)

var (
	flagDepth        int
	flagMaxTasks     int
	flagMaxQueues    int
	flagReserveCores int
	flagOutputDir    string
	flagVerbose      bool

	depthSet     bool
	maxTasksSet  bool
	maxQueuesSet bool
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ndp <dimacs_file>",
		Short: "Parallel resolution search over a Purdom-Sabry factoring CNF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0])
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&flagDepth, "depth", 0, "upper bound on BFS iterations (also sets override_max_tasks)")
	flags.IntVar(&flagMaxTasks, "max-tasks", 0, "upper bound on cumulative BFS tasks (also sets depth = max_tasks)")
	flags.IntVar(&flagMaxQueues, "max-queues", 0, "upper bound on simultaneous frontier size (supersedes max-tasks when set)")
	flags.IntVar(&flagReserveCores, "reserve-cores", 0, "cores reserved for the system, subtracted from total cores")
	flags.StringVar(&flagOutputDir, "output-directory", "", "directory to write the result report to (default: current directory)")
	flags.BoolVarP(&flagVerbose, "verbose", "v", false, "dump the DFS stack with kr/pretty as the search runs")

	cmd.PreRun = func(cmd *cobra.Command, args []string) {
		depthSet = flags.Changed("depth")
		maxTasksSet = flags.Changed("max-tasks")
		maxQueuesSet = flags.Changed("max-queues")
	}

	return cmd
}

func run(inputPath string) error {
	ndp.Debug = flagVerbose

	f, err := os.Open(inputPath)
	if err != nil {
		return errors.Wrap(err, "ndp: opening input file")
	}
	defer f.Close()

	problem, err := ndp.ParseDIMACS(f)
	if err != nil {
		return errors.Wrap(err, "ndp: parsing DIMACS input")
	}

	cfg := &ndp.Config{
		Input:        inputPath,
		ReserveCores: flagReserveCores,
	}
	if depthSet {
		cfg.Depth = flagDepth
		cfg.OverrideMaxTasks = true
	}
	if maxTasksSet {
		cfg.MaxTasks = flagMaxTasks
	}
	if maxQueuesSet {
		cfg.MaxQueues = flagMaxQueues
		cfg.MaxQueuesSet = true
	}
	cfg.OutputDirectory = flagOutputDir
	// Taken before Normalize fills in default bounds, so a run without
	// overrides is labeled "auto".
	runFlag := cfg.Flag()

	cwd, err := os.Getwd()
	if err != nil {
		return errors.Wrap(err, "ndp: getting working directory")
	}
	cfg.Normalize(problem.NumVars, problem.NumClauses, cwd)

	totalCores := runtime.NumCPU()
	if err := cfg.Validate(totalCores); err != nil {
		return err
	}
	usableCores := cfg.UsableCores(totalCores)

	root := ndp.Task{Clauses: problem.Clauses, Assignment: nil}

	bfsStart := time.Now()
	frontier, taskCount := ndp.Expand(root, cfg.ExpandConfig())
	bfsDuration := time.Since(bfsStart)

	dfsStart := time.Now()
	result := ndp.Solve(context.Background(), frontier, usableCores)
	dfsDuration := time.Since(dfsStart)

	stats := ndp.RunStats{
		InputFile:    inputPath,
		InputNumber:  problem.InputNumber,
		NumBits:      problem.NumBits,
		NumVars:      problem.NumVars,
		NumClauses:   problem.NumClauses,
		TotalCores:   totalCores,
		UsableCores:  usableCores,
		Threads:      result.Threads,
		QueueSize:    len(frontier),
		Depth:        cfg.Depth,
		Tasks:        taskCount,
		BFSDuration:  bfsDuration,
		DFSDuration:  dfsDuration,
		Result:       result,
		ReserveCores: cfg.ReserveCores,
		Flag:         runFlag,
	}

	if result.Satisfiable {
		stats.Fact1, stats.Fact2 = ndp.Decode(result.Assignment, problem.V1, problem.V2)
	}

	report := ndp.Report(stats)
	fmt.Print(report)

	problemID := ndp.ProblemID(problem.InputNumber, problem.NumBits, result.Threads, time.Now().UTC())
	filename := ndp.FormatFilename("ndp", filepath.Base(inputPath), problemID, runFlag, cfg.ReserveCores)
	outPath := filepath.Join(cfg.OutputDirectory, filename)

	if err := os.WriteFile(outPath, []byte(report), 0o644); err != nil {
		return errors.Wrapf(err, "ndp: writing report to %s", outPath)
	}
	logrus.WithField("path", outPath).Info("ndp: result saved")

	return nil
}
