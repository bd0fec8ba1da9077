package main

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/skyline93/deque/internal/errors"
	"github.com/skyline93/deque/internal/workload"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var cmdStress = &cobra.Command{
	Use:   "stress [flags]",
	Short: "Run verified push/pop workloads",
	Long: `
The "stress" command runs a number of independent jobs on a pool of workers.
Each job fills its own deque, checks the contents against a model and drains it
again, verifying every popped value and that no block stays allocated.

Modes: "fifo" pushes at the back and pops at the front, "lifo" pushes and pops
at the back, "mixed" performs random operations at both ends.

EXIT STATUS
===========

Exit status is 0 if every job passed, and 1 if any verification failed.
`,
	Args:              cobra.NoArgs,
	DisableAutoGenTag: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStress(cmd.Context(), stressOptions, cmd.OutOrStdout())
	},
}

// StressOptions bundles all options for the stress command.
type StressOptions struct {
	Workers uint
	Jobs    int
	Count   int
	Mode    string
	Seed    int64
}

var stressOptions StressOptions

func init() {
	cmdRoot.AddCommand(cmdStress)

	f := cmdStress.Flags()
	f.UintVar(&stressOptions.Workers, "workers", 2, "run `n` jobs concurrently (default: $DEQUE_WORKERS or 2)")
	f.IntVar(&stressOptions.Jobs, "jobs", 8, "number of jobs")
	f.IntVar(&stressOptions.Count, "count", 100000, "operations per job")
	f.StringVar(&stressOptions.Mode, "mode", "mixed", "access pattern: fifo, lifo or mixed")
	f.Int64Var(&stressOptions.Seed, "seed", 1, "seed of the first job, job i uses seed+i")
}

// stressTotals sums up the results of all jobs.
type stressTotals struct {
	Jobs        int
	Pushed      int
	Popped      int
	PeakBuckets int
}

func runStress(ctx context.Context, opts StressOptions, stdout io.Writer) error {
	mode, err := workload.ParseMode(opts.Mode)
	if err != nil {
		return errors.Fatal(err.Error())
	}
	if opts.Workers == 0 {
		return errors.Fatal("--workers must be at least 1")
	}
	if opts.Jobs < 0 || opts.Count < 0 {
		return errors.Fatal("--jobs and --count must not be negative")
	}

	start := time.Now()

	wg, wgCtx := errgroup.WithContext(ctx)
	pool := workload.NewPool(wgCtx, wg, opts.Workers)

	var (
		m      sync.Mutex
		totals stressTotals
	)
	for i := 0; i < opts.Jobs; i++ {
		j := workload.Job{ID: i, Seed: opts.Seed + int64(i), Count: opts.Count, Mode: mode}
		pool.Submit(wgCtx, j, func(res workload.Result) {
			log.Infof("job %d done: pushed %d, popped %d, peak %d elements in %d blocks, digest %v",
				res.ID, res.Pushed, res.Popped, res.PeakSize, res.PeakBuckets, res.Digest.Str())

			m.Lock()
			defer m.Unlock()
			totals.Jobs++
			totals.Pushed += res.Pushed
			totals.Popped += res.Popped
			totals.PeakBuckets = max(totals.PeakBuckets, res.PeakBuckets)
		})
	}

	// let the workers finish the queued jobs and exit
	pool.TriggerShutdown()

	if err := wg.Wait(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err = fmt.Fprintf(stdout, "%d jobs passed (%v): pushed %d, popped %d, peak %d blocks in %v\n",
		totals.Jobs, mode, totals.Pushed, totals.Popped, totals.PeakBuckets, time.Since(start).Round(time.Millisecond))
	return err
}
