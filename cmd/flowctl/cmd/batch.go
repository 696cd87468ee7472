package cmd

import (
	"bytes"
	"fmt"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/maxflow/problem"
)

func newBatchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch FILE...",
		Short: "Solve many problem files concurrently",
		Long: `Solve every FILE on a bounded worker pool. Files may mix "maxflow" and
"matching" problems. Reports are printed in argument order; a failing file
is reported and the others still run.`,
		Args: cobra.MinimumNArgs(1),
		RunE: a.runE(func(cmd *cobra.Command, args []string) error {
			return a.batch(cmd, args)
		}),
	}
	cmd.Flags().IntP("workers", "w", 0, "concurrent solvers (default: number of CPUs)")
	_ = a.v.BindPFlag(keyWorkers, cmd.Flags().Lookup("workers"))

	return cmd
}

type batchTask struct {
	path string
	out  bytes.Buffer
	err  error
}

func (a *app) batch(cmd *cobra.Command, paths []string) error {
	workers := a.v.GetInt(keyWorkers)
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	ctx := cmd.Context()
	tasks := make([]*batchTask, len(paths))
	var wg sync.WaitGroup

	pool, err := ants.NewPoolWithFunc(workers, func(arg interface{}) {
		defer wg.Done()
		t := arg.(*batchTask)

		p, err := problem.Load(t.path)
		if err == nil {
			err = a.solve(ctx, p, &t.out)
		}
		t.err = err
	})
	if err != nil {
		return err
	}
	defer pool.Release()

	for i, path := range paths {
		tasks[i] = &batchTask{path: path}
		wg.Add(1)
		if err = pool.Invoke(tasks[i]); err != nil {
			wg.Done()
			tasks[i].err = err
		}
	}
	wg.Wait()

	out := cmd.OutOrStdout()
	failed := 0
	for _, t := range tasks {
		if t.err != nil {
			failed++
			a.log.WithFields(log.Fields{"file": t.path, "err": t.err}).Error("problem failed")
			fmt.Fprintf(out, "%s: error: %v\n", t.path, t.err)
			continue
		}
		_, _ = out.Write(t.out.Bytes())
	}
	if failed > 0 {
		return fmt.Errorf("batch: %d of %d problems failed", failed, len(tasks))
	}

	return nil
}
