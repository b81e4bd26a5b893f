// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Command fenwickbench wires a generator, a chosen execution engine, and
// latency/consistency measurement into a runnable benchmark for the
// parfenwick library.
package main

import (
	"fmt"
	"os"

	"github.com/EricTsengTy/parfenwick"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	strategy   string
	workers    int
	batchSize  int
	treeSize   int
	steps      int
	queryRatio float64
	seed       int64
	queueCap   int
	showStats  bool
	compare    bool
)

var rootCmd = &cobra.Command{
	Use:   "fenwickbench",
	Short: "benchmark parallel Fenwick tree execution engines",
	Long:  ``,
	RunE:  runBenchmark,
}

func init() {
	rootCmd.Flags().StringVarP(&strategy, "strategy", "t", "fixed",
		fmt.Sprintf("engine to benchmark (one of %v)", strategies))
	rootCmd.Flags().IntVarP(&workers, "workers", "p", 4, "worker goroutine count")
	rootCmd.Flags().IntVarP(&batchSize, "batch", "b", 1024, "operations per batch")
	rootCmd.Flags().IntVarP(&treeSize, "size", "n", 1<<20, "Fenwick tree size")
	rootCmd.Flags().IntVarP(&steps, "steps", "s", 100, "number of batches to run")
	rootCmd.Flags().Float64Var(&queryRatio, "query-ratio", 0.2, "fraction of generated ops that are queries")
	rootCmd.Flags().Int64Var(&seed, "seed", 1, "generator seed")
	rootCmd.Flags().IntVar(&queueCap, "queue-cap", 4096, "per-worker ring capacity for the lockfree strategy")
	rootCmd.Flags().BoolVar(&showStats, "stats", false, "dump the partition's per-worker access weight to stderr")
	rootCmd.Flags().BoolVar(&compare, "compare", false, "run every strategy concurrently and print a combined summary")
}

func runBenchmark(cmd *cobra.Command, args []string) error {
	logger := parfenwick.DefaultLogger()

	if showStats {
		printPartitionStats(treeSize, workers)
	}

	if !compare {
		gen := newGenerator(treeSize, queryRatio, seed)
		res, err := runStrategy(strategy, treeSize, workers, batchSize, steps, queueCap, gen, logger)
		if err != nil {
			return err
		}
		printSummary([]runResult{res})
		return nil
	}

	// --compare fans out one goroutine per strategy over independent
	// generators seeded identically, joining via errgroup so that an error
	// returned by any strategy's run fails the whole comparison instead of
	// silently reporting a partial table. A poisoned engine panics rather
	// than returning an error.
	results := make([]runResult, len(strategies))
	var g errgroup.Group
	for i, name := range strategies {
		i, name := i, name
		g.Go(func() error {
			gen := newGenerator(treeSize, queryRatio, seed)
			res, err := runStrategy(name, treeSize, workers, batchSize, steps, queueCap, gen, logger)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	printSummary(results)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Cobra has already printed the error message.
		os.Exit(1)
	}
}
