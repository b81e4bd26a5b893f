// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/EricTsengTy/parfenwick"
	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/guptarohit/asciigraph"
	"github.com/olekukonko/tablewriter"
)

const (
	minLatency = 1 * time.Microsecond
	maxLatency = 10 * time.Second
)

func newHistogram() *hdrhistogram.Histogram {
	return hdrhistogram.New(minLatency.Nanoseconds(), maxLatency.Nanoseconds(), 3)
}

func clampLatency(d time.Duration) time.Duration {
	if d < minLatency {
		return minLatency
	}
	if d > maxLatency {
		return maxLatency
	}
	return d
}

// runResult summarizes one strategy's run against a shared operation stream.
type runResult struct {
	strategy  string
	batches   int
	mismatch  int
	elapsed   time.Duration
	histogram *hdrhistogram.Histogram
}

// runStrategy drives batches of generated operations through the named
// engine, timing each batch and cross-checking it against a sequential
// reference tree fed the identical stream.
func runStrategy(name string, n, w, batchSize, steps, queueCap int, gen *generator, logger parfenwick.Logger) (runResult, error) {
	engine, err := buildEngine(name, n, w, queueCap, logger)
	if err != nil {
		return runResult{}, err
	}
	defer engine.Shutdown()

	ref := parfenwick.NewSequentialTree(n)
	hist := newHistogram()
	res := runResult{strategy: name, histogram: hist}

	start := time.Now()
	for i := 0; i < steps; i++ {
		batch := gen.batch(batchSize)

		opStart := time.Now()
		engine.Init()
		engine.Submit(batch)
		engine.Sync()
		elapsed := time.Since(opStart)
		if err := hist.RecordValue(clampLatency(elapsed).Nanoseconds()); err != nil {
			return runResult{}, fmt.Errorf("recording latency: %w", err)
		}

		if want := ref.ReferenceSum(batch); want != engine.ValidateSum() {
			res.mismatch++
		}
		res.batches++
	}
	res.elapsed = time.Since(start)
	return res, nil
}

// printSummary renders one or more run results as a stdout summary table.
func printSummary(results []runResult) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"strategy", "batches", "mismatches", "elapsed", "p50 (us)", "p99 (us)"})
	for _, r := range results {
		table.Append([]string{
			r.strategy,
			fmt.Sprintf("%d", r.batches),
			fmt.Sprintf("%d", r.mismatch),
			r.elapsed.Round(time.Millisecond).String(),
			fmt.Sprintf("%.1f", float64(r.histogram.ValueAtQuantile(50))/1000),
			fmt.Sprintf("%.1f", float64(r.histogram.ValueAtQuantile(99))/1000),
		})
	}
	table.Render()
}

// printPartitionStats dumps the cache-line aligned planner partition's
// per-worker access-weight balance to stderr as an ASCII line chart, so an
// operator can eyeball load skew across workers without instrumenting a
// real profiler.
func printPartitionStats(n, w int) {
	dp := parfenwick.AccessWeights(n)
	p := parfenwick.PlanPartition(n, w, true)
	totals := make([]float64, len(p))
	for i := range p {
		totals[i] = float64(p.AccessTotal(dp, i))
	}
	graph := asciigraph.Plot(totals, asciigraph.Height(10), asciigraph.Caption("per-worker access weight"))
	fmt.Fprintln(os.Stderr, graph)
}
