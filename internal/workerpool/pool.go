// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package workerpool provides the pinned, long-lived worker goroutines
// shared by the model-parallel engines. Workers are spawned once at
// construction, pinned to distinct cores, and repeatedly handed a Job to
// run in lock-step with their siblings — Run is a fork/join barrier, so
// every worker finishes its slice of a batch before the caller reads
// results back out of shared state.
package workerpool

import (
	"sync/atomic"

	"github.com/EricTsengTy/parfenwick/internal/affinity"
	"github.com/EricTsengTy/parfenwick/internal/fwerrors"
)

// Logger is the subset of parfenwick.Logger the pool needs; declared
// locally to avoid an import cycle with the root package.
type Logger interface {
	Errorf(format string, args ...interface{})
}

// Job is the unit of work dispatched to every worker in a Run call. id is
// the worker's index in [0, N).
type Job func(id int)

// Pool is a fixed-size set of pinned worker goroutines.
type Pool struct {
	n      int
	jobCh  []chan Job
	ackCh  []chan struct{}
	logger Logger

	poisoned   atomic.Bool
	poisonedBy atomic.Int32
}

// New starts n worker goroutines, each pinned (best-effort) to core id+1,
// leaving core 0 for the driver/dispatcher.
func New(n int, logger Logger) *Pool {
	if n < 1 {
		panic(fwerrors.Invariant("workerpool: worker count %d must be >= 1", n))
	}
	p := &Pool{
		n:      n,
		jobCh:  make([]chan Job, n),
		ackCh:  make([]chan struct{}, n),
		logger: logger,
	}
	for i := 0; i < n; i++ {
		p.jobCh[i] = make(chan Job)
		p.ackCh[i] = make(chan struct{})
		go p.loop(i)
	}
	return p
}

// N reports the number of workers in the pool.
func (p *Pool) N() int { return p.n }

func (p *Pool) loop(id int) {
	if err := affinity.PinToCore(id + 1); err != nil {
		p.logger.Errorf("workerpool: worker %d failed to pin to core %d: %v", id, id+1, err)
	}
	for job := range p.jobCh[id] {
		p.runJob(id, job)
	}
}

func (p *Pool) runJob(id int, job Job) {
	defer func() {
		if r := recover(); r != nil {
			p.poisonedBy.Store(int32(id))
			p.poisoned.Store(true)
			p.logger.Errorf("workerpool: worker %d panicked: %v", id, r)
		}
		p.ackCh[id] <- struct{}{}
	}()
	job(id)
}

// Run dispatches job to every worker and blocks until all have completed,
// i.e. it is a barrier. It panics if any worker has been poisoned by a
// prior panic, matching the "propagate worker failure to the dispatcher so
// sync() does not hang forever" requirement.
func (p *Pool) Run(job Job) {
	if p.poisoned.Load() {
		panic(fwerrors.Poisoned(int(p.poisonedBy.Load()), "pool already poisoned"))
	}
	for i := 0; i < p.n; i++ {
		p.jobCh[i] <- job
	}
	for i := 0; i < p.n; i++ {
		<-p.ackCh[i]
	}
	if p.poisoned.Load() {
		panic(fwerrors.Poisoned(int(p.poisonedBy.Load()), "worker panicked during Run"))
	}
}

// Shutdown closes every worker's job channel, causing its loop to return.
func (p *Pool) Shutdown() {
	for i := 0; i < p.n; i++ {
		close(p.jobCh[i])
	}
}
