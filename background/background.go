// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2024 Freightline Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - run long-lived tasks with a controlled shutdown
package background

// Process - interface for a background process
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// T - handle for the stop operation
type T struct {
	shutdown chan struct{}
	finished chan struct{}
	count    int
}

// Start - run a set of background processes
//
// all of the processes share a single shutdown channel and the args
// value; each signals completion on the finished channel
func Start(processes Processes, args interface{}) *T {

	register := &T{
		shutdown: make(chan struct{}),
		finished: make(chan struct{}),
		count:    len(processes),
	}

	for _, p := range processes {
		go func(p Process) {
			p.Run(args, register.shutdown)
			register.finished <- struct{}{}
		}(p)
	}

	return register
}

// Stop - shut down the background processes and wait for them to finish
func (t *T) Stop() {

	if nil == t {
		return
	}

	close(t.shutdown)

	for i := 0; i < t.count; i += 1 {
		<-t.finished
	}
}
