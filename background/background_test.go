// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2024 Freightline Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/freightline/freightd/background"
)

type ticking struct {
	ticks   uint64
	stopped uint64
}

func (state *ticking) Run(args interface{}, shutdown <-chan struct{}) {

loop:
	for {
		select {
		case <-shutdown:
			break loop
		default:
		}
		atomic.AddUint64(&state.ticks, 1)
		time.Sleep(time.Millisecond)
	}
	atomic.StoreUint64(&state.stopped, 1)
}

func TestStartStop(t *testing.T) {

	proc1 := &ticking{}
	proc2 := &ticking{}

	processes := background.Processes{
		proc1,
		proc2,
	}

	p := background.Start(processes, nil)
	time.Sleep(50 * time.Millisecond)
	p.Stop()

	if 0 == atomic.LoadUint64(&proc1.ticks) {
		t.Errorf("process 1 never ran")
	}
	if 0 == atomic.LoadUint64(&proc2.ticks) {
		t.Errorf("process 2 never ran")
	}
	if 1 != atomic.LoadUint64(&proc1.stopped) {
		t.Errorf("process 1 did not stop")
	}
	if 1 != atomic.LoadUint64(&proc2.stopped) {
		t.Errorf("process 2 did not stop")
	}
}

// Stop on a nil handle must be a no-op
func TestStopNil(t *testing.T) {
	var p *background.T
	p.Stop()
}
