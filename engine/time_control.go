// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import "time"

// searchContext is the transient state owned by a single top-level
// ChooseBestMove call, per spec.md §3. It is the Budget Supervisor of
// spec.md §4.7: polled at every node, it is what an abort actually checks.
type searchContext struct {
	start     time.Time
	maxTime   time.Duration
	nodeCount uint64
	nodeLimit uint64 // 0 = unlimited

	aborted bool
}

func newSearchContext(maxTime time.Duration, nodeLimit uint64) *searchContext {
	return &searchContext{
		start:     time.Now(),
		maxTime:   maxTime,
		nodeLimit: nodeLimit,
	}
}

// tick counts one visited node and reports whether the budget has been
// exceeded. Once aborted is set it stays set -- recursion frames above
// this one rely on that to unwind without rechecking the clock.
func (sc *searchContext) tick() bool {
	sc.nodeCount++
	if sc.aborted {
		return true
	}
	if sc.nodeLimit != 0 && sc.nodeCount > sc.nodeLimit {
		sc.aborted = true
		return true
	}
	if sc.maxTime > 0 && time.Since(sc.start) > sc.maxTime {
		sc.aborted = true
		return true
	}
	return false
}

// elapsed returns the wall-clock time spent in this search so far.
func (sc *searchContext) elapsed() time.Duration {
	return time.Since(sc.start)
}
