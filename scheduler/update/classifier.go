// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package update

import (
	"github.com/nomad-sched/updateengine/scheduler/structs"
)

// millisSince returns clock milliseconds elapsed since e, using signed
// arithmetic so a regressed clock yields a negative age rather than
// wrapping or panicking. A negative age always fails a ">=" stability or
// stuck check, which is the conservative behavior spec'd for clock
// regression.
func millisSince(now int64, e structs.TaskEvent) int64 {
	return now - e.Timestamp
}

// appearsStable reports whether t's latest event has persisted at least
// minRunningTime. Combined with a RUNNING status this is the stability
// condition for success; callers decide whether to also check status.
func appearsStable(now int64, t *structs.ScheduledTask, minRunningTime int64) bool {
	return millisSince(now, t.LatestEvent()) >= minRunningTime
}

// appearsStuck computes how long t has been continuously out of RUNNING
// (or forever, if it never ran) and reports whether that is at least
// maxNonRunningTime.
//
// The trailing non-running streak is found by walking events from
// newest to oldest, stopping at the first RUNNING event; every
// non-running event visited before that stop becomes a candidate for
// "earliest". task_events[0] seeds "earliest" so a task that never
// reached RUNNING is stuck from its very first event onward.
func appearsStuck(now int64, t *structs.ScheduledTask, maxNonRunningTime int64) bool {
	events := t.Events
	earliest := events[0]
	for i := len(events) - 1; i >= 0; i-- {
		if events[i].Status.IsRunning() {
			break
		}
		earliest = events[i]
	}
	return millisSince(now, earliest) >= maxNonRunningTime
}

// isPermanentlyKilled reports whether t was asked to die and has moved
// past the draining (KILLING) state. A permanently-killed task is
// treated as though no task exists at all.
func isPermanentlyKilled(t *structs.ScheduledTask) bool {
	if t.Status.IsKilling() {
		return false
	}
	for _, e := range t.Events {
		if e.Status.IsKilling() {
			return true
		}
	}
	return false
}

// isKillable reports whether status is active and not already draining,
// so a redundant kill is never issued against a task already killing.
func isKillable(status structs.ScheduleStatus) bool {
	return status.IsActive() && !status.IsKilling()
}

// isTaskPresent reports whether obs represents a task that still
// occupies the instance's slot. A permanently-killed task frees the
// slot and is treated as absent.
func isTaskPresent(obs *structs.ScheduledTask) bool {
	return obs != nil && !isPermanentlyKilled(obs)
}
