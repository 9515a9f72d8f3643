// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package structs

import "github.com/hashicorp/go-set/v3"

// ScheduleStatus is the lifecycle state of a single task run, as last
// reported by the platform the instance is scheduled on.
type ScheduleStatus string

const (
	TaskPending  ScheduleStatus = "PENDING"
	TaskAssigned ScheduleStatus = "ASSIGNED"
	TaskStarting ScheduleStatus = "STARTING"
	TaskRunning  ScheduleStatus = "RUNNING"
	TaskKilling  ScheduleStatus = "KILLING"
	TaskFinished ScheduleStatus = "FINISHED"
	TaskFailed   ScheduleStatus = "FAILED"
	TaskKilled   ScheduleStatus = "KILLED"
	TaskLost     ScheduleStatus = "LOST"
)

// activeStatuses are schedulable, assignable, starting, running, or
// draining. A status not in this set is terminal.
var activeStatuses = set.From([]ScheduleStatus{
	TaskPending,
	TaskAssigned,
	TaskStarting,
	TaskRunning,
	TaskKilling,
})

// terminalStatuses is the complement of activeStatuses.
var terminalStatuses = set.From([]ScheduleStatus{
	TaskFinished,
	TaskFailed,
	TaskKilled,
	TaskLost,
})

// IsActive reports whether status is schedulable, assignable, starting,
// running, or killing.
func (s ScheduleStatus) IsActive() bool {
	return activeStatuses.Contains(s)
}

// IsTerminal reports whether status is a finished, failed, killed, or
// lost state from which no further transition occurs.
func (s ScheduleStatus) IsTerminal() bool {
	return terminalStatuses.Contains(s)
}

// IsRunning reports whether status is the single "up" status.
func (s ScheduleStatus) IsRunning() bool {
	return s == TaskRunning
}

// IsKilling reports whether status is the draining status.
func (s ScheduleStatus) IsKilling() bool {
	return s == TaskKilling
}
