// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package update

import (
	"fmt"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/nomad-sched/updateengine/scheduler/structs"
)

// Config holds everything an Evaluator needs for the lifetime of one
// instance. All fields are fixed at construction; the engine never
// mutates or re-reads them from elsewhere.
type Config struct {
	// Desired is the task configuration this instance should converge
	// to, or nil if the instance should not exist.
	Desired *structs.TaskConfig

	// ToleratedFailures is the number of observed failures the engine
	// will absorb before declaring the update terminally failed. Zero
	// means the first failure trips it.
	ToleratedFailures uint32

	// MinRunningTime is how long a RUNNING task's latest event must
	// have persisted before it is considered stable.
	MinRunningTime time.Duration

	// MaxNonRunningTime is how long a task may remain continuously out
	// of RUNNING before it is considered stuck.
	MaxNonRunningTime time.Duration

	// Clock supplies the current time. Required.
	Clock Clock

	// Logger receives trace/debug observations about each decision. If
	// nil, a no-op logger is used.
	Logger hclog.Logger
}

// Validate aggregates every precondition violation in cfg rather than
// stopping at the first, so a caller gets the complete picture of a
// malformed construction in one error.
func (cfg Config) Validate() error {
	var result *multierror.Error
	if cfg.Clock == nil {
		result = multierror.Append(result, fmt.Errorf("clock is required"))
	}
	if cfg.MinRunningTime < 0 {
		result = multierror.Append(result, fmt.Errorf("min running time must be non-negative, got %s", cfg.MinRunningTime))
	}
	if cfg.MaxNonRunningTime < 0 {
		result = multierror.Append(result, fmt.Errorf("max non-running time must be non-negative, got %s", cfg.MaxNonRunningTime))
	}
	return result.ErrorOrNil()
}

func (cfg Config) logger() hclog.Logger {
	if cfg.Logger == nil {
		return hclog.NewNullLogger()
	}
	return cfg.Logger
}
