// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package update

import (
	"github.com/hashicorp/go-hclog"
	"github.com/nomad-sched/updateengine/scheduler/structs"
)

// Evaluator is the per-instance update decision engine described in
// package update's doc comment. Construct one with NewEvaluator and call
// Evaluate once per observed state change.
type Evaluator struct {
	desired           *structs.TaskConfig
	toleratedFailures uint32
	minRunningTimeMs  int64
	maxNonRunningMs   int64
	clock             Clock
	log               hclog.Logger

	failures failureCounter
}

// NewEvaluator validates cfg and constructs an Evaluator for one
// instance. A non-nil error here is a precondition violation: no
// Evaluator is returned and no state has been mutated.
func NewEvaluator(cfg Config) (*Evaluator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Evaluator{
		desired:           cfg.Desired,
		toleratedFailures: cfg.ToleratedFailures,
		minRunningTimeMs:  cfg.MinRunningTime.Milliseconds(),
		maxNonRunningMs:   cfg.MaxNonRunningTime.Milliseconds(),
		clock:             cfg.Clock,
		log:               cfg.logger(),
	}, nil
}

// Evaluate is the engine's sole operation: given the latest observation
// of the instance's scheduled task (nil if no task exists for this
// slot), it decides what the orchestrator should do next.
//
// Evaluate is synchronous, non-blocking, and allocation-light. It is not
// safe for concurrent use on the same Evaluator.
func (e *Evaluator) Evaluate(observation *structs.ScheduledTask) (Result, error) {
	desiredPresent := e.desired != nil
	actualPresent := isTaskPresent(observation)

	e.log.Trace("evaluating instance update",
		"desired_present", desiredPresent,
		"actual_present", actualPresent,
	)

	switch {
	case !desiredPresent && !actualPresent:
		return e.finish(Succeeded), nil

	case desiredPresent && !actualPresent:
		return e.finish(ReplaceAndEvaluateOnStateChange), nil

	case !desiredPresent && actualPresent:
		if isKillable(observation.Status) {
			return e.finish(KillAndEvaluateOnStateChange), nil
		}
		return e.finish(EvaluateOnStateChange), nil

	default: // desiredPresent && actualPresent
		return e.evaluateBothPresent(observation)
	}
}

// evaluateBothPresent handles the case where both a desired
// configuration and a live task exist, per spec §4.3.1.
func (e *Evaluator) evaluateBothPresent(obs *structs.ScheduledTask) (Result, error) {
	if len(obs.Events) == 0 {
		return 0, newPreconditionError("", "observed task has no events")
	}

	now := e.clock.NowMillis()
	status := obs.Status
	cfgMatch := configsEqualIgnoringOwner(e.desired, obs.AssignedTask.TaskConfig)

	if cfgMatch {
		switch {
		case status.IsRunning():
			if appearsStable(now, obs, e.minRunningTimeMs) {
				return e.finish(Succeeded), nil
			}
			return e.finish(EvaluateAfterMinRunningTime), nil

		case status.IsTerminal():
			tripped := e.failures.increment(e.toleratedFailures)
			e.log.Debug("observed task terminated with matching config", "observed_failures", e.failures.observed)
			if tripped {
				return e.finish(FailedTerminated), nil
			}
			return e.finish(EvaluateOnStateChange), nil

		case appearsStuck(now, obs, e.maxNonRunningMs):
			tripped := e.failures.increment(e.toleratedFailures)
			e.log.Debug("observed task stuck with matching config", "observed_failures", e.failures.observed)
			if tripped {
				return e.finish(FailedStuck), nil
			}
			if isKillable(status) {
				return e.finish(KillAndEvaluateOnStateChange), nil
			}
			// Already draining: wait rather than issue a redundant kill.
			return e.finish(EvaluateOnStateChange), nil

		default:
			// Transient into/out of RUNNING.
			return e.finish(EvaluateAfterMinRunningTime), nil
		}
	}

	// Wrong config in place: it must be replaced.
	switch {
	case isKillable(status):
		return e.finish(KillAndEvaluateOnStateChange), nil
	case status.IsTerminal() && isPermanentlyKilled(obs):
		return e.finish(ReplaceAndEvaluateOnStateChange), nil
	default:
		return e.finish(EvaluateOnStateChange), nil
	}
}

func (e *Evaluator) finish(r Result) Result {
	e.log.Debug("update decision", "result", r.String())
	return r
}
