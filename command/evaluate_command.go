// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package command

import (
	"flag"
	"fmt"
	"strings"

	"github.com/hashicorp/cli"
	"github.com/hashicorp/go-hclog"
	"github.com/nomad-sched/updateengine/scheduler/update"
)

// EvaluateCommand runs a single Evaluate call against a recorded
// observation and prints the resulting Result. It is a manual harness
// for operators and demos, not an implementation of the orchestrator:
// it does no batching, no pulse timing, and does not loop on
// EVALUATE_ON_STATE_CHANGE results — that is the job of the real
// orchestrator this engine is embedded in.
type EvaluateCommand struct {
	UI cli.Ui
}

var _ cli.Command = (*EvaluateCommand)(nil)

func (c *EvaluateCommand) Synopsis() string {
	return "Evaluate one instance update decision against a recorded observation"
}

func (c *EvaluateCommand) Help() string {
	return strings.TrimSpace(`
Usage: updatectl evaluate [options]

  Builds an Evaluator from the given desired configuration and tuning,
  feeds it a single observation, and prints the Result.

Options:

  -desired=<path>      JSON TaskConfig the instance should converge to.
                        Omit for "no instance desired".
  -observation=<path>  JSON ScheduledTask currently observed. Omit for
                        "no task present".
  -config=<path>       Optional HCL tuning file (tolerated_failures,
                        min_running_time, max_non_running_time).
`)
}

func (c *EvaluateCommand) Run(args []string) int {
	var desiredPath, observationPath, configPath string

	flags := flag.NewFlagSet("evaluate", flag.ContinueOnError)
	flags.StringVar(&desiredPath, "desired", "", "path to desired TaskConfig JSON")
	flags.StringVar(&observationPath, "observation", "", "path to observed ScheduledTask JSON")
	flags.StringVar(&configPath, "config", "", "path to HCL tuning file")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	tuning, err := loadTuning(configPath)
	if err != nil {
		c.UI.Error(fmt.Sprintf("loading tuning: %v", err))
		return 1
	}

	desired, err := readTaskConfig(desiredPath)
	if err != nil {
		c.UI.Error(fmt.Sprintf("reading desired config: %v", err))
		return 1
	}

	observation, err := readScheduledTask(observationPath)
	if err != nil {
		c.UI.Error(fmt.Sprintf("reading observation: %v", err))
		return 1
	}

	evaluator, err := update.NewEvaluator(update.Config{
		Desired:           desired,
		ToleratedFailures: tuning.ToleratedFailures,
		MinRunningTime:    tuning.MinRunningTime,
		MaxNonRunningTime: tuning.MaxNonRunningTime,
		Clock:             update.WallClock{},
		Logger:            hclog.Default().Named("update"),
	})
	if err != nil {
		c.UI.Error(fmt.Sprintf("constructing evaluator: %v", err))
		return 1
	}

	result, err := evaluator.Evaluate(observation)
	if err != nil {
		c.UI.Error(fmt.Sprintf("evaluate: %v", err))
		return 1
	}

	c.UI.Output(result.String())
	return 0
}
