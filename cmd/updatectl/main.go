// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Command updatectl is a thin manual harness around the per-instance
// update decision engine. It is not the orchestrator the engine is
// designed to live inside; it runs exactly one Evaluate call and prints
// the result.
package main

import (
	"os"

	"github.com/hashicorp/cli"
	"github.com/nomad-sched/updateengine/command"
)

func main() {
	ui := &cli.ColoredUi{
		Ui: &cli.BasicUi{
			Reader:      os.Stdin,
			Writer:      os.Stdout,
			ErrorWriter: os.Stderr,
		},
		OutputColor: cli.UiColorNone,
		ErrorColor:  cli.UiColorRed,
	}

	c := cli.NewCLI("updatectl", "0.1.0")
	c.Args = os.Args[1:]
	c.Commands = map[string]cli.CommandFactory{
		"evaluate": func() (cli.Command, error) {
			return &command.EvaluateCommand{UI: ui}, nil
		},
	}

	exitStatus, err := c.Run()
	if err != nil {
		ui.Error(err.Error())
		os.Exit(1)
	}
	os.Exit(exitStatus)
}
