// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package command

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/nomad-sched/updateengine/scheduler/structs"
)

// wireTaskConfig and wireScheduledTask are the JSON-friendly shapes read
// from the -desired and -observation files. They exist so the on-disk
// format stays stable even if the internal structs gain fields later.
type wireTaskConfig struct {
	OwnerRegion string            `json:"owner_region"`
	OwnerUser   string            `json:"owner_user"`
	Fields      map[string]string `json:"fields"`
}

type wireTaskEvent struct {
	TimestampMs int64  `json:"timestamp_ms"`
	Status      string `json:"status"`
}

type wireScheduledTask struct {
	Status     string          `json:"status"`
	Events     []wireTaskEvent `json:"events"`
	TaskConfig *wireTaskConfig `json:"task_config"`
}

func readTaskConfig(path string) (*structs.TaskConfig, error) {
	if path == "" {
		return nil, nil
	}
	var w wireTaskConfig
	if err := readJSONFile(path, &w); err != nil {
		return nil, err
	}
	return &structs.TaskConfig{
		Owner:  structs.Identity{Region: w.OwnerRegion, User: w.OwnerUser},
		Fields: w.Fields,
	}, nil
}

func readScheduledTask(path string) (*structs.ScheduledTask, error) {
	if path == "" {
		return nil, nil
	}
	var w wireScheduledTask
	if err := readJSONFile(path, &w); err != nil {
		return nil, err
	}

	events := make([]structs.TaskEvent, 0, len(w.Events))
	for _, e := range w.Events {
		events = append(events, structs.TaskEvent{
			Timestamp: e.TimestampMs,
			Status:    structs.ScheduleStatus(e.Status),
		})
	}

	var assigned structs.AssignedTask
	if w.TaskConfig != nil {
		assigned.TaskConfig = &structs.TaskConfig{
			Owner:  structs.Identity{Region: w.TaskConfig.OwnerRegion, User: w.TaskConfig.OwnerUser},
			Fields: w.TaskConfig.Fields,
		}
	}

	return &structs.ScheduledTask{
		Status:       structs.ScheduleStatus(w.Status),
		Events:       events,
		AssignedTask: assigned,
	}, nil
}

func readJSONFile(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(v); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}
