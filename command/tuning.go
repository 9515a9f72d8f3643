// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package command

import (
	"time"

	"github.com/hashicorp/hcl/v2/hclsimple"
)

// tuningFile is the on-disk shape of the optional -config file accepted
// by the evaluate command. Durations are parsed as Go duration strings
// ("30s", "5m") by hclsimple's built-in decoding.
type tuningFile struct {
	ToleratedFailures uint32        `hcl:"tolerated_failures,optional"`
	MinRunningTime    time.Duration `hcl:"min_running_time,optional"`
	MaxNonRunningTime time.Duration `hcl:"max_non_running_time,optional"`
}

// defaultTuning mirrors the defaults a freshly-registered instance
// update would use absent an operator-supplied file.
func defaultTuning() tuningFile {
	return tuningFile{
		ToleratedFailures: 0,
		MinRunningTime:    30 * time.Second,
		MaxNonRunningTime: 5 * time.Minute,
	}
}

// loadTuning reads path, if non-empty, and overlays it on the defaults.
func loadTuning(path string) (tuningFile, error) {
	tuning := defaultTuning()
	if path == "" {
		return tuning, nil
	}
	if err := hclsimple.DecodeFile(path, nil, &tuning); err != nil {
		return tuningFile{}, err
	}
	return tuning, nil
}
