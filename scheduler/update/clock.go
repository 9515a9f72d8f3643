// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package update

import "time"

// Clock produces a monotonic milliseconds timestamp. Tests inject a fake
// implementation; production wires WallClock.
type Clock interface {
	NowMillis() int64
}

// WallClock is the real-time Clock used outside of tests.
type WallClock struct{}

// NowMillis returns the current wall-clock time in milliseconds.
func (WallClock) NowMillis() int64 {
	return time.Now().UnixMilli()
}
