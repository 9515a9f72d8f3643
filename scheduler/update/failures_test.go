// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package update

import (
	"testing"

	"github.com/shoenig/test/must"
)

func TestFailureCounter_StrictGreaterThan(t *testing.T) {
	var f failureCounter

	must.False(t, f.increment(1)) // observed=1, tolerated=1 -> not tripped
	must.True(t, f.increment(1))  // observed=2, tolerated=1 -> tripped

	must.Eq(t, uint32(2), f.observed)
}

func TestFailureCounter_ZeroTolerance(t *testing.T) {
	var f failureCounter
	must.True(t, f.increment(0)) // first failure already trips it
}

func TestFailureCounter_NeverDecreases(t *testing.T) {
	var f failureCounter
	for i := 0; i < 5; i++ {
		prev := f.observed
		f.increment(1000)
		must.True(t, f.observed > prev)
	}
}
