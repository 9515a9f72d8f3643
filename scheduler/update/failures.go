// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package update

// failureCounter is a monotonic per-instance count of observed
// failures. It never decreases and is incremented at exactly two sites
// in the decision core: the cfg-match-terminated branch and the
// cfg-match-stuck branch. A kill the engine itself chooses (the
// wrong-config branch) is remediation, not an observed failure, and
// must not touch this counter.
type failureCounter struct {
	observed uint32
}

// increment bumps the counter and reports whether it now exceeds
// tolerated, per the strict ">" rule: tolerated=0 permits zero
// failures, tolerated=1 permits one, and so on.
func (f *failureCounter) increment(tolerated uint32) (tripped bool) {
	f.observed++
	return f.observed > tolerated
}
