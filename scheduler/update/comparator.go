// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package update

import (
	"github.com/google/go-cmp/cmp"
	"github.com/nomad-sched/updateengine/scheduler/structs"
)

// configsEqualIgnoringOwner reports whether a and b are structurally
// equal once their Owner identities are normalized to the zero value.
// The orchestrator may rewrite owner identity between submission and
// execution (stamping an audit field); that alone must not count as a
// configuration mismatch.
//
// Neither a nor b is mutated: normalized copies are built and compared,
// matching the "construct normalized views, don't mutate shared values"
// guidance for this comparison.
func configsEqualIgnoringOwner(a, b *structs.TaskConfig) bool {
	if a == nil || b == nil {
		return a == b
	}
	left := a.Copy()
	right := b.Copy()
	left.Owner = structs.Identity{}
	right.Owner = structs.Identity{}
	return cmp.Equal(left, right)
}
