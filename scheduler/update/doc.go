// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Package update implements the per-instance update decision engine for
// a rolling job update: given the latest observed runtime state of a
// single instance, it decides whether the orchestrator should wait,
// replace the task, kill it, mark the instance succeeded, or declare it
// permanently failed.
//
// The engine is a pure decision function plus a small monotonic failure
// counter. It performs no I/O, starts no timers, and holds no reference
// to observations between calls. Everything it needs — the desired
// configuration, tuning, and a Clock — is supplied at construction.
//
// An *Evaluator is owned by exactly one logical instance. Evaluate is
// not safe to call concurrently on the same *Evaluator; a multi-threaded
// orchestrator must keep one Evaluator per instance, guarded by its own
// lock or actor mailbox if needed.
package update
