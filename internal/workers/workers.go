// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Velram

// Package workers provides abstractions for bounding background and
// CPU-heavy work in the application.
//
// Its main component is the KDFPool, which caps the number of concurrently
// running key-derivation calls so that slow scrypt invocations on the login
// and registration paths cannot starve request intake under load.
package workers

import (
	"context"
	"runtime"
)

// KDFPool is a semaphore-bounded execution pool for key-derivation calls.
//
// The pool does not own goroutines; callers run the work on their own
// request goroutine once a slot is acquired. This keeps per-call context
// and error propagation trivial while still bounding concurrency.
type KDFPool struct {
	slots chan struct{}
}

// NewKDFPool constructs a pool admitting at most size concurrent calls.
// A non-positive size defaults to the number of schedulable CPUs.
func NewKDFPool(size int) *KDFPool {
	if size <= 0 {
		size = runtime.GOMAXPROCS(0)
	}

	return &KDFPool{slots: make(chan struct{}, size)}
}

// Do runs fn once a pool slot becomes available and returns fn's error.
//
// While waiting for a slot the call honors ctx cancellation and returns
// ctx.Err() without running fn. Once started, fn runs to completion; scrypt
// cost is fixed and bounded, so in-flight derivations are not interrupted.
func (p *KDFPool) Do(ctx context.Context, fn func() error) error {
	select {
	case p.slots <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-p.slots }()

	return fn()
}
