// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Velram

package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestKDFPool_RunsFunction verifies that Do executes the function and
// returns its result.
func TestKDFPool_RunsFunction(t *testing.T) {
	pool := NewKDFPool(1)

	ran := false
	err := pool.Do(context.Background(), func() error {
		ran = true
		return nil
	})

	require.NoError(t, err)
	assert.True(t, ran)
}

// TestKDFPool_PropagatesError verifies that fn's error is returned as-is.
func TestKDFPool_PropagatesError(t *testing.T) {
	pool := NewKDFPool(1)
	wantErr := errors.New("kdf failed")

	err := pool.Do(context.Background(), func() error {
		return wantErr
	})

	assert.ErrorIs(t, err, wantErr)
}

// TestKDFPool_BoundsConcurrency verifies that no more than size calls run
// at the same time.
func TestKDFPool_BoundsConcurrency(t *testing.T) {
	const (
		size  = 2
		calls = 10
	)

	pool := NewKDFPool(size)

	var (
		current int64
		peak    int64
		wg      sync.WaitGroup
	)

	for i := 0; i < calls; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = pool.Do(context.Background(), func() error {
				running := atomic.AddInt64(&current, 1)
				defer atomic.AddInt64(&current, -1)

				// record the highest observed concurrency
				for {
					observed := atomic.LoadInt64(&peak)
					if running <= observed || atomic.CompareAndSwapInt64(&peak, observed, running) {
						break
					}
				}

				time.Sleep(5 * time.Millisecond)
				return nil
			})
		}()
	}

	wg.Wait()
	assert.LessOrEqual(t, atomic.LoadInt64(&peak), int64(size))
}

// TestKDFPool_CancelledWhileWaiting verifies that a caller waiting for a
// slot is released with the context error and its function never runs.
func TestKDFPool_CancelledWhileWaiting(t *testing.T) {
	pool := NewKDFPool(1)

	occupied := make(chan struct{})
	release := make(chan struct{})
	go func() {
		_ = pool.Do(context.Background(), func() error {
			close(occupied)
			<-release
			return nil
		})
	}()
	<-occupied
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ran := false
	err := pool.Do(ctx, func() error {
		ran = true
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, ran, "cancelled call must not run its function")
}

// TestNewKDFPool_NonPositiveSize verifies that a non-positive size still
// yields a usable pool.
func TestNewKDFPool_NonPositiveSize(t *testing.T) {
	pool := NewKDFPool(0)

	err := pool.Do(context.Background(), func() error { return nil })
	assert.NoError(t, err)
}
