// ============================================================================
// bundlerelay - Block Engine Relay Client SDK
// ============================================================================
//
// Package:     retry
// Description: Unit tests for the bounded retry policy
// Author:      Mike Stoffels with Claude
// Created:     2026-06-14
// License:     MIT
// ============================================================================

package retry

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/msto63/bundlerelay/pkg/core/sdkerror"
)

// sleepRecorder substitutes time.Sleep and records the requested delays
type sleepRecorder struct {
	delays []time.Duration
}

func (r *sleepRecorder) sleep(d time.Duration) {
	r.delays = append(r.delays, d)
}

func (r *sleepRecorder) total() time.Duration {
	var t time.Duration
	for _, d := range r.delays {
		t += d
	}
	return t
}

func testPolicy(rec *sleepRecorder) Policy {
	p := DefaultPolicy()
	p.Sleep = rec.sleep
	return p
}

// ============================================================================
// Unit Tests - success paths
// ============================================================================

func TestDoSucceedsFirstAttempt(t *testing.T) {
	rec := &sleepRecorder{}
	calls := 0

	err := testPolicy(rec).Do("getTipAccounts", func(attempt int) error {
		calls++
		return nil
	})

	if err != nil {
		t.Fatalf("Do returned error: %v", err)
	}
	if calls != 1 {
		t.Errorf("fn called %d times, expected 1", calls)
	}
	if len(rec.delays) != 0 {
		t.Errorf("no sleep expected on immediate success, got %v", rec.delays)
	}
}

func TestDoSucceedsAfterFailures(t *testing.T) {
	// Fails the first k attempts, succeeds on attempt k+1. The accumulated
	// backoff must be at least 100*(2^k - 1) ms.
	for k := 1; k <= 3; k++ {
		rec := &sleepRecorder{}
		calls := 0

		err := testPolicy(rec).Do("sendBundle", func(attempt int) error {
			calls++
			if calls <= k {
				return errors.New("transient")
			}
			return nil
		})

		if err != nil {
			t.Fatalf("k=%d: Do returned error: %v", k, err)
		}
		if calls != k+1 {
			t.Errorf("k=%d: fn called %d times, expected %d", k, calls, k+1)
		}

		minTotal := time.Duration(100*((1<<k)-1)) * time.Millisecond
		if rec.total() < minTotal {
			t.Errorf("k=%d: total backoff %v, expected at least %v", k, rec.total(), minTotal)
		}
	}
}

// ============================================================================
// Unit Tests - exhaustion and schedule
// ============================================================================

func TestDoExhaustsAttempts(t *testing.T) {
	rec := &sleepRecorder{}
	calls := 0

	err := testPolicy(rec).Do("sendBundle", func(attempt int) error {
		calls++
		if attempt != calls {
			t.Errorf("attempt number %d, expected %d", attempt, calls)
		}
		return errors.New("unavailable")
	})

	if err == nil {
		t.Fatal("Do should fail when every attempt fails")
	}
	if calls != 5 {
		t.Errorf("fn called %d times, expected exactly 5", calls)
	}
	if !strings.Contains(err.Error(), "after 5 attempts") {
		t.Errorf("terminal error should name the attempt count: %q", err.Error())
	}
	if !strings.Contains(err.Error(), "unavailable") {
		t.Errorf("terminal error should describe the failure: %q", err.Error())
	}
	if sdkerror.CodeOf(err) != sdkerror.CodeCall {
		t.Errorf("terminal error code = %v, expected %v", sdkerror.CodeOf(err), sdkerror.CodeCall)
	}

	// One sleep fewer than attempts, pure doubling from 100ms
	expected := []time.Duration{
		100 * time.Millisecond,
		200 * time.Millisecond,
		400 * time.Millisecond,
		800 * time.Millisecond,
	}
	if len(rec.delays) != len(expected) {
		t.Fatalf("recorded %d sleeps, expected %d", len(rec.delays), len(expected))
	}
	for i, d := range expected {
		if rec.delays[i] != d {
			t.Errorf("sleep %d = %v, expected %v", i, rec.delays[i], d)
		}
	}
}

func TestDoNoSleepAfterFinalAttempt(t *testing.T) {
	rec := &sleepRecorder{}

	_ = testPolicy(rec).Do("sendBundle", func(attempt int) error {
		return errors.New("always")
	})

	if len(rec.delays) != 4 {
		t.Errorf("recorded %d sleeps, expected 4 (none after the final attempt)", len(rec.delays))
	}
}

func TestDoDefaultsGuardDegenerateValues(t *testing.T) {
	rec := &sleepRecorder{}
	p := Policy{MaxAttempts: 0, BaseDelay: 10 * time.Millisecond, Sleep: rec.sleep}

	calls := 0
	err := p.Do("op", func(attempt int) error {
		calls++
		return errors.New("nope")
	})

	if err == nil {
		t.Fatal("expected error")
	}
	if calls != 1 {
		t.Errorf("degenerate MaxAttempts should still run once, ran %d times", calls)
	}
}

func TestDoRealSleepElapsed(t *testing.T) {
	// Small real-clock sanity check with a fast schedule
	p := Policy{MaxAttempts: 3, BaseDelay: 5 * time.Millisecond, Multiplier: 2}

	start := time.Now()
	calls := 0
	err := p.Do("op", func(attempt int) error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})
	elapsed := time.Since(start)

	if err != nil {
		t.Fatalf("Do returned error: %v", err)
	}
	if elapsed < 15*time.Millisecond {
		t.Errorf("elapsed %v, expected at least 15ms (5 + 10)", elapsed)
	}
}
