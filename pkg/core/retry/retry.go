// ============================================================================
// bundlerelay - Block Engine Relay Client SDK
// ============================================================================
//
// Package:     retry
// Description: Reusable bounded retry policy with exponential backoff
// Author:      Mike Stoffels with Claude
// Created:     2026-06-14
// License:     MIT
// ============================================================================

package retry

import (
	"time"

	"github.com/msto63/bundlerelay/pkg/core/sdkerror"
)

// Policy describes a bounded retry schedule: up to MaxAttempts invocations,
// sleeping BaseDelay before the second attempt and multiplying the delay by
// Multiplier after every failed attempt. Pure exponential backoff, no jitter.
//
// The backoff sleep is a plain time.Sleep; it does not observe context
// cancellation. Callers that need cancellation must bound the operation
// itself.
type Policy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Multiplier  float64

	// Sleep is the suspension function between attempts. Defaults to
	// time.Sleep; tests substitute a recorder.
	Sleep func(time.Duration)
}

// DefaultPolicy is the schedule used for unary relay calls: 5 attempts,
// 100ms initial delay, doubling.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts: 5,
		BaseDelay:   100 * time.Millisecond,
		Multiplier:  2,
	}
}

// Do invokes fn until it succeeds or the attempt budget is exhausted. The
// attempt number passed to fn starts at 1. On exhaustion the last failure is
// wrapped in a terminal error naming the operation and the attempt count.
func (p Policy) Do(operation string, fn func(attempt int) error) error {
	sleep := p.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	maxAttempts := p.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	multiplier := p.Multiplier
	if multiplier <= 0 {
		multiplier = 2
	}

	delay := p.BaseDelay
	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		lastErr = fn(attempt)
		if lastErr == nil {
			return nil
		}
		if attempt == maxAttempts {
			break
		}
		sleep(delay)
		delay = time.Duration(float64(delay) * multiplier)
	}

	return sdkerror.Wrapf(lastErr, sdkerror.CodeCall,
		"%s failed after %d attempts", operation, maxAttempts)
}
