// ============================================================================
// bundlerelay - Block Engine Relay Client SDK
// ============================================================================
//
// Package:     blockengine
// Description: Unit tests for bundle parameter validation
// Author:      Mike Stoffels with Claude
// Created:     2026-06-14
// License:     MIT
// ============================================================================

package blockengine

import (
	"strings"
	"testing"

	"github.com/msto63/bundlerelay/pkg/core/sdkerror"
)

func txs(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = "tx"
	}
	return out
}

func TestValidateBundleParamsAccepts(t *testing.T) {
	// Transaction counts 1 through 5 are all valid
	for n := 1; n <= MaxBundleTransactions; n++ {
		params := BundleParams(txs(n), map[string]interface{}{})
		if err := ValidateBundleParams(params); err != nil {
			t.Errorf("count %d should be accepted: %v", n, err)
		}
	}

	// Options element is optional
	if err := ValidateBundleParams(BundleParams(txs(1), nil)); err != nil {
		t.Errorf("missing options should be accepted: %v", err)
	}
}

func TestValidateBundleParamsRejects(t *testing.T) {
	tests := []struct {
		name        string
		params      Value
		wantMessage string
	}{
		{
			name:        "empty transactions",
			params:      BundleParams(nil, nil),
			wantMessage: "must contain at least one transaction",
		},
		{
			name:        "too many transactions",
			params:      BundleParams(txs(6), nil),
			wantMessage: "at most 5 transactions",
		},
		{
			name:        "not an array",
			params:      ValueOf(map[string]interface{}{"transactions": []string{"tx"}}),
			wantMessage: "expected [serialized_txs, options]",
		},
		{
			name:        "empty outer array",
			params:      ValueOf([]interface{}{}),
			wantMessage: "expected [serialized_txs, options]",
		},
		{
			name:        "first element not an array",
			params:      ValueOf([]interface{}{"tx"}),
			wantMessage: "first element must be an array",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBundleParams(tt.params)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantMessage) {
				t.Errorf("error %q should contain %q", err.Error(), tt.wantMessage)
			}
			if sdkerror.CodeOf(err) != sdkerror.CodePrecondition {
				t.Errorf("code = %v, expected %v", sdkerror.CodeOf(err), sdkerror.CodePrecondition)
			}
		})
	}
}

func TestValidateTransactionCount(t *testing.T) {
	if err := validateTransactionCount(txs(1)); err != nil {
		t.Errorf("one transaction should be accepted: %v", err)
	}
	if err := validateTransactionCount(txs(5)); err != nil {
		t.Errorf("five transactions should be accepted: %v", err)
	}
	if err := validateTransactionCount(nil); err == nil {
		t.Error("empty bundle should be rejected")
	}
	if err := validateTransactionCount(txs(6)); err == nil {
		t.Error("six transactions should be rejected")
	}
}

func TestBundleParamsShape(t *testing.T) {
	params := BundleParams([]string{"txA", "txB"}, map[string]interface{}{})

	outer, ok := params.Array()
	if !ok || len(outer) != 2 {
		t.Fatalf("params should be a two-element array, got %v", params)
	}
	first, ok := outer[0].StringArray()
	if !ok || len(first) != 2 || first[0] != "txA" || first[1] != "txB" {
		t.Errorf("first element = %v, expected [txA txB]", first)
	}
}
