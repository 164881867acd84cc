// ============================================================================
// bundlerelay - Block Engine Relay Client SDK
// ============================================================================
//
// Package:     blockengine
// Description: Structural validation of bundle submission parameters
// Author:      Mike Stoffels with Claude
// Created:     2026-06-14
// License:     MIT
// ============================================================================

package blockengine

import (
	"github.com/msto63/bundlerelay/pkg/core/sdkerror"
)

// MaxBundleTransactions is the relay's upper bound on transactions per bundle
const MaxBundleTransactions = 5

// BundleParams builds the sendBundle parameter pair from serialized
// transactions and an optional free-form options value
func BundleParams(transactions []string, options interface{}) Value {
	txs := make([]interface{}, len(transactions))
	for i, tx := range transactions {
		txs[i] = tx
	}
	params := []interface{}{txs}
	if options != nil {
		params = append(params, options)
	}
	return ValueOf(params)
}

// ValidateBundleParams confirms params is a two-element ordered structure
// whose first element is a non-empty sequence of at most five transaction
// blobs. The check is pure and shared by both protocol paths; every violation
// is a distinct precondition error.
func ValidateBundleParams(params Value) error {
	outer, ok := params.Array()
	if !ok || len(outer) < 1 {
		return sdkerror.New(sdkerror.CodePrecondition,
			"invalid bundle format: expected [serialized_txs, options]")
	}

	txs, ok := outer[0].Array()
	if !ok {
		return sdkerror.New(sdkerror.CodePrecondition,
			"first element must be an array of transactions")
	}
	if len(txs) == 0 {
		return sdkerror.New(sdkerror.CodePrecondition,
			"bundle must contain at least one transaction")
	}
	if len(txs) > MaxBundleTransactions {
		return sdkerror.Newf(sdkerror.CodePrecondition,
			"bundle can contain at most %d transactions", MaxBundleTransactions)
	}
	return nil
}

// validateTransactionCount is the shared bound check for the binary path,
// where transactions arrive as a plain slice instead of a parameter pair
func validateTransactionCount(transactions []string) error {
	if len(transactions) == 0 {
		return sdkerror.New(sdkerror.CodePrecondition,
			"bundle must contain at least one transaction")
	}
	if len(transactions) > MaxBundleTransactions {
		return sdkerror.Newf(sdkerror.CodePrecondition,
			"bundle can contain at most %d transactions", MaxBundleTransactions)
	}
	return nil
}
