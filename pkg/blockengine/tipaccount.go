// ============================================================================
// bundlerelay - Block Engine Relay Client SDK
// ============================================================================
//
// Package:     blockengine
// Description: Uniform random tip-account selection
// Author:      Mike Stoffels with Claude
// Created:     2026-06-14
// License:     MIT
// ============================================================================

package blockengine

import (
	"math/rand"

	"github.com/msto63/bundlerelay/pkg/core/sdkerror"
)

// RandomTipAccount picks one tip account uniformly at random from a
// getTipAccounts response envelope. The result field must be a non-empty
// array of strings.
func RandomTipAccount(response Value) (string, error) {
	result, ok := response.Result()
	if !ok {
		return "", sdkerror.New(sdkerror.CodeResponseShape,
			"failed to parse tip accounts: missing result field")
	}

	accounts, ok := result.Array()
	if !ok {
		return "", sdkerror.New(sdkerror.CodeResponseShape,
			"failed to parse tip accounts as array")
	}
	if len(accounts) == 0 {
		return "", sdkerror.New(sdkerror.CodeResponseShape,
			"no tip accounts available")
	}

	account, ok := accounts[rand.Intn(len(accounts))].Str()
	if !ok {
		return "", sdkerror.New(sdkerror.CodeResponseShape,
			"failed to parse tip account as string")
	}
	return account, nil
}
