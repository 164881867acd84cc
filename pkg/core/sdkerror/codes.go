// ============================================================================
// bundlerelay - Block Engine Relay Client SDK
// ============================================================================
//
// Package:     sdkerror
// Description: Error codes categorizing the SDK's failure taxonomy
// Author:      Mike Stoffels with Claude
// Created:     2026-06-14
// License:     MIT
// ============================================================================

package sdkerror

// Code represents a structured error code for categorizing errors
type Code string

// Error codes for the SDK's failure taxonomy
const (
	// CodeUnknown is the fallback for errors produced outside the SDK
	CodeUnknown Code = "UNKNOWN"

	// CodeConnection covers connection-establishment failures: malformed
	// address, TLS handshake failure, dial timeout
	CodeConnection Code = "CONNECTION_FAILED"

	// CodeCall covers remote call failures: RPC errors and non-ready
	// channels, after the retry budget is exhausted
	CodeCall Code = "CALL_FAILED"

	// CodeResponseShape covers response-structure failures: missing field,
	// wrong type, empty collection, undecodable payload
	CodeResponseShape Code = "RESPONSE_SHAPE"

	// CodePrecondition covers caller errors detected before any network
	// activity: malformed bundle parameters, binary path not enabled
	CodePrecondition Code = "PRECONDITION"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeConnection, CodeCall, CodeResponseShape, CodePrecondition:
		return true
	default:
		return false
	}
}
