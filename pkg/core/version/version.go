// ============================================================================
// bundlerelay - Block Engine Relay Client SDK
// ============================================================================
//
// Package:     version
// Description: Central version management for the SDK and CLI
// Author:      Mike Stoffels with Claude
// Created:     2026-06-14
// License:     MIT
// ============================================================================

package version

// Version constants for the SDK components
const (
	// SDK version
	SDK = "1.1.0"

	// Component versions
	CLI      = "1.1.0"
	Protocol = "1.0.0"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "cli":
		return CLI
	case "protocol":
		return Protocol
	default:
		return SDK
	}
}
