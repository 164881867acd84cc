// ============================================================================
// bundlerelay - Block Engine Relay Client SDK
// ============================================================================
//
// Package:     cmd
// Description: version command
// Author:      Mike Stoffels with Claude
// Created:     2026-06-14
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/msto63/bundlerelay/pkg/core/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("berelay v%s\n", version.CLI)
		fmt.Printf("  SDK Version:      %s\n", version.SDK)
		fmt.Printf("  Protocol Version: %s\n", version.Protocol)
		fmt.Printf("  Go Version:       %s\n", runtime.Version())
		fmt.Printf("  OS/Arch:          %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
