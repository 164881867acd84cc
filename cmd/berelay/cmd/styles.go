// ============================================================================
// bundlerelay - Block Engine Relay Client SDK
// ============================================================================
//
// Package:     cmd
// Description: Terminal output styles for the CLI
// Author:      Mike Stoffels with Claude
// Created:     2026-06-14
// License:     MIT
// ============================================================================

package cmd

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("10"))

	errStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)
