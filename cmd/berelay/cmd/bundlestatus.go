// ============================================================================
// bundlerelay - Block Engine Relay Client SDK
// ============================================================================
//
// Package:     cmd
// Description: bundle-status command
// Author:      Mike Stoffels with Claude
// Created:     2026-06-14
// License:     MIT
// ============================================================================

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var statusInflight bool

var bundleStatusCmd = &cobra.Command{
	Use:   "bundle-status <bundle-id> [bundle-id...]",
	Short: "Poll the status of submitted bundles",
	Long: `Queries the relay for the status of previously submitted bundles.

With --inflight the in-flight status endpoint is used, which also
reports bundles the relay has seen but not yet landed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBundleStatus,
}

func init() {
	bundleStatusCmd.Flags().BoolVar(&statusInflight, "inflight", false, "query the in-flight status endpoint")
	rootCmd.AddCommand(bundleStatusCmd)
}

func runBundleStatus(cmd *cobra.Command, args []string) error {
	client, _, err := newClient()
	if err != nil {
		printError("failed to build client", err)
		return err
	}
	defer client.Close()

	ctx := context.Background()

	query := client.GetBundleStatuses
	if statusInflight {
		query = client.GetInflightBundleStatuses
	}

	response, err := query(ctx, args)
	if err != nil {
		printError("status query failed", err)
		return err
	}

	if rpcErr, ok := response.Err(); ok {
		printError("relay returned an error", fmt.Errorf("%s", rpcErr.String()))
		return fmt.Errorf("relay returned an error")
	}

	fmt.Println(headerStyle.Render("Bundle Status"))
	if result, ok := response.Result(); ok {
		fmt.Println(result.Pretty())
	} else {
		fmt.Println(response.Pretty())
	}
	return nil
}
