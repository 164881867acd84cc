// ============================================================================
// bundlerelay - Block Engine Relay Client SDK
// ============================================================================
//
// Package:     cmd
// Description: send-bundle command
// Author:      Mike Stoffels with Claude
// Created:     2026-06-14
// License:     MIT
// ============================================================================

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/bundlerelay/pkg/blockengine"
)

var (
	sendUUID    string
	sendViaGRPC bool
)

var sendBundleCmd = &cobra.Command{
	Use:   "send-bundle <tx> [tx...]",
	Short: "Submit a bundle of serialized transactions",
	Long: `Submits the given serialized transactions to the relay as one atomic
bundle. A bundle holds between one and five transactions.

By default the bundle travels over JSON-RPC. With --via-grpc the
binary path is used instead, which requires a gRPC address in the
configuration or via --grpc.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSendBundle,
}

func init() {
	sendBundleCmd.Flags().StringVar(&sendUUID, "bundle-uuid", "", "override the attribution id for this submission")
	sendBundleCmd.Flags().BoolVar(&sendViaGRPC, "via-grpc", false, "submit over the gRPC path")
	rootCmd.AddCommand(sendBundleCmd)
}

func runSendBundle(cmd *cobra.Command, args []string) error {
	client, _, err := newClient()
	if err != nil {
		printError("failed to build client", err)
		return err
	}
	defer client.Close()

	ctx := context.Background()

	if sendViaGRPC {
		grpcClient, err := client.GRPC()
		if err != nil {
			printError("gRPC path unavailable", err)
			return err
		}
		bundleID, err := grpcClient.SendBundle(ctx, args)
		if err != nil {
			printError("bundle submission failed", err)
			return err
		}
		fmt.Println(okStyle.Render("bundle accepted"))
		fmt.Printf("  bundle id: %s\n", bundleID)
		return nil
	}

	params := blockengine.BundleParams(args, map[string]interface{}{})
	response, err := client.SendBundle(ctx, params, sendUUID)
	if err != nil {
		printError("bundle submission failed", err)
		return err
	}

	if rpcErr, ok := response.Err(); ok {
		printError("relay rejected bundle", fmt.Errorf("%s", rpcErr.String()))
		return fmt.Errorf("relay rejected bundle")
	}

	fmt.Println(okStyle.Render("bundle accepted"))
	if result, ok := response.Result(); ok {
		fmt.Println(result.Pretty())
	}
	return nil
}
