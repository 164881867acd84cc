// ============================================================================
// bundlerelay - Block Engine Relay Client SDK
// ============================================================================
//
// Package:     cmd
// Description: tip-accounts command
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

var tipRandom bool

var tipAccountsCmd = &cobra.Command{
	Use:   "tip-accounts",
	Short: "List the relay's tip accounts",
	Long: `Fetches the relay's tip accounts over JSON-RPC.

With --random, one account is selected uniformly at random - the usual
input for building a tip transaction.`,
	RunE: runTipAccounts,
}

func init() {
	tipAccountsCmd.Flags().BoolVar(&tipRandom, "random", false, "print one randomly selected account")
	rootCmd.AddCommand(tipAccountsCmd)
}

func runTipAccounts(cmd *cobra.Command, args []string) error {
	client, _, err := newClient()
	if err != nil {
		printError("failed to build client", err)
		return err
	}
	defer client.Close()

	ctx := context.Background()

	if tipRandom {
		account, err := client.GetRandomTipAccount(ctx)
		if err != nil {
			printError("failed to select tip account", err)
			return err
		}
		fmt.Println(account)
		return nil
	}

	response, err := client.GetTipAccounts(ctx)
	if err != nil {
		printError("failed to fetch tip accounts", err)
		return err
	}

	result, ok := response.Result()
	if !ok {
		// Surface whatever the relay answered
		fmt.Println(response.Pretty())
		return nil
	}

	accounts, ok := result.StringArray()
	if !ok {
		fmt.Println(result.Pretty())
		return nil
	}

	fmt.Println(headerStyle.Render("Tip Accounts"))
	for _, account := range accounts {
		fmt.Printf("  %s\n", account)
	}
	fmt.Println(dimStyle.Render(fmt.Sprintf("%d accounts", len(accounts))))
	return nil
}
