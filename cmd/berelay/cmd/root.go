// ============================================================================
// bundlerelay - Block Engine Relay Client SDK
// ============================================================================
//
// Package:     cmd
// Description: Root command and shared client construction for the CLI
// Author:      Mike Stoffels with Claude
// Created:     2026-06-14
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/msto63/bundlerelay/pkg/blockengine"
	"github.com/msto63/bundlerelay/pkg/core/config"
	"github.com/msto63/bundlerelay/pkg/core/logging"
	"github.com/spf13/cobra"
)

var (
	cfgFile  string
	flagURL  string
	flagUUID string
	flagGRPC string
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "berelay",
	Short: "Client for a transaction-bundle relay (block engine)",
	Long: `berelay talks to a block engine relay over JSON-RPC or gRPC.

Commands:
  tip-accounts    - list the relay's tip accounts
  send-bundle     - submit a bundle of serialized transactions
  bundle-status   - poll the status of submitted bundles
  version         - show version information`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./berelay.toml)")
	rootCmd.PersistentFlags().StringVar(&flagURL, "url", "", "relay base URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagUUID, "uuid", "", "attribution id (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagGRPC, "grpc", "", "gRPC address; enables the binary path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig merges the config file with command-line overrides
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return nil, err
	}

	if flagURL != "" {
		cfg.Relay.BaseURL = flagURL
	}
	if flagUUID != "" {
		cfg.Relay.UUID = flagUUID
	}
	if flagGRPC != "" {
		cfg.GRPC.Address = flagGRPC
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newClient builds the relay client from the merged configuration
func newClient() (*blockengine.Client, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	logger := logging.NewWithConfig(logging.Config{
		Name:   "berelay",
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	client := blockengine.New(cfg.Relay.BaseURL,
		blockengine.WithUUID(cfg.Relay.UUID),
		blockengine.WithTimeout(cfg.Relay.Timeout.Duration),
		blockengine.WithLogger(logger),
	)

	if cfg.GRPC.Address != "" {
		if err := client.EnableGRPC(cfg.GRPC.Address); err != nil {
			return nil, nil, err
		}
	}

	return client, cfg, nil
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "%s %s: %v\n", errStyle.Render("error:"), msg, err)
}
