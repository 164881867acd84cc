// ============================================================================
// bundlerelay - Block Engine Relay Client SDK
// ============================================================================
//
// Package:     blockengine
// Description: Package documentation
// Author:      Mike Stoffels with Claude
// Created:     2026-06-14
// License:     MIT
// ============================================================================

// Package blockengine is a client SDK for a transaction-bundle relay
// ("block engine"). It exposes the relay's three operations - fetching tip
// accounts, submitting transaction bundles, and polling bundle statuses -
// over two transports: a JSON-RPC/HTTP path (Client) and a gRPC path
// (GrpcClient).
//
// The JSON-RPC path returns dynamic Value trees because the relay's
// response contract is field presence, not a fixed schema:
//
//	client := blockengine.New("https://mainnet.block-engine.example.net/api/v1",
//		blockengine.WithUUID("my-quota-id"))
//
//	tip, err := client.GetRandomTipAccount(ctx)
//	if err != nil {
//		// handle
//	}
//
//	params := blockengine.BundleParams([]string{signedTx}, nil)
//	resp, err := client.SendBundle(ctx, params, "")
//
// The gRPC path is enabled late, after construction:
//
//	if err := client.EnableGRPC("https://mainnet.block-engine.example.net:443"); err != nil {
//		// handle
//	}
//	gc, _ := client.GRPC()
//	bundleID, err := gc.SendBundle(ctx, []string{signedTx})
//
// A GrpcClient serializes its calls through a mutex: one request in flight
// per handle. Unary calls retry transient failures with bounded exponential
// backoff (five attempts, 100ms doubling). Bundles are validated before any
// network activity: one to five serialized transactions per bundle.
package blockengine
