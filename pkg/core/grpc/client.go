// ============================================================================
// bundlerelay - Block Engine Relay Client SDK
// ============================================================================
//
// Package:     grpc
// Description: Client connection setup for the relay's binary protocol
// Author:      Mike Stoffels with Claude
// Created:     2026-06-14
// License:     MIT
// ============================================================================

package grpc

import (
	"crypto/tls"
	"strings"
	"time"

	"github.com/msto63/bundlerelay/pkg/core/sdkerror"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"
)

// ClientConfig holds gRPC client connection configuration
type ClientConfig struct {
	Target            string
	AttributionID     string // optional, propagated as x-request-id metadata
	ConnectTimeout    time.Duration
	KeepaliveInterval time.Duration
	KeepaliveTimeout  time.Duration
	MaxRecvMsgSize    int
	MaxSendMsgSize    int
}

// DefaultClientConfig returns the default client configuration for a target.
// Keepalive stays active while the connection is idle.
func DefaultClientConfig(target string) ClientConfig {
	return ClientConfig{
		Target:            target,
		ConnectTimeout:    10 * time.Second,
		KeepaliveInterval: 30 * time.Second,
		KeepaliveTimeout:  20 * time.Second,
		MaxRecvMsgSize:    16 * 1024 * 1024, // 16MB
		MaxSendMsgSize:    16 * 1024 * 1024, // 16MB
	}
}

// Dial creates a gRPC client connection to the relay. Targets carrying an
// https:// scheme get TLS transport credentials; anything else dials insecure.
func Dial(cfg ClientConfig, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	target, creds := resolveTarget(cfg.Target)

	dialOpts := []grpc.DialOption{
		grpc.WithTransportCredentials(creds),
		grpc.WithConnectParams(grpc.ConnectParams{
			MinConnectTimeout: cfg.ConnectTimeout,
		}),
		grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(cfg.MaxRecvMsgSize),
			grpc.MaxCallSendMsgSize(cfg.MaxSendMsgSize),
		),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                cfg.KeepaliveInterval,
			Timeout:             cfg.KeepaliveTimeout,
			PermitWithoutStream: true,
		}),
		grpc.WithChainUnaryInterceptor(
			ClientRequestIDInterceptor(cfg.AttributionID),
			ClientLoggingInterceptor(),
		),
	}

	// Append custom options
	dialOpts = append(dialOpts, opts...)

	conn, err := grpc.NewClient(target, dialOpts...)
	if err != nil {
		return nil, sdkerror.Wrapf(err, sdkerror.CodeConnection, "failed to dial %s", cfg.Target)
	}

	return conn, nil
}

// resolveTarget strips a URL scheme from the target and picks transport
// credentials: TLS for https, plaintext otherwise.
func resolveTarget(target string) (string, credentials.TransportCredentials) {
	switch {
	case strings.HasPrefix(target, "https://"):
		return strings.TrimPrefix(target, "https://"), credentials.NewTLS(&tls.Config{})
	case strings.HasPrefix(target, "http://"):
		return strings.TrimPrefix(target, "http://"), insecure.NewCredentials()
	default:
		return target, insecure.NewCredentials()
	}
}
