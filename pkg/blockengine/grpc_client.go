// ============================================================================
// bundlerelay - Block Engine Relay Client SDK
// ============================================================================
//
// Package:     blockengine
// Description: Binary-protocol client with bounded retry for unary calls
// Author:      Mike Stoffels with Claude
// Created:     2026-06-14
// License:     MIT
// ============================================================================

package blockengine

import (
	"context"
	"sync"
	"time"

	pb "github.com/msto63/bundlerelay/api/gen/blockengine"
	coregrpc "github.com/msto63/bundlerelay/pkg/core/grpc"
	"github.com/msto63/bundlerelay/pkg/core/logging"
	"github.com/msto63/bundlerelay/pkg/core/retry"
	"github.com/msto63/bundlerelay/pkg/core/sdkerror"
	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
)

// readyWindow bounds how long a call waits for the channel to report ready
// before the attempt counts as a retryable failure
const readyWindow = 2 * time.Second

// GrpcClient is the binary-protocol client for the relay. The mutex
// serializes calls: at most one request is in flight per handle. Callers
// needing concurrency issue independent handles.
type GrpcClient struct {
	mu     sync.Mutex
	conn   grpcConn
	client pb.BlockEngineClient
	policy retry.Policy
	logger *logging.Logger
	uuid   string
}

// grpcConn is the connection surface the client needs; *grpc.ClientConn
// satisfies it, and tests substitute a stub
type grpcConn interface {
	GetState() connectivity.State
	Connect()
	WaitForStateChange(ctx context.Context, sourceState connectivity.State) bool
	Close() error
}

// GrpcOption customizes a GrpcClient at construction time
type GrpcOption func(*GrpcClient)

// WithRetryPolicy substitutes the retry schedule for unary calls
func WithRetryPolicy(p retry.Policy) GrpcOption {
	return func(c *GrpcClient) { c.policy = p }
}

// WithAttributionID attaches an attribution id to every call's metadata
func WithAttributionID(uuid string) GrpcOption {
	return func(c *GrpcClient) { c.uuid = uuid }
}

// WithGrpcLogger substitutes the client's logger
func WithGrpcLogger(logger *logging.Logger) GrpcOption {
	return func(c *GrpcClient) { c.logger = logger }
}

// withDefaultAttribution sets the attribution id only when no explicit
// option provided one
func withDefaultAttribution(uuid string) GrpcOption {
	return func(c *GrpcClient) {
		if c.uuid == "" {
			c.uuid = uuid
		}
	}
}

// NewGrpcClient connects to the relay's binary endpoint. Addresses carrying
// an https scheme are dialed with TLS, anything else in plaintext.
func NewGrpcClient(addr string, opts ...GrpcOption) (*GrpcClient, error) {
	c := &GrpcClient{
		policy: retry.DefaultPolicy(),
		logger: logging.New("blockengine-grpc"),
	}
	for _, opt := range opts {
		opt(c)
	}

	cfg := coregrpc.DefaultClientConfig(addr)
	cfg.AttributionID = c.uuid

	conn, err := coregrpc.Dial(cfg)
	if err != nil {
		return nil, err
	}

	c.conn = conn
	c.client = pb.NewBlockEngineClient(conn)

	c.logger.Info("connected to relay", "address", addr)
	return c, nil
}

// Close closes the underlying connection
func (c *GrpcClient) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// GetTipAccounts fetches the relay's tip accounts over the binary protocol
func (c *GrpcClient) GetTipAccounts(ctx context.Context) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var resp *pb.GetTipAccountsResponse
	err := c.policy.Do("getTipAccounts", func(attempt int) error {
		if err := c.ensureReady(ctx); err != nil {
			return err
		}
		var callErr error
		resp, callErr = c.client.GetTipAccounts(ctx, &pb.GetTipAccountsRequest{Uuid: c.uuid})
		return callErr
	})
	if err != nil {
		return nil, err
	}

	if len(resp.GetAccounts()) == 0 {
		return nil, sdkerror.New(sdkerror.CodeResponseShape, "no tip accounts available")
	}
	return resp.GetAccounts(), nil
}

// SendBundle submits a bundle of serialized transactions and returns the
// relay-assigned bundle id. The transaction count is validated before any
// network activity.
func (c *GrpcClient) SendBundle(ctx context.Context, transactions []string) (string, error) {
	if err := validateTransactionCount(transactions); err != nil {
		return "", err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.logger.Debug("sending bundle", "transactions", len(transactions))

	var resp *pb.SendBundleResponse
	err := c.policy.Do("sendBundle", func(attempt int) error {
		if err := c.ensureReady(ctx); err != nil {
			return err
		}
		var callErr error
		resp, callErr = c.client.SendBundle(ctx, &pb.SendBundleRequest{
			Transactions: transactions,
			Uuid:         c.uuid,
		})
		return callErr
	})
	if err != nil {
		return "", err
	}

	if resp.GetBundleId() == "" {
		return "", sdkerror.New(sdkerror.CodeResponseShape,
			"relay accepted the bundle but returned no bundle id")
	}

	c.logger.Info("bundle accepted", "bundle_id", resp.GetBundleId(), "status", resp.GetStatus())
	return resp.GetBundleId(), nil
}

// GetBundleStatuses polls the statuses of previously submitted bundles
func (c *GrpcClient) GetBundleStatuses(ctx context.Context, bundleIDs []string) ([]*pb.BundleStatus, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var resp *pb.GetBundleStatusesResponse
	err := c.policy.Do("getBundleStatuses", func(attempt int) error {
		if err := c.ensureReady(ctx); err != nil {
			return err
		}
		var callErr error
		resp, callErr = c.client.GetBundleStatuses(ctx, &pb.GetBundleStatusesRequest{
			BundleUuids: bundleIDs,
			Uuid:        c.uuid,
		})
		return callErr
	})
	if err != nil {
		return nil, err
	}

	return resp.GetStatuses(), nil
}

// ensureReady confirms the channel reports ready before an attempt, kicking
// an idle channel into connecting and waiting briefly for the transition.
// A channel that does not become ready is a retryable failure.
func (c *GrpcClient) ensureReady(ctx context.Context) error {
	state := c.conn.GetState()
	if state == connectivity.Ready {
		return nil
	}
	if state == connectivity.Idle {
		c.conn.Connect()
	}

	waitCtx, cancel := context.WithTimeout(ctx, readyWindow)
	defer cancel()

	for {
		state = c.conn.GetState()
		if state == connectivity.Ready {
			return nil
		}
		if !c.conn.WaitForStateChange(waitCtx, state) {
			return sdkerror.Newf(sdkerror.CodeCall, "channel not ready (state %s)", state)
		}
	}
}

var _ grpcConn = (*grpc.ClientConn)(nil)
