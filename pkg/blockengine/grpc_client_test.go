// ============================================================================
// bundlerelay - Block Engine Relay Client SDK
// ============================================================================
//
// Package:     blockengine
// Description: Unit and in-process integration tests for the gRPC client
// Author:      Mike Stoffels with Claude
// Created:     2026-06-14
// License:     MIT
// ============================================================================

package blockengine

import (
	"context"
	"errors"
	"net"
	"strings"
	"testing"
	"time"

	pb "github.com/msto63/bundlerelay/api/gen/blockengine"
	coregrpc "github.com/msto63/bundlerelay/pkg/core/grpc"
	"github.com/msto63/bundlerelay/pkg/core/logging"
	"github.com/msto63/bundlerelay/pkg/core/retry"
	"github.com/msto63/bundlerelay/pkg/core/sdkerror"
	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/test/bufconn"
)

// ============================================================================
// Stubs
// ============================================================================

// stubConn fakes the connection readiness surface
type stubConn struct {
	state connectivity.State
}

func (s *stubConn) GetState() connectivity.State { return s.state }
func (s *stubConn) Connect()                     {}
func (s *stubConn) WaitForStateChange(ctx context.Context, sourceState connectivity.State) bool {
	return false
}
func (s *stubConn) Close() error { return nil }

// stubEngine fakes the generated service client, failing a configured number
// of times before succeeding
type stubEngine struct {
	failures int
	calls    int
}

func (s *stubEngine) fail() bool {
	s.calls++
	return s.calls <= s.failures
}

func (s *stubEngine) SendBundle(ctx context.Context, in *pb.SendBundleRequest, opts ...grpc.CallOption) (*pb.SendBundleResponse, error) {
	if s.fail() {
		return nil, errors.New("relay unavailable")
	}
	return &pb.SendBundleResponse{BundleId: "bundle-1", Status: "Pending"}, nil
}

func (s *stubEngine) GetTipAccounts(ctx context.Context, in *pb.GetTipAccountsRequest, opts ...grpc.CallOption) (*pb.GetTipAccountsResponse, error) {
	if s.fail() {
		return nil, errors.New("relay unavailable")
	}
	return &pb.GetTipAccountsResponse{Accounts: []string{"acc1", "acc2"}}, nil
}

func (s *stubEngine) GetBundleStatuses(ctx context.Context, in *pb.GetBundleStatusesRequest, opts ...grpc.CallOption) (*pb.GetBundleStatusesResponse, error) {
	if s.fail() {
		return nil, errors.New("relay unavailable")
	}
	return &pb.GetBundleStatusesResponse{
		Statuses: []*pb.BundleStatus{{BundleId: in.GetBundleUuids()[0], Status: "Landed", Slot: 42}},
	}, nil
}

func newStubClient(engine *stubEngine, conn grpcConn) *GrpcClient {
	policy := retry.DefaultPolicy()
	policy.Sleep = func(time.Duration) {} // no real backoff in unit tests

	return &GrpcClient{
		conn:   conn,
		client: engine,
		policy: policy,
		logger: logging.New("test"),
		uuid:   "test-id",
	}
}

// ============================================================================
// Unit Tests - retry behavior
// ============================================================================

func TestGrpcSendBundleRetriesThenSucceeds(t *testing.T) {
	engine := &stubEngine{failures: 2}
	client := newStubClient(engine, &stubConn{state: connectivity.Ready})

	bundleID, err := client.SendBundle(context.Background(), []string{"tx"})
	if err != nil {
		t.Fatalf("SendBundle failed: %v", err)
	}
	if bundleID != "bundle-1" {
		t.Errorf("bundle id = %q, expected bundle-1", bundleID)
	}
	if engine.calls != 3 {
		t.Errorf("calls = %d, expected 3 (two failures, one success)", engine.calls)
	}
}

func TestGrpcSendBundleExhaustsAttempts(t *testing.T) {
	engine := &stubEngine{failures: 100}
	client := newStubClient(engine, &stubConn{state: connectivity.Ready})

	_, err := client.SendBundle(context.Background(), []string{"tx"})
	if err == nil {
		t.Fatal("SendBundle should fail when every attempt fails")
	}
	if engine.calls != 5 {
		t.Errorf("calls = %d, expected exactly 5", engine.calls)
	}
	if !strings.Contains(err.Error(), "after 5 attempts") {
		t.Errorf("terminal error should name the attempt count: %q", err.Error())
	}
	if sdkerror.CodeOf(err) != sdkerror.CodeCall {
		t.Errorf("code = %v, expected %v", sdkerror.CodeOf(err), sdkerror.CodeCall)
	}
}

func TestGrpcNotReadyChannelIsRetryable(t *testing.T) {
	engine := &stubEngine{}
	client := newStubClient(engine, &stubConn{state: connectivity.TransientFailure})

	_, err := client.GetTipAccounts(context.Background())
	if err == nil {
		t.Fatal("expected failure on a channel that never becomes ready")
	}
	if engine.calls != 0 {
		t.Errorf("no RPC should be attempted on a non-ready channel, saw %d", engine.calls)
	}
	if !strings.Contains(err.Error(), "channel not ready") {
		t.Errorf("error should describe the non-ready channel: %q", err.Error())
	}
	if !strings.Contains(err.Error(), "after 5 attempts") {
		t.Errorf("non-ready attempts must consume the retry budget: %q", err.Error())
	}
}

func TestGrpcSendBundleValidatedBeforeNetwork(t *testing.T) {
	engine := &stubEngine{}
	client := newStubClient(engine, &stubConn{state: connectivity.Ready})

	for _, transactions := range [][]string{nil, txs(6)} {
		_, err := client.SendBundle(context.Background(), transactions)
		if err == nil {
			t.Fatalf("bundle with %d transactions should be rejected", len(transactions))
		}
		if sdkerror.CodeOf(err) != sdkerror.CodePrecondition {
			t.Errorf("code = %v, expected %v", sdkerror.CodeOf(err), sdkerror.CodePrecondition)
		}
	}
	if engine.calls != 0 {
		t.Errorf("validation must happen before any RPC, saw %d calls", engine.calls)
	}
}

// stubEmptyEngine answers successfully but with empty payloads
type stubEmptyEngine struct {
	stubEngine
}

func (s *stubEmptyEngine) SendBundle(ctx context.Context, in *pb.SendBundleRequest, opts ...grpc.CallOption) (*pb.SendBundleResponse, error) {
	s.calls++
	return &pb.SendBundleResponse{}, nil
}

func (s *stubEmptyEngine) GetTipAccounts(ctx context.Context, in *pb.GetTipAccountsRequest, opts ...grpc.CallOption) (*pb.GetTipAccountsResponse, error) {
	s.calls++
	return &pb.GetTipAccountsResponse{}, nil
}

func TestGrpcEmptyResponsesAreShapeErrors(t *testing.T) {
	engine := &stubEmptyEngine{}
	client := newStubClient(&engine.stubEngine, &stubConn{state: connectivity.Ready})
	client.client = engine

	_, err := client.SendBundle(context.Background(), []string{"tx"})
	if sdkerror.CodeOf(err) != sdkerror.CodeResponseShape {
		t.Errorf("empty bundle id: code = %v, expected %v", sdkerror.CodeOf(err), sdkerror.CodeResponseShape)
	}
	if engine.calls != 1 {
		t.Errorf("shape errors must not be retried, saw %d calls", engine.calls)
	}

	engine.calls = 0
	_, err = client.GetTipAccounts(context.Background())
	if sdkerror.CodeOf(err) != sdkerror.CodeResponseShape {
		t.Errorf("empty accounts: code = %v, expected %v", sdkerror.CodeOf(err), sdkerror.CodeResponseShape)
	}
	if engine.calls != 1 {
		t.Errorf("shape errors must not be retried, saw %d calls", engine.calls)
	}
}

// ============================================================================
// Integration Tests - in-process relay over bufconn
// ============================================================================

// bufferRelay is an in-process BlockEngine implementation
type bufferRelay struct {
	pb.UnimplementedBlockEngineServer
	lastRequestID string
	lastUUID      string
}

func (r *bufferRelay) SendBundle(ctx context.Context, in *pb.SendBundleRequest) (*pb.SendBundleResponse, error) {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if vals := md.Get(coregrpc.RequestIDHeader); len(vals) > 0 {
			r.lastRequestID = vals[0]
		}
	}
	r.lastUUID = in.GetUuid()
	return &pb.SendBundleResponse{BundleId: "buf-bundle", Status: "Pending"}, nil
}

func (r *bufferRelay) GetTipAccounts(ctx context.Context, in *pb.GetTipAccountsRequest) (*pb.GetTipAccountsResponse, error) {
	return &pb.GetTipAccountsResponse{Accounts: []string{"tip1", "tip2"}}, nil
}

func (r *bufferRelay) GetBundleStatuses(ctx context.Context, in *pb.GetBundleStatusesRequest) (*pb.GetBundleStatusesResponse, error) {
	statuses := make([]*pb.BundleStatus, len(in.GetBundleUuids()))
	for i, id := range in.GetBundleUuids() {
		statuses[i] = &pb.BundleStatus{BundleId: id, Status: "Landed", Slot: uint64(100 + i)}
	}
	return &pb.GetBundleStatusesResponse{Statuses: statuses}, nil
}

func startBufferRelay(t *testing.T) (*bufferRelay, *GrpcClient) {
	t.Helper()

	listener := bufconn.Listen(1024 * 1024)
	relay := &bufferRelay{}

	server := grpc.NewServer()
	pb.RegisterBlockEngineServer(server, relay)
	go server.Serve(listener)
	t.Cleanup(server.Stop)

	cfg := coregrpc.DefaultClientConfig("passthrough:///bufnet")
	cfg.AttributionID = "buf-attribution"
	conn, err := coregrpc.Dial(cfg, grpc.WithContextDialer(
		func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}))
	if err != nil {
		t.Fatalf("dial bufconn: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	policy := retry.DefaultPolicy()
	policy.BaseDelay = time.Millisecond

	client := &GrpcClient{
		conn:   conn,
		client: pb.NewBlockEngineClient(conn),
		policy: policy,
		logger: logging.New("test"),
		uuid:   "buf-attribution",
	}
	return relay, client
}

func TestGrpcClientOverBufconn(t *testing.T) {
	relay, client := startBufferRelay(t)
	ctx := context.Background()

	bundleID, err := client.SendBundle(ctx, []string{"txA", "txB"})
	if err != nil {
		t.Fatalf("SendBundle failed: %v", err)
	}
	if bundleID != "buf-bundle" {
		t.Errorf("bundle id = %q, expected buf-bundle", bundleID)
	}
	if relay.lastUUID != "buf-attribution" {
		t.Errorf("uuid on the wire = %q, expected buf-attribution", relay.lastUUID)
	}
	if relay.lastRequestID != "buf-attribution" {
		t.Errorf("request id metadata = %q, expected the attribution id", relay.lastRequestID)
	}

	accounts, err := client.GetTipAccounts(ctx)
	if err != nil {
		t.Fatalf("GetTipAccounts failed: %v", err)
	}
	if len(accounts) != 2 || accounts[0] != "tip1" {
		t.Errorf("accounts = %v", accounts)
	}

	statuses, err := client.GetBundleStatuses(ctx, []string{"a", "b"})
	if err != nil {
		t.Fatalf("GetBundleStatuses failed: %v", err)
	}
	if len(statuses) != 2 || statuses[0].GetBundleId() != "a" || statuses[1].GetSlot() != 101 {
		t.Errorf("statuses = %v", statuses)
	}
}
