// ============================================================================
// bundlerelay - Block Engine Relay Client SDK
// ============================================================================
//
// Package:     blockengine
// Description: JSON-RPC client facade for the block engine relay
// Author:      Mike Stoffels with Claude
// Created:     2026-06-14
// License:     MIT
// ============================================================================

package blockengine

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/msto63/bundlerelay/pkg/core/logging"
	"github.com/msto63/bundlerelay/pkg/core/sdkerror"
)

// jsonrpcVersion is the protocol version sent in every envelope
const jsonrpcVersion = "2.0"

// Client is the JSON-RPC facade for a block engine relay. It is safe for
// concurrent use: all fields are fixed at construction except the optional
// late binding of the binary-protocol path via EnableGRPC.
type Client struct {
	baseURL    string
	uuid       string // attribution id, optional
	httpClient *http.Client
	logger     *logging.Logger

	grpcMu sync.Mutex
	grpc   *GrpcClient
}

// Option customizes a Client at construction time
type Option func(*Client)

// WithUUID attaches an attribution id to every request
func WithUUID(uuid string) Option {
	return func(c *Client) { c.uuid = uuid }
}

// WithHTTPClient substitutes the HTTP transport
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the HTTP transport timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithLogger substitutes the client's logger
func WithLogger(logger *logging.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// New creates a relay client for the given base URL
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logging.New("blockengine"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured relay endpoint
func (c *Client) BaseURL() string {
	return c.baseURL
}

// UUID returns the configured attribution id, if any
func (c *Client) UUID() string {
	return c.uuid
}

// EnableGRPC late-binds the binary-protocol path by connecting to the given
// address. Calling it again replaces the previous binding.
func (c *Client) EnableGRPC(addr string, opts ...GrpcOption) error {
	gc, err := NewGrpcClient(addr, append(opts, withDefaultAttribution(c.uuid))...)
	if err != nil {
		return err
	}

	c.grpcMu.Lock()
	defer c.grpcMu.Unlock()
	if c.grpc != nil {
		c.grpc.Close()
	}
	c.grpc = gc
	return nil
}

// GRPC returns the binary-protocol client. It fails with a precondition
// error when EnableGRPC has not been called.
func (c *Client) GRPC() (*GrpcClient, error) {
	c.grpcMu.Lock()
	defer c.grpcMu.Unlock()
	if c.grpc == nil {
		return nil, sdkerror.New(sdkerror.CodePrecondition,
			"gRPC path not enabled: call EnableGRPC first")
	}
	return c.grpc, nil
}

// Close releases the binary-protocol connection, if one was enabled
func (c *Client) Close() error {
	c.grpcMu.Lock()
	defer c.grpcMu.Unlock()
	if c.grpc != nil {
		err := c.grpc.Close()
		c.grpc = nil
		return err
	}
	return nil
}

// GetTipAccounts fetches the relay's tip accounts
func (c *Client) GetTipAccounts(ctx context.Context) (Value, error) {
	return c.sendRequest(ctx, c.bundlesEndpoint(""), "getTipAccounts", nil)
}

// GetRandomTipAccount fetches the tip accounts and picks one uniformly at
// random
func (c *Client) GetRandomTipAccount(ctx context.Context) (string, error) {
	response, err := c.GetTipAccounts(ctx)
	if err != nil {
		return "", err
	}
	return RandomTipAccount(response)
}

// GetBundleStatuses polls the statuses of previously submitted bundles
func (c *Client) GetBundleStatuses(ctx context.Context, bundleIDs []string) (Value, error) {
	params := ValueOf([]interface{}{bundleIDs})
	return c.sendRequest(ctx, c.bundlesEndpoint(""), "getBundleStatuses", &params)
}

// GetInflightBundleStatuses polls the statuses of bundles still in flight
func (c *Client) GetInflightBundleStatuses(ctx context.Context, bundleIDs []string) (Value, error) {
	params := ValueOf([]interface{}{bundleIDs})
	return c.sendRequest(ctx, c.bundlesEndpoint(""), "getInflightBundleStatuses", &params)
}

// SendBundle submits a bundle. params is the ordered pair built by
// BundleParams; uuidOverride replaces the client's attribution id for this
// call when non-empty. Validation happens before any network activity.
func (c *Client) SendBundle(ctx context.Context, params Value, uuidOverride string) (Value, error) {
	if err := ValidateBundleParams(params); err != nil {
		return Value{}, err
	}
	return c.sendRequest(ctx, c.bundlesEndpoint(uuidOverride), "sendBundle", &params)
}

// bundlesEndpoint builds the relay path, attaching the attribution id as a
// uuid query parameter when one is set
func (c *Client) bundlesEndpoint(uuidOverride string) string {
	endpoint := "/bundles"

	id := c.uuid
	if uuidOverride != "" {
		id = uuidOverride
	}
	if id != "" {
		endpoint += "?uuid=" + url.QueryEscape(id)
	}
	return endpoint
}

// sendRequest issues one JSON-RPC call and returns the parsed body
// unmodified. params defaults to an empty array when nil.
func (c *Client) sendRequest(ctx context.Context, endpoint, method string, params *Value) (Value, error) {
	requestURL := c.baseURL + endpoint

	envelope := map[string]interface{}{
		"jsonrpc": jsonrpcVersion,
		"id":      1,
		"method":  method,
	}
	if params != nil {
		envelope["params"] = params
	} else {
		envelope["params"] = []interface{}{}
	}

	body, err := json.Marshal(envelope)
	if err != nil {
		return Value{}, sdkerror.Wrapf(err, sdkerror.CodePrecondition,
			"failed to encode %s request", method)
	}

	c.logger.Debug("sending request", "url", requestURL, "method", method)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestURL, bytes.NewReader(body))
	if err != nil {
		return Value{}, sdkerror.Wrapf(err, sdkerror.CodePrecondition,
			"failed to build %s request", method)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Value{}, sdkerror.Wrapf(err, sdkerror.CodeCall,
			"%s request failed", method)
	}
	defer resp.Body.Close()

	c.logger.Debug("received response", "method", method, "status", resp.StatusCode)

	parsed, err := ParseValue(resp.Body)
	if err != nil {
		return Value{}, err
	}
	return parsed, nil
}
