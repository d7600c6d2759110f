// Package client implements the low-level MCP protocol exchange for a
// single connected server: the initialize handshake, tool discovery and
// tool invocation, built on top of one transport.Transport. It emits
// exactly four methods — initialize, notifications/initialized,
// tools/list, tools/call — and no others.
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/outpostai/mcpcore/transport"
	"github.com/outpostai/mcpcore/types"
)

// Client drives the MCP protocol over one already-constructed transport.
// It knows nothing about how that transport was built (stdio vs HTTP) or
// about the broader set of configured servers — that's Manager's job, one
// layer up.
type Client struct {
	transport    transport.Transport
	config       *Config
	serverInfo   *types.Implementation
	capabilities *types.ServerCapabilities
}

// Config holds the client-identifying fields sent during the handshake.
type Config struct {
	ClientName    string
	ClientVersion string
	Timeout       time.Duration
}

// Option configures a Client.
type Option func(*Config)

// WithClientInfo sets the name and version reported during initialize.
func WithClientInfo(name, version string) Option {
	return func(c *Config) {
		c.ClientName = name
		c.ClientVersion = version
	}
}

// WithTimeout sets the per-request timeout applied when the caller's
// context carries no deadline of its own.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.Timeout = timeout
	}
}

func defaultConfig() *Config {
	return &Config{
		ClientName:    "mcpcore",
		ClientVersion: "0.1.0",
		Timeout:       120 * time.Second,
	}
}

// New wraps t in a protocol Client. t must already be connected (the
// stdio child spawned, or the HTTP endpoint configured).
func New(t transport.Transport, opts ...Option) *Client {
	config := defaultConfig()
	for _, opt := range opts {
		opt(config)
	}
	return &Client{transport: t, config: config}
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.config.Timeout)
}

// Initialize performs the MCP handshake: sends an initialize request
// offering protocolVersion, then a notifications/initialized notification
// once the server has answered. The negotiated protocol version the
// server returned is recorded on the Client along with its capabilities,
// and returned to the caller.
func (c *Client) Initialize(ctx context.Context, protocolVersion string) (string, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	params := struct {
		ProtocolVersion string                   `json:"protocolVersion"`
		Capabilities    types.ClientCapabilities `json:"capabilities"`
		ClientInfo      types.Implementation     `json:"clientInfo"`
	}{
		ProtocolVersion: protocolVersion,
		ClientInfo: types.Implementation{
			Name:    c.config.ClientName,
			Version: c.config.ClientVersion,
		},
	}

	var result types.InitializeResult
	if err := c.transport.Call(ctx, "initialize", params, &result); err != nil {
		return "", fmt.Errorf("mcp: initialize: %w", err)
	}

	c.serverInfo = &result.ServerInfo
	c.capabilities = &result.Capabilities

	negotiated := result.ProtocolVersion
	if negotiated == "" {
		negotiated = protocolVersion
	}

	if err := c.transport.Notify(ctx, "notifications/initialized", nil); err != nil {
		return "", fmt.Errorf("mcp: notifications/initialized: %w", err)
	}

	return negotiated, nil
}

// ServerInfo returns the implementation info the server reported during
// initialize. Nil until Initialize has succeeded.
func (c *Client) ServerInfo() *types.Implementation {
	return c.serverInfo
}

// Capabilities returns the capability set the server advertised during
// initialize. Nil until Initialize has succeeded.
func (c *Client) Capabilities() *types.ServerCapabilities {
	return c.capabilities
}

// ListTools fetches the server's tool catalog. It is sent unconditionally
// as the third handshake request, regardless of whether the server
// advertised tools support — a server with no tools is expected to reply
// with an empty list rather than have its capability checked client-side.
func (c *Client) ListTools(ctx context.Context) ([]types.Tool, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	var result types.ListToolsResult
	if err := c.transport.Call(ctx, "tools/list", struct{}{}, &result); err != nil {
		return nil, fmt.Errorf("mcp: tools/list: %w", err)
	}
	return result.Tools, nil
}

// CallTool invokes a named tool with the given arguments.
func (c *Client) CallTool(ctx context.Context, name string, arguments map[string]interface{}) (*types.CallToolResult, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	params := struct {
		Name      string                 `json:"name"`
		Arguments map[string]interface{} `json:"arguments,omitempty"`
	}{
		Name:      name,
		Arguments: arguments,
	}

	var result types.CallToolResult
	if err := c.transport.Call(ctx, "tools/call", params, &result); err != nil {
		return nil, fmt.Errorf("mcp: tools/call %s: %w", name, err)
	}
	return &result, nil
}

// Close releases the underlying transport.
func (c *Client) Close() error {
	return c.transport.Close()
}
