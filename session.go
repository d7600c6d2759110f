package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/outpostai/mcpcore/client"
	"github.com/outpostai/mcpcore/config"
	"github.com/outpostai/mcpcore/jsonrpc"
	"github.com/outpostai/mcpcore/transport"
	httptransport "github.com/outpostai/mcpcore/transport/http"
	"github.com/outpostai/mcpcore/transport/stdio"
	"github.com/outpostai/mcpcore/types"
)

// defaultInputSchema is substituted for a tool whose inputSchema was
// absent on the wire (spec §3, ToolInfo).
var defaultInputSchema = json.RawMessage(`{"type":"object","properties":{}}`)

// ToolInfo describes one tool discovered on a server, tagged with the
// server it came from so a host can route a later call_tool back to the
// right session.
type ToolInfo struct {
	ServerName  string
	Name        string
	Description string
	InputSchema json.RawMessage
}

// ServerSession is one live connection to a configured MCP server. It is
// created once by Manager.Load and lives until process exit; it never
// re-initializes.
type ServerSession struct {
	name               string
	requestedProtocol  string
	negotiatedProtocol string
	transport          transport.Transport
	client             *client.Client
	tools              []ToolInfo
}

// Name returns the session's configured server name.
func (s *ServerSession) Name() string { return s.name }

// RequestedProtocol returns the protocol version offered during connect.
func (s *ServerSession) RequestedProtocol() string { return s.requestedProtocol }

// NegotiatedProtocol returns the protocol version the server actually
// returned from initialize (or the requested version, if the server
// omitted protocolVersion in its reply).
func (s *ServerSession) NegotiatedProtocol() string { return s.negotiatedProtocol }

// Tools returns the tool catalog snapshot captured at connect time. The
// catalog never changes for the lifetime of the session (spec §4.5: no
// dynamic re-discovery).
func (s *ServerSession) Tools() []ToolInfo {
	return s.tools
}

// connectServerSession performs the full connect sequence (§4.4): resolve
// the protocol version, build the transport, run the initialize handshake,
// send notifications/initialized, then discover tools. Any failure
// discards the session; the caller is expected to log and move on.
func connectServerSession(ctx context.Context, name string, cfg config.ServerConfig, managerDefaultProtocol string) (*ServerSession, error) {
	requested := cfg.ProtocolVersion
	if requested == "" {
		requested = managerDefaultProtocol
	}
	if requested == "" {
		requested = config.DefaultProtocolVersion
	}

	kind, err := cfg.Kind()
	if err != nil {
		return nil, newError(ErrConfig, name, err)
	}

	timeout := time.Duration(cfg.Timeout()) * time.Second

	var t transport.Transport
	switch kind {
	case config.TransportStdio:
		if strings.TrimSpace(cfg.Command) == "" {
			return nil, newError(ErrConfig, name, fmt.Errorf("command is required for stdio transport"))
		}
		st, err := stdio.New(stdio.Config{
			Command: cfg.Command,
			Args:    cfg.Args,
			Env:     cfg.Env,
			Timeout: timeout,
		})
		if err != nil {
			return nil, newError(ErrTransportInit, name, err)
		}
		t = st

	case config.TransportStreamableHTTP:
		if strings.TrimSpace(cfg.Endpoint) == "" {
			return nil, newError(ErrConfig, name, fmt.Errorf("endpoint is required for streamable_http transport"))
		}
		ht, err := httptransport.New(httptransport.Config{
			Endpoint: cfg.Endpoint,
			Headers:  cfg.Headers,
			Timeout:  timeout,
		})
		if err != nil {
			return nil, newError(ErrTransportInit, name, err)
		}
		t = ht

	default:
		return nil, newError(ErrConfig, name, fmt.Errorf("unsupported transport %q", kind))
	}

	c := client.New(t, client.WithClientInfo("mcpcore", moduleVersion), client.WithTimeout(timeout))

	negotiated, err := c.Initialize(ctx, requested)
	if err != nil {
		t.Close()
		return nil, newError(ErrHandshake, name, err)
	}
	if negotiated != requested {
		log.Printf("mcp: server %q negotiated protocol %s (requested %s)", name, negotiated, requested)
	}

	wireTools, err := c.ListTools(ctx)
	if err != nil {
		t.Close()
		return nil, newError(ErrHandshake, name, err)
	}

	tools := make([]ToolInfo, len(wireTools))
	for i, tool := range wireTools {
		var schema json.RawMessage
		if !tool.HasInputSchema() {
			schema = defaultInputSchema
		} else if marshaled, err := json.Marshal(tool.InputSchema); err == nil {
			schema = marshaled
		} else {
			schema = defaultInputSchema
		}
		tools[i] = ToolInfo{
			ServerName:  name,
			Name:        tool.Name,
			Description: tool.Description,
			InputSchema: schema,
		}
	}

	return &ServerSession{
		name:               name,
		requestedProtocol:  requested,
		negotiatedProtocol: negotiated,
		transport:          t,
		client:             c,
		tools:              tools,
	}, nil
}

// CallTool invokes a named tool and renders the result the way a host's
// agent loop expects: plain text. If result.isError is set, the returned
// error wraps the same text (spec §4.4).
func (s *ServerSession) CallTool(ctx context.Context, name string, arguments map[string]interface{}) (string, error) {
	result, err := s.client.CallTool(ctx, name, arguments)
	if err != nil {
		return "", newError(classifyCallError(err), s.name, err)
	}

	text := renderCallToolResult(result)
	if result.IsError {
		return "", newError(ErrTool, s.name, fmt.Errorf("%s", text))
	}
	return text, nil
}

// classifyCallError maps a tools/call failure to the spec §7 kind it
// belongs to. client.CallTool wraps the transport's sentinel errors (and
// the deadline error of its own per-request context) with %w, so
// errors.Is still sees through to them; a *jsonrpc.Error that
// surfaced instead means the server itself rejected the request, and
// anything left over is a response the client couldn't even parse.
func classifyCallError(err error) ErrorKind {
	switch {
	case errors.Is(err, transport.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return ErrTimeout
	case errors.Is(err, transport.ErrConnectionClosed), errors.Is(err, transport.ErrClosed):
		return ErrConnectionClosed
	}
	var rpcErr *jsonrpc.Error
	if errors.As(err, &rpcErr) {
		return ErrRPC
	}
	return ErrProtocolViolation
}

// renderCallToolResult concatenates the text field of each content
// element with "\n" separators; elements lacking a text field contribute
// nothing. When content is absent, the whole result is pretty-printed as
// a fallback (spec §4.4).
func renderCallToolResult(result *types.CallToolResult) string {
	if result.Content == nil {
		pretty, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Sprintf("%+v", result)
		}
		return string(pretty)
	}
	var texts []string
	for _, item := range result.Content {
		if block, ok := item.(map[string]interface{}); ok {
			if text, ok := block["text"].(string); ok {
				texts = append(texts, text)
			}
		}
	}
	return strings.Join(texts, "\n")
}
