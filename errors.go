package mcp

import "fmt"

// ErrorKind classifies an Error by where in the MCP lifecycle it
// originated, so a host can decide how to react without string-matching
// messages.
type ErrorKind string

const (
	// ErrConfig covers an unknown transport kind, a missing required
	// field, or a configuration source that failed to parse.
	ErrConfig ErrorKind = "config"
	// ErrTransportInit covers a failed child spawn or HTTP client build.
	ErrTransportInit ErrorKind = "transport_init"
	// ErrHandshake covers a failed initialize call or a protocol
	// negotiation that could not proceed.
	ErrHandshake ErrorKind = "handshake"
	// ErrTimeout covers a per-request or startup deadline elapsing.
	ErrTimeout ErrorKind = "timeout"
	// ErrConnectionClosed covers a child EOF or an HTTP transport failure
	// partway through a call; the session is considered dead afterward.
	ErrConnectionClosed ErrorKind = "connection_closed"
	// ErrRPC covers a server returning a JSON-RPC error object.
	ErrRPC ErrorKind = "rpc_error"
	// ErrTool covers result.isError == true on a tools/call response.
	ErrTool ErrorKind = "tool_error"
	// ErrProtocolViolation covers an unparseable response or a
	// tools/list result missing required fields.
	ErrProtocolViolation ErrorKind = "protocol_violation"
)

// Error wraps a lifecycle failure with the kind of failure and the name
// of the server it happened on, so callers can log or branch on Kind
// without parsing Error's message.
type Error struct {
	Kind   ErrorKind
	Server string
	Err    error
}

func (e *Error) Error() string {
	if e.Server == "" {
		return fmt.Sprintf("mcp: %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("mcp: %s[%s]: %v", e.Kind, e.Server, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind ErrorKind, server string, err error) *Error {
	return &Error{Kind: kind, Server: server, Err: err}
}
