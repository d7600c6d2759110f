// Package transport declares the byte-level conduit a server session
// drives: either a child-process stdio pipe pair (package stdio) or a
// pooled HTTP client against a streamable-http endpoint (package http).
package transport

import (
	"context"
	"errors"
)

// Sentinel errors a Transport implementation returns so callers can
// classify failures without depending on transport-specific types.
var (
	// ErrClosed is returned by Call/Notify once Close has run.
	ErrClosed = errors.New("mcp: transport is closed")
	// ErrTimeout is returned when a request's deadline elapses before a
	// matching response arrives.
	ErrTimeout = errors.New("mcp: request timed out")
	// ErrConnectionClosed is returned when the peer goes away mid-request:
	// EOF on a child's stdout, or a transport-level HTTP failure.
	ErrConnectionClosed = errors.New("mcp: connection closed")
)

// Transport is the minimal surface a server session drives. One Transport
// serves exactly one configured server. Implementations must serialize the
// full write-then-read cycle of a single Call so that a second, concurrent
// Call on the same Transport cannot observe the first call's response (see
// each implementation's own locking for how it upholds this).
type Transport interface {
	// Call sends a JSON-RPC request and, on success, decodes the response's
	// result into v (no-op if v is nil). It blocks until a matching
	// response arrives, ctx is cancelled, or the request deadline elapses.
	Call(ctx context.Context, method string, params interface{}, v interface{}) error

	// Notify sends a JSON-RPC notification. No response is awaited.
	Notify(ctx context.Context, method string, params interface{}) error

	// Close releases the transport's owned resources (child process,
	// pooled HTTP client). It is safe to call more than once.
	Close() error
}
