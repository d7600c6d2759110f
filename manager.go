// Package mcp is the Model Context Protocol client subsystem: a Manager
// connects to a set of configured tool-provider servers over stdio or
// streamable HTTP, negotiates the MCP handshake with each, and exposes
// their combined tool catalog to a host so it can dispatch tool calls
// back to whichever session owns the tool.
package mcp

import (
	"context"
	"io"
	"log"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/outpostai/mcpcore/config"
)

// moduleVersion is reported as clientInfo.version during every
// handshake.
const moduleVersion = "0.1.0"

// perServerConnectDeadline bounds how long Manager.Load waits on any one
// server before giving up on it and moving on (spec §4.5).
const perServerConnectDeadline = 30 * time.Second

// Tool pairs a discovered ToolInfo with the session that owns it, so a
// host can route a call_tool back to the right server.
type Tool struct {
	Session *ServerSession
	Info    ToolInfo
}

// Manager owns the set of server sessions that connected successfully.
// A server that failed to connect or exceeded the startup deadline is
// simply absent; Manager never retries or reconnects automatically.
type Manager struct {
	sessions []*ServerSession
}

// Load reads a configuration source and connects every server it names,
// concurrently and independently. A missing or malformed source is not a
// fatal error: Load logs it and returns an empty Manager, matching a
// host's expectation that the MCP subsystem degrades gracefully rather
// than blocking startup.
func Load(ctx context.Context, r io.Reader) *Manager {
	cfg, err := config.Parse(r)
	if err != nil {
		log.Printf("mcp: config did not parse, starting with no servers: %v", err)
		return &Manager{}
	}
	return load(ctx, cfg)
}

// LoadEmpty returns a Manager with no servers, for hosts that run with
// MCP support configured off.
func LoadEmpty() *Manager {
	return &Manager{}
}

func load(ctx context.Context, cfg config.Config) *Manager {
	names := cfg.ServerNames()
	sessions := make([]*ServerSession, len(names))

	var mu sync.Mutex
	var connected, failed []string

	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		i, name := i, name
		serverCfg := cfg.Servers[name]
		g.Go(func() error {
			deadlineCtx, cancel := context.WithTimeout(gctx, perServerConnectDeadline)
			defer cancel()

			session, err := connectServerSession(deadlineCtx, name, serverCfg, cfg.DefaultProtocolVersion)
			if err != nil {
				if deadlineCtx.Err() != nil {
					log.Printf("mcp: server %q did not connect within %s, skipping: %v", name, perServerConnectDeadline, err)
				} else {
					log.Printf("mcp: server %q failed to connect, skipping: %v", name, err)
				}
				mu.Lock()
				failed = append(failed, name)
				mu.Unlock()
				return nil
			}
			sessions[i] = session
			mu.Lock()
			connected = append(connected, name)
			mu.Unlock()
			return nil
		})
	}
	// errgroup.Group.Wait only ever returns an error if one of the Go
	// funcs above returned one; they never do, since a per-server
	// failure is contained rather than propagated.
	_ = g.Wait()

	live := make([]*ServerSession, 0, len(sessions))
	for _, s := range sessions {
		if s != nil {
			live = append(live, s)
		}
	}

	if len(connected) > 0 || len(failed) > 0 {
		log.Printf("mcp: connected %d server(s) (%s), %d failed (%s)",
			len(connected), strings.Join(connected, ", "),
			len(failed), strings.Join(failed, ", "))
	}

	return &Manager{sessions: live}
}

// Sessions returns the connected server sessions in the order they were
// resolved from the configuration's server map.
func (m *Manager) Sessions() []*ServerSession {
	return m.sessions
}

// Session returns the connected session with the given name, or nil if
// no such server connected.
func (m *Manager) Session(name string) *ServerSession {
	for _, s := range m.sessions {
		if s.Name() == name {
			return s
		}
	}
	return nil
}

// AllTools returns every discovered tool across every connected server,
// in (session order, tool order) — the catalog a host hands to a model
// as the available tool list.
func (m *Manager) AllTools() []Tool {
	var all []Tool
	for _, s := range m.sessions {
		for _, info := range s.Tools() {
			all = append(all, Tool{Session: s, Info: info})
		}
	}
	return all
}

// CallTool dispatches a call to the connected session named serverName.
// The tool name is passed through as-is; it is not checked against that
// session's tool catalog.
func (m *Manager) CallTool(ctx context.Context, serverName, toolName string, arguments map[string]interface{}) (string, error) {
	session := m.Session(serverName)
	if session == nil {
		return "", newError(ErrConfig, serverName, errUnknownServer(serverName))
	}
	return session.CallTool(ctx, toolName, arguments)
}

// Close shuts down every connected session's transport.
func (m *Manager) Close() error {
	var firstErr error
	for _, s := range m.sessions {
		if err := s.transport.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func errUnknownServer(name string) error {
	return &unknownServerError{name: name}
}

type unknownServerError struct{ name string }

func (e *unknownServerError) Error() string {
	return "no connected server named " + e.name
}
