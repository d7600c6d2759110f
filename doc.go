/*
Package mcp is a Model Context Protocol client subsystem for a host
application: it loads a set of configured tool-provider servers, connects
to each over stdio or streamable HTTP, runs the MCP initialize handshake,
discovers their tools, and dispatches tool calls back to whichever server
owns the tool a model asked for.

# Quick start

	cfg, err := os.Open("mcp-servers.json")
	if err != nil {
		log.Fatal(err)
	}
	defer cfg.Close()

	manager := mcp.Load(context.Background(), cfg)
	defer manager.Close()

	for _, tool := range manager.AllTools() {
		log.Printf("%s/%s: %s", tool.Session.Name(), tool.Info.Name, tool.Info.Description)
	}

	result, err := manager.CallTool(ctx, "filesystem", "read_file", map[string]interface{}{
		"path": "/tmp/notes.txt",
	})

# Package structure

  - mcp (this package): Manager and ServerSession, the orchestration layer
  - config: parses the mcpServers configuration document
  - client: the protocol exchange for a single connected server
  - jsonrpc: request/notification encoding and tolerant response decoding
  - transport/stdio: child-process transport, newline-delimited JSON
  - transport/http: streamable-HTTP transport, one POST per frame
  - types: the MCP wire types shared across the above

# Protocol scope

Every session negotiates protocol version "2025-11-05" by default
(overridable per server or manager-wide) and emits exactly four methods:
initialize, notifications/initialized, tools/list, and tools/call. There
is no resource or prompt catalog support, no server-to-client requests
(sampling, elicitation, roots), and no dynamic tool re-discovery — a
session's tool catalog is fixed at connect time for its whole lifetime.

# Failure containment

Manager.Load never fails outright. A missing or malformed configuration
source leaves the Manager empty. Each configured server gets its own
30-second connect deadline and its own independent failure: one server
timing out or refusing the handshake does not affect any other. Once
connected, a per-request failure (timeout, a JSON-RPC error object, or
result.isError on a tools/call response) is returned to the caller as an
*Error carrying an ErrorKind, so a host can branch on Kind without
string-matching messages.

# Concurrency

Manager.Load connects all configured servers concurrently. A
ServerSession serializes its own requests — the underlying transport
holds one call's full write-then-read cycle under a single lock — so a
session is safe for concurrent CallTool calls from multiple goroutines,
but those calls queue rather than interleave on the wire.
*/
package mcp
