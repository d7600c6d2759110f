/*
Package types contains the MCP protocol type definitions shared across the
jsonrpc, transport and client packages: the tool catalog, capability
negotiation structures, and the content block variants a server can
attach to a tools/call result.

This module emits exactly four methods — initialize, notifications/
initialized, tools/list and tools/call — so types that only exist to
support resources/list, resources/read, prompts/list, prompts/get, or any
request a server sends back to the client (sampling, elicitation, roots,
completion) are intentionally absent. A tools/call result's content array
is decoded only far enough to pull out its text blocks (see
CallToolResult.GetTextContent); non-text content variants a server embeds
are never unmarshaled into a Go type.
*/
package types
