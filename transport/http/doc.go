/*
Package http implements the MCP streamable-HTTP transport: every JSON-RPC
request or notification is sent as its own POST to a fixed endpoint, with
Content-Type: application/json and any statically configured headers
attached.

Responses are parsed tolerantly. A body that looks like a JSON-RPC
envelope (it has a top-level "result" or "error" key) is decoded as such;
any other JSON value is treated as the result directly, since some
streamable-HTTP servers skip the envelope on success. A non-2xx status is
always a transport failure, carrying the status code and a truncated copy
of the body.

Unlike the stdio transport, Transport holds no persistent connection and
needs no call-serializing mutex: the underlying net/http.Client is already
safe for concurrent use, and each request carries its own id.
*/
package http
