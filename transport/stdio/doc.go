/*
Package stdio implements the MCP transport that drives a tool provider
as a child process, exchanging newline-delimited JSON-RPC frames over its
stdin and stdout.

A Transport spawns the configured command once, at construction, and keeps
it running for the lifetime of the session. Every Call acquires an
internal mutex that spans the full write-then-read cycle: the request is
written to stdin, then Call blocks on the frames decoded by the
transport's single background stdout reader until a response carrying a
matching id (or an id-less result or error) arrives, the context is
cancelled, or the configured timeout elapses. This keeps exactly one request in flight at a time and
guarantees a caller never observes a response meant for a different
call.

Lines that don't parse as a JSON-RPC response — blank lines, malformed
JSON, or a request/notification the child sends unprompted — are skipped
rather than treated as fatal, since this client never answers
server-initiated requests. Stderr is redirected to /dev/null: any
logging the child does on stderr is its own concern, not the client's.

Close closes stdin, giving the child a chance to exit on EOF, and falls
back to killing the process if it hasn't exited within a few seconds.
*/
package stdio
