// Package config parses the MCP manager's configuration record: the set
// of servers to connect to and how to reach each one.
package config

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
)

// DefaultProtocolVersion is the version requested when neither a server
// entry nor the manager-wide default names one.
const DefaultProtocolVersion = "2025-11-05"

// DefaultRequestTimeoutSeconds is applied to a server when it omits
// request_timeout_secs.
const DefaultRequestTimeoutSeconds = 120

// TransportKind selects how a ServerConfig's session talks to its server.
type TransportKind string

const (
	TransportStdio         TransportKind = "stdio"
	TransportStreamableHTTP TransportKind = "streamable_http"
	// TransportHTTP is an alias for TransportStreamableHTTP accepted on the
	// wire; Kind() normalizes it away.
	TransportHTTP TransportKind = "http"
)

// ServerConfig describes one entry under "mcpServers".
type ServerConfig struct {
	Transport             TransportKind
	ProtocolVersion       string
	RequestTimeoutSeconds int

	// Stdio transport.
	Command string
	Args    []string
	Env     map[string]string

	// HTTP/streamable_http transport.
	Endpoint string
	Headers  map[string]string
}

// Kind normalizes the configured transport string, defaulting to stdio
// and folding the "http" alias into "streamable_http".
func (c ServerConfig) Kind() (TransportKind, error) {
	switch strings.ToLower(strings.TrimSpace(string(c.Transport))) {
	case "", string(TransportStdio):
		return TransportStdio, nil
	case string(TransportStreamableHTTP), string(TransportHTTP):
		return TransportStreamableHTTP, nil
	default:
		return "", fmt.Errorf("mcp: unsupported transport %q", c.Transport)
	}
}

// Timeout returns the configured request timeout, or the package default
// when unset.
func (c ServerConfig) Timeout() int {
	if c.RequestTimeoutSeconds > 0 {
		return c.RequestTimeoutSeconds
	}
	return DefaultRequestTimeoutSeconds
}

// Config is the top-level configuration record: the manager-wide default
// protocol version and the named set of servers to connect to.
type Config struct {
	DefaultProtocolVersion string
	Servers                map[string]ServerConfig
	// names holds the server names sorted lexically, since Go maps have
	// no stable iteration order and the manager's iteration order must be
	// stable per run (spec §3, Manager).
	names []string
}

// ServerNames returns the configured server names in lexical order; the
// order they appeared in the source document is not kept.
func (c Config) ServerNames() []string {
	return c.names
}

// wireServerConfig mirrors the JSON shape of one "mcpServers" entry,
// including the accepted key aliases.
type wireServerConfig struct {
	Transport             string            `json:"transport"`
	ProtocolVersion       string            `json:"protocolVersion"`
	ProtocolVersionSnake  string            `json:"protocol_version"`
	RequestTimeoutSeconds int               `json:"request_timeout_secs"`
	Command               string            `json:"command"`
	Args                  []string          `json:"args"`
	Env                   map[string]string `json:"env"`
	Endpoint              string            `json:"endpoint"`
	URL                   string            `json:"url"`
	Headers               map[string]string `json:"headers"`
}

type wireConfig struct {
	DefaultProtocolVersion      string                       `json:"defaultProtocolVersion"`
	DefaultProtocolVersionSnake string                       `json:"default_protocol_version"`
	Servers                     map[string]wireServerConfig `json:"mcpServers"`
}

// Parse decodes a configuration record from r. A malformed document is
// reported as an error, and so is an empty source (io.EOF); Manager.Load
// treats any Parse error as "start empty".
func Parse(r io.Reader) (Config, error) {
	var wire wireConfig
	dec := json.NewDecoder(r)
	if err := dec.Decode(&wire); err != nil {
		return Config{}, fmt.Errorf("mcp: parse config: %w", err)
	}

	defaultVersion := firstNonEmpty(wire.DefaultProtocolVersion, wire.DefaultProtocolVersionSnake)

	cfg := Config{
		DefaultProtocolVersion: defaultVersion,
		Servers:                make(map[string]ServerConfig, len(wire.Servers)),
	}

	// json.Decoder gives the server map back in unspecified order; sort
	// names lexically so a run's iteration order is at least deterministic.
	for name, entry := range wire.Servers {
		cfg.Servers[name] = ServerConfig{
			Transport:             TransportKind(entry.Transport),
			ProtocolVersion:       firstNonEmpty(entry.ProtocolVersion, entry.ProtocolVersionSnake),
			RequestTimeoutSeconds: entry.RequestTimeoutSeconds,
			Command:               entry.Command,
			Args:                  entry.Args,
			Env:                   entry.Env,
			Endpoint:              firstNonEmpty(entry.Endpoint, entry.URL),
			Headers:               entry.Headers,
		}
		cfg.names = append(cfg.names, name)
	}
	sort.Strings(cfg.names)

	return cfg, nil
}

// ParseString is a convenience wrapper around Parse for callers holding
// the config document as a string rather than a reader.
func ParseString(s string) (Config, error) {
	return Parse(strings.NewReader(s))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

