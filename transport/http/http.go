// Package http implements the MCP streamable-HTTP transport: one POST per
// JSON-RPC frame against a fixed endpoint.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/outpostai/mcpcore/jsonrpc"
	"github.com/outpostai/mcpcore/transport"
)

const defaultTimeout = 120 * time.Second

// maxErrorBodyBytes bounds how much of a non-2xx response body is kept in
// an error message.
const maxErrorBodyBytes = 2048

// Config configures a streamable-HTTP transport.
type Config struct {
	// Endpoint is the full URL every request is POSTed to.
	Endpoint string
	// Headers are applied to every outgoing request, in addition to
	// Content-Type: application/json, which the transport always sets.
	Headers map[string]string
	// Timeout bounds each request's round trip; zero uses the default 120s.
	Timeout time.Duration
}

// Transport POSTs one JSON-RPC frame per call to a fixed endpoint. Unlike
// the stdio transport it holds no persistent connection, so no mutex is
// needed to serialize reads and writes — net/http.Client already supports
// safe concurrent use. Call still assigns each request a distinct id from
// a shared counter; the id carried by a response body is not checked.
type Transport struct {
	cfg    Config
	client *http.Client
	nextID int64
}

// New returns a ready Transport for the given endpoint.
func New(cfg Config) (*Transport, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("mcp: http transport requires an endpoint")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Transport{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
	}, nil
}

func (t *Transport) post(ctx context.Context, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("mcp: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range t.cfg.Headers {
		req.Header.Set(k, v)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		var netErr interface{ Timeout() bool }
		if ctx.Err() != nil || (errors.As(err, &netErr) && netErr.Timeout()) {
			return nil, transport.ErrTimeout
		}
		return nil, transport.ErrConnectionClosed
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return nil, fmt.Errorf("mcp: read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet := respBody
		if len(snippet) > maxErrorBodyBytes {
			snippet = snippet[:maxErrorBodyBytes]
		}
		return nil, fmt.Errorf("mcp: server returned status %d: %s: %w", resp.StatusCode, snippet, transport.ErrConnectionClosed)
	}

	return respBody, nil
}

// Call POSTs a JSON-RPC request and decodes its response. The body is
// parsed tolerantly: a proper JSON-RPC envelope honors result/error; any
// other JSON value is treated as if it were the "result" value directly,
// matching servers that skip the envelope on streamable-HTTP responses.
func (t *Transport) Call(ctx context.Context, method string, params interface{}, v interface{}) error {
	id := atomic.AddInt64(&t.nextID, 1)
	reqBody, err := jsonrpc.EncodeRequest(id, method, params)
	if err != nil {
		return fmt.Errorf("mcp: encode request: %w", err)
	}

	respBody, err := t.post(ctx, reqBody)
	if err != nil {
		return err
	}

	resp, ok, err := jsonrpc.DecodeResponse(respBody)
	if err != nil {
		return fmt.Errorf("mcp: decode response: %w", err)
	}
	if !ok {
		if v == nil || len(respBody) == 0 {
			return nil
		}
		return json.Unmarshal(respBody, v)
	}
	if resp.Error != nil {
		return resp.Error
	}
	return resp.Into(v)
}

// Notify POSTs a JSON-RPC notification. Any response body is discarded.
func (t *Transport) Notify(ctx context.Context, method string, params interface{}) error {
	body, err := jsonrpc.EncodeNotification(method, params)
	if err != nil {
		return fmt.Errorf("mcp: encode notification: %w", err)
	}
	_, err = t.post(ctx, body)
	return err
}

// Close is a no-op: the transport holds no persistent connection beyond
// the pooled http.Client's idle connections, which time out on their own.
func (t *Transport) Close() error {
	return nil
}
