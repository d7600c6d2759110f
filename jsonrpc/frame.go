// Package jsonrpc implements the wire-level JSON-RPC 2.0 frame codec shared
// by the stdio and HTTP transports: encoding of outgoing requests and
// notifications, and tolerant decoding of incoming responses.
package jsonrpc

import (
	"encoding/json"
	"fmt"

	"github.com/creachadair/jrpc2/code"
)

// Version is the JSON-RPC protocol tag this module emits and expects.
const Version = "2.0"

// Error mirrors a JSON-RPC error object. Code follows the jrpc2/code
// conventions for the reserved range but servers are free to return any
// integer, so no validation is performed on it.
type Error struct {
	Code    code.Code       `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("mcp: rpc error %d: %s", int32(e.Code), e.Message)
}

// EncodeRequest renders a JSON-RPC request frame. id is always present;
// params is omitted entirely when nil.
func EncodeRequest(id int64, method string, params interface{}) ([]byte, error) {
	frame := map[string]interface{}{
		"jsonrpc": Version,
		"id":      id,
		"method":  method,
	}
	if params != nil {
		frame["params"] = params
	}
	return json.Marshal(frame)
}

// EncodeNotification renders a JSON-RPC notification frame: no id field.
func EncodeNotification(method string, params interface{}) ([]byte, error) {
	frame := map[string]interface{}{
		"jsonrpc": Version,
		"method":  method,
	}
	if params != nil {
		frame["params"] = params
	}
	return json.Marshal(frame)
}

// Response is a decoded JSON-RPC response. ID is nil when the frame omitted
// an id or carried a non-numeric one; callers that need strict id matching
// treat a nil ID as "unknown, check Result/Error before accepting".
type Response struct {
	ID     *int64
	Result json.RawMessage
	Error  *Error
}

// DecodeResponse parses one JSON value and reports whether it looks like a
// JSON-RPC response: an object carrying a "result" or "error" key. Any other
// valid JSON (a request or notification from the peer) returns ok=false so
// the caller can decide whether to skip it or route it elsewhere.
// Malformed JSON returns an error.
func DecodeResponse(data []byte) (resp *Response, ok bool, err error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		if json.Valid(data) {
			// Valid JSON that is not an object cannot be a response.
			return nil, false, nil
		}
		return nil, false, err
	}

	resultRaw, hasResult := raw["result"]
	errorRaw, hasError := raw["error"]
	if !hasResult && !hasError {
		return nil, false, nil
	}

	resp = &Response{}
	if idRaw, present := raw["id"]; present {
		var idVal float64
		if json.Unmarshal(idRaw, &idVal) == nil {
			id := int64(idVal)
			resp.ID = &id
		}
	}
	if hasResult {
		resp.Result = resultRaw
	}
	if hasError {
		var rpcErr Error
		if err := json.Unmarshal(errorRaw, &rpcErr); err != nil {
			return nil, false, err
		}
		resp.Error = &rpcErr
	}
	return resp, true, nil
}

// Into unmarshals the response's Result into v. It is a no-op when the
// result is absent (nil v or empty Result), matching the tolerance MCP
// servers rely on for empty-object results.
func (r *Response) Into(v interface{}) error {
	if v == nil || len(r.Result) == 0 {
		return nil
	}
	return json.Unmarshal(r.Result, v)
}
