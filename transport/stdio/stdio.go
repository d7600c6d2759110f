// Package stdio implements the MCP transport for a child process speaking
// newline-delimited JSON-RPC over its stdin/stdout.
package stdio

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"sync/atomic"
	"time"

	"github.com/outpostai/mcpcore/jsonrpc"
	"github.com/outpostai/mcpcore/transport"
)

// frame is one decoded line off the child's stdout, paired with the
// decode error (if any) that line produced.
type frame struct {
	resp *jsonrpc.Response
	err  error
}

// Transport owns a spawned child process and speaks one newline-delimited
// JSON value per line over its stdin/stdout. Stderr is discarded: the
// spec leaves server-side diagnostics out of scope for the client core.
//
// A single background goroutine started in New owns the stdout scanner
// for the life of the transport and is the only thing that ever calls
// Scan. It pushes every decoded frame onto frames, where Call consumes
// them under mu. This keeps the scanner's reads inside the same
// happens-before chain as the mutex: Call never spawns its own reader, so
// there is never more than one goroutine touching the scanner, even when
// a Call gives up on ctx cancellation or its own timeout before a
// response arrives.
type Transport struct {
	cmd          *exec.Cmd
	stdin        io.WriteCloser
	stdoutCloser io.Closer

	frames chan frame

	// mu spans the full write-then-read cycle of one Call so that a
	// concurrent Call on the same Transport can never consume the
	// response meant for another.
	mu sync.Mutex

	nextID  int64
	timeout time.Duration

	closed int32
}

// Config configures a child process transport.
type Config struct {
	Command string
	Args    []string
	Env     map[string]string
	// Timeout bounds each Call; zero uses the default 120s.
	Timeout time.Duration
}

const defaultTimeout = 120 * time.Second

const maxLineBytes = 16 * 1024 * 1024

// New spawns the configured command and returns a ready Transport. Env is
// merged on top of the parent process's environment, matching how a
// shell would launch the same command. Stdin and stdout are piped;
// stderr is redirected to /dev/null.
func New(cfg Config) (*Transport, error) {
	if cfg.Command == "" {
		return nil, fmt.Errorf("mcp: stdio transport requires a command")
	}

	cmd := exec.Command(cfg.Command, cfg.Args...)
	cmd.Env = os.Environ()
	for k, v := range cfg.Env {
		cmd.Env = append(cmd.Env, k+"="+v)
	}

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("mcp: stdin pipe: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		stdin.Close()
		return nil, fmt.Errorf("mcp: stdout pipe: %w", err)
	}
	if devnull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0); err == nil {
		cmd.Stderr = devnull
	}

	if err := cmd.Start(); err != nil {
		stdin.Close()
		stdout.Close()
		return nil, fmt.Errorf("mcp: spawn %q: %w", cfg.Command, err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	t := &Transport{
		cmd:          cmd,
		stdin:        stdin,
		stdoutCloser: stdout,
		frames:       make(chan frame, 1),
		timeout:      timeout,
	}
	go t.readLoop(stdout)

	return t, nil
}

// readLoop is the transport's sole reader of stdout. It runs for the life
// of the transport, decoding one line at a time and handing matched and
// unmatched frames alike to Call over frames; Call discards anything that
// isn't the response it is waiting for. This is the only goroutine that
// ever calls scanner.Scan, so Call never needs to race a throwaway reader
// against its own ctx.Done or timeout branch.
func (t *Transport) readLoop(stdout io.Reader) {
	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		resp, ok, err := jsonrpc.DecodeResponse(line)
		if err != nil || !ok {
			// Malformed JSON or an unsolicited request/notification: drop
			// it, there is no id a pending Call could be waiting on.
			continue
		}
		t.frames <- frame{resp: resp}
	}

	var err error
	if scanErr := scanner.Err(); scanErr != nil {
		err = fmt.Errorf("mcp: read response: %w", scanErr)
	} else {
		err = transport.ErrConnectionClosed
	}
	for {
		t.frames <- frame{err: err}
	}
}

// Call sends a JSON-RPC request and waits for its response under the
// transport's write-read mutex, skipping any unsolicited notification or
// mismatched-id frame the child emits in between.
func (t *Transport) Call(ctx context.Context, method string, params interface{}, v interface{}) error {
	if atomic.LoadInt32(&t.closed) != 0 {
		return transport.ErrClosed
	}

	id := atomic.AddInt64(&t.nextID, 1)
	req, err := jsonrpc.EncodeRequest(id, method, params)
	if err != nil {
		return fmt.Errorf("mcp: encode request: %w", err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if atomic.LoadInt32(&t.closed) != 0 {
		return transport.ErrClosed
	}

	if _, err := t.stdin.Write(append(req, '\n')); err != nil {
		return fmt.Errorf("mcp: write request: %w", err)
	}

	deadline := time.NewTimer(t.timeout)
	defer deadline.Stop()

	for {
		select {
		case f := <-t.frames:
			if f.err != nil {
				return f.err
			}
			if f.resp.ID != nil && *f.resp.ID != id {
				// Stale or out-of-order frame from a previous, already
				// abandoned Call; keep waiting for ours.
				continue
			}
			if f.resp.Error != nil {
				return f.resp.Error
			}
			return f.resp.Into(v)
		case <-ctx.Done():
			return ctx.Err()
		case <-deadline.C:
			return transport.ErrTimeout
		}
	}
}

// Notify sends a JSON-RPC notification; no response is read.
func (t *Transport) Notify(ctx context.Context, method string, params interface{}) error {
	if atomic.LoadInt32(&t.closed) != 0 {
		return transport.ErrClosed
	}

	note, err := jsonrpc.EncodeNotification(method, params)
	if err != nil {
		return fmt.Errorf("mcp: encode notification: %w", err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if atomic.LoadInt32(&t.closed) != 0 {
		return transport.ErrClosed
	}
	if _, err := t.stdin.Write(append(note, '\n')); err != nil {
		return fmt.Errorf("mcp: write notification: %w", err)
	}
	return nil
}

// Close closes stdin, sending EOF to the child, then waits briefly for it
// to exit before force-killing as a backstop.
func (t *Transport) Close() error {
	if !atomic.CompareAndSwapInt32(&t.closed, 0, 1) {
		return nil
	}

	t.mu.Lock()
	stdinErr := t.stdin.Close()
	t.mu.Unlock()

	if t.cmd == nil || t.cmd.Process == nil {
		return stdinErr
	}

	done := make(chan error, 1)
	go func() { done <- t.cmd.Wait() }()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.cmd.Process.Kill()
		<-done
	}

	return stdinErr
}
