// Package nuke speaks the bridge add-on's wire protocol: one JSON request
// per fresh TCP connection, one JSON reply read until the peer closes.
package nuke

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"time"
)

// Message is the single request frame: the command's wire name and its
// argument map. No length prefix, no delimiter; the frame is the whole
// write side of the connection.
type Message struct {
	Type string         `json:"type"`
	Args map[string]any `json:"args"`
}

// Client sends requests to the bridge add-on. One connection per Send;
// the add-on runs inside a single-threaded desktop application, so
// pooling or reuse would buy nothing.
type Client struct {
	addr         string
	dialTimeout  time.Duration
	replyTimeout time.Duration
}

// NewClient creates a client for the fixed add-on endpoint. A zero
// dialTimeout dials without a bound; a zero replyTimeout waits for the
// reply indefinitely, which is the stock policy since renders and
// CopyCat training legitimately run for hours.
func NewClient(addr string, dialTimeout, replyTimeout time.Duration) *Client {
	return &Client{addr: addr, dialTimeout: dialTimeout, replyTimeout: replyTimeout}
}

// Addr returns the configured endpoint.
func (c *Client) Addr() string { return c.addr }

// Send writes one request frame and reads the reply until the add-on
// closes the connection. It returns the raw reply bytes exactly as
// received, or a *TransportError for connection faults and a
// *ProtocolError for replies that do not parse as one JSON value.
// No retry on any path; the connection is closed on every exit.
func (c *Client) Send(ctx context.Context, msg Message) ([]byte, error) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	dialer := net.Dialer{Timeout: c.dialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", c.addr)
	if err != nil {
		return nil, &TransportError{Op: "connecting to", Addr: c.addr, Err: err}
	}
	defer conn.Close()

	if deadline, ok := c.deadline(ctx); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			return nil, &TransportError{Op: "connecting to", Addr: c.addr, Err: err}
		}
	}

	if _, err := conn.Write(payload); err != nil {
		return nil, &TransportError{Op: "sending request to", Addr: c.addr, Err: err}
	}

	raw, err := io.ReadAll(conn)
	if err != nil {
		return nil, &TransportError{Op: "reading reply from", Addr: c.addr, Err: err}
	}

	var probe any
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, &ProtocolError{Raw: raw, Err: err}
	}
	return raw, nil
}

// deadline picks the earlier of the context deadline and the configured
// reply timeout, as an absolute bound on the whole write+read exchange.
func (c *Client) deadline(ctx context.Context) (time.Time, bool) {
	ctxDeadline, hasCtx := ctx.Deadline()
	if c.replyTimeout <= 0 {
		return ctxDeadline, hasCtx
	}
	configured := time.Now().Add(c.replyTimeout)
	if hasCtx && ctxDeadline.Before(configured) {
		return ctxDeadline, true
	}
	return configured, true
}
