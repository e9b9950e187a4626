package nuke

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"strings"
	"testing"
	"time"
)

// fakeNuke listens on a loopback port and serves one connection at a
// time the way the add-on does: read the request frame, write the reply,
// close. Received request frames are delivered on the returned channel.
func fakeNuke(t *testing.T, reply []byte) (string, <-chan []byte) {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("net.Listen() error = %v", err)
	}
	t.Cleanup(func() { ln.Close() })

	requests := make(chan []byte, 4)
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			buf := make([]byte, 64*1024)
			n, _ := conn.Read(buf)
			requests <- buf[:n]
			if len(reply) > 0 {
				conn.Write(reply)
			}
			conn.Close()
		}
	}()
	return ln.Addr().String(), requests
}

func TestSendSuccess(t *testing.T) {
	reply := []byte(`{"success": true, "node": {"name": "BlurNode1", "type": "Blur"}}`)
	addr, requests := fakeNuke(t, reply)

	c := NewClient(addr, time.Second, time.Second)
	raw, err := c.Send(context.Background(), Message{
		Type: "createNode",
		Args: map[string]any{"nodeType": "Blur", "name": "BlurNode1"},
	})
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if string(raw) != string(reply) {
		t.Fatalf("Send() = %q, want %q", raw, reply)
	}

	select {
	case frame := <-requests:
		var msg Message
		if err := json.Unmarshal(frame, &msg); err != nil {
			t.Fatalf("request frame not JSON: %v (raw %q)", err, frame)
		}
		if msg.Type != "createNode" {
			t.Fatalf("frame type = %q, want %q", msg.Type, "createNode")
		}
		if msg.Args["nodeType"] != "Blur" {
			t.Fatalf("frame args = %v, want nodeType Blur", msg.Args)
		}
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for request frame")
	}
}

func TestSendConnectionRefused(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("net.Listen() error = %v", err)
	}
	addr := ln.Addr().String()
	ln.Close()

	c := NewClient(addr, time.Second, time.Second)

	type result struct {
		raw []byte
		err error
	}
	done := make(chan result, 1)
	go func() {
		raw, err := c.Send(context.Background(), Message{Type: "listNodes", Args: map[string]any{}})
		done <- result{raw, err}
	}()

	select {
	case r := <-done:
		var te *TransportError
		if !errors.As(r.err, &te) {
			t.Fatalf("Send() error = %v, want *TransportError", r.err)
		}
		if te.Op != "connecting to" {
			t.Fatalf("TransportError.Op = %q, want %q", te.Op, "connecting to")
		}
		if !strings.Contains(te.Error(), addr) {
			t.Fatalf("TransportError = %q, want address %q", te.Error(), addr)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Send() did not resolve within bounded time")
	}
}

func TestSendGarbageReply(t *testing.T) {
	garbage := []byte("Traceback (most recent call last):\n  oops")
	addr, _ := fakeNuke(t, garbage)

	c := NewClient(addr, time.Second, time.Second)
	_, err := c.Send(context.Background(), Message{Type: "getNode", Args: map[string]any{"nodeName": "Blur1"}})

	var pe *ProtocolError
	if !errors.As(err, &pe) {
		t.Fatalf("Send() error = %v, want *ProtocolError", err)
	}
	if string(pe.Raw) != string(garbage) {
		t.Fatalf("ProtocolError.Raw = %q, want %q", pe.Raw, garbage)
	}
	if !strings.Contains(pe.Error(), "oops") {
		t.Fatalf("ProtocolError = %q, want raw bytes in message", pe.Error())
	}
}

func TestSendEmptyReply(t *testing.T) {
	addr, _ := fakeNuke(t, nil)

	c := NewClient(addr, time.Second, time.Second)
	_, err := c.Send(context.Background(), Message{Type: "listNodes", Args: map[string]any{}})

	var pe *ProtocolError
	if !errors.As(err, &pe) {
		t.Fatalf("Send() error = %v, want *ProtocolError", err)
	}
	if len(pe.Raw) != 0 {
		t.Fatalf("ProtocolError.Raw = %q, want empty", pe.Raw)
	}
}

func TestSendReplyTimeout(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("net.Listen() error = %v", err)
	}
	defer ln.Close()

	// Listener that accepts, reads the request, and never replies.
	eof := make(chan error, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		buf := make([]byte, 64*1024)
		conn.Read(buf)
		// The client abandons the call on deadline expiry and must
		// close its side; observe the EOF.
		_, err = conn.Read(buf)
		eof <- err
	}()

	c := NewClient(ln.Addr().String(), time.Second, 100*time.Millisecond)

	done := make(chan error, 1)
	go func() {
		_, err := c.Send(context.Background(), Message{Type: "listNodes", Args: map[string]any{}})
		done <- err
	}()

	select {
	case err := <-done:
		var te *TransportError
		if !errors.As(err, &te) {
			t.Fatalf("Send() error = %v, want *TransportError", err)
		}
		if te.Op != "reading reply from" {
			t.Fatalf("TransportError.Op = %q, want %q", te.Op, "reading reply from")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Send() did not resolve within bounded time")
	}

	select {
	case err := <-eof:
		if err == nil {
			t.Fatal("listener second read = nil, want EOF after client close")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("client did not close its connection")
	}
}

func TestSendContextDeadlineBoundsReply(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("net.Listen() error = %v", err)
	}
	defer ln.Close()

	hold := make(chan struct{})
	defer close(hold)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		buf := make([]byte, 1024)
		conn.Read(buf)
		<-hold // keep the connection open past the client's deadline
	}()

	// Unbounded reply timeout; only the context carries a deadline.
	c := NewClient(ln.Addr().String(), time.Second, 0)
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		_, err := c.Send(ctx, Message{Type: "listNodes", Args: map[string]any{}})
		done <- err
	}()

	select {
	case err := <-done:
		var te *TransportError
		if !errors.As(err, &te) {
			t.Fatalf("Send() error = %v, want *TransportError", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Send() did not resolve within bounded time")
	}
}
