// Package tools binds the command catalog to the transport: one shared
// validate-default-send-normalize path for every command, with each
// outcome expressed as a single MCP result envelope.
package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/oklog/ulid/v2"

	"github.com/vfxforge/nukemcp/internal/command"
	"github.com/vfxforge/nukemcp/internal/nuke"
)

// Dispatcher runs invocations through the registry and the transport.
// It holds no mutable state; concurrent invocations share nothing but
// the immutable catalog and the send function.
type Dispatcher struct {
	reg *command.Registry
	log *slog.Logger

	// send is swappable so tests never open sockets.
	send func(ctx context.Context, msg nuke.Message) ([]byte, error)
}

// NewDispatcher binds the registry to a transport client.
func NewDispatcher(reg *command.Registry, client *nuke.Client, log *slog.Logger) *Dispatcher {
	return &Dispatcher{reg: reg, log: log, send: client.Send}
}

// Registry returns the bound command registry.
func (d *Dispatcher) Registry() *command.Registry { return d.reg }

// Invoke validates args against the named command, applies its declared
// defaults, sends one wire request, and checks the reply for the add-on's
// error convention. On success it returns the raw reply bytes unmodified.
// Failures are typed: command.ErrInvalidArgs before any network activity,
// *nuke.TransportError / *nuke.ProtocolError from the exchange, and
// *nuke.RemoteError when the add-on rejected the operation.
func (d *Dispatcher) Invoke(ctx context.Context, name string, args map[string]any) ([]byte, error) {
	desc, ok := d.reg.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: unknown command %q", command.ErrInvalidArgs, name)
	}
	if args == nil {
		args = map[string]any{}
	}
	if err := desc.Check(args); err != nil {
		return nil, err
	}

	raw, err := d.send(ctx, nuke.Message{Type: name, Args: desc.Defaulted(args)})
	if err != nil {
		return nil, err
	}
	if re := nuke.DecodeRemoteError(raw); re != nil {
		return nil, re
	}
	return raw, nil
}

// Call wraps Invoke into exactly one result envelope. It never returns a
// Go error; every failure kind becomes a text block with IsError set.
func (d *Dispatcher) Call(ctx context.Context, name string, args map[string]any) *mcp.CallToolResult {
	id := newInvocationID()
	log := d.log.With("id", id, "command", name)
	log.Debug("dispatching")

	start := time.Now()
	raw, err := d.Invoke(ctx, name, args)
	if err != nil {
		log.Warn("invocation failed", "err", err, "duration", time.Since(start))
		return mcp.NewToolResultError(Describe(err))
	}

	log.Info("invocation succeeded", "duration", time.Since(start), "reply_bytes", len(raw))
	return mcp.NewToolResultText(string(raw))
}

// Describe renders an invocation error for display, with a distinct
// prefix per kind so a caller can tell a malformed request, an
// unreachable bridge, a garbled reply, and a Nuke-side rejection apart.
func Describe(err error) string {
	var re *nuke.RemoteError
	var te *nuke.TransportError
	var pe *nuke.ProtocolError
	switch {
	case errors.As(err, &re):
		msg := "Nuke error: " + re.Message
		if re.Traceback != "" {
			msg += "\n" + re.Traceback
		}
		return msg
	case errors.As(err, &te):
		return "cannot reach Nuke: " + te.Error()
	case errors.As(err, &pe):
		return "invalid reply from Nuke: " + pe.Error()
	default:
		return err.Error()
	}
}

func newInvocationID() string {
	t := time.Now()
	entropy := ulid.Monotonic(rand.New(rand.NewSource(t.UnixNano())), 0)
	return ulid.MustNew(ulid.Timestamp(t), entropy).String()
}
