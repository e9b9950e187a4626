package nuke

import (
	"encoding/json"
	"fmt"
)

// TransportError reports a connection-level fault: the bridge add-on
// could not be reached, the write failed, or the read was cut short.
// Never retried.
type TransportError struct {
	Op   string // "connecting to", "sending request to", "reading reply from"
	Addr string
	Err  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Addr, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ProtocolError reports reply bytes that arrived but did not parse as a
// single JSON value. The raw bytes are always carried for diagnosis.
type ProtocolError struct {
	Raw []byte
	Err error
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("parsing reply: %v (raw: %q)", e.Err, e.Raw)
}

func (e *ProtocolError) Unwrap() error { return e.Err }

// RemoteError reports a command the add-on executed and rejected. The
// message and optional Python traceback come from the reply verbatim.
type RemoteError struct {
	Message   string
	Traceback string
}

func (e *RemoteError) Error() string { return e.Message }

// DecodeRemoteError inspects a parsed reply for the add-on's error
// convention: a JSON object carrying an "error" key. Detection is by key
// presence, not truthiness. Returns nil for non-object replies and
// objects without the key.
func DecodeRemoteError(raw []byte) *RemoteError {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil
	}
	msg, ok := fields["error"]
	if !ok {
		return nil
	}

	re := &RemoteError{}
	var s string
	if err := json.Unmarshal(msg, &s); err == nil {
		re.Message = s
	} else {
		re.Message = string(msg)
	}
	if tb, ok := fields["traceback"]; ok {
		var t string
		if err := json.Unmarshal(tb, &t); err == nil {
			re.Traceback = t
		}
	}
	return re
}
