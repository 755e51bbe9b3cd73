package anybar

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPort is returned when a port is outside 0..65535.
	ErrInvalidPort = errors.New("anybar: invalid port")
	// ErrClosed is returned by any call on a handle after a successful Quit.
	ErrClosed = errors.New("anybar: handle closed")
	// ErrUnknownColor is returned for names or values outside the Color set.
	ErrUnknownColor = errors.New("anybar: unknown color")
)

// TransportError reports a failure on the UDP send path. The datagram was not
// handed to the network stack.
type TransportError struct {
	Op   string // "bind" or "send"
	Port uint16
	Err  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("anybar: %s 127.0.0.1:%d: %v", e.Op, e.Port, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
