package anybar

import (
	"errors"
	"fmt"
	"sync"
)

const (
	// DefaultPort is the port AnyBar listens on out of the box.
	DefaultPort = 1738
	// QuitCommand asks AnyBar to terminate.
	QuitCommand = "quit"
	// Host is the only address commands are sent to.
	Host = "127.0.0.1"
)

// Anybar is a handle on one AnyBar instance.
//
// The recorded color is what this handle last sent successfully. It does not
// necessarily match what AnyBar displays if something else talks to the same
// port.
type Anybar struct {
	port uint16
	tr   Transport

	mu       sync.Mutex
	color    Color
	hasColor bool
	closed   bool
}

// New returns a handle for the AnyBar listening on port. Any port in
// 0..65535 is accepted; nothing is sent until the first command.
func New(port int) (*Anybar, error) {
	return NewWithTransport(port, nil)
}

// NewWithTransport is New with a custom Transport. If t is nil, UDPTransport
// is used.
func NewWithTransport(port int, t Transport) (*Anybar, error) {
	if port < 0 || port > 65535 {
		return nil, fmt.Errorf("%w: %d is not between 0 and 65535", ErrInvalidPort, port)
	}
	if t == nil {
		t = UDPTransport{}
	}
	return &Anybar{port: uint16(port), tr: t}, nil
}

// Default returns a handle for DefaultPort.
func Default() *Anybar {
	return &Anybar{port: DefaultPort, tr: UDPTransport{}}
}

// Port returns the UDP port commands are sent to.
func (a *Anybar) Port() uint16 { return a.port }

// Color returns the last color set through this handle. ok is false until the
// first successful SetColor.
func (a *Anybar) Color() (c Color, ok bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.color, a.hasColor
}

// Closed reports whether Quit has succeeded on this handle.
func (a *Anybar) Closed() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.closed
}

// SetColor sends c to AnyBar and records it as the last color.
// On error the recorded color is left untouched.
func (a *Anybar) SetColor(c Color) error {
	if !c.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownColor, int(c))
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return ErrClosed
	}
	if err := a.send(c.Token()); err != nil {
		return err
	}

	a.color = c
	a.hasColor = true
	return nil
}

// Quit sends the quit command. Once it succeeds the handle is closed and every
// further call returns ErrClosed. If the send fails the handle stays usable.
//
// Quit is an experimental AnyBar feature.
func (a *Anybar) Quit() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return ErrClosed
	}
	if err := a.send([]byte(QuitCommand)); err != nil {
		return err
	}

	a.closed = true
	return nil
}

// send hands payload to the transport. Errors always come back as
// *TransportError, whatever the transport returned.
func (a *Anybar) send(payload []byte) error {
	err := a.tr.Send(a.port, payload)
	if err == nil {
		return nil
	}

	var te *TransportError
	if errors.As(err, &te) {
		return err
	}
	return &TransportError{Op: "send", Port: a.port, Err: err}
}
