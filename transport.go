package anybar

import (
	"net"
	"time"
)

// Transport delivers one command payload to AnyBar on the given local port.
type Transport interface {
	Send(port uint16, payload []byte) error
}

// UDPTransport sends each payload from a fresh socket bound to an ephemeral
// port on the loopback interface (1 command = 1 socket).
type UDPTransport struct {
	// Timeout bounds the write. Zero means no deadline.
	Timeout time.Duration
}

var loopback = net.IPv4(127, 0, 0, 1)

// Send implements Transport. Failures are returned as *TransportError.
func (t UDPTransport) Send(port uint16, payload []byte) error {
	conn, err := net.ListenUDP("udp4", &net.UDPAddr{IP: loopback, Port: 0})
	if err != nil {
		return &TransportError{Op: "bind", Port: port, Err: err}
	}
	defer conn.Close()

	if t.Timeout > 0 {
		if err := conn.SetWriteDeadline(time.Now().Add(t.Timeout)); err != nil {
			return &TransportError{Op: "send", Port: port, Err: err}
		}
	}

	dst := &net.UDPAddr{IP: loopback, Port: int(port)}
	if _, err := conn.WriteToUDP(payload, dst); err != nil {
		return &TransportError{Op: "send", Port: port, Err: err}
	}
	return nil
}
