// internal/watch/modbus/client.go
package modbus

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goburrow/modbus"
)

// Client is a single Modbus TCP connection to one status memory endpoint.
// It implements watch.Client.
type Client struct {
	mu      sync.Mutex
	handler *modbus.TCPClientHandler
	client  modbus.Client
}

type Config struct {
	Endpoint string
	UnitID   uint8
	Timeout  time.Duration
}

// New connects to cfg.Endpoint (fail fast at startup).
func New(cfg Config) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("watch modbus: endpoint required")
	}

	h := modbus.NewTCPClientHandler(cfg.Endpoint)
	h.Timeout = cfg.Timeout
	h.SlaveId = cfg.UnitID

	if err := h.Connect(); err != nil {
		return nil, fmt.Errorf("watch modbus: connect %s: %w", cfg.Endpoint, err)
	}

	return &Client{
		handler: h,
		client:  modbus.NewClient(h),
	}, nil
}

func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.handler.Close()
}

// ReadHoldingRegisters reads qty registers starting at addr (FC 3).
func (c *Client) ReadHoldingRegisters(addr, qty uint16) ([]uint16, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	b, err := c.client.ReadHoldingRegisters(addr, qty)
	if err != nil {
		return nil, err
	}
	return unpackRegisters(b, int(qty))
}

// Modbus register memory order (BIG-ENDIAN)
func unpackRegisters(b []byte, qty int) ([]uint16, error) {
	if len(b) < qty*2 {
		return nil, fmt.Errorf("watch modbus: short response: %d bytes for %d registers", len(b), qty)
	}
	out := make([]uint16, qty)
	for i := range out {
		out[i] = uint16(b[2*i])<<8 | uint16(b[2*i+1])
	}
	return out, nil
}
