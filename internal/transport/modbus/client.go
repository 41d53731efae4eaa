// internal/transport/modbus/client.go
package modbus

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"syscall"
	"time"

	"github.com/goburrow/modbus"

	"github.com/tamzrod/modbus-reader/internal/reading"
)

// registerReader is the slice of modbus.Client the adapter uses.
type registerReader interface {
	ReadHoldingRegisters(address, quantity uint16) ([]byte, error)
}

// Client implements reading.Transport over Modbus TCP.
// It dials once; a dead connection is reported, never re-dialled.
type Client struct {
	handler *modbus.TCPClientHandler
	mb      registerReader
}

// Config is minimal transport config.
type Config struct {
	Endpoint string
	UnitID   uint8
	Timeout  time.Duration
	Logger   *log.Logger // frame trace, optional
}

// New creates a connected Modbus TCP client.
func New(cfg Config) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("modbus client: endpoint required")
	}

	h := modbus.NewTCPClientHandler(cfg.Endpoint)
	h.SlaveId = cfg.UnitID
	if cfg.Timeout > 0 {
		h.Timeout = cfg.Timeout
	}
	h.Logger = cfg.Logger

	if err := h.Connect(); err != nil {
		return nil, &reading.TransportError{
			Kind:   reading.KindConnection,
			Detail: "connect " + cfg.Endpoint,
			Err:    err,
		}
	}

	return &Client{handler: h, mb: modbus.NewClient(h)}, nil
}

// Close closes the TCP connection.
func (c *Client) Close() error {
	if c == nil || c.handler == nil {
		return nil
	}
	return c.handler.Close()
}

// ReadHoldingRegisters reads qty registers starting at addr (FC 3).
func (c *Client) ReadHoldingRegisters(addr, qty uint16) ([]uint16, error) {
	if c == nil || c.mb == nil {
		return nil, &reading.TransportError{Kind: reading.KindConnection, Detail: "not connected"}
	}

	raw, err := c.mb.ReadHoldingRegisters(addr, qty)
	if err != nil {
		return nil, classify(err)
	}
	if len(raw)%2 != 0 {
		return nil, &reading.TransportError{
			Kind:   reading.KindProtocol,
			Detail: fmt.Sprintf("odd register payload length %d", len(raw)),
		}
	}

	regs := unpackRegisters(raw)
	if len(regs) != int(qty) {
		return nil, &reading.TransportError{
			Kind:   reading.KindProtocol,
			Detail: fmt.Sprintf("got %d registers, want %d", len(regs), qty),
		}
	}
	return regs, nil
}

// classify maps goburrow and net errors onto reading.TransportError kinds.
func classify(err error) error {
	var mbErr *modbus.ModbusError
	if errors.As(err, &mbErr) {
		return &reading.TransportError{
			Kind:          reading.KindDevice,
			ExceptionCode: mbErr.ExceptionCode,
			Err:           err,
		}
	}

	var netErr net.Error
	switch {
	case errors.As(err, &netErr),
		errors.Is(err, io.EOF),
		errors.Is(err, io.ErrUnexpectedEOF),
		errors.Is(err, net.ErrClosed),
		errors.Is(err, syscall.ECONNRESET),
		errors.Is(err, syscall.ECONNREFUSED),
		errors.Is(err, syscall.EPIPE):
		return &reading.TransportError{Kind: reading.KindConnection, Err: err}
	}

	// goburrow reports framing and length mismatches as plain errors.
	return &reading.TransportError{Kind: reading.KindProtocol, Err: err}
}

// ---- helpers (pure geometry) ----

func unpackRegisters(data []byte) []uint16 {
	n := len(data) / 2
	out := make([]uint16, n)
	for i := 0; i < n; i++ {
		out[i] = uint16(data[2*i])<<8 | uint16(data[2*i+1])
	}
	return out
}
