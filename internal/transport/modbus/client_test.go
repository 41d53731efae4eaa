// internal/transport/modbus/client_test.go
package modbus

import (
	"errors"
	"fmt"
	"io"
	"net"
	"testing"

	"github.com/goburrow/modbus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamzrod/modbus-reader/internal/reading"
)

type fakeReader struct {
	payload []byte
	err     error

	lastAddr, lastQty uint16
}

func (f *fakeReader) ReadHoldingRegisters(address, quantity uint16) ([]byte, error) {
	f.lastAddr, f.lastQty = address, quantity
	return f.payload, f.err
}

func kindOf(t *testing.T, err error) reading.Kind {
	t.Helper()
	var te *reading.TransportError
	require.True(t, errors.As(err, &te), "not a TransportError: %v", err)
	return te.Kind
}

func TestReadHoldingRegisters_Unpacks(t *testing.T) {
	fr := &fakeReader{payload: []byte{0x12, 0x34, 0xAB, 0xCD}}
	c := &Client{mb: fr}

	regs, err := c.ReadHoldingRegisters(10, 2)
	require.NoError(t, err)
	assert.Equal(t, []uint16{0x1234, 0xABCD}, regs)
	assert.Equal(t, uint16(10), fr.lastAddr)
	assert.Equal(t, uint16(2), fr.lastQty)
}

func TestReadHoldingRegisters_Protocol(t *testing.T) {
	c := &Client{mb: &fakeReader{payload: []byte{0x00, 0x01, 0x02}}}
	_, err := c.ReadHoldingRegisters(0, 2)
	assert.Equal(t, reading.KindProtocol, kindOf(t, err))

	c = &Client{mb: &fakeReader{payload: []byte{0x00, 0x01}}}
	_, err = c.ReadHoldingRegisters(0, 2)
	assert.Equal(t, reading.KindProtocol, kindOf(t, err))
}

func TestReadHoldingRegisters_NotConnected(t *testing.T) {
	var c *Client
	_, err := c.ReadHoldingRegisters(0, 1)
	assert.Equal(t, reading.KindConnection, kindOf(t, err))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want reading.Kind
	}{
		{"exception", &modbus.ModbusError{FunctionCode: 0x83, ExceptionCode: 2}, reading.KindDevice},
		{"eof", io.EOF, reading.KindConnection},
		{"wrapped eof", fmt.Errorf("read: %w", io.ErrUnexpectedEOF), reading.KindConnection},
		{"op error", &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("refused")}, reading.KindConnection},
		{"closed", net.ErrClosed, reading.KindConnection},
		{"length mismatch", errors.New("modbus: response data size '3' does not match count '4'"), reading.KindProtocol},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := &Client{mb: &fakeReader{err: tc.err}}
			_, err := c.ReadHoldingRegisters(0, 1)
			assert.Equal(t, tc.want, kindOf(t, err))
			assert.True(t, errors.Is(err, tc.err))
		})
	}
}

func TestClassify_ExceptionCode(t *testing.T) {
	err := classify(&modbus.ModbusError{FunctionCode: 0x83, ExceptionCode: 4})

	var te *reading.TransportError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, uint8(4), te.ExceptionCode)
	assert.Equal(t, uint16(4), te.Code())
}

func TestNew_EndpointRequired(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}

func TestNew_ConnectFailure(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	_, err = New(Config{Endpoint: addr, UnitID: 1})
	require.Error(t, err)
	assert.Equal(t, reading.KindConnection, kindOf(t, err))
}
