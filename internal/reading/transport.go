// internal/reading/transport.go
package reading

import (
	"errors"
	"fmt"
)

// Transport reads contiguous holding registers.
// On success it returns exactly qty words in ascending address order.
// Timeouts and connection handling belong to the implementation.
type Transport interface {
	ReadHoldingRegisters(addr, qty uint16) ([]uint16, error)
}

// Kind classifies a transport failure.
type Kind uint8

const (
	KindConnection Kind = iota + 1 // not connected, dial/read/write failure, timeout
	KindDevice                     // device answered with a Modbus exception
	KindProtocol                   // malformed or unexpected reply
)

func (k Kind) String() string {
	switch k {
	case KindConnection:
		return "connection"
	case KindDevice:
		return "device"
	case KindProtocol:
		return "protocol"
	default:
		return "unknown"
	}
}

// TransportError is a failure reported by, or attributed to, the transport.
type TransportError struct {
	Kind   Kind
	Detail string
	// ExceptionCode is the Modbus exception code for KindDevice, 0 otherwise.
	ExceptionCode uint8
	Err           error
}

func (e *TransportError) Error() string {
	msg := "transport " + e.Kind.String() + " error"
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *TransportError) Unwrap() error { return e.Err }

// Code exposes the device exception code (or 1 for non-device failures).
func (e *TransportError) Code() uint16 {
	if e.Kind == KindDevice && e.ExceptionCode != 0 {
		return uint16(e.ExceptionCode)
	}
	return 1
}

// AsTransportError returns err as a *TransportError, wrapping unknown
// errors as KindConnection.
func AsTransportError(err error) *TransportError {
	if err == nil {
		return nil
	}
	var te *TransportError
	if errors.As(err, &te) {
		return te
	}
	return &TransportError{Kind: KindConnection, Err: err}
}

func shortReply(d Descriptor, err error) *TransportError {
	return &TransportError{
		Kind:   KindProtocol,
		Detail: fmt.Sprintf("reply for %s at %d does not fit %s", d.Name, d.Address, d.Type),
		Err:    err,
	}
}
