// internal/reading/assembler.go
package reading

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tamzrod/modbus-reader/internal/decode"
)

// ErrInvalidDescriptor marks a descriptor that cannot be turned into a read.
var ErrInvalidDescriptor = errors.New("reading: invalid descriptor")

// Observer is told about every descriptor read, successful or not.
type Observer interface {
	ObserveRead(d Descriptor, took time.Duration, err error)
}

// Assembler reads descriptors through a Transport and decodes them.
// It keeps no state between Assemble calls.
type Assembler struct {
	tr  Transport
	now func() time.Time
	log logrus.FieldLogger
	obs Observer
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(a *Assembler) { a.now = now }
}

// WithLogger sets the logger used for per-descriptor failures.
func WithLogger(l logrus.FieldLogger) Option {
	return func(a *Assembler) { a.log = l }
}

// WithObserver attaches a read observer (metrics).
func WithObserver(o Observer) Option {
	return func(a *Assembler) { a.obs = o }
}

// New creates an Assembler over tr.
func New(tr Transport, opts ...Option) (*Assembler, error) {
	if tr == nil {
		return nil, errors.New("reading: transport required")
	}
	a := &Assembler{tr: tr, now: time.Now}
	for _, opt := range opts {
		opt(a)
	}
	if a.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		a.log = l
	}
	return a, nil
}

// Assemble reads every descriptor in order and returns the report rows.
// A failing descriptor yields one error-marked row and never aborts the batch.
func (a *Assembler) Assemble(descs []Descriptor) []Reading {
	out := make([]Reading, 0, len(descs))
	for _, d := range descs {
		out = a.assembleOne(out, d)
	}
	return out
}

// Batch is Assemble with the batch start time attached.
func (a *Assembler) Batch(descs []Descriptor) Batch {
	at := a.now()
	return Batch{At: at, Readings: a.Assemble(descs)}
}

func (a *Assembler) assembleOne(out []Reading, d Descriptor) []Reading {
	log := a.log.WithFields(logrus.Fields{
		"name":    d.Name,
		"address": d.Address,
		"type":    d.Type.String(),
	})

	if err := checkDescriptor(d); err != nil {
		log.WithError(err).Warn("skipping descriptor")
		a.observe(d, 0, err)
		return append(out, a.failed(d, err))
	}

	start := time.Now()
	words, err := a.tr.ReadHoldingRegisters(d.Address, uint16(d.WordCount()))
	took := time.Since(start)
	if err != nil {
		te := AsTransportError(err)
		log.WithError(te).WithField("kind", te.Kind.String()).Warn("register read failed")
		a.observe(d, took, te)
		return append(out, a.failed(d, te))
	}

	values, err := decode.Decode(d.Type, words, d.count(), decode.Options{
		Order:    d.Order,
		Unsigned: d.Unsigned,
	})
	if err != nil {
		te := shortReply(d, err)
		log.WithError(te).WithField("words", len(words)).Warn("register decode failed")
		a.observe(d, took, te)
		return append(out, a.failed(d, te))
	}
	a.observe(d, took, nil)

	if d.count() == 1 {
		v, _ := decode.Unwrap(values)
		log.WithField("value", v.String()).Debug("register read")
		return append(out, a.row(d, d.Name, d.Address, v))
	}

	width := d.Type.WordWidth()
	for i, v := range values {
		addr := d.Address + uint16(i*width)
		out = append(out, a.row(d, indexedName(d.Name, i), addr, v))
	}
	log.WithField("values", len(values)).Debug("register run read")
	return out
}

func (a *Assembler) row(d Descriptor, name string, addr uint16, v decode.Value) Reading {
	return Reading{
		Timestamp:   a.now(),
		Name:        name,
		Address:     addr,
		Type:        d.Type,
		Value:       v,
		Unit:        d.Unit,
		Description: d.Description,
	}
}

func (a *Assembler) failed(d Descriptor, err error) Reading {
	return Reading{
		Timestamp:   a.now(),
		Name:        d.Name,
		Address:     d.Address,
		Type:        d.Type,
		Err:         err,
		Unit:        d.Unit,
		Description: d.Description,
	}
}

func (a *Assembler) observe(d Descriptor, took time.Duration, err error) {
	if a.obs != nil {
		a.obs.ObserveRead(d, took, err)
	}
}

func checkDescriptor(d Descriptor) error {
	if !d.Type.Valid() {
		return fmt.Errorf("%w: %s: unknown data type %s", ErrInvalidDescriptor, d.Name, d.Type)
	}
	n := d.WordCount()
	if int(d.Address)+n > 0x10000 {
		return fmt.Errorf("%w: %s: %d registers from %d run past 65535", ErrInvalidDescriptor, d.Name, n, d.Address)
	}
	return nil
}
