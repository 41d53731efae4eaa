// internal/reading/runner_test.go
package reading

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tamzrod/modbus-reader/internal/decode"
)

func TestRunner_EmitsUntilCancelled(t *testing.T) {
	tr := &fakeTransport{regs: map[uint16]uint16{0: 3}}
	a := newTestAssembler(t, tr)

	r, err := NewRunner(a, []Descriptor{{Name: "a", Address: 0, Type: decode.Int16}}, time.Millisecond)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	out := make(chan Batch)
	done := make(chan struct{})
	go func() {
		r.Run(ctx, out)
		close(done)
	}()

	for i := 0; i < 3; i++ {
		select {
		case b := <-out:
			require.Len(t, b.Readings, 1)
			require.Equal(t, int64(3), b.Readings[0].Value.Int)
		case <-time.After(2 * time.Second):
			t.Fatalf("batch %d not delivered", i)
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("runner did not stop")
	}
}

func TestNewRunner_Validation(t *testing.T) {
	a := newTestAssembler(t, &fakeTransport{})
	descs := []Descriptor{{Name: "a", Type: decode.Int16}}

	_, err := NewRunner(nil, descs, time.Second)
	require.Error(t, err)
	_, err = NewRunner(a, descs, 0)
	require.Error(t, err)
	_, err = NewRunner(a, nil, time.Second)
	require.Error(t, err)
}
