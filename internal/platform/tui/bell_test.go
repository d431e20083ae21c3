package tui

import (
	"bytes"
	"sync"
	"testing"

	"github.com/ErikKalkoken/go-set"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/frameloop/internal/engine"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestBellRingsForSelectedEvents(t *testing.T) {
	var out syncBuffer
	bell := NewBell(&out, DefaultBellEvents)

	bell.Play(engine.EventScore)
	bell.Wait()
	assert.Empty(t, out.String())

	bell.Play(engine.EventHit)
	bell.Wait()
	assert.Equal(t, "\a", out.String())
}

func TestBellCustomEvents(t *testing.T) {
	var out syncBuffer
	bell := NewBell(&out, set.Of("flap"))

	bell.Play(engine.EventHit)
	bell.Play("flap")
	bell.Wait()
	assert.Equal(t, "\a", out.String())
}

func TestBellNilIsSilent(t *testing.T) {
	var bell *Bell
	assert.NotPanics(t, func() { bell.Play(engine.EventHit) })

	noOut := NewBell(nil, DefaultBellEvents)
	assert.NotPanics(t, func() { noOut.Play(engine.EventHit) })
}
