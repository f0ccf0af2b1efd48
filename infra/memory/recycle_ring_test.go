package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct{ n int }

func TestRecycleRingFIFO(t *testing.T) {
	r := NewRecycleRing[payload](4)
	a, b := &payload{1}, &payload{2}

	require.True(t, r.Enqueue(a))
	require.True(t, r.Enqueue(b))
	assert.Same(t, a, r.Dequeue())
	assert.Same(t, b, r.Dequeue())
	assert.Nil(t, r.Dequeue())
}

func TestRecycleRingFull(t *testing.T) {
	r := NewRecycleRing[payload](2)
	require.True(t, r.Enqueue(&payload{}))
	require.True(t, r.Enqueue(&payload{}))
	assert.False(t, r.Enqueue(&payload{}), "full ring must refuse")
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, 2, r.Cap())
}

func TestRecycleRingRequiresPowerOfTwo(t *testing.T) {
	assert.Panics(t, func() { NewRecycleRing[payload](3) })
	assert.Panics(t, func() { NewRecycleRing[payload](0) })
}

func TestPoolRoundTrip(t *testing.T) {
	p := NewPool(func() *payload { return &payload{} })
	v := p.Get()
	require.NotNil(t, v)
	v.n = 42
	p.Put(v)
	got := p.Get()
	require.NotNil(t, got)
}
