package broadcaster

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xchange/domain/book"
	"xchange/infra/outbox"
	"xchange/service"
)

// stubSource feeds a fixed event slice, then reports closure.
type stubSource struct {
	mu     sync.Mutex
	events []service.EngineEvent
}

func (s *stubSource) WaitEvent() (service.EngineEvent, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.events) == 0 {
		return service.EngineEvent{}, false
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev, true
}

// stubPublisher fails the first failN publishes, then succeeds.
type stubPublisher struct {
	mu       sync.Mutex
	failN    int
	payloads [][]byte
}

func (p *stubPublisher) Publish(key, value []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.failN > 0 {
		p.failN--
		return assert.AnError
	}
	p.payloads = append(p.payloads, append([]byte(nil), value...))
	return nil
}

func (p *stubPublisher) Close() error { return nil }

func (p *stubPublisher) published() [][]byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([][]byte(nil), p.payloads...)
}

func tradeEvent(seq uint64) service.EngineEvent {
	return service.EngineEvent{
		Type: service.EventTradeBatch,
		Seq:  seq,
		Trades: []book.Trade{
			{MakerID: 1, TakerID: 2, Price: 100, Qty: 5},
		},
	}
}

func newTestOutbox(t *testing.T) *outbox.Outbox {
	t.Helper()
	box, err := outbox.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = box.Close() })
	return box
}

func TestPublishesAndAcks(t *testing.T) {
	box := newTestOutbox(t)
	pub := &stubPublisher{}
	src := &stubSource{events: []service.EngineEvent{tradeEvent(1), tradeEvent(2)}}

	b := New(src, box, pub, time.Hour)
	b.Run(context.Background())

	got := pub.published()
	require.Len(t, got, 2)

	var w wireEvent
	require.NoError(t, json.Unmarshal(got[0], &w))
	assert.Equal(t, 1, w.V)
	assert.Equal(t, "trade_batch", w.Type)
	assert.Equal(t, uint64(1), w.Seq)
	require.Len(t, w.Trades, 1)
	assert.Equal(t, wireTrade{Maker: 1, Taker: 2, Price: 100, Qty: 5}, w.Trades[0])

	// Acked entries are gone from the outbox.
	err := box.ScanPending(func(seq uint64, rec outbox.Record) error {
		t.Errorf("unexpected pending entry %d", seq)
		return nil
	})
	require.NoError(t, err)
}

func TestFailedPublishStaysPending(t *testing.T) {
	box := newTestOutbox(t)
	pub := &stubPublisher{failN: 1}
	src := &stubSource{events: []service.EngineEvent{tradeEvent(7)}}

	b := New(src, box, pub, time.Hour)
	b.Run(context.Background())

	assert.Empty(t, pub.published())
	rec, err := box.Get(7)
	require.NoError(t, err)
	assert.Equal(t, outbox.StateFailed, rec.State)
	assert.Equal(t, uint32(1), rec.Retries)

	// The retry path delivers it.
	b.replayPending()
	require.Len(t, pub.published(), 1)
	_, err = box.Get(7)
	assert.Error(t, err, "delivered entry removed")
}

func TestHubReceivesAllEventTypes(t *testing.T) {
	box := newTestOutbox(t)
	pub := &stubPublisher{}
	snap := service.EngineEvent{Type: service.EventBookSnapshot, Seq: 3, Book: &service.BookSnapshot{}}
	src := &stubSource{events: []service.EngineEvent{tradeEvent(1), snap}}

	b := New(src, box, pub, time.Hour)
	sub := b.Hub().Subscribe(8)
	b.Run(context.Background())

	require.Len(t, sub.C, 2)
	first := <-sub.C
	second := <-sub.C
	assert.Equal(t, service.EventTradeBatch, first.Type)
	assert.Equal(t, service.EventBookSnapshot, second.Type)

	// Snapshots are in-process only, never written to the outbox.
	require.NoError(t, box.ScanPending(func(seq uint64, rec outbox.Record) error {
		t.Errorf("unexpected pending entry %d", seq)
		return nil
	}))
}

func TestHubSlowSubscriberDoesNotBlock(t *testing.T) {
	h := NewHub[int]()
	slow := h.Subscribe(1)
	fast := h.Subscribe(8)

	for i := 0; i < 5; i++ {
		h.Broadcast(i)
	}

	assert.Len(t, slow.C, 1, "overflow dropped, not blocked")
	assert.Len(t, fast.C, 5)

	h.Unsubscribe(slow)
	_, open := <-slow.C
	assert.True(t, open, "buffered value still readable")
	_, open = <-slow.C
	assert.False(t, open, "channel closed after unsubscribe")

	h.Unsubscribe(slow) // second unsubscribe is a no-op
}
