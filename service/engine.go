package service

import (
	"errors"
	"math"
	"sync/atomic"
	"time"

	"xchange/domain/book"
	"xchange/infra/memory"
	"xchange/infra/metrics"
	"xchange/infra/queue"
	"xchange/infra/sequence"
)

var (
	// ErrInvalidOrder rejects non-positive quantity or a malformed side at
	// the API boundary.
	ErrInvalidOrder = errors.New("service: invalid order")

	// ErrShutdown is returned by queries once the worker has exited.
	ErrShutdown = errors.New("service: engine is shut down")
)

type commandKind int

const (
	cmdSubmit commandKind = iota
	cmdCancel
	cmdDepth
)

type command struct {
	kind     commandKind
	order    book.Order
	cancelID uint64
	depth    int
	reply    chan *BookSnapshot
}

// noPrice marks an empty side in the top-of-book cells.
const noPrice = math.MinInt64

// DefaultDepth bounds snapshot queries that do not ask for a level count.
const DefaultDepth = 10

type Config struct {
	// RecycleRing is the worker-local free-list size (power of two).
	RecycleRing uint64
	// Metrics is optional; nil disables instrumentation.
	Metrics *metrics.Metrics
}

/*
Engine is the ONLY write entry point into the book.

It adapts the synchronous OrderBook to a producer/consumer environment:
producers push commands onto the inbound queue, exactly one worker drains
it, mutates the book, and publishes events on the outbound queue. The book
needs no lock because nothing but the worker ever touches it.
*/
type Engine struct {
	book *book.OrderBook
	inq  *queue.Queue[command]
	outq *queue.Queue[EngineEvent]
	pool *memory.Pool[book.Order]
	ring *memory.RecycleRing[book.Order]
	seq  *sequence.Sequencer
	met  *metrics.Metrics

	running atomic.Bool
	done    chan struct{}

	bestBid atomic.Int64
	bestAsk atomic.Int64
}

// New wires the engine and starts its worker. The queues exist before the
// worker is launched; the worker never observes a half-built engine.
func New(cfg Config) *Engine {
	ringSize := cfg.RecycleRing
	if ringSize == 0 {
		ringSize = 1 << 10
	}

	e := &Engine{
		book: book.NewOrderBook(),
		inq:  queue.New[command](),
		outq: queue.New[EngineEvent](),
		pool: memory.NewPool(func() *book.Order { return &book.Order{} }),
		ring: memory.NewRecycleRing[book.Order](ringSize),
		seq:  sequence.New(0),
		met:  cfg.Metrics,
		done: make(chan struct{}),
	}
	e.book.OnRetire = e.recycle
	e.bestBid.Store(noPrice)
	e.bestAsk.Store(noPrice)
	e.running.Store(true)

	go e.run()
	return e
}

//
// ──────────────────────────────────────────────────────────
// Producer side
// ──────────────────────────────────────────────────────────
//

// Submit validates the order and enqueues it. FIFO per producer. The engine
// does not deduplicate ids and does not prevent self-trades; both are the
// caller's contract. Submissions racing with Shutdown are silently dropped.
func (e *Engine) Submit(o book.Order) error {
	if o.Qty <= 0 || o.Filled != 0 || (o.Side != book.Buy && o.Side != book.Sell) {
		if e.met != nil {
			e.met.OrdersRejected.Inc()
		}
		return ErrInvalidOrder
	}
	if o.Ts.IsZero() {
		o.Ts = time.Now()
	}

	e.inq.Push(command{kind: cmdSubmit, order: o})
	if e.met != nil {
		e.met.OrdersSubmitted.Inc()
	}
	return nil
}

// Cancel enqueues a cancellation. Fire-and-forget: the outcome is
// observable through the book, not the call.
func (e *Engine) Cancel(id uint64) {
	e.inq.Push(command{kind: cmdCancel, cancelID: id})
}

// Depth asks the worker for an aggregated view of the top levels. The
// query rides the inbound queue, so the snapshot is consistent with every
// previously submitted command.
func (e *Engine) Depth(levels int) (*BookSnapshot, error) {
	if levels <= 0 {
		levels = DefaultDepth
	}
	reply := make(chan *BookSnapshot, 1)
	e.inq.Push(command{kind: cmdDepth, depth: levels, reply: reply})

	select {
	case snap := <-reply:
		return snap, nil
	case <-e.done:
		// The worker may have answered just before exiting.
		select {
		case snap := <-reply:
			return snap, nil
		default:
			return nil, ErrShutdown
		}
	}
}

//
// ──────────────────────────────────────────────────────────
// Consumer side
// ──────────────────────────────────────────────────────────
//

// PollEvent drains one event without blocking.
func (e *Engine) PollEvent() (EngineEvent, bool) {
	return e.outq.TryPop()
}

// WaitEvent blocks for the next event; false once the engine has shut
// down and every event has been delivered.
func (e *Engine) WaitEvent() (EngineEvent, bool) {
	return e.outq.Pop()
}

// BestBid reads the top-of-book cell the worker republishes after every
// command. Safe at any time, including while the worker is running.
func (e *Engine) BestBid() (int64, bool) {
	v := e.bestBid.Load()
	return v, v != noPrice
}

func (e *Engine) BestAsk() (int64, bool) {
	v := e.bestAsk.Load()
	return v, v != noPrice
}

//
// ──────────────────────────────────────────────────────────
// Lifecycle
// ──────────────────────────────────────────────────────────
//

// Shutdown is idempotent; exactly one caller performs the transition.
// It closes the inbound queue, waits for the worker to drain every
// accepted command, then closes the outbound queue. After it returns, no
// further event will ever be produced.
func (e *Engine) Shutdown() {
	if !e.running.CompareAndSwap(true, false) {
		return
	}
	e.inq.Close()
	<-e.done
	e.outq.Close()
}

//
// ──────────────────────────────────────────────────────────
// Worker
// ──────────────────────────────────────────────────────────
//

func (e *Engine) run() {
	defer close(e.done)

	for {
		cmd, ok := e.inq.Pop()
		if !ok {
			return
		}

		switch cmd.kind {
		case cmdSubmit:
			e.handleSubmit(cmd.order)
		case cmdCancel:
			e.handleCancel(cmd.cancelID)
		case cmdDepth:
			e.handleDepth(cmd)
		}

		e.publishTopOfBook()
	}
}

func (e *Engine) handleSubmit(o book.Order) {
	n := e.alloc()
	*n = o

	start := time.Now()
	trades := e.book.AddOrder(n)
	if e.met != nil {
		e.met.MatchLatency.Observe(float64(time.Since(start).Nanoseconds()))
		e.met.TradesExecuted.Add(float64(len(trades)))
	}

	if len(trades) == 0 {
		return
	}
	e.outq.Push(EngineEvent{
		Type:   EventTradeBatch,
		Seq:    e.seq.Next(),
		Trades: trades,
	})
	if e.met != nil {
		e.met.EventsPublished.Inc()
	}
}

// handleDepth answers the caller and publishes the same snapshot on the
// event stream, so feed subscribers observe the book as of this point in
// the command order.
func (e *Engine) handleDepth(cmd command) {
	snap := e.snapshot(cmd.depth)
	cmd.reply <- snap
	e.outq.Push(EngineEvent{
		Type: EventBookSnapshot,
		Seq:  e.seq.Next(),
		Book: snap,
	})
	if e.met != nil {
		e.met.EventsPublished.Inc()
	}
}

func (e *Engine) handleCancel(id uint64) {
	if e.book.Cancel(id) && e.met != nil {
		e.met.CancelsAccepted.Inc()
	}
}

func (e *Engine) snapshot(levels int) *BookSnapshot {
	snap := &BookSnapshot{}
	e.book.Bids.ForEachDescending(func(lvl *book.PriceLevel) bool {
		snap.Bids = append(snap.Bids, DepthLevel{Price: lvl.Price, Qty: lvl.TotalQty, Orders: lvl.OrderCount})
		return len(snap.Bids) < levels
	})
	e.book.Asks.ForEachAscending(func(lvl *book.PriceLevel) bool {
		snap.Asks = append(snap.Asks, DepthLevel{Price: lvl.Price, Qty: lvl.TotalQty, Orders: lvl.OrderCount})
		return len(snap.Asks) < levels
	})
	return snap
}

func (e *Engine) publishTopOfBook() {
	if px, ok := e.book.BestBid(); ok {
		e.bestBid.Store(px)
	} else {
		e.bestBid.Store(noPrice)
	}
	if px, ok := e.book.BestAsk(); ok {
		e.bestAsk.Store(px)
	} else {
		e.bestAsk.Store(noPrice)
	}
	if e.met != nil {
		e.met.RestingOrders.WithLabelValues("bid").Set(float64(e.book.Bids.Size()))
		e.met.RestingOrders.WithLabelValues("ask").Set(float64(e.book.Asks.Size()))
	}
}

//
// ──────────────────────────────────────────────────────────
// Node reuse
// ──────────────────────────────────────────────────────────
//

func (e *Engine) alloc() *book.Order {
	if n := e.ring.Dequeue(); n != nil {
		return n
	}
	return e.pool.Get()
}

func (e *Engine) recycle(o *book.Order) {
	if !e.ring.Enqueue(o) {
		e.pool.Put(o)
	}
}
