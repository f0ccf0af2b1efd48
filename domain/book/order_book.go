package book

import (
	"fmt"
	"io"
)

type idEntry struct {
	side  Side
	price int64
}

// OrderBook is single-writer and deterministic. It is never locked: all
// mutation is confined to the one goroutine that owns it.
type OrderBook struct {
	Bids *RBTree
	Asks *RBTree

	idIndex map[uint64]idEntry

	// OnRetire, when set, receives every order the book is done with
	// (fully filled maker, cancellation, or incoming order filled in full
	// on arrival) so the owner can recycle the node. The book holds no
	// reference afterwards.
	OnRetire func(*Order)
}

func NewOrderBook() *OrderBook {
	return &OrderBook{
		Bids:    NewRBTree(),
		Asks:    NewRBTree(),
		idIndex: make(map[uint64]idEntry),
	}
}

// AddOrder crosses the incoming order against the opposite side and returns
// the trades in execution order. Any residual rests at the order's price.
//
// Callers validate at the API boundary: Remaining() must be positive and
// the id must not collide with a resting order. A non-positive order is
// refused outright (no trades, nothing rests).
func (b *OrderBook) AddOrder(o *Order) []Trade {
	if o == nil || o.Remaining() <= 0 {
		return nil
	}

	var trades []Trade
	if o.Side == Buy {
		trades = b.matchBuy(o)
	} else {
		trades = b.matchSell(o)
	}

	if o.Remaining() > 0 {
		b.enqueue(o)
	} else {
		b.retire(o)
	}
	return trades
}

// Cancel removes a resting order by id. Returns true iff the order was
// resting and has been removed. An index entry with no matching order in
// its level would violate the book invariants; it reports false rather
// than panicking so tests can surface it.
func (b *OrderBook) Cancel(id uint64) bool {
	e, ok := b.idIndex[id]
	if !ok {
		return false
	}

	tree := b.Asks
	if e.side == Buy {
		tree = b.Bids
	}

	lvl := tree.FindLevel(e.price)
	if lvl == nil {
		return false
	}

	for o := lvl.Head(); o != nil; o = o.Next() {
		if o.ID != id {
			continue
		}
		lvl.Remove(o)
		delete(b.idIndex, id)
		if lvl.Empty() {
			tree.DeleteLevel(e.price)
		}
		b.retire(o)
		return true
	}
	return false
}

func (b *OrderBook) BestBid() (int64, bool) {
	lvl := b.Bids.MaxLevel()
	if lvl == nil {
		return 0, false
	}
	return lvl.Price, true
}

func (b *OrderBook) BestAsk() (int64, bool) {
	lvl := b.Asks.MinLevel()
	if lvl == nil {
		return 0, false
	}
	return lvl.Price, true
}

// ---- matching ----

func (b *OrderBook) matchBuy(o *Order) []Trade {
	var trades []Trade
	for o.Remaining() > 0 {
		best := b.Asks.MinLevel()
		if best == nil || best.Price > o.Price {
			break
		}

		trades = b.fillLevel(best, o, trades)

		if best.Empty() {
			b.Asks.DeleteLevel(best.Price)
		}
	}
	return trades
}

func (b *OrderBook) matchSell(o *Order) []Trade {
	var trades []Trade
	for o.Remaining() > 0 {
		best := b.Bids.MaxLevel()
		if best == nil || best.Price < o.Price {
			break
		}

		trades = b.fillLevel(best, o, trades)

		if best.Empty() {
			b.Bids.DeleteLevel(best.Price)
		}
	}
	return trades
}

// fillLevel trades the incoming order against the level head until either
// side is exhausted. A resting order that keeps quantity stays at the head,
// which implies the incoming order is done.
func (b *OrderBook) fillLevel(lvl *PriceLevel, o *Order, trades []Trade) []Trade {
	for o.Remaining() > 0 && !lvl.Empty() {
		resting := lvl.Head()
		traded := min(o.Remaining(), resting.Remaining())

		trades = append(trades, Trade{
			MakerID: resting.ID,
			TakerID: o.ID,
			Price:   resting.Price,
			Qty:     traded,
		})

		o.Filled += traded
		resting.Filled += traded
		lvl.TotalQty -= traded

		if resting.Remaining() == 0 {
			delete(b.idIndex, resting.ID)
			lvl.PopHead()
			b.retire(resting)
		} else {
			break
		}
	}
	return trades
}

func (b *OrderBook) enqueue(o *Order) {
	if o.Side == Buy {
		b.Bids.UpsertLevel(o.Price).Enqueue(o)
	} else {
		b.Asks.UpsertLevel(o.Price).Enqueue(o)
	}
	b.idIndex[o.ID] = idEntry{side: o.Side, price: o.Price}
}

func (b *OrderBook) retire(o *Order) {
	if b.OnRetire != nil {
		b.OnRetire(o)
	}
}

// Dump writes a human-readable view: asks low→high, bids high→low.
// Diagnostic only; the format is not stable.
func (b *OrderBook) Dump(w io.Writer) {
	fmt.Fprintln(w, "===== ORDER BOOK =====")
	fmt.Fprintln(w, " Asks (low→high)")
	b.Asks.ForEachAscending(func(lvl *PriceLevel) bool {
		fmt.Fprintf(w, "  %s\n", lvl)
		return true
	})
	fmt.Fprintln(w, " Bids (high→low)")
	b.Bids.ForEachDescending(func(lvl *PriceLevel) bool {
		fmt.Fprintf(w, "  %s\n", lvl)
		return true
	})
	fmt.Fprintln(w, "======================")
}
