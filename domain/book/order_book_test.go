package book

import (
	"bytes"
	"strings"
	"testing"
)

func limit(id uint64, side Side, price, qty int64) *Order {
	return &Order{ID: id, Side: side, Price: price, Qty: qty}
}

func mustBest(t *testing.T, px int64, ok bool, wantPx int64, wantOK bool) {
	t.Helper()
	if ok != wantOK {
		t.Fatalf("best: present=%v, want %v", ok, wantOK)
	}
	if ok && px != wantPx {
		t.Fatalf("best: price=%d, want %d", px, wantPx)
	}
}

func TestEmptyBookNoCross(t *testing.T) {
	b := NewOrderBook()

	trades := b.AddOrder(limit(1, Buy, 100, 10))
	if len(trades) != 0 {
		t.Fatalf("expected no trades, got %v", trades)
	}

	px, ok := b.BestBid()
	mustBest(t, px, ok, 100, true)
	if _, ok := b.BestAsk(); ok {
		t.Error("ask side should be empty")
	}
}

func TestSimpleFullCross(t *testing.T) {
	b := NewOrderBook()
	b.AddOrder(limit(1, Sell, 101, 50))
	b.AddOrder(limit(2, Sell, 102, 40))
	b.AddOrder(limit(3, Buy, 100, 70))

	trades := b.AddOrder(limit(4, Buy, 102, 80))

	want := []Trade{
		{MakerID: 1, TakerID: 4, Price: 101, Qty: 50},
		{MakerID: 2, TakerID: 4, Price: 102, Qty: 30},
	}
	if len(trades) != len(want) {
		t.Fatalf("got %d trades, want %d: %v", len(trades), len(want), trades)
	}
	for i, tr := range trades {
		if tr != want[i] {
			t.Errorf("trade %d: got %+v, want %+v", i, tr, want[i])
		}
	}

	if b.Asks.Size() != 1 {
		t.Error("only the 102 level should remain on the ask side")
	}
	if lvl := b.Asks.FindLevel(102); lvl == nil || lvl.Head().ID != 2 || lvl.Head().Remaining() != 10 {
		t.Error("order 2 should keep 10 at the head of 102")
	}
	px, ok := b.BestBid()
	mustBest(t, px, ok, 100, true)
	if lvl := b.Bids.FindLevel(100); lvl == nil || lvl.Head().ID != 3 || lvl.Head().Remaining() != 70 {
		t.Error("order 3 should rest untouched at 100x70")
	}
}

func TestPartialFillLeavesResidualMaker(t *testing.T) {
	b := NewOrderBook()
	b.AddOrder(limit(1, Sell, 101, 50))

	trades := b.AddOrder(limit(2, Buy, 101, 30))
	if len(trades) != 1 || trades[0] != (Trade{MakerID: 1, TakerID: 2, Price: 101, Qty: 30}) {
		t.Fatalf("unexpected trades: %v", trades)
	}

	lvl := b.Asks.FindLevel(101)
	if lvl == nil || lvl.Head().ID != 1 || lvl.Head().Remaining() != 20 {
		t.Error("maker should keep 20 at the head of 101")
	}
	if b.Bids.Size() != 0 {
		t.Error("taker was fully filled, nothing may rest")
	}
}

func TestFIFOWithinLevel(t *testing.T) {
	b := NewOrderBook()
	b.AddOrder(limit(1, Sell, 101, 10))
	b.AddOrder(limit(2, Sell, 101, 10))

	trades := b.AddOrder(limit(3, Buy, 101, 15))

	want := []Trade{
		{MakerID: 1, TakerID: 3, Price: 101, Qty: 10},
		{MakerID: 2, TakerID: 3, Price: 101, Qty: 5},
	}
	for i, tr := range trades {
		if tr != want[i] {
			t.Errorf("trade %d: got %+v, want %+v", i, tr, want[i])
		}
	}

	lvl := b.Asks.FindLevel(101)
	if lvl == nil || lvl.Head().ID != 2 || lvl.Head().Remaining() != 5 {
		t.Error("order 2 should remain with 5 at 101")
	}
}

func TestCancelRemovesFromPriority(t *testing.T) {
	b := NewOrderBook()
	b.AddOrder(limit(1, Buy, 100, 10))
	b.AddOrder(limit(2, Buy, 100, 10))

	if !b.Cancel(1) {
		t.Fatal("cancel of resting order must succeed")
	}

	trades := b.AddOrder(limit(3, Sell, 100, 10))
	if len(trades) != 1 || trades[0].MakerID != 2 {
		t.Fatalf("cancelled order must not trade, got %v", trades)
	}
}

func TestCancelSemantics(t *testing.T) {
	b := NewOrderBook()

	if b.Cancel(42) {
		t.Error("cancel of unknown id must return false")
	}

	b.AddOrder(limit(1, Buy, 100, 10))
	if !b.Cancel(1) {
		t.Error("first cancel must return true")
	}
	if b.Cancel(1) {
		t.Error("second cancel must return false")
	}
	if b.Bids.Size() != 0 {
		t.Error("level must be erased once its queue empties")
	}

	// A fully filled order is no longer resting.
	b.AddOrder(limit(2, Sell, 101, 5))
	b.AddOrder(limit(3, Buy, 101, 5))
	if b.Cancel(2) {
		t.Error("filled order must not be cancellable")
	}
}

func TestMakerPriceWins(t *testing.T) {
	b := NewOrderBook()
	b.AddOrder(limit(1, Sell, 101, 10))

	// Aggressive taker limit: still trades at the maker's price.
	trades := b.AddOrder(limit(2, Buy, 110, 10))
	if len(trades) != 1 || trades[0].Price != 101 {
		t.Fatalf("trade must be maker-priced, got %v", trades)
	}
}

func TestBookNeverCrossedAtRest(t *testing.T) {
	b := NewOrderBook()
	orders := []*Order{
		limit(1, Sell, 105, 10),
		limit(2, Buy, 95, 10),
		limit(3, Buy, 105, 4),
		limit(4, Sell, 95, 30),
		limit(5, Buy, 100, 7),
		limit(6, Sell, 99, 2),
	}
	for _, o := range orders {
		b.AddOrder(o)
		bid, hasBid := b.BestBid()
		ask, hasAsk := b.BestAsk()
		if hasBid && hasAsk && bid >= ask {
			t.Fatalf("book crossed at rest after order %d: bid=%d ask=%d", o.ID, bid, ask)
		}
	}
}

func TestQuantityConservation(t *testing.T) {
	b := NewOrderBook()
	orders := []*Order{
		limit(1, Sell, 101, 50),
		limit(2, Sell, 102, 40),
		limit(3, Buy, 100, 70),
		limit(4, Buy, 102, 80),
		limit(5, Sell, 100, 200),
		limit(6, Buy, 99, 10),
	}

	var submitted, traded int64
	for _, o := range orders {
		submitted += o.Qty
		for _, tr := range b.AddOrder(o) {
			traded += tr.Qty
		}
	}

	var resting int64
	for _, tree := range []*RBTree{b.Bids, b.Asks} {
		tree.ForEachAscending(func(lvl *PriceLevel) bool {
			for o := lvl.Head(); o != nil; o = o.Next() {
				resting += o.Remaining()
			}
			return true
		})
	}

	// Every unit of incoming quantity is either traded (once per side) or resting.
	if submitted != 2*traded+resting {
		t.Fatalf("conservation violated: submitted=%d traded=%d resting=%d", submitted, traded, resting)
	}
}

func TestIndexConsistency(t *testing.T) {
	b := NewOrderBook()
	b.AddOrder(limit(1, Sell, 101, 50))
	b.AddOrder(limit(2, Sell, 102, 40))
	b.AddOrder(limit(3, Buy, 100, 70))
	b.AddOrder(limit(4, Buy, 102, 80))
	b.Cancel(3)

	// Every resting order is indexed; every index entry resolves to exactly
	// one resting order with quantity left.
	resting := make(map[uint64]bool)
	for _, tree := range []*RBTree{b.Bids, b.Asks} {
		tree.ForEachAscending(func(lvl *PriceLevel) bool {
			for o := lvl.Head(); o != nil; o = o.Next() {
				if o.Remaining() <= 0 {
					t.Errorf("resting order %d has no quantity", o.ID)
				}
				if resting[o.ID] {
					t.Errorf("order %d rests in two queues", o.ID)
				}
				resting[o.ID] = true
				if _, ok := b.idIndex[o.ID]; !ok {
					t.Errorf("resting order %d missing from index", o.ID)
				}
			}
			return true
		})
	}
	for id := range b.idIndex {
		if !resting[id] {
			t.Errorf("index entry %d names no resting order", id)
		}
	}
}

func TestRejectsNonPositiveQty(t *testing.T) {
	b := NewOrderBook()
	if trades := b.AddOrder(limit(1, Buy, 100, 0)); trades != nil {
		t.Error("zero-qty order must be refused")
	}
	if trades := b.AddOrder(limit(2, Buy, 100, -5)); trades != nil {
		t.Error("negative-qty order must be refused")
	}
	if b.Bids.Size() != 0 {
		t.Error("refused orders must not rest")
	}
}

func TestRetireHook(t *testing.T) {
	b := NewOrderBook()
	var retired []uint64
	b.OnRetire = func(o *Order) { retired = append(retired, o.ID) }

	b.AddOrder(limit(1, Sell, 101, 10))
	b.AddOrder(limit(2, Buy, 101, 10)) // fills maker 1 and taker 2
	b.AddOrder(limit(3, Buy, 100, 5))
	b.Cancel(3)

	want := map[uint64]bool{1: true, 2: true, 3: true}
	if len(retired) != 3 {
		t.Fatalf("retired %v, want ids 1,2,3", retired)
	}
	for _, id := range retired {
		if !want[id] {
			t.Errorf("unexpected retired id %d", id)
		}
	}
}

func TestDumpShape(t *testing.T) {
	b := NewOrderBook()
	b.AddOrder(limit(1, Sell, 102, 4))
	b.AddOrder(limit(2, Buy, 100, 7))

	var buf bytes.Buffer
	b.Dump(&buf)
	out := buf.String()
	if !strings.Contains(out, "1x4") || !strings.Contains(out, "2x7") {
		t.Errorf("dump missing id x qty tokens:\n%s", out)
	}
}
