package book

import "time"

type Side int

const (
	Buy Side = iota
	Sell
)

func (s Side) String() string {
	if s == Buy {
		return "buy"
	}
	return "sell"
}

// Order is a pure domain entity. Identity (ID, Side, Price) is immutable;
// Filled advances while the order rests. Ts is diagnostic only: time
// priority inside a level is arrival order, never timestamp comparison.
type Order struct {
	ID     uint64
	Price  int64
	Qty    int64
	Filled int64
	Ts     time.Time

	Side Side

	next *Order
	prev *Order
}

func (o *Order) Remaining() int64 {
	return o.Qty - o.Filled
}

// Read-only traversal helper
func (o *Order) Next() *Order {
	return o.next
}

// Trade pairs a resting maker with the incoming taker that crossed it.
// Price is always the maker's price.
type Trade struct {
	MakerID uint64
	TakerID uint64
	Price   int64
	Qty     int64
}
