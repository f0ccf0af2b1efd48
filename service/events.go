package service

import "xchange/domain/book"

type EventType int

const (
	EventTradeBatch EventType = iota
	EventBookSnapshot
)

// DepthLevel aggregates one resting price level.
type DepthLevel struct {
	Price  int64 `json:"price"`
	Qty    int64 `json:"qty"`
	Orders int   `json:"orders"`
}

// BookSnapshot is a worker-consistent view of the top of the book.
type BookSnapshot struct {
	Bids []DepthLevel `json:"bids"`
	Asks []DepthLevel `json:"asks"`
}

// EngineEvent is the tagged egress variant. One TradeBatch is published per
// incoming order that traded, carrying the full effect of that order; one
// BookSnapshot is published per depth query, carrying the view the caller
// was given.
type EngineEvent struct {
	Type   EventType
	Seq    uint64
	Trades []book.Trade
	Book   *BookSnapshot
}
