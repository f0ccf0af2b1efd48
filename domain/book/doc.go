// Package book implements the in-memory limit order book for a single
// instrument. It maintains two red-black trees of FIFO price levels (bids
// and asks), matches incoming orders under price-time priority, and keeps
// an id index for cancellation.
//
// The book is a single-writer structure: only the engine worker mutates
// it, so no locking is needed on the matching path.
package book
