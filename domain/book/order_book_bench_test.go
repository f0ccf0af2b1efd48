package book

import "testing"

func BenchmarkAddOrderResting(b *testing.B) {
	book := NewOrderBook()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		book.AddOrder(&Order{ID: uint64(i + 1), Side: Buy, Price: int64(100 + i%64), Qty: 10})
	}
}

func BenchmarkAddOrderCrossing(b *testing.B) {
	book := NewOrderBook()
	id := uint64(1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		book.AddOrder(&Order{ID: id, Side: Sell, Price: 100, Qty: 1})
		id++
		book.AddOrder(&Order{ID: id, Side: Buy, Price: 100, Qty: 1})
		id++
	}
}

func BenchmarkCancel(b *testing.B) {
	book := NewOrderBook()
	for i := 0; i < b.N; i++ {
		book.AddOrder(&Order{ID: uint64(i + 1), Side: Buy, Price: int64(100 + i%64), Qty: 10})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		book.Cancel(uint64(i + 1))
	}
}
