// Package wsfeed streams trades and depth snapshots to websocket clients.
package wsfeed

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"xchange/jobs/broadcaster"
	"xchange/service"
)

type Server struct {
	eng          *service.Engine
	hub          *broadcaster.Hub[service.EngineEvent]
	upgrader     websocket.Upgrader
	bookInterval time.Duration
	bookDepth    int
}

type outboundMessage struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

type tradeData struct {
	Seq    uint64      `json:"seq"`
	Trades []tradeItem `json:"trades"`
}

type tradeItem struct {
	Maker uint64 `json:"maker"`
	Taker uint64 `json:"taker"`
	Price int64  `json:"price"`
	Qty   int64  `json:"qty"`
}

func NewServer(eng *service.Engine, hub *broadcaster.Hub[service.EngineEvent]) *Server {
	return &Server{
		eng:          eng,
		hub:          hub,
		upgrader:     websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }},
		bookInterval: time.Second,
		bookDepth:    service.DefaultDepth,
	}
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws/trades", s.handleTradeStream)
	mux.HandleFunc("/ws/book", s.handleBookStream)
	return mux
}

func (s *Server) handleTradeStream(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[wsfeed] upgrade: %v", err)
		return
	}
	defer conn.Close()

	sub := s.hub.Subscribe(256)
	defer s.hub.Unsubscribe(sub)

	for ev := range sub.C {
		if ev.Type != service.EventTradeBatch {
			continue
		}
		msg := outboundMessage{Type: "trades", Data: toTradeData(ev)}
		if err := conn.WriteJSON(msg); err != nil {
			return
		}
	}
}

func (s *Server) handleBookStream(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[wsfeed] upgrade: %v", err)
		return
	}
	defer conn.Close()

	ticker := time.NewTicker(s.bookInterval)
	defer ticker.Stop()

	for range ticker.C {
		snap, err := s.eng.Depth(s.bookDepth)
		if err != nil {
			return
		}
		msg := outboundMessage{Type: "book", Data: snap}
		if err := conn.WriteJSON(msg); err != nil {
			return
		}
	}
}

func toTradeData(ev service.EngineEvent) tradeData {
	d := tradeData{Seq: ev.Seq}
	for _, tr := range ev.Trades {
		d.Trades = append(d.Trades, tradeItem{
			Maker: tr.MakerID,
			Taker: tr.TakerID,
			Price: tr.Price,
			Qty:   tr.Qty,
		})
	}
	return d
}
