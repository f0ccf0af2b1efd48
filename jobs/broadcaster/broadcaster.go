// Package broadcaster fans engine events out of the process: to the Kafka
// trade topic (at-least-once, tracked in the outbox) and to in-process
// subscribers (websocket feed, gRPC streams) via the hub.
package broadcaster

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"time"

	"github.com/IBM/sarama"

	"xchange/infra/outbox"
	"xchange/service"
)

// EventSource is the draining half of the engine's consumer API.
type EventSource interface {
	WaitEvent() (service.EngineEvent, bool)
}

// Publisher delivers one payload to the external transport.
type Publisher interface {
	Publish(key, value []byte) error
	Close() error
}

// -------------------- Kafka publisher --------------------

type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

func NewKafkaPublisher(brokers []string, topic string) (*KafkaPublisher, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}
	return &KafkaPublisher{producer: producer, topic: topic}, nil
}

func (p *KafkaPublisher) Publish(key, value []byte) error {
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.ByteEncoder(key),
		Value: sarama.ByteEncoder(value),
	}
	_, _, err := p.producer.SendMessage(msg)
	return err
}

func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}

// -------------------- Wire format --------------------

type wireTrade struct {
	Maker uint64 `json:"maker"`
	Taker uint64 `json:"taker"`
	Price int64  `json:"price"`
	Qty   int64  `json:"qty"`
}

type wireEvent struct {
	V      int         `json:"v"`
	Type   string      `json:"type"`
	Seq    uint64      `json:"seq"`
	Trades []wireTrade `json:"trades,omitempty"`
}

func encodeEvent(ev service.EngineEvent) ([]byte, error) {
	w := wireEvent{V: 1, Type: "trade_batch", Seq: ev.Seq}
	for _, tr := range ev.Trades {
		w.Trades = append(w.Trades, wireTrade{
			Maker: tr.MakerID,
			Taker: tr.TakerID,
			Price: tr.Price,
			Qty:   tr.Qty,
		})
	}
	return json.Marshal(w)
}

// -------------------- Broadcaster --------------------

type Broadcaster struct {
	src      EventSource
	box      *outbox.Outbox
	pub      Publisher
	hub      *Hub[service.EngineEvent]
	interval time.Duration
}

func New(src EventSource, box *outbox.Outbox, pub Publisher, interval time.Duration) *Broadcaster {
	return &Broadcaster{
		src:      src,
		box:      box,
		pub:      pub,
		hub:      NewHub[service.EngineEvent](),
		interval: interval,
	}
}

// Hub exposes the in-process fan-out for feed servers.
func (b *Broadcaster) Hub() *Hub[service.EngineEvent] {
	return b.hub
}

// Run drains the event source until it closes. A side loop retries
// undelivered outbox entries every interval. Run returns once the source
// is closed and drained; ctx stops the retry loop.
func (b *Broadcaster) Run(ctx context.Context) {
	log.Println("[broadcaster] started")

	retryCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go b.retryLoop(retryCtx)

	for {
		ev, ok := b.src.WaitEvent()
		if !ok {
			log.Println("[broadcaster] event source drained, exiting")
			return
		}
		b.handle(ev)
	}
}

func (b *Broadcaster) handle(ev service.EngineEvent) {
	b.hub.Broadcast(ev)

	if ev.Type != service.EventTradeBatch {
		return
	}

	payload, err := encodeEvent(ev)
	if err != nil {
		log.Printf("[broadcaster] encode seq=%d: %v", ev.Seq, err)
		return
	}
	if err := b.box.PutNew(ev.Seq, payload); err != nil {
		log.Printf("[broadcaster] outbox put seq=%d: %v", ev.Seq, err)
		return
	}
	b.attempt(ev.Seq, payload)
}

// attempt publishes one outbox entry and records the outcome.
func (b *Broadcaster) attempt(seq uint64, payload []byte) {
	_ = b.box.MarkSent(seq)

	key := []byte(strconv.FormatUint(seq, 10))
	if err := b.pub.Publish(key, payload); err != nil {
		log.Printf("[broadcaster] publish seq=%d: %v", seq, err)
		_ = b.box.MarkFailed(seq)
		return
	}
	_ = b.box.MarkAcked(seq)
}

func (b *Broadcaster) retryLoop(ctx context.Context) {
	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			b.replayPending()
		}
	}
}

func (b *Broadcaster) replayPending() {
	_ = b.box.ScanPending(func(seq uint64, rec outbox.Record) error {
		b.attempt(seq, rec.Payload)
		return nil
	})
}
