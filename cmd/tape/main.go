// tape tails the trade topic and prints the tape.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"xchange/infra/kafka"
)

type tapeTrade struct {
	Maker uint64 `json:"maker"`
	Taker uint64 `json:"taker"`
	Price int64  `json:"price"`
	Qty   int64  `json:"qty"`
}

type tapeEvent struct {
	V      int         `json:"v"`
	Type   string      `json:"type"`
	Seq    uint64      `json:"seq"`
	Trades []tapeTrade `json:"trades"`
}

func main() {
	brokers := flag.String("brokers", "localhost:9092", "comma-separated Kafka brokers")
	topic := flag.String("topic", "xchange.trades", "trade topic")
	group := flag.String("group", "xchange-tape", "consumer group")
	flag.Parse()

	consumer := kafka.NewConsumer(strings.Split(*brokers, ","), *topic, *group)
	defer consumer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		cancel()
	}()

	for {
		_, value, err := consumer.Next(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Fatalf("read: %v", err)
		}

		var ev tapeEvent
		if err := json.Unmarshal(value, &ev); err != nil {
			log.Printf("skip malformed event: %v", err)
			continue
		}
		for _, tr := range ev.Trades {
			fmt.Printf("seq=%d %d @ %d (maker=%d taker=%d)\n",
				ev.Seq, tr.Qty, tr.Price, tr.Maker, tr.Taker)
		}
	}
}
