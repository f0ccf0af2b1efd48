// loadgen submits randomized limit orders over gRPC. Demo driver only.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "xchange/api/pb"
)

func main() {
	addr := flag.String("addr", "localhost:50051", "engine gRPC address")
	totalOrders := flag.Int("orders", 10000, "number of orders to submit")
	priceLevels := flag.Int64("price-levels", 50, "unique price levels around the mid")
	basePrice := flag.Int64("base-price", 10000, "mid price used for randomization")
	maxQty := flag.Int64("max-qty", 100, "maximum order quantity")
	cancelEvery := flag.Int("cancel-every", 0, "cancel a random earlier order every N submissions")
	seed := flag.Int64("seed", time.Now().UnixNano(), "seed for deterministic random streams")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))

	conn, err := grpc.NewClient(*addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("dial %s: %v", *addr, err)
	}
	defer conn.Close()

	client := pb.NewEngineClient(conn)
	ctx := context.Background()

	start := time.Now()
	accepted := 0
	for i := 0; i < *totalOrders; i++ {
		id := uint64(i + 1)

		side := pb.Side_SIDE_BUY
		if rng.Intn(2) == 1 {
			side = pb.Side_SIDE_SELL
		}
		price := *basePrice + rng.Int63n(*priceLevels) - *priceLevels/2
		qty := 1 + rng.Int63n(*maxQty)

		resp, err := client.SubmitOrder(ctx, &pb.SubmitOrderRequest{
			Id:    id,
			Side:  side,
			Price: price,
			Qty:   qty,
		})
		if err != nil {
			log.Fatalf("submit id=%d: %v", id, err)
		}
		if resp.Accepted {
			accepted++
		}

		if *cancelEvery > 0 && i > 0 && i%*cancelEvery == 0 {
			victim := uint64(rng.Intn(i) + 1)
			if _, err := client.CancelOrder(ctx, &pb.CancelOrderRequest{Id: victim}); err != nil {
				log.Fatalf("cancel id=%d: %v", victim, err)
			}
		}
	}
	elapsed := time.Since(start)

	tob, err := client.TopOfBook(ctx, &pb.TopOfBookRequest{})
	if err != nil {
		log.Fatalf("top of book: %v", err)
	}

	fmt.Printf("submitted %d orders (%d accepted) in %s (%.0f/s)\n",
		*totalOrders, accepted, elapsed, float64(*totalOrders)/elapsed.Seconds())
	if tob.HasBid {
		fmt.Printf("best bid: %d\n", tob.Bid)
	}
	if tob.HasAsk {
		fmt.Printf("best ask: %d\n", tob.Ask)
	}
}
