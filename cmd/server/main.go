package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"google.golang.org/grpc"

	"xchange/api/grpcserver"
	"xchange/api/httpserver"
	pb "xchange/api/pb"
	"xchange/api/wsfeed"
	"xchange/infra/metrics"
	"xchange/infra/outbox"
	"xchange/jobs/broadcaster"
	"xchange/service"
)

func main() {
	grpcAddr := getEnv("GRPC_ADDR", ":50051")
	httpAddr := getEnv("HTTP_ADDR", ":8080")
	wsAddr := getEnv("WS_ADDR", ":8081")
	outboxDir := getEnv("OUTBOX_DIR", "./outbox")
	brokers := strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ",")
	topic := getEnv("KAFKA_TOPIC", "xchange.trades")

	// ---------------- Engine ----------------

	met := metrics.New("xchange")
	eng := service.New(service.Config{Metrics: met})

	// ---------------- Egress ----------------

	box, err := outbox.Open(outboxDir)
	if err != nil {
		log.Fatalf("outbox init failed: %v", err)
	}
	defer box.Close()

	pub, err := broadcaster.NewKafkaPublisher(brokers, topic)
	if err != nil {
		log.Fatalf("kafka producer init failed: %v", err)
	}
	defer pub.Close()

	bc := broadcaster.New(eng, box, pub, 2*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bcDone := make(chan struct{})
	go func() {
		defer close(bcDone)
		bc.Run(ctx)
	}()

	// ---------------- gRPC ----------------

	lis, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		log.Fatalf("listen failed: %v", err)
	}

	grpcSrv := grpc.NewServer()
	pb.RegisterEngineServer(grpcSrv, grpcserver.NewServer(eng, bc.Hub()))

	go func() {
		if err := grpcSrv.Serve(lis); err != nil {
			log.Fatalf("gRPC server exited: %v", err)
		}
	}()

	// ---------------- HTTP + WS ----------------

	httpSrv := httpserver.NewServer(eng, met)
	go func() {
		if err := httpSrv.Run(httpAddr); err != nil {
			log.Fatalf("HTTP server exited: %v", err)
		}
	}()

	ws := wsfeed.NewServer(eng, bc.Hub())
	go func() {
		if err := http.ListenAndServe(wsAddr, ws.Routes()); err != nil {
			log.Fatalf("WS server exited: %v", err)
		}
	}()

	fmt.Printf("xchange engine up: grpc=%s http=%s ws=%s\n", grpcAddr, httpAddr, wsAddr)

	// ---------------- Shutdown ----------------

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	log.Println("[server] shutting down")

	// Hard stop: Subscribe streams hold their connections open forever, a
	// graceful stop would never return.
	grpcSrv.Stop()

	// Every accepted order is processed and every resulting event handed
	// to the broadcaster before this returns.
	eng.Shutdown()
	<-bcDone

	log.Println("[server] drained, bye")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
