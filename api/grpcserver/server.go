package grpcserver

import (
	"context"
	"log"

	pb "xchange/api/pb"
	"xchange/domain/book"
	"xchange/jobs/broadcaster"
	"xchange/service"
)

// Server adapts the Engine to gRPC.
type Server struct {
	pb.UnimplementedEngineServer
	eng *service.Engine
	hub *broadcaster.Hub[service.EngineEvent]
}

// NewServer wires the engine and the egress hub (for Subscribe streams).
func NewServer(eng *service.Engine, hub *broadcaster.Hub[service.EngineEvent]) *Server {
	return &Server{eng: eng, hub: hub}
}

// -------------------- Commands --------------------

func (s *Server) SubmitOrder(
	ctx context.Context,
	req *pb.SubmitOrderRequest,
) (*pb.SubmitOrderResponse, error) {
	err := s.eng.Submit(book.Order{
		ID:    req.Id,
		Side:  toSide(req.Side),
		Price: req.Price,
		Qty:   req.Qty,
	})
	if err != nil {
		return &pb.SubmitOrderResponse{
			Accepted: false,
			Error:    err.Error(),
		}, nil
	}

	log.Printf("[grpc] SubmitOrder id=%d side=%v price=%d qty=%d",
		req.Id, req.Side, req.Price, req.Qty)

	return &pb.SubmitOrderResponse{Accepted: true}, nil
}

func (s *Server) CancelOrder(
	ctx context.Context,
	req *pb.CancelOrderRequest,
) (*pb.CancelOrderResponse, error) {
	s.eng.Cancel(req.Id)

	log.Printf("[grpc] CancelOrder id=%d", req.Id)

	return &pb.CancelOrderResponse{Accepted: true}, nil
}

// -------------------- Queries --------------------

func (s *Server) TopOfBook(
	ctx context.Context,
	req *pb.TopOfBookRequest,
) (*pb.TopOfBookResponse, error) {
	resp := &pb.TopOfBookResponse{}
	if px, ok := s.eng.BestBid(); ok {
		resp.HasBid = true
		resp.Bid = px
	}
	if px, ok := s.eng.BestAsk(); ok {
		resp.HasAsk = true
		resp.Ask = px
	}
	return resp, nil
}

// Subscribe streams trade batches until the client goes away.
func (s *Server) Subscribe(
	req *pb.SubscribeRequest,
	stream pb.Engine_SubscribeServer,
) error {
	sub := s.hub.Subscribe(256)
	defer s.hub.Unsubscribe(sub)

	for {
		select {
		case <-stream.Context().Done():
			return stream.Context().Err()
		case ev, ok := <-sub.C:
			if !ok {
				return nil
			}
			if ev.Type != service.EventTradeBatch {
				continue
			}
			if err := stream.Send(toTradeBatch(ev)); err != nil {
				return err
			}
		}
	}
}

// -------------------- Converters --------------------

func toSide(s pb.Side) book.Side {
	if s == pb.Side_SIDE_SELL {
		return book.Sell
	}
	return book.Buy
}

func toTradeBatch(ev service.EngineEvent) *pb.TradeBatch {
	batch := &pb.TradeBatch{Seq: ev.Seq}
	for _, tr := range ev.Trades {
		batch.Trades = append(batch.Trades, &pb.Trade{
			MakerId: tr.MakerID,
			TakerId: tr.TakerID,
			Price:   tr.Price,
			Qty:     tr.Qty,
		})
	}
	return batch
}
