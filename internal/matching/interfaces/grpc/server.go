// Package grpc 撮合引擎的 RPC 端点：客户端下单/撤单/回报流，
// 以及引擎间 gossip 与转发入口
package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	matchingv1 "github.com/wyfcoding/matchcluster/go-api/matching/v1"
	"github.com/wyfcoding/matchcluster/internal/matching/application"
	"github.com/wyfcoding/matchcluster/internal/matching/domain"
	"github.com/wyfcoding/matchcluster/internal/matching/infrastructure/peer"
)

type Server struct {
	matchingv1.UnimplementedMatchingServiceServer
	engine *application.MatchEngine
	sync   *peer.Synchronizer
}

func NewServer(s *grpc.Server, engine *application.MatchEngine, sync *peer.Synchronizer) *Server {
	srv := &Server{engine: engine, sync: sync}
	matchingv1.RegisterMatchingServiceServer(s, srv)
	return srv
}

func (s *Server) RegisterClient(_ context.Context, req *matchingv1.ClientRegistration) (*matchingv1.ClientRegistrationReply, error) {
	if err := s.engine.RegisterClient(req.GetClientId(), req.GetSecret()); err != nil {
		if errors.Is(err, application.ErrAuthFailed) {
			return &matchingv1.ClientRegistrationReply{Status: "REJECTED"}, nil
		}
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &matchingv1.ClientRegistrationReply{
		Status:             "SUCCESSFUL",
		MatchEngineAddress: s.engine.Addr(),
	}, nil
}

func (s *Server) SubmitOrder(ctx context.Context, req *matchingv1.OrderRequest) (*matchingv1.OrderReply, error) {
	order := peer.OrderFromProto(req)
	if err := s.engine.SubmitOrder(ctx, order); err != nil {
		return &matchingv1.OrderReply{
			OrderId:      req.GetOrderId(),
			Status:       "ERROR",
			ErrorMessage: err.Error(),
		}, nil
	}
	return &matchingv1.OrderReply{OrderId: req.GetOrderId(), Status: "SUCCESS"}, nil
}

func (s *Server) CancelOrder(_ context.Context, req *matchingv1.CancelRequest) (*matchingv1.CancelReply, error) {
	if err := s.engine.CancelOrder(req.GetOrderId()); err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return &matchingv1.CancelReply{OrderId: req.GetOrderId(), Status: "NOT_FOUND"}, nil
		}
		return &matchingv1.CancelReply{
			OrderId:      req.GetOrderId(),
			Status:       "ERROR",
			ErrorMessage: err.Error(),
		}, nil
	}
	return &matchingv1.CancelReply{OrderId: req.GetOrderId(), Status: "SUCCESS"}, nil
}

// GetFills 长轮询回报流：阻塞在客户端回报队列上，流取消时确定性退出
func (s *Server) GetFills(req *matchingv1.FillStreamRequest, stream grpc.ServerStreamingServer[matchingv1.FillMessage]) error {
	queue, err := s.engine.FillQueue(req.GetClientId())
	if err != nil {
		return status.Error(codes.NotFound, err.Error())
	}

	ctx := stream.Context()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fill := <-queue:
			if err := stream.Send(peer.FillToProto(fill)); err != nil {
				return err
			}
		}
	}
}

func (s *Server) GetOrderBook(_ context.Context, req *matchingv1.OrderBookRequest) (*matchingv1.OrderBookSnapshot, error) {
	seq, bids, asks := s.engine.Snapshot(req.GetSymbol())
	return &matchingv1.OrderBookSnapshot{
		Symbol:         req.GetSymbol(),
		SequenceNumber: seq,
		Bids:           peer.LevelsToProto(bids),
		Asks:           peer.LevelsToProto(asks),
	}, nil
}

func (s *Server) SyncOrderBook(_ context.Context, req *matchingv1.OrderBookUpdate) (*matchingv1.Ack, error) {
	s.sync.ApplyPeerUpdate(req)
	return &matchingv1.Ack{Ok: true}, nil
}

func (s *Server) SyncGlobalBestPrice(_ context.Context, req *matchingv1.GlobalBestPrice) (*matchingv1.Ack, error) {
	s.sync.ApplyGlobalBestPrice(req)
	return &matchingv1.Ack{Ok: true}, nil
}

func (s *Server) DeliverRoutedFill(ctx context.Context, req *matchingv1.RoutedFill) (*matchingv1.Ack, error) {
	if req.GetFill() == nil {
		return nil, status.Error(codes.InvalidArgument, "missing fill")
	}
	if err := s.engine.DeliverRoutedFill(ctx, peer.FillFromProto(req.GetFill()), req.GetClientId()); err != nil {
		return nil, status.Error(codes.NotFound, err.Error())
	}
	return &matchingv1.Ack{Ok: true}, nil
}
