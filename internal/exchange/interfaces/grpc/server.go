// Package grpc 交易所引导节点的 RPC 端点
package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	matchingv1 "github.com/wyfcoding/matchcluster/go-api/matching/v1"
	"github.com/wyfcoding/matchcluster/internal/exchange/application"
)

type Server struct {
	matchingv1.UnimplementedExchangeServiceServer
	assigner *application.Assigner
}

func NewServer(s *grpc.Server, assigner *application.Assigner) *Server {
	srv := &Server{assigner: assigner}
	matchingv1.RegisterExchangeServiceServer(s, srv)
	return srv
}

func (s *Server) AssignClient(_ context.Context, req *matchingv1.ClientRegistration) (*matchingv1.ClientRegistrationReply, error) {
	engine, err := s.assigner.Assign(req.GetClientId(), req.GetSecret(), req.GetX(), req.GetY())
	if err != nil {
		if errors.Is(err, application.ErrAuthFailed) {
			return &matchingv1.ClientRegistrationReply{Status: "REJECTED"}, nil
		}
		return nil, status.Error(codes.Unavailable, err.Error())
	}
	return &matchingv1.ClientRegistrationReply{
		Status:             "SUCCESSFUL",
		MatchEngineAddress: engine.Addr,
	}, nil
}
