package grpc

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"

	matchingv1 "github.com/wyfcoding/matchcluster/go-api/matching/v1"
	"github.com/wyfcoding/matchcluster/internal/exchange/application"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	engines := []application.Engine{{ID: "engine-1", Addr: "127.0.0.1:5001"}}
	assigner := application.NewAssigner("secret", engines, application.RandomPolicy{}, slog.Default())
	return NewServer(grpc.NewServer(), assigner)
}

// TestAssignClient 分配端点的状态映射
func TestAssignClient(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	reply, err := srv.AssignClient(ctx, &matchingv1.ClientRegistration{ClientId: "alice", Secret: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "SUCCESSFUL", reply.GetStatus())
	assert.Equal(t, "127.0.0.1:5001", reply.GetMatchEngineAddress())

	reply, err = srv.AssignClient(ctx, &matchingv1.ClientRegistration{ClientId: "mallory", Secret: "wrong"})
	require.NoError(t, err)
	assert.Equal(t, "REJECTED", reply.GetStatus())
}
