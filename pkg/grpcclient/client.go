// Package grpcclient 提供 gRPC 客户端工厂，支持超时、keepalive 与连接退避
package grpcclient

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/backoff"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"
)

// ClientConfig gRPC 客户端配置
type ClientConfig struct {
	// 目标地址
	Target string
	// 连接退避上限
	MaxConnBackoff time.Duration
	// 请求默认超时，零值表示不注入
	RequestTimeout time.Duration
	// 是否启用 keepalive
	EnableKeepalive bool
	// keepalive 间隔
	KeepaliveInterval time.Duration
}

// New 创建 gRPC 客户端连接。连接是惰性的，拨号失败在首个 RPC 时暴露。
func New(cfg ClientConfig) (*grpc.ClientConn, error) {
	if cfg.MaxConnBackoff <= 0 {
		cfg.MaxConnBackoff = 10 * time.Second
	}

	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithConnectParams(grpc.ConnectParams{
			Backoff: backoff.Config{
				BaseDelay:  100 * time.Millisecond,
				MaxDelay:   cfg.MaxConnBackoff,
				Multiplier: 1.6,
				Jitter:     0.2,
			},
		}),
	}

	if cfg.EnableKeepalive {
		interval := cfg.KeepaliveInterval
		if interval <= 0 {
			interval = 30 * time.Second
		}
		opts = append(opts, grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                interval,
			Timeout:             10 * time.Second,
			PermitWithoutStream: true,
		}))
	}

	if cfg.RequestTimeout > 0 {
		opts = append(opts, grpc.WithUnaryInterceptor(timeoutInterceptor(cfg.RequestTimeout)))
	}

	return grpc.NewClient(cfg.Target, opts...)
}

// timeoutInterceptor 为没有截止时间的一元调用注入默认超时
func timeoutInterceptor(timeout time.Duration) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		if _, ok := ctx.Deadline(); !ok {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		return invoker(ctx, method, req, reply, cc, opts...)
	}
}
