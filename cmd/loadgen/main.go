// Loadgen 主程序
// 功能：模拟交易客户端。向 exchange 申请引擎分配、注册、
// 订阅回报流，并按固定速率提交随机限价单。
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	matchingv1 "github.com/wyfcoding/matchcluster/go-api/matching/v1"
	"github.com/wyfcoding/matchcluster/pkg/grpcclient"
	"github.com/wyfcoding/matchcluster/pkg/logger"
)

func main() {
	exchangeAddr := flag.String("exchange", "127.0.0.1:5000", "exchange bootstrap address")
	secret := flag.String("secret", "", "shared cluster secret")
	clients := flag.Int("clients", 4, "number of simulated clients")
	rate := flag.Duration("rate", 50*time.Millisecond, "delay between orders per client")
	symbols := flag.String("symbols", "AAPL,MSFT", "comma-separated symbols")
	duration := flag.Duration("duration", 30*time.Second, "run duration, 0 for unlimited")
	flag.Parse()

	if *secret == "" {
		fmt.Fprintln(os.Stderr, "secret is required")
		os.Exit(1)
	}

	if err := logger.Init(logger.Config{Level: "info", Format: "text"}); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	log := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if *duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *duration)
		defer cancel()
	}

	symbolList := strings.Split(*symbols, ",")
	stats := &stats{}

	g, gctx := errgroup.WithContext(ctx)
	for i := range *clients {
		clientID := fmt.Sprintf("loadgen-%d-%s", i, uuid.NewString()[:8])
		g.Go(func() error {
			return runClient(gctx, clientID, *exchangeAddr, *secret, symbolList, *rate, stats)
		})
	}
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		log.Error("load run failed", "error", err)
		os.Exit(1)
	}

	submitted, filled := stats.snapshot()
	log.Info("load run complete", "orders_submitted", submitted, "fills_received", filled)
}

type stats struct {
	mu        sync.Mutex
	submitted int
	filled    int
}

func (s *stats) addSubmitted() {
	s.mu.Lock()
	s.submitted++
	s.mu.Unlock()
}

func (s *stats) addFilled() {
	s.mu.Lock()
	s.filled++
	s.mu.Unlock()
}

func (s *stats) snapshot() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitted, s.filled
}

// runClient 单个模拟客户端的完整会话：分配、注册、订阅回报、下单循环
func runClient(ctx context.Context, clientID, exchangeAddr, secret string, symbols []string, rate time.Duration, st *stats) error {
	log := logger.Component("client").With("client_id", clientID)

	exConn, err := grpcclient.New(grpcclient.ClientConfig{Target: exchangeAddr, RequestTimeout: 5 * time.Second})
	if err != nil {
		return fmt.Errorf("dial exchange: %w", err)
	}
	defer exConn.Close()

	reg := &matchingv1.ClientRegistration{
		ClientId: clientID,
		Secret:   secret,
		X:        rand.Float64() * 100,
		Y:        rand.Float64() * 100,
	}
	assigned, err := matchingv1.NewExchangeServiceClient(exConn).AssignClient(ctx, reg)
	if err != nil {
		return fmt.Errorf("assign client: %w", err)
	}
	if assigned.GetStatus() != "SUCCESSFUL" {
		return fmt.Errorf("assignment rejected: %s", assigned.GetStatus())
	}
	engineAddr := assigned.GetMatchEngineAddress()
	log.Info("assigned to engine", "engine_addr", engineAddr)

	engConn, err := grpcclient.New(grpcclient.ClientConfig{Target: engineAddr, EnableKeepalive: true})
	if err != nil {
		return fmt.Errorf("dial engine: %w", err)
	}
	defer engConn.Close()
	engine := matchingv1.NewMatchingServiceClient(engConn)

	regReply, err := engine.RegisterClient(ctx, reg)
	if err != nil {
		return fmt.Errorf("register client: %w", err)
	}
	if regReply.GetStatus() != "SUCCESSFUL" {
		return fmt.Errorf("registration rejected: %s", regReply.GetStatus())
	}

	// 回报流单独一个 goroutine 消费
	stream, err := engine.GetFills(ctx, &matchingv1.FillStreamRequest{ClientId: clientID})
	if err != nil {
		return fmt.Errorf("open fill stream: %w", err)
	}
	go func() {
		for {
			fill, err := stream.Recv()
			if err != nil {
				if ctx.Err() == nil && !errors.Is(err, io.EOF) {
					log.Warn("fill stream closed", "error", err)
				}
				return
			}
			st.addFilled()
			log.Debug("fill received",
				"fill_id", fill.GetFillId(), "price", fill.GetPrice(), "quantity", fill.GetQuantity())
		}
	}()

	ticker := time.NewTicker(rate)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		side := "BUY"
		if rand.IntN(2) == 0 {
			side = "SELL"
		}
		order := &matchingv1.OrderRequest{
			OrderId:     uuid.NewString(),
			Symbol:      symbols[rand.IntN(len(symbols))],
			Side:        side,
			Price:       100 + float64(rand.IntN(200))/100,
			Quantity:    uint64(1 + rand.IntN(50)),
			ClientId:    clientID,
			TimestampNs: time.Now().UnixNano(),
		}
		order.RemainingQuantity = order.Quantity

		reply, err := engine.SubmitOrder(ctx, order)
		if err != nil {
			log.Warn("submit failed", "order_id", order.OrderId, "error", err)
			continue
		}
		if reply.GetStatus() != "SUCCESS" {
			log.Warn("order rejected", "order_id", order.OrderId, "error", reply.GetErrorMessage())
			continue
		}
		st.addSubmitted()
	}
}
