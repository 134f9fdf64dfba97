package application

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wyfcoding/matchcluster/internal/matching/domain"
	"github.com/wyfcoding/matchcluster/pkg/metrics"
)

const (
	testSecret = "cluster-secret"
	selfAddr   = "127.0.0.1:5001"
	peerAddr   = "127.0.0.1:5002"
)

type routedFill struct {
	fill     *domain.Fill
	clientID string
	dstAddr  string
}

// fakeRouter 进程内 PeerRouter 替身，记录全部转发调用
type fakeRouter struct {
	mu           sync.Mutex
	self         string
	best         map[string]string
	routeOrderFn func(order *domain.Order, dstAddr string) error
	routedOrders []*domain.Order
	routedFills  []routedFill
	published    int
}

func (f *fakeRouter) LookupBBOEngine(order *domain.Order) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if addr, ok := f.best[order.Symbol]; ok {
		return addr
	}
	return f.self
}

func (f *fakeRouter) RouteOrder(_ context.Context, order *domain.Order, dstAddr string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.routeOrderFn != nil {
		if err := f.routeOrderFn(order, dstAddr); err != nil {
			return err
		}
	}
	f.routedOrders = append(f.routedOrders, order)
	return nil
}

func (f *fakeRouter) RouteFill(_ context.Context, fill *domain.Fill, clientID, dstAddr string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routedFills = append(f.routedFills, routedFill{fill: fill, clientID: clientID, dstAddr: dstAddr})
	return nil
}

func (f *fakeRouter) PublishUpdate(string, []domain.Level, []domain.Level) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.published++
}

func newTestEngine(t *testing.T) (*MatchEngine, *fakeRouter) {
	t.Helper()
	router := &fakeRouter{self: selfAddr, best: map[string]string{}}
	engine := NewMatchEngine("engine-1", selfAddr, testSecret, 64, metrics.Nop(), slog.Default())
	engine.SetPeerRouter(router)
	return engine, router
}

func newEngineOrder(id, clientID string, side domain.Side, price string, qty uint64) *domain.Order {
	return &domain.Order{
		OrderID:   id,
		ClientID:  clientID,
		Symbol:    "X",
		Side:      side,
		Price:     decimal.RequireFromString(price),
		Quantity:  qty,
		Remaining: qty,
	}
}

// TestRegisterClient 密钥校验与幂等注册
func TestRegisterClient(t *testing.T) {
	engine, _ := newTestEngine(t)

	assert.ErrorIs(t, engine.RegisterClient("alice", "wrong"), ErrAuthFailed)

	require.NoError(t, engine.RegisterClient("alice", testSecret))
	require.NoError(t, engine.RegisterClient("alice", testSecret), "re-register is a no-op")

	_, err := engine.FillQueue("alice")
	assert.NoError(t, err)
	_, err = engine.FillQueue("bob")
	assert.ErrorIs(t, err, ErrUnknownClient)
}

// TestSubmitLocalMatchDeliversFills 本地撮合后双方回报进各自队列
func TestSubmitLocalMatchDeliversFills(t *testing.T) {
	engine, router := newTestEngine(t)
	require.NoError(t, engine.RegisterClient("alice", testSecret))
	require.NoError(t, engine.RegisterClient("bob", testSecret))

	ctx := context.Background()
	require.NoError(t, engine.SubmitOrder(ctx, newEngineOrder("S1", "alice", domain.SideSell, "100.00", 10)))
	require.NoError(t, engine.SubmitOrder(ctx, newEngineOrder("B1", "bob", domain.SideBuy, "100.00", 4)))

	aliceQ, _ := engine.FillQueue("alice")
	bobQ, _ := engine.FillQueue("bob")
	require.Len(t, bobQ, 1)
	require.Len(t, aliceQ, 1)

	buyerFill := <-bobQ
	sellerFill := <-aliceQ
	assert.Equal(t, buyerFill.FillID, sellerFill.FillID)
	assert.Equal(t, uint64(4), buyerFill.Quantity)
	assert.Equal(t, "bob", buyerFill.BuyerID)
	assert.Equal(t, "alice", buyerFill.SellerID)
	// 回报归属：送达客户端的回报必有一侧是该客户端
	assert.Equal(t, "bob", buyerFill.NotifiedClient())
	assert.Equal(t, "alice", sellerFill.NotifiedClient())

	// 每次状态变更后都发布快照
	assert.GreaterOrEqual(t, router.published, 2)
}

// TestRoutingGateForwardsOnce 存在严格更优对端且订单未转发过时整单转发
func TestRoutingGateForwardsOnce(t *testing.T) {
	engine, router := newTestEngine(t)
	router.best["X"] = peerAddr

	order := newEngineOrder("B1", "alice", domain.SideBuy, "101", 3)
	require.NoError(t, engine.SubmitOrder(context.Background(), order))

	require.Len(t, router.routedOrders, 1)
	assert.Equal(t, "B1", router.routedOrders[0].OrderID)
	// origin 由本引擎盖章，转发不改写
	assert.Equal(t, selfAddr, router.routedOrders[0].OriginAddr)

	// 订单没有进本地簿
	_, bids, asks := engine.Snapshot("X")
	assert.Empty(t, bids)
	assert.Empty(t, asks)
}

// TestRoutedOrderProcessedLocally 已转发过的订单（origin ≠ self）
// 必须本地处理，即使 gossip 仍宣称对端更优，防止路由环
func TestRoutedOrderProcessedLocally(t *testing.T) {
	engine, router := newTestEngine(t)
	router.best["X"] = peerAddr

	order := newEngineOrder("B1", "alice", domain.SideBuy, "101", 3)
	order.OriginAddr = peerAddr
	require.NoError(t, engine.SubmitOrder(context.Background(), order))

	assert.Empty(t, router.routedOrders, "rerouted order must not be forwarded again")
	_, bids, _ := engine.Snapshot("X")
	require.Len(t, bids, 1)
	assert.Equal(t, uint64(3), bids[0].Quantity)
}

// TestRouteFailureNotQueuedLocally 转发失败返回瞬态错误，订单不落本地簿
func TestRouteFailureNotQueuedLocally(t *testing.T) {
	engine, router := newTestEngine(t)
	router.best["X"] = peerAddr
	router.routeOrderFn = func(*domain.Order, string) error {
		return errors.New("peer unreachable")
	}

	err := engine.SubmitOrder(context.Background(), newEngineOrder("B1", "alice", domain.SideBuy, "101", 3))
	assert.ErrorIs(t, err, ErrRouteFailed)

	_, bids, _ := engine.Snapshot("X")
	assert.Empty(t, bids)

	// 转发失败不缓存结果，重试可以走通
	router.routeOrderFn = nil
	require.NoError(t, engine.SubmitOrder(context.Background(), newEngineOrder("B1", "alice", domain.SideBuy, "101", 3)))
	assert.Len(t, router.routedOrders, 1)
}

// TestRemoteClientFillRoutedBack 被动方客户端注册在对端时，
// 其回报按路由表回送 origin 引擎
func TestRemoteClientFillRoutedBack(t *testing.T) {
	engine, router := newTestEngine(t)
	require.NoError(t, engine.RegisterClient("bob", testSecret))

	ctx := context.Background()

	// carol 的卖单从对端转发而来，origin 为对端地址
	remote := newEngineOrder("S1", "carol", domain.SideSell, "100", 10)
	remote.OriginAddr = peerAddr
	require.NoError(t, engine.SubmitOrder(ctx, remote))

	require.NoError(t, engine.SubmitOrder(ctx, newEngineOrder("B1", "bob", domain.SideBuy, "100", 4)))

	bobQ, _ := engine.FillQueue("bob")
	assert.Len(t, bobQ, 1)

	require.Len(t, router.routedFills, 1)
	assert.Equal(t, "carol", router.routedFills[0].clientID)
	assert.Equal(t, peerAddr, router.routedFills[0].dstAddr)
	assert.Equal(t, uint64(4), router.routedFills[0].fill.Quantity)
}

// TestUnknownClientFillDropped 路由表无记录的回报被丢弃，撮合不受影响
func TestUnknownClientFillDropped(t *testing.T) {
	engine, router := newTestEngine(t)
	require.NoError(t, engine.RegisterClient("bob", testSecret))

	ctx := context.Background()

	// 直接塞一笔无注册也无路由记录的被动单
	resting := newEngineOrder("S1", "ghost", domain.SideSell, "100", 4)
	resting.OriginAddr = selfAddr
	require.NoError(t, engine.SubmitOrder(ctx, resting))

	// ghost 的路由表条目指向本引擎但本地未注册，回报只能丢弃
	require.NoError(t, engine.SubmitOrder(ctx, newEngineOrder("B1", "bob", domain.SideBuy, "100", 4)))

	bobQ, _ := engine.FillQueue("bob")
	assert.Len(t, bobQ, 1)
	assert.Empty(t, router.routedFills)
}

// TestDuplicateSubmitIdempotent 重复 order_id 重放先前结果，不产生新成交
func TestDuplicateSubmitIdempotent(t *testing.T) {
	engine, _ := newTestEngine(t)
	require.NoError(t, engine.RegisterClient("alice", testSecret))
	require.NoError(t, engine.RegisterClient("bob", testSecret))

	ctx := context.Background()
	require.NoError(t, engine.SubmitOrder(ctx, newEngineOrder("S1", "alice", domain.SideSell, "100", 5)))
	require.NoError(t, engine.SubmitOrder(ctx, newEngineOrder("B1", "bob", domain.SideBuy, "100", 5)))

	bobQ, _ := engine.FillQueue("bob")
	require.Len(t, bobQ, 1)

	// 原样重发：结果重放，不再进簿、不再产生回报
	require.NoError(t, engine.SubmitOrder(ctx, newEngineOrder("B1", "bob", domain.SideBuy, "100", 5)))
	assert.Len(t, bobQ, 1)

	_, bids, asks := engine.Snapshot("X")
	assert.Empty(t, bids)
	assert.Empty(t, asks)
}

// TestConcurrentDuplicateSubmitSingleAdmission 同一 order_id 并发提交，
// 后到者在受理占位上被拒，最终只有一单被受理
func TestConcurrentDuplicateSubmitSingleAdmission(t *testing.T) {
	engine, router := newTestEngine(t)
	router.best["X"] = peerAddr

	gate := make(chan struct{})
	router.routeOrderFn = func(*domain.Order, string) error {
		<-gate
		return nil
	}

	done := make(chan error, 1)
	go func() {
		done <- engine.SubmitOrder(context.Background(), newEngineOrder("B1", "alice", domain.SideBuy, "101", 3))
	}()

	// 等第一单拿到占位并阻塞在转发上
	require.Eventually(t, func() bool {
		engine.orderMu.Lock()
		_, busy := engine.inflight["B1"]
		engine.orderMu.Unlock()
		return busy
	}, time.Second, time.Millisecond)

	err := engine.SubmitOrder(context.Background(), newEngineOrder("B1", "alice", domain.SideBuy, "101", 3))
	assert.ErrorIs(t, err, domain.ErrDuplicateOrder)

	close(gate)
	require.NoError(t, <-done)
	assert.Len(t, router.routedOrders, 1)
}

// TestCancelRoutedOrderRefused 已整单转发的订单真身在对端簿上，本引擎拒撤
func TestCancelRoutedOrderRefused(t *testing.T) {
	engine, router := newTestEngine(t)
	router.best["X"] = peerAddr

	require.NoError(t, engine.SubmitOrder(context.Background(), newEngineOrder("B1", "alice", domain.SideBuy, "101", 3)))
	require.Len(t, router.routedOrders, 1)

	assert.ErrorIs(t, engine.CancelOrder("B1"), ErrRemoteOrder)
}

// TestCancelOrder 撤单路径：未知 NOT_FOUND、二次撤单幂等、撤后对手单不成交
func TestCancelOrder(t *testing.T) {
	engine, _ := newTestEngine(t)
	require.NoError(t, engine.RegisterClient("alice", testSecret))

	assert.ErrorIs(t, engine.CancelOrder("missing"), domain.ErrOrderNotFound)

	ctx := context.Background()
	require.NoError(t, engine.SubmitOrder(ctx, newEngineOrder("O1", "alice", domain.SideBuy, "100", 5)))
	require.NoError(t, engine.CancelOrder("O1"))
	require.NoError(t, engine.CancelOrder("O1"), "second cancel is a no-op")

	require.NoError(t, engine.SubmitOrder(ctx, newEngineOrder("S1", "alice", domain.SideSell, "100", 5)))
	aliceQ, _ := engine.FillQueue("alice")
	assert.Empty(t, aliceQ)

	_, bids, asks := engine.Snapshot("X")
	assert.Empty(t, bids)
	require.Len(t, asks, 1)
}

// TestDeliverRoutedFill 对端回送的回报进本地客户端队列，未注册客户端报错
func TestDeliverRoutedFill(t *testing.T) {
	engine, _ := newTestEngine(t)
	require.NoError(t, engine.RegisterClient("alice", testSecret))

	fill := &domain.Fill{
		FillID:   domain.FillID("B1", "S1"),
		OrderID:  "B1",
		Symbol:   "X",
		Side:     domain.SideBuy,
		Price:    decimal.RequireFromString("100"),
		Quantity: 3,
		BuyerID:  "alice",
		SellerID: "zed",
	}
	ctx := context.Background()
	require.NoError(t, engine.DeliverRoutedFill(ctx, fill, "alice"))

	aliceQ, _ := engine.FillQueue("alice")
	require.Len(t, aliceQ, 1)

	err := engine.DeliverRoutedFill(ctx, fill, "nobody")
	assert.ErrorIs(t, err, ErrUnknownClient)
}

// TestSubmitWhileDraining 停机排空期间拒收新订单
func TestSubmitWhileDraining(t *testing.T) {
	engine, _ := newTestEngine(t)
	engine.Drain(0)

	err := engine.SubmitOrder(context.Background(), newEngineOrder("B1", "alice", domain.SideBuy, "100", 1))
	assert.ErrorIs(t, err, ErrShuttingDown)
}
