// Package application 实现撮合引擎的应用服务：订单准入、本地/转发决策、
// 回报分发与客户端路由表维护
package application

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wyfcoding/matchcluster/internal/matching/domain"
	"github.com/wyfcoding/matchcluster/pkg/metrics"
)

var (
	// ErrAuthFailed 注册密钥校验失败
	ErrAuthFailed = errors.New("auth failed")
	// ErrUnknownClient 客户端未在本引擎注册
	ErrUnknownClient = errors.New("unknown client")
	// ErrRouteFailed 订单转发到对端失败，瞬态错误，调用方可重试
	ErrRouteFailed = errors.New("route failed")
	// ErrShuttingDown 引擎已进入停机流程，不再接单
	ErrShuttingDown = errors.New("engine shutting down")
	// ErrRemoteOrder 订单已整单转发，真实订单在对端簿上，本引擎无法撤
	ErrRemoteOrder = errors.New("order resides on a peer engine")
)

// PeerRouter 同步器向引擎提供的对端能力：最优报价查询、订单转发与回报回送
type PeerRouter interface {
	// LookupBBOEngine 返回该订单方向上当前报价最优的引擎地址；
	// 没有严格更优的对端时返回本引擎地址
	LookupBBOEngine(order *domain.Order) string
	// RouteOrder 把订单一次性转发给目标引擎
	RouteOrder(ctx context.Context, order *domain.Order, dstAddr string) error
	// RouteFill 把回报送回客户端的 origin 引擎
	RouteFill(ctx context.Context, fill *domain.Fill, clientID, dstAddr string) error
	// PublishUpdate 向 gossip 通道发布本地订单簿变更
	PublishUpdate(symbol string, bids, asks []domain.Level)
}

// FillRecorder 成交流水落库接口，可选
type FillRecorder interface {
	Record(ctx context.Context, fill *domain.Fill) error
}

// MatchEngine 单个撮合引擎节点。持有本节点全部订单簿、客户端回报队列
// 与 client→origin 路由表；通过 PeerRouter 与集群其他引擎交互。
type MatchEngine struct {
	id     string
	addr   string
	secret string

	peers    PeerRouter
	recorder FillRecorder
	metrics  *metrics.Metrics
	logger   *slog.Logger

	queueSize int

	bookMu sync.RWMutex
	books  map[string]*domain.OrderBook

	// orderMu 保护订单索引与重复提交缓存
	orderMu sync.Mutex
	orders  map[string]*domain.Order
	// submitted 记录已受理订单的处理结果，重复 order_id 直接重放
	submitted map[string]error
	// inflight 占位正在受理中的 order_id，并发重复提交只放行一个
	inflight map[string]struct{}
	// routedAway 记录整单转发出去的订单及其目标引擎
	routedAway map[string]string

	// clientMu 保护客户端注册表、回报队列与路由表
	clientMu sync.Mutex
	queues   map[string]chan *domain.Fill
	routing  map[string]string

	seq      atomic.Uint64
	draining atomic.Bool
}

// NewMatchEngine 创建撮合引擎。peers 可在构造后通过 SetPeerRouter 注入，
// 以解决引擎与同步器的相互引用。
func NewMatchEngine(id, addr, secret string, queueSize int, m *metrics.Metrics, logger *slog.Logger) *MatchEngine {
	if queueSize <= 0 {
		queueSize = 1024
	}
	return &MatchEngine{
		id:         id,
		addr:       addr,
		secret:     secret,
		metrics:    m,
		logger:     logger,
		queueSize:  queueSize,
		books:      make(map[string]*domain.OrderBook),
		orders:     make(map[string]*domain.Order),
		submitted:  make(map[string]error),
		inflight:   make(map[string]struct{}),
		routedAway: make(map[string]string),
		queues:     make(map[string]chan *domain.Fill),
		routing:    make(map[string]string),
	}
}

// SetPeerRouter 注入同步器句柄，构造期 wiring 专用
func (e *MatchEngine) SetPeerRouter(p PeerRouter) {
	e.peers = p
}

// SetFillRecorder 注入成交流水存储，留空则纯内存运行
func (e *MatchEngine) SetFillRecorder(r FillRecorder) {
	e.recorder = r
}

// Addr 返回本引擎对外地址
func (e *MatchEngine) Addr() string {
	return e.addr
}

// ID 返回引擎标识
func (e *MatchEngine) ID() string {
	return e.id
}

// RegisterClient 注册客户端并创建回报队列。密钥错误拒绝；
// 重复注册是幂等的空操作，只记一条警告。
func (e *MatchEngine) RegisterClient(clientID, secret string) error {
	if subtle.ConstantTimeCompare([]byte(secret), []byte(e.secret)) != 1 {
		return ErrAuthFailed
	}

	e.clientMu.Lock()
	defer e.clientMu.Unlock()
	if _, ok := e.queues[clientID]; ok {
		e.logger.Warn("client already registered", "client_id", clientID)
		return nil
	}
	e.queues[clientID] = make(chan *domain.Fill, e.queueSize)
	e.metrics.ClientsActive.Inc()
	e.logger.Info("client registered", "client_id", clientID)
	return nil
}

// FillQueue 返回客户端的回报队列，供长轮询流端点消费
func (e *MatchEngine) FillQueue(clientID string) (<-chan *domain.Fill, error) {
	e.clientMu.Lock()
	defer e.clientMu.Unlock()
	q, ok := e.queues[clientID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownClient, clientID)
	}
	return q, nil
}

// SubmitOrder 订单准入与路由闸门。
// 先查全局 BBO：存在严格更优对端且订单尚未转发过（origin 为本引擎）
// 时整单转发，否则无条件本地撮合。转发最多发生一次。
func (e *MatchEngine) SubmitOrder(ctx context.Context, order *domain.Order) error {
	if e.draining.Load() {
		return ErrShuttingDown
	}
	if err := order.Validate(); err != nil {
		e.metrics.OrdersRejected.Inc()
		return err
	}
	if order.Remaining != order.Quantity {
		e.logger.Warn("remaining_quantity mismatch, treating as fresh order",
			"order_id", order.OrderID, "remaining", order.Remaining, "quantity", order.Quantity)
	}

	// origin 引擎在受理时盖章，之后任何对端不得改写
	if order.OriginAddr == "" {
		order.OriginAddr = e.addr
	}

	// 查缓存与占位必须在同一临界区内完成，并发重复提交只放行一个
	e.orderMu.Lock()
	if prior, ok := e.submitted[order.OrderID]; ok {
		e.orderMu.Unlock()
		e.logger.Warn("duplicate order id, replaying prior result", "order_id", order.OrderID)
		return prior
	}
	if _, busy := e.inflight[order.OrderID]; busy {
		e.orderMu.Unlock()
		e.logger.Warn("concurrent duplicate submit rejected", "order_id", order.OrderID)
		return fmt.Errorf("%w: %s", domain.ErrDuplicateOrder, order.OrderID)
	}
	e.inflight[order.OrderID] = struct{}{}
	e.orderMu.Unlock()

	bestAddr := e.peers.LookupBBOEngine(order)
	if bestAddr != e.addr && order.OriginAddr == e.addr {
		if err := e.peers.RouteOrder(ctx, order, bestAddr); err != nil {
			// 转发失败不缓存结果，释放占位让调用方重试
			e.orderMu.Lock()
			delete(e.inflight, order.OrderID)
			e.orderMu.Unlock()
			e.logger.Error("order route failed", "order_id", order.OrderID, "dst", bestAddr, "error", err)
			return fmt.Errorf("%w: %s: %v", ErrRouteFailed, bestAddr, err)
		}
		e.metrics.OrdersRouted.Inc()
		e.orderMu.Lock()
		e.routedAway[order.OrderID] = bestAddr
		e.orderMu.Unlock()
		e.rememberSubmit(order, nil)
		e.logger.Info("order routed to better peer",
			"order_id", order.OrderID, "symbol", order.Symbol, "dst", bestAddr)
		return nil
	}

	return e.matchLocally(ctx, order)
}

// matchLocally 本地撮合：登记路由表、撮合、分发回报、发布快照
func (e *MatchEngine) matchLocally(ctx context.Context, order *domain.Order) error {
	e.clientMu.Lock()
	if _, ok := e.routing[order.ClientID]; !ok {
		e.routing[order.ClientID] = order.OriginAddr
	}
	e.clientMu.Unlock()

	book := e.book(order.Symbol)

	start := time.Now()
	result, err := book.AddOrder(order)
	e.metrics.MatchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		e.metrics.OrdersRejected.Inc()
		e.rememberSubmit(order, err)
		return err
	}

	e.metrics.OrdersTotal.Inc()
	e.rememberSubmit(order, nil)
	e.logger.Debug("order matched",
		"order_id", order.OrderID, "symbol", order.Symbol,
		"fills", len(result.IncomingFills), "remaining", order.Remaining)

	for i := range result.IncomingFills {
		e.dispatchFill(ctx, result.IncomingFills[i])
		e.dispatchFill(ctx, result.RestingFills[i])
	}

	e.publish(book)
	return nil
}

// dispatchFill 把一条回报送达被通知客户端：本地注册的客户端入队，
// 远端客户端按路由表回送 origin 引擎，查不到路由则丢弃并报错。
func (e *MatchEngine) dispatchFill(ctx context.Context, fill *domain.Fill) {
	e.metrics.FillsTotal.Inc()
	if e.recorder != nil {
		if err := e.recorder.Record(ctx, fill); err != nil {
			e.logger.Error("fill journal write failed", "fill_id", fill.FillID, "error", err)
		}
	}

	clientID := fill.NotifiedClient()

	e.clientMu.Lock()
	queue, local := e.queues[clientID]
	dstAddr, routed := e.routing[clientID]
	e.clientMu.Unlock()

	if local {
		e.enqueue(ctx, queue, fill, clientID)
		return
	}
	if routed && dstAddr != e.addr {
		if err := e.peers.RouteFill(ctx, fill, clientID, dstAddr); err != nil {
			e.logger.Error("fill route failed",
				"fill_id", fill.FillID, "client_id", clientID, "dst", dstAddr, "error", err)
			e.metrics.FillsDropped.Inc()
			return
		}
		e.metrics.FillsRouted.Inc()
		return
	}

	e.logger.Error("no routing entry for fill, dropping",
		"fill_id", fill.FillID, "client_id", clientID)
	e.metrics.FillsDropped.Inc()
}

func (e *MatchEngine) enqueue(ctx context.Context, queue chan *domain.Fill, fill *domain.Fill, clientID string) {
	select {
	case queue <- fill:
		e.metrics.FillQueueDepth.Set(float64(len(queue)))
	case <-ctx.Done():
		e.logger.Error("fill enqueue abandoned", "fill_id", fill.FillID, "client_id", clientID)
		e.metrics.FillsDropped.Inc()
	}
}

// CancelOrder 撤单。未知订单返回 NOT_FOUND；已撤订单为幂等空操作；
// 已转发出去的订单真身在对端簿上，本引擎拒撤；已入队的回报不受影响。
func (e *MatchEngine) CancelOrder(orderID string) error {
	e.orderMu.Lock()
	order, ok := e.orders[orderID]
	dst, routed := e.routedAway[orderID]
	e.orderMu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrOrderNotFound, orderID)
	}
	if routed {
		e.logger.Warn("cancel refused, order routed to peer", "order_id", orderID, "dst", dst)
		return fmt.Errorf("%w: %s routed to %s", ErrRemoteOrder, orderID, dst)
	}
	if order.Status == domain.StatusCancelled {
		return nil
	}

	book := e.book(order.Symbol)
	book.Remove(order)
	order.Status = domain.StatusCancelled
	e.logger.Info("order cancelled", "order_id", orderID, "symbol", order.Symbol)

	e.publish(book)
	return nil
}

// DeliverRoutedFill 接收对端回送的回报。客户端必须在本引擎注册，
// 否则说明集群路由表失配，丢弃并报错。
func (e *MatchEngine) DeliverRoutedFill(ctx context.Context, fill *domain.Fill, clientID string) error {
	e.clientMu.Lock()
	queue, ok := e.queues[clientID]
	e.clientMu.Unlock()
	if !ok {
		e.logger.Error("routed fill for unregistered client, dropping",
			"fill_id", fill.FillID, "client_id", clientID)
		e.metrics.FillsDropped.Inc()
		return fmt.Errorf("%w: %s", ErrUnknownClient, clientID)
	}
	e.enqueue(ctx, queue, fill, clientID)
	return nil
}

// Snapshot 返回品种的聚合订单簿视图与本引擎当前序列号。
// 未见过的品种返回空簿。
func (e *MatchEngine) Snapshot(symbol string) (seq uint64, bids, asks []domain.Level) {
	e.bookMu.RLock()
	book, ok := e.books[symbol]
	e.bookMu.RUnlock()
	if !ok {
		return e.seq.Load(), nil, nil
	}
	bids, asks = book.Snapshot()
	return e.seq.Load(), bids, asks
}

// Symbols 返回本引擎已建簿的品种列表
func (e *MatchEngine) Symbols() []string {
	e.bookMu.RLock()
	defer e.bookMu.RUnlock()
	symbols := make([]string, 0, len(e.books))
	for s := range e.books {
		symbols = append(symbols, s)
	}
	return symbols
}

// LocalBest 返回品种的本地盘口
func (e *MatchEngine) LocalBest(symbol string) (bid, ask decimal.Decimal, hasBid, hasAsk bool) {
	e.bookMu.RLock()
	book, ok := e.books[symbol]
	e.bookMu.RUnlock()
	if !ok {
		return decimal.Decimal{}, decimal.Decimal{}, false, false
	}
	bid, hasBid = book.BestBid()
	ask, hasAsk = book.BestAsk()
	return bid, ask, hasBid, hasAsk
}

// Drain 进入停机流程：拒收新订单，等待回报队列排空或宽限期用尽
func (e *MatchEngine) Drain(grace time.Duration) {
	e.draining.Store(true)
	deadline := time.Now().Add(grace)
	for time.Now().Before(deadline) {
		if e.pendingFills() == 0 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	e.logger.Warn("drain grace elapsed with pending fills", "pending", e.pendingFills())
}

func (e *MatchEngine) pendingFills() int {
	e.clientMu.Lock()
	defer e.clientMu.Unlock()
	var n int
	for _, q := range e.queues {
		n += len(q)
	}
	return n
}

// book 按需建簿
func (e *MatchEngine) book(symbol string) *domain.OrderBook {
	e.bookMu.RLock()
	book, ok := e.books[symbol]
	e.bookMu.RUnlock()
	if ok {
		return book
	}

	e.bookMu.Lock()
	defer e.bookMu.Unlock()
	if book, ok = e.books[symbol]; ok {
		return book
	}
	book = domain.NewOrderBook(symbol)
	e.books[symbol] = book
	return book
}

// publish 推进序列号并把最新快照交给同步器广播
func (e *MatchEngine) publish(book *domain.OrderBook) {
	e.seq.Add(1)
	bids, asks := book.Snapshot()
	e.peers.PublishUpdate(book.Symbol(), bids, asks)
}

// rememberSubmit 缓存订单与受理结果并释放受理占位，重复提交时原样重放
func (e *MatchEngine) rememberSubmit(order *domain.Order, result error) {
	e.orderMu.Lock()
	e.orders[order.OrderID] = order
	e.submitted[order.OrderID] = result
	delete(e.inflight, order.OrderID)
	e.orderMu.Unlock()
}
