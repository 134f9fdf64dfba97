package peer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	matchingv1 "github.com/wyfcoding/matchcluster/go-api/matching/v1"
	"github.com/wyfcoding/matchcluster/internal/matching/domain"
	"github.com/wyfcoding/matchcluster/pkg/grpcclient"
	"github.com/wyfcoding/matchcluster/pkg/metrics"
)

// ErrPeerRejected 对端受理订单失败
var ErrPeerRejected = errors.New("peer rejected order")

// BookSource 引擎向同步器提供的本地订单簿能力
type BookSource interface {
	// Snapshot 返回品种聚合快照与本引擎序列号
	Snapshot(symbol string) (seq uint64, bids, asks []domain.Level)
	// Symbols 返回已建簿品种
	Symbols() []string
	// LocalBest 返回本地盘口
	LocalBest(symbol string) (bid, ask decimal.Decimal, hasBid, hasAsk bool)
}

// Config 同步器配置
type Config struct {
	EngineID string
	Addr     string
	Peers    []string
	// gossip 轮询间隔，上限 100ms
	Interval time.Duration
	// 对端快照拉取超时
	PullTimeout time.Duration
	// 订单转发超时
	RouteTimeout time.Duration
	// 出站更新队列容量
	UpdateQueueSize int
}

// bboEntry 单侧最优报价及其归属引擎
type bboEntry struct {
	price      decimal.Decimal
	engineID   string
	engineAddr string
}

// contribution 单个对端在某品种上宣告的盘口
type contribution struct {
	engineID       string
	bid, ask       decimal.Decimal
	hasBid, hasAsk bool
}

// update 待广播的本地快照
type update struct {
	symbol     string
	seq        uint64
	bids, asks []domain.Level
}

// Synchronizer 引擎间同步器。gossip 循环持续广播本地快照并拉取对端簿，
// 聚合出每个品种的全局 BBO；同时承担订单一跳转发与回报回送。
type Synchronizer struct {
	cfg     Config
	source  BookSource
	logger  *slog.Logger
	metrics *metrics.Metrics

	conns map[string]*grpc.ClientConn
	stubs map[string]matchingv1.MatchingServiceClient

	updates chan update
	seq     atomic.Uint64

	// mu 覆盖 BBO 视图、对端贡献、序列号水位与已转发订单集合。
	// 对端贡献与水位一律以可拨号地址为键，推送与拉取共用同一身份，
	// 同一对端不会出现两份贡献。
	mu            sync.Mutex
	bids          map[string]bboEntry
	asks          map[string]bboEntry
	contributions map[string]map[string]contribution
	peerSeq       map[string]uint64
	routedOrders  map[string]struct{}
}

// NewSynchronizer 创建同步器并拨号全部对端。连接是惰性的，
// 对端不可达在首个 RPC 时才暴露。
func NewSynchronizer(cfg Config, source BookSource, m *metrics.Metrics, logger *slog.Logger) (*Synchronizer, error) {
	if cfg.Interval <= 0 || cfg.Interval > 100*time.Millisecond {
		cfg.Interval = 100 * time.Millisecond
	}
	if cfg.PullTimeout <= 0 {
		cfg.PullTimeout = time.Second
	}
	if cfg.RouteTimeout <= 0 {
		cfg.RouteTimeout = 15 * time.Second
	}
	if cfg.UpdateQueueSize <= 0 {
		cfg.UpdateQueueSize = 4096
	}

	s := &Synchronizer{
		cfg:           cfg,
		source:        source,
		logger:        logger,
		metrics:       m,
		conns:         make(map[string]*grpc.ClientConn),
		stubs:         make(map[string]matchingv1.MatchingServiceClient),
		updates:       make(chan update, cfg.UpdateQueueSize),
		bids:          make(map[string]bboEntry),
		asks:          make(map[string]bboEntry),
		contributions: make(map[string]map[string]contribution),
		peerSeq:       make(map[string]uint64),
		routedOrders:  make(map[string]struct{}),
	}

	for _, addr := range cfg.Peers {
		if addr == cfg.Addr {
			continue
		}
		conn, err := grpcclient.New(grpcclient.ClientConfig{
			Target:          addr,
			EnableKeepalive: true,
		})
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("dial peer %s: %w", addr, err)
		}
		s.conns[addr] = conn
		s.stubs[addr] = matchingv1.NewMatchingServiceClient(conn)
	}
	return s, nil
}

// Close 关闭全部对端连接
func (s *Synchronizer) Close() {
	for addr, conn := range s.conns {
		if err := conn.Close(); err != nil {
			s.logger.Warn("close peer conn failed", "peer", addr, "error", err)
		}
	}
}

// Run gossip 主循环：广播积压快照、小憩、拉取对端簿、重算 BBO。
// ctx 取消后返回。
func (s *Synchronizer) Run(ctx context.Context) error {
	s.logger.Info("gossip loop started",
		"engine_id", s.cfg.EngineID, "peers", len(s.stubs), "interval", s.cfg.Interval)
	for {
		s.broadcastPending(ctx)

		select {
		case <-ctx.Done():
			s.logger.Info("gossip loop stopped")
			return ctx.Err()
		case <-time.After(s.cfg.Interval):
		}

		s.pullPeers(ctx)
		s.metrics.GossipRounds.Inc()
	}
}

// PublishUpdate 引擎在每次订单簿变更后调用：过滤零量价位、入队广播、
// 同步重算本地贡献。队列满时丢弃最旧的更新，后来的快照覆盖其语义。
func (s *Synchronizer) PublishUpdate(symbol string, bids, asks []domain.Level) {
	u := update{
		symbol: symbol,
		seq:    s.seq.Add(1),
		bids:   dropZeroLevels(bids),
		asks:   dropZeroLevels(asks),
	}
	for {
		select {
		case s.updates <- u:
			s.recompute(symbol)
			return
		default:
			select {
			case stale := <-s.updates:
				s.logger.Warn("update queue full, dropping oldest", "symbol", stale.symbol, "seq", stale.seq)
			default:
			}
		}
	}
}

// LookupBBOEngine 返回订单方向上报价最优的引擎地址。
// 仅当对端报价同时严格优于本地盘口且可与限价成交、且价位非空时
// 视为严格更优；全局视图没有该品种时返回本引擎。
func (s *Synchronizer) LookupBBOEngine(order *domain.Order) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var entry bboEntry
	var ok bool
	if order.Side == domain.SideBuy {
		entry, ok = s.asks[order.Symbol]
	} else {
		entry, ok = s.bids[order.Symbol]
	}
	if !ok || entry.engineAddr == "" || entry.engineAddr == s.cfg.Addr {
		return s.cfg.Addr
	}

	if order.Side == domain.SideBuy {
		// 对端卖价要能被限价打到，且严格低于本地最优卖价
		if entry.price.GreaterThan(order.Price) {
			return s.cfg.Addr
		}
		if _, localAsk, _, hasAsk := s.source.LocalBest(order.Symbol); hasAsk && !entry.price.LessThan(localAsk) {
			return s.cfg.Addr
		}
	} else {
		if entry.price.LessThan(order.Price) {
			return s.cfg.Addr
		}
		if localBid, _, hasBid, _ := s.source.LocalBest(order.Symbol); hasBid && !entry.price.GreaterThan(localBid) {
			return s.cfg.Addr
		}
	}
	return entry.engineAddr
}

// RouteOrder 订单一跳转发。订单保留原始 origin，对端据此拒绝二次转发。
// 同一订单的重复转发是幂等空操作。
func (s *Synchronizer) RouteOrder(ctx context.Context, order *domain.Order, dstAddr string) error {
	s.mu.Lock()
	if _, seen := s.routedOrders[order.OrderID]; seen {
		s.mu.Unlock()
		s.logger.Warn("order already routed, skipping", "order_id", order.OrderID)
		return nil
	}
	stub, ok := s.stubs[dstAddr]
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("no stub for peer %s", dstAddr)
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.RouteTimeout)
	defer cancel()
	reply, err := stub.SubmitOrder(ctx, OrderToProto(order))
	if err != nil {
		return err
	}
	if reply.GetStatus() != "SUCCESS" {
		return fmt.Errorf("%w: %s", ErrPeerRejected, reply.GetErrorMessage())
	}

	s.mu.Lock()
	s.routedOrders[order.OrderID] = struct{}{}
	s.mu.Unlock()
	return nil
}

// RouteFill 把回报送回客户端 origin 引擎
func (s *Synchronizer) RouteFill(ctx context.Context, fill *domain.Fill, clientID, dstAddr string) error {
	stub, ok := s.stubs[dstAddr]
	if !ok {
		return fmt.Errorf("no stub for peer %s", dstAddr)
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.RouteTimeout)
	defer cancel()
	_, err := stub.DeliverRoutedFill(ctx, &matchingv1.RoutedFill{
		ClientId: clientID,
		Fill:     FillToProto(fill),
	})
	return err
}

// ApplyPeerUpdate 处理对端推送的快照。贡献以发送方地址为键，与拉取
// 路径共用水位；缺少地址的快照无法回指路由目标，直接丢弃。序列号
// 不超过已见水位的旧快照同样丢弃，保证幂等。
func (s *Synchronizer) ApplyPeerUpdate(u *matchingv1.OrderBookUpdate) {
	addr := u.GetEngineAddr()
	if addr == "" || addr == s.cfg.Addr {
		s.logger.Warn("peer update without routable sender addr, dropping",
			"engine_id", u.GetEngineId(), "symbol", u.GetSymbol(), "addr", addr)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := addr + "/" + u.GetSymbol()
	if u.GetSequenceNumber() <= s.peerSeq[key] {
		return
	}
	s.peerSeq[key] = u.GetSequenceNumber()
	s.storeContribution(addr, u.GetEngineId(), u.GetSymbol(),
		LevelsFromProto(u.GetBids()), LevelsFromProto(u.GetAsks()))
	s.recomputeLocked(u.GetSymbol())
}

// ApplyGlobalBestPrice 合并对端直推的 BBO，价优者胜。
// 无地址的条目进不了 BBO 视图，否则查询会把它当成本引擎。
func (s *Synchronizer) ApplyGlobalBestPrice(g *matchingv1.GlobalBestPrice) {
	if g.GetEngineAddr() == "" {
		s.logger.Warn("global best price without engine addr, dropping",
			"engine_id", g.GetEngineId(), "symbol", g.GetSymbol())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	symbol := g.GetSymbol()
	if g.GetBestBid() > 0 {
		price := decimal.NewFromFloat(g.GetBestBid())
		if cur, ok := s.bids[symbol]; !ok || price.GreaterThan(cur.price) {
			s.bids[symbol] = bboEntry{price: price, engineID: g.GetEngineId(), engineAddr: g.GetEngineAddr()}
		}
	}
	if g.GetBestAsk() > 0 {
		price := decimal.NewFromFloat(g.GetBestAsk())
		if cur, ok := s.asks[symbol]; !ok || price.LessThan(cur.price) {
			s.asks[symbol] = bboEntry{price: price, engineID: g.GetEngineId(), engineAddr: g.GetEngineAddr()}
		}
	}
}

// GlobalBBO 返回品种当前的全局最优买卖价，供运维端点展示
func (s *Synchronizer) GlobalBBO(symbol string) (bid, ask decimal.Decimal, bidAddr, askAddr string, hasBid, hasAsk bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.bids[symbol]; ok {
		bid, bidAddr, hasBid = e.price, e.engineAddr, true
	}
	if e, ok := s.asks[symbol]; ok {
		ask, askAddr, hasAsk = e.price, e.engineAddr, true
	}
	return
}

// broadcastPending 把积压的快照并行广播给全部对端。
// 失败只记日志不重试，快照按序列号幂等，后续轮次自然覆盖。
func (s *Synchronizer) broadcastPending(ctx context.Context) {
	for {
		var u update
		select {
		case u = <-s.updates:
		default:
			return
		}

		msg := &matchingv1.OrderBookUpdate{
			Symbol:         u.symbol,
			SequenceNumber: u.seq,
			EngineId:       s.cfg.EngineID,
			EngineAddr:     s.cfg.Addr,
			Bids:           LevelsToProto(u.bids),
			Asks:           LevelsToProto(u.asks),
		}

		g, gctx := errgroup.WithContext(ctx)
		for addr, stub := range s.stubs {
			g.Go(func() error {
				callCtx, cancel := context.WithTimeout(gctx, s.cfg.PullTimeout)
				defer cancel()
				if _, err := stub.SyncOrderBook(callCtx, msg); err != nil {
					s.logger.Warn("sync broadcast failed", "peer", addr, "symbol", u.symbol, "error", err)
					s.metrics.PeerSyncFailures.Inc()
				}
				return nil
			})
		}
		_ = g.Wait()
	}
}

// pullPeers 从每个对端拉取已知品种的快照，水位推进时更新其贡献
func (s *Synchronizer) pullPeers(ctx context.Context) {
	symbols := s.knownSymbols()
	if len(symbols) == 0 {
		return
	}

	g, gctx := errgroup.WithContext(ctx)
	for addr, stub := range s.stubs {
		g.Go(func() error {
			for _, symbol := range symbols {
				callCtx, cancel := context.WithTimeout(gctx, s.cfg.PullTimeout)
				snap, err := stub.GetOrderBook(callCtx, &matchingv1.OrderBookRequest{Symbol: symbol})
				cancel()
				if err != nil {
					s.logger.Warn("peer pull failed", "peer", addr, "symbol", symbol, "error", err)
					s.metrics.PeerSyncFailures.Inc()
					s.markStale(addr, symbol)
					continue
				}

				s.mu.Lock()
				key := addr + "/" + symbol
				if snap.GetSequenceNumber() > s.peerSeq[key] {
					s.peerSeq[key] = snap.GetSequenceNumber()
					s.storeContribution(addr, "", symbol,
						LevelsFromProto(snap.GetBids()), LevelsFromProto(snap.GetAsks()))
					s.recomputeLocked(symbol)
				}
				s.mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()
}

// knownSymbols 本地品种与全局视图品种的并集
func (s *Synchronizer) knownSymbols() []string {
	seen := make(map[string]struct{})
	for _, sym := range s.source.Symbols() {
		seen[sym] = struct{}{}
	}
	s.mu.Lock()
	for sym := range s.bids {
		seen[sym] = struct{}{}
	}
	for sym := range s.asks {
		seen[sym] = struct{}{}
	}
	s.mu.Unlock()

	symbols := make([]string, 0, len(seen))
	for sym := range seen {
		symbols = append(symbols, sym)
	}
	return symbols
}

// markStale 对端失联时撤掉它的贡献，BBO 回退到其余来源。
// 推送与拉取共用地址键，撤掉后该对端在视图里不留残影。
func (s *Synchronizer) markStale(addr, symbol string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if bySymbol, ok := s.contributions[addr]; ok {
		delete(bySymbol, symbol)
	}
	s.recomputeLocked(symbol)
}

// storeContribution 记录某对端在某品种上的盘口，调用方持锁。
// addr 必须非空，engineID 仅作展示（拉取路径拿不到时留空）。
func (s *Synchronizer) storeContribution(addr, engineID, symbol string, bids, asks []domain.Level) {
	c := contribution{engineID: engineID}
	if best, ok := bestLevel(bids, true); ok {
		c.bid, c.hasBid = best, true
	}
	if best, ok := bestLevel(asks, false); ok {
		c.ask, c.hasAsk = best, true
	}
	bySymbol, ok := s.contributions[addr]
	if !ok {
		bySymbol = make(map[string]contribution)
		s.contributions[addr] = bySymbol
	}
	bySymbol[symbol] = c
}

func (s *Synchronizer) recompute(symbol string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recomputeLocked(symbol)
}

// recomputeLocked 以本地盘口与全部对端贡献重算某品种的全局 BBO，
// 调用方持锁
func (s *Synchronizer) recomputeLocked(symbol string) {
	var bestBid, bestAsk bboEntry
	var hasBid, hasAsk bool

	if bid, ask, localBid, localAsk := s.source.LocalBest(symbol); localBid || localAsk {
		if localBid {
			bestBid, hasBid = bboEntry{price: bid, engineID: s.cfg.EngineID, engineAddr: s.cfg.Addr}, true
		}
		if localAsk {
			bestAsk, hasAsk = bboEntry{price: ask, engineID: s.cfg.EngineID, engineAddr: s.cfg.Addr}, true
		}
	}

	for addr, bySymbol := range s.contributions {
		c, ok := bySymbol[symbol]
		if !ok {
			continue
		}
		if c.hasBid && (!hasBid || c.bid.GreaterThan(bestBid.price)) {
			bestBid, hasBid = bboEntry{price: c.bid, engineID: c.engineID, engineAddr: addr}, true
		}
		if c.hasAsk && (!hasAsk || c.ask.LessThan(bestAsk.price)) {
			bestAsk, hasAsk = bboEntry{price: c.ask, engineID: c.engineID, engineAddr: addr}, true
		}
	}

	if hasBid {
		s.bids[symbol] = bestBid
	} else {
		delete(s.bids, symbol)
	}
	if hasAsk {
		s.asks[symbol] = bestAsk
	} else {
		delete(s.asks, symbol)
	}
}

// bestLevel 在非零量价位里取最优价，wantMax 为 true 取最高（买盘）
func bestLevel(levels []domain.Level, wantMax bool) (decimal.Decimal, bool) {
	var best decimal.Decimal
	found := false
	for _, l := range levels {
		if l.Quantity == 0 {
			continue
		}
		if !found || (wantMax && l.Price.GreaterThan(best)) || (!wantMax && l.Price.LessThan(best)) {
			best, found = l.Price, true
		}
	}
	return best, found
}

func dropZeroLevels(levels []domain.Level) []domain.Level {
	out := levels[:0:0]
	for _, l := range levels {
		if l.Quantity > 0 {
			out = append(out, l)
		}
	}
	return out
}
