package peer

import (
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	matchingv1 "github.com/wyfcoding/matchcluster/go-api/matching/v1"
	"github.com/wyfcoding/matchcluster/internal/matching/domain"
	"github.com/wyfcoding/matchcluster/pkg/metrics"
)

const (
	localAddr = "127.0.0.1:5001"
	peerAddr  = "127.0.0.1:5002"
)

// fakeSource 进程内 BookSource 替身
type fakeSource struct {
	symbols []string
	bid     decimal.Decimal
	ask     decimal.Decimal
	hasBid  bool
	hasAsk  bool
}

func (f *fakeSource) Snapshot(string) (uint64, []domain.Level, []domain.Level) {
	return 0, nil, nil
}

func (f *fakeSource) Symbols() []string { return f.symbols }

func (f *fakeSource) LocalBest(string) (decimal.Decimal, decimal.Decimal, bool, bool) {
	return f.bid, f.ask, f.hasBid, f.hasAsk
}

func newTestSync(t *testing.T, source BookSource) *Synchronizer {
	t.Helper()
	s, err := NewSynchronizer(Config{
		EngineID: "engine-1",
		Addr:     localAddr,
		Interval: 10 * time.Millisecond,
	}, source, metrics.Nop(), slog.Default())
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func peerUpdate(addr, symbol string, seq uint64, bidPx, askPx float64, qty uint64) *matchingv1.OrderBookUpdate {
	u := &matchingv1.OrderBookUpdate{
		Symbol:         symbol,
		SequenceNumber: seq,
		EngineId:       "engine-2",
		EngineAddr:     addr,
	}
	if bidPx > 0 {
		u.Bids = []*matchingv1.PriceLevel{{Price: bidPx, Quantity: qty, OrderCount: 1}}
	}
	if askPx > 0 {
		u.Asks = []*matchingv1.PriceLevel{{Price: askPx, Quantity: qty, OrderCount: 1}}
	}
	return u
}

// TestLookupUnknownSymbolReturnsSelf 全局视图没有该品种时不转发
func TestLookupUnknownSymbolReturnsSelf(t *testing.T) {
	s := newTestSync(t, &fakeSource{})

	order := &domain.Order{Symbol: "X", Side: domain.SideBuy, Price: decimal.RequireFromString("100")}
	assert.Equal(t, localAddr, s.LookupBBOEngine(order))
}

// TestPushOnlyPeerAttractsRouting 仅靠推送快照（无任何拉取或直推 BBO）
// 对端即可进入全局视图并吸引转发
func TestPushOnlyPeerAttractsRouting(t *testing.T) {
	s := newTestSync(t, &fakeSource{})

	s.ApplyPeerUpdate(peerUpdate(peerAddr, "X", 1, 0, 100, 10))

	buy := &domain.Order{Symbol: "X", Side: domain.SideBuy, Price: decimal.RequireFromString("101")}
	assert.Equal(t, peerAddr, s.LookupBBOEngine(buy))

	// 限价打不到对端卖价时不转发
	lowBuy := &domain.Order{Symbol: "X", Side: domain.SideBuy, Price: decimal.RequireFromString("99.99")}
	assert.Equal(t, localAddr, s.LookupBBOEngine(lowBuy))
}

// TestAddrlessUpdateIgnored 不带发送方地址的快照进不了全局视图
func TestAddrlessUpdateIgnored(t *testing.T) {
	s := newTestSync(t, &fakeSource{})

	s.ApplyPeerUpdate(peerUpdate("", "X", 1, 0, 100, 10))

	_, _, _, _, _, hasAsk := s.GlobalBBO("X")
	assert.False(t, hasAsk)

	buy := &domain.Order{Symbol: "X", Side: domain.SideBuy, Price: decimal.RequireFromString("101")}
	assert.Equal(t, localAddr, s.LookupBBOEngine(buy))
}

// TestPushPullShareSingleContribution 推送与拉取共用地址键与序列号水位，
// 同一对端始终只占一份贡献
func TestPushPullShareSingleContribution(t *testing.T) {
	s := newTestSync(t, &fakeSource{})

	s.ApplyPeerUpdate(peerUpdate(peerAddr, "X", 1, 0, 100, 10))

	// 拉取路径对同一对端落同一个键
	s.mu.Lock()
	key := peerAddr + "/X"
	if 2 > s.peerSeq[key] {
		s.peerSeq[key] = 2
		s.storeContribution(peerAddr, "", "X", nil,
			[]domain.Level{{Price: decimal.RequireFromString("99"), Quantity: 10, OrderCount: 1}})
		s.recomputeLocked("X")
	}
	n := len(s.contributions)
	s.mu.Unlock()

	assert.Equal(t, 1, n)
	_, ask, _, askAddr, _, hasAsk := s.GlobalBBO("X")
	require.True(t, hasAsk)
	assert.True(t, ask.Equal(decimal.RequireFromString("99")))
	assert.Equal(t, peerAddr, askAddr)
}

// TestLookupRequiresStrictImprovement 对端报价不优于本地盘口时不转发
func TestLookupRequiresStrictImprovement(t *testing.T) {
	source := &fakeSource{
		symbols: []string{"X"},
		ask:     decimal.RequireFromString("100"),
		hasAsk:  true,
	}
	s := newTestSync(t, source)

	// 对端与本地同价，不算严格更优
	s.ApplyPeerUpdate(peerUpdate(peerAddr, "X", 1, 0, 100, 10))

	buy := &domain.Order{Symbol: "X", Side: domain.SideBuy, Price: decimal.RequireFromString("101")}
	assert.Equal(t, localAddr, s.LookupBBOEngine(buy))

	// 对端降价后严格更优
	s.ApplyPeerUpdate(peerUpdate(peerAddr, "X", 2, 0, 99.5, 10))
	assert.Equal(t, peerAddr, s.LookupBBOEngine(buy))
}

// TestIdempotentGossip 同一快照应用两次，BBO 视图不变
func TestIdempotentGossip(t *testing.T) {
	s := newTestSync(t, &fakeSource{})

	u := peerUpdate(peerAddr, "X", 3, 98, 100, 10)
	s.ApplyPeerUpdate(u)
	bid1, ask1, _, _, hasBid1, hasAsk1 := s.GlobalBBO("X")
	s.ApplyPeerUpdate(u)
	bid2, ask2, _, _, hasBid2, hasAsk2 := s.GlobalBBO("X")

	assert.Equal(t, hasBid1, hasBid2)
	assert.Equal(t, hasAsk1, hasAsk2)
	assert.True(t, bid1.Equal(bid2))
	assert.True(t, ask1.Equal(ask2))
}

// TestStaleSnapshotDropped 序列号回退的快照被丢弃
func TestStaleSnapshotDropped(t *testing.T) {
	s := newTestSync(t, &fakeSource{})

	s.ApplyPeerUpdate(peerUpdate(peerAddr, "X", 5, 0, 100, 10))
	// 旧快照宣称更低的卖价，不得生效
	s.ApplyPeerUpdate(peerUpdate(peerAddr, "X", 4, 0, 90, 10))

	_, ask, _, _, _, hasAsk := s.GlobalBBO("X")
	require.True(t, hasAsk)
	assert.True(t, ask.Equal(decimal.RequireFromString("100")))
}

// TestStalePeerVanishesFromBBO 失联对端被撤掉贡献后从全局视图彻底消失，
// BBO 回退到本地盘口
func TestStalePeerVanishesFromBBO(t *testing.T) {
	source := &fakeSource{
		symbols: []string{"X"},
		ask:     decimal.RequireFromString("105"),
		hasAsk:  true,
	}
	s := newTestSync(t, source)

	s.ApplyPeerUpdate(peerUpdate(peerAddr, "X", 1, 0, 100, 10))
	_, ask, _, askAddr, _, hasAsk := s.GlobalBBO("X")
	require.True(t, hasAsk)
	require.True(t, ask.Equal(decimal.RequireFromString("100")))
	require.Equal(t, peerAddr, askAddr)

	s.markStale(peerAddr, "X")

	_, ask, _, askAddr, _, hasAsk = s.GlobalBBO("X")
	require.True(t, hasAsk)
	assert.True(t, ask.Equal(decimal.RequireFromString("105")))
	assert.Equal(t, localAddr, askAddr)

	buy := &domain.Order{Symbol: "X", Side: domain.SideBuy, Price: decimal.RequireFromString("101")}
	assert.Equal(t, localAddr, s.LookupBBOEngine(buy))
}

// TestZeroVolumeLevelIgnored 零量价位不参与 BBO
func TestZeroVolumeLevelIgnored(t *testing.T) {
	s := newTestSync(t, &fakeSource{})

	s.ApplyPeerUpdate(peerUpdate(peerAddr, "X", 1, 0, 100, 0))
	_, _, _, _, _, hasAsk := s.GlobalBBO("X")
	assert.False(t, hasAsk)
}

// TestGlobalBestPriceMerge 直推 BBO 按价优合并，无地址的条目被拒
func TestGlobalBestPriceMerge(t *testing.T) {
	s := newTestSync(t, &fakeSource{})

	s.ApplyGlobalBestPrice(&matchingv1.GlobalBestPrice{
		Symbol: "X", BestBid: 99, BestAsk: 101,
		EngineId: "engine-2", EngineAddr: peerAddr,
	})
	s.ApplyGlobalBestPrice(&matchingv1.GlobalBestPrice{
		Symbol: "X", BestBid: 98, BestAsk: 100.5,
		EngineId: "engine-3", EngineAddr: "127.0.0.1:5003",
	})
	// 地址缺失的条目不得覆盖现有视图
	s.ApplyGlobalBestPrice(&matchingv1.GlobalBestPrice{
		Symbol: "X", BestBid: 100, BestAsk: 100,
		EngineId: "engine-4",
	})

	bid, ask, bidAddr, askAddr, hasBid, hasAsk := s.GlobalBBO("X")
	require.True(t, hasBid)
	require.True(t, hasAsk)
	assert.True(t, bid.Equal(decimal.RequireFromString("99")))
	assert.Equal(t, peerAddr, bidAddr)
	assert.True(t, ask.Equal(decimal.RequireFromString("100.5")))
	assert.Equal(t, "127.0.0.1:5003", askAddr)
}

// TestLocalBestWinsRecompute 本地盘口更优时 BBO 归属本引擎
func TestLocalBestWinsRecompute(t *testing.T) {
	source := &fakeSource{
		symbols: []string{"X"},
		ask:     decimal.RequireFromString("99"),
		hasAsk:  true,
	}
	s := newTestSync(t, source)

	s.ApplyPeerUpdate(peerUpdate(peerAddr, "X", 1, 0, 100, 10))

	_, _, _, askAddr, _, hasAsk := s.GlobalBBO("X")
	require.True(t, hasAsk)
	assert.Equal(t, localAddr, askAddr)

	buy := &domain.Order{Symbol: "X", Side: domain.SideBuy, Price: decimal.RequireFromString("101")}
	assert.Equal(t, localAddr, s.LookupBBOEngine(buy))
}

// TestPublishUpdateRecomputesLocally 本地发布后全局视图立即反映本地盘口
func TestPublishUpdateRecomputesLocally(t *testing.T) {
	source := &fakeSource{
		symbols: []string{"X"},
		bid:     decimal.RequireFromString("98"),
		hasBid:  true,
	}
	s := newTestSync(t, source)

	s.PublishUpdate("X", []domain.Level{
		{Price: decimal.RequireFromString("98"), Quantity: 5, OrderCount: 1},
		{Price: decimal.RequireFromString("97"), Quantity: 0, OrderCount: 0},
	}, nil)

	bid, _, bidAddr, _, hasBid, _ := s.GlobalBBO("X")
	require.True(t, hasBid)
	assert.True(t, bid.Equal(decimal.RequireFromString("98")))
	assert.Equal(t, localAddr, bidAddr)

	// 零量价位被过滤后入队
	u := <-s.updates
	require.Len(t, u.bids, 1)
	assert.Equal(t, uint64(5), u.bids[0].Quantity)
}

// TestSellSideLookup 卖单按买盘方向判优
func TestSellSideLookup(t *testing.T) {
	source := &fakeSource{
		symbols: []string{"X"},
		bid:     decimal.RequireFromString("100"),
		hasBid:  true,
	}
	s := newTestSync(t, source)

	s.ApplyPeerUpdate(peerUpdate(peerAddr, "X", 1, 101, 0, 10))

	sell := &domain.Order{Symbol: "X", Side: domain.SideSell, Price: decimal.RequireFromString("100")}
	assert.Equal(t, peerAddr, s.LookupBBOEngine(sell))

	// 限价高于对端买价，成交不了
	highSell := &domain.Order{Symbol: "X", Side: domain.SideSell, Price: decimal.RequireFromString("102")}
	assert.Equal(t, localAddr, s.LookupBBOEngine(highSell))
}
