package domain

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(id string, side Side, price string, qty uint64) *Order {
	return &Order{
		OrderID:    id,
		ClientID:   "client-" + id,
		OriginAddr: "127.0.0.1:5001",
		Symbol:     "X",
		Side:       side,
		Price:      decimal.RequireFromString(price),
		Quantity:   qty,
		Remaining:  qty,
	}
}

// TestAddOrderRestsOnEmptyBook 空簿撮合不产生成交，订单挂入本方
func TestAddOrderRestsOnEmptyBook(t *testing.T) {
	book := NewOrderBook("X")

	res, err := book.AddOrder(newTestOrder("B1", SideBuy, "100", 10))
	require.NoError(t, err)
	assert.Empty(t, res.IncomingFills)
	assert.Empty(t, res.RestingFills)

	best, ok := book.BestBid()
	require.True(t, ok)
	assert.True(t, best.Equal(decimal.RequireFromString("100")))
	_, ok = book.BestAsk()
	assert.False(t, ok)
}

// TestPartialFillLeavesRemainder 场景：SELL 10 @ 100 挂单后 BUY 4 @ 100，
// 应产生一笔 qty=4 的成交，卖方剩余 6 继续挂簿
func TestPartialFillLeavesRemainder(t *testing.T) {
	book := NewOrderBook("X")

	_, err := book.AddOrder(newTestOrder("S1", SideSell, "100.00", 10))
	require.NoError(t, err)

	res, err := book.AddOrder(newTestOrder("B1", SideBuy, "100.00", 4))
	require.NoError(t, err)
	require.Len(t, res.IncomingFills, 1)
	require.Len(t, res.RestingFills, 1)

	in, rest := res.IncomingFills[0], res.RestingFills[0]
	assert.Equal(t, in.FillID, rest.FillID)
	assert.Equal(t, "FILL;incoming:B1;resting:S1", in.FillID)
	assert.Equal(t, uint64(4), in.Quantity)
	assert.True(t, in.Price.Equal(decimal.RequireFromString("100.00")))
	assert.Equal(t, "client-B1", in.BuyerID)
	assert.Equal(t, "client-S1", in.SellerID)
	assert.Equal(t, uint64(0), in.Remaining)
	assert.Equal(t, uint64(6), rest.Remaining)

	_, ok := book.BestBid()
	assert.False(t, ok, "incoming order fully filled, nothing should rest on the bid side")
	bestAsk, ok := book.BestAsk()
	require.True(t, ok)
	assert.True(t, bestAsk.Equal(decimal.RequireFromString("100.00")))

	_, asks := book.Snapshot()
	require.Len(t, asks, 1)
	assert.Equal(t, uint64(6), asks[0].Quantity)
	assert.Equal(t, uint32(1), asks[0].OrderCount)
}

// TestTimePriorityWithinLevel 场景：同价位两笔 SELL 先后挂单，
// BUY 7 先吃完 S1 再吃 S2，S2 剩余 3 留簿
func TestTimePriorityWithinLevel(t *testing.T) {
	book := NewOrderBook("X")

	_, err := book.AddOrder(newTestOrder("S1", SideSell, "100", 5))
	require.NoError(t, err)
	_, err = book.AddOrder(newTestOrder("S2", SideSell, "100", 5))
	require.NoError(t, err)

	res, err := book.AddOrder(newTestOrder("B1", SideBuy, "100", 7))
	require.NoError(t, err)
	require.Len(t, res.IncomingFills, 2)

	assert.Equal(t, "S1", res.RestingFills[0].OrderID)
	assert.Equal(t, uint64(5), res.RestingFills[0].Quantity)
	assert.Equal(t, "S2", res.RestingFills[1].OrderID)
	assert.Equal(t, uint64(2), res.RestingFills[1].Quantity)
	assert.Equal(t, uint64(3), res.RestingFills[1].Remaining)

	_, asks := book.Snapshot()
	require.Len(t, asks, 1)
	assert.Equal(t, uint64(3), asks[0].Quantity)
}

// TestPricePriorityAcrossLevels 低价卖单必须先于高价卖单被吃掉
func TestPricePriorityAcrossLevels(t *testing.T) {
	book := NewOrderBook("X")

	_, err := book.AddOrder(newTestOrder("S1", SideSell, "101", 5))
	require.NoError(t, err)
	_, err = book.AddOrder(newTestOrder("S2", SideSell, "100", 5))
	require.NoError(t, err)

	res, err := book.AddOrder(newTestOrder("B1", SideBuy, "101", 8))
	require.NoError(t, err)
	require.Len(t, res.IncomingFills, 2)

	assert.Equal(t, "S2", res.RestingFills[0].OrderID, "lower ask matches first")
	assert.True(t, res.IncomingFills[0].Price.Equal(decimal.RequireFromString("100")))
	assert.Equal(t, "S1", res.RestingFills[1].OrderID)
	assert.True(t, res.IncomingFills[1].Price.Equal(decimal.RequireFromString("101")))
}

// TestLimitJustMissesBest 限价差 0.01 打不到对手价
func TestLimitJustMissesBest(t *testing.T) {
	book := NewOrderBook("X")

	_, err := book.AddOrder(newTestOrder("S1", SideSell, "100.00", 5))
	require.NoError(t, err)

	res, err := book.AddOrder(newTestOrder("B1", SideBuy, "99.99", 5))
	require.NoError(t, err)
	assert.Empty(t, res.IncomingFills)

	bestBid, ok := book.BestBid()
	require.True(t, ok)
	assert.True(t, bestBid.Equal(decimal.RequireFromString("99.99")))
}

// TestExactFillEmptiesBothSides 数量恰好相等，两侧都清空
func TestExactFillEmptiesBothSides(t *testing.T) {
	book := NewOrderBook("X")

	_, err := book.AddOrder(newTestOrder("S1", SideSell, "100", 5))
	require.NoError(t, err)
	res, err := book.AddOrder(newTestOrder("B1", SideBuy, "100", 5))
	require.NoError(t, err)

	require.Len(t, res.IncomingFills, 1)
	assert.Equal(t, uint64(0), res.IncomingFills[0].Remaining)
	assert.Equal(t, uint64(0), res.RestingFills[0].Remaining)

	bids, asks := book.Snapshot()
	assert.Empty(t, bids)
	assert.Empty(t, asks)
}

// TestSellIncomingMatchesBids 卖方主动成交时买卖双方身份不反转
func TestSellIncomingMatchesBids(t *testing.T) {
	book := NewOrderBook("X")

	_, err := book.AddOrder(newTestOrder("B1", SideBuy, "100", 5))
	require.NoError(t, err)
	res, err := book.AddOrder(newTestOrder("S1", SideSell, "99", 5))
	require.NoError(t, err)

	require.Len(t, res.IncomingFills, 1)
	in := res.IncomingFills[0]
	assert.Equal(t, "client-B1", in.BuyerID)
	assert.Equal(t, "client-S1", in.SellerID)
	// 以被动方价位成交
	assert.True(t, in.Price.Equal(decimal.RequireFromString("100")))
	assert.Equal(t, "FILL;incoming:S1;resting:B1", in.FillID)
}

// TestBookSanityAfterMatch add_order 返回后盘口不得交叉
func TestBookSanityAfterMatch(t *testing.T) {
	book := NewOrderBook("X")

	_, err := book.AddOrder(newTestOrder("S1", SideSell, "100", 5))
	require.NoError(t, err)
	_, err = book.AddOrder(newTestOrder("B1", SideBuy, "102", 8))
	require.NoError(t, err)

	bestBid, bidOK := book.BestBid()
	bestAsk, askOK := book.BestAsk()
	require.True(t, bidOK)
	assert.False(t, askOK)
	assert.True(t, bestBid.Equal(decimal.RequireFromString("102")))
	if bidOK && askOK {
		assert.True(t, bestBid.LessThan(bestAsk))
	}
}

// TestConservation 任意订单序列下买方成交量等于卖方成交量，
// 且总成交量守恒：Σ(quantity-remaining) == 2×Σ fill.quantity
func TestConservation(t *testing.T) {
	book := NewOrderBook("X")

	orders := []*Order{
		newTestOrder("S1", SideSell, "100", 10),
		newTestOrder("S2", SideSell, "101", 7),
		newTestOrder("B1", SideBuy, "100", 4),
		newTestOrder("B2", SideBuy, "101", 9),
		newTestOrder("S3", SideSell, "99", 6),
		newTestOrder("B3", SideBuy, "102", 20),
	}

	var buyFilled, sellFilled, fillTotal uint64
	for _, o := range orders {
		res, err := book.AddOrder(o)
		require.NoError(t, err)
		for _, f := range res.IncomingFills {
			fillTotal += f.Quantity
		}
	}
	var consumed uint64
	for _, o := range orders {
		consumed += o.Quantity - o.Remaining
		if o.Side == SideBuy {
			buyFilled += o.Quantity - o.Remaining
		} else {
			sellFilled += o.Quantity - o.Remaining
		}
	}

	assert.Equal(t, buyFilled, sellFilled)
	assert.Equal(t, 2*fillTotal, consumed)
}

// TestSelfTradeAllowed 同一客户端的买卖可以互相成交
func TestSelfTradeAllowed(t *testing.T) {
	book := NewOrderBook("X")

	sell := newTestOrder("S1", SideSell, "100", 5)
	sell.ClientID = "alice"
	buy := newTestOrder("B1", SideBuy, "100", 5)
	buy.ClientID = "alice"

	_, err := book.AddOrder(sell)
	require.NoError(t, err)
	res, err := book.AddOrder(buy)
	require.NoError(t, err)
	require.Len(t, res.IncomingFills, 1)
	assert.Equal(t, "alice", res.IncomingFills[0].BuyerID)
	assert.Equal(t, "alice", res.IncomingFills[0].SellerID)
}

// TestCancelThenOppositeOrder 场景：挂 BUY 5 @ 100，撤单，再来 SELL 5 @ 100，
// 无成交且簿为空
func TestCancelThenOppositeOrder(t *testing.T) {
	book := NewOrderBook("X")

	o1 := newTestOrder("O1", SideBuy, "100", 5)
	_, err := book.AddOrder(o1)
	require.NoError(t, err)

	require.True(t, book.Remove(o1))
	o1.Status = StatusCancelled

	res, err := book.AddOrder(newTestOrder("S1", SideSell, "100", 5))
	require.NoError(t, err)
	assert.Empty(t, res.IncomingFills)

	bids, asks := book.Snapshot()
	assert.Empty(t, bids)
	require.Len(t, asks, 1)
}

// TestRemoveUnknownOrder 不在簿上的订单返回 false
func TestRemoveUnknownOrder(t *testing.T) {
	book := NewOrderBook("X")
	assert.False(t, book.Remove(newTestOrder("O1", SideBuy, "100", 5)))
}

// TestValidationRejects 零数量、非正价格与非法方向都拒单
func TestValidationRejects(t *testing.T) {
	book := NewOrderBook("X")

	_, err := book.AddOrder(newTestOrder("O1", SideBuy, "100", 0))
	assert.ErrorIs(t, err, ErrInvalidOrder)

	_, err = book.AddOrder(newTestOrder("O2", SideBuy, "0", 5))
	assert.ErrorIs(t, err, ErrInvalidOrder)

	_, err = book.AddOrder(newTestOrder("O3", SideBuy, "-1", 5))
	assert.ErrorIs(t, err, ErrInvalidOrder)

	bad := newTestOrder("O4", "HOLD", "100", 5)
	_, err = book.AddOrder(bad)
	assert.ErrorIs(t, err, ErrInvalidOrder)
}

// TestRemainingCoercedToQuantity 到达时 remaining 与 quantity 不一致则按新单处理
func TestRemainingCoercedToQuantity(t *testing.T) {
	book := NewOrderBook("X")

	o := newTestOrder("O1", SideBuy, "100", 10)
	o.Remaining = 3
	_, err := book.AddOrder(o)
	require.NoError(t, err)
	assert.Equal(t, uint64(10), o.Remaining)

	bids, _ := book.Snapshot()
	require.Len(t, bids, 1)
	assert.Equal(t, uint64(10), bids[0].Quantity)
}

// TestSnapshotOrdering 快照买盘降序、卖盘升序
func TestSnapshotOrdering(t *testing.T) {
	book := NewOrderBook("X")

	for i, px := range []string{"99", "101", "100"} {
		_, err := book.AddOrder(newTestOrder(fmt.Sprintf("B%d", i), SideBuy, px, 1))
		require.NoError(t, err)
	}
	for i, px := range []string{"103", "102", "104"} {
		_, err := book.AddOrder(newTestOrder(fmt.Sprintf("S%d", i), SideSell, px, 1))
		require.NoError(t, err)
	}

	bids, asks := book.Snapshot()
	require.Len(t, bids, 3)
	require.Len(t, asks, 3)
	assert.True(t, bids[0].Price.GreaterThan(bids[1].Price))
	assert.True(t, bids[1].Price.GreaterThan(bids[2].Price))
	assert.True(t, asks[0].Price.LessThan(asks[1].Price))
	assert.True(t, asks[1].Price.LessThan(asks[2].Price))
}
