package domain

import (
	"fmt"
	"sync"
	"time"

	"github.com/huandu/skiplist"
	"github.com/shopspring/decimal"
)

// priceLevel 单个价位上的订单队列，FIFO 保证时间优先
type priceLevel struct {
	price  decimal.Decimal
	orders []*Order
}

func newPriceLevel(price decimal.Decimal) *priceLevel {
	return &priceLevel{price: price, orders: make([]*Order, 0, 4)}
}

func (pl *priceLevel) add(o *Order) {
	pl.orders = append(pl.orders, o)
}

func (pl *priceLevel) remove(orderID string) *Order {
	for i, o := range pl.orders {
		if o.OrderID == orderID {
			pl.orders = append(pl.orders[:i], pl.orders[i+1:]...)
			return o
		}
	}
	return nil
}

func (pl *priceLevel) totalRemaining() uint64 {
	var total uint64
	for _, o := range pl.orders {
		total += o.Remaining
	}
	return total
}

func (pl *priceLevel) empty() bool {
	return len(pl.orders) == 0
}

// priceKeyAsc 卖盘比较器，价格升序（最低卖价在前）
type priceKeyAsc struct{}

func (priceKeyAsc) Compare(lhs, rhs interface{}) int {
	return lhs.(decimal.Decimal).Cmp(rhs.(decimal.Decimal))
}

func (priceKeyAsc) CalcScore(key interface{}) float64 {
	f, _ := key.(decimal.Decimal).Float64()
	return f
}

// priceKeyDesc 买盘比较器，价格降序（最高买价在前）
type priceKeyDesc struct{}

func (priceKeyDesc) Compare(lhs, rhs interface{}) int {
	return rhs.(decimal.Decimal).Cmp(lhs.(decimal.Decimal))
}

func (priceKeyDesc) CalcScore(key interface{}) float64 {
	f, _ := key.(decimal.Decimal).Float64()
	return -f
}

// Level 订单簿快照中的聚合价位
type Level struct {
	Price      decimal.Decimal
	Quantity   uint64
	OrderCount uint32
}

// MatchResult 一次撮合的产物。IncomingFills 通知主动方客户端，
// RestingFills 通知被动方客户端；两组记录按产生顺序成对出现。
type MatchResult struct {
	IncomingFills []*Fill
	RestingFills  []*Fill
}

// OrderBook 单品种订单簿。跳表键为价位，值为 FIFO 订单队列，
// 买盘降序、卖盘升序，盘口即各自首元素。所有读写持同一把锁，
// 单次 add 在锁内跑完，盘口交叉只会在锁内瞬态出现。
type OrderBook struct {
	symbol string

	mu   sync.Mutex
	bids *skiplist.SkipList
	asks *skiplist.SkipList

	now func() int64
}

// NewOrderBook 创建指定品种的空订单簿
func NewOrderBook(symbol string) *OrderBook {
	return &OrderBook{
		symbol: symbol,
		bids:   skiplist.New(priceKeyDesc{}),
		asks:   skiplist.New(priceKeyAsc{}),
		now:    func() int64 { return time.Now().UnixNano() },
	}
}

// Symbol 返回订单簿品种
func (ob *OrderBook) Symbol() string {
	return ob.symbol
}

// AddOrder 撮合并挂单。价格优先、同价位 FIFO；每笔成交产生一对
// 共享 fill_id 的回报，剩余数量大于零时挂入本方队尾。
func (ob *OrderBook) AddOrder(order *Order) (*MatchResult, error) {
	if err := order.Validate(); err != nil {
		return nil, err
	}
	if order.Remaining != order.Quantity {
		order.Remaining = order.Quantity
	}
	order.Status = StatusNew

	ob.mu.Lock()
	defer ob.mu.Unlock()

	var opposite, own *skiplist.SkipList
	if order.Side == SideBuy {
		opposite, own = ob.asks, ob.bids
	} else {
		opposite, own = ob.bids, ob.asks
	}

	result := &MatchResult{}
	ts := ob.now()

	for order.Remaining > 0 {
		front := opposite.Front()
		if front == nil {
			break
		}
		levelPrice := front.Key().(decimal.Decimal)
		if !crosses(order.Side, order.Price, levelPrice) {
			break
		}
		level := front.Value.(*priceLevel)

		for order.Remaining > 0 && !level.empty() {
			resting := level.orders[0]
			fillQty := min(order.Remaining, resting.Remaining)
			if fillQty == 0 {
				// 挂着的订单剩余数量必须为正，出现零说明簿已损坏
				panic(fmt.Sprintf("orderbook %s: resting order %s has zero remaining", ob.symbol, resting.OrderID))
			}

			order.Remaining -= fillQty
			resting.Remaining -= fillQty
			advance(order)
			advance(resting)

			fillID := FillID(order.OrderID, resting.OrderID)
			buyerID, sellerID := order.ClientID, resting.ClientID
			if order.Side == SideSell {
				buyerID, sellerID = resting.ClientID, order.ClientID
			}

			result.IncomingFills = append(result.IncomingFills, &Fill{
				FillID:          fillID,
				OrderID:         order.OrderID,
				Symbol:          ob.symbol,
				Side:            order.Side,
				Price:           levelPrice,
				Quantity:        fillQty,
				Remaining:       order.Remaining,
				Timestamp:       ts,
				BuyerID:         buyerID,
				SellerID:        sellerID,
				DestinationAddr: order.OriginAddr,
			})
			result.RestingFills = append(result.RestingFills, &Fill{
				FillID:          fillID,
				OrderID:         resting.OrderID,
				Symbol:          ob.symbol,
				Side:            resting.Side,
				Price:           levelPrice,
				Quantity:        fillQty,
				Remaining:       resting.Remaining,
				Timestamp:       ts,
				BuyerID:         buyerID,
				SellerID:        sellerID,
				DestinationAddr: resting.OriginAddr,
			})

			if resting.Remaining == 0 {
				level.orders = level.orders[1:]
			}
		}

		if level.empty() {
			opposite.Remove(levelPrice)
		}
	}

	if order.Remaining > 0 {
		elem := own.Get(order.Price)
		var level *priceLevel
		if elem != nil {
			level = elem.Value.(*priceLevel)
		} else {
			level = newPriceLevel(order.Price)
			own.Set(order.Price, level)
		}
		level.add(order)
	}

	return result, nil
}

// Remove 从订单簿移除订单（撤单路径）。订单不在簿上时返回 false。
func (ob *OrderBook) Remove(order *Order) bool {
	ob.mu.Lock()
	defer ob.mu.Unlock()

	list := ob.bids
	if order.Side == SideSell {
		list = ob.asks
	}
	elem := list.Get(order.Price)
	if elem == nil {
		return false
	}
	level := elem.Value.(*priceLevel)
	removed := level.remove(order.OrderID)
	if level.empty() {
		list.Remove(order.Price)
	}
	return removed != nil
}

// BestBid 返回最高买价，簿空时 ok 为 false
func (ob *OrderBook) BestBid() (decimal.Decimal, bool) {
	ob.mu.Lock()
	defer ob.mu.Unlock()
	return bestPrice(ob.bids)
}

// BestAsk 返回最低卖价，簿空时 ok 为 false
func (ob *OrderBook) BestAsk() (decimal.Decimal, bool) {
	ob.mu.Lock()
	defer ob.mu.Unlock()
	return bestPrice(ob.asks)
}

// Snapshot 返回按价位聚合的买卖两侧视图，过滤零量价位。
// 买盘降序、卖盘升序，与簿内迭代顺序一致。
func (ob *OrderBook) Snapshot() (bids, asks []Level) {
	ob.mu.Lock()
	defer ob.mu.Unlock()
	return collectLevels(ob.bids), collectLevels(ob.asks)
}

func collectLevels(list *skiplist.SkipList) []Level {
	levels := make([]Level, 0, list.Len())
	for elem := list.Front(); elem != nil; elem = elem.Next() {
		level := elem.Value.(*priceLevel)
		qty := level.totalRemaining()
		if qty == 0 {
			continue
		}
		levels = append(levels, Level{
			Price:      level.price,
			Quantity:   qty,
			OrderCount: uint32(len(level.orders)),
		})
	}
	return levels
}

func bestPrice(list *skiplist.SkipList) (decimal.Decimal, bool) {
	front := list.Front()
	if front == nil {
		return decimal.Decimal{}, false
	}
	return front.Key().(decimal.Decimal), true
}

// crosses 判断 limit 价是否打得到 levelPrice 价位
func crosses(side Side, limit, levelPrice decimal.Decimal) bool {
	if side == SideBuy {
		return levelPrice.LessThanOrEqual(limit)
	}
	return levelPrice.GreaterThanOrEqual(limit)
}

// advance 根据剩余数量推进订单状态
func advance(o *Order) {
	if o.Remaining == 0 {
		o.Status = StatusFilled
	} else {
		o.Status = StatusPartiallyFilled
	}
}
