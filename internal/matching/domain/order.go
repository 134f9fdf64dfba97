// Package domain 撮合集群的领域模型：订单、成交回报与订单簿
package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Side 订单方向
type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

// Valid 判断方向取值是否合法
func (s Side) Valid() bool {
	return s == SideBuy || s == SideSell
}

// OrderStatus 订单状态
type OrderStatus string

const (
	StatusNew             OrderStatus = "NEW"
	StatusPartiallyFilled OrderStatus = "PARTIALLY_FILLED"
	StatusFilled          OrderStatus = "FILLED"
	StatusCancelled       OrderStatus = "CANCELLED"
)

var (
	// ErrInvalidOrder 订单校验失败（数量为零、价格非正、方向非法）
	ErrInvalidOrder = errors.New("invalid order")
	// ErrOrderNotFound 未知订单
	ErrOrderNotFound = errors.New("order not found")
	// ErrDuplicateOrder 重复的订单 ID
	ErrDuplicateOrder = errors.New("duplicate order id")
)

// Order 订单。身份字段在 origin 引擎接单时固定，之后任何对端不得改写；
// Remaining 与 Status 为撮合过程中的可变状态。
type Order struct {
	OrderID  string
	ClientID string
	// OriginAddr 接单引擎地址，写一次，回报按它回送
	OriginAddr string
	Symbol     string
	Side       Side
	Price      decimal.Decimal
	Quantity   uint64
	// Timestamp 纳秒级 Unix 时间戳（UTC）
	Timestamp int64

	Remaining uint64
	Status    OrderStatus
}

// Validate 校验订单的不变量
func (o *Order) Validate() error {
	if o.OrderID == "" || o.Symbol == "" {
		return fmt.Errorf("%w: missing order_id or symbol", ErrInvalidOrder)
	}
	if !o.Side.Valid() {
		return fmt.Errorf("%w: side %q", ErrInvalidOrder, o.Side)
	}
	if o.Quantity == 0 {
		return fmt.Errorf("%w: zero quantity", ErrInvalidOrder)
	}
	if !o.Price.IsPositive() {
		return fmt.Errorf("%w: non-positive price %s", ErrInvalidOrder, o.Price)
	}
	return nil
}

// Fill 成交回报。一次撮合产生一对共享 fill_id 的记录，
// 分别通知主动方与被动方；DestinationAddr 是被通知方的 origin 引擎。
type Fill struct {
	FillID   string
	OrderID  string
	Symbol   string
	Side     Side
	Price    decimal.Decimal
	Quantity uint64
	// Remaining 被通知订单在本次成交后的剩余数量
	Remaining uint64
	Timestamp int64
	BuyerID   string
	SellerID  string
	// DestinationAddr 被通知方客户端的 origin 引擎地址
	DestinationAddr string
}

// NotifiedClient 返回本条回报要通知的客户端：
// 回报的 Side 是被通知订单的方向，买单通知买方，卖单通知卖方。
func (f *Fill) NotifiedClient() string {
	if f.Side == SideBuy {
		return f.BuyerID
	}
	return f.SellerID
}

// FillID 由成交双方订单 ID 决定，保证同一笔撮合的重复可检测
func FillID(incomingID, restingID string) string {
	return fmt.Sprintf("FILL;incoming:%s;resting:%s", incomingID, restingID)
}
