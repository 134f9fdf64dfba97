// Package peer 实现引擎间同步器：gossip 广播/拉取、全局 BBO 视图、
// 订单转发与回报回送
package peer

import (
	"github.com/shopspring/decimal"

	matchingv1 "github.com/wyfcoding/matchcluster/go-api/matching/v1"
	"github.com/wyfcoding/matchcluster/internal/matching/domain"
)

// OrderToProto 域订单转线上表示。价格用 double 承载，
// 精度足够覆盖行情报价范围。
func OrderToProto(o *domain.Order) *matchingv1.OrderRequest {
	return &matchingv1.OrderRequest{
		OrderId:           o.OrderID,
		Symbol:            o.Symbol,
		Side:              string(o.Side),
		Price:             o.Price.InexactFloat64(),
		Quantity:          o.Quantity,
		RemainingQuantity: o.Remaining,
		ClientId:          o.ClientID,
		EngineOriginAddr:  o.OriginAddr,
		TimestampNs:       o.Timestamp,
	}
}

// OrderFromProto 线上表示转域订单
func OrderFromProto(req *matchingv1.OrderRequest) *domain.Order {
	return &domain.Order{
		OrderID:    req.GetOrderId(),
		ClientID:   req.GetClientId(),
		OriginAddr: req.GetEngineOriginAddr(),
		Symbol:     req.GetSymbol(),
		Side:       domain.Side(req.GetSide()),
		Price:      decimal.NewFromFloat(req.GetPrice()),
		Quantity:   req.GetQuantity(),
		Remaining:  req.GetRemainingQuantity(),
		Timestamp:  req.GetTimestampNs(),
	}
}

// FillToProto 域回报转线上表示
func FillToProto(f *domain.Fill) *matchingv1.FillMessage {
	return &matchingv1.FillMessage{
		FillId:                f.FillID,
		OrderId:               f.OrderID,
		Symbol:                f.Symbol,
		Side:                  string(f.Side),
		Price:                 f.Price.InexactFloat64(),
		Quantity:              f.Quantity,
		RemainingQuantity:     f.Remaining,
		TimestampNs:           f.Timestamp,
		BuyerId:               f.BuyerID,
		SellerId:              f.SellerID,
		EngineDestinationAddr: f.DestinationAddr,
	}
}

// FillFromProto 线上表示转域回报
func FillFromProto(msg *matchingv1.FillMessage) *domain.Fill {
	return &domain.Fill{
		FillID:          msg.GetFillId(),
		OrderID:         msg.GetOrderId(),
		Symbol:          msg.GetSymbol(),
		Side:            domain.Side(msg.GetSide()),
		Price:           decimal.NewFromFloat(msg.GetPrice()),
		Quantity:        msg.GetQuantity(),
		Remaining:       msg.GetRemainingQuantity(),
		Timestamp:       msg.GetTimestampNs(),
		BuyerID:         msg.GetBuyerId(),
		SellerID:        msg.GetSellerId(),
		DestinationAddr: msg.GetEngineDestinationAddr(),
	}
}

// LevelsToProto 聚合价位转线上表示
func LevelsToProto(levels []domain.Level) []*matchingv1.PriceLevel {
	out := make([]*matchingv1.PriceLevel, 0, len(levels))
	for _, l := range levels {
		out = append(out, &matchingv1.PriceLevel{
			Price:      l.Price.InexactFloat64(),
			Quantity:   l.Quantity,
			OrderCount: l.OrderCount,
		})
	}
	return out
}

// LevelsFromProto 线上表示转聚合价位
func LevelsFromProto(levels []*matchingv1.PriceLevel) []domain.Level {
	out := make([]domain.Level, 0, len(levels))
	for _, l := range levels {
		out = append(out, domain.Level{
			Price:      decimal.NewFromFloat(l.GetPrice()),
			Quantity:   l.GetQuantity(),
			OrderCount: l.GetOrderCount(),
		})
	}
	return out
}
