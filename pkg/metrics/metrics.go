// Package metrics 提供 Prometheus helper，覆盖撮合、路由与 gossip 的常用指标
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics 指标集合
type Metrics struct {
	// 接收订单计数（含对端转发来的订单）
	OrdersTotal prometheus.Counter
	// 被拒订单计数
	OrdersRejected prometheus.Counter
	// 转发到对端的订单计数
	OrdersRouted prometheus.Counter
	// 本地产生的成交回报计数
	FillsTotal prometheus.Counter
	// 回传对端 origin 引擎的回报计数
	FillsRouted prometheus.Counter
	// 因路由表缺失而丢弃的回报计数
	FillsDropped prometheus.Counter
	// 撮合耗时
	MatchDuration prometheus.Histogram
	// gossip 轮次计数
	GossipRounds prometheus.Counter
	// 对端同步失败计数
	PeerSyncFailures prometheus.Counter
	// 当前注册客户端数
	ClientsActive prometheus.Gauge
	// 回报队列积压
	FillQueueDepth prometheus.Gauge
}

// New 创建并注册指标实例
func New(serviceName string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		OrdersTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "matchcluster",
			Subsystem: serviceName,
			Name:      "orders_total",
			Help:      "Total orders admitted by this engine",
		}),
		OrdersRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "matchcluster",
			Subsystem: serviceName,
			Name:      "orders_rejected_total",
			Help:      "Total orders rejected by validation",
		}),
		OrdersRouted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "matchcluster",
			Subsystem: serviceName,
			Name:      "orders_routed_total",
			Help:      "Total orders forwarded to a better peer",
		}),
		FillsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "matchcluster",
			Subsystem: serviceName,
			Name:      "fills_total",
			Help:      "Total fills produced locally",
		}),
		FillsRouted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "matchcluster",
			Subsystem: serviceName,
			Name:      "fills_routed_total",
			Help:      "Total fills routed back to an origin engine",
		}),
		FillsDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "matchcluster",
			Subsystem: serviceName,
			Name:      "fills_dropped_total",
			Help:      "Total fills dropped because no routing-table entry existed",
		}),
		MatchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "matchcluster",
			Subsystem: serviceName,
			Name:      "match_duration_seconds",
			Help:      "Order matching duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.000001, 4, 12),
		}),
		GossipRounds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "matchcluster",
			Subsystem: serviceName,
			Name:      "gossip_rounds_total",
			Help:      "Total gossip broadcast/pull rounds",
		}),
		PeerSyncFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "matchcluster",
			Subsystem: serviceName,
			Name:      "peer_sync_failures_total",
			Help:      "Total failed peer sync RPCs",
		}),
		ClientsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "matchcluster",
			Subsystem: serviceName,
			Name:      "clients_active",
			Help:      "Number of clients registered on this engine",
		}),
		FillQueueDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "matchcluster",
			Subsystem: serviceName,
			Name:      "fill_queue_depth",
			Help:      "Pending fills across all client queues",
		}),
	}

	if reg != nil {
		reg.MustRegister(
			m.OrdersTotal, m.OrdersRejected, m.OrdersRouted,
			m.FillsTotal, m.FillsRouted, m.FillsDropped,
			m.MatchDuration, m.GossipRounds, m.PeerSyncFailures,
			m.ClientsActive, m.FillQueueDepth,
		)
	}
	return m
}

// Nop 返回未注册的指标实例，供测试使用
func Nop() *Metrics {
	return New("test", nil)
}
