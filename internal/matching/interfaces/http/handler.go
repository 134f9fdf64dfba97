// Package http 撮合引擎的运维端口：健康检查、指标与调试视图
package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wyfcoding/matchcluster/internal/matching/application"
	"github.com/wyfcoding/matchcluster/internal/matching/domain"
	"github.com/wyfcoding/matchcluster/internal/matching/infrastructure/peer"
	"github.com/wyfcoding/matchcluster/internal/matching/infrastructure/persistence/mysql"
)

// OpsHandler 运维 HTTP 处理器
type OpsHandler struct {
	engine   *application.MatchEngine
	sync     *peer.Synchronizer
	registry *prometheus.Registry
	journal  *mysql.FillRepository
}

// NewOpsHandler 创建运维处理器实例。journal 可为 nil（未开启落库）。
func NewOpsHandler(engine *application.MatchEngine, sync *peer.Synchronizer, registry *prometheus.Registry, journal *mysql.FillRepository) *OpsHandler {
	return &OpsHandler{engine: engine, sync: sync, registry: registry, journal: journal}
}

// RegisterRoutes 将处理器方法绑定到 Gin 路由引擎
func (h *OpsHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/healthz", h.Health)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(h.registry, promhttp.HandlerOpts{})))

	debug := router.Group("/debug")
	{
		debug.GET("/orderbook/:symbol", h.OrderBook)
		debug.GET("/bbo/:symbol", h.BBO)
		debug.GET("/fills/:client", h.RecentFills)
	}
}

// Health 健康检查
func (h *OpsHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"engine_id": h.engine.ID(),
		"addr":      h.engine.Addr(),
		"timestamp": time.Now().Unix(),
	})
}

// OrderBook 返回本引擎某品种的聚合订单簿
func (h *OpsHandler) OrderBook(c *gin.Context) {
	symbol := c.Param("symbol")
	seq, bids, asks := h.engine.Snapshot(symbol)
	c.JSON(http.StatusOK, gin.H{
		"symbol":          symbol,
		"sequence_number": seq,
		"bids":            levelsJSON(bids),
		"asks":            levelsJSON(asks),
	})
}

// BBO 返回某品种的全局最优买卖价视图
func (h *OpsHandler) BBO(c *gin.Context) {
	symbol := c.Param("symbol")
	bid, ask, bidAddr, askAddr, hasBid, hasAsk := h.sync.GlobalBBO(symbol)

	resp := gin.H{"symbol": symbol}
	if hasBid {
		resp["best_bid"] = gin.H{"price": bid.String(), "engine_addr": bidAddr}
	}
	if hasAsk {
		resp["best_ask"] = gin.H{"price": ask.String(), "engine_addr": askAddr}
	}
	c.JSON(http.StatusOK, resp)
}

// RecentFills 返回某客户端最近的成交流水，需要开启成交落库
func (h *OpsHandler) RecentFills(c *gin.Context) {
	if h.journal == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "fill journal disabled"})
		return
	}

	clientID := c.Param("client")
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit <= 0 || limit > 500 {
		limit = 50
	}

	records, err := h.journal.RecentByClient(c.Request.Context(), clientID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"client_id": clientID, "fills": records})
}

func levelsJSON(levels []domain.Level) []gin.H {
	out := make([]gin.H, 0, len(levels))
	for _, l := range levels {
		out = append(out, gin.H{
			"price":       l.Price.String(),
			"quantity":    l.Quantity,
			"order_count": l.OrderCount,
		})
	}
	return out
}
