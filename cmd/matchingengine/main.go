// MatchingEngine 主程序
// 功能：单个撮合引擎节点，承接客户端订单并与对等引擎 gossip 同步
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/grpc"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/wyfcoding/matchcluster/internal/matching/application"
	"github.com/wyfcoding/matchcluster/internal/matching/infrastructure/peer"
	"github.com/wyfcoding/matchcluster/internal/matching/infrastructure/persistence/mysql"
	enginegrpc "github.com/wyfcoding/matchcluster/internal/matching/interfaces/grpc"
	enginehttp "github.com/wyfcoding/matchcluster/internal/matching/interfaces/http"
	"github.com/wyfcoding/matchcluster/pkg/config"
	"github.com/wyfcoding/matchcluster/pkg/logger"
	"github.com/wyfcoding/matchcluster/pkg/metrics"
)

func main() {
	configPath := flag.String("config", "configs/matchingengine/config.toml", "config file path")
	flag.Parse()

	// 1. 加载配置
	cfg, err := config.LoadEngine(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if cfg.Engine.Secret == "" {
		fmt.Fprintln(os.Stderr, "Engine secret must be configured")
		os.Exit(1)
	}

	// 2. 初始化日志
	if err := logger.Init(cfg.Logger); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	log := logger.Get()
	log.Info("starting matching engine",
		"service", cfg.ServiceName,
		"engine_id", cfg.Engine.ID,
		"addr", cfg.Engine.Addr,
		"peers", cfg.Engine.Peers,
		"environment", cfg.Environment,
	)

	// 3. 初始化指标
	registry := prometheus.NewRegistry()
	m := metrics.New("engine", registry)

	// 4. 初始化撮合引擎
	engine := application.NewMatchEngine(
		cfg.Engine.ID, cfg.Engine.Addr, cfg.Engine.Secret,
		cfg.Engine.FillQueueSize, m, logger.Component("engine"),
	)

	// 5. 可选：成交流水落库
	var journal *mysql.FillRepository
	if cfg.Database.DSN != "" {
		db, err := gorm.Open(gormmysql.Open(cfg.Database.DSN), &gorm.Config{})
		if err != nil {
			log.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		journal, err = mysql.NewFillRepository(db)
		if err != nil {
			log.Error("failed to migrate fill journal", "error", err)
			os.Exit(1)
		}
		engine.SetFillRecorder(journal)
		log.Info("fill journal enabled")
	}

	// 6. 初始化同步器并完成双向 wiring
	sync, err := peer.NewSynchronizer(peer.Config{
		EngineID:        cfg.Engine.ID,
		Addr:            cfg.Engine.Addr,
		Peers:           cfg.Engine.Peers,
		Interval:        time.Duration(cfg.Gossip.IntervalMs) * time.Millisecond,
		PullTimeout:     time.Duration(cfg.Gossip.PullTimeoutMs) * time.Millisecond,
		RouteTimeout:    time.Duration(cfg.Gossip.RouteTimeoutMs) * time.Millisecond,
		UpdateQueueSize: cfg.Gossip.UpdateQueueSize,
	}, engine, m, logger.Component("synchronizer"))
	if err != nil {
		log.Error("failed to create synchronizer", "error", err)
		os.Exit(1)
	}
	defer sync.Close()
	engine.SetPeerRouter(sync)

	// 7. gRPC 服务器，绑定失败直接退出
	listener, err := net.Listen("tcp", cfg.Engine.Addr)
	if err != nil {
		log.Error("failed to bind", "addr", cfg.Engine.Addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()
	enginegrpc.NewServer(grpcServer, engine, sync)

	go func() {
		log.Info("gRPC server listening", "addr", cfg.Engine.Addr)
		if err := grpcServer.Serve(listener); err != nil {
			log.Error("gRPC server error", "error", err)
			os.Exit(1)
		}
	}()

	// 8. gossip 循环
	gossipCtx, stopGossip := context.WithCancel(context.Background())
	go func() {
		if err := sync.Run(gossipCtx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("gossip loop error", "error", err)
		}
	}()

	// 9. 运维 HTTP 端口
	var httpServer *http.Server
	if cfg.HTTP.Addr != "" {
		gin.SetMode(gin.ReleaseMode)
		router := gin.New()
		router.Use(gin.Recovery())
		enginehttp.NewOpsHandler(engine, sync, registry, journal).RegisterRoutes(router)

		httpServer = &http.Server{Addr: cfg.HTTP.Addr, Handler: router}
		go func() {
			log.Info("ops HTTP server listening", "addr", cfg.HTTP.Addr)
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("HTTP server error", "error", err)
			}
		}()
	}

	// 10. 优雅关停：停收新单、排空回报、停 gossip、关服务器
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info("shutting down matching engine")
	engine.Drain(time.Duration(cfg.Engine.DrainGraceMs) * time.Millisecond)
	stopGossip()

	if httpServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Error("HTTP server shutdown error", "error", err)
		}
		cancel()
	}
	grpcServer.GracefulStop()

	log.Info("matching engine stopped")
}
