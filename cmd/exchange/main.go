// Exchange 主程序
// 功能：交易所引导节点，认证新客户端并把它们分配到某个撮合引擎
package main

import (
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"

	"github.com/wyfcoding/matchcluster/internal/exchange/application"
	exchangegrpc "github.com/wyfcoding/matchcluster/internal/exchange/interfaces/grpc"
	"github.com/wyfcoding/matchcluster/pkg/config"
	"github.com/wyfcoding/matchcluster/pkg/logger"
)

func main() {
	configPath := flag.String("config", "configs/exchange/config.toml", "config file path")
	flag.Parse()

	cfg, err := config.LoadExchange(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if cfg.Secret == "" {
		fmt.Fprintln(os.Stderr, "Exchange secret must be configured")
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logger); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	log := logger.Get()
	log.Info("starting exchange",
		"service", cfg.ServiceName,
		"addr", cfg.Addr,
		"policy", cfg.AssignPolicy,
		"engines", len(cfg.Engines),
	)

	engines := make([]application.Engine, 0, len(cfg.Engines))
	for _, e := range cfg.Engines {
		engines = append(engines, application.Engine{ID: e.ID, Addr: e.Addr, X: e.X, Y: e.Y})
	}
	assigner := application.NewAssigner(
		cfg.Secret, engines,
		application.PolicyByName(cfg.AssignPolicy),
		logger.Component("assigner"),
	)

	listener, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		log.Error("failed to bind", "addr", cfg.Addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()
	exchangegrpc.NewServer(grpcServer, assigner)

	go func() {
		log.Info("gRPC server listening", "addr", cfg.Addr)
		if err := grpcServer.Serve(listener); err != nil {
			log.Error("gRPC server error", "error", err)
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info("shutting down exchange")
	grpcServer.GracefulStop()
	log.Info("exchange stopped")
}
