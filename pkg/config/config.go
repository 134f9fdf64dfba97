// Package config 提供 TOML 配置加载与环境变量覆盖
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/wyfcoding/matchcluster/pkg/logger"
)

// EngineConfig 撮合引擎节点配置
type EngineConfig struct {
	// 服务名称
	ServiceName string `mapstructure:"service_name"`
	// 环境：dev, staging, prod
	Environment string `mapstructure:"environment"`
	// 引擎配置
	Engine EngineSection `mapstructure:"engine"`
	// gossip 同步配置
	Gossip GossipSection `mapstructure:"gossip"`
	// HTTP 运维端口配置
	HTTP HTTPSection `mapstructure:"http"`
	// 数据库配置（可选，成交流水落库）
	Database DatabaseSection `mapstructure:"database"`
	// 日志配置
	Logger logger.Config `mapstructure:"logger"`
}

// EngineSection 引擎自身标识与监听配置
type EngineSection struct {
	// 引擎 ID，运维分配，例如 engine-0
	ID string `mapstructure:"id"`
	// 对外地址 ip:port，同时作为订单 origin 标识
	Addr string `mapstructure:"addr"`
	// 对等引擎地址列表
	Peers []string `mapstructure:"peers"`
	// 客户端注册共享密钥
	Secret string `mapstructure:"secret"`
	// 每个客户端回报队列容量
	FillQueueSize int `mapstructure:"fill_queue_size"`
	// 停机时回报排空宽限期（毫秒）
	DrainGraceMs int `mapstructure:"drain_grace_ms"`
}

// GossipSection 同步器配置
type GossipSection struct {
	// gossip 轮询间隔（毫秒），上限 100
	IntervalMs int `mapstructure:"interval_ms"`
	// 对端拉取超时（毫秒）
	PullTimeoutMs int `mapstructure:"pull_timeout_ms"`
	// 订单转发超时（毫秒）
	RouteTimeoutMs int `mapstructure:"route_timeout_ms"`
	// 出站更新队列容量
	UpdateQueueSize int `mapstructure:"update_queue_size"`
}

// HTTPSection 运维 HTTP 端口（/metrics、/healthz、/debug）
type HTTPSection struct {
	// 监听地址，留空则不启动
	Addr string `mapstructure:"addr"`
}

// DatabaseSection 数据库配置
type DatabaseSection struct {
	// MySQL DSN，留空则纯内存运行
	DSN string `mapstructure:"dsn"`
}

// ExchangeConfig 交易所引导节点配置
type ExchangeConfig struct {
	ServiceName string `mapstructure:"service_name"`
	Environment string `mapstructure:"environment"`
	// 监听地址
	Addr string `mapstructure:"addr"`
	// 客户端注册共享密钥
	Secret string `mapstructure:"secret"`
	// 分配策略：random, nearest
	AssignPolicy string `mapstructure:"assign_policy"`
	// 引擎目录
	Engines []EngineEntry `mapstructure:"engines"`
	// 日志配置
	Logger logger.Config `mapstructure:"logger"`
}

// EngineEntry 引擎目录条目
type EngineEntry struct {
	ID   string  `mapstructure:"id"`
	Addr string  `mapstructure:"addr"`
	X    float64 `mapstructure:"x"`
	Y    float64 `mapstructure:"y"`
}

// LoadEngine 加载撮合引擎配置
func LoadEngine(path string) (*EngineConfig, error) {
	v, err := read(path)
	if err != nil {
		return nil, err
	}

	cfg := &EngineConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal engine config: %w", err)
	}
	if cfg.Engine.FillQueueSize <= 0 {
		cfg.Engine.FillQueueSize = 1024
	}
	if cfg.Engine.DrainGraceMs <= 0 {
		cfg.Engine.DrainGraceMs = 2000
	}
	if cfg.Gossip.IntervalMs <= 0 || cfg.Gossip.IntervalMs > 100 {
		cfg.Gossip.IntervalMs = 100
	}
	if cfg.Gossip.PullTimeoutMs <= 0 {
		cfg.Gossip.PullTimeoutMs = 1000
	}
	if cfg.Gossip.RouteTimeoutMs <= 0 {
		cfg.Gossip.RouteTimeoutMs = 15000
	}
	if cfg.Gossip.UpdateQueueSize <= 0 {
		cfg.Gossip.UpdateQueueSize = 4096
	}
	return cfg, nil
}

// LoadExchange 加载交易所引导节点配置
func LoadExchange(path string) (*ExchangeConfig, error) {
	v, err := read(path)
	if err != nil {
		return nil, err
	}

	cfg := &ExchangeConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal exchange config: %w", err)
	}
	if cfg.AssignPolicy == "" {
		cfg.AssignPolicy = "random"
	}
	return cfg, nil
}

func read(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("MATCHCLUSTER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return v, nil
}
