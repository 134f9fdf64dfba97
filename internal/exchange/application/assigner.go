// Package application 交易所引导节点：认证新客户端并分配撮合引擎
package application

import (
	"crypto/subtle"
	"errors"
	"log/slog"
	"math"
	"math/rand/v2"
)

var (
	// ErrAuthFailed 共享密钥校验失败
	ErrAuthFailed = errors.New("auth failed")
	// ErrNoEngines 引擎目录为空，无法分配
	ErrNoEngines = errors.New("no engines configured")
)

// Engine 引擎目录条目。X/Y 为逻辑坐标，供就近分配策略使用。
type Engine struct {
	ID   string
	Addr string
	X    float64
	Y    float64
}

// AssignPolicy 引擎分配策略
type AssignPolicy interface {
	Pick(engines []Engine, x, y float64) Engine
}

// RandomPolicy 均匀随机分配，基线策略
type RandomPolicy struct{}

func (RandomPolicy) Pick(engines []Engine, _, _ float64) Engine {
	return engines[rand.IntN(len(engines))]
}

// NearestPolicy 按客户端坐标欧氏距离就近分配
type NearestPolicy struct{}

func (NearestPolicy) Pick(engines []Engine, x, y float64) Engine {
	best := engines[0]
	bestDist := math.Hypot(best.X-x, best.Y-y)
	for _, e := range engines[1:] {
		if d := math.Hypot(e.X-x, e.Y-y); d < bestDist {
			best, bestDist = e, d
		}
	}
	return best
}

// PolicyByName 按配置名取策略，未知名称回落到随机
func PolicyByName(name string) AssignPolicy {
	if name == "nearest" {
		return NearestPolicy{}
	}
	return RandomPolicy{}
}

// Assigner 客户端到引擎的分配器
type Assigner struct {
	secret  string
	engines []Engine
	policy  AssignPolicy
	logger  *slog.Logger
}

// NewAssigner 创建分配器
func NewAssigner(secret string, engines []Engine, policy AssignPolicy, logger *slog.Logger) *Assigner {
	return &Assigner{secret: secret, engines: engines, policy: policy, logger: logger}
}

// Assign 认证并返回分配的引擎。密钥比较为常数时间。
func (a *Assigner) Assign(clientID, secret string, x, y float64) (Engine, error) {
	if subtle.ConstantTimeCompare([]byte(secret), []byte(a.secret)) != 1 {
		a.logger.Warn("client auth failed", "client_id", clientID)
		return Engine{}, ErrAuthFailed
	}
	if len(a.engines) == 0 {
		return Engine{}, ErrNoEngines
	}

	engine := a.policy.Pick(a.engines, x, y)
	a.logger.Info("client assigned",
		"client_id", clientID, "engine_id", engine.ID, "engine_addr", engine.Addr)
	return engine, nil
}
