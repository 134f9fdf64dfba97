// Package mysql 成交流水落库，可选组件
package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/wyfcoding/matchcluster/internal/matching/domain"
)

// FillRecord 成交流水表模型
type FillRecord struct {
	ID          uint   `gorm:"primaryKey"`
	FillID      string `gorm:"column:fill_id;size:128;uniqueIndex:uk_fill_order,priority:1"`
	OrderID     string `gorm:"column:order_id;size:64;uniqueIndex:uk_fill_order,priority:2;index"`
	Symbol      string `gorm:"size:32;index"`
	Side        string `gorm:"size:8"`
	Price       string `gorm:"size:32"`
	Quantity    uint64
	Remaining   uint64
	TimestampNs int64  `gorm:"column:timestamp_ns"`
	BuyerID     string `gorm:"column:buyer_id;size:64;index"`
	SellerID    string `gorm:"column:seller_id;size:64;index"`
}

func (FillRecord) TableName() string { return "fills" }

type FillRepository struct{ db *gorm.DB }

// NewFillRepository 创建成交流水仓储并迁移表结构
func NewFillRepository(db *gorm.DB) (*FillRepository, error) {
	if err := db.AutoMigrate(&FillRecord{}); err != nil {
		return nil, err
	}
	return &FillRepository{db: db}, nil
}

// Record 追加一条流水。同一 (fill_id, order_id) 的重放写入被忽略，
// 与回报的至少一次投递语义对齐。
func (r *FillRepository) Record(ctx context.Context, fill *domain.Fill) error {
	rec := &FillRecord{
		FillID:      fill.FillID,
		OrderID:     fill.OrderID,
		Symbol:      fill.Symbol,
		Side:        string(fill.Side),
		Price:       fill.Price.String(),
		Quantity:    fill.Quantity,
		Remaining:   fill.Remaining,
		TimestampNs: fill.Timestamp,
		BuyerID:     fill.BuyerID,
		SellerID:    fill.SellerID,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(rec).Error
}

// RecentByClient 查询客户端最近的成交流水
func (r *FillRepository) RecentByClient(ctx context.Context, clientID string, limit int) ([]*FillRecord, error) {
	var records []*FillRecord
	err := r.db.WithContext(ctx).
		Where("buyer_id = ? OR seller_id = ?", clientID, clientID).
		Order("timestamp_ns DESC").
		Limit(limit).
		Find(&records).Error
	return records, err
}
