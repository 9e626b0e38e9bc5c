package mysql

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/domain/entity"
)

// OrderDAO 采购订单数据访问对象
type OrderDAO struct {
	db *gorm.DB
}

// NewOrderDAO 创建 OrderDAO 实例
func NewOrderDAO(dsn string) (*OrderDAO, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &OrderDAO{
		db: db,
	}, nil
}

// NewOrderDAOWithDB 基于已有连接创建 OrderDAO（API 服务与 Worker 共用连接时使用）
func NewOrderDAOWithDB(db *gorm.DB) *OrderDAO {
	return &OrderDAO{db: db}
}

// DB 返回底层 gorm 连接
func (dao *OrderDAO) DB() *gorm.DB {
	return dao.db
}

// GetBatchOrders 获取批次内的采购订单（待分析订单）
func (dao *OrderDAO) GetBatchOrders(ctx context.Context, batchID string) ([]*entity.PurchaseOrder, error) {
	var orders []*entity.PurchaseOrder
	result := dao.db.WithContext(ctx).Where("batch_id = ?", batchID).Find(&orders)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to get batch orders: %w", result.Error)
	}
	return orders, nil
}

// GetApprovedOrders 获取已审批的历史订单（异常检测的基线数据）
func (dao *OrderDAO) GetApprovedOrders(ctx context.Context) ([]*entity.PurchaseOrder, error) {
	var orders []*entity.PurchaseOrder
	result := dao.db.WithContext(ctx).Where("is_approved = ?", true).Find(&orders)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to get approved orders: %w", result.Error)
	}
	return orders, nil
}

// GetAllOrders 获取全部采购订单（趋势/报表分析数据源）
func (dao *OrderDAO) GetAllOrders(ctx context.Context) ([]*entity.PurchaseOrder, error) {
	var orders []*entity.PurchaseOrder
	result := dao.db.WithContext(ctx).Find(&orders)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to get orders: %w", result.Error)
	}
	return orders, nil
}

// CreateBatch 创建分析批次及其订单（同一事务）
func (dao *OrderDAO) CreateBatch(ctx context.Context, batch *entity.AnalysisBatch, orders []*entity.PurchaseOrder) error {
	return dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(batch).Error; err != nil {
			return fmt.Errorf("failed to create batch: %w", err)
		}
		if len(orders) > 0 {
			if err := tx.Create(orders).Error; err != nil {
				return fmt.Errorf("failed to create batch orders: %w", err)
			}
		}
		return nil
	})
}

// GetBatchByID 根据批次 ID 获取批次
func (dao *OrderDAO) GetBatchByID(ctx context.Context, batchID string) (*entity.AnalysisBatch, error) {
	var batch entity.AnalysisBatch
	result := dao.db.WithContext(ctx).Where("id = ?", batchID).First(&batch)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to get batch: %w", result.Error)
	}
	return &batch, nil
}

// UpdateAnalysisResult 更新批次的分析结果
// 参数：
//   - ctx: 上下文
//   - batchID: 批次 ID
//   - result: 分析结果数据
//   - status: 批次状态（ANALYZED/FAILED）
//   - errorMsg: 错误消息（失败时）
func (dao *OrderDAO) UpdateAnalysisResult(
	ctx context.Context,
	batchID string,
	result interface{},
	status string,
	errorMsg string,
) error {
	// 序列化分析结果为 JSON
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis result: %w", err)
	}

	// 构造更新字段
	updates := map[string]interface{}{
		"status":          status,
		"analysis_result": resultJSON,
	}

	if errorMsg != "" {
		updates["error_message"] = errorMsg
	}

	// 执行更新
	dbResult := dao.db.WithContext(ctx).
		Model(&entity.AnalysisBatch{}).
		Where("id = ?", batchID).
		Updates(updates)

	if dbResult.Error != nil {
		return fmt.Errorf("failed to update batch: %w", dbResult.Error)
	}

	if dbResult.RowsAffected == 0 {
		return fmt.Errorf("batch not found: %s", batchID)
	}

	return nil
}

// Close 关闭数据库连接
func (dao *OrderDAO) Close() error {
	sqlDB, err := dao.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
