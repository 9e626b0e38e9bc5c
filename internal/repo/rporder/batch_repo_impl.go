package rporder

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/domain/entity"
	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/domain/model"
)

// BatchRepositoryImpl 批次仓储实现（MySQL）
type BatchRepositoryImpl struct {
	db *gorm.DB
}

// NewBatchRepository 创建批次仓储实例
func NewBatchRepository(db *gorm.DB) BatchRepository {
	return &BatchRepositoryImpl{db: db}
}

// CreateBatch 创建分析批次及其订单（同一事务）
func (r *BatchRepositoryImpl) CreateBatch(ctx context.Context, batch *entity.AnalysisBatch, orders []*entity.PurchaseOrder) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(batch).Error; err != nil {
			return err
		}
		if len(orders) > 0 {
			if err := tx.Create(orders).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetBatchByID 根据ID查询批次
func (r *BatchRepositoryImpl) GetBatchByID(ctx context.Context, batchID string) (*entity.AnalysisBatch, error) {
	var batch entity.AnalysisBatch
	err := r.db.WithContext(ctx).Where("id = ?", batchID).First(&batch).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &batch, nil
}

// GetBatchOrders 查询批次内的订单
func (r *BatchRepositoryImpl) GetBatchOrders(ctx context.Context, batchID string) ([]*entity.PurchaseOrder, error) {
	var orders []*entity.PurchaseOrder
	err := r.db.WithContext(ctx).Where("batch_id = ?", batchID).Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// GetAllOrders 查询全部订单（趋势/报表数据源）
func (r *BatchRepositoryImpl) GetAllOrders(ctx context.Context) ([]*entity.PurchaseOrder, error) {
	var orders []*entity.PurchaseOrder
	err := r.db.WithContext(ctx).Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// GetApprovedOrders 查询已审批订单（报表数据源）
func (r *BatchRepositoryImpl) GetApprovedOrders(ctx context.Context) ([]*entity.PurchaseOrder, error) {
	var orders []*entity.PurchaseOrder
	err := r.db.WithContext(ctx).Where("is_approved = ?", true).Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateAnalysisResult 更新批次分析结果（支持成功/失败两种情况）
func (r *BatchRepositoryImpl) UpdateAnalysisResult(ctx context.Context, batchID string, result *model.BatchAnalysisData, status string, errorMsg string) error {
	updates := map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	}

	// 成功时保存分析结果
	if result != nil {
		resultJSON, err := json.Marshal(result)
		if err != nil {
			return err
		}
		updates["analysis_result"] = resultJSON
	}

	// 失败时保存错误信息
	if errorMsg != "" {
		updates["error_message"] = errorMsg
	}

	return r.db.WithContext(ctx).
		Model(&entity.AnalysisBatch{}).
		Where("id = ?", batchID).
		Updates(updates).Error
}

// UpdateStatus 更新批次状态
func (r *BatchRepositoryImpl) UpdateStatus(ctx context.Context, batchID string, status string) error {
	return r.db.WithContext(ctx).
		Model(&entity.AnalysisBatch{}).
		Where("id = ?", batchID).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		}).Error
}
