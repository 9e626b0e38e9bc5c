package rporder

import (
	"context"

	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/domain/entity"
	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/domain/model"
)

// BatchRepository 批次仓储接口（只定义，不实现）
// 实现在 batch_repo_impl.go（MySQL）
type BatchRepository interface {
	// CreateBatch 创建分析批次及其订单（同一事务）
	CreateBatch(ctx context.Context, batch *entity.AnalysisBatch, orders []*entity.PurchaseOrder) error

	// GetBatchByID 根据ID查询批次
	GetBatchByID(ctx context.Context, batchID string) (*entity.AnalysisBatch, error)

	// GetBatchOrders 查询批次内的订单
	GetBatchOrders(ctx context.Context, batchID string) ([]*entity.PurchaseOrder, error)

	// GetAllOrders 查询全部订单（趋势/报表数据源）
	GetAllOrders(ctx context.Context) ([]*entity.PurchaseOrder, error)

	// GetApprovedOrders 查询已审批订单（报表数据源）
	GetApprovedOrders(ctx context.Context) ([]*entity.PurchaseOrder, error)

	// UpdateStatus 更新批次状态
	UpdateStatus(ctx context.Context, batchID string, status string) error

	// UpdateAnalysisResult 更新批次分析结果（支持成功/失败两种情况）
	// result: 分析结果（成功时传入，失败时传 nil）
	// status: 批次状态（ANALYZED 或 FAILED）
	// errorMsg: 错误信息（失败时传入）
	UpdateAnalysisResult(ctx context.Context, batchID string, result *model.BatchAnalysisData, status string, errorMsg string) error
}
