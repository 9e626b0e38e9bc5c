package svbatch

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/domain/entity"
	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/modules/mdanalysis"
	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/repo/rporder"
	"github.com/mahirr476/Paragon-procurement-App-sub000/pkg/idgen"
)

// BatchService 批次服务，负责批次业务编排
type BatchService struct {
	batchRepo      rporder.BatchRepository
	analysisModule *mdanalysis.AnalysisModule
}

// NewBatchService 创建批次服务实例
func NewBatchService(batchRepo rporder.BatchRepository, analysisModule *mdanalysis.AnalysisModule) *BatchService {
	return &BatchService{
		batchRepo:      batchRepo,
		analysisModule: analysisModule,
	}
}

// CreateBatch 提交分析批次（完整业务流程）
// 1. 验证订单列表非空
// 2. 创建批次与订单并落库
// 3. 发布到分析队列
// 4. Smart Wait（等待分析结果）
func (s *BatchService) CreateBatch(ctx context.Context, orgID string, orders []*entity.PurchaseOrder, waitSeconds int) (*entity.AnalysisBatch, error) {
	if len(orders) == 0 {
		return nil, errors.New("batch orders cannot be empty")
	}

	batchID := uuid.New().String()
	now := time.Now()

	batch := &entity.AnalysisBatch{
		ID:         batchID,
		BatchNo:    idgen.GenerateID(),
		OrgID:      orgID,
		Status:     entity.BatchStatusAnalyzing,
		OrderCount: len(orders),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	for _, po := range orders {
		po.BatchID = batchID
		if po.ID == "" {
			po.ID = uuid.New().String()
		}
		po.CreatedAt = now
		po.UpdatedAt = now
	}

	if err := s.batchRepo.CreateBatch(ctx, batch, orders); err != nil {
		return nil, fmt.Errorf("save batch failed: %w", err)
	}

	// 3. 发布到分析队列
	if err := s.analysisModule.PublishAnalyzeJob(ctx, batch); err != nil {
		// 发布失败只记录日志，不影响批次创建成功
		log.Printf("[WARN] publish analyze job failed: batch_id=%s, error=%v", batch.ID, err)
	}

	// 4. Smart Wait（等待分析结果）
	if waitSeconds > 0 {
		timeout := time.Duration(waitSeconds) * time.Second
		notification, err := s.analysisModule.WaitForAnalysisResult(ctx, batch.ID, timeout)

		if err != nil {
			// 超时或订阅失败，只记录日志
			log.Printf("[WARN] wait for analysis result failed: batch_id=%s, error=%v", batch.ID, err)
			return batch, nil // 返回批次，状态仍为 ANALYZING
		}

		if notification != nil {
			// 重新加载批次（Worker 已持久化结果）
			refreshed, err := s.batchRepo.GetBatchByID(ctx, batch.ID)
			if err != nil {
				return nil, fmt.Errorf("reload batch failed: %w", err)
			}
			if refreshed != nil {
				return refreshed, nil
			}
		}
	}

	return batch, nil
}

// GetBatch 查询批次（含分析结果）
func (s *BatchService) GetBatch(ctx context.Context, batchID string) (*entity.AnalysisBatch, error) {
	batch, err := s.batchRepo.GetBatchByID(ctx, batchID)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, errors.New("batch not found")
	}
	return batch, nil
}

// GetBatchOrders 查询批次内订单
func (s *BatchService) GetBatchOrders(ctx context.Context, batchID string) ([]*entity.PurchaseOrder, error) {
	return s.batchRepo.GetBatchOrders(ctx, batchID)
}
