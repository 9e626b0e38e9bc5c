package svcallback

import (
	"context"
	"fmt"
	"time"

	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/domain/entity"
	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/domain/model"
	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/repo/rporder"
	"github.com/mahirr476/Paragon-procurement-App-sub000/pkg/infra/redis"
	"github.com/mahirr476/Paragon-procurement-App-sub000/pkg/logger"
)

// CallbackService 回调处理服务
// 职责：
// 1. 处理 Worker 发送的分析回调
// 2. 更新 DB 批次状态（Worker 侧写入失败时的兜底路径）
// 3. 发送 Redis PubSub 通知（Smart Wait）
type CallbackService struct {
	batchRepo     rporder.BatchRepository
	pubsub        *redis.PubSub
	notifyChannel string
	logger        logger.Logger
}

// NewCallbackService 创建回调服务实例
func NewCallbackService(
	batchRepo rporder.BatchRepository,
	pubsub *redis.PubSub,
	notifyChannel string,
	log logger.Logger,
) *CallbackService {
	return &CallbackService{
		batchRepo:     batchRepo,
		pubsub:        pubsub,
		notifyChannel: notifyChannel,
		logger:        log,
	}
}

// HandleCallback 处理分析回调
// 返回 error 表示处理失败（需要重试）
func (s *CallbackService) HandleCallback(ctx context.Context, callback *model.BatchAnalyzeCallback) error {
	s.logger.Infof(ctx, "Processing callback: batch_id=%s, status=%s, request_id=%s",
		callback.BatchID, callback.Status, callback.RequestID)

	// 1. 根据回调状态更新 DB
	if err := s.updateBatchStatus(ctx, callback); err != nil {
		s.logger.Errorf(ctx, "Failed to update batch status: batch_id=%s, err=%v", callback.BatchID, err)
		return fmt.Errorf("update batch status failed: %w", err)
	}

	// 2. 发送 Redis PubSub 通知（用于 Smart Wait）
	if err := s.publishNotification(ctx, callback); err != nil {
		// 通知失败不影响整体流程（DB 已更新成功），只记录日志
		s.logger.Warnf(ctx, "Failed to publish notification: batch_id=%s, err=%v", callback.BatchID, err)
	}

	s.logger.Infof(ctx, "Callback processed: batch_id=%s", callback.BatchID)

	return nil
}

// updateBatchStatus 根据回调状态更新批次
func (s *CallbackService) updateBatchStatus(ctx context.Context, callback *model.BatchAnalyzeCallback) error {
	if callback.Status == model.CallbackStatusSuccess {
		return s.batchRepo.UpdateAnalysisResult(
			ctx,
			callback.BatchID,
			callback.AnalysisResult,
			entity.BatchStatusAnalyzed,
			"",
		)
	}

	return s.batchRepo.UpdateAnalysisResult(
		ctx,
		callback.BatchID,
		nil,
		entity.BatchStatusFailed,
		callback.Error,
	)
}

// publishNotification 发送 Redis PubSub 通知（批次独立频道）
func (s *CallbackService) publishNotification(ctx context.Context, callback *model.BatchAnalyzeCallback) error {
	channel := fmt.Sprintf("%s:%s", s.notifyChannel, callback.BatchID)

	status := entity.BatchStatusAnalyzed
	if callback.Status != model.CallbackStatusSuccess {
		status = entity.BatchStatusFailed
	}

	notification := &redis.AnalysisNotification{
		BatchID:   callback.BatchID,
		OrgID:     callback.OrgID,
		Status:    status,
		Timestamp: time.Now().Unix(),
	}

	return s.pubsub.PublishAnalysisComplete(ctx, channel, notification)
}
