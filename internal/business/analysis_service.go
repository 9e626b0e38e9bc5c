package business

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/analysis"
	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/analysis/anomaly"
	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/domain/entity"
	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/domain/model"
	"github.com/mahirr476/Paragon-procurement-App-sub000/pkg/infra/mysql"
	"github.com/mahirr476/Paragon-procurement-App-sub000/pkg/infra/redis"
	"github.com/mahirr476/Paragon-procurement-App-sub000/pkg/lmstfy"
)

// AnalysisInput 批次分析输入
type AnalysisInput struct {
	RequestID  string
	BatchID    string
	OrgID      string
	OrderCount int
}

// AnalysisService 批次分析服务
// 职责：加载订单 → 执行异常检测 → 持久化结果 → 发布通知 → 发送回调
type AnalysisService struct {
	detector      *anomaly.Detector
	orderDAO      *mysql.OrderDAO
	pubsub        *redis.PubSub
	lmstfyClient  *lmstfy.Client
	callbackQueue string
	notifyChannel string
}

// NewAnalysisService 创建批次分析服务实例
func NewAnalysisService(
	orderDAO *mysql.OrderDAO,
	pubsub *redis.PubSub,
	lmstfyClient *lmstfy.Client,
	callbackQueue string,
	notifyChannel string,
) *AnalysisService {
	return &AnalysisService{
		detector:      anomaly.NewDetector(),
		orderDAO:      orderDAO,
		pubsub:        pubsub,
		lmstfyClient:  lmstfyClient,
		callbackQueue: callbackQueue,
		notifyChannel: notifyChannel,
	}
}

// ExecuteAnalysis 执行批次分析并发送回调
// 返回分析汇总数据（失败时为 nil）和错误（分析失败或回调发送失败）
func (s *AnalysisService) ExecuteAnalysis(ctx context.Context, input *AnalysisInput) (*model.BatchAnalysisData, error) {
	// 1. 执行分析
	resultData, analysisErr := s.analyzeBatch(ctx, input)

	// 2. 持久化结果 + 发布 Redis 通知
	status := entity.BatchStatusAnalyzed
	errorMsg := ""
	if analysisErr != nil {
		status = entity.BatchStatusFailed
		errorMsg = analysisErr.Error()
	}

	if err := s.orderDAO.UpdateAnalysisResult(ctx, input.BatchID, resultData, status, errorMsg); err != nil {
		return nil, fmt.Errorf("failed to persist analysis result: %w", err)
	}

	notification := &redis.AnalysisNotification{
		BatchID:   input.BatchID,
		OrgID:     input.OrgID,
		Status:    status,
		Timestamp: time.Now().Unix(),
	}
	// 频道命名约定：{prefix}:{batchID}，Smart Wait 按批次订阅
	channel := fmt.Sprintf("%s:%s", s.notifyChannel, input.BatchID)
	if err := s.pubsub.PublishAnalysisComplete(ctx, channel, notification); err != nil {
		// 通知失败不影响主流程，等待方会走超时分支
		log.Printf("[WARN] publish analysis notification failed: batch_id=%s, error=%v", input.BatchID, err)
	}

	// 3. 构造回调消息
	callback := model.BatchAnalyzeCallback{
		RequestID:   input.RequestID,
		BatchID:     input.BatchID,
		OrgID:       input.OrgID,
		ProcessedAt: time.Now().Unix(),
	}

	if analysisErr != nil {
		callback.Status = model.CallbackStatusFailed
		callback.Error = analysisErr.Error()
	} else {
		callback.Status = model.CallbackStatusSuccess
		callback.AnalysisResult = resultData
	}

	// 4. 序列化回调消息为 JSON
	callbackJSON, err := json.Marshal(callback)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal callback: %w", err)
	}

	// 5. 发送回调到 callback 队列
	// ttl=0 表示永不过期, delay=0 表示立即可用
	if err := s.lmstfyClient.Publish(s.callbackQueue, callbackJSON, 0, 0); err != nil {
		return nil, fmt.Errorf("failed to publish callback: %w", err)
	}

	return resultData, analysisErr
}

// analyzeBatch 加载批次订单与历史基线，执行异常检测
func (s *AnalysisService) analyzeBatch(ctx context.Context, input *AnalysisInput) (*model.BatchAnalysisData, error) {
	// 加载批次内待分析订单
	batchEntities, err := s.orderDAO.GetBatchOrders(ctx, input.BatchID)
	if err != nil {
		return nil, fmt.Errorf("failed to load batch orders: %w", err)
	}
	if len(batchEntities) == 0 {
		return nil, fmt.Errorf("batch has no orders: %s", input.BatchID)
	}

	// 加载已审批历史订单（价格基线）
	historyEntities, err := s.orderDAO.GetApprovedOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load approved orders: %w", err)
	}

	pending := analysis.NormalizeOrders(entity.ToModels(batchEntities))
	historical := analysis.NormalizeOrders(entity.ToModels(historyEntities))

	results := s.detector.AnalyzeOrders(pending, historical)

	return &model.BatchAnalysisData{
		BatchID:     input.BatchID,
		OrderCount:  len(pending),
		ResultCount: len(results),
		Results:     results,
	}, nil
}
