package mdanalysis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/domain/entity"
	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/domain/model"
	"github.com/mahirr476/Paragon-procurement-App-sub000/pkg/infra/redis"
	"github.com/mahirr476/Paragon-procurement-App-sub000/pkg/lmstfy"
)

// AnalysisModule 分析模块
// 职责：
// 1. 组装 Lmstfy 和 Redis 客户端
// 2. 包含分析相关的业务逻辑（消息格式构造、频道命名规则）
type AnalysisModule struct {
	lmstfyClient  *lmstfy.Client
	pubsub        *redis.PubSub
	queueName     string
	notifyChannel string
}

// NewAnalysisModule 创建分析模块实例
func NewAnalysisModule(lmstfyClient *lmstfy.Client, pubsub *redis.PubSub, queueName, notifyChannel string) *AnalysisModule {
	return &AnalysisModule{
		lmstfyClient:  lmstfyClient,
		pubsub:        pubsub,
		queueName:     queueName,
		notifyChannel: notifyChannel,
	}
}

// PublishAnalyzeJob 发布批次分析任务到队列
// 业务逻辑：构造标准化消息格式（包含 RequestID, ActionType, OrgID 等）
func (m *AnalysisModule) PublishAnalyzeJob(ctx context.Context, batch *entity.AnalysisBatch) error {
	message := model.BatchAnalyzeJob{
		Payload: model.BatchAnalyzePayload{
			Data: model.BatchAnalyzeData{
				RequestID:  uuid.New().String(), // 生成请求 ID 用于全链路追踪
				OrgID:      batch.OrgID,
				ActionType: model.ActionTypeBatchAnalyze,
				BatchID:    batch.ID,
				Data: model.BatchAnalyzeBusinessData{
					BatchID:    batch.ID,
					OrgID:      batch.OrgID,
					OrderCount: batch.OrderCount,
				},
			},
		},
	}

	msgJSON, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("marshal analyze job failed: %w", err)
	}

	// ttl=0 表示永不过期, delay=0 表示立即可用
	return m.lmstfyClient.Publish(m.queueName, msgJSON, 0, 0)
}

// WaitForAnalysisResult 等待批次分析结果（Smart Wait）
// 业务逻辑：
// 1. 频道命名约定：{prefix}:{batchID}
// 2. 解析通知为结构化对象
func (m *AnalysisModule) WaitForAnalysisResult(ctx context.Context, batchID string, timeout time.Duration) (*redis.AnalysisNotification, error) {
	channel := fmt.Sprintf("%s:%s", m.notifyChannel, batchID)

	payload, err := m.pubsub.SubscribeOnce(ctx, channel, timeout)
	if err != nil {
		return nil, err
	}

	var notification redis.AnalysisNotification
	if err := json.Unmarshal([]byte(payload), &notification); err != nil {
		return nil, err
	}

	return &notification, nil
}
