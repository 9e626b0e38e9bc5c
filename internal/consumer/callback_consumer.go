package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/domain/model"
	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/services/svcallback"
	"github.com/mahirr476/Paragon-procurement-App-sub000/pkg/lmstfy"
	"github.com/mahirr476/Paragon-procurement-App-sub000/pkg/logger"
)

// CallbackConsumer 回调消费者
// 职责：
// 1. 从 lmstfy 队列消费 Worker 的回调消息
// 2. 解析消息并调用 CallbackService 处理
// 3. 确认消息（ACK）
type CallbackConsumer struct {
	lmstfyClient    *lmstfy.Client
	callbackService *svcallback.CallbackService
	queueName       string
	logger          logger.Logger

	// 消费配置
	timeout      time.Duration // 拉取消息超时
	ttr          time.Duration // Time-To-Run
	pollInterval time.Duration
}

// Config 消费者配置
type Config struct {
	QueueName    string        // 队列名称
	Timeout      time.Duration // 拉取消息超时
	TTR          time.Duration // Time-To-Run
	PollInterval time.Duration // 出错后的轮询间隔
}

// NewCallbackConsumer 创建回调消费者实例
func NewCallbackConsumer(
	lmstfyClient *lmstfy.Client,
	callbackService *svcallback.CallbackService,
	cfg *Config,
	log logger.Logger,
) *CallbackConsumer {
	return &CallbackConsumer{
		lmstfyClient:    lmstfyClient,
		callbackService: callbackService,
		queueName:       cfg.QueueName,
		timeout:         cfg.Timeout,
		ttr:             cfg.TTR,
		pollInterval:    cfg.PollInterval,
		logger:          log,
	}
}

// Start 启动消费循环
func (c *CallbackConsumer) Start(ctx context.Context) error {
	c.logger.Infof(ctx, "Callback consumer started: queue=%s, timeout=%v, ttr=%v",
		c.queueName, c.timeout, c.ttr)

	for {
		select {
		case <-ctx.Done():
			c.logger.Infof(ctx, "Callback consumer stopped")
			return ctx.Err()
		default:
			if err := c.consumeOne(ctx); err != nil {
				c.logger.Errorf(ctx, "Failed to consume message: %v", err)
				time.Sleep(c.pollInterval)
			}
		}
	}
}

// consumeOne 消费一条消息
func (c *CallbackConsumer) consumeOne(ctx context.Context) error {
	// 1. 从队列拉取消息
	msg, err := c.lmstfyClient.Consume(c.queueName, c.timeout, c.ttr)
	if err != nil {
		return fmt.Errorf("consume message failed: %w", err)
	}

	if msg == nil {
		// 没有消息，继续等待
		return nil
	}

	c.logger.Infof(ctx, "Received callback message: job_id=%s", msg.ID)

	// 2. 解析回调消息
	callback, err := c.parseMessage(msg.Data)
	if err != nil {
		c.logger.Errorf(ctx, "Failed to parse message: job_id=%s, err=%v", msg.ID, err)
		// 解析失败，直接 ACK（避免死循环）
		_ = c.lmstfyClient.Ack(c.queueName, msg.ID)
		return err
	}

	// 3. 处理回调
	if err := c.callbackService.HandleCallback(ctx, callback); err != nil {
		c.logger.Errorf(ctx, "Failed to handle callback: job_id=%s, batch_id=%s, err=%v",
			msg.ID, callback.BatchID, err)
		// 处理失败，不 ACK（让 lmstfy TTR 机制重试）
		return err
	}

	// 4. 确认消息
	if err := c.lmstfyClient.Ack(c.queueName, msg.ID); err != nil {
		c.logger.Errorf(ctx, "Failed to ack message: job_id=%s, err=%v", msg.ID, err)
		return err
	}

	c.logger.Infof(ctx, "Callback message processed: job_id=%s, batch_id=%s", msg.ID, callback.BatchID)

	return nil
}

// parseMessage 解析消息数据
func (c *CallbackConsumer) parseMessage(data []byte) (*model.BatchAnalyzeCallback, error) {
	var callback model.BatchAnalyzeCallback
	if err := json.Unmarshal(data, &callback); err != nil {
		return nil, fmt.Errorf("unmarshal callback failed: %w", err)
	}

	// 校验必填字段
	if callback.BatchID == "" {
		return nil, fmt.Errorf("batch_id is required")
	}
	if callback.Status == "" {
		return nil, fmt.Errorf("status is required")
	}

	return &callback, nil
}
