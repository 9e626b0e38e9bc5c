package framework

import (
	"context"
	"sync"
	"time"
)

// Subscriber 订阅者：从消息队列拉取批次分析任务，转发给 Processor
// 多个拉取协程共享同一个 inputChan，退出统一通过 ctx 取消驱动
type Subscriber struct {
	cfg        *SubscriberConfig
	source     MessageSource
	logger     Logger
	cancelFunc context.CancelFunc
	wg         sync.WaitGroup
}

// NewSubscriber 创建订阅者
func NewSubscriber(cfg *SubscriberConfig, source MessageSource, logger Logger) *Subscriber {
	return &Subscriber{
		cfg:    cfg,
		source: source,
		logger: logger,
	}
}

// Start 启动订阅循环
func (s *Subscriber) Start(parentCtx context.Context, inputChan chan<- *Message) error {
	ctx, cancel := context.WithCancel(parentCtx)
	s.cancelFunc = cancel

	s.logger.Infof(ctx, "[Subscriber] Starting with %d workers for queue: %s",
		s.cfg.Concurrency, s.cfg.QueueName)

	for i := 0; i < s.cfg.Concurrency; i++ {
		workerID := i
		s.wg.Add(1)
		go s.loop(ctx, workerID, inputChan)
	}

	return nil
}

// Stop 停止订阅（不再拉取新任务）
func (s *Subscriber) Stop() {
	s.logger.Infof(context.Background(), "[Subscriber] Stopping...")
	if s.cancelFunc != nil {
		s.cancelFunc()
	}
}

// Wait 等待所有订阅协程退出
// 必须在 Stop 之后调用，Processor 进入 Drain 模式前 inputChan 不能再有写入方
func (s *Subscriber) Wait() {
	s.wg.Wait()
	s.logger.Infof(context.Background(), "[Subscriber] All workers exited")
}

// loop 订阅循环（单个拉取协程）
func (s *Subscriber) loop(ctx context.Context, workerID int, inputChan chan<- *Message) {
	defer s.wg.Done()
	s.logger.Infof(ctx, "[Subscriber-%d] Started", workerID)

	for {
		msg := s.pull(ctx, workerID)
		if msg != nil && !s.dispatch(ctx, workerID, msg, inputChan) {
			return
		}

		// 速率控制兼退出检查
		if !s.pause(ctx, workerID, s.cfg.Rate) {
			return
		}
	}
}

// pull 拉取一条消息，容错处理（网络抖动不退出）
// 返回 nil 表示本轮没有拉到消息（超时或出错退避）
func (s *Subscriber) pull(ctx context.Context, workerID int) *Message {
	msg, err := s.source.Consume(s.cfg.QueueName, s.cfg.Timeout, s.cfg.TTR)
	if err != nil {
		s.logger.Warnf(ctx, "[Subscriber-%d] Consume error: %v, retrying...", workerID, err)
		time.Sleep(s.cfg.ErrorBackoff)
		return nil
	}
	return msg
}

// dispatch 把消息交给 Processor，返回 false 表示应退出
// 发送和退出放在同一个 select，避免 inputChan 写满时卡死关闭流程
func (s *Subscriber) dispatch(ctx context.Context, workerID int, msg *Message, inputChan chan<- *Message) bool {
	select {
	case inputChan <- msg:
		s.logger.Debugf(ctx, "[Subscriber-%d] Job queued for analysis: %s", workerID, msg.ID)
		return true

	case <-ctx.Done():
		// 未 ACK 的消息在 TTR 到期后会重新投递，批次不会丢失
		s.logger.Warnf(ctx, "[Subscriber-%d] Dropping message due to shutdown: %s", workerID, msg.ID)
		return false
	}
}

// pause 按拉取速率等待，返回 false 表示 ctx 已取消
func (s *Subscriber) pause(ctx context.Context, workerID int, d time.Duration) bool {
	select {
	case <-ctx.Done():
		s.logger.Infof(ctx, "[Subscriber-%d] Context cancelled, exiting", workerID)
		return false
	case <-time.After(d):
		return true
	}
}
