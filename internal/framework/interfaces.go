package framework

import (
	"context"
	"time"
)

// MessageSource 消息源接口，屏蔽具体 MQ 实现
// Consume 阻塞拉取，超时未拉到返回 (nil, nil)；Ack 确认后消息从队列删除
type MessageSource interface {
	Consume(queue string, timeout time.Duration, ttr time.Duration) (*Message, error)
	Ack(queue string, jobID string) error
}

// Logger 框架日志接口，与 pkg/logger 的实现解耦
type Logger interface {
	Debugf(ctx context.Context, format string, args ...interface{})
	Infof(ctx context.Context, format string, args ...interface{})
	Warnf(ctx context.Context, format string, args ...interface{})
	Errorf(ctx context.Context, format string, args ...interface{})
}

// ProcessorFunc 处理链上的单步函数
type ProcessorFunc func(ctx context.Context) error

// Resulter 结果处理器接口
// Set 接收业务产出的原始数据，Get 返回格式化后的输出
type Resulter interface {
	Set(ctx context.Context, data interface{}) error
	Get(ctx context.Context) interface{}
}
