package lmstfyx

import (
	"context"

	"github.com/bitleak/lmstfy/client"
)

// Proc 业务处理函数签名，由 domains.GetProcess 构造后注入 Processor
type Proc func(ctx context.Context, job *client.Job) *JobResp

// JobRespStatus 消息处理结果状态
type JobRespStatus int

const (
	// JobRespStatusSuccess 处理成功，ACK 消息
	JobRespStatusSuccess JobRespStatus = iota
	// JobRespStatusRelease 可重试失败，不 ACK，等 TTR 到期重投
	JobRespStatusRelease
	// JobRespStatusBury 不可重试失败，记录后丢弃
	JobRespStatusBury
)

// JobResp 消息处理结果
type JobResp struct {
	Action JobRespStatus // 处理动作
	Data   []byte        // 序列化后的响应（用于回调或日志）
}
