package framework

// Message 队列消息在框架内部的流转形态
// Subscriber 拉取后构造，经 inputChan 交给 Processor
type Message struct {
	ID       string                 // 队列内的 Job ID
	Queue    string                 // 来源队列
	Data     []byte                 // 原始消息体（标准 Job 信封 JSON）
	Attempts int                    // 已投递次数
	Extra    map[string]interface{} // 扩展字段
}
