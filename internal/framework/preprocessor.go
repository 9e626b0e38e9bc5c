package framework

import (
	"context"
	"fmt"
)

// PreProcessor 顺序执行一组处理函数的函数链
// 任一步返回 error 即中断，错误带上步骤序号便于定位
type PreProcessor struct {
	steps []ProcessorFunc
}

// NewPreProcessor 创建函数链处理器
func NewPreProcessor(steps []ProcessorFunc) *PreProcessor {
	return &PreProcessor{steps: steps}
}

// Run 执行函数链
func (p *PreProcessor) Run(ctx context.Context) error {
	for i, step := range p.steps {
		if err := step(ctx); err != nil {
			return fmt.Errorf("processor[%d] failed: %w", i, err)
		}
	}
	return nil
}
