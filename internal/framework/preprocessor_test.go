package framework

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// 函数链按序执行，出错即停
func TestPreProcessorRun(t *testing.T) {
	var calls []int

	p := NewPreProcessor([]ProcessorFunc{
		func(ctx context.Context) error { calls = append(calls, 0); return nil },
		func(ctx context.Context) error { calls = append(calls, 1); return nil },
	})

	if err := p.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(calls) != 2 || calls[0] != 0 || calls[1] != 1 {
		t.Errorf("calls = %v", calls)
	}
}

func TestPreProcessorStopsOnError(t *testing.T) {
	var calls []int
	boom := errors.New("boom")

	p := NewPreProcessor([]ProcessorFunc{
		func(ctx context.Context) error { calls = append(calls, 0); return nil },
		func(ctx context.Context) error { calls = append(calls, 1); return boom },
		func(ctx context.Context) error { calls = append(calls, 2); return nil },
	})

	err := p.Run(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want wrapped boom", err)
	}
	if !strings.Contains(err.Error(), "processor[1]") {
		t.Errorf("err = %v, want index in message", err)
	}
	if len(calls) != 2 {
		t.Errorf("calls = %v, third func should not run", calls)
	}
}

func TestPreProcessorEmpty(t *testing.T) {
	p := NewPreProcessor(nil)
	if err := p.Run(context.Background()); err != nil {
		t.Fatalf("Run on empty chain: %v", err)
	}
}
