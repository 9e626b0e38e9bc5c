package errorutil

import (
	"errors"
	"fmt"
	"testing"
)

func TestRetriable(t *testing.T) {
	err := Retriable("db timeout")
	if !err.Retryable {
		t.Error("Retryable = false")
	}
	if err.Code != 500 {
		t.Errorf("Code = %d", err.Code)
	}
	if err.Error() != "db timeout" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestNonRetriable(t *testing.T) {
	err := NonRetriable("batch_id is required")
	if err.Retryable {
		t.Error("Retryable = true")
	}
	if err.Code != 400 {
		t.Errorf("Code = %d", err.Code)
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil) != nil {
		t.Error("Wrap(nil) should be nil")
	}

	// 已是 Error 类型时原样返回
	orig := Retriable("redis down")
	if wrapped := Wrap(orig); wrapped != orig {
		t.Error("Wrap should return same *Error instance")
	}

	// fmt.Errorf %w 链上的 Error 也要被取出
	chained := Wrap(fmt.Errorf("processor[1] failed: %w", orig))
	if chained != orig {
		t.Error("Wrap should unwrap through %w chains")
	}

	// 普通 error 默认不可重试
	wrapped := Wrap(errors.New("plain"))
	if wrapped.Retryable {
		t.Error("plain error should not be retryable")
	}
	if wrapped.Message != "plain" {
		t.Errorf("Message = %q", wrapped.Message)
	}
}

func TestUnWrapResponse(t *testing.T) {
	if UnWrapResponse(nil) != nil {
		t.Error("UnWrapResponse(nil) should be nil")
	}
	if UnWrapResponse(errors.New("x")) == nil {
		t.Error("UnWrapResponse should wrap non-nil error")
	}
}
