package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const sampleConfig = `
app:
  name: po-analysis-worker
  env: test
  log_level: debug

mysql:
  dsn: "root:root@tcp(127.0.0.1:3306)/po_analysis_test?parseTime=True"

redis:
  addr: "127.0.0.1:6379"
  db: 1
  notify_channel: "analysis:result"

lmstfy:
  host: "127.0.0.1"
  port: 7777
  namespace: "test"
  token: "tok"
  queue: po_batch_analyze
  callback_queue: po_analyze_callback

workers:
  - name: w1
    queue_name: po_batch_analyze
    callback_queue: po_analyze_callback
    subscriber:
      threads: 2
      rate: 100ms
      timeout: 3s
      ttr: 120s
      error_backoff: 1s
    processor:
      threads: 4
      buffer_size: 64
      timeout: 60s
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.App.Name != "po-analysis-worker" {
		t.Errorf("App.Name = %q", cfg.App.Name)
	}
	if cfg.Redis.NotifyChannel != "analysis:result" {
		t.Errorf("NotifyChannel = %q", cfg.Redis.NotifyChannel)
	}
	if cfg.Lmstfy.CallbackQueue != "po_analyze_callback" {
		t.Errorf("CallbackQueue = %q", cfg.Lmstfy.CallbackQueue)
	}

	if len(cfg.Workers) != 1 {
		t.Fatalf("Workers len = %d", len(cfg.Workers))
	}
	w := cfg.Workers[0]
	if w.Subscriber.Threads != 2 {
		t.Errorf("Subscriber.Threads = %d", w.Subscriber.Threads)
	}
	if w.Subscriber.Rate != 100*time.Millisecond {
		t.Errorf("Subscriber.Rate = %v", w.Subscriber.Rate)
	}
	if w.Processor.Timeout != 60*time.Second {
		t.Errorf("Processor.Timeout = %v", w.Processor.Timeout)
	}

	// server.port 未配置时回退默认值
	if cfg.Server.Port != "8080" {
		t.Errorf("Server.Port = %q, want default 8080", cfg.Server.Port)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
	if err := cfg.ValidateWorker(); err != nil {
		t.Errorf("ValidateWorker: %v", err)
	}

	cfg.MySQL.DSN = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty dsn")
	}
}

func TestValidateWorkerRequiresWorkers(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	cfg.Workers = nil
	if err := cfg.ValidateWorker(); err == nil {
		t.Error("expected error when no workers configured")
	}
}
