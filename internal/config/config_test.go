package config

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleConfig = `
aggregator:
  types: ["distinct"]
  period: "60s"
  num_workers: 4
  size_of_packet_channel: 50000
  distinct:
    tasks:
      - name: "per_src_distinct_dst"
        flow_fields: ["SrcIP"]
        element_fields: ["DstIP", "DstPort"]
        epsilon: 0.05
        delta: 0.01
        size_hint: 1000000
        num_shards: 8
        max_flows_per_shard: 4096
    writers:
      - type: "text"
        enabled: true
        snapshot_interval: "30s"
        text:
          root_path: "output/snapshots"
      - type: "clickhouse"
        enabled: false
        snapshot_interval: "60s"
        clickhouse:
          host: "localhost"
          port: 9000
          database: "uniqspectra"
          username: "default"
          password: ""

probe:
  nats_url: "nats://localhost:4222"
  subject: "us.packets.raw"
  persistence:
    enabled: true
    path: "output/archive"
    channel_buffer_size: 5000
    rotate_after: 100000

api:
  listen_addr: ":8080"
  grpc_listen_addr: ":50051"

alerter:
  enabled: true
  check_interval: "60s"
  rules:
    - name: "scan_detector"
      task_name: "per_src_distinct_dst"
      metric: "distinct_estimate"
      operator: ">"
      threshold: 5000
`

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(sampleConfig), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if len(cfg.Aggregator.Types) != 1 || cfg.Aggregator.Types[0] != "distinct" {
		t.Errorf("Aggregator.Types = %v, want [distinct]", cfg.Aggregator.Types)
	}
	if cfg.Aggregator.NumWorkers != 4 {
		t.Errorf("NumWorkers = %d, want 4", cfg.Aggregator.NumWorkers)
	}

	if len(cfg.Aggregator.Distinct.Tasks) != 1 {
		t.Fatalf("Expected 1 distinct task, got %d", len(cfg.Aggregator.Distinct.Tasks))
	}
	task := cfg.Aggregator.Distinct.Tasks[0]
	if task.Name != "per_src_distinct_dst" {
		t.Errorf("Task name = %q", task.Name)
	}
	if task.Epsilon != 0.05 || task.Delta != 0.01 {
		t.Errorf("Task (epsilon, delta) = (%v, %v), want (0.05, 0.01)", task.Epsilon, task.Delta)
	}
	if task.SizeHint != 1000000 {
		t.Errorf("Task size_hint = %d, want 1000000", task.SizeHint)
	}
	if len(task.ElementFields) != 2 || task.ElementFields[0] != "DstIP" {
		t.Errorf("Task element_fields = %v", task.ElementFields)
	}

	if len(cfg.Aggregator.Distinct.Writers) != 2 {
		t.Fatalf("Expected 2 writers, got %d", len(cfg.Aggregator.Distinct.Writers))
	}
	if w := cfg.Aggregator.Distinct.Writers[0]; !w.Enabled || w.Type != "text" || w.Text.RootPath != "output/snapshots" {
		t.Errorf("Unexpected text writer config: %+v", w)
	}
	if w := cfg.Aggregator.Distinct.Writers[1]; w.Enabled || w.ClickHouse.Port != 9000 {
		t.Errorf("Unexpected clickhouse writer config: %+v", w)
	}

	if cfg.Probe.NATSURL != "nats://localhost:4222" || cfg.Probe.Subject != "us.packets.raw" {
		t.Errorf("Unexpected probe config: %+v", cfg.Probe)
	}
	if !cfg.Probe.Persistence.Enabled || cfg.Probe.Persistence.RotateAfter != 100000 {
		t.Errorf("Unexpected persistence config: %+v", cfg.Probe.Persistence)
	}

	if cfg.API.ListenAddr != ":8080" || cfg.API.GRPCListenAddr != ":50051" {
		t.Errorf("Unexpected api config: %+v", cfg.API)
	}

	if !cfg.Alerter.Enabled || len(cfg.Alerter.Rules) != 1 {
		t.Fatalf("Unexpected alerter config: %+v", cfg.Alerter)
	}
	if r := cfg.Alerter.Rules[0]; r.Metric != "distinct_estimate" || r.Operator != ">" || r.Threshold != 5000 {
		t.Errorf("Unexpected alerter rule: %+v", r)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig("/nonexistent/config.yaml"); err == nil {
		t.Error("Expected an error for a missing config file")
	}
}
