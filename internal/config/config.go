package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DistinctTaskDef defines one distinct-count measurement task.
type DistinctTaskDef struct {
	Name string `yaml:"name"`
	// Fields whose encoded value identifies a flow. Empty means one global
	// estimator over the whole stream.
	FlowFields []string `yaml:"flow_fields"`
	// Fields whose encoded value is the element counted for distinctness.
	ElementFields []string `yaml:"element_fields"`
	Epsilon       float64  `yaml:"epsilon"`
	Delta         float64  `yaml:"delta"`
	// Advisory initial stream length fed to the threshold formula.
	SizeHint uint64 `yaml:"size_hint"`
	// Number of shards for the per-flow estimator map. 0 selects the default.
	NumShards uint32 `yaml:"num_shards"`
	// Upper bound on tracked flows per shard. 0 selects the default.
	MaxFlowsPerShard int `yaml:"max_flows_per_shard"`
}

// TextWriterConfig holds settings for the plain-text snapshot writer.
type TextWriterConfig struct {
	RootPath string `yaml:"root_path"`
}

// ClickHouseConfig holds the connection settings for ClickHouse.
type ClickHouseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Database string `yaml:"database"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// WriterDef declares one snapshot writer for an aggregator group.
type WriterDef struct {
	Type             string           `yaml:"type"`
	Enabled          bool             `yaml:"enabled"`
	SnapshotInterval string           `yaml:"snapshot_interval"`
	Text             TextWriterConfig `yaml:"text"`
	ClickHouse       ClickHouseConfig `yaml:"clickhouse"`
}

// DistinctConfig groups the distinct aggregator's tasks and writers.
type DistinctConfig struct {
	Tasks   []DistinctTaskDef `yaml:"tasks"`
	Writers []WriterDef       `yaml:"writers"`
}

// AggregatorConfig holds the configuration for the measurement engine.
type AggregatorConfig struct {
	Types               []string       `yaml:"types"`
	Period              string         `yaml:"period"`
	NumWorkers          int            `yaml:"num_workers"`
	SizeOfPacketChannel int            `yaml:"size_of_packet_channel"`
	Distinct            DistinctConfig `yaml:"distinct"`
}

// PersistenceConfig controls raw-packet archiving on the probe.
type PersistenceConfig struct {
	Enabled           bool   `yaml:"enabled"`
	Path              string `yaml:"path"`
	ChannelBufferSize int    `yaml:"channel_buffer_size"`
	// Packets per archive file before rotation. 0 selects the default.
	RotateAfter int `yaml:"rotate_after"`
}

// ProbeConfig holds the NATS transport settings shared by probe and engine.
type ProbeConfig struct {
	NATSURL     string            `yaml:"nats_url"`
	Subject     string            `yaml:"subject"`
	Persistence PersistenceConfig `yaml:"persistence"`
}

// APIConfig holds the query service listen addresses.
type APIConfig struct {
	ListenAddr     string `yaml:"listen_addr"`
	GRPCListenAddr string `yaml:"grpc_listen_addr"`
}

// AlerterRule defines one threshold rule evaluated against task snapshots.
type AlerterRule struct {
	Name     string `yaml:"name"`
	TaskName string `yaml:"task_name"`
	// Metric selects what the threshold applies to. The distinct aggregator
	// understands "distinct_estimate".
	Metric    string  `yaml:"metric"`
	Operator  string  `yaml:"operator"`
	Threshold float64 `yaml:"threshold"`
}

// AlerterConfig holds the alerter settings.
type AlerterConfig struct {
	Enabled       bool          `yaml:"enabled"`
	CheckInterval string        `yaml:"check_interval"`
	Rules         []AlerterRule `yaml:"rules"`
}

// SMTPConfig holds the email notifier settings.
type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
	To       string `yaml:"to"`
}

// Config is the top-level configuration struct for the entire application.
type Config struct {
	Aggregator AggregatorConfig `yaml:"aggregator"`
	Probe      ProbeConfig      `yaml:"probe"`
	API        APIConfig        `yaml:"api"`
	Alerter    AlerterConfig    `yaml:"alerter"`
	SMTP       SMTPConfig       `yaml:"smtp"`
}

// LoadConfig reads the configuration from a YAML file and returns a Config struct.
func LoadConfig(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config YAML: %w", err)
	}

	return &cfg, nil
}
