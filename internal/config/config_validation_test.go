package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hist2json/pkg/types"
)

func validConfig() *types.Config {
	return &types.Config{
		Input: types.InputConfig{
			Path:         "/var/log/history/20230410.log",
			CommandTable: "commands.tbl",
			DataTable:    "data.tbl",
			ClientTable:  "clients.tbl",
		},
		Output: types.OutputConfig{Path: "out.json"},
		Kafka:  types.KafkaConfig{Compression: "none"},
	}
}

func TestValidate_ValidConfigPasses(t *testing.T) {
	require.NoError(t, Validate(validConfig()))
}

func TestValidate_MissingInputSource(t *testing.T) {
	cfg := validConfig()
	cfg.Input.Path = ""
	cfg.Input.WatchDirectory = ""

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "path or watch_directory")
}

func TestValidate_WatchDirectorySatisfiesInputRequirement(t *testing.T) {
	cfg := validConfig()
	cfg.Input.Path = ""
	cfg.Input.WatchDirectory = "/var/log/history"
	assert.NoError(t, Validate(cfg))
}

func TestValidate_MissingCodeTables(t *testing.T) {
	cfg := validConfig()
	cfg.Input.DataTable = ""

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "data_table is required")
}

func TestValidate_MissingOutputPath(t *testing.T) {
	cfg := validConfig()
	cfg.Output.Path = ""

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output: path is required")
}

func TestValidate_KafkaRequiresBrokersAndTopicWhenEnabled(t *testing.T) {
	cfg := validConfig()
	cfg.Kafka.Enabled = true

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one broker")
	assert.Contains(t, err.Error(), "topic is required")
}

func TestValidate_KafkaDisabledSkipsBrokerCheck(t *testing.T) {
	cfg := validConfig()
	cfg.Kafka.Enabled = false
	assert.NoError(t, Validate(cfg))
}

func TestValidate_KafkaInvalidCompression(t *testing.T) {
	cfg := validConfig()
	cfg.Kafka.Compression = "lzma"

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid compression")
}

func TestValidate_KafkaSASLRequiresUsername(t *testing.T) {
	cfg := validConfig()
	cfg.Kafka.Enabled = true
	cfg.Kafka.Brokers = []string{"broker:9092"}
	cfg.Kafka.Topic = "history"
	cfg.Kafka.SASL.Enabled = true
	cfg.Kafka.SASL.Mechanism = "SCRAM-SHA-256"

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "username is required")
}

func TestValidate_MetricsRequiresAddrWhenEnabled(t *testing.T) {
	cfg := validConfig()
	cfg.Metrics.Enabled = true
	cfg.Metrics.Addr = ""

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "metrics: addr is required")
}

func TestValidate_TracingRequiresKnownExporter(t *testing.T) {
	cfg := validConfig()
	cfg.Tracing.Enabled = true
	cfg.Tracing.Exporter = "unknown"

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid exporter")
}

func TestValidate_TracingNonConsoleExporterRequiresEndpoint(t *testing.T) {
	cfg := validConfig()
	cfg.Tracing.Enabled = true
	cfg.Tracing.Exporter = "otlp"
	cfg.Tracing.Endpoint = ""

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "endpoint is required")
}
