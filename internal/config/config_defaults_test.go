package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hist2json/pkg/types"
)

func TestApplyDefaults_FillsUnsetFields(t *testing.T) {
	cfg := &types.Config{}
	applyDefaults(cfg)

	assert.Equal(t, "hist2json", cfg.App.Name)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "text", cfg.App.LogFormat)
	assert.Equal(t, "-", cfg.Output.Path)
	assert.Equal(t, "none", cfg.Kafka.Compression)
	assert.Equal(t, "SCRAM-SHA-256", cfg.Kafka.SASL.Mechanism)
	assert.Equal(t, ":9090", cfg.Metrics.Addr)
	assert.Equal(t, "console", cfg.Tracing.Exporter)
	assert.Equal(t, 5*time.Second, cfg.Tracing.Timeout)
}

func TestApplyDefaults_PreservesExplicitValues(t *testing.T) {
	cfg := &types.Config{
		App:     types.AppConfig{Name: "custom", LogLevel: "debug"},
		Kafka:   types.KafkaConfig{Compression: "gzip"},
		Metrics: types.MetricsConfig{Addr: ":7000"},
	}
	applyDefaults(cfg)

	assert.Equal(t, "custom", cfg.App.Name)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "gzip", cfg.Kafka.Compression)
	assert.Equal(t, ":7000", cfg.Metrics.Addr)
}

func TestApplyEnvironmentOverrides_WinsOverFileValue(t *testing.T) {
	t.Setenv("HIST2JSON_INPUT", "/var/log/history/override.log")
	t.Setenv("HIST2JSON_DEBUG", "true")

	cfg := &types.Config{Input: types.InputConfig{Path: "/var/log/history/original.log"}}
	applyEnvironmentOverrides(cfg)

	assert.Equal(t, "/var/log/history/override.log", cfg.Input.Path)
	assert.True(t, cfg.App.Debug)
}

func TestGetEnvStringSlice_SplitsOnComma(t *testing.T) {
	t.Setenv("HIST2JSON_KAFKA_BROKERS", "broker1:9092,broker2:9092")
	got := getEnvStringSlice("HIST2JSON_KAFKA_BROKERS", nil)
	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, got)
}

func TestGetEnvStringSlice_FallsBackWhenUnset(t *testing.T) {
	got := getEnvStringSlice("HIST2JSON_KAFKA_BROKERS_UNSET", []string{"default:9092"})
	assert.Equal(t, []string{"default:9092"}, got)
}
