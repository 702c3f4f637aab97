// Package config loads and validates hist2json's run configuration: a YAML
// file overlaid with environment variables, then defaults for anything
// still unset, then validation (adapted from the teacher's config loader).
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v2"

	apperrors "hist2json/pkg/errors"
	"hist2json/pkg/types"
)

// Load reads configFile (if non-empty), applies environment overrides and
// defaults, validates the result, and returns it. Config errors are fatal
// (§7.1) and carried as a critical *errors.AppError.
func Load(configFile string) (*types.Config, error) {
	cfg := &types.Config{}

	if configFile != "" {
		if err := loadConfigFile(configFile, cfg); err != nil {
			return nil, apperrors.ConfigError("load", "cannot load config file "+configFile).Wrap(err)
		}
	}

	applyDefaults(cfg)
	applyEnvironmentOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadConfigFile(filename string, cfg *types.Config) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// applyDefaults fills in anything the file and environment left unset.
func applyDefaults(cfg *types.Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "hist2json"
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = "info"
	}
	if cfg.App.LogFormat == "" {
		cfg.App.LogFormat = "text"
	}
	if cfg.Output.Path == "" {
		cfg.Output.Path = "-"
	}
	if cfg.Kafka.Compression == "" {
		cfg.Kafka.Compression = "none"
	}
	if cfg.Kafka.SASL.Mechanism == "" {
		cfg.Kafka.SASL.Mechanism = "SCRAM-SHA-256"
	}
	if cfg.Metrics.Addr == "" {
		cfg.Metrics.Addr = ":9090"
	}
	if cfg.Tracing.Exporter == "" {
		cfg.Tracing.Exporter = "console"
	}
	if cfg.Tracing.Timeout == 0 {
		cfg.Tracing.Timeout = 5 * time.Second
	}
}

// applyEnvironmentOverrides lets deployment environments override any file
// value without editing the file, following the teacher's env-wins-over-file
// precedence.
func applyEnvironmentOverrides(cfg *types.Config) {
	cfg.App.LogLevel = getEnvString("HIST2JSON_LOG_LEVEL", cfg.App.LogLevel)
	cfg.App.Debug = getEnvBool("HIST2JSON_DEBUG", cfg.App.Debug)

	cfg.Input.Path = getEnvString("HIST2JSON_INPUT", cfg.Input.Path)
	cfg.Input.CommandTable = getEnvString("HIST2JSON_COMMAND_TABLE", cfg.Input.CommandTable)
	cfg.Input.DataTable = getEnvString("HIST2JSON_DATA_TABLE", cfg.Input.DataTable)
	cfg.Input.ClientTable = getEnvString("HIST2JSON_CLIENT_TABLE", cfg.Input.ClientTable)
	cfg.Input.ItemIndex = getEnvString("HIST2JSON_ITEM_INDEX", cfg.Input.ItemIndex)
	cfg.Input.RangeStart = getEnvString("HIST2JSON_RANGE_START", cfg.Input.RangeStart)
	cfg.Input.RangeEnd = getEnvString("HIST2JSON_RANGE_END", cfg.Input.RangeEnd)
	cfg.Input.WatchDirectory = getEnvString("HIST2JSON_WATCH_DIR", cfg.Input.WatchDirectory)
	cfg.Input.Follow = getEnvBool("HIST2JSON_FOLLOW", cfg.Input.Follow)

	cfg.Output.Path = getEnvString("HIST2JSON_OUTPUT", cfg.Output.Path)
	cfg.Output.DocumentStore = getEnvBool("HIST2JSON_DOCUMENT_STORE", cfg.Output.DocumentStore)

	cfg.Kafka.Enabled = getEnvBool("HIST2JSON_KAFKA_ENABLED", cfg.Kafka.Enabled)
	cfg.Kafka.Brokers = getEnvStringSlice("HIST2JSON_KAFKA_BROKERS", cfg.Kafka.Brokers)
	cfg.Kafka.Topic = getEnvString("HIST2JSON_KAFKA_TOPIC", cfg.Kafka.Topic)
	cfg.Kafka.SASL.Username = getEnvString("HIST2JSON_KAFKA_SASL_USERNAME", cfg.Kafka.SASL.Username)
	cfg.Kafka.SASL.Password = getEnvString("HIST2JSON_KAFKA_SASL_PASSWORD", cfg.Kafka.SASL.Password)

	cfg.Metrics.Enabled = getEnvBool("HIST2JSON_METRICS_ENABLED", cfg.Metrics.Enabled)
	cfg.Metrics.Addr = getEnvString("HIST2JSON_METRICS_ADDR", cfg.Metrics.Addr)

	cfg.Tracing.Enabled = getEnvBool("HIST2JSON_TRACING_ENABLED", cfg.Tracing.Enabled)
	cfg.Tracing.Endpoint = getEnvString("HIST2JSON_TRACING_ENDPOINT", cfg.Tracing.Endpoint)
}

func getEnvString(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvStringSlice(key string, defaultValue []string) []string {
	if v := os.Getenv(key); v != "" {
		return strings.Split(v, ",")
	}
	return defaultValue
}

// Validator accumulates validation failures so Validate can report every
// problem at once rather than stopping at the first.
type Validator struct {
	cfg  *types.Config
	errs []string
}

// Validate checks cfg for internal consistency (§6). It never mutates cfg.
func Validate(cfg *types.Config) error {
	v := &Validator{cfg: cfg}
	v.validateInput()
	v.validateOutput()
	v.validateKafka()
	v.validateMetrics()
	v.validateTracing()

	if len(v.errs) > 0 {
		return apperrors.ConfigError("validate", strings.Join(v.errs, "; "))
	}
	return nil
}

func (v *Validator) addError(format string, args ...interface{}) {
	v.errs = append(v.errs, fmt.Sprintf(format, args...))
}

func (v *Validator) validateInput() {
	if v.cfg.Input.Path == "" && v.cfg.Input.WatchDirectory == "" {
		v.addError("input: one of path or watch_directory is required")
	}
	if v.cfg.Input.CommandTable == "" {
		v.addError("input: command_table is required")
	}
	if v.cfg.Input.DataTable == "" {
		v.addError("input: data_table is required")
	}
	if v.cfg.Input.ClientTable == "" {
		v.addError("input: client_table is required")
	}
}

func (v *Validator) validateOutput() {
	if v.cfg.Output.Path == "" {
		v.addError("output: path is required")
	}
}

func (v *Validator) validateKafka() {
	switch strings.ToLower(v.cfg.Kafka.Compression) {
	case "none", "gzip", "snappy", "lz4":
	default:
		v.addError("kafka: invalid compression %q", v.cfg.Kafka.Compression)
	}
	if !v.cfg.Kafka.Enabled {
		return
	}
	if len(v.cfg.Kafka.Brokers) == 0 {
		v.addError("kafka: at least one broker is required when enabled")
	}
	if v.cfg.Kafka.Topic == "" {
		v.addError("kafka: topic is required when enabled")
	}
	if v.cfg.Kafka.SASL.Enabled {
		switch strings.ToUpper(v.cfg.Kafka.SASL.Mechanism) {
		case "SCRAM-SHA-256", "SCRAM-SHA-512":
		default:
			v.addError("kafka.sasl: invalid mechanism %q", v.cfg.Kafka.SASL.Mechanism)
		}
		if v.cfg.Kafka.SASL.Username == "" {
			v.addError("kafka.sasl: username is required when enabled")
		}
	}
}

func (v *Validator) validateMetrics() {
	if v.cfg.Metrics.Enabled && v.cfg.Metrics.Addr == "" {
		v.addError("metrics: addr is required when enabled")
	}
}

func (v *Validator) validateTracing() {
	if !v.cfg.Tracing.Enabled {
		return
	}
	switch v.cfg.Tracing.Exporter {
	case "otlp", "jaeger", "console":
	default:
		v.addError("tracing: invalid exporter %q", v.cfg.Tracing.Exporter)
	}
	if v.cfg.Tracing.Exporter != "console" && v.cfg.Tracing.Endpoint == "" {
		v.addError("tracing: endpoint is required for exporter %q", v.cfg.Tracing.Exporter)
	}
}
