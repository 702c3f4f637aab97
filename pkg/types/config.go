package types

import "time"

// Config is the fully-resolved run configuration (flags over environment
// over config file over defaults — see internal/config), mirroring the
// CLI surface of §6 plus the supplemented operational concerns of
// SPEC_FULL.md's Domain Stack.
type Config struct {
	App     AppConfig     `yaml:"app"`
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	Kafka   KafkaConfig   `yaml:"kafka"`
	Metrics MetricsConfig `yaml:"metrics"`
	Tracing TracingConfig `yaml:"tracing"`
}

// AppConfig carries ambient identification and logging settings, matching
// the teacher's App section shape.
type AppConfig struct {
	Name      string `yaml:"name"`
	Version   string `yaml:"version"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	Debug     bool   `yaml:"debug"`
	Verbose   bool   `yaml:"verbose"`
}

// InputConfig locates the history log and the code tables/item index that
// govern its translation.
type InputConfig struct {
	Path           string `yaml:"path"`
	CommandTable   string `yaml:"command_table"`
	DataTable      string `yaml:"data_table"`
	ClientTable    string `yaml:"client_table"`
	ItemIndex      string `yaml:"item_index"`
	RangeStart     string `yaml:"range_start"`
	RangeEnd       string `yaml:"range_end"`
	WatchDirectory string `yaml:"watch_directory"`
	Follow         bool   `yaml:"follow"`
}

// OutputConfig selects the emission mode and destination for decoded
// records (§4.7, §6).
type OutputConfig struct {
	Path          string `yaml:"path"`
	DocumentStore bool   `yaml:"document_store"`
}

// KafkaConfig configures the supplemented Kafka emitter (SPEC_FULL.md
// Domain Stack). Zero value means the emitter is disabled.
type KafkaConfig struct {
	Enabled     bool     `yaml:"enabled"`
	Brokers     []string `yaml:"brokers"`
	Topic       string   `yaml:"topic"`
	Compression string   `yaml:"compression"` // "none", "gzip", "snappy", "lz4"
	SASL        KafkaSASLConfig `yaml:"sasl"`
}

// KafkaSASLConfig configures SCRAM authentication for the Kafka emitter.
type KafkaSASLConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Mechanism string `yaml:"mechanism"` // "SCRAM-SHA-256", "SCRAM-SHA-512"
	Username  string `yaml:"username"`
	Password  string `yaml:"password"`
}

// MetricsConfig controls the optional Prometheus/health HTTP server
// exposed while a run is in flight.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// TracingConfig controls the optional OpenTelemetry span emission wrapping
// each file's decode run.
type TracingConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Exporter string        `yaml:"exporter"` // "otlp", "jaeger", "console"
	Endpoint string        `yaml:"endpoint"`
	Timeout  time.Duration `yaml:"timeout"`
}
