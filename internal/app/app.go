// Package app wires a loaded configuration into a complete run: code
// tables, an item index, an input source, an emitter, and the streaming
// driver that ties them together. Narrowed from the teacher's daemon-style
// App (long-lived, signal-driven) to a batch lifecycle: one or more
// decode runs, then exit.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"hist2json/internal/codetables"
	"hist2json/internal/config"
	"hist2json/internal/decode"
	"hist2json/internal/emit"
	"hist2json/internal/itemindex"
	"hist2json/internal/metrics"
	"hist2json/internal/rangegate"
	"hist2json/internal/resource"
	"hist2json/internal/source"
	"hist2json/internal/stream"
	"hist2json/pkg/tracing"
	"hist2json/pkg/types"
)

// App holds everything a run needs once the configuration has been loaded
// and validated.
type App struct {
	config *types.Config
	logger *logrus.Logger

	tables decode.Tables
	gate   rangegate.Gate

	metricsServer *metrics.Server
	tracer        *tracing.Manager
	resourceMon   *resource.Monitor
}

// New loads configFile, builds the code tables and item index it names,
// and prepares the optional metrics/tracing/resource-monitor components.
func New(configFile string) (*App, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}

	logger := logrus.New()
	logger.SetLevel(parseLevel(cfg.App.LogLevel))
	if cfg.App.LogFormat == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{})
	}

	commandTable, err := codetables.LoadCommandTable(cfg.Input.CommandTable)
	if err != nil {
		return nil, err
	}
	dataTable, err := codetables.LoadDataTable(cfg.Input.DataTable)
	if err != nil {
		return nil, err
	}
	clientTable, err := codetables.LoadClientTable(cfg.Input.ClientTable)
	if err != nil {
		return nil, err
	}

	items := itemindex.New()
	if cfg.Input.ItemIndex != "" {
		items, err = itemindex.Load(cfg.Input.ItemIndex)
		if err != nil {
			return nil, err
		}
	}

	tracer, err := tracing.New(cfg.Tracing, logger)
	if err != nil {
		return nil, err
	}

	a := &App{
		config: cfg,
		logger: logger,
		tables: decode.Tables{Command: commandTable, Data: dataTable, Client: clientTable, Items: items},
		gate:   rangegate.Gate{Start: cfg.Input.RangeStart, End: cfg.Input.RangeEnd},
		tracer: tracer,
	}

	if cfg.Metrics.Enabled {
		a.metricsServer = metrics.NewServer(cfg.Metrics.Addr)
	}

	resMon, err := resource.NewMonitor(logger, 0)
	if err != nil {
		logger.WithError(err).Warn("resource monitor unavailable")
	} else {
		a.resourceMon = resMon
	}

	return a, nil
}

func parseLevel(level string) logrus.Level {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// Run executes the configured decode operation to completion: a single
// file, or — when a watch directory is configured — one run per
// file as it arrives, for as long as the watcher stays open.
func (a *App) Run() error {
	if a.metricsServer != nil {
		a.metricsServer.Start()
		defer a.metricsServer.Stop(context.Background())
	}
	if a.resourceMon != nil {
		a.resourceMon.Start()
		defer a.resourceMon.Stop()
	}
	defer a.tracer.Shutdown(context.Background())

	if a.config.Input.WatchDirectory != "" {
		return a.runWatch()
	}
	return a.runOnce(a.config.Input.Path)
}

func (a *App) runOnce(path string) error {
	src, err := a.openSource(path)
	if err != nil {
		return err
	}
	defer src.Close()

	emitter, err := a.buildEmitter()
	if err != nil {
		return err
	}

	_, span := a.tracer.StartFileSpan(context.Background(), path)
	defer span.End()

	driver := &stream.Driver{Tables: a.tables, Gate: a.gate, Emitter: emitter}
	start := time.Now()
	summary, runErr := driver.Run(src)
	elapsed := time.Since(start)
	tracing.RecordOutcome(span, summary.RecordsEmitted, summary.LinesSkipped, runErr)

	label := path
	if label == "" {
		label = "-"
	}
	metrics.RecordSummary(label, summary.LinesSeen, summary.LinesAdmitted, summary.LinesSkipped, summary.RecordsEmitted, summary.MissingCodes)
	metrics.DecodeDuration.WithLabelValues(label).Observe(elapsed.Seconds())
	metrics.ItemIndexMissTotal.Add(float64(summary.ItemIndexMisses))

	a.logger.WithFields(logrus.Fields{
		"path":             label,
		"lines_seen":       summary.LinesSeen,
		"lines_admitted":   summary.LinesAdmitted,
		"lines_skipped":    summary.LinesSkipped,
		"records_emitted":  summary.RecordsEmitted,
		"item_index_hits":  summary.ItemIndexHits,
		"item_index_misses": summary.ItemIndexMisses,
		"missing_codes":    len(summary.MissingCodes),
	}).Info("decode run complete")

	return runErr
}

func (a *App) runWatch() error {
	watcher, err := source.WatchDirectory(a.config.Input.WatchDirectory)
	if err != nil {
		return err
	}
	defer watcher.Close()

	for {
		path, ok := watcher.Next()
		if !ok {
			return nil
		}
		if err := a.runOnce(path); err != nil {
			a.logger.WithError(err).WithField("path", path).Error("decode run failed")
			return err
		}
	}
}

func (a *App) openSource(path string) (source.LineSource, error) {
	if path == "" {
		return nil, fmt.Errorf("no input path configured")
	}
	if a.config.Input.Follow {
		return source.Follow(path)
	}
	return source.Open(path)
}

// buildEmitter builds the file/stdout emitter the output config names and,
// when Kafka is enabled, fans out to both: Kafka publication is mutually
// compatible with file/stdout emission, not a replacement for it.
func (a *App) buildEmitter() (emit.Emitter, error) {
	sink, err := a.buildSinkEmitter()
	if err != nil {
		return nil, err
	}

	if !a.config.Kafka.Enabled {
		return sink, nil
	}

	kafka, err := emit.NewKafka(a.config.Kafka)
	if err != nil {
		return nil, err
	}
	return emit.NewMulti(sink, kafka), nil
}

func (a *App) buildSinkEmitter() (emit.Emitter, error) {
	w := os.Stdout
	if a.config.Output.Path != "" && a.config.Output.Path != "-" {
		f, err := os.Create(a.config.Output.Path)
		if err != nil {
			return nil, err
		}
		return wrapFileEmitter(a.config, f)
	}

	if a.config.Output.DocumentStore {
		return emit.NewNDJSON(w), nil
	}
	return emit.NewArray(w)
}

func wrapFileEmitter(cfg *types.Config, f *os.File) (emit.Emitter, error) {
	if cfg.Output.DocumentStore {
		return emit.NewNDJSON(f), nil
	}
	return emit.NewArray(f)
}
