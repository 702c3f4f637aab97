// Package metrics exposes hist2json's Prometheus counters/gauges and a
// /metrics and /healthz HTTP server, adapted from the teacher's metrics
// server shape onto decode-run statistics instead of log-shipper throughput.
package metrics

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	LinesSeenTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hist2json_lines_seen_total",
			Help: "Total number of input lines read",
		},
		[]string{"source"},
	)

	LinesAdmittedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hist2json_lines_admitted_total",
			Help: "Total number of lines passing the range gate",
		},
		[]string{"source"},
	)

	LinesSkippedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hist2json_lines_skipped_total",
			Help: "Total number of lines skipped for malformed headers",
		},
		[]string{"source"},
	)

	RecordsEmittedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hist2json_records_emitted_total",
			Help: "Total number of decoded records emitted",
		},
		[]string{"source"},
	)

	MissingCodesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hist2json_missing_codes_total",
			Help: "Total number of data codes with no table entry",
		},
		[]string{"tag"},
	)

	ItemIndexMissTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hist2json_item_index_miss_total",
		Help: "Total number of item-index lookups with no match",
	})

	DecodeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hist2json_decode_duration_seconds",
			Help:    "Time spent decoding a single file",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"source"},
	)
)

// Server serves /metrics and /healthz while a run is in flight.
type Server struct {
	addr  string
	srv   *http.Server
	ready bool
}

// NewServer returns a metrics server bound to addr. It does not start
// listening until Start is called.
func NewServer(addr string) *Server {
	s := &Server{addr: addr}

	router := mux.NewRouter()
	router.Handle("/metrics", promhttp.Handler())
	router.HandleFunc("/healthz", s.handleHealthz)

	s.srv = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if !s.ready {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// Start begins serving in the background and marks the server ready.
func (s *Server) Start() {
	s.ready = true
	go func() {
		_ = s.srv.ListenAndServe()
	}()
}

// Stop gracefully shuts down the HTTP listener.
func (s *Server) Stop(ctx context.Context) error {
	s.ready = false
	return s.srv.Shutdown(ctx)
}

// RecordSummary publishes a finished run's counters under the given source
// label (typically the input file path). missing is the
// run summary's per-line journal (types.RunSummary.MissingCodes): each
// value may itself be a comma-joined list of tags seen on that line.
func RecordSummary(source string, seen, admitted, skipped, emitted int, missing map[int]string) {
	LinesSeenTotal.WithLabelValues(source).Add(float64(seen))
	LinesAdmittedTotal.WithLabelValues(source).Add(float64(admitted))
	LinesSkippedTotal.WithLabelValues(source).Add(float64(skipped))
	RecordsEmittedTotal.WithLabelValues(source).Add(float64(emitted))
	for _, tags := range missing {
		for _, tag := range strings.Split(tags, ",") {
			MissingCodesTotal.WithLabelValues(tag).Inc()
		}
	}
}
