// Package emit implements the two output modes of §4.7/§6 (array and
// document-store JSON) plus the supplemented Kafka emitter (SPEC_FULL.md
// Domain Stack). An Emitter is handed each decoded record as the streaming
// driver produces it, in order, and receives the run summary once at
// end-of-stream.
package emit

import "hist2json/pkg/types"

// Emitter consumes decoded records strictly in decode order (§5) and is
// given the run's aggregate summary exactly once, after the last record.
type Emitter interface {
	Emit(rec *types.Record) error
	Finish(summary *types.RunSummary) error
}
