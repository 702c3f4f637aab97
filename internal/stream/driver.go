// Package stream implements the Streaming Driver (§2 item 8, §4.7): it
// pulls lines from a source, applies the range gate, invokes the decoder,
// hands records to an emitter, and aggregates the end-of-run summary.
package stream

import (
	"hist2json/internal/decode"
	"hist2json/internal/emit"
	"hist2json/internal/rangegate"
	"hist2json/internal/source"
	"hist2json/pkg/types"
)

// Driver ties together one input source, the range gate, the decoder's
// tables, and one emitter. A Driver processes exactly one source run: per
// §5, outputs from separate files must never be interleaved into a single
// emitter, so a multi-file job constructs one Driver (and one Emitter) per
// file rather than sharing a Driver across files.
type Driver struct {
	Tables  decode.Tables
	Gate    rangegate.Gate
	Emitter emit.Emitter
}

// Run processes src to completion, strictly sequentially (§5), and returns
// the aggregate summary. A non-nil error means either the source or the
// emitter failed fatally (§4.8); the summary reflects progress up to that
// point. Per-line decode failures never produce an error here — they are
// folded into the summary's LinesSkipped counter.
func (d *Driver) Run(src source.LineSource) (*types.RunSummary, error) {
	summary := types.NewRunSummary()
	lineNo := 0

	for {
		line, ok, err := src.Next()
		if err != nil {
			return summary, err
		}
		if !ok {
			break
		}
		lineNo++
		summary.LinesSeen++

		if !d.Gate.Admit(line) {
			continue
		}
		summary.LinesAdmitted++

		res, decoded := decode.Decode(line, d.Tables)
		if !decoded {
			summary.LinesSkipped++
			continue
		}

		for _, tag := range res.Missing {
			summary.RecordMissing(lineNo, tag)
		}
		if res.ItemIndexAttempted {
			if res.ItemIndexHit {
				summary.ItemIndexHits++
			} else {
				summary.ItemIndexMisses++
			}
		}

		if err := d.Emitter.Emit(res.Record); err != nil {
			return summary, err
		}
		summary.RecordsEmitted++
	}

	if err := d.Emitter.Finish(summary); err != nil {
		return summary, err
	}
	return summary, nil
}
