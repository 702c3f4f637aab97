package stream

import "hist2json/pkg/types"

// fakeSource replays a fixed slice of lines, then a configurable tail error.
type fakeSource struct {
	lines []string
	pos   int
	err   error
}

func (f *fakeSource) Next() (string, bool, error) {
	if f.pos >= len(f.lines) {
		if f.err != nil {
			return "", false, f.err
		}
		return "", false, nil
	}
	line := f.lines[f.pos]
	f.pos++
	return line, true, nil
}

func (f *fakeSource) Close() error { return nil }

// fakeEmitter records every emitted record and whether Finish was called.
type fakeEmitter struct {
	emitted   []*types.Record
	finished  *types.RunSummary
	emitErr   error
	finishErr error
}

func (f *fakeEmitter) Emit(rec *types.Record) error {
	if f.emitErr != nil {
		return f.emitErr
	}
	f.emitted = append(f.emitted, rec)
	return nil
}

func (f *fakeEmitter) Finish(summary *types.RunSummary) error {
	f.finished = summary
	return f.finishErr
}
