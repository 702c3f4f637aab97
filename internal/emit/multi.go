package emit

import "hist2json/pkg/types"

// MultiEmitter fans a decode run out to several emitters at once — the
// Kafka emitter is documented as mutually compatible with file/stdout
// emission (SPEC_FULL.md Domain Stack), so a run can both write its
// array/ndjson output and publish the same records to Kafka.
type MultiEmitter struct {
	emitters []Emitter
}

// NewMulti returns an Emitter dispatching every call to each of emitters,
// in order. Emit/Finish abort at the first error, matching the driver's
// own abort-on-emitter-error semantics (§4.8).
func NewMulti(emitters ...Emitter) *MultiEmitter {
	return &MultiEmitter{emitters: emitters}
}

// Emit hands rec to each wrapped emitter in turn.
func (m *MultiEmitter) Emit(rec *types.Record) error {
	for _, e := range m.emitters {
		if err := e.Emit(rec); err != nil {
			return err
		}
	}
	return nil
}

// Finish hands summary to each wrapped emitter in turn.
func (m *MultiEmitter) Finish(summary *types.RunSummary) error {
	for _, e := range m.emitters {
		if err := e.Finish(summary); err != nil {
			return err
		}
	}
	return nil
}
