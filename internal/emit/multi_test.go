package emit

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hist2json/pkg/types"
)

type recordingEmitter struct {
	emitted []*types.Record
	summary *types.RunSummary
	emitErr error
}

func (r *recordingEmitter) Emit(rec *types.Record) error {
	if r.emitErr != nil {
		return r.emitErr
	}
	r.emitted = append(r.emitted, rec)
	return nil
}

func (r *recordingEmitter) Finish(summary *types.RunSummary) error {
	r.summary = summary
	return nil
}

func TestMultiEmitter_DispatchesToEveryWrappedEmitter(t *testing.T) {
	var buf bytes.Buffer
	array, err := NewArray(&buf)
	require.NoError(t, err)
	rec := &recordingEmitter{}

	m := NewMulti(array, rec)
	require.NoError(t, m.Emit(sampleRecord("Discharge Item")))

	summary := types.NewRunSummary()
	require.NoError(t, m.Finish(summary))

	assert.Len(t, rec.emitted, 1)
	assert.Same(t, summary, rec.summary)
	assert.Equal(t, "[", buf.String()[:1])
}

func TestMultiEmitter_EmitAbortsAtFirstError(t *testing.T) {
	wantErr := errors.New("boom")
	failing := &recordingEmitter{emitErr: wantErr}
	after := &recordingEmitter{}

	m := NewMulti(failing, after)
	err := m.Emit(sampleRecord("Discharge Item"))

	assert.ErrorIs(t, err, wantErr)
	assert.Empty(t, after.emitted)
}
