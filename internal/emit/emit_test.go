package emit

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hist2json/pkg/types"
)

func sampleRecord(value string) *types.Record {
	rec := types.NewRecord()
	rec.Set("timestamp", "2023-10-10 05:10:08")
	rec.Set("command_code", value)
	return rec
}

func TestArrayEmitter_BracketsAndCommas(t *testing.T) {
	var buf bytes.Buffer
	a, err := NewArray(&buf)
	require.NoError(t, err)

	require.NoError(t, a.Emit(sampleRecord("Discharge Item")))
	require.NoError(t, a.Emit(sampleRecord("Charge Item")))
	require.NoError(t, a.Finish(types.NewRunSummary()))

	got := buf.String()
	assert.True(t, got[0] == '[' && got[len(got)-1] == ']')
	// one separator between the two records, plus the comma inside each
	// two-field record
	assert.Equal(t, 3, bytesCount(got, ','))
}

func TestArrayEmitter_EmptyProducesEmptyArray(t *testing.T) {
	var buf bytes.Buffer
	a, err := NewArray(&buf)
	require.NoError(t, err)
	require.NoError(t, a.Finish(types.NewRunSummary()))
	assert.Equal(t, "[]", buf.String())
}

func TestNDJSONEmitter_OneObjectPerLine(t *testing.T) {
	var buf bytes.Buffer
	n := NewNDJSON(&buf)

	require.NoError(t, n.Emit(sampleRecord("Discharge Item")))
	require.NoError(t, n.Emit(sampleRecord("Charge Item")))
	require.NoError(t, n.Finish(types.NewRunSummary()))

	lines := bytes.Split(bytes.TrimRight(buf.Bytes(), "\n"), []byte("\n"))
	assert.Len(t, lines, 2)
}

func bytesCount(s string, b byte) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			n++
		}
	}
	return n
}
