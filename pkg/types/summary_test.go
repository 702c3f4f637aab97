package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunSummary_RecordMissing_JoinsMultipleTagsOnSameLine(t *testing.T) {
	s := NewRunSummary()
	s.RecordMissing(12, "zZ")
	s.RecordMissing(12, "xY")

	assert.Equal(t, "zZ,xY", s.MissingCodes[12])
}

func TestRunSummary_SortedMissingLines(t *testing.T) {
	s := NewRunSummary()
	s.RecordMissing(42, "zZ")
	s.RecordMissing(3, "xY")
	s.RecordMissing(17, "qQ")

	assert.Equal(t, []int{3, 17, 42}, s.SortedMissingLines())
}
