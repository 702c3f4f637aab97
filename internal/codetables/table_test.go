package codetables

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable_MergeIsIdempotent(t *testing.T) {
	tbl := New(true)
	tbl.Merge("FE", "Station Library")
	first, _ := tbl.Lookup("FE")

	tbl.Merge("FE", "Station Library")
	second, ok := tbl.Lookup("FE")

	assert.True(t, ok)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, tbl.Len())
}

func TestTable_MergeReapplyingNormalizedValueIsNoOp(t *testing.T) {
	tbl := New(true)
	tbl.Merge("FE", "Station Library")
	canonical, _ := tbl.Lookup("FE")

	tbl.Merge("FE", canonical)
	after, _ := tbl.Lookup("FE")

	assert.Equal(t, canonical, after)
}

func TestTable_LookupHit(t *testing.T) {
	tbl := New(false)
	tbl.Merge("EV", "Discharge Item")

	v, ok := tbl.Lookup("EV")
	assert.True(t, ok)
	assert.Equal(t, "Discharge Item", v)
}

func TestTable_LookupMiss(t *testing.T) {
	tbl := New(false)
	_, ok := tbl.Lookup("zZ")
	assert.False(t, ok)
}

func TestTable_FoldSpacesNormalizesDataCodeValues(t *testing.T) {
	tbl := New(true)
	tbl.Merge("HB", "Date Hold Expires")

	v, _ := tbl.Lookup("HB")
	assert.Equal(t, "date_hold_expires", v)
}

func TestTable_NoFoldPreservesCommandCodeCasing(t *testing.T) {
	tbl := New(false)
	tbl.Merge("EV", "Discharge Item")

	v, _ := tbl.Lookup("EV")
	assert.Equal(t, "Discharge Item", v)
}

func TestTable_Len(t *testing.T) {
	tbl := New(false)
	assert.Equal(t, 0, tbl.Len())
	tbl.Merge("EV", "Discharge Item")
	tbl.Merge("JZ", "Bibliographic Comment")
	assert.Equal(t, 2, tbl.Len())
}
