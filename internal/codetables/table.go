// Package codetables implements the four immutable code-table mappings
// loaded at startup (§2, §3): command codes, data codes, client-type
// codes, and (via internal/itemindex) the item index.
package codetables

import "hist2json/pkg/normalize"

// Table is a read-only-after-load mapping from a tag (a two-character data/
// command code, or a numeric client-type id) to a human-readable string.
//
// Values are normalised through pkg/normalize.String at load time and on
// every Merge, with the fold-spaces setting fixed per table: data-code
// values fold (lower-case, underscored), command-code values do not
// (title-cased, spaces preserved), matching §4.1.
type Table struct {
	entries    map[string]string
	foldSpaces bool
}

// New returns an empty table with the given normalisation mode.
func New(foldSpaces bool) *Table {
	return &Table{entries: make(map[string]string), foldSpaces: foldSpaces}
}

// Merge adds or overwrites the value for tag, re-applying normalisation.
// Merging the same (tag, value) pair twice is a no-op the second time,
// since normalisation is itself idempotent (§8).
func (t *Table) Merge(tag, value string) {
	t.entries[tag] = normalize.String(value, t.foldSpaces)
}

// Lookup returns the canonical value for tag and whether it was present.
func (t *Table) Lookup(tag string) (string, bool) {
	v, ok := t.entries[tag]
	return v, ok
}

// Len reports the number of entries currently in the table.
func (t *Table) Len() int {
	return len(t.entries)
}
