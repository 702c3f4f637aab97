// Package itemindex implements the optional catalog-key/call-seq/copy-num
// to item-barcode lookup (§3 "Item index"). Production indexes can exceed
// 10^6 entries (§5), so entries are keyed by a 64-bit xxhash of the
// composite key rather than the composite string itself, avoiding a live
// string allocation per key while the barcode values are kept verbatim.
package itemindex

import (
	"bufio"
	"os"
	"strings"

	"github.com/cespare/xxhash/v2"

	apperrors "hist2json/pkg/errors"
)

// Index is a read-only-after-load mapping from a hashed composite item key
// to a barcode string. A nil *Index is a valid "no item index configured"
// state; Lookup on a nil Index always misses.
type Index struct {
	entries map[uint64]string
}

// New returns an empty index.
func New() *Index {
	return &Index{entries: make(map[uint64]string)}
}

// Key hashes the composite "catalog_key|call_seq|copy_num|" string (§3, §6
// — trailing pipe required) into the fixed-size key used internally.
func Key(catalogKey, callSeq, copyNum string) uint64 {
	var b strings.Builder
	b.Grow(len(catalogKey) + len(callSeq) + len(copyNum) + 3)
	b.WriteString(catalogKey)
	b.WriteByte('|')
	b.WriteString(callSeq)
	b.WriteByte('|')
	b.WriteString(copyNum)
	b.WriteByte('|')
	return xxhash.Sum64String(b.String())
}

// Put stores barcode under the hash of the given composite key parts.
func (ix *Index) Put(catalogKey, callSeq, copyNum, barcode string) {
	ix.entries[Key(catalogKey, callSeq, copyNum)] = barcode
}

// Lookup returns the barcode for the composite key, if present. A miss is
// not an error (§4.5e, §4.8): the caller proceeds without item_id.
func (ix *Index) Lookup(catalogKey, callSeq, copyNum string) (string, bool) {
	if ix == nil {
		return "", false
	}
	barcode, ok := ix.entries[Key(catalogKey, callSeq, copyNum)]
	return barcode, ok
}

// Len reports the number of entries loaded.
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.entries)
}

// Load reads an item-index file: pipe-delimited
// "catalog_key|call_seq|copy_num|barcode", one entry per line (§6).
// Trailing whitespace on the barcode is trimmed.
func Load(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.CodeTableError("item_index", "cannot open "+path).Wrap(err)
	}
	defer f.Close()

	ix := New()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "|", 4)
		if len(parts) != 4 {
			continue
		}
		barcode := strings.TrimRight(parts[3], " \t\r")
		ix.Put(parts[0], parts[1], parts[2], barcode)
	}
	if err := scanner.Err(); err != nil {
		return nil, apperrors.CodeTableError("item_index", "error reading "+path).Wrap(err)
	}

	return ix, nil
}
