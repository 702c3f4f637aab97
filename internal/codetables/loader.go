package codetables

import (
	"bufio"
	"os"
	"strings"

	apperrors "hist2json/pkg/errors"
)

// LoadCommandTable reads a command-code file (§6: "TAG|Human Name|", tag is
// the leading two characters, title-cased values preserved).
func LoadCommandTable(path string) (*Table, error) {
	return load(path, false, "command_table")
}

// LoadDataTable reads a data-code file, normalising every value with
// fold-spaces=true (§4.1).
func LoadDataTable(path string) (*Table, error) {
	return load(path, true, "data_table")
}

// LoadClientTable reads the hold-client-table file: same pipe format, keyed
// by a numeric client id string rather than a two-character tag.
func LoadClientTable(path string) (*Table, error) {
	return load(path, false, "client_table")
}

// load parses a pipe-delimited code-table file. Each line has the shape
// "TAG|Value|..."; the tag is everything up to the first "|", and the
// value is everything between the first and second "|". Blank lines are
// skipped; a line with no "|" is skipped (malformed entries do not abort
// table loading). A file that yields no entries at all loads as an empty
// table without error.
func load(path string, foldSpaces bool, operation string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.CodeTableError(operation, "cannot open "+path).Wrap(err)
	}
	defer f.Close()

	table := New(foldSpaces)

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		first := strings.IndexByte(line, '|')
		if first < 0 {
			continue
		}
		tag := line[:first]
		rest := line[first+1:]
		value := rest
		if second := strings.IndexByte(rest, '|'); second >= 0 {
			value = rest[:second]
		}
		if tag == "" {
			continue
		}
		table.Merge(tag, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, apperrors.CodeTableError(operation, "error reading "+path).Wrap(err)
	}

	return table, nil
}
