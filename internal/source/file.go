// Package source implements the line-producing side of the Streaming
// Driver's input (§4.7): a plain or gzip-compressed file; a followed
// (growing) file; or a watched directory that yields newly-arrived files.
// All three expose sequential, single-reader access — no line is ever
// handed to more than one consumer, matching §5's single-threaded-per-file
// requirement.
package source

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"

	apperrors "hist2json/pkg/errors"
)

// LineSource yields the lines of one logical input in order. Next returns
// ok=false, err=nil at clean end-of-stream; ok=false with a non-nil err
// signals the fatal I/O failure of §4.8, which aborts the run.
type LineSource interface {
	Next() (line string, ok bool, err error)
	Close() error
}

// FileSource reads a plain or .gz file line by line.
type FileSource struct {
	f       *os.File
	closer  io.Closer
	scanner *bufio.Scanner
}

// Open returns a LineSource for path, transparently decompressing .gz
// files by extension (§4.7 "may transparently decompress .gz files").
// gzip uses klauspost/compress, the corpus's drop-in gzip implementation.
func Open(path string) (*FileSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.StreamError("open", "cannot open "+path).Wrap(err)
	}

	var r io.Reader = f
	var closer io.Closer = f

	if strings.HasSuffix(path, ".gz") {
		gz, gzErr := gzip.NewReader(f)
		if gzErr != nil {
			f.Close()
			return nil, apperrors.StreamError("open", "cannot open gzip stream "+path).Wrap(gzErr)
		}
		r = gz
		closer = multiCloser{gz, f}
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	return &FileSource{f: f, closer: closer, scanner: scanner}, nil
}

// Next returns the next line, stripped of its line terminator.
func (s *FileSource) Next() (string, bool, error) {
	if s.scanner.Scan() {
		return s.scanner.Text(), true, nil
	}
	if err := s.scanner.Err(); err != nil {
		return "", false, apperrors.StreamError("read_line", "read failure").Wrap(err)
	}
	return "", false, nil
}

// Close releases the underlying file (and decompressor, if any).
func (s *FileSource) Close() error {
	return s.closer.Close()
}

type multiCloser []io.Closer

func (m multiCloser) Close() error {
	var first error
	for _, c := range m {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
