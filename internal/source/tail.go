package source

import (
	"io"

	"github.com/nxadm/tail"

	apperrors "hist2json/pkg/errors"
)

// TailSource follows a growing file from its current end, the supplemented
// "follow mode" feature (SPEC_FULL.md Domain Stack), grounded on the
// teacher's nxadm/tail-based tailer. Unlike the teacher's file monitor,
// lines are pulled one at a time by the caller rather than fanned out to a
// worker pool — the streaming driver stays strictly sequential (§5).
type TailSource struct {
	t *tail.Tail
}

// Follow starts tailing path from its current end-of-file.
func Follow(path string) (*TailSource, error) {
	t, err := tail.TailFile(path, tail.Config{
		Follow:   true,
		ReOpen:   true,
		Location: &tail.SeekInfo{Offset: 0, Whence: io.SeekEnd},
	})
	if err != nil {
		return nil, apperrors.StreamError("follow", "cannot tail "+path).Wrap(err)
	}
	return &TailSource{t: t}, nil
}

// Next blocks until a new line arrives, the tail ends, or an error occurs.
func (s *TailSource) Next() (string, bool, error) {
	line, ok := <-s.t.Lines
	if !ok {
		if err := s.t.Err(); err != nil {
			return "", false, apperrors.StreamError("follow", "tail failed").Wrap(err)
		}
		return "", false, nil
	}
	if line.Err != nil {
		return "", false, apperrors.StreamError("follow", "tail line error").Wrap(line.Err)
	}
	return line.Text, true, nil
}

// Close stops the tailer.
func (s *TailSource) Close() error {
	return s.t.Stop()
}
