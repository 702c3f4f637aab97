package source

import (
	"github.com/fsnotify/fsnotify"

	apperrors "hist2json/pkg/errors"
)

// DirectoryWatcher surfaces newly-arrived files in a directory, the
// supplemented "watch mode" feature (SPEC_FULL.md Domain Stack). It hands
// paths to the caller one at a time; each is expected to be decoded to
// completion (its own FileSource, its own output) before the next is
// opened, preserving the no-interleaved-output rule of §5.
type DirectoryWatcher struct {
	watcher *fsnotify.Watcher
	paths   chan string
}

// WatchDirectory begins watching dir for newly-created files.
func WatchDirectory(dir string) (*DirectoryWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, apperrors.StreamError("watch", "cannot create watcher").Wrap(err)
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, apperrors.StreamError("watch", "cannot watch "+dir).Wrap(err)
	}

	dw := &DirectoryWatcher{watcher: w, paths: make(chan string, 64)}
	go dw.run()
	return dw, nil
}

// run enqueues only Create events. A history log file is written once and
// left in place (§4.7 watch mode), so Create already marks its arrival; a
// file also being matched on Write would enqueue the same path again for
// every flush made while it's being written, decoding it multiple times.
func (dw *DirectoryWatcher) run() {
	defer close(dw.paths)
	for event := range dw.watcher.Events {
		if event.Op&fsnotify.Create != 0 {
			dw.paths <- event.Name
		}
	}
}

// Next blocks until a file event arrives or the watcher is closed.
func (dw *DirectoryWatcher) Next() (string, bool) {
	p, ok := <-dw.paths
	return p, ok
}

// Close stops the underlying watcher.
func (dw *DirectoryWatcher) Close() error {
	return dw.watcher.Close()
}
