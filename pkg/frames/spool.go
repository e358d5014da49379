package frames

import (
	"image"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// SpoolSource emits frames dropped into a watched directory. It stands in
// for a live camera stream: a capture device writes frames as image files
// and the watcher delivers them, debounced so half-written files settle
// before they are decoded.
type SpoolSource struct {
	dir     string
	watcher *fsnotify.Watcher
	frames  chan image.Image
	done    chan struct{}
}

// NewSpoolSource starts watching dir. The returned source must be closed so
// the underlying watch handle is released on every exit path.
func NewSpoolSource(dir string) (*SpoolSource, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, err
	}
	s := &SpoolSource{
		dir:     dir,
		watcher: w,
		frames:  make(chan image.Image, 16),
		done:    make(chan struct{}),
	}
	go s.loop()
	return s, nil
}

// Frames is closed when the source is closed or the watcher dies.
func (s *SpoolSource) Frames() <-chan image.Image {
	return s.frames
}

// Close releases the watch handle and ends the frame stream.
func (s *SpoolSource) Close() error {
	close(s.done)
	return s.watcher.Close()
}

func (s *SpoolSource) loop() {
	defer close(s.frames)
	// debounce map of pending files so a frame is only read once stable
	pending := map[string]time.Time{}
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case ev, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if ev.Op&fsnotify.Create == fsnotify.Create || ev.Op&fsnotify.Write == fsnotify.Write {
				if isSupportedExt(ev.Name) {
					pending[ev.Name] = time.Now()
				}
			}
		case <-ticker.C:
			now := time.Now()
			for path, seen := range pending {
				if now.Sub(seen) < 150*time.Millisecond {
					continue
				}
				delete(pending, path)
				img, err := imaging.Open(path)
				if err != nil {
					logrus.WithError(err).WithField("file", path).Warn("spool: unreadable frame skipped")
					continue
				}
				select {
				case s.frames <- img:
				case <-s.done:
					return
				}
			}
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			logrus.WithError(err).Warn("spool: watch error")
		}
	}
}

func isSupportedExt(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png", ".jpg", ".jpeg", ".gif", ".webp":
		return true
	}
	return false
}
