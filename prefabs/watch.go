package prefabs

import (
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settleDelay is how long a file must stay quiet before its edit is reported.
// Editors often save in several writes.
const settleDelay = 100 * time.Millisecond

// Change is one batch of settled edits.
type Change struct {
	Files  []string
	Tuning bool
	Policy bool
}

func (c Change) Empty() bool {
	return len(c.Files) == 0
}

// Classify reports whether path is a tuning table or a policy script.
func Classify(path string) (tuning, policy bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true, false
	case ".tengo":
		return false, true
	}
	return false, false
}

// Watcher collects edits to tuning and script files in the background.
// Front-ends call Poll from their frame loop.
type Watcher struct {
	fs *fsnotify.Watcher

	mu      sync.Mutex
	pending map[string]time.Time
	err     error

	closeOnce sync.Once
	done      chan struct{}
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		fs:      fw,
		pending: make(map[string]time.Time),
		done:    make(chan struct{}),
	}
	go w.collect()
	return w, nil
}

// Poll returns the edits that have settled since the last call, and the most
// recent watch error. It never blocks on the file system.
func (w *Watcher) Poll() (Change, error) {
	return w.poll(time.Now())
}

func (w *Watcher) poll(now time.Time) (Change, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	var c Change
	for name, at := range w.pending {
		if now.Sub(at) < settleDelay {
			continue
		}
		delete(w.pending, name)
		tuning, policy := Classify(name)
		c.Files = append(c.Files, name)
		c.Tuning = c.Tuning || tuning
		c.Policy = c.Policy || policy
	}
	sort.Strings(c.Files)

	err := w.err
	w.err = nil
	return c, err
}

func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		err = w.fs.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) collect() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
				continue
			}
			if tuning, policy := Classify(event.Name); !tuning && !policy {
				continue
			}
			w.mu.Lock()
			w.pending[event.Name] = time.Now()
			w.mu.Unlock()
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.mu.Lock()
			w.err = err
			w.mu.Unlock()
		}
	}
}
