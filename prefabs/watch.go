package prefabs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ChangeKind tells a preset edit apart from a scene script edit.
type ChangeKind int

const (
	ChangePreset ChangeKind = iota
	ChangeScript
)

func (k ChangeKind) String() string {
	switch k {
	case ChangePreset:
		return "preset"
	case ChangeScript:
		return "script"
	default:
		return "unknown"
	}
}

// Change is a debounced filesystem edit of a preset or script.
type Change struct {
	Path string
	Name string
	Kind ChangeKind
}

const debounce = 100 * time.Millisecond

// Watcher reports edits to preset YAML and tengo scripts on disk so a
// running game can reload them.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan Change
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// NewWatcher watches the given directories. Directories that do not exist are
// skipped so a binary run outside the source tree still starts.
func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan Change, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Watched lists the directories actually being watched.
func (w *Watcher) Watched() []string {
	return w.watcher.WatchList()
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Events)
	defer close(w.Errors)

	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			change, ok := classify(event.Name)
			if !ok {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < debounce {
				continue
			}
			last[event.Name] = now
			select {
			case w.Events <- change:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func classify(path string) (Change, bool) {
	base := filepath.Base(path)
	ext := strings.ToLower(filepath.Ext(path))
	name := strings.TrimSuffix(base, filepath.Ext(base))
	switch ext {
	case ".yaml", ".yml":
		return Change{Path: path, Name: name, Kind: ChangePreset}, true
	case ".tengo":
		return Change{Path: path, Name: name, Kind: ChangeScript}, true
	default:
		return Change{}, false
	}
}
