package particledef

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounce = 100 * time.Millisecond

// Watcher reports definition files that changed on disk.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Events)
		close(w.Errors)
	})
	return err
}

// run reports a file once it has been quiet for debounce. Every event for
// the same file pushes its deadline back, so a save written in several steps
// is reported after the last one.
func (w *Watcher) run() {
	defer close(w.done)
	timers := make(map[string]*time.Timer)
	lastSeen := make(map[string]time.Time)
	quiet := make(chan string)
	arm := func(name string, wait time.Duration) {
		timers[name] = time.AfterFunc(wait, func() {
			select {
			case quiet <- name:
			case <-w.closeCh:
			}
		})
	}
	defer func() {
		for _, t := range timers {
			t.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !IsDefinitionFile(event.Name) {
				continue
			}
			lastSeen[event.Name] = time.Now()
			if _, pending := timers[event.Name]; !pending {
				arm(event.Name, debounce)
			}
		case name := <-quiet:
			if wait := debounce - time.Since(lastSeen[name]); wait > 0 {
				arm(name, wait)
				continue
			}
			delete(timers, name)
			delete(lastSeen, name)
			select {
			case w.Events <- name:
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

func IsDefinitionFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
