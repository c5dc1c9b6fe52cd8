// Copyright (c) 2026 Wili
// Licensed under the MIT License. See LICENSE file in the project root for details.

package store

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"wili/cli/internal/logging"
)

// tmpPrefix marks in-progress writes so the watcher can ignore them.
const tmpPrefix = ".tmp-"

// File is a durable KV backed by one file per key inside a shared
// directory. Writes are atomic (temp file + rename) so a concurrent
// reader never observes a half-written value.
//
// File is watchable: fsnotify reports directory changes, and writes made
// by this process are filtered out so only foreign mutations reach the
// event stream, mirroring the contract of browser storage events.
type File struct {
	dir string

	mu sync.Mutex
	// lastWritten tracks this process's own writes per key. A nil entry
	// is a removal tombstone; a missing entry means we never touched the
	// key. Used by the watcher for self-write suppression.
	lastWritten map[string]*string
	watcher     *fsnotify.Watcher
	events      chan Event
}

// NewFile opens (and creates if needed) a file store rooted at dir.
func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &File{
		dir:         dir,
		lastWritten: make(map[string]*string),
	}, nil
}

// Get reads the value of key. Any read failure is reported as absence.
func (f *File) Get(key string) (string, bool) {
	b, err := os.ReadFile(filepath.Join(f.dir, key))
	if err != nil {
		return "", false
	}
	return string(b), true
}

// Set writes the value of key atomically. Failures are logged and dropped.
func (f *File) Set(key, value string) {
	f.mu.Lock()
	v := value
	f.lastWritten[key] = &v
	f.mu.Unlock()

	tmp, err := os.CreateTemp(f.dir, tmpPrefix+"*")
	if err != nil {
		logging.Logger().Debug().Err(err).Str("key", key).Msg("store write failed")
		return
	}
	name := tmp.Name()
	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		_ = os.Remove(name)
		logging.Logger().Debug().Err(err).Str("key", key).Msg("store write failed")
		return
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(name)
		return
	}
	if err := os.Rename(name, filepath.Join(f.dir, key)); err != nil {
		_ = os.Remove(name)
		logging.Logger().Debug().Err(err).Str("key", key).Msg("store write failed")
	}
}

// Remove deletes the key. Missing keys are not an error.
func (f *File) Remove(key string) {
	f.mu.Lock()
	f.lastWritten[key] = nil
	f.mu.Unlock()
	_ = os.Remove(filepath.Join(f.dir, key))
}

// Watch starts (once) a directory watcher and returns the event stream of
// foreign mutations. Subsequent calls return the same stream.
func (f *File) Watch() (<-chan Event, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.events != nil {
		return f.events, true
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		logging.Logger().Debug().Err(err).Msg("storage watch unavailable")
		return nil, false
	}
	if err := w.Add(f.dir); err != nil {
		_ = w.Close()
		logging.Logger().Debug().Err(err).Msg("storage watch unavailable")
		return nil, false
	}

	f.watcher = w
	f.events = make(chan Event, 64)
	go f.watchLoop(w, f.events)
	return f.events, true
}

// Close stops the watcher, if one was started. The event channel closes
// once the watcher drains.
func (f *File) Close() error {
	f.mu.Lock()
	w := f.watcher
	f.mu.Unlock()
	if w == nil {
		return nil
	}
	return w.Close()
}

func (f *File) watchLoop(w *fsnotify.Watcher, out chan Event) {
	defer close(out)
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			key := filepath.Base(ev.Name)
			if strings.HasPrefix(key, tmpPrefix) {
				continue
			}
			switch {
			case ev.Op&(fsnotify.Create|fsnotify.Write) != 0:
				val, exists := f.Get(key)
				if !exists {
					// Raced with a removal; the remove event follows.
					continue
				}
				if f.isSelfWrite(key, &val) {
					continue
				}
				f.deliver(out, Event{Key: key, Value: &val})
			case ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
				if f.isSelfWrite(key, nil) {
					continue
				}
				f.deliver(out, Event{Key: key})
			}
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			logging.Logger().Debug().Err(err).Msg("storage watch error")
		}
	}
}

// isSelfWrite reports whether the observed value for key matches what this
// process last wrote there. A foreign write of the identical value is also
// suppressed, which is harmless: it would not change state.
func (f *File) isSelfWrite(key string, value *string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	last, touched := f.lastWritten[key]
	if !touched {
		return false
	}
	if value == nil || last == nil {
		return value == nil && last == nil
	}
	return *value == *last
}

func (f *File) deliver(out chan Event, e Event) {
	select {
	case out <- e:
	default:
		logging.Logger().Warn().Str("key", e.Key).Msg("storage event dropped: slow consumer")
	}
}
