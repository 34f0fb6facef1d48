// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package watch turns changes to the documents of a comparison into reload requests.
//
// Reload requests are coalesced: While a request is pending, further changes don't create new
// requests. A typical loop looks like this:
//
//	for range w.Reloads() {
//		next, err := session.Reload(sidebyside.OS)
//		if err != nil {
//			// keep showing the old session
//			continue
//		}
//		session = next
//		controller.SetSession(next)
//	}
package watch

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches a set of files.
type Watcher struct {
	fsw   *fsnotify.Watcher
	files map[string]bool

	reloads chan struct{}
	errors  chan error
	done    chan struct{}
	wg      sync.WaitGroup
	once    sync.Once
}

// New starts watching the files at paths.
//
// The directories containing the files are watched instead of the files themselves, this way
// changes are also noticed if a file is replaced instead of written to.
func New(paths ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}

	w := &Watcher{
		fsw:     fsw,
		files:   make(map[string]bool, len(paths)),
		reloads: make(chan struct{}, 1),
		errors:  make(chan error, 1),
		done:    make(chan struct{}),
	}
	dirs := make(map[string]bool)
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			fsw.Close()
			return nil, fmt.Errorf("watching %s: %w", path, err)
		}
		w.files[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("watching %s: %w", path, err)
		}
		dirs[dir] = true
	}

	w.wg.Add(1)
	go w.run()
	return w, nil
}

// Reloads returns the channel of reload requests. The channel is closed by [Watcher.Close].
func (w *Watcher) Reloads() <-chan struct{} { return w.reloads }

// Errors returns the channel of errors reported by the file system. Errors are dropped if the
// previous error hasn't been received yet. The channel is closed by [Watcher.Close].
func (w *Watcher) Errors() <-chan error { return w.errors }

// Close stops watching. It's safe to call Close multiple times.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fsw.Close()
		w.wg.Wait()
		close(w.reloads)
		close(w.errors)
	})
	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if w.relevant(event) {
				w.request()
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			default:
			}
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
		return false
	}
	return w.files[filepath.Clean(event.Name)]
}

// request creates a reload request unless one is already pending.
func (w *Watcher) request() {
	select {
	case w.reloads <- struct{}{}:
	default:
	}
}
