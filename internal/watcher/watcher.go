// Package watcher provides debounced filesystem watching for the content
// tree, driving re-validation in watch mode.
package watcher

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ContentWatcher watches content directories for changes with debouncing,
// so a burst of editor writes triggers a single re-validation.
type ContentWatcher struct {
	watcher   *fsnotify.Watcher
	debouncer *debouncer
	filters   []FileFilter
	handlers  []ChangeHandler
	mutex     sync.RWMutex
}

// ChangeEvent represents a single content file change.
type ChangeEvent struct {
	Type    EventType
	Path    string
	ModTime time.Time
}

// EventType represents the type of file change.
type EventType int

const (
	EventTypeCreated EventType = iota
	EventTypeModified
	EventTypeDeleted
	EventTypeRenamed
)

// String returns the string representation of the EventType.
func (e EventType) String() string {
	switch e {
	case EventTypeCreated:
		return "created"
	case EventTypeModified:
		return "modified"
	case EventTypeDeleted:
		return "deleted"
	case EventTypeRenamed:
		return "renamed"
	default:
		return "unknown"
	}
}

// FileFilter determines whether a path is interesting.
type FileFilter func(path string) bool

// ChangeHandler receives a debounced, deduplicated batch of changes.
type ChangeHandler func(events []ChangeEvent) error

type debouncer struct {
	delay   time.Duration
	events  chan ChangeEvent
	output  chan []ChangeEvent
	timer   *time.Timer
	pending []ChangeEvent
	mutex   sync.Mutex
}

// NewContentWatcher creates a watcher with the given debounce window.
func NewContentWatcher(debounceDelay time.Duration) (*ContentWatcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &ContentWatcher{
		watcher: fsWatcher,
		debouncer: &debouncer{
			delay:   debounceDelay,
			events:  make(chan ChangeEvent, 100),
			output:  make(chan []ChangeEvent, 10),
			pending: make([]ChangeEvent, 0),
		},
		filters:  make([]FileFilter, 0),
		handlers: make([]ChangeHandler, 0),
	}, nil
}

// AddFilter adds a file filter.
func (cw *ContentWatcher) AddFilter(filter FileFilter) {
	cw.mutex.Lock()
	defer cw.mutex.Unlock()
	cw.filters = append(cw.filters, filter)
}

// AddHandler adds a change handler.
func (cw *ContentWatcher) AddHandler(handler ChangeHandler) {
	cw.mutex.Lock()
	defer cw.mutex.Unlock()
	cw.handlers = append(cw.handlers, handler)
}

// AddRecursive adds a directory and all of its subdirectories to the
// watch set. Missing directories are skipped, not failed: watch mode
// tolerates projects that omit optional content categories.
func (cw *ContentWatcher) AddRecursive(root string) error {
	if _, err := os.Stat(root); err != nil {
		return nil
	}

	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if err := cw.watcher.Add(path); err != nil {
				return fmt.Errorf("watching %s: %w", path, err)
			}
		}
		return nil
	})
}

// Start begins watching. The watcher runs until ctx is cancelled.
func (cw *ContentWatcher) Start(ctx context.Context) {
	go cw.debouncer.start(ctx)
	go cw.processEvents(ctx)
	go cw.watchLoop(ctx)
}

// Stop stops the watcher and releases resources.
func (cw *ContentWatcher) Stop() error {
	cw.debouncer.mutex.Lock()
	if cw.debouncer.timer != nil {
		cw.debouncer.timer.Stop()
	}
	cw.debouncer.mutex.Unlock()

	return cw.watcher.Close()
}

func (cw *ContentWatcher) watchLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event := <-cw.watcher.Events:
			cw.handleFsnotifyEvent(event)
		case err := <-cw.watcher.Errors:
			// Keep watching through transient errors.
			log.Printf("content watcher error: %v", err)
		}
	}
}

func (cw *ContentWatcher) handleFsnotifyEvent(event fsnotify.Event) {
	cw.mutex.RLock()
	filters := cw.filters
	cw.mutex.RUnlock()

	for _, filter := range filters {
		if !filter(event.Name) {
			return
		}
	}

	var modTime time.Time
	if info, err := os.Stat(event.Name); err == nil {
		modTime = info.ModTime()
	}

	var eventType EventType
	switch {
	case event.Op&fsnotify.Create == fsnotify.Create:
		eventType = EventTypeCreated
	case event.Op&fsnotify.Write == fsnotify.Write:
		eventType = EventTypeModified
	case event.Op&fsnotify.Remove == fsnotify.Remove:
		eventType = EventTypeDeleted
	case event.Op&fsnotify.Rename == fsnotify.Rename:
		eventType = EventTypeRenamed
	default:
		eventType = EventTypeModified
	}

	select {
	case cw.debouncer.events <- ChangeEvent{Type: eventType, Path: event.Name, ModTime: modTime}:
	default:
		// Channel full, skip this event
	}
}

func (cw *ContentWatcher) processEvents(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case events := <-cw.debouncer.output:
			cw.mutex.RLock()
			handlers := cw.handlers
			cw.mutex.RUnlock()

			for _, handler := range handlers {
				if err := handler(events); err != nil {
					log.Printf("content watcher handler error: %v", err)
				}
			}
		}
	}
}

func (d *debouncer) start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event := <-d.events:
			d.addEvent(event)
		}
	}
}

func (d *debouncer) addEvent(event ChangeEvent) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.pending = append(d.pending, event)

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.flush)
}

func (d *debouncer) flush() {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if len(d.pending) == 0 {
		return
	}

	// Deduplicate by path, keeping the latest event for each
	eventMap := make(map[string]ChangeEvent)
	for _, event := range d.pending {
		eventMap[event.Path] = event
	}

	events := make([]ChangeEvent, 0, len(eventMap))
	for _, event := range eventMap {
		events = append(events, event)
	}

	select {
	case d.output <- events:
	default:
		// Channel full, skip
	}

	d.pending = d.pending[:0]
}

// ContentFilter keeps YAML data files and Markdown product entries.
func ContentFilter(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".md", ".mdx":
		return true
	default:
		return false
	}
}

// NoDotfileFilter drops dotfiles such as .gitkeep and editor swap state.
func NoDotfileFilter(path string) bool {
	return !strings.HasPrefix(filepath.Base(path), ".")
}
