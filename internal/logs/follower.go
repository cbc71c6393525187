// Package logs streams build log files to the terminal while the external
// build runs.
package logs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Follower tails every .log file that appears in a directory. It is purely
// informational; the pipeline never fails because following stopped.
type Follower struct {
	dir     string
	out     io.Writer
	watcher *fsnotify.Watcher

	mu      sync.Mutex
	offsets map[string]int64
	done    chan struct{}
}

// NewFollower creates a follower for dir, creating the directory if the
// build has not written anything yet.
func NewFollower(dir string, out io.Writer) (*Follower, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create logs dir: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	return &Follower{
		dir:     dir,
		out:     out,
		watcher: watcher,
		offsets: make(map[string]int64),
		done:    make(chan struct{}),
	}, nil
}

// Start begins streaming in the background. Call Stop to finish.
func (f *Follower) Start() {
	go f.loop()
}

// Stop drains any unread log content and shuts the watcher down.
func (f *Follower) Stop() {
	f.watcher.Close()
	<-f.done

	// Final sweep picks up writes that raced the shutdown.
	entries, err := os.ReadDir(f.dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".log") {
			f.drain(filepath.Join(f.dir, entry.Name()))
		}
	}
}

func (f *Follower) loop() {
	defer close(f.done)
	for {
		select {
		case event, ok := <-f.watcher.Events:
			if !ok {
				return
			}
			if !strings.HasSuffix(event.Name, ".log") {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				f.drain(event.Name)
			}
		case _, ok := <-f.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

// drain copies everything past the recorded offset of path to the output.
func (f *Follower) drain(path string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	file, err := os.Open(path)
	if err != nil {
		return
	}
	defer file.Close()

	offset := f.offsets[path]
	if _, err := file.Seek(offset, io.SeekStart); err != nil {
		return
	}
	n, err := io.Copy(f.out, file)
	if err != nil && n == 0 {
		return
	}
	f.offsets[path] = offset + n
}
