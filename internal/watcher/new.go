package watcher

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/nguyentantai21042004/segment-flow/internal/logger"
)

// New creates a Watcher over the input root. Existing clip subdirectories
// are watched immediately; new ones are picked up as they appear.
func New(inputRoot string, handler EventHandler, log logger.Logger, maxConcurrent int) (Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fsw.Add(inputRoot); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	entries, err := os.ReadDir(inputRoot)
	if err != nil {
		fsw.Close()
		return nil, fmt.Errorf("read input root: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() {
			if err := fsw.Add(filepath.Join(inputRoot, e.Name())); err != nil {
				fsw.Close()
				return nil, fmt.Errorf("watch %s: %w", e.Name(), err)
			}
		}
	}

	if maxConcurrent <= 0 {
		maxConcurrent = 2
	}

	return &implWatcher{
		inputRoot:     inputRoot,
		handler:       handler,
		logger:        log.WithPrefix("watcher"),
		watcher:       fsw,
		maxConcurrent: maxConcurrent,
		semaphore:     make(chan struct{}, maxConcurrent),
	}, nil
}
