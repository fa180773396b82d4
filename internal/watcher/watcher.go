package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nguyentantai21042004/segment-flow/internal/logger"
)

type implWatcher struct {
	inputRoot     string
	handler       EventHandler
	logger        logger.Logger
	watcher       *fsnotify.Watcher
	maxConcurrent int
	semaphore     chan struct{}
	wg            sync.WaitGroup
}

// Start monitors the input root. A new subdirectory is added to the watch
// set; a subtitle or video file landing inside one marks that directory as
// ready and dispatches it to the handler.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Watching %s (max concurrent: %d)", w.inputRoot, w.maxConcurrent)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Waiting for ongoing processing to complete...")
			w.wg.Wait()
			w.logger.Info(ctx, "Watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}

			if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
				if err := w.watcher.Add(event.Name); err != nil {
					w.logger.Error(ctx, "Failed to watch new directory %s: %v", event.Name, err)
				} else {
					w.logger.Info(ctx, "New clip directory: %s", event.Name)
				}
				continue
			}

			if !w.isTriggerFile(event.Name) {
				w.logger.Debug(ctx, "Ignoring: %s", event.Name)
				continue
			}

			dir := filepath.Dir(event.Name)
			if dir == w.inputRoot {
				w.logger.Debug(ctx, "Ignoring file outside a clip directory: %s", event.Name)
				continue
			}
			w.logger.Info(ctx, "Clip directory ready: %s (%s)", dir, filepath.Base(event.Name))

			// Small delay to ensure the file is fully written
			time.Sleep(500 * time.Millisecond)

			select {
			case w.semaphore <- struct{}{}:
				w.wg.Add(1)
				go func(dir string) {
					defer w.wg.Done()
					defer func() { <-w.semaphore }()

					if err := w.handler(ctx, dir); err != nil {
						w.logger.Error(ctx, "Failed to process %s: %v", dir, err)
					}
				}(dir)
			case <-ctx.Done():
				return ctx.Err()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher.
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

// isTriggerFile reports whether a file's arrival means its directory can be
// processed. Subtitles trigger srt-source runs, videos trigger asr runs.
func (w *implWatcher) isTriggerFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".srt", ".mp4":
		return true
	}
	return false
}
