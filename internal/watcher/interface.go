package watcher

import "context"

// Watcher monitors the input root for clip directories that become ready.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler processes one clip directory.
type EventHandler func(ctx context.Context, dir string) error
