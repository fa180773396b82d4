package processor

import "context"

// Processor turns one clip directory into highlight clips plus manifests.
type Processor interface {
	Process(ctx context.Context, dir string) (*Report, error)
}
