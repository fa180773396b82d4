package highlight

import (
	"context"

	"github.com/nguyentantai21042004/segment-flow/internal/subtitle"
)

// Oracle proposes candidate highlight windows for a cue list. Responses are
// untrusted; the selector re-validates every window it returns.
type Oracle interface {
	Propose(ctx context.Context, cues []subtitle.Cue, target int) ([]Window, error)
}

// Selector picks up to target non-overlapping, duration-bounded windows
// from a cue store. An empty result means "no usable segment", not an error.
type Selector interface {
	Select(ctx context.Context, store *subtitle.Store, target int) []Window
}
