package processor

import (
	"github.com/nguyentantai21042004/segment-flow/internal/highlight"
)

// ClipResult describes one produced highlight clip.
type ClipResult struct {
	ID           string
	Window       highlight.Window
	ClipPath     string
	ManifestPath string
	Cues         int
}

// Report summarizes a single directory run.
type Report struct {
	Dir      string
	Video    string
	Duration float64
	Dropped  int // malformed cues discarded during timeline assembly
	Clips    []ClipResult
}
