package subtitle

// Block is a timed span of caption text as read from a caption source.
// It may contain several sentences and, for auto-generated streams, may
// repeat text from neighbouring blocks.
type Block struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Cue is one sentence-level timed line. Start and End are seconds from the
// beginning of the clip.
type Cue struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Duration returns the cue length in seconds.
func (c Cue) Duration() float64 {
	return c.End - c.Start
}
