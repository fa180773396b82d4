package highlight

import (
	"github.com/nguyentantai21042004/segment-flow/internal/subtitle"
)

// Slice returns the cues overlapping the window, rebased so the window
// starts at zero. The input cue list is never mutated.
func Slice(cues []subtitle.Cue, w Window) []subtitle.Cue {
	var out []subtitle.Cue
	for _, c := range cues {
		if c.End <= w.Start || c.Start >= w.End {
			continue
		}
		start := c.Start - w.Start
		if start < 0 {
			start = 0
		}
		end := c.End - w.Start
		if end < 0 {
			end = 0
		}
		out = append(out, subtitle.Cue{Start: start, End: end, Text: c.Text})
	}
	return out
}
