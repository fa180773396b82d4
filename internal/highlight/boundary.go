package highlight

import (
	"strings"

	"github.com/nguyentantai21042004/segment-flow/internal/subtitle"
)

// Trailing words that signal an unfinished clause; a cue ending on one of
// these is not a safe place to cut even with terminal punctuation around.
var continuationSuffixes = []string{
	" and", " but", " so", " or", " because", " i just", " we just", " you know",
}

// IsSentenceEnd reports whether a cue's text reads as a finished sentence.
func IsSentenceEnd(text string) bool {
	t := strings.TrimSpace(text)
	if t == "" {
		return false
	}
	lower := strings.ToLower(t)
	for _, suffix := range continuationSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return false
		}
	}
	return strings.HasSuffix(t, ".") ||
		strings.HasSuffix(t, "!") ||
		strings.HasSuffix(t, "?") ||
		strings.HasSuffix(t, "…")
}

// SnapToSentenceEnd nudges a window's end onto a sentence-complete cue
// boundary while keeping the span within [minLen, maxLen]. It first scans
// forward from the cue at the window's current end, then backward toward
// the window start. When neither direction yields a boundary the window is
// returned unchanged; downstream consumers re-validate length bounds.
func SnapToSentenceEnd(cues []subtitle.Cue, w Window, minLen, maxLen float64) Window {
	if len(cues) == 0 {
		return w
	}

	startIdx := 0
	for i, c := range cues {
		if c.Start >= w.Start {
			startIdx = i
			break
		}
	}

	endIdx := 0
	for i, c := range cues {
		if c.End <= w.End {
			endIdx = i
		} else {
			break
		}
	}

	for j := endIdx; j < len(cues); j++ {
		jEnd := cues[j].End
		if jEnd-w.Start > maxLen {
			break
		}
		if IsSentenceEnd(cues[j].Text) {
			return Window{Start: w.Start, End: jEnd, Reason: w.Reason}
		}
	}

	for j := endIdx; j >= startIdx; j-- {
		jEnd := cues[j].End
		if jEnd-w.Start < minLen {
			break
		}
		if IsSentenceEnd(cues[j].Text) {
			return Window{Start: w.Start, End: jEnd, Reason: w.Reason}
		}
	}

	return w
}
