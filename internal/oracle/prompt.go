package oracle

import (
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/segment-flow/internal/subtitle"
)

const windowPrompt = `You are selecting highlight segments from a video transcript for English learners.

Pick up to %d segments. Each segment must:
- run between %.0f and %.0f seconds
- start and end on complete sentences
- contain continuous, self-contained dialogue worth studying on its own

Respond with JSON only, no prose, in this exact shape:
{"segments": [{"start": <seconds>, "end": <seconds>, "reason": "<one line>"}]}

Transcript:
---
%s
---`

func buildPrompt(cues []subtitle.Cue, target int, minLen, maxLen float64) string {
	var b strings.Builder
	for _, c := range cues {
		fmt.Fprintf(&b, "[%s - %s] %s\n",
			subtitle.FormatClock(c.Start), subtitle.FormatClock(c.End), c.Text)
	}
	return fmt.Sprintf(windowPrompt, target, minLen, maxLen, strings.TrimSpace(b.String()))
}
