package subtitle

import (
	"strings"
	"unicode/utf8"
)

// SplitOptions tunes the cross-cue overlap trim. The probe walks from
// OverlapProbeMax down to OverlapProbeMin characters; the lower bound keeps
// short common words from triggering false trims.
type SplitOptions struct {
	OverlapProbeMin int
	OverlapProbeMax int
}

// DefaultSplitOptions returns the probe range used by the original captions.
func DefaultSplitOptions() SplitOptions {
	return SplitOptions{OverlapProbeMin: 10, OverlapProbeMax: 80}
}

// SplitSentences turns merged caption blocks into sentence-level cues. Each
// block's time span is redistributed across its sentences proportionally to
// sentence length; the last sentence is pinned to the block end so rounding
// never drifts the timeline. Afterwards each cue's text is whitespace
// normalized and trimmed of any tail phrase repeated from the previous cue.
func SplitSentences(blocks []Block, opts SplitOptions) []Cue {
	var cues []Cue

	for _, block := range blocks {
		if strings.TrimSpace(block.Text) == "" {
			continue
		}

		sentences := splitIntoSentences(block.Text)
		totalLen := utf8.RuneCountInString(block.Text)
		if totalLen <= 0 {
			continue
		}

		// Millisecond math keeps the proportional shares away from
		// second-scale float noise.
		curMs := block.Start * 1000
		endMs := block.End * 1000
		durationMs := endMs - curMs
		if durationMs < 1 {
			durationMs = 1
		}

		curStart := block.Start
		for i, sent := range sentences {
			if i == len(sentences)-1 {
				cues = append(cues, Cue{Start: curStart, End: block.End, Text: sent})
				break
			}
			sentLen := utf8.RuneCountInString(sent)
			if sentLen < 1 {
				sentLen = 1
			}
			sentEndMs := curMs + durationMs*(float64(sentLen)/float64(totalLen))
			cues = append(cues, Cue{Start: curStart, End: sentEndMs / 1000, Text: sent})
			curMs = sentEndMs
			curStart = sentEndMs / 1000
		}
	}

	prev := ""
	for i := range cues {
		text := collapseWhitespace(cues[i].Text)
		text = trimOverlap(prev, text, opts.OverlapProbeMin, opts.OverlapProbeMax)
		cues[i].Text = text
		prev = text
	}

	return cues
}

// splitIntoSentences cuts text after every '.', '?' or '!', keeping the
// terminator attached. Text without terminal punctuation is one sentence.
func splitIntoSentences(text string) []string {
	var sentences []string
	var cur strings.Builder

	for _, r := range text {
		cur.WriteRune(r)
		if r == '.' || r == '?' || r == '!' {
			if s := strings.TrimSpace(cur.String()); s != "" {
				sentences = append(sentences, s)
			}
			cur.Reset()
		}
	}
	if s := strings.TrimSpace(cur.String()); s != "" {
		sentences = append(sentences, s)
	}

	if len(sentences) == 0 {
		sentences = []string{strings.TrimSpace(text)}
	}
	return sentences
}

// trimOverlap strips curr's leading text when it repeats prev's tail, which
// is how scrolling captions carry a phrase across block boundaries.
func trimOverlap(prev, curr string, minOverlap, maxOverlap int) string {
	if prev == "" || curr == "" {
		return curr
	}

	p := []rune(prev)
	c := []rune(curr)
	maxLen := len(p)
	if len(c) < maxLen {
		maxLen = len(c)
	}
	if maxOverlap < maxLen {
		maxLen = maxOverlap
	}

	for length := maxLen; length >= minOverlap; length-- {
		if string(p[len(p)-length:]) == string(c[:length]) {
			return strings.TrimLeft(string(c[length:]), " \t")
		}
	}
	return curr
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
