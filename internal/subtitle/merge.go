package subtitle

import (
	"strings"
	"unicode"
)

// MergeRolling collapses rolling/incremental caption blocks into canonical
// ones. Auto-generated streams often emit "Hello" -> "Hello world" ->
// "Hello world!" for a single utterance; containment (after normalization)
// is the trigger, not equality. The heuristic is intentionally lossy: the
// sentence splitter downstream depends on its exact behaviour.
func MergeRolling(blocks []Block) []Block {
	if len(blocks) == 0 {
		return nil
	}

	out := make([]Block, 0, len(blocks))
	current := blocks[0]

	for _, next := range blocks[1:] {
		switch {
		case containsNormalized(next.Text, current.Text):
			// next is the more complete version of the same utterance
			current.End = next.End
			current.Text = next.Text
		case containsNormalized(current.Text, next.Text):
			// truncated repeat: keep the text, extend the time span
			current.End = next.End
		default:
			out = append(out, current)
			current = next
		}
	}

	return append(out, current)
}

// containsNormalized reports whether part occurs inside whole once both are
// stripped down to lower-cased letters and digits.
func containsNormalized(whole, part string) bool {
	p := normalizeForContainment(part)
	if p == "" {
		return false
	}
	return strings.Contains(normalizeForContainment(whole), p)
}

func normalizeForContainment(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
