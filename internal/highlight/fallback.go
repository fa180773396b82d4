package highlight

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/nguyentantai21042004/segment-flow/internal/subtitle"
)

type candidate struct {
	score float64
	start float64
	end   float64
}

// fallbackWindows enumerates candidate windows from cue start positions and
// picks the densest non-overlapping ones. Density is cue text length plus a
// flat bonus per contraction mark; windows grow to the last cue boundary
// inside start+IdealLen and are re-grown against MaxLen when too long.
func (s *implSelector) fallbackWindows(ctx context.Context, cues []subtitle.Cue, duration float64, target int) []Window {
	if len(cues) == 0 || duration < s.opts.MinLen {
		return nil
	}

	var candidates []candidate
	for i := range cues {
		start := cues[i].Start
		if start < s.opts.MinStart {
			continue
		}

		targetEnd := start + s.opts.IdealLen
		if duration < targetEnd {
			targetEnd = duration
		}
		end, score := s.growWindow(cues, i, targetEnd)

		length := end - start
		if length < s.opts.MinLen {
			continue
		}
		if length > s.opts.MaxLen {
			end, score = s.growWindow(cues, i, start+s.opts.MaxLen)
			length = end - start
		}
		if length < s.opts.MinLen || length > s.opts.MaxLen {
			continue
		}

		candidates = append(candidates, candidate{score: score, start: start, end: end})
	}

	if len(candidates) == 0 {
		s.logger.Info(ctx, "density scoring produced no candidates in %.0fs of cues", duration)
		return nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	var picked []Window
	for _, c := range candidates {
		if overlapsAny(c, picked) {
			continue
		}
		picked = append(picked, Window{
			Start:  c.start,
			End:    c.end,
			Reason: fmt.Sprintf("fallback: dense subtitles (score=%d)", int(c.score)),
		})
		if target > 0 && len(picked) >= target {
			break
		}
	}

	sort.Slice(picked, func(i, j int) bool {
		return picked[i].Start < picked[j].Start
	})
	return picked
}

// growWindow extends a window from cue i across every cue starting at or
// before targetEnd, returning the furthest cue end seen and the density
// score accumulated along the way.
func (s *implSelector) growWindow(cues []subtitle.Cue, i int, targetEnd float64) (end, score float64) {
	end = cues[i].Start
	for j := i; j < len(cues); j++ {
		if cues[j].Start > targetEnd {
			break
		}
		if cues[j].End > end {
			end = cues[j].End
		}
		text := strings.TrimSpace(cues[j].Text)
		if text == "" {
			continue
		}
		score += float64(utf8.RuneCountInString(text))
		score += s.opts.ApostropheBonus * float64(strings.Count(text, "'"))
	}
	return end, score
}

func overlapsAny(c candidate, picked []Window) bool {
	for _, p := range picked {
		if c.end > p.Start && c.start < p.End {
			return true
		}
	}
	return false
}
