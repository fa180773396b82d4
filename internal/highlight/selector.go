package highlight

import (
	"context"
	"math"
	"sort"

	"github.com/nguyentantai21042004/segment-flow/internal/subtitle"
)

// Select picks highlight windows from the cue store. The oracle path is
// tried first; when it errors or yields nothing valid, the deterministic
// density scorer takes over. Every degraded outcome is a smaller (possibly
// empty) result, never a failure.
func (s *implSelector) Select(ctx context.Context, store *subtitle.Store, target int) []Window {
	cues := store.Cues()
	if len(cues) == 0 {
		return nil
	}

	duration := store.Duration()

	// Short clips are used whole rather than rejected for being under the
	// minimum window length.
	if duration > 0 && duration <= s.opts.MaxLen {
		start, end := store.Span()
		if end > start {
			return []Window{{Start: start, End: end, Reason: "short video: use full"}}
		}
		return nil
	}

	if target <= 0 {
		target = TargetWindows(duration)
	}

	if s.oracle != nil {
		proposed, err := s.oracle.Propose(ctx, cues, target)
		if err != nil {
			s.logger.Warn(ctx, "oracle proposal failed, falling back to density scoring: %v", err)
		} else {
			kept := packAscending(s.validate(ctx, proposed), target)
			if len(kept) > 0 {
				return kept
			}
			s.logger.Warn(ctx, "oracle returned no usable windows (%d proposed), falling back to density scoring", len(proposed))
		}
	}

	return s.fallbackWindows(ctx, cues, duration, target)
}

// validate drops windows with inverted bounds or lengths outside
// [MinLen, MaxLen].
func (s *implSelector) validate(ctx context.Context, windows []Window) []Window {
	valid := make([]Window, 0, len(windows))
	for _, w := range windows {
		if w.End <= w.Start {
			s.logger.Debug(ctx, "rejecting window %.1f-%.1f: inverted bounds", w.Start, w.End)
			continue
		}
		if length := w.Duration(); length < s.opts.MinLen || length > s.opts.MaxLen {
			s.logger.Debug(ctx, "rejecting window %.1f-%.1f: length %.1fs outside %.0f-%.0fs",
				w.Start, w.End, length, s.opts.MinLen, s.opts.MaxLen)
			continue
		}
		valid = append(valid, w)
	}
	return valid
}

// packAscending sorts windows by start and keeps each one only if it begins
// at or after the previous kept window's end. First-fit greedy packing:
// deterministic and order-stable, at the cost of global optimality.
func packAscending(windows []Window, target int) []Window {
	sorted := make([]Window, len(windows))
	copy(sorted, windows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	var kept []Window
	for _, w := range sorted {
		if len(kept) > 0 && w.Start < kept[len(kept)-1].End {
			continue
		}
		kept = append(kept, w)
		if target > 0 && len(kept) >= target {
			break
		}
	}
	return kept
}

// TargetWindows derives how many windows to request from the estimated clip
// duration. The ladder bounds downstream transcription and annotation cost.
func TargetWindows(durationSeconds float64) int {
	switch {
	case durationSeconds < 5*60:
		return 1
	case durationSeconds < 10*60:
		return 2
	case durationSeconds < 15*60:
		return 3
	case durationSeconds < 20*60:
		return 4
	default:
		n := 4 + int(math.Ceil((durationSeconds-24*60)/(5*60)))
		if n > 6 {
			n = 6
		}
		if n < 4 {
			n = 4
		}
		return n
	}
}
