package subtitle

import "sort"

// Store is the canonical ordered cue list for one clip. Cues are sorted
// ascending by start; malformed cues (end <= start) are dropped at
// construction and only counted, never fatal.
type Store struct {
	cues    []Cue
	skipped int
}

// NewStore validates, sorts and wraps a cue list.
func NewStore(cues []Cue) *Store {
	kept := make([]Cue, 0, len(cues))
	skipped := 0
	for _, c := range cues {
		if c.End <= c.Start {
			skipped++
			continue
		}
		kept = append(kept, c)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Start < kept[j].Start
	})

	return &Store{cues: kept, skipped: skipped}
}

// Cues returns the ordered cue list. Callers must treat it as read-only.
func (s *Store) Cues() []Cue {
	return s.cues
}

func (s *Store) Len() int {
	return len(s.cues)
}

// Skipped reports how many malformed cues were dropped at construction.
func (s *Store) Skipped() int {
	return s.skipped
}

// Duration estimates the covered timeline as the latest cue end.
func (s *Store) Duration() float64 {
	var max float64
	for _, c := range s.cues {
		if c.End > max {
			max = c.End
		}
	}
	return max
}

// Span returns the first cue's start and the last cue's end.
func (s *Store) Span() (start, end float64) {
	if len(s.cues) == 0 {
		return 0, 0
	}
	return s.cues[0].Start, s.cues[len(s.cues)-1].End
}
