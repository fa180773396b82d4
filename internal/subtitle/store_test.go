package subtitle

import "testing"

func TestNewStoreSortsAndValidates(t *testing.T) {
	cues := []Cue{
		{Start: 5, End: 7, Text: "second"},
		{Start: 0, End: 2, Text: "first"},
		{Start: 9, End: 9, Text: "zero length"},
		{Start: 12, End: 11, Text: "inverted"},
		{Start: 7, End: 9, Text: "third"},
	}

	store := NewStore(cues)
	if store.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", store.Len())
	}
	if store.Skipped() != 2 {
		t.Errorf("Skipped() = %d, want 2", store.Skipped())
	}

	got := store.Cues()
	for i := 1; i < len(got); i++ {
		if got[i].Start < got[i-1].Start {
			t.Errorf("cues not sorted at %d: %v before %v", i, got[i-1], got[i])
		}
	}
	if got[0].Text != "first" || got[2].Text != "third" {
		t.Errorf("unexpected order: %v", got)
	}
}

func TestStoreDurationAndSpan(t *testing.T) {
	store := NewStore([]Cue{
		{Start: 1, End: 4, Text: "a"},
		{Start: 4, End: 20, Text: "b"},
		{Start: 6, End: 8, Text: "c"},
	})

	if d := store.Duration(); d != 20 {
		t.Errorf("Duration() = %v, want 20", d)
	}

	start, end := store.Span()
	if start != 1 || end != 8 {
		t.Errorf("Span() = %v, %v", start, end)
	}
}

func TestEmptyStore(t *testing.T) {
	store := NewStore(nil)
	if store.Len() != 0 || store.Duration() != 0 {
		t.Errorf("empty store: Len=%d Duration=%v", store.Len(), store.Duration())
	}
	start, end := store.Span()
	if start != 0 || end != 0 {
		t.Errorf("Span() = %v, %v, want zeros", start, end)
	}
}
