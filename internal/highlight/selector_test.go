package highlight

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/segment-flow/internal/logger"
	"github.com/nguyentantai21042004/segment-flow/internal/subtitle"
)

type fakeOracle struct {
	windows []Window
	err     error
	calls   int
}

func (f *fakeOracle) Propose(ctx context.Context, cues []subtitle.Cue, target int) ([]Window, error) {
	f.calls++
	return f.windows, f.err
}

// evenCues builds cues of 5s each covering [0, n*5) seconds.
func evenCues(n int) []subtitle.Cue {
	cues := make([]subtitle.Cue, 0, n)
	for i := 0; i < n; i++ {
		cues = append(cues, subtitle.Cue{
			Start: float64(i * 5),
			End:   float64(i*5 + 5),
			Text:  fmt.Sprintf("this is spoken line %d", i),
		})
	}
	return cues
}

func newTestSelector(oracle Oracle) Selector {
	return New(DefaultOptions(), oracle, logger.New("error"))
}

func TestSelectShortClipUsedWhole(t *testing.T) {
	oracle := &fakeOracle{}
	sel := newTestSelector(oracle)
	store := subtitle.NewStore(evenCues(20)) // 100s total, under MaxLen

	windows := sel.Select(context.Background(), store, 2)
	if len(windows) != 1 {
		t.Fatalf("got %d windows, want 1", len(windows))
	}
	if windows[0].Start != 0 || windows[0].End != 100 {
		t.Errorf("window = %v, want full span 0-100", windows[0])
	}
	if oracle.calls != 0 {
		t.Errorf("oracle called %d times for a short clip", oracle.calls)
	}
}

func TestSelectEmptyStore(t *testing.T) {
	sel := newTestSelector(&fakeOracle{})
	if got := sel.Select(context.Background(), subtitle.NewStore(nil), 2); got != nil {
		t.Errorf("Select() = %v, want nil", got)
	}
}

func TestSelectGreedyPackingDropsOverlap(t *testing.T) {
	oracle := &fakeOracle{windows: []Window{
		{Start: 100, End: 220, Reason: "second"},
		{Start: 0, End: 120, Reason: "first"},
	}}
	sel := newTestSelector(oracle)
	store := subtitle.NewStore(evenCues(80)) // 400s

	windows := sel.Select(context.Background(), store, 2)
	if len(windows) != 1 {
		t.Fatalf("got %d windows, want 1: %v", len(windows), windows)
	}
	if windows[0].Start != 0 || windows[0].End != 120 {
		t.Errorf("kept window = %v, want 0-120", windows[0])
	}
}

func TestSelectRejectsOversizedOracleWindow(t *testing.T) {
	// A 200s proposal exceeds MaxLen; with nothing else valid, selection
	// must come from the density fallback.
	oracle := &fakeOracle{windows: []Window{{Start: 0, End: 200, Reason: "too long"}}}
	sel := newTestSelector(oracle)
	store := subtitle.NewStore(evenCues(80))

	windows := sel.Select(context.Background(), store, 2)
	if len(windows) == 0 {
		t.Fatal("expected fallback windows, got none")
	}
	for _, w := range windows {
		if !strings.HasPrefix(w.Reason, "fallback:") {
			t.Errorf("window %v did not come from the fallback", w)
		}
	}
}

func TestSelectOracleErrorFallsBack(t *testing.T) {
	oracle := &fakeOracle{err: errors.New("api down")}
	sel := newTestSelector(oracle)
	store := subtitle.NewStore(evenCues(80))

	windows := sel.Select(context.Background(), store, 2)
	if len(windows) == 0 {
		t.Fatal("expected fallback windows after oracle error")
	}
	if oracle.calls != 1 {
		t.Errorf("oracle calls = %d, want 1", oracle.calls)
	}
}

func TestSelectNilOracleUsesFallback(t *testing.T) {
	sel := newTestSelector(nil)
	store := subtitle.NewStore(evenCues(80))

	windows := sel.Select(context.Background(), store, 2)
	if len(windows) == 0 {
		t.Fatal("expected fallback windows with nil oracle")
	}
}

func TestSelectResultInvariants(t *testing.T) {
	oracle := &fakeOracle{windows: []Window{
		{Start: 10, End: 130, Reason: "a"},
		{Start: 125, End: 245, Reason: "overlaps a"},
		{Start: 250, End: 360, Reason: "b"},
	}}
	sel := newTestSelector(oracle)
	store := subtitle.NewStore(evenCues(100)) // 500s

	opts := DefaultOptions()
	windows := sel.Select(context.Background(), store, 3)
	if len(windows) == 0 {
		t.Fatal("no windows selected")
	}
	for i, w := range windows {
		if length := w.Duration(); length < opts.MinLen || length > opts.MaxLen {
			t.Errorf("window %d length %.1f outside bounds", i, length)
		}
		if i > 0 && windows[i-1].End > w.Start {
			t.Errorf("windows %d and %d overlap: %v %v", i-1, i, windows[i-1], w)
		}
	}
}

func TestValidate(t *testing.T) {
	sel := New(DefaultOptions(), nil, logger.New("error")).(*implSelector)
	ctx := context.Background()

	in := []Window{
		{Start: 0, End: 120},   // ok
		{Start: 50, End: 40},   // inverted
		{Start: 0, End: 0},     // zero
		{Start: 0, End: 60},    // too short
		{Start: 0, End: 200},   // too long
		{Start: 30, End: 150},  // ok
	}
	got := sel.validate(ctx, in)
	if len(got) != 2 {
		t.Fatalf("validate kept %d windows, want 2: %v", len(got), got)
	}
}

func TestPackAscendingStopsAtTarget(t *testing.T) {
	in := []Window{
		{Start: 300, End: 400},
		{Start: 0, End: 100},
		{Start: 150, End: 250},
	}
	got := packAscending(in, 2)
	if len(got) != 2 {
		t.Fatalf("kept %d, want 2", len(got))
	}
	if got[0].Start != 0 || got[1].Start != 150 {
		t.Errorf("kept = %v", got)
	}
}

func TestTargetWindows(t *testing.T) {
	tests := []struct {
		name     string
		duration float64
		want     int
	}{
		{"two minutes", 120, 1},
		{"eight minutes", 480, 2},
		{"twelve minutes", 720, 3},
		{"eighteen minutes", 1080, 4},
		{"twenty-two minutes", 1320, 4},
		{"twenty-five minutes", 1500, 5},
		{"one hour capped", 3600, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TargetWindows(tt.duration); got != tt.want {
				t.Errorf("TargetWindows(%v) = %d, want %d", tt.duration, got, tt.want)
			}
		})
	}
}
