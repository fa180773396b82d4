package oracle

import (
	"sync"
	"testing"

	"github.com/nguyentantai21042004/segment-flow/internal/highlight"
	"github.com/nguyentantai21042004/segment-flow/internal/logger"
)

func newTestGemini(keys []string) *implGemini {
	return newGemini("gemini-2.5-flash", keys, highlight.DefaultOptions(), logger.New("error"))
}

func TestGeminiRotateKeyWraps(t *testing.T) {
	g := newTestGemini([]string{"a", "b", "c"})

	want := []string{"a", "b", "c", "a"}
	for i, w := range want {
		key, idx := g.snapshotKey()
		if key != w {
			t.Errorf("step %d: key = %q, want %q", i, key, w)
		}
		if idx < 0 || idx >= len(g.apiKeys) {
			t.Errorf("step %d: index %d out of range", i, idx)
		}
		g.rotateKey()
	}
}

// One oracle instance is shared by every watch-mode goroutine, so rotation
// must stay safe under concurrent use. Run with -race.
func TestGeminiRotateKeyConcurrent(t *testing.T) {
	g := newTestGemini([]string{"a", "b", "c"})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				key, idx := g.snapshotKey()
				if key == "" {
					t.Error("empty key")
				}
				if idx < 0 || idx >= 3 {
					t.Errorf("index %d out of range", idx)
				}
				g.rotateKey()
			}
		}()
	}
	wg.Wait()

	if _, idx := g.snapshotKey(); idx < 0 || idx >= 3 {
		t.Errorf("final index %d out of range", idx)
	}
}
