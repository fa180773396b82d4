package processor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/nguyentantai21042004/segment-flow/internal/config"
	"github.com/nguyentantai21042004/segment-flow/internal/highlight"
	"github.com/nguyentantai21042004/segment-flow/internal/logger"
	"github.com/nguyentantai21042004/segment-flow/internal/subtitle"
)

type fakeExecutor struct {
	calls [][]string
	err   error
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	return "", f.err
}

func (f *fakeExecutor) ExecuteInDir(ctx context.Context, dir, name string, args ...string) (string, error) {
	return f.Execute(ctx, name, args...)
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.Paths.Input = t.TempDir()
	cfg.Paths.Output = t.TempDir()
	cfg.Oracle.Provider = "none"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	return cfg
}

func testProcessor(t *testing.T, cfg *config.Config, opts Options, exec *fakeExecutor) *implProcessor {
	t.Helper()
	log := logger.New("error")
	sel := highlight.New(highlight.Options{
		MinLen:          cfg.Segment.MinLen,
		MaxLen:          cfg.Segment.MaxLen,
		IdealLen:        cfg.Segment.IdealLen,
		MinStart:        cfg.Segment.MinStart,
		ApostropheBonus: cfg.Segment.ApostropheBonus,
	}, nil, log)
	return New(cfg, opts, exec, sel, log).(*implProcessor)
}

const shortSRT = `1
00:00:00,000 --> 00:00:40,000
This is the opening scene. It sets everything up.

2
00:00:40,000 --> 00:01:20,000
Now the characters are talking. They have a lot to say.

3
00:01:20,000 --> 00:01:40,000
And this is how it ends.
`

func writeClipDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "output.mp4"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "clip.srt"), []byte(shortSRT), 0644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestProcessDryRun(t *testing.T) {
	dir := writeClipDir(t)
	exec := &fakeExecutor{}
	p := testProcessor(t, testConfig(t), Options{Source: "srt", DryRun: true}, exec)

	report, err := p.Process(context.Background(), dir)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if report == nil || len(report.Clips) != 1 {
		t.Fatalf("report = %+v, want one clip", report)
	}
	if len(exec.calls) != 0 {
		t.Errorf("dry run invoked ffmpeg: %v", exec.calls)
	}
	// A 100s video fits a single window whole.
	if w := report.Clips[0].Window; w.Start != 0 || w.End != 100 {
		t.Errorf("window = %v, want full span", w)
	}
	if p.isDone(dir) {
		t.Error("dry run wrote a done marker")
	}
}

func TestProcessWritesClipAndManifest(t *testing.T) {
	dir := writeClipDir(t)
	exec := &fakeExecutor{}
	p := testProcessor(t, testConfig(t), Options{Source: "srt"}, exec)

	report, err := p.Process(context.Background(), dir)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if len(report.Clips) != 1 {
		t.Fatalf("clips = %v", report.Clips)
	}

	clip := report.Clips[0]
	if clip.ClipPath != filepath.Join(dir, "highlight_01.mp4") {
		t.Errorf("clip path = %s", clip.ClipPath)
	}
	if _, err := os.Stat(clip.ManifestPath); err != nil {
		t.Errorf("manifest not written: %v", err)
	}
	if len(exec.calls) != 1 || exec.calls[0][0] != "ffmpeg" {
		t.Errorf("ffmpeg calls = %v", exec.calls)
	}
	if !p.isDone(dir) {
		t.Error("done marker missing after successful run")
	}
}

func TestProcessSkipsDoneDirectory(t *testing.T) {
	dir := writeClipDir(t)
	exec := &fakeExecutor{}
	p := testProcessor(t, testConfig(t), Options{Source: "srt"}, exec)

	if _, err := p.Process(context.Background(), dir); err != nil {
		t.Fatal(err)
	}
	report, err := p.Process(context.Background(), dir)
	if err != nil {
		t.Fatalf("second Process() error = %v", err)
	}
	if report != nil {
		t.Errorf("report = %+v, want nil for an already-done directory", report)
	}
}

func TestProcessForceReprocesses(t *testing.T) {
	dir := writeClipDir(t)
	p := testProcessor(t, testConfig(t), Options{Source: "srt", Force: true}, &fakeExecutor{})

	if _, err := p.Process(context.Background(), dir); err != nil {
		t.Fatal(err)
	}
	report, err := p.Process(context.Background(), dir)
	if err != nil {
		t.Fatalf("forced Process() error = %v", err)
	}
	if report == nil || len(report.Clips) != 1 {
		t.Errorf("forced rerun report = %+v", report)
	}
}

func TestProcessMissingVideo(t *testing.T) {
	dir := t.TempDir()
	p := testProcessor(t, testConfig(t), Options{Source: "srt"}, &fakeExecutor{})

	_, err := p.Process(context.Background(), dir)
	if err == nil {
		t.Fatal("expected error for directory without a video")
	}
	if !errors.Is(err, ErrNoInput) {
		t.Errorf("error = %v, want ErrNoInput so batch runs can skip", err)
	}
}

func TestProcessMissingSubtitle(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "output.mp4"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	p := testProcessor(t, testConfig(t), Options{Source: "srt"}, &fakeExecutor{})

	_, err := p.Process(context.Background(), dir)
	if !errors.Is(err, ErrNoInput) {
		t.Errorf("error = %v, want ErrNoInput", err)
	}
}

func TestFindVideoPrefersOutput(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"aaa.mp4", "output.mp4", "highlight_01.mp4"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	p := testProcessor(t, testConfig(t), Options{}, &fakeExecutor{})
	got, err := p.findVideo(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join(dir, "output.mp4") {
		t.Errorf("findVideo() = %s", got)
	}
}

func TestFindVideoSkipsOwnClips(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"highlight_01.mp4", "movie.mp4"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	p := testProcessor(t, testConfig(t), Options{}, &fakeExecutor{})
	got, err := p.findVideo(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join(dir, "movie.mp4") {
		t.Errorf("findVideo() = %s", got)
	}
}

func TestCutClipFallsBackToPreciseSeek(t *testing.T) {
	exec := &fakeExecutor{err: os.ErrInvalid}
	p := testProcessor(t, testConfig(t), Options{}, exec)

	w := highlight.Window{Start: 10, End: 130}
	if err := p.cutClip(context.Background(), "in.mp4", "out.mp4", w); err == nil {
		t.Fatal("expected error when both seek modes fail")
	}
	if len(exec.calls) != 2 {
		t.Fatalf("ffmpeg invoked %d times, want 2", len(exec.calls))
	}
	// Fast variant seeks before the input, precise variant after.
	if exec.calls[0][1] != "-ss" || exec.calls[1][1] != "-i" {
		t.Errorf("seek order wrong: %v", exec.calls)
	}
}

func TestBuildManifest(t *testing.T) {
	w := highlight.Window{Start: 10, End: 130, Reason: "dense dialogue"}
	cues := []subtitle.Cue{
		{Start: 0, End: 4, Text: "First line."},
		{Start: 4, End: 9, Text: "Second line."},
	}

	m := buildManifest(w, cues)
	if m.ID == "" {
		t.Error("manifest has no id")
	}
	if m.Reason != "dense dialogue" || m.Duration != 120 {
		t.Errorf("manifest = %+v", m)
	}
	if len(m.Cues) != 2 || m.Cues[0].TextEN != "First line." || m.Cues[0].TextCN != "" {
		t.Errorf("cues = %+v", m.Cues)
	}
	if m.Tags == nil || m.Knowledge == nil {
		t.Error("tags and knowledge must encode as empty arrays, not null")
	}
}
