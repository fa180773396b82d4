package processor

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/nguyentantai21042004/segment-flow/internal/highlight"
	"github.com/nguyentantai21042004/segment-flow/internal/subtitle"
)

// Process orchestrates the full pipeline for one clip directory: load the
// caption timeline, select highlight windows, cut the clips and write the
// manifest skeletons. Directories already carrying a done marker are skipped
// unless Force is set; those runs return a nil Report.
func (p *implProcessor) Process(ctx context.Context, dir string) (*Report, error) {
	startTime := time.Now()

	if !p.opts.Force && p.isDone(dir) {
		p.logger.Info(ctx, "Skipping %s: already processed", dir)
		return nil, nil
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting directory: %s", dir)
	p.logger.Info(ctx, "========================================")

	videoPath, err := p.findVideo(dir)
	if err != nil {
		return nil, fmt.Errorf("find video: %w", err)
	}

	blocks, err := p.loadBlocks(ctx, dir, videoPath)
	if err != nil {
		return nil, fmt.Errorf("load captions: %w", err)
	}

	merged := subtitle.MergeRolling(blocks)
	cues := subtitle.SplitSentences(merged, subtitle.SplitOptions{
		OverlapProbeMin: p.cfg.Segment.OverlapProbeMin,
		OverlapProbeMax: p.cfg.Segment.OverlapProbeMax,
	})
	store := subtitle.NewStore(cues)
	if store.Skipped() > 0 {
		p.logger.Warn(ctx, "Dropped %d malformed cues from %s", store.Skipped(), dir)
	}
	p.logger.Info(ctx, "Timeline: %d blocks -> %d merged -> %d cues, %.1fs",
		len(blocks), len(merged), store.Len(), store.Duration())

	windows := p.selector.Select(ctx, store, 0)
	if len(windows) == 0 {
		p.logger.Warn(ctx, "No highlight windows for %s", dir)
		return &Report{Dir: dir, Video: videoPath, Duration: store.Duration(), Dropped: store.Skipped()}, nil
	}

	report := &Report{
		Dir:      dir,
		Video:    videoPath,
		Duration: store.Duration(),
		Dropped:  store.Skipped(),
	}

	for i, w := range windows {
		snapped := highlight.SnapToSentenceEnd(store.Cues(), w, p.cfg.Segment.MinLen, p.cfg.Segment.MaxLen)
		clipCues := highlight.Slice(store.Cues(), snapped)

		result, err := p.emitClip(ctx, dir, videoPath, i+1, snapped, clipCues)
		if err != nil {
			p.logger.Error(ctx, "Clip %d of %s failed: %v", i+1, dir, err)
			continue
		}
		report.Clips = append(report.Clips, *result)
	}

	if !p.opts.DryRun {
		if err := p.writeDone(dir, report); err != nil {
			p.logger.Warn(ctx, "Failed to write done marker for %s: %v", dir, err)
		}
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Finished %s: %d clips in %s", dir, len(report.Clips), time.Since(startTime))
	p.logger.Info(ctx, "========================================")

	return report, nil
}

// loadBlocks reads the caption timeline from the configured source.
func (p *implProcessor) loadBlocks(ctx context.Context, dir, videoPath string) ([]subtitle.Block, error) {
	switch p.opts.Source {
	case "srt":
		srtPath, err := p.findSRT(dir)
		if err != nil {
			return nil, err
		}
		p.logger.Debug(ctx, "Reading captions from %s", srtPath)
		return subtitle.LoadSRT(srtPath)
	case "asr":
		audioPath, err := p.extractAudio(ctx, videoPath)
		if err != nil {
			return nil, fmt.Errorf("extract audio: %w", err)
		}
		defer p.cleanupTempFile(ctx, audioPath)

		transcriptPath, err := p.transcribe(ctx, audioPath)
		if err != nil {
			return nil, fmt.Errorf("transcribe: %w", err)
		}
		defer p.cleanupTempFile(ctx, transcriptPath)

		return subtitle.LoadTranscript(transcriptPath)
	default:
		return nil, fmt.Errorf("unknown caption source %q", p.opts.Source)
	}
}

// emitClip cuts one window out of the video and writes its manifest. In dry-run
// mode only the bookkeeping happens.
func (p *implProcessor) emitClip(ctx context.Context, dir, videoPath string, index int, w highlight.Window, cues []subtitle.Cue) (*ClipResult, error) {
	m := buildManifest(w, cues)

	result := &ClipResult{
		ID:     m.ID,
		Window: w,
		Cues:   len(cues),
	}
	if p.opts.DryRun {
		p.logger.Info(ctx, "[dry-run] clip %d: %.1fs-%.1fs (%d cues) %s",
			index, w.Start, w.End, len(cues), w.Reason)
		return result, nil
	}

	clipPath := filepath.Join(dir, fmt.Sprintf("highlight_%02d.mp4", index))
	if err := p.cutClip(ctx, videoPath, clipPath, w); err != nil {
		return nil, fmt.Errorf("cut clip: %w", err)
	}
	result.ClipPath = clipPath

	manifestPath := filepath.Join(dir, fmt.Sprintf("highlight_%02d.json", index))
	if err := writeManifest(manifestPath, m); err != nil {
		return nil, fmt.Errorf("write manifest: %w", err)
	}
	result.ManifestPath = manifestPath

	p.logger.Info(ctx, "Clip %d: %s (%.1fs-%.1fs, %d cues)",
		index, clipPath, w.Start, w.End, len(cues))
	return result, nil
}
