package processor

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/segment-flow/internal/highlight"
)

// cutClip extracts a window from the video without re-encoding. The fast
// variant seeks before the input, which is near-instant but lands on the
// previous keyframe; when it fails the slow variant seeks after the input.
func (p *implProcessor) cutClip(ctx context.Context, videoPath, outPath string, w highlight.Window) error {
	start := fmt.Sprintf("%.3f", w.Start)
	duration := fmt.Sprintf("%.3f", w.Duration())

	// -ss before -i: keyframe-aligned fast seek
	// -c copy: stream copy, no re-encode
	// -movflags +faststart: moov atom up front for streaming playback
	// -avoid_negative_ts make_zero: shift timestamps so the clip starts at 0
	fast := []string{
		"-ss", start,
		"-i", videoPath,
		"-t", duration,
		"-c", "copy",
		"-movflags", "+faststart",
		"-avoid_negative_ts", "make_zero",
		"-y",
		outPath,
	}
	if _, err := p.executor.Execute(ctx, "ffmpeg", fast...); err != nil {
		p.logger.Warn(ctx, "Fast seek failed for %s, retrying with precise seek: %v", outPath, err)
	} else {
		return nil
	}

	precise := []string{
		"-i", videoPath,
		"-ss", start,
		"-t", duration,
		"-c", "copy",
		"-movflags", "+faststart",
		"-avoid_negative_ts", "make_zero",
		"-y",
		outPath,
	}
	if _, err := p.executor.Execute(ctx, "ffmpeg", precise...); err != nil {
		return fmt.Errorf("ffmpeg cut: %w", err)
	}
	return nil
}
