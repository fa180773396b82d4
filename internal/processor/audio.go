package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// extractAudio extracts audio from the video file and converts it to 16kHz
// mono WAV, the format whisper expects.
func (p *implProcessor) extractAudio(ctx context.Context, videoPath string) (string, error) {
	if err := os.MkdirAll(p.cfg.Paths.Temp, 0755); err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(videoPath), filepath.Ext(videoPath))
	audioPath := filepath.Join(p.cfg.Paths.Temp, base+"_temp.wav")

	p.logger.Info(ctx, "Extracting audio: %s", videoPath)

	// -vn: No video
	// -ar 16000: 16kHz sample rate (optimal for Whisper)
	// -ac 1: Mono
	// -c:a pcm_s16le: Uncompressed PCM 16-bit
	args := []string{
		"-i", videoPath,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-threads", "0",
		"-y",
		audioPath,
	}

	if _, err := p.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return "", fmt.Errorf("ffmpeg extract audio: %w", err)
	}

	p.logger.Info(ctx, "Audio extracted: %s", audioPath)
	return audioPath, nil
}

// cleanupTempFile removes a temporary file, logs a warning if that fails.
func (p *implProcessor) cleanupTempFile(ctx context.Context, filePath string) {
	if err := os.Remove(filePath); err != nil {
		p.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", filePath, err)
	} else {
		p.logger.Debug(ctx, "Cleaned up temp file: %s", filePath)
	}
}
