package processor

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// transcribe runs whisper on the extracted audio and returns the path of the
// JSON transcript it produced.
func (p *implProcessor) transcribe(ctx context.Context, audioPath string) (string, error) {
	outputPrefix := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))

	p.logger.Info(ctx, "Starting transcription with %d threads: %s",
		p.cfg.Whisper.Threads, audioPath)

	// -m: Model path
	// -f: Input audio file
	// -oj: JSON output with per-segment timestamps
	// -l: Force language (prevents hallucination)
	// --prompt: Domain keywords to improve accuracy
	// -ml/-mc 0: no segment length / context limits
	// -bo 5: best-of for better accuracy
	args := []string{
		"-m", p.cfg.Whisper.ModelPath,
		"-f", audioPath,
		"-oj",
		"-l", p.cfg.Whisper.Language,
		"-t", strconv.Itoa(p.cfg.Whisper.Threads),
		"-ml", "0",
		"-mc", "0",
		"-bo", "5",
		"--prompt", p.cfg.Whisper.Prompt,
		"--output-file", outputPrefix,
	}

	if _, err := p.executor.Execute(ctx, p.cfg.Whisper.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("whisper transcribe: %w", err)
	}

	transcriptPath := outputPrefix + ".json"
	p.logger.Info(ctx, "Transcription completed: %s", transcriptPath)
	return transcriptPath, nil
}
