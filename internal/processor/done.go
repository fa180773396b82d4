package processor

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const doneMarker = ".segmentflow_done.json"

// doneRecord marks a directory as processed so watch mode and re-runs skip it.
type doneRecord struct {
	ProcessedAt time.Time `json:"processed_at"`
	Video       string    `json:"video"`
	Clips       []string  `json:"clips"`
}

func (p *implProcessor) isDone(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, doneMarker))
	return err == nil
}

func (p *implProcessor) writeDone(dir string, report *Report) error {
	clips := make([]string, 0, len(report.Clips))
	for _, c := range report.Clips {
		clips = append(clips, filepath.Base(c.ClipPath))
	}

	data, err := json.MarshalIndent(doneRecord{
		ProcessedAt: time.Now().UTC(),
		Video:       filepath.Base(report.Video),
		Clips:       clips,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode done marker: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, doneMarker), data, 0644); err != nil {
		return fmt.Errorf("write done marker: %w", err)
	}
	return nil
}
