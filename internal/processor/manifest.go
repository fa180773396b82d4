package processor

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/segment-flow/internal/highlight"
	"github.com/nguyentantai21042004/segment-flow/internal/subtitle"
)

// manifestCue is one subtitle line of a clip, rebased to the clip's own
// timeline. text_cn is left blank for the downstream translation step.
type manifestCue struct {
	Start  float64 `json:"start"`
	End    float64 `json:"end"`
	TextEN string  `json:"text_en"`
	TextCN string  `json:"text_cn"`
}

// manifest is the skeleton metadata written next to each clip. Title, tags
// and knowledge points are filled in by later pipeline stages; only the
// timing data and the selection reason are known here.
type manifest struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Author      string        `json:"author"`
	Difficulty  int           `json:"difficulty"`
	Tags        []string      `json:"tags"`
	Description string        `json:"description"`
	Reason      string        `json:"reason"`
	Duration    float64       `json:"duration"`
	Cues        []manifestCue `json:"cues"`
	Knowledge   []string      `json:"knowledge"`
}

func buildManifest(w highlight.Window, cues []subtitle.Cue) manifest {
	mc := make([]manifestCue, 0, len(cues))
	for _, c := range cues {
		mc = append(mc, manifestCue{
			Start:  c.Start,
			End:    c.End,
			TextEN: c.Text,
			TextCN: "",
		})
	}
	return manifest{
		ID:        uuid.NewString(),
		Tags:      []string{},
		Reason:    w.Reason,
		Duration:  w.Duration(),
		Cues:      mc,
		Knowledge: []string{},
	}
}

func writeManifest(path string, m manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}
