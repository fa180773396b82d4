package subtitle

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/asticode/go-astisub"
)

// LoadSRT reads a subtitle file into caption blocks. Multi-line cue text is
// joined with spaces and whitespace-collapsed; empty cues are skipped.
func LoadSRT(path string) ([]Block, error) {
	subs, err := astisub.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open subtitle file: %w", err)
	}

	blocks := make([]Block, 0, len(subs.Items))
	for _, item := range subs.Items {
		text := collapseWhitespace(itemText(item))
		if text == "" {
			continue
		}
		blocks = append(blocks, Block{
			Start: item.StartAt.Seconds(),
			End:   item.EndAt.Seconds(),
			Text:  text,
		})
	}
	return blocks, nil
}

func itemText(item *astisub.Item) string {
	var b strings.Builder
	for i, line := range item.Lines {
		if i > 0 {
			b.WriteRune(' ')
		}
		for j, li := range line.Items {
			if j > 0 {
				b.WriteRune(' ')
			}
			b.WriteString(li.Text)
		}
	}
	return b.String()
}

type transcriptSegment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

type transcriptFile struct {
	Segments []transcriptSegment `json:"segments"`
}

// LoadTranscript reads a whisper-style JSON transcript
// ({"segments":[{"start","end","text"}]}) into caption blocks.
func LoadTranscript(path string) ([]Block, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read transcript: %w", err)
	}

	var tr transcriptFile
	if err := json.Unmarshal(data, &tr); err != nil {
		return nil, fmt.Errorf("parse transcript: %w", err)
	}

	blocks := make([]Block, 0, len(tr.Segments))
	for _, seg := range tr.Segments {
		text := collapseWhitespace(seg.Text)
		if text == "" {
			continue
		}
		blocks = append(blocks, Block{Start: seg.Start, End: seg.End, Text: text})
	}
	return blocks, nil
}
