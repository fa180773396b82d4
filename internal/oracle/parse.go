package oracle

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/segment-flow/internal/highlight"
	"github.com/nguyentantai21042004/segment-flow/internal/subtitle"
)

type proposedSegment struct {
	Start  flexSeconds `json:"start"`
	End    flexSeconds `json:"end"`
	Reason string      `json:"reason"`
}

type proposedPayload struct {
	Segments []proposedSegment `json:"segments"`
}

// flexSeconds accepts either a bare number of seconds or a clock string
// such as "00:01:30,500"; models alternate between the two.
type flexSeconds float64

func (f *flexSeconds) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := subtitle.ParseClock(s)
		if err != nil {
			return err
		}
		*f = flexSeconds(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = flexSeconds(v)
	return nil
}

// parseWindows extracts the first JSON object from a model reply and
// decodes the proposed segments. Replies often wrap the JSON in markdown
// fences or commentary, so everything outside the outermost braces is
// discarded before decoding.
func parseWindows(raw string) ([]highlight.Window, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end < start {
		return nil, fmt.Errorf("no JSON object in reply")
	}

	var payload proposedPayload
	if err := json.Unmarshal([]byte(raw[start:end+1]), &payload); err != nil {
		return nil, fmt.Errorf("decode segments: %w", err)
	}

	windows := make([]highlight.Window, 0, len(payload.Segments))
	for _, seg := range payload.Segments {
		windows = append(windows, highlight.Window{
			Start:  float64(seg.Start),
			End:    float64(seg.End),
			Reason: seg.Reason,
		})
	}
	return windows, nil
}
