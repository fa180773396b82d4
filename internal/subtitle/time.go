package subtitle

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseClock converts a timestamp into float seconds. ASR transcripts carry
// bare numbers ("12.5"), SRT-derived data carries "HH:MM:SS,mmm"; shortened
// forms "MM:SS" and "SS,mmm" are accepted too.
func ParseClock(value string) (float64, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return 0, fmt.Errorf("empty timestamp")
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, nil
	}

	s = strings.ReplaceAll(s, ",", ".")
	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("unrecognized timestamp %q", value)
	}

	var hours, minutes int
	var err error
	switch len(parts) {
	case 3:
		if hours, err = strconv.Atoi(parts[0]); err != nil {
			return 0, fmt.Errorf("unrecognized timestamp %q", value)
		}
		if minutes, err = strconv.Atoi(parts[1]); err != nil {
			return 0, fmt.Errorf("unrecognized timestamp %q", value)
		}
	case 2:
		if minutes, err = strconv.Atoi(parts[0]); err != nil {
			return 0, fmt.Errorf("unrecognized timestamp %q", value)
		}
	}

	seconds, err := strconv.ParseFloat(parts[len(parts)-1], 64)
	if err != nil {
		return 0, fmt.Errorf("unrecognized timestamp %q", value)
	}

	return float64(hours)*3600 + float64(minutes)*60 + seconds, nil
}

// FormatClock renders seconds as "HH:MM:SS,mmm".
func FormatClock(seconds float64) string {
	total := int(math.Round(seconds * 1000))
	if total < 0 {
		total = 0
	}
	h := total / 3600000
	total %= 3600000
	m := total / 60000
	total %= 60000
	s := total / 1000
	ms := total % 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms)
}
