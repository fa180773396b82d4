package highlight

// Window is a candidate highlight interval with bounded duration, selected
// for cutting and downstream annotation.
type Window struct {
	Start  float64 `json:"start"`
	End    float64 `json:"end"`
	Reason string  `json:"reason"`
}

// Duration returns the window length in seconds.
func (w Window) Duration() float64 {
	return w.End - w.Start
}

// Options are the selection tunables. ApostropheBonus is the flat score
// bonus the local scorer grants per contraction mark, a rough proxy for
// conversational speech.
type Options struct {
	MinLen          float64
	MaxLen          float64
	IdealLen        float64
	MinStart        float64
	ApostropheBonus float64
}

// DefaultOptions returns the selection defaults (90-150s windows, 120s
// ideal, first 10s skipped).
func DefaultOptions() Options {
	return Options{
		MinLen:          90,
		MaxLen:          150,
		IdealLen:        120,
		MinStart:        10,
		ApostropheBonus: 4,
	}
}
