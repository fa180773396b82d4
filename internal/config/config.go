package config

import "fmt"

type Config struct {
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
	Segment     SegmentConfig     `yaml:"segment"`
	Oracle      OracleConfig      `yaml:"oracle"`
	Whisper     WhisperConfig     `yaml:"whisper"`
}

type PathsConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	Temp   string `yaml:"temp"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// SegmentConfig holds the tunables of segmentation and highlight selection.
// The probe range and the apostrophe bonus are heuristics inherited from the
// SRT cleaning scripts; they are kept configurable on purpose.
type SegmentConfig struct {
	MinLen          float64 `yaml:"min_len"`
	MaxLen          float64 `yaml:"max_len"`
	IdealLen        float64 `yaml:"ideal_len"`
	MinStart        float64 `yaml:"min_start"`
	ApostropheBonus float64 `yaml:"apostrophe_bonus"`
	OverlapProbeMin int     `yaml:"overlap_probe_min"`
	OverlapProbeMax int     `yaml:"overlap_probe_max"`
}

type OracleConfig struct {
	Provider    string   `yaml:"provider"` // deepseek, gemini or none
	Model       string   `yaml:"model"`
	APIBase     string   `yaml:"api_base"`
	APIKey      string   `yaml:"api_key"`
	APIKeys     []string `yaml:"api_keys"` // gemini key rotation pool
	Temperature float64  `yaml:"temperature"`
}

type WhisperConfig struct {
	BinaryPath string `yaml:"binary_path"`
	ModelPath  string `yaml:"model_path"`
	Language   string `yaml:"language"`
	Prompt     string `yaml:"prompt"`
	Threads    int    `yaml:"threads"`
}

func (c *Config) Validate() error {
	if c.Paths.Input == "" {
		return fmt.Errorf("paths.input is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	if c.Segment.MinLen == 0 {
		c.Segment.MinLen = 90
	}
	if c.Segment.MaxLen == 0 {
		c.Segment.MaxLen = 150
	}
	if c.Segment.IdealLen == 0 {
		c.Segment.IdealLen = 120
	}
	if c.Segment.MinStart == 0 {
		c.Segment.MinStart = 10
	}
	if c.Segment.ApostropheBonus == 0 {
		c.Segment.ApostropheBonus = 4
	}
	if c.Segment.OverlapProbeMin == 0 {
		c.Segment.OverlapProbeMin = 10
	}
	if c.Segment.OverlapProbeMax == 0 {
		c.Segment.OverlapProbeMax = 80
	}
	if c.Segment.MinLen > c.Segment.MaxLen {
		return fmt.Errorf("segment.min_len (%v) exceeds segment.max_len (%v)", c.Segment.MinLen, c.Segment.MaxLen)
	}

	switch c.Oracle.Provider {
	case "":
		c.Oracle.Provider = "deepseek"
	case "deepseek", "gemini", "none":
	default:
		return fmt.Errorf("oracle.provider must be deepseek, gemini or none, got %q", c.Oracle.Provider)
	}
	if c.Oracle.Model == "" {
		switch c.Oracle.Provider {
		case "gemini":
			c.Oracle.Model = "gemini-2.5-flash"
		default:
			c.Oracle.Model = "deepseek-chat"
		}
	}
	if c.Oracle.APIBase == "" {
		c.Oracle.APIBase = "https://api.deepseek.com"
	}
	if c.Oracle.Temperature == 0 {
		c.Oracle.Temperature = 0.35
	}

	if c.Whisper.Language == "" {
		c.Whisper.Language = "en"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 8
	}

	return nil
}
