package oracle

import (
	"fmt"

	"github.com/nguyentantai21042004/segment-flow/internal/config"
	"github.com/nguyentantai21042004/segment-flow/internal/highlight"
	"github.com/nguyentantai21042004/segment-flow/internal/logger"
)

// New builds the window oracle for the configured provider. Provider
// "none" returns a nil oracle; the selector treats nil as fallback-only.
func New(cfg config.OracleConfig, opts highlight.Options, log logger.Logger) (highlight.Oracle, error) {
	switch cfg.Provider {
	case "", "none":
		return nil, nil
	case "deepseek":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("deepseek oracle requires oracle.api_key")
		}
		return newDeepSeek(cfg, opts, log), nil
	case "gemini":
		keys := cfg.APIKeys
		if len(keys) == 0 && cfg.APIKey != "" {
			keys = []string{cfg.APIKey}
		}
		if len(keys) == 0 {
			return nil, fmt.Errorf("gemini oracle requires oracle.api_keys")
		}
		return newGemini(cfg.Model, keys, opts, log), nil
	default:
		return nil, fmt.Errorf("unknown oracle provider %q", cfg.Provider)
	}
}
