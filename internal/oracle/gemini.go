package oracle

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/segment-flow/internal/highlight"
	"github.com/nguyentantai21042004/segment-flow/internal/logger"
	"github.com/nguyentantai21042004/segment-flow/internal/subtitle"
)

type implGemini struct {
	apiKeys []string
	model   string
	opts    highlight.Options
	logger  logger.Logger

	// currentKey is shared by concurrent Propose calls in watch mode.
	mu         sync.Mutex
	currentKey int
}

func newGemini(model string, apiKeys []string, opts highlight.Options, log logger.Logger) *implGemini {
	return &implGemini{
		apiKeys: apiKeys,
		model:   model,
		opts:    opts,
		logger:  log.WithPrefix("gemini"),
	}
}

// Propose sends the transcript to Gemini and decodes the proposed
// segments. Rotates API keys on 429 / quota errors.
func (g *implGemini) Propose(ctx context.Context, cues []subtitle.Cue, target int) ([]highlight.Window, error) {
	prompt := buildPrompt(cues, target, g.opts.MinLen, g.opts.MaxLen)

	attempts := len(g.apiKeys)
	var lastErr error

	for range attempts {
		key, keyIdx := g.snapshotKey()

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			g.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				g.logger.Warn(ctx, "Key %d rate limited, rotating...", keyIdx+1)
				g.rotateKey()
				lastErr = err
				continue
			}
			return nil, fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			return parseWindows(text)
		}

		return nil, fmt.Errorf("empty response from Gemini")
	}

	return nil, fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (g *implGemini) snapshotKey() (string, int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.apiKeys[g.currentKey], g.currentKey
}

func (g *implGemini) rotateKey() {
	g.mu.Lock()
	g.currentKey = (g.currentKey + 1) % len(g.apiKeys)
	g.mu.Unlock()
}

