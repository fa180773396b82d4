package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/nguyentantai21042004/segment-flow/internal/config"
	"github.com/nguyentantai21042004/segment-flow/internal/highlight"
	"github.com/nguyentantai21042004/segment-flow/internal/logger"
	"github.com/nguyentantai21042004/segment-flow/internal/subtitle"
)

type implDeepSeek struct {
	apiBase     string
	apiKey      string
	model       string
	temperature float64
	opts        highlight.Options
	client      *http.Client
	logger      logger.Logger
}

func newDeepSeek(cfg config.OracleConfig, opts highlight.Options, log logger.Logger) *implDeepSeek {
	return &implDeepSeek{
		apiBase:     cfg.APIBase,
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		opts:        opts,
		client:      &http.Client{Timeout: 120 * time.Second},
		logger:      log.WithPrefix("deepseek"),
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Propose asks the chat-completions endpoint for highlight segments and
// decodes the reply into windows.
func (d *implDeepSeek) Propose(ctx context.Context, cues []subtitle.Cue, target int) ([]highlight.Window, error) {
	prompt := buildPrompt(cues, target, d.opts.MinLen, d.opts.MaxLen)

	body, err := json.Marshal(chatRequest{
		Model:       d.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: d.temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		d.apiBase+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+d.apiKey)

	d.logger.Debug(ctx, "Requesting %d segments from %s", target, d.model)

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("chat completion: status %d: %s", resp.StatusCode, string(raw))
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if parsed.Error != nil {
		return nil, fmt.Errorf("chat completion: %s", parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return nil, fmt.Errorf("empty response from %s", d.model)
	}

	return parseWindows(parsed.Choices[0].Message.Content)
}
