package processor

import (
	"github.com/nguyentantai21042004/segment-flow/internal/config"
	"github.com/nguyentantai21042004/segment-flow/internal/highlight"
	"github.com/nguyentantai21042004/segment-flow/internal/logger"
	"github.com/nguyentantai21042004/segment-flow/pkg/executor"
)

// Options controls a processing run.
type Options struct {
	Source string // "srt" reads an existing subtitle file, "asr" transcribes the video
	Force  bool   // reprocess directories that carry a done marker
	DryRun bool   // select windows but write no clips or manifests
}

type implProcessor struct {
	cfg      *config.Config
	opts     Options
	executor executor.Executor
	selector highlight.Selector
	logger   logger.Logger
}

// New creates a new Processor instance.
func New(cfg *config.Config, opts Options, exec executor.Executor, sel highlight.Selector, log logger.Logger) Processor {
	if opts.Source == "" {
		opts.Source = "srt"
	}
	return &implProcessor{
		cfg:      cfg,
		opts:     opts,
		executor: exec,
		selector: sel,
		logger:   log.WithPrefix("processor"),
	}
}
