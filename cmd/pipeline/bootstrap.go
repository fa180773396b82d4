package main

import (
	"fmt"

	"github.com/nguyentantai21042004/segment-flow/internal/config"
	"github.com/nguyentantai21042004/segment-flow/internal/highlight"
	"github.com/nguyentantai21042004/segment-flow/internal/logger"
	"github.com/nguyentantai21042004/segment-flow/internal/oracle"
	"github.com/nguyentantai21042004/segment-flow/internal/processor"
	"github.com/nguyentantai21042004/segment-flow/pkg/executor"
)

func bootstrap(configPath string) (*config.Config, logger.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, logger.New(cfg.Logging.Level), nil
}

func segmentOptions(cfg *config.Config) highlight.Options {
	return highlight.Options{
		MinLen:          cfg.Segment.MinLen,
		MaxLen:          cfg.Segment.MaxLen,
		IdealLen:        cfg.Segment.IdealLen,
		MinStart:        cfg.Segment.MinStart,
		ApostropheBonus: cfg.Segment.ApostropheBonus,
	}
}

func buildProcessor(cfg *config.Config, opts processor.Options, log logger.Logger) (processor.Processor, error) {
	orc, err := oracle.New(cfg.Oracle, segmentOptions(cfg), log)
	if err != nil {
		return nil, fmt.Errorf("build oracle: %w", err)
	}
	sel := highlight.New(segmentOptions(cfg), orc, log)
	return processor.New(cfg, opts, executor.New(), sel, log), nil
}
