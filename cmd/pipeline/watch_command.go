package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/segment-flow/internal/processor"
	"github.com/nguyentantai21042004/segment-flow/internal/watcher"
)

func newWatchCommand(configFlag *string) *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch the input root and process clip directories as they arrive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := bootstrap(*configFlag)
			if err != nil {
				return err
			}

			proc, err := buildProcessor(cfg, processor.Options{Source: source}, log)
			if err != nil {
				return err
			}

			handler := func(ctx context.Context, dir string) error {
				_, err := proc.Process(ctx, dir)
				return err
			}

			w, err := watcher.New(cfg.Paths.Input, handler, log, cfg.Performance.MaxConcurrent)
			if err != nil {
				return err
			}
			defer w.Stop()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			log.Info(ctx, "Press Ctrl+C to stop")
			return w.Start(ctx)
		},
	}

	cmd.Flags().StringVar(&source, "source", "srt", "Caption source: srt or asr")

	return cmd
}
