package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/segment-flow/internal/processor"
)

func newRunCommand(configFlag *string) *cobra.Command {
	var force, dryRun bool
	var source string

	cmd := &cobra.Command{
		Use:   "run [dir]",
		Short: "Process one clip directory, or every directory under the input root",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := bootstrap(*configFlag)
			if err != nil {
				return err
			}

			proc, err := buildProcessor(cfg, processor.Options{
				Source: source,
				Force:  force,
				DryRun: dryRun,
			}, log)
			if err != nil {
				return err
			}

			var dirs []string
			explicit := len(args) == 1
			if explicit {
				dirs = []string{args[0]}
			} else {
				dirs, err = clipDirectories(cfg.Paths.Input)
				if err != nil {
					return err
				}
			}
			if len(dirs) == 0 {
				fmt.Println("Nothing to process.")
				return nil
			}

			ctx := cmd.Context()
			failed := 0
			for _, dir := range dirs {
				report, err := proc.Process(ctx, dir)
				if err != nil {
					// Directories without a video or subtitle are expected in
					// a shared inbox; only an explicitly named one is an error.
					if errors.Is(err, processor.ErrNoInput) && !explicit {
						log.Warn(ctx, "Skipping %s: %v", dir, err)
						continue
					}
					log.Error(ctx, "Processing %s failed: %v", dir, err)
					failed++
					continue
				}
				if report == nil {
					continue // already done
				}

				fmt.Printf("\n%s (%.1fs", dir, report.Duration)
				if report.Dropped > 0 {
					fmt.Printf(", %d cues dropped", report.Dropped)
				}
				fmt.Println("):")
				fmt.Println(renderReport(report))
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d directories failed", failed, len(dirs))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Reprocess directories that carry a done marker")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Select windows without cutting clips or writing manifests")
	cmd.Flags().StringVar(&source, "source", "srt", "Caption source: srt or asr")

	return cmd
}

// clipDirectories lists the subdirectories of the input root in name order.
func clipDirectories(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read input root: %w", err)
	}

	var dirs []string
	for _, e := range entries {
		if e.IsDir() && !strings.HasPrefix(e.Name(), ".") {
			dirs = append(dirs, filepath.Join(root, e.Name()))
		}
	}
	sort.Strings(dirs)
	return dirs, nil
}
