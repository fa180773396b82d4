package processor

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNoInput marks a directory that has no video or subtitle file to work
// on. Batch runs skip such directories instead of failing.
var ErrNoInput = errors.New("no usable input")

// findVideo locates the source video inside a clip directory. A file named
// output.mp4 wins; otherwise the first mp4 in name order that is not one of
// our own highlight clips.
func (p *implProcessor) findVideo(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	var candidates []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if strings.ToLower(filepath.Ext(e.Name())) != ".mp4" {
			continue
		}
		if e.Name() == "output.mp4" {
			return filepath.Join(dir, e.Name()), nil
		}
		if strings.HasPrefix(e.Name(), "highlight_") {
			continue
		}
		candidates = append(candidates, e.Name())
	}

	if len(candidates) == 0 {
		return "", fmt.Errorf("%w: no video file in %s", ErrNoInput, dir)
	}
	sort.Strings(candidates)
	return filepath.Join(dir, candidates[0]), nil
}

// findSRT locates the subtitle file inside a clip directory, first in name
// order when several exist.
func (p *implProcessor) findSRT(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	var candidates []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if strings.ToLower(filepath.Ext(e.Name())) == ".srt" {
			candidates = append(candidates, e.Name())
		}
	}

	if len(candidates) == 0 {
		return "", fmt.Errorf("%w: no subtitle file in %s", ErrNoInput, dir)
	}
	sort.Strings(candidates)
	return filepath.Join(dir, candidates[0]), nil
}
