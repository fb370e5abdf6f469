// Package ui lets the user pick one stream through fzf. Items are piped to
// fzf via stdin as plain text; no preview commands are built from page data.
package ui

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/geezee/YoutubeJS/internal/media"
)

// ErrCancelled is returned when the user aborts the picker.
var ErrCancelled = errors.New("selection cancelled")

// PickStream shows the streams in fzf and returns the chosen one.
func PickStream(streams []media.Stream) (media.Stream, error) {
	items := lo.Map(streams, func(s media.Stream, _ int) string {
		return fmt.Sprintf("[%d] %s", s.FormatID, s.Label())
	})

	idx, err := Select("Stream", items)
	if err != nil {
		return media.Stream{}, err
	}
	return streams[idx], nil
}

// Select presents items via fzf and returns the selected item's index.
func Select(prompt string, items []string) (int, error) {
	if len(items) == 0 {
		return -1, fmt.Errorf("no items to select from")
	}

	fzfPath, err := exec.LookPath("fzf")
	if err != nil {
		return -1, fmt.Errorf("fzf not found in PATH: %w", err)
	}

	cmd := exec.Command(fzfPath,
		"--prompt", prompt+" > ",
		"--height", "40%",
		"--reverse",
		"--with-nth", "2..", // hide the index column
		"--delimiter", "\t",
		"--no-multi",
		"--cycle",
	)

	cmd.Stdin = strings.NewReader(numbered(items))
	cmd.Stderr = os.Stderr

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 130 {
			return -1, ErrCancelled
		}
		return -1, fmt.Errorf("fzf failed: %w", err)
	}

	return parseSelection(stdout.String(), len(items))
}

// numbered prefixes every item with its index and a tab.
func numbered(items []string) string {
	var b strings.Builder
	for i, item := range items {
		item = strings.NewReplacer("\t", " ", "\n", " ").Replace(item)
		fmt.Fprintf(&b, "%d\t%s\n", i, item)
	}
	return b.String()
}

// parseSelection reads the index back from fzf's output line.
func parseSelection(out string, n int) (int, error) {
	selected := strings.TrimSpace(out)
	if selected == "" {
		return -1, fmt.Errorf("no selection made")
	}

	field, _, _ := strings.Cut(selected, "\t")
	idx, err := strconv.Atoi(field)
	if err != nil {
		return -1, fmt.Errorf("parsing selection index: %w", err)
	}

	if idx < 0 || idx >= n {
		return -1, fmt.Errorf("selection index %d out of range", idx)
	}

	return idx, nil
}
