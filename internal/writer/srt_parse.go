package writer

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Cue is one parsed subtitle block. Timestamps are kept verbatim so a
// rewritten file stays byte-compatible on the timing line.
type Cue struct {
	Index int
	Start string
	End   string
	Text  string
}

// ParseSRT reads an SRT file back into cues. Blocks are separated by blank
// lines; malformed blocks are rejected rather than skipped.
func ParseSRT(path string) ([]Cue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read subtitle: %w", err)
	}

	content := strings.ReplaceAll(string(data), "\r\n", "\n")
	var cues []Cue

	for _, block := range strings.Split(content, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		lines := strings.Split(block, "\n")
		if len(lines) < 2 {
			return nil, fmt.Errorf("malformed cue block: %q", block)
		}

		index, err := strconv.Atoi(strings.TrimSpace(lines[0]))
		if err != nil {
			return nil, fmt.Errorf("malformed cue index %q: %w", lines[0], err)
		}

		start, end, ok := strings.Cut(lines[1], " --> ")
		if !ok {
			return nil, fmt.Errorf("malformed timestamp line %q", lines[1])
		}

		cues = append(cues, Cue{
			Index: index,
			Start: strings.TrimSpace(start),
			End:   strings.TrimSpace(end),
			Text:  strings.Join(lines[2:], "\n"),
		})
	}
	return cues, nil
}

// WriteCues serializes cues back to SRT, renumbering from 1.
func WriteCues(cues []Cue, path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	var sb strings.Builder
	for i, cue := range cues {
		fmt.Fprintf(&sb, "%d\n%s --> %s\n%s\n\n", i+1, cue.Start, cue.End, cue.Text)
	}
	return os.WriteFile(path, []byte(sb.String()), 0o644)
}
