package writer

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/Freedomtukun/whisper-transcriber-app-v2/internal/transcribe"
)

// DefaultMaxLineLength bounds subtitle line width before the midpoint wrap
// kicks in.
const DefaultMaxLineLength = 40

// wrapWindow is how far the wrap scan looks from the midpoint on each side.
const wrapWindow = 10

// Break characters for subtitle wrapping: ASCII space plus full-width CJK
// punctuation.
var breakChars = map[rune]bool{
	' ':  true,
	'，': true,
	'。': true,
	'！': true,
	'？': true,
}

// FormatTimestamp converts seconds to the SRT time format HH:MM:SS,mmm.
// Components are truncated, not rounded; players expect this exact layout.
func FormatTimestamp(seconds float64) string {
	hours := int(seconds / 3600)
	minutes := int(math.Mod(seconds, 3600) / 60)
	secs := int(math.Mod(seconds, 60))
	millis := int(math.Mod(seconds, 1) * 1000)
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, secs, millis)
}

// WrapCueText splits cue text into two lines when it exceeds maxLen runes.
// It scans outward from the midpoint, checking the later side first at each
// offset, and breaks directly after the first break character found within
// the window. Text with no break point nearby stays on one line; there is
// never a forced mid-word break.
func WrapCueText(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}

	mid := len(runes) / 2
	for offset := 0; offset < wrapWindow; offset++ {
		if i := mid + offset; i < len(runes) && breakChars[runes[i]] {
			return string(runes[:i+1]) + "\n" + string(runes[i+1:])
		}
		if i := mid - offset; i >= 0 && breakChars[runes[i]] {
			return string(runes[:i+1]) + "\n" + string(runes[i+1:])
		}
	}
	return text
}

// WriteSRT writes segments as numbered SRT cues: index line, timestamp line,
// wrapped text, blank separator. Creates parent directories and overwrites.
func WriteSRT(segments []transcribe.Segment, path string, maxLineLength int) error {
	if maxLineLength <= 0 {
		maxLineLength = DefaultMaxLineLength
	}
	if err := ensureDir(path); err != nil {
		return err
	}

	var sb strings.Builder
	for i, seg := range segments {
		text := WrapCueText(strings.TrimSpace(seg.Text), maxLineLength)
		fmt.Fprintf(&sb, "%d\n%s --> %s\n%s\n\n",
			i+1, FormatTimestamp(seg.Start), FormatTimestamp(seg.End), text)
	}
	return os.WriteFile(path, []byte(sb.String()), 0o644)
}
