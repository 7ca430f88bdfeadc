package translate

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Freedomtukun/whisper-transcriber-app-v2/internal/writer"
)

// Translator maps a piece of text into the target language.
type Translator interface {
	Translate(ctx context.Context, text, source, target string) (string, error)
}

// TranslateCues returns a copy of cues with text translated, preserving
// index and timing. The first failing cue aborts the whole translation.
func TranslateCues(ctx context.Context, tr Translator, cues []writer.Cue, source, target string) ([]writer.Cue, error) {
	out := make([]writer.Cue, len(cues))
	for i, cue := range cues {
		translated, err := tr.Translate(ctx, cue.Text, source, target)
		if err != nil {
			return nil, fmt.Errorf("cue %d: %w", cue.Index, err)
		}
		out[i] = cue
		out[i].Text = translated
		slog.Debug("translated cue", "n", i+1, "total", len(cues))
	}
	return out, nil
}

// MergeBilingual pairs original and translated text line by line in the
// form "original || translated". Extra lines on either side are dropped.
func MergeBilingual(original, translated string) string {
	a := strings.Split(strings.TrimRight(original, "\n"), "\n")
	b := strings.Split(strings.TrimRight(translated, "\n"), "\n")

	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	lines := make([]string, 0, n)
	for i := 0; i < n; i++ {
		lines = append(lines, strings.TrimSpace(a[i])+" || "+strings.TrimSpace(b[i]))
	}
	return strings.Join(lines, "\n")
}
