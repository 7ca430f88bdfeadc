// Package writer serializes transcription outcomes into text, subtitle, and
// structured JSON files, and decides whether outputs already exist.
package writer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Freedomtukun/whisper-transcriber-app-v2/internal/transcribe"
)

// record is the structured output layout. Field order is part of the format.
type record struct {
	Text     string               `json:"text"`
	Segments []transcribe.Segment `json:"segments"`
	Metadata transcribe.Metadata  `json:"metadata"`
}

// WriteText writes the raw transcript text, creating parent directories and
// overwriting any existing file.
func WriteText(text, path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(text), 0o644)
}

// WriteJSON writes the full structured record: text, ordered segments, and
// the metadata block.
func WriteJSON(text string, segments []transcribe.Segment, meta transcribe.Metadata, path string) error {
	if segments == nil {
		segments = []transcribe.Segment{}
	}
	data, err := json.MarshalIndent(record{Text: text, Segments: segments, Metadata: meta}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal transcript: %w", err)
	}
	if err := ensureDir(path); err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// WriteLanguageInfo writes a small human-readable language detection report.
func WriteLanguageInfo(meta transcribe.Metadata, path string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "detected_language: %s\n", meta.DetectedLanguage)
	fmt.Fprintf(&b, "model: %s\n", meta.ModelName)
	fmt.Fprintf(&b, "file_type: %s\n", meta.FileType)
	fmt.Fprintf(&b, "processing_time_seconds: %.2f\n", meta.ProcessingTimeSeconds)
	if err := ensureDir(path); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}

// OutputsComplete reports whether every requested format already exists as
// outputDir/stem.<format>. A partially present set counts as incomplete and
// the whole job re-runs.
func OutputsComplete(outputDir, stem string, formats []string) bool {
	for _, format := range formats {
		if _, err := os.Stat(filepath.Join(outputDir, stem+"."+format)); err != nil {
			return false
		}
	}
	return true
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir %s: %w", dir, err)
	}
	return nil
}
