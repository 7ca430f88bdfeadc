// Package whisper adapts the Whisper CLI as the recognition engine. The
// engine handle is built once per process and shared across workers; the
// CLI is invoked per file, so concurrent calls are independent processes.
package whisper

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/Freedomtukun/whisper-transcriber-app-v2/internal/transcribe"
)

// DefaultModel is the Whisper model used when none is configured.
const DefaultModel = "base"

// Engine shells out to the whisper binary with JSON output.
type Engine struct {
	binary string
	model  string
}

// New builds an engine handle for the given model name.
func New(model string) *Engine {
	if model == "" {
		model = DefaultModel
	}
	return &Engine{binary: "whisper", model: model}
}

// ModelName returns the configured Whisper model.
func (e *Engine) ModelName() string {
	return e.model
}

// Available returns true if the whisper binary is on the PATH.
func Available() bool {
	_, err := exec.LookPath("whisper")
	return err == nil
}

// resultJSON mirrors the Whisper CLI JSON output.
type resultJSON struct {
	Text     string `json:"text"`
	Language string `json:"language"`
	Segments []struct {
		Start float64 `json:"start"`
		End   float64 `json:"end"`
		Text  string  `json:"text"`
	} `json:"segments"`
}

// Transcribe runs Whisper on an audio file. A non-empty language is forwarded
// verbatim; otherwise Whisper auto-detects and reports the language in its
// output.
func (e *Engine) Transcribe(ctx context.Context, audioPath, language string) (*transcribe.EngineResult, error) {
	outDir, err := os.MkdirTemp("", "whisper-out-")
	if err != nil {
		return nil, fmt.Errorf("create work dir: %w", err)
	}
	defer os.RemoveAll(outDir)

	args := []string{
		audioPath,
		"--model", e.model,
		"--output_format", "json",
		"--output_dir", outDir,
		"--verbose", "False",
	}
	if language != "" {
		args = append(args, "--language", language)
	}

	cmd := exec.CommandContext(ctx, e.binary, args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("whisper failed: %w\n%s", err, string(out))
	}

	stem := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
	data, err := os.ReadFile(filepath.Join(outDir, stem+".json"))
	if err != nil {
		return nil, fmt.Errorf("read whisper output: %w", err)
	}

	return parseResult(data)
}

func parseResult(data []byte) (*transcribe.EngineResult, error) {
	var raw resultJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse whisper output: %w", err)
	}

	result := &transcribe.EngineResult{
		Text:     strings.TrimSpace(raw.Text),
		Language: raw.Language,
	}
	for _, seg := range raw.Segments {
		result.Segments = append(result.Segments, transcribe.Segment{
			Start: seg.Start,
			End:   seg.End,
			Text:  seg.Text,
		})
	}
	return result, nil
}
