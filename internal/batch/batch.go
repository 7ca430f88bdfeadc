// Package batch coordinates discovery, skip checks, transcription, and
// output writing across many media files with a bounded worker pool.
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/Freedomtukun/whisper-transcriber-app-v2/internal/media"
	"github.com/Freedomtukun/whisper-transcriber-app-v2/internal/transcribe"
	"github.com/Freedomtukun/whisper-transcriber-app-v2/internal/writer"
)

// Status classifies the outcome of one per-file job.
type Status string

const (
	StatusSuccess Status = "success"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// Result is the outcome of one dispatched file. Exactly one Result exists
// per discovered file per run.
type Result struct {
	File    media.File
	Status  Status
	Message string
	Elapsed time.Duration
}

// Summary aggregates per-file results for a whole run. Counts depend only on
// the result set, never on completion order or worker count.
type Summary struct {
	Success int
	Skipped int
	Failed  int
	Total   int
}

func (s *Summary) add(r Result) {
	switch r.Status {
	case StatusSuccess:
		s.Success++
	case StatusSkipped:
		s.Skipped++
	case StatusFailed:
		s.Failed++
	}
}

// Options configures a batch run.
type Options struct {
	InputDir        string
	OutputDir       string
	Formats         []string
	Recursive       bool
	Language        string
	Force           bool
	Workers         int
	Extensions      []string
	MaxLineLength   int
	ModelName       string
	KeepTraditional bool
}

// Gateway is the per-file transcription entry point the orchestrator drives.
type Gateway interface {
	Transcribe(ctx context.Context, file media.File, language string) (*transcribe.Outcome, error)
}

// Run transcribes every qualifying file under InputDir, mirroring the input
// directory layout under OutputDir. A bad input directory is the only fatal
// error; per-file failures are folded into the summary and the batch keeps
// going. An empty directory returns a zeroed summary and no error.
func Run(ctx context.Context, gw Gateway, opts Options) (Summary, error) {
	files, err := media.Discover(opts.InputDir, opts.Recursive, opts.Extensions)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{Total: len(files)}
	if len(files) == 0 {
		slog.Warn("no audio or video files found", "dir", opts.InputDir)
		return summary, nil
	}

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	slog.Info("starting batch",
		"files", len(files),
		"formats", strings.Join(opts.Formats, ","),
		"output", opts.OutputDir,
		"workers", workers)

	var results []Result
	if workers == 1 {
		results = runSequential(ctx, gw, files, opts)
	} else {
		results = runConcurrent(ctx, gw, files, opts, workers)
	}

	for _, r := range results {
		summary.add(r)
	}

	slog.Info("batch finished",
		"success", summary.Success,
		"skipped", summary.Skipped,
		"failed", summary.Failed,
		"total", summary.Total)
	return summary, nil
}

// processFile runs the full per-file pipeline: skip check, transcription,
// and one write per requested format. It never returns an error; failures
// become a StatusFailed result so one file cannot abort the batch.
func processFile(ctx context.Context, gw Gateway, file media.File, opts Options) Result {
	outputDir := filepath.Join(opts.OutputDir, filepath.Dir(file.RelPath))
	stem := strings.TrimSuffix(filepath.Base(file.Path), filepath.Ext(file.Path))

	if !opts.Force && writer.OutputsComplete(outputDir, stem, opts.Formats) {
		return Result{File: file, Status: StatusSkipped, Message: "outputs already exist"}
	}

	start := time.Now()
	outcome, err := gw.Transcribe(ctx, file, opts.Language)
	if err != nil {
		return Result{File: file, Status: StatusFailed, Message: err.Error(), Elapsed: time.Since(start)}
	}

	meta := transcribe.BuildMetadata(outcome, opts.ModelName, opts.KeepTraditional)
	for _, format := range opts.Formats {
		path := filepath.Join(outputDir, stem+"."+format)
		var werr error
		switch format {
		case "txt":
			werr = writer.WriteText(outcome.Text, path)
		case "srt":
			werr = writer.WriteSRT(outcome.Segments, path, opts.MaxLineLength)
		case "json":
			werr = writer.WriteJSON(outcome.Text, outcome.Segments, meta, path)
		default:
			werr = fmt.Errorf("unknown output format %q", format)
		}
		if werr != nil {
			// Formats already written for this file stay on disk.
			return Result{File: file, Status: StatusFailed, Message: werr.Error(), Elapsed: time.Since(start)}
		}
	}

	return Result{
		File:    file,
		Status:  StatusSuccess,
		Message: "wrote " + strings.Join(opts.Formats, ", "),
		Elapsed: time.Since(start),
	}
}

func logResult(r Result) {
	switch r.Status {
	case StatusSkipped:
		slog.Info("skipped", "file", r.File.RelPath, "reason", r.Message)
	case StatusSuccess:
		slog.Info("done", "file", r.File.RelPath,
			"elapsed", r.Elapsed.Round(time.Millisecond), "outputs", r.Message)
	case StatusFailed:
		slog.Error("failed", "file", r.File.RelPath, "err", r.Message)
	}
}
