package batch

import (
	"context"
	"log/slog"

	"github.com/Freedomtukun/whisper-transcriber-app-v2/internal/media"
)

// runSequential processes files one at a time in catalog order. An interrupt
// stops before the next file; the file in flight runs to completion.
func runSequential(ctx context.Context, gw Gateway, files []media.File, opts Options) []Result {
	results := make([]Result, 0, len(files))

	for i, file := range files {
		select {
		case <-ctx.Done():
			slog.Warn("interrupted, stopping dispatch", "processed", len(results), "total", len(files))
			return results
		default:
		}

		slog.Info("processing", "file", file.RelPath, "n", i+1, "total", len(files))
		r := processFile(ctx, gw, file, opts)
		logResult(r)
		results = append(results, r)
	}

	return results
}
