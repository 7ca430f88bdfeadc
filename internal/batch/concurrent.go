package batch

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/Freedomtukun/whisper-transcriber-app-v2/internal/media"
)

// runConcurrent processes files with up to workers jobs in flight. Each job
// writes a disjoint output file set, so the only shared state is the result
// slice behind the mutex. Jobs never return an error to the group: a failed
// file must not cancel its siblings.
func runConcurrent(ctx context.Context, gw Gateway, files []media.File, opts Options, workers int) []Result {
	var (
		mu      sync.Mutex
		results []Result
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			select {
			case <-gctx.Done():
				// Interrupt: stop dispatching queued jobs.
				return nil
			default:
			}

			slog.Info("processing", "file", file.RelPath, "n", i+1, "total", len(files))
			r := processFile(gctx, gw, file, opts)
			logResult(r)

			mu.Lock()
			results = append(results, r)
			mu.Unlock()
			return nil
		})
	}

	g.Wait()
	return results
}
