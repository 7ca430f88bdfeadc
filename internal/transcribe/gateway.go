package transcribe

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Freedomtukun/whisper-transcriber-app-v2/internal/ffmpeg"
	"github.com/Freedomtukun/whisper-transcriber-app-v2/internal/media"
	"github.com/Freedomtukun/whisper-transcriber-app-v2/internal/script"
)

// ErrTranscriptionFailed wraps every per-file extraction, engine, or
// normalization failure. Callers contain it at the job boundary.
var ErrTranscriptionFailed = errors.New("transcription failed")

// Engine is the opaque speech-recognition backend. Implementations must
// tolerate concurrent calls from multiple workers.
type Engine interface {
	Transcribe(ctx context.Context, audioPath, language string) (*EngineResult, error)
}

// Gateway routes media files to the recognition engine: video goes through
// audio extraction first, and Chinese results are normalized to simplified
// script unless Normalizer is nil.
type Gateway struct {
	Engine     Engine
	Normalizer script.Normalizer

	// ExtractDir receives temporary audio artifacts extracted from video
	// containers. Defaults to the system temp directory.
	ExtractDir string
}

// Transcribe runs recognition for one media file. The language hint is
// forwarded verbatim when non-empty; otherwise the engine auto-detects and
// the detected code lands in the outcome. A temporary audio artifact
// extracted from video is always removed, also on failure paths.
func (g *Gateway) Transcribe(ctx context.Context, file media.File, language string) (*Outcome, error) {
	start := time.Now()

	workingPath := file.Path
	if file.Type == media.TypeVideo {
		tempAudio, err := ffmpeg.ExtractAudio(ctx, file.Path, g.ExtractDir)
		if err != nil {
			return nil, fmt.Errorf("%w: extract audio: %v", ErrTranscriptionFailed, err)
		}
		defer os.Remove(tempAudio)
		workingPath = tempAudio
	}

	result, err := g.Engine.Transcribe(ctx, workingPath, language)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTranscriptionFailed, err)
	}
	if result == nil || (result.Text == "" && len(result.Segments) == 0) {
		return nil, fmt.Errorf("%w: engine returned empty transcript", ErrTranscriptionFailed)
	}

	outcome := &Outcome{
		Text:     result.Text,
		Segments: validSegments(result.Segments),
		Language: result.Language,
		Source:   file,
	}

	if g.Normalizer != nil && script.IsChinese(outcome.Language) {
		if err := g.normalize(outcome); err != nil {
			return nil, fmt.Errorf("%w: normalize script: %v", ErrTranscriptionFailed, err)
		}
	}

	outcome.Elapsed = time.Since(start)
	return outcome, nil
}

func (g *Gateway) normalize(o *Outcome) error {
	text, err := g.Normalizer.Normalize(o.Text)
	if err != nil {
		return err
	}
	o.Text = text
	for i := range o.Segments {
		converted, err := g.Normalizer.Normalize(o.Segments[i].Text)
		if err != nil {
			return err
		}
		o.Segments[i].Text = converted
	}
	return nil
}

// validSegments drops segments whose text is blank after trimming. The engine
// contract promises start/end ordering, which is not re-checked here.
func validSegments(segments []Segment) []Segment {
	out := make([]Segment, 0, len(segments))
	for _, seg := range segments {
		if strings.TrimSpace(seg.Text) == "" {
			continue
		}
		out = append(out, seg)
	}
	return out
}
