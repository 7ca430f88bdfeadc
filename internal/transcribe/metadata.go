package transcribe

import (
	"math"
	"os"
)

// BuildMetadata derives the metadata block for a finished transcription.
// Duration is the end time of the last segment, or 0 without segments.
func BuildMetadata(o *Outcome, modelName string, keepTraditional bool) Metadata {
	sizeMB := 0.0
	if stat, err := os.Stat(o.Source.Path); err == nil {
		sizeMB = round2(float64(stat.Size()) / (1024 * 1024))
	}

	duration := 0.0
	if n := len(o.Segments); n > 0 {
		duration = o.Segments[n-1].End
	}

	language := o.Language
	if language == "" {
		language = "unknown"
	}

	return Metadata{
		DetectedLanguage:      language,
		ModelName:             modelName,
		FileType:              string(o.Source.Type),
		FileSizeMB:            sizeMB,
		DurationSeconds:       duration,
		ProcessingTimeSeconds: round2(o.Elapsed.Seconds()),
		KeepTraditional:       keepTraditional,
		SegmentsCount:         len(o.Segments),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
