// Package transcribe defines the transcription data model and the gateway
// that adapts the recognition engine to media files.
package transcribe

import (
	"time"

	"github.com/Freedomtukun/whisper-transcriber-app-v2/internal/media"
)

// Segment is one timed span of transcribed text.
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// EngineResult is the raw recognition output before normalization.
type EngineResult struct {
	Text     string
	Segments []Segment
	Language string
}

// Outcome is the finished transcription of one media file.
type Outcome struct {
	Text     string
	Segments []Segment
	Language string
	Source   media.File
	Elapsed  time.Duration
}

// Metadata describes a completed transcription. The JSON field names are part
// of the structured output record and must stay stable.
type Metadata struct {
	DetectedLanguage      string  `json:"detected_language"`
	ModelName             string  `json:"model_name"`
	FileType              string  `json:"file_type"`
	FileSizeMB            float64 `json:"file_size_mb"`
	DurationSeconds       float64 `json:"duration_seconds"`
	ProcessingTimeSeconds float64 `json:"processing_time_seconds"`
	KeepTraditional       bool    `json:"keep_traditional"`
	SegmentsCount         int     `json:"segments_count"`
}
