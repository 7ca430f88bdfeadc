package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Freedomtukun/whisper-transcriber-app-v2/internal/config"
	"github.com/Freedomtukun/whisper-transcriber-app-v2/internal/ffmpeg"
	"github.com/Freedomtukun/whisper-transcriber-app-v2/internal/media"
	"github.com/Freedomtukun/whisper-transcriber-app-v2/internal/script"
	"github.com/Freedomtukun/whisper-transcriber-app-v2/internal/transcribe"
	"github.com/Freedomtukun/whisper-transcriber-app-v2/internal/whisper"
	"github.com/Freedomtukun/whisper-transcriber-app-v2/internal/writer"
)

var transcribeCmd = &cobra.Command{
	Use:   "transcribe <input-file>",
	Short: "Transcribe a single audio/video file",
	Long: `Transcribe one audio or video file with Whisper. Video files have their
audio track extracted first. Outputs go to <input dir>/output unless an
output directory is given.`,
	Args: cobra.ExactArgs(1),
	RunE: runTranscribe,
}

var (
	transcribeLanguage  string
	transcribeOutputDir string
	transcribeFormats   []string
	transcribeModel     string
	keepTraditional     bool
	printText           bool
	exportLang          bool
	transcribeLineLen   int
)

func init() {
	defaults := config.Default()

	transcribeCmd.Flags().StringVarP(&transcribeLanguage, "language", "l", "", "language hint (e.g. zh, en); empty = auto-detect")
	transcribeCmd.Flags().StringVarP(&transcribeOutputDir, "output-dir", "o", "", "output directory (default: <input dir>/output)")
	transcribeCmd.Flags().StringSliceVar(&transcribeFormats, "formats", []string{"txt"}, "output formats: txt, srt, json")
	transcribeCmd.Flags().StringVar(&transcribeModel, "model", defaults.Model, "whisper model name")
	transcribeCmd.Flags().BoolVar(&keepTraditional, "keep-traditional", false, "keep traditional Chinese output")
	transcribeCmd.Flags().BoolVar(&printText, "print-text", false, "print the transcript to stdout")
	transcribeCmd.Flags().BoolVar(&exportLang, "export-lang", false, "write language detection info to <stem>_language.txt")
	transcribeCmd.Flags().IntVar(&transcribeLineLen, "max-line-length", defaults.MaxLineLength, "subtitle line length before wrapping")

	rootCmd.AddCommand(transcribeCmd)
}

func runTranscribe(cmd *cobra.Command, args []string) error {
	absPath, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}
	if _, err := os.Stat(absPath); err != nil {
		return fmt.Errorf("file not found: %s", args[0])
	}

	mediaType, ok := media.Classify(absPath)
	if !ok {
		return fmt.Errorf("unsupported file type: %s", filepath.Ext(absPath))
	}

	cfg := config.Config{
		Model:         transcribeModel,
		Formats:       transcribeFormats,
		Workers:       1,
		MaxLineLength: transcribeLineLen,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gw, err := newGateway(transcribeModel, keepTraditional)
	if err != nil {
		return err
	}

	slog.Info("processing file", "input", filepath.Base(absPath))
	if ffmpeg.Available() {
		ffmpeg.LogMediaInfo(ctx, absPath)
	}

	file := media.File{Path: absPath, RelPath: filepath.Base(absPath), Type: mediaType}
	outcome, err := gw.Transcribe(ctx, file, transcribeLanguage)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}

	outputDir := transcribeOutputDir
	if outputDir == "" {
		outputDir = filepath.Join(filepath.Dir(absPath), "output")
	}
	stem := strings.TrimSuffix(filepath.Base(absPath), filepath.Ext(absPath))
	meta := transcribe.BuildMetadata(outcome, transcribeModel, keepTraditional)

	for _, format := range transcribeFormats {
		path := filepath.Join(outputDir, stem+"."+format)
		switch format {
		case "txt":
			err = writer.WriteText(outcome.Text, path)
		case "srt":
			err = writer.WriteSRT(outcome.Segments, path, transcribeLineLen)
		case "json":
			err = writer.WriteJSON(outcome.Text, outcome.Segments, meta, path)
		}
		if err != nil {
			return fmt.Errorf("write %s: %w", format, err)
		}
		slog.Info("output saved", "path", path)
	}

	if exportLang {
		path := filepath.Join(outputDir, stem+"_language.txt")
		if err := writer.WriteLanguageInfo(meta, path); err != nil {
			return fmt.Errorf("write language info: %w", err)
		}
		slog.Info("language info saved", "path", path)
	}

	slog.Info("transcription complete",
		"language", meta.DetectedLanguage,
		"segments", meta.SegmentsCount,
		"elapsed_sec", meta.ProcessingTimeSeconds)

	if printText {
		fmt.Println(outcome.Text)
	}
	return nil
}

// newGateway wires the process-wide engine handle and script normalizer.
func newGateway(model string, keepTraditional bool) (*transcribe.Gateway, error) {
	if !whisper.Available() {
		return nil, fmt.Errorf("whisper binary not found in PATH")
	}

	gw := &transcribe.Gateway{Engine: whisper.New(model)}
	if !keepTraditional {
		normalizer, err := script.NewSimplifier()
		if err != nil {
			return nil, err
		}
		gw.Normalizer = normalizer
	}
	return gw, nil
}
