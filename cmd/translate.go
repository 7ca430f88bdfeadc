package cmd

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Freedomtukun/whisper-transcriber-app-v2/internal/translate"
	"github.com/Freedomtukun/whisper-transcriber-app-v2/internal/writer"
)

var translateCmd = &cobra.Command{
	Use:   "translate <input.srt> <output.srt>",
	Short: "Translate an SRT subtitle file",
	Long: `Translate an existing SRT file cue by cue with the Google Translate API,
keeping the original timing. Requires GOOGLE_TRANSLATE_API_KEY in the
environment.`,
	Args: cobra.ExactArgs(2),
	RunE: runTranslate,
}

var (
	translateSource    string
	translateTarget    string
	translateRateLimit int
)

func init() {
	translateCmd.Flags().StringVar(&translateSource, "source", "", "source language (empty = auto-detect)")
	translateCmd.Flags().StringVar(&translateTarget, "target", "zh", "target language")
	translateCmd.Flags().IntVar(&translateRateLimit, "rate-limit", 60, "API requests per minute")

	rootCmd.AddCommand(translateCmd)
}

func runTranslate(cmd *cobra.Command, args []string) error {
	cues, err := writer.ParseSRT(args[0])
	if err != nil {
		return err
	}

	client, err := translate.NewClient(translateRateLimit)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	slog.Info("translating subtitle", "cues", len(cues), "target", translateTarget)

	translated, err := translate.TranslateCues(ctx, client, cues, translateSource, translateTarget)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}

	if err := writer.WriteCues(translated, args[1]); err != nil {
		return err
	}

	slog.Info("translated subtitle saved", "path", args[1])
	return nil
}
