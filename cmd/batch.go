package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Freedomtukun/whisper-transcriber-app-v2/internal/batch"
	"github.com/Freedomtukun/whisper-transcriber-app-v2/internal/config"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Batch-transcribe all media files in a directory",
	Long: `Scan a directory for audio and video files and transcribe each one,
mirroring the input directory layout under the output directory. Files whose
requested outputs all exist are skipped unless --force is given. One file
failing never stops the rest of the batch.`,
	RunE: runBatch,
}

var (
	batchInputDir   string
	batchOutputDir  string
	batchRecursive  bool
	batchFormats    []string
	batchLanguage   string
	batchForce      bool
	batchWorkers    int
	batchExtensions []string
	batchModel      string
	batchKeepTrad   bool
	batchLineLen    int
	batchConfigPath string
)

func init() {
	defaults := config.Default()

	batchCmd.Flags().StringVarP(&batchInputDir, "input", "i", "", "input directory (required)")
	batchCmd.Flags().StringVarP(&batchOutputDir, "output", "o", "", "output directory (required)")
	batchCmd.Flags().BoolVarP(&batchRecursive, "recursive", "r", false, "scan subdirectories")
	batchCmd.Flags().StringSliceVar(&batchFormats, "formats", defaults.Formats, "output formats: txt, srt, json")
	batchCmd.Flags().StringVarP(&batchLanguage, "language", "l", "", "language hint (e.g. zh, en); empty = auto-detect")
	batchCmd.Flags().BoolVarP(&batchForce, "force", "f", false, "overwrite existing outputs")
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", defaults.Workers, "concurrent transcription jobs")
	batchCmd.Flags().StringSliceVar(&batchExtensions, "ext", nil, "restrict to these extensions (e.g. mp3,wav)")
	batchCmd.Flags().StringVar(&batchModel, "model", defaults.Model, "whisper model name")
	batchCmd.Flags().BoolVar(&batchKeepTrad, "keep-traditional", false, "keep traditional Chinese output")
	batchCmd.Flags().IntVar(&batchLineLen, "max-line-length", defaults.MaxLineLength, "subtitle line length before wrapping")
	batchCmd.Flags().StringVar(&batchConfigPath, "config", "", "TOML config file with run defaults")

	batchCmd.MarkFlagRequired("input")
	batchCmd.MarkFlagRequired("output")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := batchConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gw, err := newGateway(cfg.Model, cfg.KeepTraditional)
	if err != nil {
		return err
	}

	opts := batch.Options{
		InputDir:        batchInputDir,
		OutputDir:       batchOutputDir,
		Formats:         cfg.Formats,
		Recursive:       batchRecursive,
		Language:        cfg.Language,
		Force:           batchForce,
		Workers:         cfg.Workers,
		Extensions:      batchExtensions,
		MaxLineLength:   cfg.MaxLineLength,
		ModelName:       cfg.Model,
		KeepTraditional: cfg.KeepTraditional,
	}

	summary, err := batch.Run(ctx, gw, opts)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if !quiet {
		printSummary(summary)
	}
	return nil
}

// batchConfig layers flag values over the config file (or built-in defaults).
// Flags the user actually set win over the file.
func batchConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if batchConfigPath != "" {
		loaded, err := config.Load(batchConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("formats") {
		cfg.Formats = batchFormats
	}
	if flags.Changed("workers") {
		cfg.Workers = batchWorkers
	}
	if flags.Changed("model") {
		cfg.Model = batchModel
	}
	if flags.Changed("max-line-length") {
		cfg.MaxLineLength = batchLineLen
	}
	if flags.Changed("keep-traditional") {
		cfg.KeepTraditional = batchKeepTrad
	}
	if flags.Changed("language") {
		cfg.Language = batchLanguage
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func printSummary(s batch.Summary) {
	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Success", "Skipped", "Failed", "Total"})
	tw.AppendRow(table.Row{s.Success, s.Skipped, s.Failed, s.Total})
	tw.Render()
}
