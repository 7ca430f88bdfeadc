package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Freedomtukun/whisper-transcriber-app-v2/internal/translate"
	"github.com/Freedomtukun/whisper-transcriber-app-v2/internal/writer"
)

var dualtextCmd = &cobra.Command{
	Use:   "dualtext <original.txt> <translated.txt> <output.txt>",
	Short: "Merge a transcript and its translation into a bilingual file",
	Args:  cobra.ExactArgs(3),
	RunE:  runDualtext,
}

func init() {
	rootCmd.AddCommand(dualtextCmd)
}

func runDualtext(cmd *cobra.Command, args []string) error {
	original, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read original: %w", err)
	}
	translated, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("read translation: %w", err)
	}

	merged := translate.MergeBilingual(string(original), string(translated))
	if err := writer.WriteText(merged+"\n", args[2]); err != nil {
		return err
	}

	slog.Info("bilingual file saved", "path", args[2])
	return nil
}
