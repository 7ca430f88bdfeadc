package main

import (
	"context"
	"errors"
	"os"

	"github.com/Freedomtukun/whisper-transcriber-app-v2/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		// A user interrupt gets its own exit status so wrapping scripts can
		// tell a cancelled run from a failed one.
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		os.Exit(1)
	}
}
