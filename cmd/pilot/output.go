package main

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// outputOpts selects where assembled prompt text ends up. Exactly one
// sink receives the text per run.
type outputOpts struct {
	copyToClipboard bool
	outputFile      string
}

func (o *outputOpts) register(f *pflag.FlagSet, defaultFile string) {
	f.BoolVarP(&o.copyToClipboard, "copy", "c", false, "copy the prompt to the clipboard instead of writing a file")
	f.StringVarP(&o.outputFile, "output", "o", defaultFile, "file to write the prompt to, or - for stdout")
}

// deliver routes text to the configured sink. File writes happen only
// after the prompt was fully assembled, so a failed run leaves no
// partial output behind.
func (o *outputOpts) deliver(logger *zap.Logger, text string) error {
	switch {
	case o.copyToClipboard:
		if err := clipboard.WriteAll(text); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		logger.Info("prompt copied to clipboard", zap.Int("bytes", len(text)))
	case o.outputFile == "-":
		fmt.Println(text)
	default:
		if err := os.WriteFile(o.outputFile, []byte(text), 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		logger.Info("prompt written", zap.String("file", o.outputFile), zap.Int("bytes", len(text)))
	}
	return nil
}
