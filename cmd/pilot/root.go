package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/contextpilot/pilot/config"
	"github.com/contextpilot/pilot/engine"
)

// globalOpts holds flags shared by every subcommand.
type globalOpts struct {
	root    string
	verbose bool

	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &globalOpts{}

	cmd := &cobra.Command{
		Use:   "pilot",
		Short: "Assemble project context into LLM-ready prompts",
		Long: `pilot scans a project directory, measures how many tokens its files
would consume, and assembles a prompt sized for the model:

  - small projects get the full source inline
  - large projects get the directory tree plus instructions for the
    model to request specific files

It also delivers requested files and drafts commit messages from the
working diff.`,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(opts.verbose)
			if err != nil {
				return err
			}
			opts.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&opts.root, "root", ".", "project directory to operate on")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(newAssistCmd(opts))
	cmd.AddCommand(newFilesCmd(opts))
	cmd.AddCommand(newGitCmd(opts))

	return cmd
}

// newLogger builds a console logger. Prompt text goes to the output
// sink, never through the logger, so logs stay on stderr.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.TimeKey = ""
	cfg.DisableStacktrace = true
	cfg.OutputPaths = []string{"stderr"}
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

// newEngine loads project configuration and constructs the engine for
// the selected root.
func newEngine(opts *globalOpts) (*engine.Engine, config.Config, error) {
	cfg, err := config.Load(opts.root)
	if err != nil {
		return nil, config.Config{}, err
	}
	eng, err := engine.New(engine.Options{Root: opts.root, Config: cfg})
	if err != nil {
		return nil, config.Config{}, err
	}
	return eng, cfg, nil
}

// logWarnings reports soft failures collected during a run.
func logWarnings(logger *zap.Logger, warnings []string) {
	for _, w := range warnings {
		logger.Warn(w)
	}
}
