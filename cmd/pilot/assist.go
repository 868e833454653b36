package main

import (
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/contextpilot/pilot/config"
	"github.com/contextpilot/pilot/engine"
)

func newAssistCmd(g *globalOpts) *cobra.Command {
	var (
		out        outputOpts
		extensions []string
		threshold  int
		ignore     []string
		watch      bool
	)

	cmd := &cobra.Command{
		Use:   "assist <task>",
		Short: "Build a task prompt from the project",
		Long: `Scans the project, counts tokens, and builds either a full-context
prompt (entire source inline) or a discovery prompt (tree only, with
instructions for requesting files), depending on whether the project
fits under the token threshold.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task := strings.Join(args, " ")
			eng, cfg, err := newEngine(g)
			if err != nil {
				return err
			}
			if out.outputFile == "" {
				out.outputFile = cfg.Output
			}

			run := func() error {
				return runAssist(g.logger, eng, task, engine.AssistOptions{
					Extensions:  extensions,
					Threshold:   threshold,
					ExtraIgnore: ignore,
				}, &out)
			}
			if err := run(); err != nil {
				return err
			}
			if watch {
				return watchAndRun(g.logger, g.root, out.outputFile, run)
			}
			return nil
		},
	}

	out.register(cmd.Flags(), "")
	cmd.Flags().StringSliceVar(&extensions, "ext", nil, "file extensions to embed (default "+strings.Join(config.DefaultExtensions, ",")+")")
	cmd.Flags().IntVar(&threshold, "threshold", 0, "token threshold for full-context prompts (0 = configured default)")
	cmd.Flags().StringArrayVar(&ignore, "ignore", nil, "extra ignore patterns, gitignore syntax")
	cmd.Flags().BoolVar(&watch, "watch", false, "rebuild the prompt whenever project files change")

	return cmd
}

func runAssist(logger *zap.Logger, eng *engine.Engine, task string, opts engine.AssistOptions, out *outputOpts) error {
	res, err := eng.Assist(task, opts)
	if err != nil {
		return err
	}
	logWarnings(logger, res.Warnings)

	logger.Info("project analyzed",
		zap.Int("files", len(res.Snapshot.IncludedEntries())),
		zap.Int("tokens", res.Verdict.TotalTokens),
		zap.Int("threshold", res.Verdict.Threshold),
		zap.String("strategy", res.Verdict.Strategy.String()),
	)
	if res.Verdict.Approximate > 0 {
		logger.Warn("token counts are approximate for some files",
			zap.Int("estimated", res.Verdict.Approximate))
	}

	return out.deliver(logger, res.Text)
}
