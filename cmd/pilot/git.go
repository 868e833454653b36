package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/contextpilot/pilot/engine"
)

func newGitCmd(g *globalOpts) *cobra.Command {
	var (
		out           outputOpts
		staged        bool
		maxDiffTokens int
	)

	cmd := &cobra.Command{
		Use:   "git",
		Short: "Build a commit-message prompt from the working diff",
		Long: `Collects the staged and unstaged diff from the project's git
repository and builds a prompt asking for a Conventional Commits
message. Large diffs can be capped with --max-diff-tokens, which
keeps the beginning and end of the diff.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, cfg, err := newEngine(g)
			if err != nil {
				return err
			}
			if out.outputFile == "" {
				out.outputFile = cfg.Output
			}

			res, err := eng.CommitMessage(engine.CommitOptions{
				StagedOnly:    staged,
				MaxDiffTokens: maxDiffTokens,
			})
			if err != nil {
				return err
			}
			logWarnings(g.logger, res.Warnings)
			g.logger.Info("commit prompt built", zap.Bool("staged_only", staged))
			return out.deliver(g.logger, res.Text)
		},
	}

	out.register(cmd.Flags(), "")
	cmd.Flags().BoolVar(&staged, "staged", false, "use only the staged diff")
	cmd.Flags().IntVar(&maxDiffTokens, "max-diff-tokens", 0, "cap the diff at this many tokens (0 = no cap)")

	return cmd
}
