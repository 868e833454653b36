package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/contextpilot/pilot/parser"
)

func newFilesCmd(g *globalOpts) *cobra.Command {
	var (
		out       outputOpts
		fromReply string
	)

	cmd := &cobra.Command{
		Use:   "files <path>...",
		Short: "Deliver specific files as a follow-up prompt",
		Long: `Builds a file-delivery prompt containing the requested files. Paths
are relative to the project root. With --from-reply, paths are parsed
out of a model reply instead (use - to read the reply from stdin).`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, cfg, err := newEngine(g)
			if err != nil {
				return err
			}
			if out.outputFile == "" {
				out.outputFile = cfg.Output
			}

			paths := args
			if fromReply != "" {
				parsed, err := pathsFromReply(fromReply, cfg.ProgramName)
				if err != nil {
					return err
				}
				if len(parsed) == 0 {
					return fmt.Errorf("no file requests found in reply")
				}
				g.logger.Debug("parsed file requests from reply", zap.Strings("paths", parsed))
				paths = append(parsed, paths...)
			}
			if len(paths) == 0 {
				return fmt.Errorf("no files requested; pass paths or --from-reply")
			}

			res, err := eng.DeliverFiles(paths)
			if err != nil {
				return err
			}
			logWarnings(g.logger, res.Warnings)
			g.logger.Info("files delivered", zap.Int("count", len(paths)))
			return out.deliver(g.logger, res.Text)
		},
	}

	out.register(cmd.Flags(), "")
	cmd.Flags().StringVar(&fromReply, "from-reply", "", "file holding a model reply to extract file requests from (- for stdin)")

	return cmd
}

// pathsFromReply extracts requested paths from a saved model reply.
func pathsFromReply(source, programName string) ([]string, error) {
	var text []byte
	var err error
	if source == "-" {
		text, err = io.ReadAll(os.Stdin)
	} else {
		text, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, fmt.Errorf("read reply: %w", err)
	}
	if programName == "" {
		programName = parser.DefaultProgramName
	}
	p := parser.New(programName)
	return p.ExtractFileRequests(string(text)), nil
}
