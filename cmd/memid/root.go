package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/memid/pkg/config"
	"github.com/dmitrymomot/memid/pkg/logger"
	"github.com/dmitrymomot/memid/pkg/requestid"
)

type rootOptions struct {
	configFile string
	envFiles   []string
	logLevel   string
	logFormat  string

	log *slog.Logger
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "memid",
		Short:        "Generate memorable identifiers such as HappyPenguin",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if len(opts.envFiles) > 0 {
				if err := config.LoadEnv(opts.envFiles...); err != nil {
					return err
				}
			}
			format := logger.Format(opts.logFormat)
			if format != logger.FormatText && format != logger.FormatJSON {
				return fmt.Errorf("invalid log format %q", opts.logFormat)
			}
			opts.log = logger.New(
				logger.WithOutput(cmd.ErrOrStderr()),
				logger.WithLevelName(opts.logLevel),
				logger.WithFormat(format),
				logger.WithContextExtractors(requestid.LoggerExtractor),
			)
			return nil
		},
	}
	cmd.SetErrPrefix("memid:")

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configFile, "config", "c", "", "YAML file with generator settings")
	flags.StringSliceVar(&opts.envFiles, "env-file", nil, "Load environment variables from these files")
	flags.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flags.StringVar(&opts.logFormat, "log-format", string(logger.FormatText), "Log format (text, json)")

	cmd.AddCommand(
		newGenerateCommand(opts),
		newListsCommand(opts),
		newServeCommand(opts),
	)
	return cmd
}
