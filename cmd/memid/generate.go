package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/memid/pkg/logger"
	"github.com/dmitrymomot/memid/pkg/memorableid"
)

type generateOptions struct {
	count int
	gen   generationFlags
}

func newGenerateCommand(root *rootOptions) *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:     "generate [OPTIONS]",
		Aliases: []string{"gen"},
		Short:   "Print memorable identifiers, one per line",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, root, opts)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&opts.count, "count", "n", 1, "Number of identifiers")
	opts.gen.register(flags)

	return cmd
}

func runGenerate(cmd *cobra.Command, root *rootOptions, opts generateOptions) error {
	if opts.count < 1 {
		return fmt.Errorf("count must be positive, got %d", opts.count)
	}

	cfg, err := opts.gen.resolve(cmd.Flags(), root.configFile)
	if err != nil {
		return err
	}
	gen, err := memorableid.New(cfg, memorableid.WithLogger(root.log))
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	reg, err := openRegistry(ctx, opts.gen.registry, root.log)
	if err != nil {
		return err
	}
	defer func() {
		if err := reg.close(); err != nil {
			root.log.Warn("closing registry", logger.Error(err))
		}
	}()

	out := cmd.OutOrStdout()
	for range opts.count {
		id, err := gen.GenerateContext(ctx, reg.validate)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, id)
	}
	return nil
}
