package main

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/memid/internal/api"
	"github.com/dmitrymomot/memid/pkg/config"
	"github.com/dmitrymomot/memid/pkg/httpserver"
	"github.com/dmitrymomot/memid/pkg/logger"
	"github.com/dmitrymomot/memid/pkg/memorableid"
)

type serveOptions struct {
	addr     string
	maxCount int
	gen      generationFlags
	limit    limitFlags
}

func newServeCommand(root *rootOptions) *cobra.Command {
	var opts serveOptions

	cmd := &cobra.Command{
		Use:   "serve [OPTIONS]",
		Short: "Serve identifiers over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, root, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.addr, "addr", "", "Listen address (default from HTTP_ADDR, else :8080)")
	flags.IntVar(&opts.maxCount, "max-count", api.DefaultMaxCount, "Largest count accepted by /v1/ids")
	opts.gen.register(flags)
	opts.limit.register(flags)

	return cmd
}

func runServe(cmd *cobra.Command, root *rootOptions, opts serveOptions) error {
	cfg, err := opts.gen.resolve(cmd.Flags(), root.configFile)
	if err != nil {
		return err
	}
	var httpCfg httpserver.Config
	if err := config.Load(&httpCfg); err != nil {
		return err
	}
	if opts.addr != "" {
		httpCfg.Addr = opts.addr
	}
	limits, err := opts.limit.resolve(cmd.Flags())
	if err != nil {
		return err
	}

	metrics := prometheus.NewRegistry()
	metrics.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	gen, err := memorableid.New(cfg,
		memorableid.WithLogger(root.log),
		memorableid.WithMetrics(memorableid.NewMetrics(metrics)),
	)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
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

	limiter, closeLimiter, err := openLimiter(ctx, limits)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeLimiter(); err != nil {
			root.log.Warn("closing rate limiter", logger.Error(err))
		}
	}()

	handler := api.New(gen,
		api.WithValidator(reg.validate),
		api.WithLogger(root.log),
		api.WithGatherer(metrics),
		api.WithReadinessChecks(reg.checks...),
		api.WithMaxCount(opts.maxCount),
		api.WithRateLimiter(limiter),
		api.WithTrustProxy(limits.TrustProxy),
	).Handler()

	root.log.Info("serving identifiers",
		logger.Lists(cfg.Lists),
		logger.Registry(opts.gen.registry),
		slog.Int("rate_limit", limits.RateLimit.Capacity),
	)
	return httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(root.log)).Run(ctx, handler)
}
