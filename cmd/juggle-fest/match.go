// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v2"

	"github.com/someonegg/jugglefest"
	"github.com/someonegg/jugglefest/fest"
	"github.com/someonegg/jugglefest/internal/config"
	"github.com/someonegg/jugglefest/internal/logging"
	"github.com/someonegg/jugglefest/internal/metrics"
)

type matchArgs struct {
	input  string
	output string
	sum    string
	quiet  bool
}

// loadConfig reads the config file and applies the flags set on the
// command line over it.
func loadConfig(ctx *cli.Context) (config.Config, error) {
	cfg, err := config.Load(ctx.String("config"))
	if err != nil {
		return cfg, errors.Wrap(err, "load config failed")
	}

	if ctx.IsSet("format") {
		cfg.Output.Format = ctx.String("format")
	}
	if ctx.IsSet("order") {
		cfg.Output.Order = ctx.String("order")
	}
	if ctx.IsSet("max-rounds") {
		cfg.Matcher.MaxRounds = ctx.Int("max-rounds")
	}
	if ctx.IsSet("metrics-file") {
		cfg.Metrics.File = ctx.String("metrics-file")
	}
	if ctx.Bool("verbose") {
		cfg.Log.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func doMatch(ctx context.Context, cfg config.Config, args matchArgs, stdout, stderr io.Writer) error {
	var logger jugglefest.Logger = logging.NewNop()
	if !args.quiet {
		l, err := logging.New(stderr, cfg.Log.Format, cfg.Log.Level)
		if err != nil {
			return err
		}
		logger = l.With("run_id", uuid.NewString())
	}

	input, err := fest.Load(args.input)
	if err != nil {
		return errors.Wrap(err, "load input file failed")
	}
	logger.Info("input loaded", "file", args.input,
		"circuits", len(input.Circuits), "jugglers", len(input.Jugglers))

	var collector jugglefest.MetricsCollector = metrics.NewNop()
	var reg *prometheus.Registry
	if cfg.Metrics.File != "" {
		reg = prometheus.NewRegistry()
		collector = metrics.NewPrometheus(reg, cfg.Metrics.Namespace)
	}

	opts := []jugglefest.Option{
		jugglefest.WithLogger(logger),
		jugglefest.WithMetrics(collector),
		jugglefest.WithMaxRounds(cfg.Matcher.MaxRounds),
	}

	report, matchErr := fest.Match(input, opts...)

	if reg != nil {
		if err := prometheus.WriteToTextfile(cfg.Metrics.File, reg); err != nil {
			logger.Warn("write metrics failed", "file", cfg.Metrics.File, "error", err)
		}
	}
	if matchErr != nil {
		return matchErr
	}

	out := stdout
	if args.output != "" {
		f, err := os.Create(args.output)
		if err != nil {
			return errors.Wrap(err, "create output file failed")
		}
		defer f.Close()
		out = f
	}

	if err := writeReport(out, report, cfg.Output); err != nil {
		return errors.Wrap(err, "write report failed")
	}

	if args.sum != "" {
		sum, err := report.MemberIDSum(args.sum)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%s %d\n", args.sum, sum)
	}

	if f, ok := out.(*os.File); ok && f != os.Stdout {
		return f.Sync()
	}
	return nil
}

func writeReport(w io.Writer, report *fest.Report, cfg config.OutputConfig) error {
	if cfg.Format == "json" {
		return report.WriteJSON(w)
	}
	return report.WriteText(w, fest.Order(cfg.Order))
}
