// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Println("Error: ", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "juggle-fest",
		Usage: "Utility for assigning jugglers to circuits",
		Commands: []*cli.Command{
			matchCmd,
			triangleCmd,
		},
	}
}

var matchCmd = &cli.Command{
	Name:    "match",
	Usage:   "Assign every juggler to a circuit",
	Aliases: []string{"m"},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "input",
			Aliases:  []string{"i"},
			Required: true,
			Usage:    "specify the input file",
		},
		&cli.StringFlag{
			Name:  "config",
			Usage: "specify the yaml config file",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "specify the output file (default stdout)",
		},
		&cli.StringFlag{
			Name:  "format",
			Usage: "specify the output format (text, json)",
		},
		&cli.StringFlag{
			Name:  "order",
			Usage: "specify the circuit order of the text output (desc, asc)",
		},
		&cli.IntFlag{
			Name:  "max-rounds",
			Usage: "specify the round ceiling (0 derives it from the input)",
		},
		&cli.StringFlag{
			Name:  "sum",
			Usage: "print the sum of the juggler ids assigned to this circuit",
		},
		&cli.StringFlag{
			Name:  "metrics-file",
			Usage: "specify the prometheus textfile to write",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "log every round",
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "discard logs",
		},
	},
	Action: func(ctx *cli.Context) error {
		cfg, err := loadConfig(ctx)
		if err != nil {
			return err
		}
		return doMatch(ctx.Context, cfg, matchArgs{
			input:  ctx.String("input"),
			output: ctx.String("output"),
			sum:    ctx.String("sum"),
			quiet:  ctx.Bool("quiet"),
		}, ctx.App.Writer, ctx.App.ErrWriter)
	},
}

var triangleCmd = &cli.Command{
	Name:    "triangle",
	Usage:   "Print the maximum top to bottom path sum of a number triangle",
	Aliases: []string{"t"},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "input",
			Aliases:  []string{"i"},
			Required: true,
			Usage:    "specify the triangle file",
		},
	},
	Action: func(ctx *cli.Context) error {
		input := ctx.String("input")
		if input == "" {
			return errors.New("invalid input")
		}
		return doTriangle(input, ctx.App.Writer)
	},
}
