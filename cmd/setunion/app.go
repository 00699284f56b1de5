package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/funixtools/funixtools/internal/l10n"
	"github.com/funixtools/funixtools/internal/setunion"
)

const flagSeparator = "separator"

func newApp() *cli.App {
	return &cli.App{
		Name:        "setunion",
		Usage:       l10n.T("print the sorted union of the lines of two files"),
		ArgsUsage:   "LEFT RIGHT",
		HideVersion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagSeparator,
				Aliases: []string{"s"},
				Usage:   l10n.T("split inputs and join output on `SEP`"),
				Value:   "\n",
			},
		},
		Action: run,
	}
}

func run(c *cli.Context) error {
	if c.NArg() != 2 {
		return l10n.Errorf("expected 2 arguments, got %d", c.NArg())
	}
	union, err := setunion.UnionFiles(c.Args().Get(0), c.Args().Get(1), c.String(flagSeparator))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.App.Writer, union)
	return err
}
