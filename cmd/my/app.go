package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/funixtools/funixtools/internal/hostname"
	"github.com/funixtools/funixtools/internal/l10n"
	"github.com/funixtools/funixtools/internal/logging"
	"github.com/funixtools/funixtools/internal/profile"
)

const (
	flagVerbose   = "verbose"
	flagQuiet     = "quiet"
	flagProfile   = "profile"
	flagMachine   = "machine"
	flagSeparator = "separator"
)

// environment holds the process state the command reads from the OS.
type environment struct {
	hostname  func() string
	configDir func() (string, error)
}

func defaultEnvironment() environment {
	return environment{
		hostname:  hostname.Lookup,
		configDir: os.UserConfigDir,
	}
}

func newApp(env environment) *cli.App {
	return &cli.App{
		Name:        "my",
		Usage:       l10n.T("print profile values for the current machine"),
		ArgsUsage:   "KEY...",
		HideVersion: true,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    flagVerbose,
				Aliases: []string{"v"},
				Usage:   l10n.T("log debugging information"),
			},
			&cli.BoolFlag{
				Name:    flagQuiet,
				Aliases: []string{"q"},
				Usage:   l10n.T("do not log anything"),
			},
			&cli.StringFlag{
				Name:    flagProfile,
				Aliases: []string{"p"},
				Usage:   l10n.T("read the profile from `FILE`"),
			},
			&cli.StringFlag{
				Name:    flagMachine,
				Aliases: []string{"m"},
				Usage:   l10n.T("use the mappings of `HOST` instead of the local hostname"),
			},
			&cli.StringFlag{
				Name:    flagSeparator,
				Aliases: []string{"s"},
				Usage:   l10n.T("print `SEP` after each value"),
				Value:   "\n",
			},
		},
		Action: func(c *cli.Context) error {
			return run(c, env)
		},
	}
}

func run(c *cli.Context, env environment) error {
	if err := logging.Setup(c.App.ErrWriter, c.Bool(flagVerbose), c.Bool(flagQuiet)); err != nil {
		return err
	}

	keys := c.Args().Slice()
	if len(keys) == 0 {
		return l10n.Errorf("no arguments provided")
	}

	host := c.String(flagMachine)
	if host == "" {
		host = env.hostname()
	}

	src := &profile.Source{
		Path:      c.String(flagProfile),
		ConfigDir: env.configDir,
	}
	p, err := src.Load(host)
	if err != nil {
		return err
	}

	values, err := p.Resolve(keys)
	if err != nil {
		return err
	}

	sep := c.String(flagSeparator)
	var out strings.Builder
	for _, v := range values {
		out.WriteString(v)
		out.WriteString(sep)
	}
	_, err = fmt.Fprint(c.App.Writer, out.String())
	return err
}
