// Dexget
// Copyright (c) 2026 The Zaparoo Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Dexget.
//
// Dexget is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Dexget is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Dexget.  If not, see <http://www.gnu.org/licenses/>.


// Package cli implements the dexget command line: resolving identifiers to
// filename keys, random picks and catalog search.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ZaparooProject/dexget/pkg/config"
	"github.com/ZaparooProject/dexget/pkg/dex"
	"github.com/ZaparooProject/dexget/pkg/dex/dataset"
	"github.com/ZaparooProject/dexget/pkg/helpers"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var ErrNoIdentifiers = errors.New("no identifiers given")

// App holds everything a command invocation touches. The zero value isn't
// usable; use NewApp or fill in every exported field.
type App struct {
	Fs     afero.Fs
	Stdout io.Writer
	Stderr io.Writer
	// Rand overrides the table's random source. Nil uses the default.
	Rand dex.Rand
	// LogDir is where the rotating log file goes. Empty disables file
	// logging.
	LogDir string

	cfg   *config.Instance
	table *dex.Table
}

// NewApp returns an App wired to the real filesystem and standard streams.
func NewApp() *App {
	return &App{
		Fs:     afero.NewOsFs(),
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		LogDir: helpers.LogDir(),
	}
}

type flags struct {
	cfgPath  string
	group    string
	debug    bool
	hideName bool
	random   bool
}

// NewRootCmd builds the dexget command tree around a.
func NewRootCmd(a *App) *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "dexget [flags] <name|number|key>...",
		Short: "Resolve Pokémon names and dex numbers to sprite filename keys",
		Long: `Resolve Pokémon names and dex numbers to sprite filename keys.

Each identifier may be a national dex number, an English or German name,
a filename key, or a misspelled name. Keys are printed to stdout one per
line and display names to stderr.

Examples:
  dexget 25
  dexget Glurak bulbasaur "mr mime"
  dexget --random
  dexget --group johto`,
		// Identifiers are positional, so unknown words must not be treated
		// as unknown subcommands.
		Args:          cobra.ArbitraryArgs,
		Version:       config.AppVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.setup(f)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runResolve(cmd.OutOrStdout(), f, args)
		},
	}

	cmd.SetOut(a.Stdout)
	cmd.SetErr(a.Stderr)

	cmd.PersistentFlags().StringVarP(&f.cfgPath, "config", "c", "",
		"config file path (default $"+config.CfgEnv+" or the XDG config dir)")
	cmd.PersistentFlags().BoolVar(&f.debug, "debug", false, "enable debug logging")

	cmd.Flags().BoolVarP(&f.random, "random", "r", false, "pick a random entry from the catalog")
	cmd.Flags().StringVarP(&f.group, "group", "g", "", "pick a random entry from a group (kanto, johto, ...)")
	cmd.Flags().BoolVar(&f.hideName, "hide-name", false, "don't print display names")
	cmd.MarkFlagsMutuallyExclusive("random", "group")

	cmd.AddCommand(newSearchCmd(a))
	cmd.AddCommand(newGroupsCmd(a))

	return cmd
}

// Execute runs the command tree with os.Args.
func Execute(a *App) error {
	return NewRootCmd(a).Execute()
}

func (a *App) setup(f *flags) error {
	cfgPath := f.cfgPath
	if cfgPath == "" {
		var err error
		cfgPath, err = config.DefaultPath()
		if err != nil {
			return err
		}
	}

	cfg, err := config.NewConfig(a.Fs, cfgPath, config.BaseDefaults)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.cfg = cfg

	if a.LogDir != "" {
		if err := helpers.InitLogging(a.LogDir, f.debug || cfg.DebugLogging()); err != nil {
			return err
		}
	}

	opts := []dex.Option{dex.WithMinSimilarity(cfg.MinSimilarity())}
	if a.Rand != nil {
		opts = append(opts, dex.WithRand(a.Rand))
	}

	table, err := dex.Load(dataset.NewLoader(a.Fs, cfg.DatasetPath()), opts...)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	a.table = table

	log.Debug().
		Str("config", cfgPath).
		Int("entries", table.Len()).
		Msg("dexget ready")

	return nil
}

func (a *App) runResolve(out io.Writer, f *flags, args []string) error {
	var keys []string

	switch {
	case f.random || f.group != "":
		if len(args) > 0 {
			return errors.New("--random and --group can't be combined with identifiers")
		}
		key, err := a.randomKey(f)
		if err != nil {
			return err
		}
		keys = append(keys, key)
	case len(args) == 0:
		return ErrNoIdentifiers
	default:
		for _, arg := range args {
			res, err := a.table.Resolve(arg)
			if err != nil {
				return a.withSuggestions(arg, err)
			}
			keys = append(keys, res.Key)
		}
	}

	for _, key := range keys {
		_, _ = fmt.Fprintln(out, key)
	}

	if f.hideName || a.cfg.HideNames() {
		return nil
	}

	names := make([]string, 0, len(keys))
	for _, key := range keys {
		names = append(names, a.table.NameForKey(key))
	}
	_, _ = fmt.Fprintln(a.Stderr, strings.Join(names, ", "))

	return nil
}

func (a *App) randomKey(f *flags) (string, error) {
	if f.group == "" {
		return a.table.RandomKey()
	}

	g, err := dex.ParseGroup(f.group)
	if err != nil {
		return "", err
	}
	return a.table.RandomKeyInGroup(g)
}

func (a *App) withSuggestions(arg string, err error) error {
	if !errors.Is(err, dex.ErrNotFound) {
		return err
	}

	suggestions := a.table.Suggest(arg, a.cfg.MaxSuggestions())
	if len(suggestions) == 0 {
		return fmt.Errorf("%q: %w", arg, err)
	}
	return fmt.Errorf("%q: %w (did you mean: %s?)", arg, err, strings.Join(suggestions, ", "))
}
