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


package cli

import (
	"fmt"

	"github.com/ZaparooProject/dexget/pkg/dex"
	"github.com/spf13/cobra"
)

func newSearchCmd(a *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "List catalog names matching a partial query",
		Long: `List catalog names matching a partial query.

Characters of the query must appear in order in the name, so "pkch" finds
Pikachu. Results are printed as "Name (key)", best match first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := limit
			if n <= 0 {
				n = a.cfg.MaxSuggestions()
			}

			names := a.table.Suggest(args[0], n)
			if len(names) == 0 {
				return fmt.Errorf("%q: %w", args[0], dex.ErrNotFound)
			}

			out := cmd.OutOrStdout()
			for _, name := range names {
				key, err := a.table.KeyForName(name)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(out, "%s (%s)\n", name, key)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum results (default from config)")

	return cmd
}
