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
	"text/tabwriter"

	"github.com/ZaparooProject/dexget/pkg/dex"
	"github.com/spf13/cobra"
)

func newGroupsCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "groups",
		Short: "List the groups usable with --group",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			loaded := a.table.Len()

			_, _ = fmt.Fprintln(w, "GROUP\tIDS\tSTATUS")
			for _, g := range dex.Groups() {
				lo, hi := g.Range()
				_, _ = fmt.Fprintf(w, "%s\t%d-%d\t%s\n", g, lo, hi, groupStatus(lo, hi, loaded))
			}
			return w.Flush()
		},
	}
}

func groupStatus(lo, hi, loaded int) string {
	switch {
	case hi < loaded:
		return "loaded"
	case lo < loaded:
		return fmt.Sprintf("partial (%d/%d)", loaded-lo, hi-lo+1)
	default:
		return "missing"
	}
}
