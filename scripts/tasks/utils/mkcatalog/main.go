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


// mkcatalog turns a "dex number,English name,German name" list into the
// catalog CSV embedded in pkg/dex/dataset.
//
//	go run ./scripts/tasks/utils/mkcatalog german_names.txt pkg/dex/dataset/names.csv
package main

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/ZaparooProject/dexget/pkg/dex"
	"github.com/ZaparooProject/dexget/pkg/dex/dataset"
	"github.com/gocarina/gocsv"
)

type sourceRow struct {
	Number        string `csv:"number"`
	Name          string `csv:"name"`
	LocalizedName string `csv:"localized_name"`
}

type numberedRow struct {
	row    dataset.Row
	number int
}

func main() {
	if len(os.Args) != 3 {
		_, _ = fmt.Fprintln(os.Stderr, "Usage: mkcatalog <names.txt> <catalog.csv>")
		os.Exit(1)
	}

	if err := run(os.Args[1], os.Args[2]); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run(inPath, outPath string) error {
	in, err := os.Open(inPath) //nolint:gosec // path comes from the task runner
	if err != nil {
		return fmt.Errorf("failed to open name list: %w", err)
	}
	defer func() { _ = in.Close() }()

	var buf bytes.Buffer
	n, err := convert(in, &buf)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outPath, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("failed to write catalog: %w", err)
	}

	_, _ = fmt.Printf("wrote %d entries to %s\n", n, outPath)
	return nil
}

// convert reads the name list from r and writes catalog rows to w ordered by
// dex number. Repeated dex numbers (alternate forms) keep the first row. The
// numbers must run from 1 without gaps since row position is the ID.
func convert(r io.Reader, w io.Writer) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 3
	reader.TrimLeadingSpace = true

	var source []sourceRow
	if err := gocsv.UnmarshalCSVWithoutHeaders(reader, &source); err != nil {
		return 0, fmt.Errorf("failed to parse name list: %w", err)
	}

	seen := make(map[int]struct{}, len(source))
	numbered := make([]numberedRow, 0, len(source))
	for _, src := range source {
		number, err := strconv.Atoi(strings.TrimLeft(strings.TrimSpace(src.Number), "#"))
		if err != nil {
			return 0, fmt.Errorf("bad dex number %q: %w", src.Number, err)
		}
		if _, ok := seen[number]; ok {
			continue
		}
		seen[number] = struct{}{}

		numbered = append(numbered, numberedRow{
			number: number,
			row: dataset.Row{
				Name:          src.Name,
				LocalizedName: src.LocalizedName,
				Key:           dataset.Slugify(src.Name),
			},
		})
	}

	slices.SortFunc(numbered, func(a, b numberedRow) int {
		return a.number - b.number
	})

	rows := make([]dataset.Row, 0, len(numbered))
	for i, nr := range numbered {
		if nr.number != i+1 {
			return 0, fmt.Errorf("missing dex number %d", i+1)
		}
		rows = append(rows, nr.row)
	}
	if len(rows) == 0 {
		return 0, errors.New("name list is empty")
	}

	// catch key collisions before they reach the embedded catalog
	if _, err := dex.New(rows, dex.WithRand(dex.NewSeededRand(0))); err != nil {
		return 0, err
	}

	if err := gocsv.MarshalWithoutHeaders(rows, w); err != nil {
		return 0, fmt.Errorf("failed to write catalog: %w", err)
	}
	return len(rows), nil
}
