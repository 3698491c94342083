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

// Package dataset reads the creature catalog: a headerless CSV where every
// row is (canonical name, localized name, filename key) and the row position
// is the entry's numeric ID.
package dataset

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/gocarina/gocsv"
)

// FieldsPerRow is the exact number of columns every catalog row must have.
const FieldsPerRow = 3

// ErrMalformed is returned when the catalog cannot be parsed. No rows are
// returned alongside it.
var ErrMalformed = errors.New("malformed catalog")

//go:embed names.csv
var embeddedNames []byte

// Row is one catalog entry. Field order matches the column order.
type Row struct {
	Name          string `csv:"name"`
	LocalizedName string `csv:"localized_name"`
	Key           string `csv:"key"`
}

// Parse reads every row from r. Any row with the wrong number of fields, an
// empty filename key or text that is not valid UTF-8 fails the whole parse.
func Parse(r io.Reader) ([]Row, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: invalid UTF-8", ErrMalformed)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []Row{}, nil
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = FieldsPerRow

	rows := make([]Row, 0)
	if err := gocsv.UnmarshalCSVWithoutHeaders(reader, &rows); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	for i, row := range rows {
		if row.Key == "" {
			return nil, fmt.Errorf("%w: row %d has an empty filename key", ErrMalformed, i)
		}
	}

	return rows, nil
}

// Embedded parses the catalog compiled into the binary.
func Embedded() ([]Row, error) {
	if len(embeddedNames) == 0 {
		return nil, errors.New("no embedded catalog available")
	}
	rows, err := Parse(bytes.NewReader(embeddedNames))
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded catalog: %w", err)
	}
	return rows, nil
}
