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

package dataset

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Loader reads the catalog from an override file when one is configured and
// present, otherwise from the embedded copy.
type Loader struct {
	fs   afero.Fs
	path string
}

func NewLoader(fs afero.Fs, path string) *Loader {
	return &Loader{
		fs:   fs,
		path: path,
	}
}

// DefaultLoader uses the OS filesystem.
func DefaultLoader(path string) *Loader {
	return NewLoader(afero.NewOsFs(), path)
}

func (l *Loader) Load() ([]Row, error) {
	if l.path == "" {
		return Embedded()
	}

	exists, err := afero.Exists(l.fs, l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to check catalog file: %w", err)
	}
	if !exists {
		log.Warn().Str("path", l.path).Msg("catalog override not found, using embedded catalog")
		return Embedded()
	}

	file, err := l.fs.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("failed to close catalog file")
		}
	}()

	rows, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", l.path, err)
	}

	log.Info().Str("path", l.path).Int("rows", len(rows)).Msg("loaded catalog override")
	return rows, nil
}
