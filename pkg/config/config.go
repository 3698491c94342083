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

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ZaparooProject/dexget/pkg/dex/matcher"
	"github.com/ZaparooProject/dexget/pkg/helpers/syncutil"
	"github.com/adrg/xdg"
	"github.com/go-playground/validator/v10"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const (
	SchemaVersion = 1
	CfgEnv        = "DEXGET_CFG"
	CfgFile       = "config.toml"
	AppName       = "dexget"
	LogFile       = "dexget.log"
)

// AppVersion is replaced at build time with -ldflags.
var AppVersion = "DEVELOPMENT"

var ErrSchemaMismatch = errors.New("schema version mismatch")

type Values struct {
	Dataset      Dataset  `toml:"dataset"`
	Matching     Matching `toml:"matching"`
	Display      Display  `toml:"display"`
	ConfigSchema int      `toml:"config_schema"`
	DebugLogging bool     `toml:"debug_logging"`
}

type Dataset struct {
	// Path to a catalog CSV replacing the embedded one. Empty uses the
	// embedded catalog.
	Path string `toml:"path"`
}

type Matching struct {
	MinSimilarity  float32 `toml:"min_similarity" validate:"gt=0,lte=1"`
	MaxSuggestions int     `toml:"max_suggestions" validate:"gte=1,lte=50"`
}

type Display struct {
	HideNames bool `toml:"hide_names"`
}

var BaseDefaults = Values{
	ConfigSchema: SchemaVersion,
	Matching: Matching{
		MinSimilarity:  matcher.DefaultMinSimilarity,
		MaxSuggestions: 5,
	},
}

type Instance struct {
	fs       afero.Fs
	validate *validator.Validate
	cfgPath  string
	vals     Values
	defaults Values
	mu       syncutil.RWMutex
}

// DefaultPath returns the config file location: $DEXGET_CFG if set, otherwise
// the XDG config directory.
func DefaultPath() (string, error) {
	if cfgPath := os.Getenv(CfgEnv); cfgPath != "" {
		log.Debug().Msgf("env config path: %s", cfgPath)
		return cfgPath, nil
	}
	cfgPath, err := xdg.ConfigFile(filepath.Join(AppName, CfgFile))
	if err != nil {
		return "", fmt.Errorf("failed to resolve config path: %w", err)
	}
	return cfgPath, nil
}

// NewConfig loads the config at cfgPath, writing the defaults there first if
// the file doesn't exist yet.
//
//nolint:gocritic // config struct copied for immutability
func NewConfig(fs afero.Fs, cfgPath string, defaults Values) (*Instance, error) {
	cfg := Instance{
		fs:       fs,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		cfgPath:  cfgPath,
		vals:     defaults,
		defaults: defaults,
	}

	exists, err := afero.Exists(fs, cfgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to check config file: %w", err)
	}
	if !exists {
		log.Info().Msg("saving new default config to disk")

		if err := fs.MkdirAll(filepath.Dir(cfgPath), 0o750); err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}
		if err := cfg.Save(); err != nil {
			return nil, err
		}
	}

	if err := cfg.Load(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Instance) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	data, err := afero.ReadFile(c.fs, c.cfgPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults, then unmarshal file values on top.
	// This ensures fields not present in the file retain their default values.
	newVals := c.defaults
	err = toml.Unmarshal(data, &newVals)
	if err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if newVals.ConfigSchema != SchemaVersion {
		log.Error().Msgf(
			"schema version mismatch: got %d, expecting %d",
			newVals.ConfigSchema,
			SchemaVersion,
		)
		return ErrSchemaMismatch
	}

	if err := c.validate.Struct(&newVals); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	c.vals = newVals
	return nil
}

func (c *Instance) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	c.vals.ConfigSchema = SchemaVersion

	data, err := toml.Marshal(&c.vals)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := afero.WriteFile(c.fs, c.cfgPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func (c *Instance) Path() string {
	return c.cfgPath
}

func (c *Instance) DebugLogging() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.DebugLogging
}

func (c *Instance) SetDebugLogging(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.DebugLogging = enabled
}

// DatasetPath returns the catalog override path. Relative paths are resolved
// against the config file's directory.
func (c *Instance) DatasetPath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	path := c.vals.Dataset.Path
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(filepath.Dir(c.cfgPath), path)
}

func (c *Instance) MinSimilarity() float32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Matching.MinSimilarity
}

func (c *Instance) MaxSuggestions() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Matching.MaxSuggestions
}

func (c *Instance) HideNames() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Display.HideNames
}
