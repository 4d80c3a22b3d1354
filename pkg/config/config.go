// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// DefaultPath is the config file looked up when none is given.
const DefaultPath = ".mmv.yaml"

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📚 Config holds defaults for command line flags
type Config struct {
	Force   bool     `json:"force" yaml:"force" toml:"force"`
	Strict  bool     `json:"strict" yaml:"strict" toml:"strict"`
	DryRun  bool     `json:"dry_run" yaml:"dry_run" toml:"dry_run"`
	Exclude []string `json:"exclude" yaml:"exclude" toml:"exclude"`

	location string
}

// Location returns the file the config was loaded from, empty for defaults.
func (cfg *Config) Location() string {
	return cfg.location
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	for i, p := range cfg.Exclude {
		if strings.TrimSpace(p) == "" {
			return errors.Errorf("exclude[%d] is empty", i)
		}
	}
	return nil
}

// 📥 Load reads and validates the config file at path
func Load(ctx context.Context, path string) (*Config, error) {
	parser := GetParser(filepath.Base(path))
	if parser == nil {
		return nil, errors.Errorf("unsupported config file %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	cfg, err := parser.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config %q: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}
	cfg.location = path

	zerolog.Ctx(ctx).Debug().Str("path", path).Interface("config", cfg).Msg("loaded config")

	return cfg, nil
}

// 📥 LoadOptional is Load, except that a missing file yields an empty config.
func LoadOptional(ctx context.Context, path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		zerolog.Ctx(ctx).Debug().Str("path", path).Msg("no config file")
		return &Config{}, nil
	}
	return Load(ctx, path)
}
