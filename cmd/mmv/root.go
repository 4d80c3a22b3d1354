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

package main

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/mmv/pkg/config"
	"github.com/walteh/mmv/pkg/fsys"
	"github.com/walteh/mmv/pkg/log"
	"github.com/walteh/mmv/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// 🎮 Handler holds the flag values of one invocation. Output to stdout goes
// through the console carried in the command context.
type Handler struct {
	configFile string
	debug      bool
	force      bool
	strict     bool
	dryRun     bool
	exclude    []string

	fs     fsys.FS
	stderr io.Writer
}

func newHandler(stderr io.Writer) *Handler {
	return &Handler{
		configFile: config.DefaultPath,
		fs:         fsys.NewOS(),
		stderr:     stderr,
	}
}

// newRootCommand wires the handler into a cobra command
func newRootCommand(h *Handler) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mmv <pattern_from> <pattern_to>",
		Short: "🚚 copy files matching a wildcard pattern to new names",
		Long: `mmv copies every file in one directory whose name matches pattern_from
to the name built from pattern_to.

Each '*' in pattern_from captures any run of characters. '#1', '#2', ...
in pattern_to insert the captures in order:

  mmv 'photos/*_*.jpg' 'sorted/#2_#1.jpg'

Existing destinations are never overwritten unless --force is given.`,
		Args:          cobra.ExactArgs(2),
		Version:       FormatVersion(),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return h.run(cmd, args[0], args[1])
		},
	}
	cmd.SetVersionTemplate("{{.Version}}")

	addRootFlags(cmd, h)
	return cmd
}

// addRootFlags adds the flags to the root command
func addRootFlags(cmd *cobra.Command, h *Handler) {
	cmd.Flags().BoolVarP(&h.force, "force", "f", false, "overwrite existing destination files")
	cmd.Flags().BoolVar(&h.strict, "strict", false, "fail when any file could not be copied")
	cmd.Flags().BoolVar(&h.dryRun, "dry-run", false, "show what would be copied without copying")
	cmd.Flags().StringArrayVarP(&h.exclude, "exclude", "e", nil, "skip source files whose name matches this glob (repeatable)")
	cmd.Flags().StringVarP(&h.configFile, "config", "c", config.DefaultPath, "config file path (.yaml, .yml, .json, .hcl or .toml)")
	cmd.Flags().BoolVarP(&h.debug, "debug", "d", false, "enable debug logging on stderr")
}

// logger builds the diagnostic logger, which never writes to stdout
func (h *Handler) logger() zerolog.Logger {
	level := zerolog.WarnLevel
	if h.debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(h.stderr).Level(level).With().Timestamp().Logger()
}

// loadConfig reads the config file. The default file is optional, an explicit one is not.
func (h *Handler) loadConfig(ctx context.Context, cmd *cobra.Command) (*config.Config, error) {
	if cmd.Flags().Changed("config") {
		return config.Load(ctx, h.configFile)
	}
	return config.LoadOptional(ctx, h.configFile)
}

// applyConfig fills every flag the user did not set from the config file
func (h *Handler) applyConfig(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if !flags.Changed("force") {
		h.force = cfg.Force
	}
	if !flags.Changed("strict") {
		h.strict = cfg.Strict
	}
	if !flags.Changed("dry-run") {
		h.dryRun = cfg.DryRun
	}
	if !flags.Changed("exclude") {
		h.exclude = cfg.Exclude
	}
}

// 🏃 run performs one invocation and prints its outcome
func (h *Handler) run(cmd *cobra.Command, from, to string) error {
	logger := h.logger()
	ctx := logger.WithContext(cmd.Context())

	cfg, err := h.loadConfig(ctx, cmd)
	if err != nil {
		return errors.Errorf("loading config: %w", err)
	}
	h.applyConfig(cmd, cfg)

	logger.Debug().
		Str("config", cfg.Location()).
		Bool("force", h.force).
		Bool("strict", h.strict).
		Bool("dry_run", h.dryRun).
		Strs("exclude", h.exclude).
		Msg("starting")

	op, err := operation.New(operation.Options{
		FS:      h.fs,
		Strict:  h.strict,
		DryRun:  h.dryRun,
		Exclude: h.exclude,
	})
	if err != nil {
		return err
	}

	result, err := op.Run(ctx, operation.Arguments{
		SourcePattern:      from,
		DestinationPattern: to,
		Force:              h.force,
	})
	if err != nil {
		return err
	}

	console := log.FromContext(ctx)
	if h.dryRun {
		return console.Plan(result.Pairs, result.Existing)
	}
	console.Pairs(result.Pairs)
	return nil
}
