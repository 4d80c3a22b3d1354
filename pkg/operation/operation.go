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

package operation

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/mmv/pkg/fsys"
	"github.com/walteh/mmv/pkg/names"
	"github.com/walteh/mmv/pkg/pattern"
	"github.com/walteh/mmv/pkg/rename"
	"gitlab.com/tozd/go/errors"
)

// 📝 Arguments are the three inputs of a run
type Arguments struct {
	// SourcePattern selects files; '*' captures any run of characters
	SourcePattern string
	// DestinationPattern builds new names; #N inserts the N-th capture
	DestinationPattern string
	// Force allows overwriting existing destinations
	Force bool
}

// 🔧 Options configures an Operator
type Options struct {
	// FS is the filesystem to read and copy on
	FS fsys.FS
	// Strict turns copy failures into ErrCopyFailed instead of only logging them
	Strict bool
	// DryRun stops before copying anything
	DryRun bool
	// Exclude drops selected sources whose base name matches one of these globs
	Exclude []string
}

// 📦 Result describes a finished run
type Result struct {
	// Pairs are the planned copies, sorted by source
	Pairs []rename.Pair
	// Existing holds the destinations that existed before the run
	Existing map[string]bool
	// Copied is false for dry runs
	Copied bool
	// Failed holds the pairs whose copy returned an error
	Failed []rename.Pair
}

// Log returns one "<source> -> <destination>" line per pair.
func (r *Result) Log() []string {
	lines := make([]string, 0, len(r.Pairs))
	for _, p := range r.Pairs {
		lines = append(lines, p.String())
	}
	return lines
}

// 🎮 Operator runs invocations against one filesystem
type Operator struct {
	fs         fsys.FS
	strict     bool
	dryRun     bool
	exclusions *names.Exclusions
}

// 🏭 New creates an operator with the given options
func New(opts Options) (*Operator, error) {
	if opts.FS == nil {
		return nil, errors.Errorf("filesystem is required")
	}

	exclusions, err := names.NewExclusions(opts.Exclude)
	if err != nil {
		return nil, err
	}

	return &Operator{
		fs:         opts.FS,
		strict:     opts.Strict,
		dryRun:     opts.DryRun,
		exclusions: exclusions,
	}, nil
}

// 🏃 Run copies every file selected by args.SourcePattern to the name built
// from args.DestinationPattern
func (o *Operator) Run(ctx context.Context, args Arguments) (*Result, error) {
	logger := zerolog.Ctx(ctx).With().
		Str("from", args.SourcePattern).
		Str("to", args.DestinationPattern).
		Bool("force", args.Force).
		Logger()
	ctx = logger.WithContext(ctx)

	matcher, err := pattern.Compile(args.SourcePattern)
	if err != nil {
		return nil, err
	}

	selected, err := names.Select(ctx, o.fs, matcher)
	if err != nil {
		return nil, err
	}

	selected = o.exclusions.Filter(ctx, selected)
	if len(selected) == 0 {
		return nil, errors.WithDetails(ErrNoMatches, "pattern", args.SourcePattern)
	}

	mapping, err := rename.FromMatcher(matcher, args.DestinationPattern).Map(ctx, selected)
	if err != nil {
		return nil, errors.Errorf("building names: %w", err)
	}

	result := &Result{Pairs: mapping.Pairs()}

	result.Existing, err = names.ExistingFiles(ctx, o.fs, mapping.Destinations())
	if err != nil {
		return nil, err
	}

	if len(result.Existing) > 0 && !args.Force {
		logger.Debug().Int("existing", len(result.Existing)).Msg("refusing to overwrite")
		return nil, errors.WithDetails(ErrCollisionWithoutForce, "existing", len(result.Existing))
	}

	if o.dryRun {
		logger.Debug().Int("pairs", len(result.Pairs)).Msg("dry run, nothing copied")
		return result, nil
	}

	for _, pair := range result.Pairs {
		if err := o.fs.CopyFile(ctx, pair.Source, pair.Destination, args.Force); err != nil {
			logger.Warn().Err(err).Str("source", pair.Source).Str("destination", pair.Destination).Msg("copy failed")
			result.Failed = append(result.Failed, pair)
		}
	}
	result.Copied = true

	if o.strict && len(result.Failed) > 0 {
		failed := make([]string, len(result.Failed))
		for i, p := range result.Failed {
			failed[i] = p.String()
		}
		return result, errors.WithDetails(ErrCopyFailed, "failed", failed)
	}

	return result, nil
}

// 🏃 Run is a single default run: no exclusions, copy failures ignored.
// It returns one log line per copied pair.
func Run(ctx context.Context, fs fsys.FS, args Arguments) ([]string, error) {
	op, err := New(Options{FS: fs})
	if err != nil {
		return nil, err
	}

	result, err := op.Run(ctx, args)
	if err != nil {
		return nil, err
	}

	return result.Log(), nil
}
