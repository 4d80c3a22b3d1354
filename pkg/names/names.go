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

// Package names selects existing files by pattern and checks destination names
// against what is already on disk.
//
// Names are compared as plain strings. Nothing is cleaned, resolved or made
// absolute, so a listed entry and a built destination only compare equal when
// they are spelled the same way.
package names

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/mmv/pkg/fsys"
	"github.com/walteh/mmv/pkg/pattern"
	"gitlab.com/tozd/go/errors"
)

// CurrentDirectory is used for patterns without any '/'.
const CurrentDirectory = "./"

// ErrDirectoryUnreadable is returned when a directory cannot be listed.
var ErrDirectoryUnreadable = errors.Base("can't open directory")

// 📁 DirectoryOf returns everything up to and including the last '/', or
// "./" when there is none.
func DirectoryOf(name string) string {
	i := strings.LastIndexByte(name, '/')
	if i < 0 {
		return CurrentDirectory
	}
	return name[:i+1]
}

// BaseOf returns everything after the last '/'.
func BaseOf(name string) string {
	return name[strings.LastIndexByte(name, '/')+1:]
}

// 🔍 NamesMatching lists the directory of pattern and returns the entries the
// whole pattern matches. Order follows the listing.
func NamesMatching(ctx context.Context, fs fsys.FS, source string) ([]string, error) {
	matcher, err := pattern.Compile(source)
	if err != nil {
		return nil, err
	}
	return Select(ctx, fs, matcher)
}

// 🔍 Select is NamesMatching for an already compiled pattern.
func Select(ctx context.Context, fs fsys.FS, matcher *pattern.Matcher) ([]string, error) {
	dir := DirectoryOf(matcher.Pattern())

	entries, err := listDirectory(ctx, fs, dir)
	if err != nil {
		return nil, err
	}

	matched := make([]string, 0, len(entries))
	for _, entry := range entries {
		if matcher.Matches(entry) {
			matched = append(matched, entry)
		}
	}

	zerolog.Ctx(ctx).Debug().
		Str("pattern", matcher.Pattern()).
		Str("directory", dir).
		Int("entries", len(entries)).
		Int("matches", len(matched)).
		Msg("selected names")

	return matched, nil
}

// 💥 HasAnyFile reports whether any of names already exists. All names are
// expected to share the directory of the first one.
func HasAnyFile(ctx context.Context, fs fsys.FS, names []string) (bool, error) {
	existing, err := ExistingFiles(ctx, fs, names)
	if err != nil {
		return false, err
	}
	return len(existing) > 0, nil
}

// ExistingFiles returns the subset of names that appear verbatim in the
// listing of the directory of the first name.
func ExistingFiles(ctx context.Context, fs fsys.FS, names []string) (map[string]bool, error) {
	existing := map[string]bool{}
	if len(names) == 0 {
		return existing, nil
	}

	dir := DirectoryOf(names[0])
	entries, err := listDirectory(ctx, fs, dir)
	if err != nil {
		return nil, err
	}

	listed := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		listed[entry] = struct{}{}
	}

	for _, name := range names {
		if _, ok := listed[name]; ok {
			existing[name] = true
			zerolog.Ctx(ctx).Debug().Str("destination", name).Msg("destination already exists")
		}
	}

	return existing, nil
}

func listDirectory(ctx context.Context, fs fsys.FS, dir string) ([]string, error) {
	entries, err := fs.ListDirectory(ctx, dir)
	if err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Str("directory", dir).Msg("listing directory")
		return nil, errors.WithDetails(ErrDirectoryUnreadable, "directory", dir, "cause", err.Error())
	}
	return entries, nil
}
