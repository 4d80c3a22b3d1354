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

// Package fsys is the only place mmv touches the filesystem.
package fsys

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
)

// ErrNotRegular is returned when asked to copy something that is not a regular file.
var ErrNotRegular = errors.Base("not a regular file")

// 📂 FS lists directories and copies files
type FS interface {
	// ListDirectory returns every entry of dir (files and subdirectories).
	// Each entry is dir concatenated with the entry name, so callers that pass
	// a directory ending in "/" get strings comparable to paths they build.
	ListDirectory(ctx context.Context, dir string) ([]string, error)

	// CopyFile copies source to destination. When overwrite is false an
	// existing destination is never touched.
	CopyFile(ctx context.Context, source, destination string, overwrite bool) error
}

// 🗄️ aferoFS implements FS on top of an afero filesystem
type aferoFS struct {
	fs afero.Fs
}

// 🏭 New wraps an afero filesystem
func New(fs afero.Fs) FS {
	return &aferoFS{fs: fs}
}

// 🏭 NewOS returns an FS backed by the operating system
func NewOS() FS {
	return New(afero.NewOsFs())
}

// 🏭 NewMemory returns an FS backed by memory, mostly for tests
func NewMemory() (FS, afero.Fs) {
	mem := afero.NewMemMapFs()
	return New(mem), mem
}

func (a *aferoFS) ListDirectory(ctx context.Context, dir string) ([]string, error) {
	infos, err := afero.ReadDir(a.fs, dir)
	if err != nil {
		return nil, errors.Errorf("reading directory %q: %w", dir, err)
	}

	entries := make([]string, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, dir+info.Name())
	}

	zerolog.Ctx(ctx).Debug().Str("directory", dir).Int("entries", len(entries)).Msg("listed directory")

	return entries, nil
}

func (a *aferoFS) CopyFile(ctx context.Context, source, destination string, overwrite bool) error {
	logger := zerolog.Ctx(ctx)

	if source == destination {
		logger.Debug().Str("source", source).Msg("skipping copy onto itself")
		return nil
	}

	srcInfo, err := a.fs.Stat(source)
	if err != nil {
		return errors.Errorf("stat source: %w", err)
	}
	if !srcInfo.Mode().IsRegular() {
		return errors.Errorf("copying %q: %w", source, ErrNotRegular)
	}

	if dstInfo, err := a.fs.Stat(destination); err == nil && os.SameFile(srcInfo, dstInfo) {
		logger.Debug().Str("source", source).Str("destination", destination).Msg("skipping copy onto the same file")
		return nil
	}

	in, err := a.fs.Open(source)
	if err != nil {
		return errors.Errorf("opening source: %w", err)
	}
	defer in.Close()

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}

	out, err := a.fs.OpenFile(destination, flags, srcInfo.Mode().Perm())
	if err != nil {
		return errors.Errorf("opening destination: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return errors.Errorf("copying content: %w", err)
	}

	if err := out.Close(); err != nil {
		return errors.Errorf("closing destination: %w", err)
	}

	logger.Debug().Str("source", source).Str("destination", destination).Bool("overwrite", overwrite).Msg("copied file")

	return nil
}
