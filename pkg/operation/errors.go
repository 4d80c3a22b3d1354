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
	"github.com/walteh/mmv/pkg/names"
	"github.com/walteh/mmv/pkg/pattern"
	"gitlab.com/tozd/go/errors"
)

// Errors returned by Run. Their messages are printed as is, so errors derived
// from them keep the same Error() text and carry context as details.
var (
	// ErrDirectoryUnreadable means a source or destination directory could not be listed.
	ErrDirectoryUnreadable = names.ErrDirectoryUnreadable

	// ErrNoMatches means the source pattern selected nothing.
	ErrNoMatches = errors.Base("found no files matching pattern")

	// ErrCollisionWithoutForce means a destination exists and force is off.
	// The spelling is relied on by scripts; do not fix it.
	ErrCollisionWithoutForce = errors.Base("files with target names are already exist. run programm with --froce flag")

	// ErrInvalidPattern means a source or exclude pattern could not be compiled.
	ErrInvalidPattern = pattern.ErrInvalidPattern

	// ErrCopyFailed means at least one copy failed in strict mode.
	ErrCopyFailed = errors.Base("some files could not be copied")
)
