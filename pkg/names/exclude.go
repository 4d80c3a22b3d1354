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

package names

import (
	"context"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/mmv/pkg/pattern"
	"gitlab.com/tozd/go/errors"
)

// 🚫 Exclusions drops selected names whose base name matches a glob
type Exclusions struct {
	patterns []string
}

// 🏭 NewExclusions validates glob patterns. Empty patterns are ignored.
func NewExclusions(patterns []string) (*Exclusions, error) {
	e := &Exclusions{}
	for _, p := range patterns {
		if p == "" {
			continue
		}
		if !doublestar.ValidatePattern(p) {
			return nil, errors.WithDetails(pattern.ErrInvalidPattern, "exclude", p)
		}
		e.patterns = append(e.patterns, p)
	}
	return e, nil
}

// Excludes reports whether the base name of name matches any pattern.
func (e *Exclusions) Excludes(name string) bool {
	if e == nil {
		return false
	}
	base := BaseOf(name)
	for _, p := range e.patterns {
		if ok, _ := doublestar.Match(p, base); ok {
			return true
		}
	}
	return false
}

// Filter returns the names that are not excluded, keeping their order.
func (e *Exclusions) Filter(ctx context.Context, names []string) []string {
	if e == nil || len(e.patterns) == 0 {
		return names
	}

	kept := make([]string, 0, len(names))
	for _, name := range names {
		if e.Excludes(name) {
			zerolog.Ctx(ctx).Debug().Str("source", name).Msg("excluded")
			continue
		}
		kept = append(kept, name)
	}
	return kept
}
