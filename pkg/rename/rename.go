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

package rename

import (
	"context"
	"sort"

	"github.com/rs/zerolog"
	"github.com/walteh/mmv/pkg/pattern"
	"github.com/walteh/mmv/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// ErrUnmatchedName is returned when a name given to the mapper does not match
// the source pattern.
var ErrUnmatchedName = errors.Base("name does not match source pattern")

// 🔗 Pair is one planned copy
type Pair struct {
	Source      string
	Destination string
}

// String renders the pair as a log line.
func (p Pair) String() string {
	return p.Source + " -> " + p.Destination
}

// 🗺️ Mapping associates each source name with its destination name
type Mapping map[string]string

// Pairs returns the mapping sorted by source.
func (m Mapping) Pairs() []Pair {
	pairs := make([]Pair, 0, len(m))
	for src, dst := range m {
		pairs = append(pairs, Pair{Source: src, Destination: dst})
	}
	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].Source < pairs[j].Source
	})
	return pairs
}

// Destinations returns every destination, in source order.
func (m Mapping) Destinations() []string {
	pairs := m.Pairs()
	dsts := make([]string, len(pairs))
	for i, p := range pairs {
		dsts[i] = p.Destination
	}
	return dsts
}

// 🏗️ Mapper turns selected source names into destination names
type Mapper struct {
	matcher  *pattern.Matcher
	template *text.Template
}

// 🏭 NewMapper compiles the source pattern and parses the destination pattern
func NewMapper(from, to string) (*Mapper, error) {
	matcher, err := pattern.Compile(from)
	if err != nil {
		return nil, err
	}
	return FromMatcher(matcher, to), nil
}

// FromMatcher builds a mapper around an already compiled source pattern.
func FromMatcher(matcher *pattern.Matcher, to string) *Mapper {
	return &Mapper{
		matcher:  matcher,
		template: text.ParseTemplate(to),
	}
}

// Destination returns the destination for a single source name.
func (m *Mapper) Destination(name string) (string, error) {
	captures, ok := m.matcher.Captures(name)
	if !ok {
		return "", errors.WithDetails(ErrUnmatchedName, "name", name, "pattern", m.matcher.Pattern())
	}
	return m.template.Expand(captures), nil
}

// 🔄 Map builds the mapping for names. Every name must match the source pattern.
func (m *Mapper) Map(ctx context.Context, names []string) (Mapping, error) {
	logger := zerolog.Ctx(ctx)

	if highest := m.template.MaxReference(); highest > m.matcher.NumCaptures() {
		logger.Debug().
			Int("captures", m.matcher.NumCaptures()).
			Int("max_reference", highest).
			Msg("destination refers past the last capture, keeping those references as written")
	}

	mapping := make(Mapping, len(names))
	for _, name := range names {
		dst, err := m.Destination(name)
		if err != nil {
			return nil, errors.Errorf("mapping %q: %w", name, err)
		}
		mapping[name] = dst
		logger.Debug().Str("source", name).Str("destination", dst).Msg("mapped")
	}

	return mapping, nil
}

// Map is a shortcut for NewMapper followed by Mapper.Map.
func Map(ctx context.Context, names []string, from, to string) (Mapping, error) {
	m, err := NewMapper(from, to)
	if err != nil {
		return nil, err
	}
	return m.Map(ctx, names)
}
