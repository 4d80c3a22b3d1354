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

// Package pattern compiles mmv wildcard patterns.
//
// The only metacharacter is '*', which matches any run of bytes, including
// the empty string and '/'. Every other byte matches itself. A match always
// covers the whole name.
package pattern

import (
	"regexp"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// Wildcard is the only metacharacter in a source pattern.
const Wildcard = '*'

// ErrInvalidPattern is returned when a pattern cannot be compiled.
var ErrInvalidPattern = errors.Base("invalid pattern")

// 🎯 Matcher is a compiled source pattern
type Matcher struct {
	pattern  string
	re       *regexp.Regexp
	captures int
}

// 🏭 Compile turns a wildcard pattern into an anchored Matcher
func Compile(pattern string) (*Matcher, error) {
	expr := Expression(pattern)
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, errors.WithDetails(ErrInvalidPattern, "pattern", pattern, "cause", err.Error())
	}
	return &Matcher{
		pattern:  pattern,
		re:       re,
		captures: strings.Count(pattern, string(Wildcard)),
	}, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(pattern string) *Matcher {
	m, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return m
}

// Expression returns the regular expression a pattern compiles to. Literal
// runs are quoted, each wildcard becomes a greedy group.
func Expression(pattern string) string {
	var b strings.Builder
	b.WriteString(`(?s)^`)
	for i, literal := range strings.Split(pattern, string(Wildcard)) {
		if i > 0 {
			b.WriteString(`(.*)`)
		}
		b.WriteString(regexp.QuoteMeta(literal))
	}
	b.WriteString(`$`)
	return b.String()
}

// Pattern returns the source text the matcher was compiled from.
func (m *Matcher) Pattern() string {
	return m.pattern
}

// NumCaptures is the number of wildcards in the pattern.
func (m *Matcher) NumCaptures() int {
	return m.captures
}

// 🔍 Matches reports whether name matches the whole pattern
func (m *Matcher) Matches(name string) bool {
	return m.re.MatchString(name)
}

// 🔍 Captures matches name and returns one string per wildcard, in order.
func (m *Matcher) Captures(name string) ([]string, bool) {
	sub := m.re.FindStringSubmatch(name)
	if sub == nil {
		return nil, false
	}
	return sub[1:], true
}
