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

package text

import (
	"strconv"
	"strings"
)

// ReferencePrefix starts a back-reference such as #1.
const ReferencePrefix = '#'

// 🧩 segment is either literal text or a back-reference
type segment struct {
	// text is the literal, or the raw "#N" token for a reference
	text string
	// ref is the 1-based capture index, 0 for literals
	ref int
}

// 📝 Template is a destination pattern split into literals and #N references.
//
// A reference is '#' followed by the longest run of decimal digits. Parsing
// happens once, so text substituted for a reference is never scanned again.
type Template struct {
	raw      string
	segments []segment
}

// 🏭 ParseTemplate splits a destination pattern into segments
func ParseTemplate(raw string) *Template {
	t := &Template{raw: raw}

	var literal strings.Builder
	flush := func() {
		if literal.Len() > 0 {
			t.segments = append(t.segments, segment{text: literal.String()})
			literal.Reset()
		}
	}

	for i := 0; i < len(raw); {
		if raw[i] != ReferencePrefix {
			literal.WriteByte(raw[i])
			i++
			continue
		}

		j := i + 1
		for j < len(raw) && raw[j] >= '0' && raw[j] <= '9' {
			j++
		}

		n, err := strconv.Atoi(raw[i+1 : j])
		if j == i+1 || err != nil || n == 0 {
			// "#" without digits, "#0" and overflowing numbers stay literal
			literal.WriteString(raw[i:j])
			i = j
			continue
		}

		flush()
		t.segments = append(t.segments, segment{text: raw[i:j], ref: n})
		i = j
	}
	flush()

	return t
}

// String returns the pattern the template was parsed from.
func (t *Template) String() string {
	return t.raw
}

// MaxReference returns the highest capture index the template refers to.
func (t *Template) MaxReference() int {
	highest := 0
	for _, s := range t.segments {
		if s.ref > highest {
			highest = s.ref
		}
	}
	return highest
}

// 🔄 Expand substitutes captures into the template. References past the end
// of captures are kept as written.
func (t *Template) Expand(captures []string) string {
	var b strings.Builder
	b.Grow(len(t.raw))
	for _, s := range t.segments {
		if s.ref > 0 && s.ref <= len(captures) {
			b.WriteString(captures[s.ref-1])
			continue
		}
		b.WriteString(s.text)
	}
	return b.String()
}

// Expand parses raw and substitutes captures in one go.
func Expand(raw string, captures []string) string {
	return ParseTemplate(raw).Expand(captures)
}
