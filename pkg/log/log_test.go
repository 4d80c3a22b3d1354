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

package log

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/mmv/pkg/rename"
	"gitlab.com/tozd/go/errors"
)

func TestConsole(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name     string
		op       func(t *testing.T, console *Console)
		wantLogs []string
	}{
		{
			name: "pairs",
			op: func(t *testing.T, console *Console) {
				console.Pairs([]rename.Pair{
					{Source: "/d/a.jpg", Destination: "/e/new_name_a.jpg"},
					{Source: "/d/ee.doc", Destination: "/e/new_name_ee.doc"},
				})
			},
			wantLogs: []string{
				"/d/a.jpg -> /e/new_name_a.jpg",
				"/d/ee.doc -> /e/new_name_ee.doc",
			},
		},
		{
			name: "error",
			op: func(t *testing.T, console *Console) {
				console.Error(errors.New("found no files matching pattern"))
			},
			wantLogs: []string{"found no files matching pattern"},
		},
		{
			name: "multiline_error",
			op: func(t *testing.T, console *Console) {
				console.Error(errors.New("first line\nsecond line"))
			},
			wantLogs: []string{"first line"},
		},
		{
			name: "nil_error",
			op: func(t *testing.T, console *Console) {
				console.Error(nil)
			},
			wantLogs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			console := New(buf)

			tt.op(t, console)

			got := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
			if buf.Len() == 0 {
				got = []string{}
			}
			assert.Equal(t, tt.wantLogs, got)
		})
	}
}

func TestConsolePlan(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	buf := &bytes.Buffer{}
	console := New(buf)

	err := console.Plan([]rename.Pair{
		{Source: "/d/one.txt", Destination: "/e/one.md"},
		{Source: "/d/two.txt", Destination: "/e/two.md"},
	}, map[string]bool{"/e/two.md": true})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3, "header plus one row per pair")
	assert.Contains(t, lines[0], "SOURCE")
	assert.Contains(t, lines[1], "/d/one.txt")
	assert.Contains(t, lines[1], "no")
	assert.Contains(t, lines[2], "/e/two.md")
	assert.Contains(t, lines[2], "yes")
}

func TestContext(t *testing.T) {
	console := New(&bytes.Buffer{})
	ctx := NewContext(context.Background(), console)
	assert.Same(t, console, FromContext(ctx))

	assert.Panics(t, func() { FromContext(context.Background()) })
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, isTerminal(&bytes.Buffer{}), "buffers are never terminals")

	f, err := os.Create(filepath.Join(t.TempDir(), "out.log"))
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, isTerminal(f), "regular files are not terminals")

	console := New(f)
	console.Pairs([]rename.Pair{{Source: "a", Destination: "b"}})
	content, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Equal(t, "a -> b\n", string(content), "no color codes outside terminals")
}
