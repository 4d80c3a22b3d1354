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

package rename_test

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/mmv/pkg/names"
	"github.com/walteh/mmv/pkg/rename"
)

func testContext(t *testing.T) context.Context {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return logger.WithContext(context.Background())
}

func TestMap(t *testing.T) {
	tests := []struct {
		name  string
		from  string
		to    string
		input []string
		want  rename.Mapping
	}{
		{
			name:  "directory_change",
			from:  "hello/a*",
			to:    "alo/#1",
			input: []string{"hello/aboba", "hello/arbus", "hello/akula"},
			want: rename.Mapping{
				"hello/aboba": "alo/boba",
				"hello/arbus": "alo/rbus",
				"hello/akula": "alo/kula",
			},
		},
		{
			name:  "two_captures",
			from:  "a*d*",
			to:    "#1_#2",
			input: []string{"abcdefg"},
			want:  rename.Mapping{"abcdefg": "bc_efg"},
		},
		{
			name:  "capture_unused",
			from:  "hell*",
			to:    "hell",
			input: []string{"hello"},
			want:  rename.Mapping{"hello": "hell"},
		},
		{
			name:  "no_captures",
			from:  "from",
			to:    "to",
			input: []string{"from"},
			want:  rename.Mapping{"from": "to"},
		},
		{
			name:  "identity",
			from:  "/d/*.*",
			to:    "/d/#1.#2",
			input: []string{"/d/a.jpg", "/d/file.txt"},
			want:  rename.Mapping{"/d/a.jpg": "/d/a.jpg", "/d/file.txt": "/d/file.txt"},
		},
		{
			name:  "capture_containing_reference",
			from:  "*-*",
			to:    "#2/#1",
			input: []string{"#2-x"},
			want:  rename.Mapping{"#2-x": "x/#2"},
		},
		{
			name:  "empty_input",
			from:  "*",
			to:    "#1",
			input: nil,
			want:  rename.Mapping{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext(t)
			got, err := rename.Map(ctx, tt.input, tt.from, tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, len(tt.input), "each source appears exactly once")
		})
	}
}

func TestMapDirectoryStability(t *testing.T) {
	ctx := testContext(t)
	to := "/out/new_name_#1.#2"

	got, err := rename.Map(ctx, []string{"/in/a.b/c.d", "/in/x.y"}, "/in/*.*", to)
	require.NoError(t, err)

	for src, dst := range got {
		if strings.Contains(src, "a.b/") {
			// a capture may carry a '/', which moves the name out of the directory
			continue
		}
		assert.Equal(t, names.DirectoryOf(to), names.DirectoryOf(dst), "destination %q", dst)
	}
}

func TestMapUnmatchedName(t *testing.T) {
	ctx := testContext(t)

	_, err := rename.Map(ctx, []string{"bad_thing"}, "bad_*_*", "#1")
	require.Error(t, err)
	assert.ErrorIs(t, err, rename.ErrUnmatchedName)
}

func TestMappingPairs(t *testing.T) {
	m := rename.Mapping{
		"/d/file.txt": "/e/new_name_file.txt",
		"/d/a.jpg":    "/e/new_name_a.jpg",
		"/d/ee.doc":   "/e/new_name_ee.doc",
	}

	pairs := m.Pairs()
	require.Len(t, pairs, 3)
	assert.Equal(t, "/d/a.jpg -> /e/new_name_a.jpg", pairs[0].String())
	assert.Equal(t, "/d/ee.doc -> /e/new_name_ee.doc", pairs[1].String())
	assert.Equal(t, "/d/file.txt -> /e/new_name_file.txt", pairs[2].String())

	assert.Equal(t, []string{"/e/new_name_a.jpg", "/e/new_name_ee.doc", "/e/new_name_file.txt"}, m.Destinations())
}
