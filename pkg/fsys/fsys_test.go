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

package fsys_test

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/mmv/pkg/fsys"
	"gitlab.com/tozd/go/errors"
)

func testContext(t *testing.T) context.Context {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return logger.WithContext(context.Background())
}

// 🧪 fillDirectory creates empty files in dir and returns their listed names
func fillDirectory(t *testing.T, dir string, names ...string) []string {
	listed := make([]string, 0, len(names))
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644), "creating %s", name)
		listed = append(listed, dir+"/"+name)
	}
	sort.Strings(listed)
	return listed
}

func TestListDirectory(t *testing.T) {
	ctx := testContext(t)
	fs := fsys.NewOS()
	dir := t.TempDir()

	entries, err := fs.ListDirectory(ctx, dir+"/")
	require.NoError(t, err, "listing empty directory")
	assert.Empty(t, entries, "empty directory should have no entries")

	want := fillDirectory(t, dir, "aboba", "cat", "file", "yellow")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	want = append(want, dir+"/sub")
	sort.Strings(want)

	entries, err = fs.ListDirectory(ctx, dir+"/")
	require.NoError(t, err, "listing directory")
	sort.Strings(entries)
	assert.Equal(t, want, entries, "entries should be prefixed with the directory as given")
}

func TestListDirectoryMissing(t *testing.T) {
	ctx := testContext(t)
	fs := fsys.NewOS()

	_, err := fs.ListDirectory(ctx, filepath.Join(t.TempDir(), "i_am_not_exist")+"/")
	require.Error(t, err, "missing directory should fail")
	assert.True(t, errors.Is(err, os.ErrNotExist), "error should wrap not-exist")
}

func TestCopyFile(t *testing.T) {
	ctx := testContext(t)
	fs := fsys.NewOS()
	from := t.TempDir()
	to := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(from, "script.sh"), []byte("echo hi"), 0o750))

	err := fs.CopyFile(ctx, from+"/script.sh", to+"/run.sh", false)
	require.NoError(t, err, "copying file")

	content, err := os.ReadFile(filepath.Join(to, "run.sh"))
	require.NoError(t, err)
	assert.Equal(t, "echo hi", string(content), "content should be copied")

	info, err := os.Stat(filepath.Join(to, "run.sh"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o750), info.Mode().Perm(), "permissions should be copied")
}

func TestCopyFileOverwrite(t *testing.T) {
	tests := []struct {
		name      string
		overwrite bool
		wantErr   bool
		want      string
	}{
		{
			name:      "no_clobber",
			overwrite: false,
			wantErr:   true,
			want:      "old",
		},
		{
			name:      "force",
			overwrite: true,
			want:      "new",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext(t)
			fs, mem := fsys.NewMemory()

			require.NoError(t, afero.WriteFile(mem, "/src/a", []byte("new"), 0o644))
			require.NoError(t, afero.WriteFile(mem, "/dst/a", []byte("old"), 0o644))

			err := fs.CopyFile(ctx, "/src/a", "/dst/a", tt.overwrite)
			if tt.wantErr {
				require.Error(t, err, "existing destination should not be replaced")
			} else {
				require.NoError(t, err)
			}

			content, err := afero.ReadFile(mem, "/dst/a")
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(content))
		})
	}
}

func TestCopyFileOntoItself(t *testing.T) {
	ctx := testContext(t)
	fs := fsys.NewOS()
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep"), []byte("precious"), 0o644))

	require.NoError(t, fs.CopyFile(ctx, dir+"/keep", dir+"/keep", true), "textual self copy")
	require.NoError(t, fs.CopyFile(ctx, dir+"/keep", dir+"//keep", true), "same file through another spelling")

	content, err := os.ReadFile(filepath.Join(dir, "keep"))
	require.NoError(t, err)
	assert.Equal(t, "precious", string(content), "self copy must not truncate the source")
}

func TestCopyFileErrors(t *testing.T) {
	ctx := testContext(t)
	fs := fsys.NewOS()
	dir := t.TempDir()

	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "file"), nil, 0o644))

	err := fs.CopyFile(ctx, dir+"/missing", dir+"/other", false)
	assert.Error(t, err, "missing source should fail")

	err = fs.CopyFile(ctx, dir+"/sub", dir+"/sub2", false)
	assert.ErrorIs(t, err, fsys.ErrNotRegular, "directories are not copied")

	err = fs.CopyFile(ctx, dir+"/file", dir+"/no/such/dir/file", false)
	assert.Error(t, err, "destination directory is not created")
}
