// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package scan

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"go.astrophena.name/licenser/fsutil"
	"go.astrophena.name/licenser/testutil"
)

const tree = `
-- a/b.cpp --
int main(){}
-- a/cmake/c.cpp --
// generated
-- a/d.txt --
notes
-- a/e.hpp --
#pragma once
-- a/external/lib/f.hpp --
#pragma once
-- a/src/g.cpp --
void g(){}
-- a/src/.cpp --
dotfile
-- a/src/h.cpp.bak --
backup
-- a/build-cmake-debug/i.cpp --
object
`

func TestFiles(t *testing.T) {
	cases := map[string]struct {
		root       string
		extensions []string
		excluded   []string
		want       []string
	}{
		"single extension and exclusion": {
			root:       "a",
			extensions: []string{".cpp"},
			excluded:   []string{"cmake"},
			want:       []string{"a/b.cpp", "a/src/g.cpp"},
		},
		"default lists": {
			root:       "a",
			extensions: []string{".cpp", ".hpp"},
			excluded:   []string{"cmake", "external"},
			want:       []string{"a/b.cpp", "a/e.hpp", "a/src/g.cpp"},
		},
		"no exclusions": {
			root:       "a",
			extensions: []string{".hpp"},
			want:       []string{"a/e.hpp", "a/external/lib/f.hpp"},
		},
		"exclusion matches any part of the path": {
			root:       "a",
			extensions: []string{".cpp"},
			excluded:   []string{"src"},
			want:       []string{"a/b.cpp", "a/build-cmake-debug/i.cpp", "a/cmake/c.cpp"},
		},
		"exclusion matching the root excludes everything": {
			root:       "a",
			extensions: []string{".cpp"},
			excluded:   []string{"a"},
			want:       nil,
		},
		"empty extension list selects nothing": {
			root:       "a",
			extensions: nil,
			want:       nil,
		},
		"root is a subdirectory": {
			root:       "a/src",
			extensions: []string{".cpp"},
			want:       []string{"a/src/g.cpp"},
		},
		"root is a file": {
			root:       "a/b.cpp",
			extensions: []string{".cpp"},
			want:       []string{"a/b.cpp"},
		},
		"root is current directory": {
			root:       ".",
			extensions: []string{".txt"},
			want:       []string{"a/d.txt"},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			fsys := testutil.FSFromTxtar(t, tree)
			got, err := Files(context.Background(), fsys, tc.root, tc.extensions, tc.excluded)
			if err != nil {
				t.Fatal(err)
			}
			testutil.AssertEqual(t, got, tc.want)
		})
	}
}

func TestFilesMissingRoot(t *testing.T) {
	fsys := testutil.FSFromTxtar(t, tree)
	_, err := Files(context.Background(), fsys, "missing", []string{".cpp"}, nil)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("want fs.ErrNotExist, got %v", err)
	}
}

func TestFilesCanceled(t *testing.T) {
	fsys := testutil.FSFromTxtar(t, tree)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Files(ctx, fsys, "a", []string{".cpp"}, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}

func TestFilesOS(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteTree(t, dir, tree)
	if err := os.Symlink(filepath.Join(dir, "a", "b.cpp"), filepath.Join(dir, "a", "link.cpp")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	root := filepath.Join(dir, "a")
	got, err := Files(context.Background(), fsutil.OS(), root, []string{".cpp"}, []string{"cmake"})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		filepath.Join(root, "b.cpp"),
		filepath.Join(root, "src", "g.cpp"),
	}
	testutil.AssertEqual(t, got, want)
}

func TestExt(t *testing.T) {
	cases := map[string]string{
		"a/b.cpp":        ".cpp",
		"a/b.tar.gz":     ".gz",
		"a/.profile":     "",
		"a/.hidden.hpp":  ".hpp",
		"a/..double":     ".double",
		"a/Makefile":     "",
		"a/trailingdot.": ".",
		".":              "",
		"..":             "",
	}
	for path, want := range cases {
		t.Run(path, func(t *testing.T) {
			testutil.AssertEqual(t, Ext(path), want)
		})
	}
}

func TestIsExcluded(t *testing.T) {
	cases := map[string]struct {
		dir      string
		excluded []string
		want     bool
	}{
		"empty list":   {dir: "a/cmake", want: false},
		"substring":    {dir: "a/my-cmake-dir", excluded: []string{"cmake"}, want: true},
		"second entry": {dir: "a/external/x", excluded: []string{"cmake", "external"}, want: true},
		"no match":     {dir: "a/src", excluded: []string{"cmake", "external"}, want: false},
		"case matters": {dir: "a/CMake", excluded: []string{"cmake"}, want: false},
		"empty entry":  {dir: "a/src", excluded: []string{""}, want: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, IsExcluded(tc.dir, tc.excluded), tc.want)
		})
	}
}
