// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package testutil provides helpers for common testing scenarios.
package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"golang.org/x/tools/txtar"
)

// AssertEqual fails the test if got is not deeply equal to want.
// It prints both values for easy comparison upon failure.
func AssertEqual(t *testing.T, got, want any) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("values are not equal:\ngot:  %#v\nwant: %#v", got, want)
	}
}

// FSFromTxtar returns an in-memory filesystem holding the files of the
// txtar archive src.
func FSFromTxtar(t *testing.T, src string) billy.Filesystem {
	t.Helper()
	fsys := memfs.New()
	for _, f := range txtar.Parse([]byte(src)).Files {
		if err := util.WriteFile(fsys, f.Name, f.Data, 0o644); err != nil {
			t.Fatalf("failed to write %q: %v", f.Name, err)
		}
	}
	return fsys
}

// ReadFile returns the contents of name in fsys as a string.
func ReadFile(t *testing.T, fsys billy.Filesystem, name string) string {
	t.Helper()
	b, err := util.ReadFile(fsys, name)
	if err != nil {
		t.Fatalf("failed to read %q: %v", name, err)
	}
	return string(b)
}

// ListFiles returns the sorted paths of all regular files under root in fsys.
func ListFiles(t *testing.T, fsys billy.Filesystem, root string) []string {
	t.Helper()
	var files []string
	err := util.Walk(fsys, root, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.Mode().IsRegular() {
			files = append(files, filepath.ToSlash(path))
		}
		return nil
	})
	if err != nil {
		t.Fatalf("failed to walk %q: %v", root, err)
	}
	slices.Sort(files)
	return files
}

// WriteTree creates the files of the txtar archive src under dir on the
// local filesystem.
func WriteTree(t *testing.T, dir, src string) {
	t.Helper()
	for _, f := range txtar.Parse([]byte(src)).Files {
		name := filepath.Join(dir, filepath.FromSlash(f.Name))
		if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(name, f.Data, 0o644); err != nil {
			t.Fatal(err)
		}
	}
}
