// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package header prepends license headers to files.
package header

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
)

// ErrOpen is matched by every [*OpenError].
var ErrOpen = errors.New("cannot open file")

// OpenError records a file that could not be opened for reading or writing.
type OpenError struct {
	Op   string // "read" or "write"
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("open %s for %s: %v", e.Path, e.Op, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// Is reports whether target is [ErrOpen].
func (e *OpenError) Is(target error) bool { return target == ErrOpen }

// Prepend writes text followed by the current contents of path back to
// path.
//
// The new contents go to a temporary file in the same directory that then
// replaces path, so the original stays intact if anything fails. Prepend
// does not check whether the file already starts with text: calling it
// twice adds the header twice.
func Prepend(fsys billy.Filesystem, path, text string) error {
	content, mode, err := read(fsys, path)
	if err != nil {
		return err
	}
	if err := checkWritable(fsys, path); err != nil {
		return err
	}

	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := fsys.TempFile(dir, "."+base+".")
	if err != nil {
		return &OpenError{Op: "write", Path: path, Err: err}
	}
	tmpName := tmp.Name()

	if err := write(tmp, text, content); err != nil {
		fsys.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if ch, ok := fsys.(chmoder); ok {
		if err := ch.Chmod(tmpName, mode); err != nil {
			fsys.Remove(tmpName)
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	if err := fsys.Rename(tmpName, path); err != nil {
		fsys.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

// chmoder is the part of [billy.Change] Prepend needs to keep the
// permission bits of the replaced file.
type chmoder interface {
	Chmod(name string, mode fs.FileMode) error
}

func read(fsys billy.Filesystem, path string) ([]byte, fs.FileMode, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, 0, &OpenError{Op: "read", Path: path, Err: err}
	}
	defer f.Close()

	info, err := fsys.Stat(path)
	if err != nil {
		return nil, 0, fmt.Errorf("reading %s: %w", path, err)
	}
	content, err := io.ReadAll(f)
	if err != nil {
		return nil, 0, fmt.Errorf("reading %s: %w", path, err)
	}
	return content, info.Mode().Perm(), nil
}

// checkWritable opens path for writing without truncating it. Replacing a
// file only needs write access to its directory, so a read-only file would
// otherwise be rewritten.
func checkWritable(fsys billy.Filesystem, path string) error {
	f, err := fsys.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return &OpenError{Op: "write", Path: path, Err: err}
	}
	return f.Close()
}

func write(f billy.File, text string, content []byte) error {
	if _, err := io.WriteString(f, text); err != nil {
		f.Close()
		return err
	}
	if _, err := f.Write(content); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
