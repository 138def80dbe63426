// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package fsutil provides the operating system filesystem as a
// [billy.Filesystem].
package fsutil

import (
	"io/fs"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// OSFS is a [billy.Filesystem] that acts like the native filesystem: paths,
// relative or absolute, are passed to the operating system unchanged, and
// so are the names of files it returns.
type OSFS struct {
	osfs.ChrootOS
}

// OS returns a new [OSFS].
func OS() *OSFS { return &OSFS{} }

// Chroot returns a new filesystem rooted at path.
func (*OSFS) Chroot(path string) (billy.Filesystem, error) {
	return osfs.New(path), nil
}

// Root returns the root path of the filesystem.
func (*OSFS) Root() string { return "/" }

// Chmod changes the mode of the named file.
func (*OSFS) Chmod(name string, mode fs.FileMode) error { return os.Chmod(name, mode) }

var _ billy.Filesystem = (*OSFS)(nil)
