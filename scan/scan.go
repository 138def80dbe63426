// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package scan finds the files under a directory tree that should carry a
// license header.
package scan

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"go.astrophena.name/licenser/logger"
)

// Files walks root in fsys in lexical order and returns the paths of
// regular files whose extension is one of extensions and whose parent
// directory path contains none of the excluded substrings.
//
// An empty extensions list selects nothing. A root that does not exist or
// cannot be read is an error; no partial result is returned.
func Files(ctx context.Context, fsys billy.Filesystem, root string, extensions, excluded []string) ([]string, error) {
	var files []string
	err := util.Walk(fsys, root, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		if info.IsDir() {
			// Every file below an excluded directory has it in its parent
			// path, so there is nothing to find there.
			if IsExcluded(path, excluded) {
				logger.Debug(ctx, "skipping excluded directory", slog.String("path", path))
				return filepath.SkipDir
			}
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		if IsExcluded(filepath.Dir(path), excluded) || !HasExtension(path, extensions) {
			return nil
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}
	return files, nil
}

// IsExcluded reports whether dir contains any of the excluded substrings.
func IsExcluded(dir string, excluded []string) bool {
	return slices.ContainsFunc(excluded, func(ex string) bool {
		return strings.Contains(dir, ex)
	})
}

// HasExtension reports whether the extension of path, as returned by
// [Ext], equals one of extensions.
func HasExtension(path string, extensions []string) bool {
	return slices.Contains(extensions, Ext(path))
}

// Ext returns the extension of the last element of path: the suffix
// starting at the final dot. Unlike [filepath.Ext], a name whose only dot
// is the leading one, like ".profile", has no extension.
func Ext(path string) string {
	base := filepath.Base(path)
	if base == "." || base == ".." {
		return ""
	}
	return filepath.Ext(strings.TrimPrefix(base, "."))
}
