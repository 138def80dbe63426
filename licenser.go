// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package licenser adds a license header to every source file of a
// project.
//
// Files are selected with [scan.Files] and rewritten with
// [header.Prepend]. There is no check for an existing header: running
// twice over the same tree adds the header twice.
package licenser

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/go-git/go-billy/v5"

	"go.astrophena.name/licenser/fsutil"
	"go.astrophena.name/licenser/header"
	"go.astrophena.name/licenser/logger"
	"go.astrophena.name/licenser/scan"
	"go.astrophena.name/licenser/syncx"
)

//go:embed mit.txt
var mitHeader string

// Config describes a run.
type Config struct {
	// Roots are the directories to scan. "." if empty.
	Roots []string
	// Extensions select files by exact extension match, like ".cpp".
	Extensions []string
	// Excluded skips files whose parent directory path contains any of
	// these substrings.
	Excluded []string
	// Header is the text prepended to every selected file.
	Header string
}

// DefaultConfig returns the configuration used when nothing overrides it:
// C++ sources and headers in the current directory, skipping CMake and
// vendored code, with the MIT license header.
func DefaultConfig() Config {
	return Config{
		Roots:      []string{"."},
		Extensions: []string{".cpp", ".hpp"},
		Excluded:   []string{"cmake", "external"},
		Header:     mitHeader,
	}
}

// Result lists what a run did.
type Result struct {
	// Files are all files considered, in processing order.
	Files []string
	// Failed are the files the header could not be added to.
	Failed []string
}

// ErrFailed is returned by [Result.Err] when some files failed.
var ErrFailed = errors.New("failed to add license header")

// Err returns an error wrapping [ErrFailed] if any file failed.
func (r *Result) Err() error {
	if len(r.Failed) == 0 {
		return nil
	}
	return fmt.Errorf("%w to %d of %d files", ErrFailed, len(r.Failed), len(r.Files))
}

// Run scans every root of cfg and prepends cfg.Header to each file found,
// writing one line per file to w. Lines of failed files start with "!! ".
// The report ends with an empty line and the number of files considered.
//
// A scan error aborts the run before any file is changed. Per-file failures
// are reported and do not stop the run.
func Run(ctx context.Context, fsys billy.Filesystem, cfg Config, w io.Writer) (*Result, error) {
	roots := cfg.Roots
	if len(roots) == 0 {
		roots = []string{"."}
	}

	var (
		seen  syncx.Set[string]
		files []string
	)
	for _, root := range roots {
		found, err := scan.Files(ctx, fsys, root, cfg.Extensions, cfg.Excluded)
		if err != nil {
			return nil, err
		}
		for _, f := range found {
			if seen.Add(pathKey(f)) {
				files = append(files, f)
			}
		}
	}
	logger.Debug(ctx, "scan finished", slog.Int("files", len(files)))

	res := &Result{Files: files}
	for _, f := range files {
		if err := header.Prepend(fsys, f, cfg.Header); err != nil {
			logger.Warn(ctx, "adding header failed", slog.String("path", f), slog.Any("error", err))
			res.Failed = append(res.Failed, f)
			fmt.Fprint(w, "!! ")
		}
		fmt.Fprintln(w, f)
	}
	fmt.Fprintf(w, "\n%d\n", len(files))

	return res, nil
}

// pathKey identifies a file independently of the root it was reached from.
func pathKey(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}

// OSFilesystem returns a filesystem backed by the operating system that
// accepts both relative and absolute paths and keeps permission bits of
// rewritten files.
func OSFilesystem() billy.Filesystem { return fsutil.OS() }
