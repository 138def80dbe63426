// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package config loads licenser settings from a txtar archive.
//
// The archive can contain these files:
//
//   - extensions.json: a JSON array of file extensions to process, like
//     [".cpp", ".hpp"].
//   - exclusions.json: a JSON array of substrings; files whose parent
//     directory path contains one of them are skipped.
//   - header.txt: the header text, prepended verbatim.
//
// Files missing from the archive keep their previous values.
package config

import (
	"encoding/json"
	"fmt"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"golang.org/x/tools/txtar"

	"go.astrophena.name/licenser"
)

// DefaultPath is the archive looked up in the current directory when no
// path is given.
const DefaultPath = ".licenser.txtar"

// Load reads the archive at path from fsys and applies it on top of base.
func Load(fsys billy.Filesystem, path string, base licenser.Config) (licenser.Config, error) {
	b, err := util.ReadFile(fsys, path)
	if err != nil {
		return base, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := Parse(b, base)
	if err != nil {
		return base, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse applies the txtar archive data on top of base.
func Parse(data []byte, base licenser.Config) (licenser.Config, error) {
	cfg := base
	for _, f := range txtar.Parse(data).Files {
		switch f.Name {
		case "extensions.json":
			exts, err := parseList(f)
			if err != nil {
				return base, err
			}
			cfg.Extensions = exts
		case "exclusions.json":
			excluded, err := parseList(f)
			if err != nil {
				return base, err
			}
			cfg.Excluded = excluded
		case "header.txt":
			cfg.Header = string(f.Data)
		default:
			return base, fmt.Errorf("unknown file %q", f.Name)
		}
	}
	return cfg, nil
}

// parseList decodes into a fresh slice so the base configuration's backing
// arrays are never written to.
func parseList(f txtar.File) ([]string, error) {
	var list []string
	if err := json.Unmarshal(f.Data, &list); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", f.Name, err)
	}
	return list, nil
}
