// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Licenser prepends a license header to source files.

Usage:

	licenser [flags] [root ...]

It recursively walks each root (the current directory by default) and adds
the header to every regular file whose extension is in the extension list
and whose parent directory path contains none of the excluded substrings.
By default these are .cpp and .hpp files outside of cmake and external
directories, and the header is the MIT license.

Every processed file is printed on its own line, prefixed with "!! " if the
header could not be added. The last line is the number of files considered.

The header is added unconditionally: running licenser twice over the same
tree adds it twice.

Settings can be overridden with a txtar archive passed with -config, or
read from .licenser.txtar in the current directory if it exists. The
archive can contain these files:

  - extensions.json: A JSON array of file extensions to process.
  - exclusions.json: A JSON array of directory path substrings to skip.
  - header.txt: The header text, prepended verbatim.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/licenser/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
