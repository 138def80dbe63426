// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package version reports build information of the running binary.
package version

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"sync"
)

// Info describes a build.
type Info struct {
	// Name is the command name.
	Name string
	// Version is the module version, "devel" for local builds.
	Version string
	// Commit is the VCS revision, if known.
	Commit string
	// Dirty is true when the working tree had uncommitted changes.
	Dirty bool
	// Go is the Go version used to build the binary.
	Go string
}

// String formats the build information for the -version flag.
func (i Info) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s", i.Name, i.Version)
	if i.Commit != "" {
		fmt.Fprintf(&sb, " (%s", i.Commit)
		if i.Dirty {
			sb.WriteString(", dirty")
		}
		sb.WriteString(")")
	}
	fmt.Fprintf(&sb, " built with %s\n", i.Go)
	return sb.String()
}

var info = sync.OnceValue(func() Info {
	i := Info{
		Name:    CmdName(),
		Version: "devel",
		Go:      runtime.Version(),
	}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return i
	}
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		i.Version = v
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			i.Commit = s.Value
		case "vcs.modified":
			i.Dirty = s.Value == "true"
		}
	}
	return i
})

// Version returns build information of the running binary.
func Version() Info { return info() }

// CmdName returns the base name of the running executable.
func CmdName() string {
	return strings.TrimSuffix(filepath.Base(os.Args[0]), ".exe")
}
