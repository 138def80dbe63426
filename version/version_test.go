// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package version

import (
	"runtime"
	"strings"
	"testing"

	"go.astrophena.name/licenser/testutil"
)

func TestInfoString(t *testing.T) {
	cases := map[string]struct {
		in   Info
		want string
	}{
		"devel": {
			in:   Info{Name: "licenser", Version: "devel", Go: "go1.26.0"},
			want: "licenser devel built with go1.26.0\n",
		},
		"with commit": {
			in:   Info{Name: "licenser", Version: "v1.0.0", Commit: "abc123", Go: "go1.26.0"},
			want: "licenser v1.0.0 (abc123) built with go1.26.0\n",
		},
		"dirty": {
			in:   Info{Name: "licenser", Version: "devel", Commit: "abc123", Dirty: true, Go: "go1.26.0"},
			want: "licenser devel (abc123, dirty) built with go1.26.0\n",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, tc.in.String(), tc.want)
		})
	}
}

func TestVersion(t *testing.T) {
	v := Version()
	testutil.AssertEqual(t, v.Go, runtime.Version())
	if v.Version == "" {
		t.Fatal("Version is empty")
	}
	if !strings.HasPrefix(v.String(), v.Name+" ") {
		t.Fatalf("String() = %q, want prefix %q", v.String(), v.Name+" ")
	}
}
