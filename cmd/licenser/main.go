// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log/slog"

	"github.com/go-git/go-billy/v5"
	"github.com/lmittmann/tint"

	"go.astrophena.name/licenser"
	"go.astrophena.name/licenser/cli"
	"go.astrophena.name/licenser/config"
	"go.astrophena.name/licenser/logger"
)

func main() { cli.Main(new(app)) }

type app struct {
	configPath string
	verbose    bool
	strict     bool

	// fsys is the OS filesystem if nil.
	fsys billy.Filesystem
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.StringVar(&a.configPath, "config", "", "Read settings from txtar archive `file` (default "+config.DefaultPath+" if it exists).")
	fs.BoolVar(&a.verbose, "v", false, "Enable debug logging.")
	fs.BoolVar(&a.strict, "strict", false, "Exit with non-zero status if the header could not be added to some files.")
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)

	l := logger.New(nil)
	if a.verbose {
		l.Level.Set(slog.LevelDebug)
	}
	l.Attach(tint.NewHandler(env.Stderr, &tint.Options{
		Level:      l.Level,
		TimeFormat: "15:04:05",
		NoColor:    !env.IsTerminal(env.Stderr),
	}))
	ctx = logger.Put(ctx, l)

	if a.fsys == nil {
		a.fsys = licenser.OSFilesystem()
	}

	cfg, err := a.loadConfig(ctx)
	if err != nil {
		return err
	}
	if len(env.Args) > 0 {
		cfg.Roots = env.Args
	}

	res, err := licenser.Run(ctx, a.fsys, cfg, env.Stdout)
	if err != nil {
		return err
	}
	if a.strict {
		return res.Err()
	}
	return nil
}

func (a *app) loadConfig(ctx context.Context) (licenser.Config, error) {
	cfg := licenser.DefaultConfig()
	path := a.configPath
	if path == "" {
		if _, err := a.fsys.Stat(config.DefaultPath); errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		path = config.DefaultPath
	}
	logger.Debug(ctx, "loading config", slog.String("path", path))
	return config.Load(a.fsys, path, cfg)
}
