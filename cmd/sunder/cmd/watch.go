package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/go-drift/sunder/cmd/sunder/internal/config"
	"github.com/go-drift/sunder/pkg/canvas"
	"github.com/go-drift/sunder/pkg/engine"
	"github.com/go-drift/sunder/pkg/sunder"
	"github.com/go-drift/sunder/pkg/surface"
)

func init() {
	RegisterCommand(&Command{
		Name:  "watch",
		Short: "Redraw to a PNG whenever the theme changes",
		Long: `Draw the configured widget to a PNG and keep redrawing it whenever the
theme file named in sunder.yaml changes. Stop with Ctrl-C.

Flags:
  --config FILE   Configuration file (default: sunder.yaml)
  --out FILE      Output image (default: <title>.png)
  --debug ADDR    Serve frame counters over HTTP on ADDR (e.g. :9090)`,
		Usage: "sunder watch [--config FILE] [--out FILE] [--debug ADDR]",
		Run:   runWatch,
	})
}

// savingOffscreen writes the image after every successful frame.
type savingOffscreen struct {
	*surface.Offscreen
	path string
}

func (s savingOffscreen) Draw(fn func(*canvas.Backend, engine.DrawParameters) (struct{}, error)) (struct{}, error) {
	out, err := s.Offscreen.Draw(fn)
	if err != nil {
		return out, err
	}
	if err := s.SavePNG(s.path); err != nil {
		return out, err
	}
	sunder.Logger().Info("frame saved", "path", s.path)
	return out, nil
}

func runWatch(args []string) error {
	opts, err := parseOptions(args)
	if err != nil {
		return err
	}
	cfg, err := config.Resolve(opts.config)
	if err != nil {
		return err
	}
	if cfg.ThemePath == "" {
		return errors.New("sunder.yaml does not name a theme file to watch")
	}
	out := opts.out
	if out == "" {
		out = cfg.Title + ".png"
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return watch(ctx, cfg, out, opts.debug)
}

func watch(ctx context.Context, cfg *config.Resolved, out, debugAddr string) error {
	off := surface.NewOffscreen(cfg.Width, cfg.Height, cfg.Theme)
	defer off.Close()
	sys := savingOffscreen{Offscreen: off, path: out}
	m := newCanvasMount(sys, cfg.Widget)

	fmt.Fprintf(stdout, "Watching %s, writing %s\n", cfg.ThemePath, out)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return m.Run(ctx) })
	g.Go(func() error { return surface.WatchTheme(ctx, cfg.ThemePath, off) })
	if debugAddr != "" {
		g.Go(func() error { return engine.ServeDebug(ctx, debugAddr, m, nil) })
	}
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
