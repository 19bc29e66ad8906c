package cmd

import (
	"fmt"

	"github.com/go-drift/sunder/cmd/sunder/internal/config"
	"github.com/go-drift/sunder/pkg/engine"
	"github.com/go-drift/sunder/pkg/surface"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Draw the configured widget to a PNG",
		Long: `Draw the widget described in sunder.yaml with the canvas backend and
save the result as a PNG image.

Flags:
  --config FILE   Configuration file (default: sunder.yaml)
  --out FILE      Output image (default: <title>.png)
  --pressed       Press the widget before the final frame`,
		Usage: "sunder render [--config FILE] [--out FILE] [--pressed]",
		Run:   runRender,
	})
}

func runRender(args []string) error {
	opts, err := parseOptions(args)
	if err != nil {
		return err
	}
	cfg, err := config.Resolve(opts.config)
	if err != nil {
		return err
	}
	out := opts.out
	if out == "" {
		out = cfg.Title + ".png"
	}

	off := surface.NewOffscreen(cfg.Width, cfg.Height, cfg.Theme)
	defer off.Close()
	m := newCanvasMount(off, cfg.Widget, engine.WithErrorPolicy(engine.AbortOnError))
	if err := drawOnce(m, opts.pressed || cfg.Widget.Pressed); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	if err := off.SavePNG(out); err != nil {
		return fmt.Errorf("failed to save %s: %w", out, err)
	}
	fmt.Fprintf(stdout, "Wrote %s (%dx%d)\n", out, cfg.Width, cfg.Height)
	return nil
}
