package cmd

import (
	"fmt"
	"os"

	"github.com/go-drift/sunder/cmd/sunder/internal/config"
	"github.com/go-drift/sunder/pkg/graphics"
	"github.com/go-drift/sunder/pkg/surface"
)

func init() {
	RegisterCommand(&Command{
		Name:  "html",
		Short: "Render the configured widget as an HTML page",
		Long: `Render the widget described in sunder.yaml with the DOM backend and
write a standalone HTML page with the theme stylesheet.

Flags:
  --config FILE   Configuration file (default: sunder.yaml)
  --out FILE      Output page (default: standard output)
  --pressed       Press the widget before the final frame`,
		Usage: "sunder html [--config FILE] [--out FILE] [--pressed]",
		Run:   runHTML,
	})
}

func runHTML(args []string) error {
	opts, err := parseOptions(args)
	if err != nil {
		return err
	}
	cfg, err := config.Resolve(opts.config)
	if err != nil {
		return err
	}

	doc := surface.NewDocument(cfg.Title, cfg.Theme)
	doc.SetSize(graphics.Size{Width: uint32(cfg.Width), Height: uint32(cfg.Height)})
	m := newHTMLMount(doc, cfg.Widget)
	if err := drawOnce(m, opts.pressed || cfg.Widget.Pressed); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	if opts.out == "" {
		_, err := doc.WriteTo(stdout)
		return err
	}
	f, err := os.Create(opts.out)
	if err != nil {
		return err
	}
	if _, err := doc.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
