package cmd

import (
	"fmt"
	"os"

	"github.com/go-drift/sunder/pkg/theme"
)

func init() {
	RegisterCommand(&Command{
		Name:  "theme",
		Short: "Print a starter theme file",
		Long: `Print the built-in theme in YAML or TOML, ready to be edited and named
in sunder.yaml.

Flags:
  --format FMT    yaml or toml (default: yaml)
  --dark          Print the dark theme
  --out FILE      Output file (default: standard output)`,
		Usage: "sunder theme [--format yaml|toml] [--dark] [--out FILE]",
		Run:   runTheme,
	})
}

func runTheme(args []string) error {
	opts, err := parseOptions(args)
	if err != nil {
		return err
	}
	var format theme.Format
	switch opts.format {
	case "", "yaml", "yml":
		format = theme.FormatYAML
	case "toml":
		format = theme.FormatTOML
	default:
		return fmt.Errorf("unknown format %q (use yaml or toml)", opts.format)
	}

	th := theme.Default()
	if opts.dark {
		th = theme.DefaultDark()
	}
	data, err := th.Encode(format)
	if err != nil {
		return err
	}
	if opts.out == "" {
		_, err = stdout.Write(data)
		return err
	}
	return os.WriteFile(opts.out, data, 0o644)
}
