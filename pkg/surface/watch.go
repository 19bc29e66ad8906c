package surface

import (
	"context"

	"github.com/go-drift/sunder/pkg/errors"
	"github.com/go-drift/sunder/pkg/theme"
)

// ThemeSetter is implemented by surfaces that accept a new theme.
type ThemeSetter interface {
	SetTheme(*theme.Theme)
}

// WatchTheme reloads the theme file at path into target whenever it
// changes, until ctx is done. Files that fail to load are reported as
// configuration errors and the current theme stays in place.
func WatchTheme(ctx context.Context, path string, target ThemeSetter) error {
	scope := errors.Scope{Op: "surface.WatchTheme"}
	switch t := target.(type) {
	case *Offscreen:
		scope.Backend = t.Backend().Kind()
	case *Document:
		scope.Backend = t.Backend().Kind()
	}
	return theme.Watch(ctx, path, target.SetTheme, func(err error) {
		scope.Report(errors.KindConfig, err)
	})
}
