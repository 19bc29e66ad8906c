// Package surface provides hosts that implement engine.System.
//
// [Offscreen] draws canvas widgets into an in-memory gg image that can be
// saved as PNG. [Document] renders HTML widgets into the body of a
// standalone HTML document. Both coalesce redraw requests into a single
// pending frame and take a new theme through SetTheme, which is what
// [WatchTheme] calls on hot reload.
package surface

import "errors"

// ErrClosed is returned when drawing into a closed surface.
var ErrClosed = errors.New("surface: closed")
