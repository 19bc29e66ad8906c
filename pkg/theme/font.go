package theme

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	sourcesMu sync.Mutex
	sources   = make(map[string]*text.FontSource)
)

// Face resolves the theme font. Font sources are loaded once per path and
// shared by every theme that names them.
func (t *Theme) Face() (text.Face, error) {
	source, err := fontSource(t.Font.Path)
	if err != nil {
		return nil, err
	}
	return source.Face(t.Font.Size), nil
}

func fontSource(path string) (*text.FontSource, error) {
	sourcesMu.Lock()
	defer sourcesMu.Unlock()
	if s, ok := sources[path]; ok {
		return s, nil
	}
	var (
		s   *text.FontSource
		err error
	)
	if path == "" {
		s, err = text.NewFontSource(goregular.TTF)
	} else {
		s, err = text.NewFontSourceFromFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("load font %q: %w", path, err)
	}
	sources[path] = s
	return s, nil
}
