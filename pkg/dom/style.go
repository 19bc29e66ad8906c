package dom

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-drift/sunder/pkg/theme"
)

// Class names used by the widgets.
const (
	ClassLabel  = "sunder-label"
	ClassButton = "sunder-button"
)

// Stylesheet renders th as CSS rules for the widget classes.
func Stylesheet(th *theme.Theme) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "body { background: %s; }\n", th.Background.CSS())
	fmt.Fprintf(&sb, ".%s { font-size: %spt; white-space: pre-wrap; color: %s; }\n",
		ClassLabel, px(th.Font.Size), th.Label.Foreground.CSS())
	writeBox(&sb, "."+ClassButton, th.Button)
	writeBox(&sb, "."+ClassButton+"[data-pressed=\"true\"]", th.ButtonPressed)
	return sb.String()
}

func writeBox(sb *strings.Builder, selector string, p theme.WidgetProperties) {
	fmt.Fprintf(sb, "%s { color: %s; background: %s; border: %spx solid %s; border-radius: %spx; padding: %spx; }\n",
		selector, p.Foreground.CSS(), p.Background.CSS(), px(p.BorderWidth), p.Border.CSS(), px(p.Radius), px(p.Padding))
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.Split(s, "\n")
}
