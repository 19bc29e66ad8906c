package theme

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	sundererrors "github.com/go-drift/sunder/pkg/errors"
	"github.com/go-drift/sunder/pkg/graphics"
)

func TestDefaultThemesValidate(t *testing.T) {
	for name, th := range map[string]*Theme{"light": Default(), "dark": DefaultDark()} {
		if err := th.Validate(); err != nil {
			t.Errorf("%s: Validate() = %v", name, err)
		}
	}
}

func TestDecodeYAMLOverlaysDefault(t *testing.T) {
	data := []byte(`
version: v1.2.0
font:
  size: 20
button:
  background: "#ff0000"
  padding: 4
`)
	got, err := Decode(data, FormatYAML)
	if err != nil {
		t.Fatal(err)
	}

	want := Default()
	want.Version = "v1.2.0"
	want.Font.Size = 20
	want.Button = WidgetProperties{Background: graphics.RGB(0xFF, 0, 0), Padding: 4}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Decode mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeTOML(t *testing.T) {
	data := []byte(`
version = "v1.0.0"
background = "#000000"

[label]
foreground = "#ffffff80"
`)
	got, err := Decode(data, FormatTOML)
	if err != nil {
		t.Fatal(err)
	}
	if got.Background != graphics.ColorBlack {
		t.Errorf("Background = %s, want #000000", got.Background.Hex())
	}
	if want := graphics.ColorWhite.WithAlpha8(0x80); got.Label.Foreground != want {
		t.Errorf("Label.Foreground = %s, want %s", got.Label.Foreground.Hex(), want.Hex())
	}
	if got.Font.Size != Default().Font.Size {
		t.Errorf("Font.Size = %v, want default", got.Font.Size)
	}
}

func TestDecodeEmptyUsesDefault(t *testing.T) {
	got, err := Decode(nil, FormatYAML)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Default(), got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestDecodeRejects(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
		is     error
	}{
		{"major version", "version: v2.0.0\n", FormatYAML, ErrUnsupportedVersion},
		{"bad version", "version: latest\n", FormatYAML, nil},
		{"zero font", "font:\n  size: 0\n", FormatYAML, nil},
		{"negative padding", "[button]\npadding = -1.0\n", FormatTOML, nil},
		{"infinite padding", "button:\n  padding: .inf\n", FormatYAML, nil},
		{"infinite border", "[label]\nborder_width = inf\n", FormatTOML, nil},
		{"nan radius", "[button_pressed]\nradius = nan\n", FormatTOML, nil},
		{"unknown field", "colour: red\n", FormatYAML, nil},
		{"bad color", "background: \"#zz\"\n", FormatYAML, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data), tt.format)
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("err = %v, want %v", err, tt.is)
			}
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	for _, format := range []Format{FormatYAML, FormatTOML} {
		data, err := DefaultDark().Encode(format)
		if err != nil {
			t.Fatal(err)
		}
		got, err := Decode(data, format)
		if err != nil {
			t.Fatalf("format %d: %v\n%s", format, err, data)
		}
		if diff := cmp.Diff(DefaultDark(), got); diff != "" {
			t.Errorf("format %d (-want +got):\n%s", format, diff)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.yml")
	if err := os.WriteFile(path, []byte("font:\n  path: fonts/custom.ttf\n  size: 12\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "fonts", "custom.ttf"); got.Font.Path != want {
		t.Errorf("Font.Path = %q, want %q", got.Font.Path, want)
	}

	if _, err := Load(filepath.Join(dir, "theme.json")); err == nil {
		t.Error("expected unknown extension to fail")
	}
	if _, err := Load(filepath.Join(dir, "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want os.ErrNotExist", err)
	}
}

func TestFace(t *testing.T) {
	face, err := Default().Face()
	if err != nil {
		t.Fatal(err)
	}
	if face.Size() != 16 {
		t.Errorf("face size = %v, want 16", face.Size())
	}
	if face.Advance("hello") <= 0 {
		t.Error("expected a positive advance for the bundled font")
	}

	th := Default()
	th.Font.Path = filepath.Join(t.TempDir(), "nope.ttf")
	if _, err := th.Face(); err == nil {
		t.Error("expected missing font file to fail")
	}
}

func TestButtonProperties(t *testing.T) {
	th := Default()
	if th.ButtonProperties(true) != th.ButtonPressed {
		t.Error("pressed should select ButtonPressed")
	}
	if th.ButtonProperties(false) != th.Button {
		t.Error("released should select Button")
	}
}

func TestWatchReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.yaml")
	if err := os.WriteFile(path, []byte("font:\n  size: 10\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	changed := make(chan *Theme, 1)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(th *Theme) {
			select {
			case changed <- th:
			default:
			}
		}, nil)
	}()

	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	for {
		select {
		case th := <-changed:
			// A reload can observe the file truncated mid-write.
			if th.Font.Size != 24 {
				continue
			}
			cancel()
			if err := <-done; !errors.Is(err, context.Canceled) {
				t.Errorf("Watch returned %v, want context.Canceled", err)
			}
			return
		case <-tick.C:
			// The watcher may not be registered yet; keep touching the file.
			if err := os.WriteFile(path, []byte("font:\n  size: 24\n"), 0o644); err != nil {
				t.Fatal(err)
			}
		case <-ctx.Done():
			t.Fatal("timed out waiting for reload")
		}
	}
}

type panicCounter struct{ panics chan *sundererrors.PanicError }

func (panicCounter) HandleError(*sundererrors.Error) {}

func (c panicCounter) HandlePanic(p *sundererrors.PanicError) {
	select {
	case c.panics <- p:
	default:
	}
}

func TestWatchSurvivesPanickingCallback(t *testing.T) {
	handler := panicCounter{panics: make(chan *sundererrors.PanicError, 1)}
	sundererrors.SetHandler(handler)
	defer sundererrors.SetHandler(nil)

	dir := t.TempDir()
	path := filepath.Join(dir, "theme.yaml")
	if err := os.WriteFile(path, []byte("font:\n  size: 10\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	calls := make(chan int, 64)
	n := 0
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(*Theme) {
			n++
			select {
			case calls <- n:
			default:
			}
			if n == 1 {
				panic("bad callback")
			}
		}, nil)
	}()

	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	for {
		select {
		case c := <-calls:
			if c < 2 {
				continue
			}
			select {
			case p := <-handler.panics:
				if p.Op != "theme.Watch" || p.Value != "bad callback" {
					t.Errorf("reported %v", p)
				}
			default:
				t.Error("panic in onChange was not reported")
			}
			cancel()
			if err := <-done; !errors.Is(err, context.Canceled) {
				t.Errorf("Watch returned %v, want context.Canceled", err)
			}
			return
		case <-tick.C:
			if err := os.WriteFile(path, []byte("font:\n  size: 24\n"), 0o644); err != nil {
				t.Fatal(err)
			}
		case <-ctx.Done():
			t.Fatal("watch stopped delivering after a panicking callback")
		}
	}
}
