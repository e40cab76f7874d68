package fontload

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
)

func writeFont(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write font: %v", err)
	}
	return path
}

func TestNamedFindsNestedFileIgnoringCase(t *testing.T) {
	root := t.TempDir()
	writeFont(t, filepath.Join(root, "truetype", "go"), "TestBold.TTF", gobold.TTF)

	face, err := Named("testbold.ttf", root).Face(13)
	if err != nil {
		t.Fatalf("named face: %v", err)
	}
	defer face.Close()
	if face.Metrics().Ascent <= 0 {
		t.Fatalf("expected positive ascent, got %v", face.Metrics().Ascent)
	}
}

func TestNamedMissingReportsNotFound(t *testing.T) {
	_, err := Named("no-such-font.ttf", t.TempDir()).Face(13)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPathMissingReportsNotFound(t *testing.T) {
	_, err := Path(filepath.Join(t.TempDir(), "arialbd.ttf")).Face(13)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPathCorruptFileIsNotNotFound(t *testing.T) {
	path := writeFont(t, t.TempDir(), "broken.ttf", []byte("not a font"))

	_, err := Path(path).Face(13)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if errors.Is(err, ErrNotFound) {
		t.Fatalf("expected parse error, got not found: %v", err)
	}
}

func TestBytesEmptyReportsNotFound(t *testing.T) {
	if _, err := Bytes("empty", nil).Face(13); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestBuiltinAlwaysLoads(t *testing.T) {
	face, err := Builtin().Face(52)
	if err != nil {
		t.Fatalf("builtin face: %v", err)
	}
	if face == nil {
		t.Fatal("expected face")
	}
	if Builtin().Name() != "gobold" {
		t.Fatalf("expected gobold, got %q", Builtin().Name())
	}
}

func TestChainFallsBackToBuiltin(t *testing.T) {
	empty := t.TempDir()
	corrupt := writeFont(t, t.TempDir(), "corrupt.ttf", []byte{0x00, 0x01})
	chain := NewChain(
		Named("arialbd.ttf", empty),
		Named("Arial Bold.ttf", empty),
		Path(filepath.Join(empty, "Fonts", "arialbd.ttf")),
		Path(corrupt),
	)

	face, name := chain.Resolve(26)
	if face == nil {
		t.Fatal("expected face")
	}
	if name != "gobold" {
		t.Fatalf("expected builtin font, got %q", name)
	}
}

func TestChainFirstSuccessWins(t *testing.T) {
	dir := t.TempDir()
	first := writeFont(t, dir, "first.ttf", gobold.TTF)
	second := writeFont(t, dir, "second.ttf", gobold.TTF)

	_, name := NewChain(Path(filepath.Join(dir, "missing.ttf")), Path(first), Path(second)).Resolve(13)
	if name != first {
		t.Fatalf("expected %q, got %q", first, name)
	}
}

func TestChainFaceUsesRequestedSize(t *testing.T) {
	small, _ := NewChain().Resolve(13)
	large, _ := NewChain().Resolve(52)

	sw := font.MeasureString(small, "TXFL")
	lw := font.MeasureString(large, "TXFL")
	if lw <= sw*3 {
		t.Fatalf("expected 52pt text roughly 4x wider than 13pt, got %v vs %v", lw, sw)
	}
}

func TestDefaultSourcesOrder(t *testing.T) {
	names := []string{}
	for _, src := range DefaultChain().Sources() {
		names = append(names, src.Name())
	}
	want := []string{"arialbd.ttf", "Arial Bold.ttf", "C:/Windows/Fonts/arialbd.ttf"}
	if len(names) != len(want) {
		t.Fatalf("expected %d sources, got %v", len(want), names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("source %d = %q, want %q", i, names[i], want[i])
		}
	}
}
