package inkpress

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

// newTestAssets builds an asset tree with the conventional layout and
// a few placeholder files.
func newTestAssets(t *testing.T) *Assets {
	t.Helper()
	root := t.TempDir()
	for _, dir := range []string{"font", "templates"} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	for _, f := range []string{"font/a.ttf", "font/b.otf", "font/.hidden", "templates/card.png"} {
		if err := os.WriteFile(filepath.Join(root, f), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return NewAssets(root)
}

func TestAssetsResolve(t *testing.T) {
	a := newTestAssets(t)

	path, err := a.TemplatePath("card.png")
	if err != nil {
		t.Fatalf("TemplatePath: %v", err)
	}
	if filepath.Base(path) != "card.png" {
		t.Errorf("resolved path = %q", path)
	}

	if _, err := a.FontPath("a.ttf"); err != nil {
		t.Errorf("FontPath: %v", err)
	}
}

func TestAssetsResolveMissing(t *testing.T) {
	a := newTestAssets(t)

	if _, err := a.TemplatePath("nope.png"); !errors.Is(err, ErrUnknownTemplate) {
		t.Errorf("missing template error = %v, want ErrUnknownTemplate", err)
	}
	if _, err := a.FontPath("nope.ttf"); !errors.Is(err, ErrUnknownFont) {
		t.Errorf("missing font error = %v, want ErrUnknownFont", err)
	}
}

func TestAssetsRejectTraversal(t *testing.T) {
	a := newTestAssets(t)

	for _, name := range []string{
		"",
		"..",
		"../a.ttf",
		"../../etc/passwd",
		"sub/a.ttf",
		"/etc/passwd",
		".hidden",
	} {
		if _, err := a.FontPath(name); !errors.Is(err, ErrBadAssetName) {
			t.Errorf("FontPath(%q) error = %v, want ErrBadAssetName", name, err)
		}
	}
}

func TestAssetsListings(t *testing.T) {
	a := newTestAssets(t)

	fonts, err := a.Fonts()
	if err != nil {
		t.Fatalf("Fonts: %v", err)
	}
	if !slices.Equal(fonts, []string{"a.ttf", "b.otf"}) {
		t.Errorf("Fonts() = %v, want [a.ttf b.otf] (hidden files excluded)", fonts)
	}

	templates, err := a.Templates()
	if err != nil {
		t.Fatalf("Templates: %v", err)
	}
	if !slices.Equal(templates, []string{"card.png"}) {
		t.Errorf("Templates() = %v", templates)
	}
}

func TestAssetsListingMissingDirIsEmpty(t *testing.T) {
	a := NewAssets(filepath.Join(t.TempDir(), "does-not-exist"))

	fonts, err := a.Fonts()
	if err != nil || fonts != nil {
		t.Errorf("Fonts() on missing dir = %v, %v; want nil, nil", fonts, err)
	}
}
