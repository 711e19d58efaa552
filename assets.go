package inkpress

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Asset resolution errors. These belong to the configuration error
// class: they surface before any pixel is touched.
var (
	ErrBadAssetName    = errors.New("inkpress: asset name must be a plain file name")
	ErrUnknownTemplate = errors.New("inkpress: template not found")
	ErrUnknownFont     = errors.New("inkpress: font not found")
)

// Assets resolves logical template and font names to files on disk.
// Names are plain file names; anything that would escape the asset
// directories is rejected.
type Assets struct {
	FontDir     string
	TemplateDir string
}

// NewAssets returns the conventional layout under root: fonts in
// root/font, templates in root/templates.
func NewAssets(root string) *Assets {
	return &Assets{
		FontDir:     filepath.Join(root, "font"),
		TemplateDir: filepath.Join(root, "templates"),
	}
}

// TemplatePath resolves a template name to its file path, verifying
// the file exists.
func (a *Assets) TemplatePath(name string) (string, error) {
	return resolve(a.TemplateDir, name, ErrUnknownTemplate)
}

// FontPath resolves a font name to its file path, verifying the file
// exists.
func (a *Assets) FontPath(name string) (string, error) {
	return resolve(a.FontDir, name, ErrUnknownFont)
}

// Templates lists the available template file names, sorted.
func (a *Assets) Templates() ([]string, error) {
	return listDir(a.TemplateDir)
}

// Fonts lists the available font file names, sorted.
func (a *Assets) Fonts() ([]string, error) {
	return listDir(a.FontDir)
}

// resolve joins dir and name after checking that name is a bare file
// name. A name like "../../etc/passwd" or an absolute path never
// reaches the filesystem.
func resolve(dir, name string, missing error) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("%w: %q", ErrBadAssetName, name)
	}
	path := filepath.Join(dir, name)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", fmt.Errorf("%w: %q", missing, name)
	}
	return path, nil
}

// listDir returns the non-hidden regular file names in dir. A missing
// directory lists as empty rather than failing, so a partially set up
// asset tree still serves what it has.
func listDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("inkpress: list %q: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}
