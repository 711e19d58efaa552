package typeface

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

// writeTestFont writes the embedded test font to a temp file and
// returns its path.
func writeTestFont(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "go-regular.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o644); err != nil {
		t.Fatalf("failed to write test font: %v", err)
	}
	return path
}

func TestNewSource(t *testing.T) {
	source, err := NewSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewSource failed: %v", err)
	}

	if source.Family() == "" {
		t.Error("expected non-empty family name")
	}
	t.Logf("family name: %s", source.Family())
}

func TestNewSourceCopiesData(t *testing.T) {
	data := make([]byte, len(goregular.TTF))
	copy(data, goregular.TTF)

	source, err := NewSource(data)
	if err != nil {
		t.Fatalf("NewSource failed: %v", err)
	}

	// Clobbering the caller's slice must not affect the source.
	for i := range data {
		data[i] = 0
	}
	if source.Family() == "" {
		t.Error("family name lost after caller reused the data slice")
	}
	if _, err := source.Face(16); err != nil {
		t.Errorf("Face after data reuse: %v", err)
	}
}

func TestNewSourceErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"nil data", nil, ErrEmptyFont},
		{"empty data", []byte{}, ErrEmptyFont},
		{"not a font", []byte("definitely not a font file"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSource(tt.data)
			if err == nil {
				t.Fatal("NewSource succeeded, want error")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNewSourceFromFile(t *testing.T) {
	source, err := NewSourceFromFile(writeTestFont(t))
	if err != nil {
		t.Fatalf("NewSourceFromFile failed: %v", err)
	}
	if source.Family() == "" {
		t.Error("expected non-empty family name")
	}
}

func TestNewSourceFromFileMissing(t *testing.T) {
	_, err := NewSourceFromFile(filepath.Join(t.TempDir(), "missing.ttf"))
	if err == nil {
		t.Fatal("NewSourceFromFile succeeded for a missing file, want error")
	}
}

func TestSourceFaceSizes(t *testing.T) {
	source, err := NewSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewSource failed: %v", err)
	}

	for _, size := range []int{8, 12, 16, 24, 40, 96} {
		face, err := source.Face(size)
		if err != nil {
			t.Errorf("Face(%d) failed: %v", size, err)
			continue
		}
		if face == nil {
			t.Errorf("Face(%d) returned nil", size)
		}
	}
}

func TestSourceFaceInvalidSize(t *testing.T) {
	source, err := NewSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewSource failed: %v", err)
	}

	for _, size := range []int{0, -1, -40} {
		_, err := source.Face(size)
		if !errors.Is(err, ErrInvalidSize) {
			t.Errorf("Face(%d) error = %v, want ErrInvalidSize", size, err)
		}
	}
}
