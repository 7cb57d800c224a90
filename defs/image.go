package defs

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/flipbook/assets"
)

// LoadSheetImage resolves the sheet image a definition names, trying the
// embedded assets first and then the filesystem.
func LoadSheetImage(path string) (*ebiten.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("defs: empty sheet image path")
	}
	if img, err := assets.LoadImage(path); err == nil {
		return img, nil
	}
	tried := []string{path, filepath.Join("assets", path), filepath.Join("defs", path), filepath.Base(path)}
	for _, p := range tried {
		if b, err := os.ReadFile(p); err == nil {
			if im, _, err := image.Decode(bytes.NewReader(b)); err == nil {
				return ebiten.NewImageFromImage(im), nil
			}
		}
	}
	return nil, fmt.Errorf("defs: failed to load sheet image %s", path)
}
