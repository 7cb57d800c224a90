// Command sheetinfo reports the frame grid of a sprite sheet and
// validates a definition file against it: every coordinate of every
// sequence is test-cropped, so out-of-bounds entries surface here instead
// of as absent frames at playback time.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	_ "image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/milk9111/flipbook/anim"
	"github.com/milk9111/flipbook/assets"
	"github.com/milk9111/flipbook/defs"
)

func main() {
	sheetPath := flag.String("sheet", "", "sprite sheet image (overrides the defs sheet entry)")
	frameW := flag.Int("fw", 0, "frame width in pixels (overrides the defs entry)")
	frameH := flag.Int("fh", 0, "frame height in pixels (overrides the defs entry)")
	defsName := flag.String("defs", "", "sheet definition file to validate")
	flag.Parse()

	var spec *defs.SheetSpec
	if *defsName != "" {
		var err error
		spec, err = defs.LoadSheetSpec(*defsName)
		if err != nil {
			log.Fatal(err)
		}
	}

	path := *sheetPath
	fw, fh := *frameW, *frameH
	if spec != nil {
		if path == "" {
			path = spec.Sheet
		}
		if fw == 0 {
			fw = spec.FrameW
		}
		if fh == 0 {
			fh = spec.FrameH
		}
	}
	if path == "" || fw <= 0 || fh <= 0 {
		log.Fatal("sheetinfo: need -sheet, -fw and -fh, or a -defs file providing them")
	}

	img, err := loadImage(path)
	if err != nil {
		log.Fatal(err)
	}
	bmp, ok := img.(anim.Bitmap)
	if !ok {
		log.Fatalf("sheetinfo: %s decoded to %T, which is not sub-image addressable", path, img)
	}

	b := bmp.Bounds()
	geom, err := anim.NewSheetGeometry(b.Dx(), b.Dy(), fw, fh)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("sheet   %s (%dx%d px)\n", path, b.Dx(), b.Dy())
	fmt.Printf("frame   %dx%d px\n", fw, fh)
	fmt.Printf("grid    %d columns x %d rows (%d frames)\n", geom.Columns(), geom.Rows(), geom.Columns()*geom.Rows())

	if spec == nil {
		return
	}

	built, err := spec.Build(b.Dx(), b.Dy())
	if err != nil {
		log.Fatal(err)
	}

	names := built.Keys()
	failed := false
	for _, name := range names {
		seq := built.Sequences[name]
		bad := 0
		for i := 0; i < seq.Len(); i++ {
			coord := seq.Current()
			if _, err := anim.Crop(bmp, coord, fw, fh); err != nil {
				fmt.Printf("  %s[%d] %v: %v\n", name, i, coord, err)
				bad++
			}
			seq.Advance()
		}
		status := "ok"
		if bad > 0 {
			status = fmt.Sprintf("%d bad frames", bad)
			failed = true
		}
		fmt.Printf("seq     %-12s %d frames @ %.3g fps  %s\n", name, seq.Len(), built.Rates[name], status)
	}
	if failed {
		os.Exit(1)
	}
}

func loadImage(path string) (image.Image, error) {
	if b, err := assets.LoadFile(path); err == nil {
		img, _, err := image.Decode(bytes.NewReader(b))
		return img, err
	}
	tried := []string{path, filepath.Join("assets", path), filepath.Base(path)}
	for _, p := range tried {
		if b, err := os.ReadFile(p); err == nil {
			if img, _, err := image.Decode(bytes.NewReader(b)); err == nil {
				return img, nil
			}
		}
	}
	return nil, fmt.Errorf("sheetinfo: failed to load image %s", path)
}
