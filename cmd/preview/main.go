// Command preview plays the animations of a sheet definition file in a
// window. Buttons (or the number keys) switch animations, space toggles
// playback, and edits to the definition file reload live.
package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.design/x/clipboard"
	"golang.org/x/image/colornames"

	"github.com/milk9111/flipbook/anim"
	"github.com/milk9111/flipbook/defs"
	"github.com/milk9111/flipbook/script"
)

const (
	screenWidth  = 640
	screenHeight = 400
	hostHz       = 60
)

func main() {
	defsName := flag.String("defs", "runner.yaml", "sheet definition file in defs/")
	scale := flag.Float64("scale", 4, "frame draw scale")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	g, err := newPreviewGame(*defsName, *scale)
	if err != nil {
		log.Fatal(err)
	}
	defer g.close()

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("flipbook preview")

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

type previewGame struct {
	ctrl    *anim.KeyedController[string]
	sched   *anim.StepScheduler
	watcher *defs.Watcher

	defsName string
	keys     []string
	scale    float64

	lastCoord anim.Frame
	hasCoord  bool

	status      string
	clipboardOK bool

	ui *previewUI
}

func newPreviewGame(defsName string, scale float64) (*previewGame, error) {
	spec, err := defs.LoadSheetSpec(defsName)
	if err != nil {
		return nil, err
	}
	sheet, err := defs.LoadSheetImage(spec.Sheet)
	if err != nil {
		return nil, err
	}
	b := sheet.Bounds()
	built, err := spec.Build(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}

	sched := anim.NewStepScheduler(hostHz)
	ctrl, err := anim.NewKeyedController[string](sheet, built.Geometry.FrameW, built.Geometry.FrameH, built.Sequences, built.DefaultFPS, sched)
	if err != nil {
		return nil, err
	}

	g := &previewGame{
		ctrl:     ctrl,
		sched:    sched,
		defsName: defsName,
		keys:     built.Keys(),
		scale:    scale,
	}
	g.applyBuilt(built)

	ctrl.SetErrorHandler(func(err error) {
		g.status = err.Error()
	})
	ctrl.Sink().Notify(func(u anim.FrameUpdate) {
		g.lastCoord = u.Coord
		g.hasCoord = true
	})

	if len(g.keys) > 0 {
		if err := ctrl.Play(g.keys[0]); err != nil {
			return nil, err
		}
	}

	if w, err := defs.NewWatcher("defs", filepath.Join("defs", "scripts")); err == nil {
		g.watcher = w
	} else {
		log.Printf("preview: watch disabled: %v", err)
	}

	if err := clipboard.Init(); err == nil {
		g.clipboardOK = true
	} else {
		log.Printf("preview: clipboard disabled: %v", err)
	}

	g.ui = newPreviewUI(g)
	return g, nil
}

// applyBuilt registers everything a built definition carries: per-key
// rates, per-key events, and the optional event script.
func (g *previewGame) applyBuilt(built *defs.BuiltSheet) {
	for key, rate := range built.Rates {
		if err := g.ctrl.SetAnimationFPS(key, rate); err != nil {
			g.status = err.Error()
		}
	}
	for key, events := range built.Events {
		g.ctrl.SetAnimationEvents(key, events)
	}
	if built.Script == "" {
		return
	}
	src, err := defs.LoadScript(built.Script)
	if err != nil {
		g.status = err.Error()
		return
	}
	rt, err := script.New(src)
	if err != nil {
		g.status = err.Error()
		return
	}
	rt.SetErrorHandler(func(err error) {
		g.status = err.Error()
	})
	g.ctrl.BindEvents(&anim.Emitter{Handlers: []anim.EventHandler{rt.Handler()}})
}

func (g *previewGame) close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	g.ctrl.Close()
}

func (g *previewGame) Update() error {
	g.drainWatcher()
	g.sched.Step()
	g.ui.Update()

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.togglePlayback()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copyCoordinate()
	}
	for i, key := range g.keys {
		if i >= 9 {
			break
		}
		if inpututil.IsKeyJustPressed(ebiten.Key1 + ebiten.Key(i)) {
			g.selectAnimation(key)
		}
	}
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Darkslategray)

	if frame, ok := g.ctrl.CurrentFrame().(*ebiten.Image); ok && frame != nil {
		fw := float64(frame.Bounds().Dx()) * g.scale
		fh := float64(frame.Bounds().Dy()) * g.scale
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(g.scale, g.scale)
		op.GeoM.Translate((screenWidth-fw)/2+80, (screenHeight-fh)/2)
		op.Filter = ebiten.FilterNearest
		screen.DrawImage(frame, op)
	}

	g.ui.Draw(screen)
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func (g *previewGame) togglePlayback() {
	if g.ctrl.IsPlaying() {
		g.ctrl.Pause()
		return
	}
	if _, ok := g.ctrl.CurrentAnimationKey(); ok {
		g.ctrl.Resume()
	}
}

func (g *previewGame) selectAnimation(key string) {
	if err := g.ctrl.Play(key); err != nil {
		g.status = err.Error()
		return
	}
	g.status = key
}

func (g *previewGame) adjustFPS(delta float64) {
	if err := g.ctrl.SetFPS(g.ctrl.FPS() + delta); err != nil {
		g.status = err.Error()
		return
	}
	g.status = fmt.Sprintf("fps %.0f", g.ctrl.FPS())
}

func (g *previewGame) copyCoordinate() {
	if !g.clipboardOK || !g.hasCoord {
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(fmt.Sprintf("%d,%d", g.lastCoord.Col, g.lastCoord.Row)))
	g.status = fmt.Sprintf("copied %v", g.lastCoord)
}

// drainWatcher applies pending definition edits without blocking the
// frame.
func (g *previewGame) drainWatcher() {
	if g.watcher == nil {
		return
	}
	reload := false
	for {
		select {
		case _, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			reload = true
		case err, ok := <-g.watcher.Errors:
			if ok {
				g.status = err.Error()
			}
		default:
			if reload {
				g.reload()
			}
			return
		}
	}
}

func (g *previewGame) reload() {
	spec, err := defs.LoadSheetSpec(g.defsName)
	if err != nil {
		g.status = err.Error()
		return
	}
	sheet, err := defs.LoadSheetImage(spec.Sheet)
	if err != nil {
		g.status = err.Error()
		return
	}
	b := sheet.Bounds()
	built, err := spec.Build(b.Dx(), b.Dy())
	if err != nil {
		g.status = err.Error()
		return
	}
	if err := g.ctrl.SetSheet(sheet); err != nil {
		g.status = err.Error()
		return
	}
	for key, seq := range built.Sequences {
		if err := g.ctrl.AddAnimation(key, seq); err != nil {
			g.status = err.Error()
			return
		}
	}
	g.applyBuilt(built)
	g.keys = built.Keys()
	g.ui = newPreviewUI(g)

	if key, ok := g.ctrl.CurrentAnimationKey(); ok {
		if _, still := built.Sequences[key]; still {
			_ = g.ctrl.Play(key)
		} else if len(g.keys) > 0 {
			_ = g.ctrl.Play(g.keys[0])
		}
	}
	g.status = "reloaded " + g.defsName
}
