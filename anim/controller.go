package anim

import (
	"fmt"
	"image"
)

// Direction selects which way playback walks the sequence.
type Direction int

const (
	Forward Direction = iota
	Reverse
)

// sequenceSource resolves the sequence a tick operates on. The plain
// controller binds a fixed sequence; the keyed controller substitutes its
// registry-backed source.
type sequenceSource interface {
	activeSequence() *Sequence
}

type fixedSource struct {
	seq *Sequence
}

func (f fixedSource) activeSequence() *Sequence { return f.seq }

// Controller plays one frame sequence from a sprite sheet. On each
// scheduler tick while playing it advances the sequence cursor, crops the
// sheet at the new coordinate, and publishes the result. All mutating
// calls and scheduler ticks must share one execution context; the
// controller does no locking of its own.
type Controller struct {
	sheet  Bitmap
	geom   SheetGeometry
	source sequenceSource
	sched  Scheduler

	fps     float64
	playing bool
	dir     Direction
	token   Token

	current image.Image
	sink    FrameSink
	events  *EventMap
	emitter *Emitter
	onError func(error)
}

// NewController creates a Stopped controller over a single sequence.
func NewController(sheet Bitmap, frameW, frameH int, seq *Sequence, fps float64, sched Scheduler) (*Controller, error) {
	if seq == nil {
		return nil, ErrEmptySequence
	}
	return newController(sheet, frameW, frameH, fixedSource{seq}, fps, sched)
}

func newController(sheet Bitmap, frameW, frameH int, source sequenceSource, fps float64, sched Scheduler) (*Controller, error) {
	if sheet == nil {
		return nil, fmt.Errorf("anim: nil sheet bitmap")
	}
	if sched == nil {
		return nil, fmt.Errorf("anim: nil scheduler")
	}
	if fps <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFPS, fps)
	}
	b := sheet.Bounds()
	geom, err := NewSheetGeometry(b.Dx(), b.Dy(), frameW, frameH)
	if err != nil {
		return nil, err
	}
	return &Controller{
		sheet:  sheet,
		geom:   geom,
		source: source,
		sched:  sched,
		fps:    fps,
	}, nil
}

// Play starts playback, subscribing to the scheduler at the configured
// fps. A no-op while already playing; the subscription is never
// duplicated.
func (c *Controller) Play() {
	if c.playing {
		return
	}
	c.playing = true
	c.token = c.sched.Subscribe(c.fps, c.tick)
}

// Pause stops playback and releases the scheduler subscription. The
// cursor and current frame are left where they are.
func (c *Controller) Pause() {
	if !c.playing {
		return
	}
	c.playing = false
	c.sched.Unsubscribe(c.token)
}

// Close releases any live scheduler subscription. The controller must not
// be used afterwards.
func (c *Controller) Close() {
	c.Pause()
}

// SetFPS changes the playback rate. While playing, the scheduler
// subscription is swapped for one at the new rate without moving the
// cursor. A non-positive rate is rejected and nothing changes.
func (c *Controller) SetFPS(fps float64) error {
	if fps <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidFPS, fps)
	}
	c.fps = fps
	if c.playing {
		c.sched.Unsubscribe(c.token)
		c.token = c.sched.Subscribe(fps, c.tick)
	}
	return nil
}

// SetSheet swaps the sprite sheet used for cropping. The sequence cursor
// does not move; the next tick crops from the new sheet.
func (c *Controller) SetSheet(sheet Bitmap) error {
	if sheet == nil {
		return fmt.Errorf("anim: nil sheet bitmap")
	}
	b := sheet.Bounds()
	geom, err := NewSheetGeometry(b.Dx(), b.Dy(), c.geom.FrameW, c.geom.FrameH)
	if err != nil {
		return err
	}
	c.sheet = sheet
	c.geom = geom
	return nil
}

// ShowFrame crops coord against the current sheet and publishes it
// immediately, bypassing the sequence cursor. Play state and cursor are
// unaffected. On a failed crop nothing is published and the error is
// returned.
func (c *Controller) ShowFrame(coord Frame) error {
	img, err := Crop(c.sheet, coord, c.geom.FrameW, c.geom.FrameH)
	if err != nil {
		return err
	}
	c.current = img
	c.sink.Publish(FrameUpdate{Image: img, Coord: coord, Index: -1})
	return nil
}

// SetDirection sets whether ticks advance or retreat the sequence.
func (c *Controller) SetDirection(d Direction) {
	c.dir = d
}

// SetErrorHandler installs a callback for per-tick crop failures and
// other absorbed errors. The handler runs on the tick's execution
// context.
func (c *Controller) SetErrorHandler(fn func(error)) {
	c.onError = fn
}

// BindEvents attaches a frame event map and emitter. When a tick lands on
// an index with events they are emitted after the frame is published.
func (c *Controller) BindEvents(m *EventMap, e *Emitter) {
	c.events = m
	c.emitter = e
}

// Sink returns the frame sink observers register with.
func (c *Controller) Sink() *FrameSink {
	return &c.sink
}

// CurrentFrame returns the most recently produced sub-image, or nil
// before the first successful crop and after a failed tick.
func (c *Controller) CurrentFrame() image.Image {
	return c.current
}

func (c *Controller) IsPlaying() bool {
	return c.playing
}

func (c *Controller) FPS() float64 {
	return c.fps
}

func (c *Controller) Direction() Direction {
	return c.dir
}

// Geometry returns the current sheet geometry.
func (c *Controller) Geometry() SheetGeometry {
	return c.geom
}

// tick runs once per scheduler callback while playing. A failed crop
// publishes the absent frame and playback continues on later ticks.
func (c *Controller) tick() {
	seq := c.source.activeSequence()
	if seq == nil {
		panic("anim: tick with no active sequence selected")
	}
	var coord Frame
	if c.dir == Reverse {
		coord = seq.Retreat()
	} else {
		coord = seq.Advance()
	}
	c.publish(seq.Index(), coord)
}

func (c *Controller) publish(index int, coord Frame) {
	img, err := Crop(c.sheet, coord, c.geom.FrameW, c.geom.FrameH)
	if err != nil {
		c.current = nil
		c.sink.Publish(FrameUpdate{Coord: coord, Index: index})
		if c.onError != nil {
			c.onError(err)
		}
		return
	}
	c.current = img
	c.sink.Publish(FrameUpdate{Image: img, Coord: coord, Index: index})
	if c.events != nil && c.emitter != nil {
		for _, evt := range c.events.At(index) {
			c.emitter.Emit(index, coord, evt)
		}
	}
}
