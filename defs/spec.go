// Package defs loads sprite sheet definitions from YAML and builds them
// into runtime sequences. Definitions ship embedded and can be overridden
// on disk, which pairs with the Watcher for live reload.
package defs

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/flipbook/anim"
)

// defaultFPS applies when a definition omits the sheet-level rate.
const defaultFPS = 12

// SheetSpec describes one sprite sheet and its named sequences.
type SheetSpec struct {
	Sheet     string                  `yaml:"sheet"`
	FrameW    int                     `yaml:"frame_w"`
	FrameH    int                     `yaml:"frame_h"`
	FPS       float64                 `yaml:"fps"`
	Script    string                  `yaml:"script"`
	Sequences map[string]SequenceSpec `yaml:"sequences"`
}

// SequenceSpec describes one named sequence. Either Frames lists explicit
// [col, row] pairs, or the row shorthand reads frame_count cells
// left-to-right from (col_start, row), continuing onto later rows past
// the row end.
type SequenceSpec struct {
	Row        int                 `yaml:"row"`
	ColStart   int                 `yaml:"col_start"`
	FrameCount int                 `yaml:"frame_count"`
	Frames     [][2]int            `yaml:"frames"`
	FPS        float64             `yaml:"fps"`
	Events     map[int][]EventSpec `yaml:"events"`
}

// EventSpec describes one frame event.
type EventSpec struct {
	Type    string `yaml:"type"`
	Payload string `yaml:"payload"`
}

// LoadSpec unmarshals a definition file into T.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("defs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("defs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// LoadSheetSpec loads one sheet definition file.
func LoadSheetSpec(name string) (*SheetSpec, error) {
	spec, err := LoadSpec[SheetSpec](name)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// BuiltSheet is a SheetSpec resolved against a concrete sheet size.
type BuiltSheet struct {
	Geometry   anim.SheetGeometry
	Sequences  map[string]*anim.Sequence
	Events     map[string]*anim.EventMap
	Rates      map[string]float64
	DefaultFPS float64
	Script     string
}

// Keys returns the sequence names in sorted order.
func (b *BuiltSheet) Keys() []string {
	keys := make([]string, 0, len(b.Sequences))
	for k := range b.Sequences {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Build validates the spec against the sheet's pixel size and produces
// the runtime sequences. Coordinates outside the grid, empty sequences,
// and event indexes past a sequence's end are rejected here rather than
// surfacing later as per-tick crop failures.
func (s *SheetSpec) Build(sheetW, sheetH int) (*BuiltSheet, error) {
	geom, err := anim.NewSheetGeometry(sheetW, sheetH, s.FrameW, s.FrameH)
	if err != nil {
		return nil, fmt.Errorf("defs: sheet %s: %w", s.Sheet, err)
	}
	if geom.Columns() == 0 || geom.Rows() == 0 {
		return nil, fmt.Errorf("defs: sheet %s: frame %dx%d does not fit in %dx%d", s.Sheet, s.FrameW, s.FrameH, sheetW, sheetH)
	}
	fps := s.FPS
	if fps == 0 {
		fps = defaultFPS
	}
	if fps < 0 {
		return nil, fmt.Errorf("defs: sheet %s: %w", s.Sheet, anim.ErrInvalidFPS)
	}
	if len(s.Sequences) == 0 {
		return nil, fmt.Errorf("defs: sheet %s: no sequences", s.Sheet)
	}

	built := &BuiltSheet{
		Geometry:   geom,
		Sequences:  make(map[string]*anim.Sequence, len(s.Sequences)),
		Events:     make(map[string]*anim.EventMap),
		Rates:      make(map[string]float64, len(s.Sequences)),
		DefaultFPS: fps,
		Script:     s.Script,
	}

	for name, spec := range s.Sequences {
		frames, err := spec.expand(geom)
		if err != nil {
			return nil, fmt.Errorf("defs: sequence %s: %w", name, err)
		}
		seq, err := anim.NewSequence(frames, 0)
		if err != nil {
			return nil, fmt.Errorf("defs: sequence %s: %w", name, err)
		}
		built.Sequences[name] = seq

		rate := spec.FPS
		if rate == 0 {
			rate = fps
		}
		if rate < 0 {
			return nil, fmt.Errorf("defs: sequence %s: %w", name, anim.ErrInvalidFPS)
		}
		built.Rates[name] = rate

		if len(spec.Events) > 0 {
			em := anim.NewEventMap()
			for index, events := range spec.Events {
				if index < 0 || index >= len(frames) {
					return nil, fmt.Errorf("defs: sequence %s: event index %d outside [0,%d)", name, index, len(frames))
				}
				for _, evt := range events {
					em.Add(index, anim.Event{Type: anim.EventType(evt.Type), Payload: evt.Payload})
				}
			}
			built.Events[name] = em
		}
	}

	return built, nil
}

func (s SequenceSpec) expand(geom anim.SheetGeometry) ([]anim.Frame, error) {
	if len(s.Frames) > 0 {
		frames := make([]anim.Frame, 0, len(s.Frames))
		for _, pair := range s.Frames {
			f := anim.Frame{Col: pair[0], Row: pair[1]}
			if !geom.Contains(f) {
				return nil, fmt.Errorf("frame %v outside %dx%d grid", f, geom.Columns(), geom.Rows())
			}
			frames = append(frames, f)
		}
		return frames, nil
	}

	if s.FrameCount <= 0 {
		return nil, fmt.Errorf("frame_count required without explicit frames")
	}
	cols := geom.Columns()
	start := s.Row*cols + s.ColStart
	frames := make([]anim.Frame, 0, s.FrameCount)
	for i := 0; i < s.FrameCount; i++ {
		idx := start + i
		f := anim.Frame{Col: idx % cols, Row: idx / cols}
		if !geom.Contains(f) {
			return nil, fmt.Errorf("frame %v outside %dx%d grid", f, geom.Columns(), geom.Rows())
		}
		frames = append(frames, f)
	}
	return frames, nil
}
