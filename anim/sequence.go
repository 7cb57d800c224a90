// Package anim plays sprite-sheet animations: it tracks a cursor through
// ordered frame sequences, advances them on scheduler ticks, and crops the
// matching sub-region out of the sheet bitmap.
package anim

import "fmt"

// Sequence is a non-empty ordered list of sheet coordinates with a cursor
// marking the current frame. The cursor always indexes a valid element;
// Advance and Retreat wrap around the ends. A Sequence is owned by the
// controller or registry it is handed to and must not be mutated elsewhere.
type Sequence struct {
	frames []Frame
	cursor int
}

// NewSequence creates a Sequence over frames with the cursor at start.
func NewSequence(frames []Frame, start int) (*Sequence, error) {
	if len(frames) == 0 {
		return nil, ErrEmptySequence
	}
	if start < 0 || start >= len(frames) {
		return nil, fmt.Errorf("anim: start index %d outside [0,%d)", start, len(frames))
	}
	return &Sequence{
		frames: append([]Frame(nil), frames...),
		cursor: start,
	}, nil
}

// MustSequence is NewSequence for statically known frame lists.
func MustSequence(frames ...Frame) *Sequence {
	s, err := NewSequence(frames, 0)
	if err != nil {
		panic(err)
	}
	return s
}

// Current returns the frame under the cursor.
func (s *Sequence) Current() Frame {
	return s.frames[s.cursor]
}

// Advance moves the cursor one frame forward, wrapping to the first frame
// past the end, and returns the new current frame.
func (s *Sequence) Advance() Frame {
	s.cursor = (s.cursor + 1) % len(s.frames)
	return s.frames[s.cursor]
}

// Retreat moves the cursor one frame backward, wrapping to the last frame
// before the start, and returns the new current frame.
func (s *Sequence) Retreat() Frame {
	s.cursor = (s.cursor - 1 + len(s.frames)) % len(s.frames)
	return s.frames[s.cursor]
}

// Reset moves the cursor back to the first frame.
func (s *Sequence) Reset() {
	s.cursor = 0
}

// Index returns the cursor position.
func (s *Sequence) Index() int {
	return s.cursor
}

// Len returns the number of frames.
func (s *Sequence) Len() int {
	return len(s.frames)
}
