package anim

import (
	"errors"
	"testing"
)

func TestNewSequenceValidation(t *testing.T) {
	cases := []struct {
		name    string
		frames  []Frame
		start   int
		wantErr bool
		wantIs  error
	}{
		{"empty", nil, 0, true, ErrEmptySequence},
		{"empty_with_start", nil, 1, true, ErrEmptySequence},
		{"start_negative", []Frame{{0, 0}}, -1, true, nil},
		{"start_past_end", []Frame{{0, 0}, {1, 0}}, 2, true, nil},
		{"single", []Frame{{3, 2}}, 0, false, nil},
		{"start_mid", []Frame{{0, 0}, {1, 0}, {2, 0}}, 1, false, nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			seq, err := NewSequence(c.frames, c.start)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error, got sequence %+v", seq)
				}
				if c.wantIs != nil && !errors.Is(err, c.wantIs) {
					t.Fatalf("expected %v, got %v", c.wantIs, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := seq.Index(); got != c.start {
				t.Fatalf("expected cursor at %d, got %d", c.start, got)
			}
			if got := seq.Current(); got != c.frames[c.start] {
				t.Fatalf("expected current %v, got %v", c.frames[c.start], got)
			}
		})
	}
}

func TestSequenceAdvanceWrapsToStart(t *testing.T) {
	cases := []struct {
		name   string
		frames []Frame
		start  int
	}{
		{"single", []Frame{{0, 0}}, 0},
		{"pair", []Frame{{0, 0}, {1, 0}}, 0},
		{"triple_from_mid", []Frame{{0, 0}, {1, 0}, {2, 0}}, 1},
		{"five", []Frame{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {0, 1}}, 4},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			seq, err := NewSequence(c.frames, c.start)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			begin := seq.Current()
			for i := 0; i < len(c.frames); i++ {
				seq.Advance()
			}
			if got := seq.Current(); got != begin {
				t.Fatalf("expected %d advances to return to %v, got %v", len(c.frames), begin, got)
			}
			if got := seq.Index(); got != c.start {
				t.Fatalf("expected cursor back at %d, got %d", c.start, got)
			}
		})
	}
}

func TestSequenceRetreatUndoesAdvance(t *testing.T) {
	frames := []Frame{{0, 0}, {1, 0}, {2, 0}, {3, 0}}
	for start := 0; start < len(frames); start++ {
		seq, err := NewSequence(frames, start)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		begin := seq.Current()

		seq.Advance()
		if got := seq.Retreat(); got != begin {
			t.Fatalf("start %d: retreat after advance gave %v, want %v", start, got, begin)
		}
		seq.Retreat()
		if got := seq.Advance(); got != begin {
			t.Fatalf("start %d: advance after retreat gave %v, want %v", start, got, begin)
		}
	}
}

func TestSequenceCursorWalk(t *testing.T) {
	// three-frame walk with wrap in both directions
	seq, err := NewSequence([]Frame{{0, 0}, {1, 0}, {2, 0}}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	steps := []struct {
		op   string
		want Frame
		idx  int
	}{
		{"advance", Frame{1, 0}, 1},
		{"advance", Frame{2, 0}, 2},
		{"advance", Frame{0, 0}, 0},
		{"retreat", Frame{2, 0}, 2},
	}
	for i, s := range steps {
		var got Frame
		if s.op == "advance" {
			got = seq.Advance()
		} else {
			got = seq.Retreat()
		}
		if got != s.want {
			t.Fatalf("step %d (%s): got %v, want %v", i, s.op, got, s.want)
		}
		if seq.Index() != s.idx {
			t.Fatalf("step %d (%s): cursor %d, want %d", i, s.op, seq.Index(), s.idx)
		}
	}
}

func TestSequenceReset(t *testing.T) {
	seq := MustSequence(Frame{0, 0}, Frame{1, 0}, Frame{2, 0})
	seq.Advance()
	seq.Advance()
	seq.Reset()
	if seq.Index() != 0 || seq.Current() != (Frame{0, 0}) {
		t.Fatalf("expected cursor at 0 after reset, got %d (%v)", seq.Index(), seq.Current())
	}
}

func TestSequenceCopiesInput(t *testing.T) {
	frames := []Frame{{0, 0}, {1, 0}}
	seq, err := NewSequence(frames, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	frames[0] = Frame{9, 9}
	if got := seq.Current(); got != (Frame{0, 0}) {
		t.Fatalf("sequence aliased caller slice: got %v", got)
	}
}
