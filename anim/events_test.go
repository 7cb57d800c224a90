package anim

import "testing"

func TestEmitterFanOut(t *testing.T) {
	var order []string
	e := &Emitter{Handlers: []EventHandler{
		func(index int, coord Frame, evt Event) { order = append(order, "a:"+evt.Payload) },
		nil,
		func(index int, coord Frame, evt Event) { order = append(order, "b:"+evt.Payload) },
	}}

	e.Emit(2, Frame{1, 0}, Event{Type: EventEmit, Payload: "x"})

	if len(order) != 2 || order[0] != "a:x" || order[1] != "b:x" {
		t.Fatalf("expected ordered fan-out skipping nil handlers, got %v", order)
	}
}

func TestEventMap(t *testing.T) {
	m := NewEventMap()
	m.Add(2, Event{Type: EventEmit, Payload: "footstep"})
	m.Add(2, Event{Type: EventEmit, Payload: "dust"})
	m.Add(-1, Event{Type: EventEmit, Payload: "dropped"})

	if got := m.At(2); len(got) != 2 {
		t.Fatalf("expected 2 events at index 2, got %d", len(got))
	}
	if got := m.At(0); len(got) != 0 {
		t.Fatalf("expected no events at index 0, got %d", len(got))
	}
	if got := m.At(-1); len(got) != 0 {
		t.Fatalf("expected negative index to be dropped, got %d", len(got))
	}
}

func TestControllerEmitsFrameEvents(t *testing.T) {
	sched := newRecordingScheduler()
	c := newTestController(t, []Frame{{0, 0}, {1, 0}, {2, 0}}, sched)

	events := NewEventMap()
	events.Add(1, Event{Type: EventEmit, Payload: "footstep"})
	events.Add(2, Event{Type: EventEmit, Payload: "footstep"})

	type hit struct {
		index int
		coord Frame
	}
	var hits []hit
	c.BindEvents(events, &Emitter{Handlers: []EventHandler{
		func(index int, coord Frame, evt Event) { hits = append(hits, hit{index, coord}) },
	}})

	c.Play()
	sched.fire() // index 1
	sched.fire() // index 2
	sched.fire() // index 0, no event

	if len(hits) != 2 {
		t.Fatalf("expected 2 event hits, got %d", len(hits))
	}
	if hits[0] != (hit{1, Frame{1, 0}}) || hits[1] != (hit{2, Frame{2, 0}}) {
		t.Fatalf("unexpected hits %v", hits)
	}
}

func TestKeyedPerKeyEvents(t *testing.T) {
	sched := newRecordingScheduler()
	c := newTestKeyed(t, sched)

	runEvents := NewEventMap()
	runEvents.Add(1, Event{Type: EventEmit, Payload: "step"})
	c.SetAnimationEvents("run", runEvents)

	var payloads []string
	c.BindEvents(&Emitter{Handlers: []EventHandler{
		func(index int, coord Frame, evt Event) { payloads = append(payloads, evt.Payload) },
	}})

	if err := c.Play("idle"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sched.fire()
	sched.fire()
	if len(payloads) != 0 {
		t.Fatalf("expected no events while idle is active, got %v", payloads)
	}

	if err := c.Play("run"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sched.fire() // run index 1
	if len(payloads) != 1 || payloads[0] != "step" {
		t.Fatalf("expected run's index-1 event, got %v", payloads)
	}
}
