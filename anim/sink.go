package anim

import "image"

// FrameUpdate is one published playback frame. Image is nil when the
// frame is absent, which happens before the first successful crop and on
// ticks whose crop failed. Index is the sequence cursor that produced the
// frame, or -1 for direct coordinate jumps.
type FrameUpdate struct {
	Image image.Image
	Coord Frame
	Index int
}

// FrameSink fans published frames out to registered observers in
// registration order. The view layer reads CurrentFrame through it.
type FrameSink struct {
	handlers []func(FrameUpdate)
}

// Notify registers an observer.
func (s *FrameSink) Notify(fn func(FrameUpdate)) {
	if fn == nil {
		return
	}
	s.handlers = append(s.handlers, fn)
}

// Publish sends u to every observer.
func (s *FrameSink) Publish(u FrameUpdate) {
	if s == nil {
		return
	}
	for _, h := range s.handlers {
		h(u)
	}
}
