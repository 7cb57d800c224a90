package anim

import "fmt"

// keyedSource resolves the active sequence through a registry and the
// most recently selected key. Before any selection it yields nil, which
// the controller treats as a contract violation on tick.
type keyedSource[K comparable] struct {
	registry map[K]*Sequence
	active   *Sequence
}

func (s *keyedSource[K]) activeSequence() *Sequence { return s.active }

// KeyedController plays one of several sequences registered under
// application-defined keys, switchable at runtime. It is a Controller
// whose active sequence is resolved through the registry.
type KeyedController[K comparable] struct {
	*Controller

	source    *keyedSource[K]
	activeKey K
	hasActive bool

	// per-key playback metadata registered alongside the sequences
	eventMaps map[K]*EventMap
	rates     map[K]float64
}

// NewKeyedController creates a Stopped keyed controller. No sequence is
// active until Play succeeds; sequences may be empty at construction and
// added later with AddAnimation.
func NewKeyedController[K comparable](sheet Bitmap, frameW, frameH int, sequences map[K]*Sequence, fps float64, sched Scheduler) (*KeyedController[K], error) {
	src := &keyedSource[K]{registry: make(map[K]*Sequence, len(sequences))}
	for key, seq := range sequences {
		if seq == nil {
			return nil, fmt.Errorf("%w: key %v", ErrEmptySequence, key)
		}
		src.registry[key] = seq
	}
	base, err := newController(sheet, frameW, frameH, src, fps, sched)
	if err != nil {
		return nil, err
	}
	return &KeyedController[K]{
		Controller: base,
		source:     src,
		eventMaps:  make(map[K]*EventMap),
		rates:      make(map[K]float64),
	}, nil
}

// AddAnimation registers seq under key, replacing any existing entry. A
// replaced entry that is currently active keeps playing until the next
// successful Play for its key.
func (k *KeyedController[K]) AddAnimation(key K, seq *Sequence) error {
	if seq == nil {
		return ErrEmptySequence
	}
	k.source.registry[key] = seq
	return nil
}

// SetAnimationEvents attaches an event map emitted while key is active.
func (k *KeyedController[K]) SetAnimationEvents(key K, m *EventMap) {
	k.eventMaps[key] = m
}

// SetAnimationFPS overrides the playback rate used while key is active.
// The override applies on the next successful Play for the key.
func (k *KeyedController[K]) SetAnimationFPS(key K, fps float64) error {
	if fps <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidFPS, fps)
	}
	k.rates[key] = fps
	return nil
}

// Play selects the sequence registered under key and starts playback.
// Every successful switch resets that sequence's cursor to 0, including
// re-selecting the already-active key, so a switch always restarts
// deterministically. An unknown key is returned to the caller and
// changes nothing: not the active key, not the active sequence, and no
// frame is published.
func (k *KeyedController[K]) Play(key K) error {
	seq, ok := k.source.registry[key]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownKey, key)
	}
	seq.Reset()
	k.source.active = seq
	k.activeKey = key
	k.hasActive = true
	k.Controller.BindEvents(k.eventMaps[key], k.emitter)
	if fps, ok := k.rates[key]; ok {
		// registered per-key rate; validated at registration
		_ = k.Controller.SetFPS(fps)
	}
	k.Controller.Play()
	return nil
}

// Resume continues playback of the already-selected sequence without
// resetting its cursor. Resuming before any successful Play subscribes a
// controller whose first tick violates the active-sequence contract.
func (k *KeyedController[K]) Resume() {
	k.Controller.Play()
}

// BindEvents installs the emitter used for all keys. Event maps are
// per-key; register them with SetAnimationEvents.
func (k *KeyedController[K]) BindEvents(e *Emitter) {
	k.emitter = e
	if k.hasActive {
		k.Controller.BindEvents(k.eventMaps[k.activeKey], e)
	}
}

// CurrentAnimationKey returns the active key, and false if no Play has
// succeeded yet.
func (k *KeyedController[K]) CurrentAnimationKey() (K, bool) {
	return k.activeKey, k.hasActive
}

// Keys returns the registered animation keys in unspecified order.
func (k *KeyedController[K]) Keys() []K {
	out := make([]K, 0, len(k.source.registry))
	for key := range k.source.registry {
		out = append(out, key)
	}
	return out
}
