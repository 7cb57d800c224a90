package anim

import (
	"sync"
	"time"
)

// Token identifies one scheduler subscription.
type Token uint64

// Scheduler invokes a callback at a configured rate. Subscribe returns a
// token that Unsubscribe releases. Callbacks fire on the scheduler's own
// execution context; implementations must never queue missed ticks, only
// the schedule matters.
type Scheduler interface {
	Subscribe(hz float64, fn func()) Token
	Unsubscribe(tok Token)
}

// TickerScheduler drives each subscription with a real time.Ticker on its
// own goroutine. Ticker semantics already drop ticks the callback was too
// slow for. Callers sharing state between callbacks and other goroutines
// must serialize access themselves.
type TickerScheduler struct {
	mu    sync.Mutex
	next  Token
	stops map[Token]chan struct{}
}

func NewTickerScheduler() *TickerScheduler {
	return &TickerScheduler{stops: make(map[Token]chan struct{})}
}

func (s *TickerScheduler) Subscribe(hz float64, fn func()) Token {
	if hz <= 0 {
		panic("anim: non-positive scheduler rate")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	tok := s.next
	stop := make(chan struct{})
	s.stops[tok] = stop
	go func() {
		t := time.NewTicker(time.Duration(float64(time.Second) / hz))
		defer t.Stop()
		for {
			select {
			case <-stop:
				return
			case <-t.C:
				fn()
			}
		}
	}()
	return tok
}

func (s *TickerScheduler) Unsubscribe(tok Token) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if stop, ok := s.stops[tok]; ok {
		close(stop)
		delete(s.stops, tok)
	}
}

// Close releases every live subscription.
func (s *TickerScheduler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for tok, stop := range s.stops {
		close(stop)
		delete(s.stops, tok)
	}
}

// StepScheduler is a deterministic scheduler the host steps explicitly,
// display-link style: the host calls Step once per host tick (an ebiten
// Update, a test loop) and due subscriptions fire synchronously inside it.
// A subscription fires at most once per Step, so a slow host never builds
// up a backlog of missed ticks.
type StepScheduler struct {
	hostHz float64
	next   Token
	subs   []*stepSub
}

type stepSub struct {
	tok      Token
	interval float64 // host ticks between fires
	acc      float64
	fn       func()
}

// NewStepScheduler creates a StepScheduler for a host ticking at hostHz.
func NewStepScheduler(hostHz float64) *StepScheduler {
	if hostHz <= 0 {
		hostHz = 60
	}
	return &StepScheduler{hostHz: hostHz}
}

func (s *StepScheduler) Subscribe(hz float64, fn func()) Token {
	if hz <= 0 {
		panic("anim: non-positive scheduler rate")
	}
	s.next++
	s.subs = append(s.subs, &stepSub{
		tok:      s.next,
		interval: s.hostHz / hz,
		fn:       fn,
	})
	return s.next
}

func (s *StepScheduler) Unsubscribe(tok Token) {
	for i, sub := range s.subs {
		if sub.tok == tok {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return
		}
	}
}

// Active returns the number of live subscriptions.
func (s *StepScheduler) Active() int {
	return len(s.subs)
}

// Step advances one host tick, firing due subscriptions in registration
// order. Callbacks may subscribe or unsubscribe; changes take effect on
// the next Step.
func (s *StepScheduler) Step() {
	due := append([]*stepSub(nil), s.subs...)
	for _, sub := range due {
		sub.acc++
		if sub.acc < sub.interval {
			continue
		}
		sub.acc -= sub.interval
		if sub.acc >= sub.interval {
			// rate above the host rate: fire once, discard the rest
			sub.acc = 0
		}
		sub.fn()
	}
}
