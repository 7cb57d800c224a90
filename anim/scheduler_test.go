package anim

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestStepSchedulerRates(t *testing.T) {
	cases := []struct {
		name      string
		hostHz    float64
		hz        float64
		steps     int
		wantFires int
	}{
		{"half_host_rate", 60, 30, 60, 30},
		{"sixth_host_rate", 60, 10, 60, 10},
		{"at_host_rate", 60, 60, 60, 60},
		{"above_host_rate_clamps", 60, 120, 60, 60},
		{"uneven_divisor", 60, 24, 60, 24},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := NewStepScheduler(c.hostHz)
			fires := 0
			s.Subscribe(c.hz, func() { fires++ })
			for i := 0; i < c.steps; i++ {
				s.Step()
			}
			if fires != c.wantFires {
				t.Fatalf("expected %d fires over %d steps, got %d", c.wantFires, c.steps, fires)
			}
		})
	}
}

func TestStepSchedulerUnsubscribe(t *testing.T) {
	s := NewStepScheduler(60)
	a, b := 0, 0
	tokA := s.Subscribe(30, func() { a++ })
	s.Subscribe(30, func() { b++ })
	if s.Active() != 2 {
		t.Fatalf("expected 2 subscriptions, got %d", s.Active())
	}

	for i := 0; i < 10; i++ {
		s.Step()
	}
	s.Unsubscribe(tokA)
	for i := 0; i < 10; i++ {
		s.Step()
	}

	if a != 5 {
		t.Fatalf("expected unsubscribed callback to stop at 5 fires, got %d", a)
	}
	if b != 10 {
		t.Fatalf("expected surviving callback to reach 10 fires, got %d", b)
	}
	if s.Active() != 1 {
		t.Fatalf("expected 1 subscription, got %d", s.Active())
	}

	// unknown token is a no-op
	s.Unsubscribe(Token(999))
	if s.Active() != 1 {
		t.Fatalf("expected unknown token to change nothing, got %d", s.Active())
	}
}

func TestStepSchedulerNonPositiveRatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for non-positive rate")
		}
	}()
	NewStepScheduler(60).Subscribe(0, func() {})
}

func TestTickerSchedulerLifecycle(t *testing.T) {
	s := NewTickerScheduler()
	defer s.Close()

	var fires atomic.Int64
	tok := s.Subscribe(200, func() { fires.Add(1) })

	deadline := time.Now().Add(2 * time.Second)
	for fires.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if fires.Load() == 0 {
		t.Fatal("expected at least one tick")
	}

	s.Unsubscribe(tok)
	settled := fires.Load()
	time.Sleep(50 * time.Millisecond)
	if got := fires.Load(); got > settled+1 {
		t.Fatalf("expected ticks to stop after unsubscribe, went %d -> %d", settled, got)
	}
}
