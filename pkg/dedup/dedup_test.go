package dedup

import (
	"testing"
	"time"
)

func TestNewWindow(t *testing.T) {
	w := NewWindow(5*time.Second, 100)
	if w == nil {
		t.Fatal("NewWindow returned nil")
	}
	if w.interval != 5*time.Second {
		t.Errorf("interval = %v, want %v", w.interval, 5*time.Second)
	}
	if w.maxKeys != 100 {
		t.Errorf("maxKeys = %d, want 100", w.maxKeys)
	}
	if w.Size() != 0 {
		t.Errorf("initial Size() = %d, want 0", w.Size())
	}
}

func TestWindow_Allow(t *testing.T) {
	w := NewWindow(100*time.Millisecond, 100)
	now := time.Now()

	if !w.Allow("hidden-notice", now) {
		t.Error("first event should be allowed")
	}
	if w.Size() != 1 {
		t.Errorf("Size after first event = %d, want 1", w.Size())
	}

	if w.Allow("hidden-notice", now.Add(50*time.Millisecond)) {
		t.Error("repeat within the interval should be suppressed")
	}

	if !w.Allow("hidden-notice", now.Add(150*time.Millisecond)) {
		t.Error("event after the interval should be allowed")
	}

	if !w.Allow("other-notice", now) {
		t.Error("a different key should be allowed")
	}
	if w.Size() != 2 {
		t.Errorf("Size after second key = %d, want 2", w.Size())
	}
}

func TestWindow_Eviction(t *testing.T) {
	w := NewWindow(5*time.Second, 10)
	now := time.Now()

	for i := range 15 {
		key := "notice" + string(rune('0'+i))
		w.Allow(key, now.Add(-2*time.Minute))
	}

	// A fresh event pushes the map over maxKeys and evicts stale keys.
	w.Allow("trigger", now)

	if sz := w.Size(); sz > 11 {
		t.Errorf("Size after eviction = %d, expected stale keys gone", sz)
	}
}

func TestWindow_ExactBoundary(t *testing.T) {
	w := NewWindow(100*time.Millisecond, 100)
	now := time.Now()

	w.Allow("notice", now)

	// Strictly less than the interval suppresses; the boundary itself allows.
	if w.Allow("notice", now.Add(99*time.Millisecond)) {
		t.Error("event just inside the interval should be suppressed")
	}
	if !w.Allow("notice", now.Add(100*time.Millisecond)) {
		t.Error("event at the interval boundary should be allowed")
	}
}
