package timer

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestManager_OneShot(t *testing.T) {
	manager := NewManager()
	defer manager.Stop()

	var fired atomic.Int32
	manager.AddTimer(50*time.Millisecond, 0, func() {
		fired.Add(1)
	})

	deadline := time.After(2 * time.Second)
	for fired.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("one-shot task never fired")
		case <-time.After(25 * time.Millisecond):
		}
	}

	// One-shot means exactly once.
	time.Sleep(300 * time.Millisecond)
	if got := fired.Load(); got != 1 {
		t.Errorf("Expected 1 execution, got %d", got)
	}
}

func TestManager_Repeating(t *testing.T) {
	manager := NewManager()
	defer manager.Stop()

	var fired atomic.Int32
	manager.AddTimer(50*time.Millisecond, 100*time.Millisecond, func() {
		fired.Add(1)
	})

	deadline := time.After(3 * time.Second)
	for fired.Load() < 3 {
		select {
		case <-deadline:
			t.Fatalf("Expected at least 3 executions, got %d", fired.Load())
		case <-time.After(25 * time.Millisecond):
		}
	}
}

func TestManager_RemoveTimer(t *testing.T) {
	manager := NewManager()
	defer manager.Stop()

	var fired atomic.Int32
	id := manager.AddTimer(time.Second, time.Second, func() {
		fired.Add(1)
	})
	manager.RemoveTimer(id)

	time.Sleep(1500 * time.Millisecond)
	if got := fired.Load(); got != 0 {
		t.Errorf("Removed task still fired %d times", got)
	}
}
