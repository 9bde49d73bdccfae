package common

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncerCoalescesBursts(t *testing.T) {
	var calls atomic.Int32
	d := NewDebouncer(30*time.Millisecond, func() {
		calls.Add(1)
	})
	defer d.Stop()

	for i := 0; i < 5; i++ {
		d.Trigger()
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(100 * time.Millisecond)
	if got := calls.Load(); got != 1 {
		t.Errorf("Expected one call for a burst of triggers, got %d", got)
	}
}

func TestDebouncerFiresAgainAfterQuietPeriod(t *testing.T) {
	var calls atomic.Int32
	d := NewDebouncer(10*time.Millisecond, func() {
		calls.Add(1)
	})
	defer d.Stop()

	d.Trigger()
	time.Sleep(50 * time.Millisecond)
	d.Trigger()
	time.Sleep(50 * time.Millisecond)

	if got := calls.Load(); got != 2 {
		t.Errorf("Expected two separate calls, got %d", got)
	}
}

func TestDebouncerStopCancelsPending(t *testing.T) {
	var calls atomic.Int32
	d := NewDebouncer(20*time.Millisecond, func() {
		calls.Add(1)
	})

	d.Trigger()
	d.Stop()
	time.Sleep(60 * time.Millisecond)

	if got := calls.Load(); got != 0 {
		t.Errorf("Expected stop to cancel the pending call, got %d", got)
	}
}
