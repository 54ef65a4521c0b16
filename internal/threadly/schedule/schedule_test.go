package schedule

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestAfterFires(t *testing.T) {
	s := New()
	fired := make(chan time.Time, 1)
	start := time.Now()

	task := s.After(30*time.Millisecond, func() { fired <- time.Now() })

	select {
	case at := <-fired:
		if elapsed := at.Sub(start); elapsed < 30*time.Millisecond {
			t.Errorf("task fired after %v, want at least 30ms", elapsed)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("task never fired")
	}

	if !task.Done() {
		t.Error("task should be done after firing")
	}
	if task.Cancel() {
		t.Error("Cancel() after firing should report false")
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", s.Pending())
	}
}

func TestCancelPreventsCallback(t *testing.T) {
	s := New()
	var calls atomic.Int32

	task := s.After(20*time.Millisecond, func() { calls.Add(1) })
	if s.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", s.Pending())
	}
	if !task.Cancel() {
		t.Error("first Cancel() should report true")
	}
	if task.Cancel() {
		t.Error("second Cancel() should report false")
	}

	time.Sleep(60 * time.Millisecond)
	if calls.Load() != 0 {
		t.Errorf("callback ran %d times after Cancel()", calls.Load())
	}
}

func TestStopCancelsAll(t *testing.T) {
	s := New()
	var calls atomic.Int32

	for i := 0; i < 5; i++ {
		s.After(20*time.Millisecond, func() { calls.Add(1) })
	}
	s.Stop()

	late := s.After(time.Millisecond, func() { calls.Add(1) })
	if !late.Done() {
		t.Error("task scheduled after Stop() should already be done")
	}

	time.Sleep(60 * time.Millisecond)
	if calls.Load() != 0 {
		t.Errorf("callbacks ran %d times after Stop()", calls.Load())
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", s.Pending())
	}
}

func TestNilTaskCancel(t *testing.T) {
	var task *Task
	if task.Cancel() {
		t.Error("nil task Cancel() should report false")
	}
}
