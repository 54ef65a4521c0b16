// Package schedule runs delayed callbacks that can be cancelled when their owner is torn down.
package schedule

import (
	"sync"
	"time"
)

// Task is a single pending callback.
type Task struct {
	mu    sync.Mutex
	timer *time.Timer
	done  bool
	owner *Scheduler
}

// Cancel stops the task. It reports true if the callback had not started yet.
func (t *Task) Cancel() bool {
	if t == nil {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.done {
		return false
	}
	t.done = true
	t.timer.Stop()
	t.owner.forget(t)
	return true
}

// Done reports whether the task has fired or been cancelled.
func (t *Task) Done() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.done
}

func (t *Task) fire(fn func()) {
	t.mu.Lock()
	if t.done {
		t.mu.Unlock()
		return
	}
	t.done = true
	t.mu.Unlock()
	t.owner.forget(t)
	fn()
}

// Scheduler tracks tasks so they can all be cancelled at once.
type Scheduler struct {
	mu      sync.Mutex
	tasks   map[*Task]struct{}
	stopped bool
}

// New creates a Scheduler.
func New() *Scheduler {
	return &Scheduler{tasks: make(map[*Task]struct{})}
}

// After runs fn once delay has elapsed. On a stopped scheduler the task is returned already
// cancelled.
func (s *Scheduler) After(delay time.Duration, fn func()) *Task {
	t := &Task{owner: s}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		t.done = true
		t.timer = time.NewTimer(0)
		t.timer.Stop()
		return t
	}
	s.tasks[t] = struct{}{}
	t.mu.Lock()
	t.timer = time.AfterFunc(delay, func() { t.fire(fn) })
	t.mu.Unlock()
	return t
}

// Pending returns the number of armed tasks.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// Stop cancels every pending task and rejects new ones.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	s.stopped = true
	tasks := make([]*Task, 0, len(s.tasks))
	for t := range s.tasks {
		tasks = append(tasks, t)
	}
	s.mu.Unlock()

	for _, t := range tasks {
		t.Cancel()
	}
}

func (s *Scheduler) forget(t *Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tasks, t)
}
