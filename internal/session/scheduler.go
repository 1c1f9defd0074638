package session

import (
	"sync"
	"time"
)

// Timer is a handle to a scheduled task.
type Timer interface {
	// Stop cancels the task. It reports whether the call prevented the
	// task from running.
	Stop() bool
}

// Scheduler runs a function once after a delay.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Scheduled is a task waiting in a Deferred queue.
type Scheduled struct {
	ID    uint64
	Delay time.Duration
}

// Deferred is a Scheduler that never runs anything on its own. The owner
// drains new tasks with TakeScheduled, waits Delay however it likes, and
// calls Fire on its own goroutine. The TUI turns each task into a tea.Tick
// so the callback runs inside the update loop.
type Deferred struct {
	mu        sync.Mutex
	next      uint64
	tasks     map[uint64]func()
	scheduled []Scheduled
}

// NewDeferred returns an empty queue.
func NewDeferred() *Deferred {
	return &Deferred{tasks: make(map[uint64]func())}
}

func (q *Deferred) AfterFunc(d time.Duration, f func()) Timer {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.next++
	id := q.next
	q.tasks[id] = f
	q.scheduled = append(q.scheduled, Scheduled{ID: id, Delay: d})
	return &deferredTimer{q: q, id: id}
}

// TakeScheduled returns the tasks scheduled since the previous call.
func (q *Deferred) TakeScheduled() []Scheduled {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := q.scheduled
	q.scheduled = nil
	return out
}

// Fire runs the task with the given ID unless it was stopped or already
// fired. It reports whether the task ran.
func (q *Deferred) Fire(id uint64) bool {
	q.mu.Lock()
	f, ok := q.tasks[id]
	delete(q.tasks, id)
	q.mu.Unlock()

	if !ok {
		return false
	}
	f()
	return true
}

// Pending returns the number of tasks that have neither fired nor stopped.
func (q *Deferred) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}

type deferredTimer struct {
	q  *Deferred
	id uint64
}

func (t *deferredTimer) Stop() bool {
	t.q.mu.Lock()
	defer t.q.mu.Unlock()

	if _, ok := t.q.tasks[t.id]; !ok {
		return false
	}
	delete(t.q.tasks, t.id)
	return true
}
