package anim

import (
	"time"

	"github.com/zyedidia/generic/queue"
)

type run struct {
	action  Action
	step    Step
	elapsed time.Duration
	pending *queue.Queue[Action]
}

// Scheduler runs at most one action per target at a time; further actions
// for a busy target wait in its queue. Tick is driven by the frame loop.
type Scheduler struct {
	runs map[*Transform]*run

	// OnComplete, when set, is called after each action finishes.
	OnComplete func(target *Transform, a Action)
}

// NewScheduler returns an idle scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{runs: make(map[*Transform]*run)}
}

// Do schedules a on target. A nil action is ignored.
func (s *Scheduler) Do(target *Transform, a Action) {
	if a == nil || target == nil {
		return
	}
	r, ok := s.runs[target]
	if !ok {
		r = &run{pending: queue.New[Action]()}
		s.runs[target] = r
	}
	if r.step != nil {
		r.pending.Enqueue(a)
		return
	}
	r.action = a
	r.step = a.Start(target)
	r.elapsed = 0
}

// Flush cancels the running action and every queued action on target.
// The transform keeps whatever state it reached.
func (s *Scheduler) Flush(target *Transform) {
	delete(s.runs, target)
}

// Running reports whether target has an action in flight.
func (s *Scheduler) Running(target *Transform) bool {
	_, ok := s.runs[target]
	return ok
}

// Len returns the number of targets with an action in flight.
func (s *Scheduler) Len() int {
	return len(s.runs)
}

// Tick advances every running action by dt.
func (s *Scheduler) Tick(dt time.Duration) {
	for target, r := range s.runs {
		r.elapsed += dt
		p := fraction(r.elapsed, r.action.Duration())
		r.step(target, p)
		if p < 1 {
			continue
		}

		if s.OnComplete != nil {
			s.OnComplete(target, r.action)
		}
		if r.pending.Empty() {
			delete(s.runs, target)
			continue
		}
		next := r.pending.Dequeue()
		r.action = next
		r.step = next.Start(target)
		r.elapsed = 0
	}
}
