package dom

import (
	"sort"
	"time"
)

// TimerID identifies a scheduled callback.
type TimerID uint64

type timer struct {
	id  TimerID
	due time.Duration
	seq uint64
	fn  func()
}

// timerQueue is a virtual clock. Timers fire only when the host advances it,
// which keeps callbacks on the same goroutine as event dispatch.
type timerQueue struct {
	now     time.Duration
	nextID  TimerID
	nextSeq uint64
	pending []timer
}

// SetTimeout schedules fn to run once the document clock has advanced by d.
func (d *Document) SetTimeout(delay time.Duration, fn func()) TimerID {
	if d == nil || fn == nil {
		return 0
	}
	if delay < 0 {
		delay = 0
	}
	q := &d.timers
	q.nextID++
	q.nextSeq++
	q.pending = append(q.pending, timer{id: q.nextID, due: q.now + delay, seq: q.nextSeq, fn: fn})
	return q.nextID
}

// ClearTimeout cancels a pending timer. Unknown ids are ignored.
func (d *Document) ClearTimeout(id TimerID) {
	if d == nil {
		return
	}
	q := &d.timers
	for i, t := range q.pending {
		if t.id == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
}

// Advance moves the clock forward by d, running every timer that becomes due
// in due-time order. Timers scheduled by callbacks run in the same pass when
// they fall inside the window.
func (d *Document) Advance(delta time.Duration) {
	if d == nil || delta < 0 {
		return
	}
	q := &d.timers
	deadline := q.now + delta
	for {
		t, ok := q.popDue(deadline)
		if !ok {
			break
		}
		if t.due > q.now {
			q.now = t.due
		}
		t.fn()
	}
	q.now = deadline
}

// Settle runs every pending timer, advancing the clock to the last due time.
func (d *Document) Settle() {
	if d == nil {
		return
	}
	for len(d.timers.pending) > 0 {
		latest := d.timers.now
		for _, t := range d.timers.pending {
			if t.due > latest {
				latest = t.due
			}
		}
		d.Advance(latest - d.timers.now)
	}
}

// PendingTimers reports how many timers have not fired yet.
func (d *Document) PendingTimers() int {
	if d == nil {
		return 0
	}
	return len(d.timers.pending)
}

// Now returns the document clock.
func (d *Document) Now() time.Duration {
	if d == nil {
		return 0
	}
	return d.timers.now
}

func (q *timerQueue) popDue(deadline time.Duration) (timer, bool) {
	if len(q.pending) == 0 {
		return timer{}, false
	}
	sort.SliceStable(q.pending, func(i, j int) bool {
		if q.pending[i].due == q.pending[j].due {
			return q.pending[i].seq < q.pending[j].seq
		}
		return q.pending[i].due < q.pending[j].due
	})
	next := q.pending[0]
	if next.due > deadline {
		return timer{}, false
	}
	q.pending = q.pending[1:]
	return next, true
}
