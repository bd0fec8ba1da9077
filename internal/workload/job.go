// Package workload runs verified push/pop workloads against deques.
package workload

import (
	"math/rand"
	"strings"

	"github.com/skyline93/deque/internal/deque"
	"github.com/skyline93/deque/internal/digest"
	"github.com/skyline93/deque/internal/errors"
)

// ErrMismatch is returned when a deque returns a value other than the one
// expected by the model.
var ErrMismatch = errors.New("value mismatch")

// Mode selects the access pattern of a job.
type Mode uint8

// These are the supported access patterns.
const (
	FIFO  Mode = 1 + iota // push back, pop front
	LIFO                  // push back, pop back
	Mixed                 // random pushes and pops at both ends
)

func (m Mode) String() string {
	s := "invalid"
	switch m {
	case FIFO:
		s = "fifo"
	case LIFO:
		s = "lifo"
	case Mixed:
		s = "mixed"
	}
	return s
}

// ParseMode returns the mode named s.
func ParseMode(s string) (Mode, error) {
	for _, m := range []Mode{FIFO, LIFO, Mixed} {
		if strings.EqualFold(s, m.String()) {
			return m, nil
		}
	}
	return 0, errors.Errorf("invalid mode %q", s)
}

// Job describes one workload. Every job uses a deque of its own.
type Job struct {
	ID    int
	Seed  int64
	Count int
	Mode  Mode
}

// Result is the outcome of a successful job.
type Result struct {
	Job

	Pushed int
	Popped int

	PeakSize     int
	PeakBuckets  int
	PeakCapacity int

	// Digest is the ID of the deque contents at the end of the fill phase.
	Digest digest.ID
}

// Run executes j and verifies every value it pops.
func Run(j Job) (Result, error) {
	res := Result{Job: j}
	w := &worker{d: deque.New(), rnd: rand.New(rand.NewSource(j.Seed)), res: &res}

	switch j.Mode {
	case FIFO, LIFO:
		for i := 0; i < j.Count; i++ {
			w.pushBack()
		}
	case Mixed:
		for i := 0; i < j.Count; i++ {
			if err := w.step(); err != nil {
				return res, errors.Wrapf(err, "job %d, step %d", j.ID, i)
			}
		}
	default:
		return res, errors.Errorf("job %d: invalid mode %v", j.ID, j.Mode)
	}

	res.Digest = digest.Values(w.model.values())
	if w.d.Size() != w.model.size() || !digest.Sum(w.d).Equal(res.Digest) {
		return res, errors.Wrapf(ErrMismatch, "job %d: contents differ from model", j.ID)
	}

	popBack := j.Mode == LIFO
	for w.d.Size() > 0 {
		if err := w.pop(popBack); err != nil {
			return res, errors.Wrapf(err, "job %d, drain", j.ID)
		}
	}

	if st := w.d.Stats(); st.Buckets != 0 {
		return res, errors.Errorf("job %d: %d blocks still allocated after drain", j.ID, st.Buckets)
	}

	return res, nil
}

// worker drives a deque and a model side by side.
type worker struct {
	d     *deque.Deque
	model model
	rnd   *rand.Rand
	res   *Result
}

func (w *worker) pushBack() {
	v := w.rnd.Int()
	w.d.PushBack(v)
	w.model.pushBack(v)
	w.pushed()
}

func (w *worker) pushFront() {
	v := w.rnd.Int()
	w.d.PushFront(v)
	w.model.pushFront(v)
	w.pushed()
}

func (w *worker) pushed() {
	w.res.Pushed++

	st := w.d.Stats()
	w.res.PeakSize = max(w.res.PeakSize, st.Size)
	w.res.PeakBuckets = max(w.res.PeakBuckets, st.Buckets)
	w.res.PeakCapacity = max(w.res.PeakCapacity, st.Capacity)
}

func (w *worker) pop(back bool) error {
	var (
		v, want int
		err     error
	)
	if back {
		v, err = w.d.PopBack()
		want = w.model.popBack()
	} else {
		v, err = w.d.PopFront()
		want = w.model.popFront()
	}
	if err != nil {
		return err
	}

	w.res.Popped++
	if v != want {
		return errors.Wrapf(ErrMismatch, "popped %d, want %d", v, want)
	}
	return nil
}

// step performs one random operation. Pops on an empty deque must fail with
// deque.ErrEmpty.
func (w *worker) step() error {
	switch w.rnd.Intn(5) {
	case 0, 1:
		w.pushBack()
	case 2:
		w.pushFront()
	default:
		back := w.rnd.Intn(2) == 0
		if w.model.size() > 0 {
			return w.pop(back)
		}

		var err error
		if back {
			_, err = w.d.PopBack()
		} else {
			_, err = w.d.PopFront()
		}
		if !errors.Is(err, deque.ErrEmpty) {
			return errors.Errorf("pop on empty deque returned %v", err)
		}
	}
	return nil
}
