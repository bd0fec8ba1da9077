package workload

import (
	"context"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Pool concurrently runs incoming jobs. Each job owns its deque, no deque is
// ever shared between workers.
type Pool struct {
	ch chan<- poolJob
}

type poolJob struct {
	Job
	cb func(res Result)
}

// NewPool returns a new pool. The workers are started in wg and stop when ctx
// is cancelled or TriggerShutdown is called.
func NewPool(ctx context.Context, wg *errgroup.Group, workers uint) *Pool {
	ch := make(chan poolJob)
	p := &Pool{
		ch: ch,
	}

	for i := uint(0); i < workers; i++ {
		wg.Go(func() error {
			return p.worker(ctx, ch)
		})
	}

	return p
}

func (p *Pool) worker(ctx context.Context, jobs <-chan poolJob) error {
	for {
		var job poolJob
		var ok bool
		select {
		case <-ctx.Done():
			return nil
		case job, ok = <-jobs:
			if !ok {
				return nil
			}
		}

		log.Debugf("job %d: %v, %d ops, seed %d", job.ID, job.Mode, job.Count, job.Seed)
		res, err := Run(job.Job)
		if err != nil {
			log.Debugf("job %d failed, exiting: %v", job.ID, err)
			return err
		}
		job.cb(res)
	}
}

// Submit queues j. cb is called from a worker goroutine once the job has
// finished successfully.
func (p *Pool) Submit(ctx context.Context, j Job, cb func(res Result)) {
	select {
	case p.ch <- poolJob{Job: j, cb: cb}:
	case <-ctx.Done():
		log.Debugf("not submitting job %d, context is cancelled", j.ID)
	}
}

// TriggerShutdown tells the workers to exit once all submitted jobs are done.
func (p *Pool) TriggerShutdown() {
	close(p.ch)
}
