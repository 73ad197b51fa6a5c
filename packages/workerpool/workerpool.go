package workerpool

import (
	"runtime"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
)

// ErrPoolReleased is returned if jobs are submitted to a WorkerPool that was already released.
var ErrPoolReleased = errors.New("worker pool released")

// WorkerPool executes indexed jobs on a bounded set of goroutines.
type WorkerPool struct {
	pool *ants.Pool
}

// New creates a WorkerPool with the given amount of workers. A workerCount <= 0 uses twice the number of CPUs.
func New(workerCount int) (*WorkerPool, error) {
	if workerCount <= 0 {
		workerCount = 2 * runtime.NumCPU()
	}

	pool, err := ants.NewPool(workerCount, ants.WithNonblocking(false))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create pool with %d workers", workerCount)
	}

	return &WorkerPool{
		pool: pool,
	}, nil
}

// Map runs job(i) for every i in [0, count) and blocks until all submitted jobs are done.
func (wp *WorkerPool) Map(count int, job func(index int)) (err error) {
	var wg sync.WaitGroup
	for i := 0; i < count; i++ {
		currentIndex := i

		wg.Add(1)
		if submitErr := wp.pool.Submit(func() {
			defer wg.Done()

			job(currentIndex)
		}); submitErr != nil {
			wg.Done()

			if errors.Is(submitErr, ants.ErrPoolClosed) {
				submitErr = ErrPoolReleased
			}
			err = errors.Wrapf(submitErr, "failed to submit job %d", currentIndex)
			break
		}
	}
	wg.Wait()

	return err
}

// WorkerCount returns the maximum amount of concurrently running jobs.
func (wp *WorkerPool) WorkerCount() int {
	return wp.pool.Cap()
}

// Running returns the amount of workers that are currently busy.
func (wp *WorkerPool) Running() int {
	return wp.pool.Running()
}

// Release stops the WorkerPool. Jobs that are submitted afterwards fail with ErrPoolReleased.
func (wp *WorkerPool) Release() {
	wp.pool.Release()
}
