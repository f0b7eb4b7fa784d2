package meshing

import (
	"context"
	"errors"
	"sync"
)

// ErrPoolClosed is returned when submitting to a pool that has shut down.
var ErrPoolClosed = errors.New("meshing: worker pool closed")

// Job is one extraction request.
type Job struct {
	ID      int
	Density DensityFunc
	XCount  int
	YCount  int
	ZCount  int
	// Result channel - will be sent the result when done
	ResultChan chan<- Result
}

// Result contains the mesh produced for a Job.
type Result struct {
	ID   int
	Mesh *MeshData
}

// WorkerPool runs Extract on a fixed set of goroutines. The density
// functions of submitted jobs must be safe for concurrent use.
type WorkerPool struct {
	jobQueue chan Job
	workers  int
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

// NewWorkerPool creates a new extraction worker pool
func NewWorkerPool(workers int, queueSize int) *WorkerPool {
	ctx, cancel := context.WithCancel(context.Background())
	pool := &WorkerPool{
		jobQueue: make(chan Job, queueSize),
		workers:  max(workers, 1),
		ctx:      ctx,
		cancel:   cancel,
	}

	for i := 0; i < pool.workers; i++ {
		pool.wg.Add(1)
		go pool.worker()
	}

	return pool
}

// SubmitJob queues job without blocking.
// Returns true if job was submitted successfully, false if queue is full
func (p *WorkerPool) SubmitJob(job Job) bool {
	if p.ctx.Err() != nil {
		return false
	}
	select {
	case p.jobQueue <- job:
		return true
	default:
		return false
	}
}

// SubmitJobBlocking waits until job is queued, ctx is done or the pool
// shuts down.
func (p *WorkerPool) SubmitJobBlocking(ctx context.Context, job Job) error {
	select {
	case p.jobQueue <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-p.ctx.Done():
		return ErrPoolClosed
	}
}

func (p *WorkerPool) worker() {
	defer p.wg.Done()

	for {
		select {
		case job := <-p.jobQueue:
			result := Result{
				ID:   job.ID,
				Mesh: Extract(job.Density, job.XCount, job.YCount, job.ZCount),
			}

			select {
			case job.ResultChan <- result:
			case <-p.ctx.Done():
				return
			}

		case <-p.ctx.Done():
			return
		}
	}
}

// Shutdown stops the workers and waits for them to exit. Jobs still queued
// are dropped.
func (p *WorkerPool) Shutdown() {
	p.cancel()
	p.wg.Wait()
}

// QueueLength returns the current number of jobs in the queue
func (p *WorkerPool) QueueLength() int {
	return len(p.jobQueue)
}

// ExtractAll runs jobs on a temporary pool of the given size and returns
// the meshes indexed like jobs. The ID and ResultChan of each job are
// overwritten.
func ExtractAll(ctx context.Context, workers int, jobs []Job) ([]*MeshData, error) {
	meshes := make([]*MeshData, len(jobs))
	if len(jobs) == 0 {
		return meshes, nil
	}

	pool := NewWorkerPool(workers, len(jobs))
	defer pool.Shutdown()

	results := make(chan Result, len(jobs))
	for i, job := range jobs {
		job.ID = i
		job.ResultChan = results
		if err := pool.SubmitJobBlocking(ctx, job); err != nil {
			return nil, err
		}
	}

	for range jobs {
		select {
		case r := <-results:
			meshes[r.ID] = r.Mesh
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return meshes, nil
}
