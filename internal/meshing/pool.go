package meshing

import (
	"context"
	"sync"

	"voxcraft/internal/world"
)

// Job is a whole-chunk mesh request. Results are delivered on ResultChan;
// the pool never closes it.
type Job struct {
	Store      *world.ChunkStore
	Chunk      *world.Chunk
	ResultChan chan Result
}

// Result carries the finished mesh for a chunk. A build always succeeds:
// an all-air chunk simply yields empty streams.
type Result struct {
	Coord world.ChunkCoord
	Data  *MeshData
}

// WorkerPool runs chunk mesh builds on a fixed set of goroutines. The
// per-chunk tile parallelism lives inside Build; the pool only spreads
// whole chunks across workers so the render thread never blocks on
// meshing.
type WorkerPool struct {
	jobQueue chan Job
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

// NewWorkerPool starts workers goroutines consuming from a queue of the
// given size.
func NewWorkerPool(workers, queueSize int) *WorkerPool {
	ctx, cancel := context.WithCancel(context.Background())
	p := &WorkerPool{
		jobQueue: make(chan Job, queueSize),
		ctx:      ctx,
		cancel:   cancel,
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	return p
}

// Submit enqueues a job without blocking. Returns false when the queue
// is full.
func (p *WorkerPool) Submit(job Job) bool {
	select {
	case p.jobQueue <- job:
		return true
	default:
		return false
	}
}

// SubmitBlocking enqueues a job, waiting for queue space or shutdown.
func (p *WorkerPool) SubmitBlocking(job Job) {
	select {
	case p.jobQueue <- job:
	case <-p.ctx.Done():
	}
}

func (p *WorkerPool) worker() {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobQueue:
			result := Result{
				Coord: job.Chunk.Coord,
				Data:  BuildChunk(job.Store, job.Chunk),
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

// QueueLength returns the number of jobs currently waiting.
func (p *WorkerPool) QueueLength() int {
	return len(p.jobQueue)
}

// Shutdown stops the workers and waits for them to exit.
func (p *WorkerPool) Shutdown() {
	p.cancel()
	p.wg.Wait()
}
