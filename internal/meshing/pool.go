package meshing

import (
	"context"
	"sync"

	"container-indicator/internal/world"
)

// MeshJob represents a meshing job request
type MeshJob struct {
	Chunk *world.Chunk
	// Result channel - will be sent the result when done
	ResultChan chan Mesh
}

// WorkerPool manages goroutines for mesh generation
type WorkerPool struct {
	mesher   *Mesher
	jobQueue chan MeshJob
	workers  int
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

// NewWorkerPool creates a new mesh worker pool
func NewWorkerPool(mesher *Mesher, workers int, queueSize int) *WorkerPool {
	if workers < 1 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())

	pool := &WorkerPool{
		mesher:   mesher,
		jobQueue: make(chan MeshJob, queueSize),
		workers:  workers,
		ctx:      ctx,
		cancel:   cancel,
	}

	// Start worker goroutines
	for i := range workers {
		pool.wg.Add(1)
		go pool.worker(i)
	}

	return pool
}

// worker is the worker goroutine that processes mesh jobs
func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	for {
		select {
		case job := <-p.jobQueue:
			// writes made while building mark the chunk dirty again
			job.Chunk.SetClean()
			mesh := p.mesher.BuildChunk(job.Chunk)

			// Send result back
			select {
			case job.ResultChan <- mesh:
			case <-p.ctx.Done():
				return
			}

		case <-p.ctx.Done():
			return
		}
	}
}

// RebuildDirty meshes every dirty chunk of the store and waits for the results.
func (p *WorkerPool) RebuildDirty(ctx context.Context, store *world.ChunkStore) ([]Mesh, error) {
	var dirty []*world.Chunk
	for _, cc := range store.GetAllChunks() {
		if cc.Chunk.IsDirty() {
			dirty = append(dirty, cc.Chunk)
		}
	}

	// one slot per job
	results := make(chan Mesh, len(dirty))
	submitted := 0
	for _, c := range dirty {
		select {
		case p.jobQueue <- MeshJob{Chunk: c, ResultChan: results}:
			submitted++
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-p.ctx.Done():
			return nil, context.Canceled
		}
	}

	meshes := make([]Mesh, 0, submitted)
	for range submitted {
		select {
		case m := <-results:
			meshes = append(meshes, m)
		case <-ctx.Done():
			return meshes, ctx.Err()
		case <-p.ctx.Done():
			return meshes, context.Canceled
		}
	}
	return meshes, nil
}

// Shutdown stops the workers and waits for them to exit. Queued jobs are dropped.
func (p *WorkerPool) Shutdown() {
	p.cancel()
	p.wg.Wait()
}
