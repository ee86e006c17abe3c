package utils

import (
	"sync"
)

// WorkerPool runs background jobs with bounded concurrency.
type WorkerPool struct {
	semaphore chan struct{}
	wg        sync.WaitGroup
	mu        sync.Mutex
	closed    bool
}

// NewWorkerPool creates a WorkerPool running at most maxWorkers jobs at once.
func NewWorkerPool(maxWorkers int) *WorkerPool {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	return &WorkerPool{semaphore: make(chan struct{}, maxWorkers)}
}

// Submit schedules job without blocking the caller. It reports false once the
// pool has been closed.
func (wp *WorkerPool) Submit(job func()) bool {
	wp.mu.Lock()
	if wp.closed {
		wp.mu.Unlock()
		return false
	}
	wp.wg.Add(1)
	wp.mu.Unlock()

	go func() {
		defer wp.wg.Done()
		wp.semaphore <- struct{}{}
		defer func() { <-wp.semaphore }()
		job()
	}()
	return true
}

// Wait blocks until all submitted jobs have completed.
func (wp *WorkerPool) Wait() {
	wp.wg.Wait()
}

// Close rejects further jobs and waits for the running ones.
func (wp *WorkerPool) Close() {
	wp.mu.Lock()
	wp.closed = true
	wp.mu.Unlock()
	wp.wg.Wait()
}
