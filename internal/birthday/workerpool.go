package birthday

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

//go:generate mockgen -source=workerpool.go -destination=mock_workerpool.go -package=birthday

type WorkerPoolI interface {
	AddTask(ctx context.Context, task Task) error
	Close()
}

type Task func() error

var ErrPoolClosed = errors.New("worker pool is closed")

// WorkerPool runs tasks on a fixed number of goroutines. Task errors are
// logged and do not stop the pool.
type WorkerPool struct {
	pool chan Task
	done chan struct{}

	// mu guards closed; senders hold it for reading so the pool channel is
	// never closed under them.
	mu        sync.RWMutex
	closed    bool
	closeOnce sync.Once
}

func NewWorkerPool(size int) *WorkerPool {
	size = max(size, 1)
	wp := &WorkerPool{
		pool: make(chan Task, size),
		done: make(chan struct{}),
	}

	for i := 0; i < size; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	for task := range wp.pool {
		if err := task(); err != nil {
			zap.L().Error("task execution failed", zap.Error(err))
		}
	}
}

// AddTask blocks until a worker slot frees up, ctx is done or the pool is
// closed. It returns ErrPoolClosed once Close has been called.
func (wp *WorkerPool) AddTask(ctx context.Context, task Task) error {
	wp.mu.RLock()
	defer wp.mu.RUnlock()
	if wp.closed {
		return ErrPoolClosed
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-wp.done:
		return ErrPoolClosed
	case wp.pool <- task:
		return nil
	}
}

// Close stops accepting tasks. Tasks already queued still run.
func (wp *WorkerPool) Close() {
	wp.closeOnce.Do(func() {
		close(wp.done)

		wp.mu.Lock()
		defer wp.mu.Unlock()
		wp.closed = true
		close(wp.pool)
	})
}
