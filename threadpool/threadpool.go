package threadpool

import (
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
)

// queueSizePerWorker is how many queued tasks each worker contributes to the
// pool's backlog capacity. Submitting past that capacity blocks the caller,
// which is what throttles the accept loop when every worker is busy.
const queueSizePerWorker = 32

// ThreadPool runs submitted tasks on a fixed number of workers fed from a
// bounded queue.
type ThreadPool struct {
	workerCount int32
	tasks       chan func()
	wg          sync.WaitGroup
	quit        chan struct{}

	started, shutdown int32
}

// New returns a new thread pool with the given number of workers. The
// worker count must be at least 1. Use Start to launch the workers.
func New(workerCount int32) *ThreadPool {
	return &ThreadPool{
		workerCount: workerCount,
		tasks:       make(chan func(), int(workerCount)*queueSizePerWorker),
		quit:        make(chan struct{}),
	}
}

// WorkerCount returns the number of workers the pool was created with.
func (tp *ThreadPool) WorkerCount() int32 {
	return tp.workerCount
}

// Start launches the workers.
func (tp *ThreadPool) Start() {
	// Already started?
	if atomic.AddInt32(&tp.started, 1) != 1 {
		return
	}

	log.Tracef("Starting thread pool with %d workers", tp.workerCount)

	for i := int32(0); i < tp.workerCount; i++ {
		// Declaring this variable is necessary as it needs be declared in the same
		// scope of the anonymous function below it.
		workerID := i
		tp.wg.Add(1)
		spawn(func() {
			tp.workerHandler(workerID)
		})
	}
}

// Submit hands a task to the pool. It blocks while the queue is full and
// fails once the pool has been stopped.
func (tp *ThreadPool) Submit(task func()) error {
	if atomic.LoadInt32(&tp.shutdown) != 0 {
		return errors.New("the thread pool is shutting down")
	}
	select {
	case tp.tasks <- task:
		return nil
	case <-tp.quit:
		return errors.New("the thread pool is shutting down")
	}
}

// Stop signals the workers to exit and waits for them to finish their
// current tasks. Tasks still waiting in the queue are dropped.
func (tp *ThreadPool) Stop() {
	// Make sure this only happens once.
	if atomic.AddInt32(&tp.shutdown, 1) != 1 {
		log.Warnf("Thread pool is already in the process of shutting down")
		return
	}

	log.Tracef("Thread pool shutting down")
	close(tp.quit)
	tp.wg.Wait()
	log.Tracef("Thread pool shutdown complete")
}

// workerHandler runs tasks from the queue until the pool stops. It must be
// run as a goroutine.
func (tp *ThreadPool) workerHandler(workerID int32) {
	defer tp.wg.Done()

	log.Tracef("Worker %d started", workerID)
	for {
		select {
		case task := <-tp.tasks:
			task()
		case <-tp.quit:
			log.Tracef("Worker %d done", workerID)
			return
		}
	}
}
