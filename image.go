package gridview

import (
	"context"
	"fmt"
	"io/fs"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/cache"
	"golang.org/x/sync/semaphore"
	"golang.org/x/sync/singleflight"

	"github.com/gogpu/gridview/internal/resource"
)

// imageLoader resolves image descriptors against a resource root. Decoding
// happens on background goroutines; results come back as tasks on the queue.
type imageLoader struct {
	root   fs.FS
	sem    *semaphore.Weighted
	group  singleflight.Group
	images *cache.ShardedCache[string, *gg.ImageBuf]
	queue  *taskQueue
}

func newImageLoader(root fs.FS, concurrency int64, capacity int, queue *taskQueue) *imageLoader {
	return &imageLoader{
		root:   root,
		sem:    semaphore.NewWeighted(concurrency),
		images: cache.NewSharded[string, *gg.ImageBuf](capacity, cache.StringHasher),
		queue:  queue,
	}
}

// request loads name and posts then(img) to the task queue. A failed load
// posts nothing. then always runs after request returns, even on a cache hit.
func (l *imageLoader) request(name string, then func(img *gg.ImageBuf)) {
	l.queue.begin()
	go func() {
		img, err := l.load(name)
		if err != nil {
			Logger().Debug("gridview: image load failed", "name", name, "err", err)
			l.queue.finish(nil)
			return
		}
		l.queue.finish(func() { then(img) })
	}()
}

func (l *imageLoader) load(name string) (*gg.ImageBuf, error) {
	if l.root == nil {
		return nil, ErrNoResourceRoot
	}
	if img, ok := l.images.Get(name); ok {
		return img, nil
	}
	v, err, _ := l.group.Do(name, func() (any, error) {
		if img, ok := l.images.Get(name); ok {
			return img, nil
		}
		// Acquire with a background context: loads are never cancelled.
		if err := l.sem.Acquire(context.Background(), 1); err != nil {
			return nil, err
		}
		defer l.sem.Release(1)

		decoded, err := resource.Load(l.root, name)
		if err != nil {
			return nil, fmt.Errorf("gridview: load %q: %w", name, err)
		}
		img := gg.ImageBufFromImage(decoded)
		l.images.Set(name, img)
		return img, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*gg.ImageBuf), nil
}

// taskQueue collects continuations posted by background loads until the
// drawing goroutine drains them.
type taskQueue struct {
	mu       sync.Mutex
	tasks    []func()
	inflight int
	ready    chan struct{}
}

func newTaskQueue() *taskQueue {
	return &taskQueue{ready: make(chan struct{}, 1)}
}

// begin registers a load in flight.
func (q *taskQueue) begin() {
	q.mu.Lock()
	q.inflight++
	q.mu.Unlock()
}

// finish completes a load started with begin, queueing task if non-nil.
func (q *taskQueue) finish(task func()) {
	q.mu.Lock()
	q.inflight--
	if task != nil {
		q.tasks = append(q.tasks, task)
	}
	q.mu.Unlock()

	select {
	case q.ready <- struct{}{}:
	default:
	}
}

// drain runs every queued task on the calling goroutine and returns how
// many ran. It never blocks on loads still in flight.
func (q *taskQueue) drain() int {
	n := 0
	for {
		q.mu.Lock()
		tasks := q.tasks
		q.tasks = nil
		q.mu.Unlock()

		if len(tasks) == 0 {
			return n
		}
		for _, task := range tasks {
			task()
		}
		n += len(tasks)
	}
}

// idle reports whether no load is in flight and no task is queued.
func (q *taskQueue) idle() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.inflight == 0 && len(q.tasks) == 0
}

// wait drains tasks until every load has completed or ctx is done.
func (q *taskQueue) wait(ctx context.Context) error {
	for {
		q.drain()
		if q.idle() {
			return nil
		}
		select {
		case <-q.ready:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
