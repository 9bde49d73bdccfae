package common

import (
	"sync"
	"time"
)

// QueueProcessor handles one drained batch.
type QueueProcessor[V any] func(items []V)

// QueueHandler collects items and hands them to the processor in background
// batches, keeping slow sinks (the tracking exchange) off the request path.
type QueueHandler[V any] struct {
	mu        sync.Mutex
	queue     []V
	processor QueueProcessor[V]
	chunkSize int
}

func NewQueueHandler[V any](processor QueueProcessor[V], chunkSize int) *QueueHandler[V] {
	q := &QueueHandler[V]{
		queue:     make([]V, 0),
		processor: processor,
		chunkSize: chunkSize,
	}
	go q.processQueue()
	return q
}

// Add appends items to the pending batch.
func (h *QueueHandler[V]) Add(item ...V) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.queue = append(h.queue, item...)
}

func (h *QueueHandler[V]) processQueue() {
	for {
		h.mu.Lock()
		if len(h.queue) == 0 {
			h.mu.Unlock()
			time.Sleep(time.Second)
			continue
		}
		items := h.queue[:min(h.chunkSize, len(h.queue))]
		h.queue = h.queue[len(items):]
		h.mu.Unlock()

		h.processor(items)
	}
}
