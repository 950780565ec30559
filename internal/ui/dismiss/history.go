package dismiss

import "sync"

// ringBuffer is a thread-safe circular buffer keeping the newest items.
type ringBuffer[T any] struct {
	mu     sync.RWMutex
	buffer []T
	head   int
	tail   int
	size   int
}

func newRingBuffer[T any](capacity int) *ringBuffer[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &ringBuffer[T]{buffer: make([]T, capacity)}
}

func (rb *ringBuffer[T]) add(item T) {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	capacity := len(rb.buffer)
	rb.buffer[rb.head] = item
	rb.head = (rb.head + 1) % capacity

	if rb.size < capacity {
		rb.size++
	} else {
		rb.tail = (rb.tail + 1) % capacity
	}
}

// all returns the items oldest first.
func (rb *ringBuffer[T]) all() []T {
	rb.mu.RLock()
	defer rb.mu.RUnlock()

	if rb.size == 0 {
		return nil
	}

	result := make([]T, rb.size)
	for i := 0; i < rb.size; i++ {
		result[i] = rb.buffer[(rb.tail+i)%len(rb.buffer)]
	}
	return result
}

func (rb *ringBuffer[T]) last() (T, bool) {
	rb.mu.RLock()
	defer rb.mu.RUnlock()

	var zero T
	if rb.size == 0 {
		return zero, false
	}
	idx := (rb.head - 1 + len(rb.buffer)) % len(rb.buffer)
	return rb.buffer[idx], true
}
