package history

import (
	"sync"

	"github.com/gammazero/deque"
)

// DefaultCapacity is the number of samples kept for the rolling chart.
const DefaultCapacity = 200

// Buffer holds the most recent samples in arrival order. When full, appending evicts the oldest sample.
type Buffer struct {
	mu       sync.Mutex
	samples  deque.Deque[float64]
	capacity int
}

func New(capacity int) *Buffer {
	if capacity < 1 {
		capacity = 1
	}
	return &Buffer{capacity: capacity}
}

// Append adds value as the newest sample. Non-finite values are stored as-is.
func (b *Buffer) Append(value float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.samples.Len() >= b.capacity {
		b.samples.PopFront()
	}
	b.samples.PushBack(value)
}

// Snapshot returns a copy of the samples, oldest first.
func (b *Buffer) Snapshot() []float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]float64, b.samples.Len())
	for i := range out {
		out[i] = b.samples.At(i)
	}
	return out
}

func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.samples.Len()
}

func (b *Buffer) Cap() int {
	return b.capacity
}

// Last returns the newest sample, if any.
func (b *Buffer) Last() (float64, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.samples.Len() == 0 {
		return 0, false
	}
	return b.samples.Back(), true
}
