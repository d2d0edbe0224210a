package signals

// HistoryBuffer is a bounded FIFO window of recent per-session values.
// Not safe for concurrent use; each buffer is owned by exactly one session
// whose frame uploads are serialized by the caller.
type HistoryBuffer[T any] struct {
	capacity int
	values   []T
	onEvict  func(T)
}

func NewHistoryBuffer[T any](capacity int) *HistoryBuffer[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &HistoryBuffer[T]{capacity: capacity}
}

// SetEvictCallback registers a hook run for every value that falls out of
// the window, including on Clear. Used to release frame mats.
func (h *HistoryBuffer[T]) SetEvictCallback(fn func(T)) {
	h.onEvict = fn
}

// Push appends a value, evicting the oldest entry once the window is full.
func (h *HistoryBuffer[T]) Push(value T) {
	if len(h.values) == h.capacity {
		evicted := h.values[0]
		copy(h.values, h.values[1:])
		h.values = h.values[:h.capacity-1]
		if h.onEvict != nil {
			h.onEvict(evicted)
		}
	}
	h.values = append(h.values, value)
}

func (h *HistoryBuffer[T]) Len() int {
	return len(h.values)
}

func (h *HistoryBuffer[T]) Capacity() int {
	return h.capacity
}

// Values returns the window oldest-first. The slice is a copy; the buffer
// retains ownership of the elements themselves.
func (h *HistoryBuffer[T]) Values() []T {
	out := make([]T, len(h.values))
	copy(out, h.values)
	return out
}

// At returns the i-th oldest entry.
func (h *HistoryBuffer[T]) At(i int) T {
	return h.values[i]
}

func (h *HistoryBuffer[T]) Clear() {
	if h.onEvict != nil {
		for _, v := range h.values {
			h.onEvict(v)
		}
	}
	h.values = h.values[:0]
}
