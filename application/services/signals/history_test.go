package signals

import "testing"

func TestHistoryBufferEvictsOldestFirst(t *testing.T) {
	buf := NewHistoryBuffer[int](3)
	for i := 1; i <= 5; i++ {
		buf.Push(i)
	}

	if buf.Len() != 3 {
		t.Fatalf("expected length 3, got %d", buf.Len())
	}
	want := []int{3, 4, 5}
	for i, v := range buf.Values() {
		if v != want[i] {
			t.Errorf("values[%d] = %d, want %d", i, v, want[i])
		}
	}
}

func TestHistoryBufferEvictCallback(t *testing.T) {
	evicted := []string{}
	buf := NewHistoryBuffer[string](2)
	buf.SetEvictCallback(func(v string) { evicted = append(evicted, v) })

	buf.Push("a")
	buf.Push("b")
	buf.Push("c")
	if len(evicted) != 1 || evicted[0] != "a" {
		t.Fatalf("expected [a] evicted, got %v", evicted)
	}

	buf.Clear()
	if len(evicted) != 3 {
		t.Fatalf("expected clear to evict remaining entries, got %v", evicted)
	}
	if buf.Len() != 0 {
		t.Errorf("expected empty buffer after clear, got %d entries", buf.Len())
	}
}

func TestHistoryBufferValuesIsACopy(t *testing.T) {
	buf := NewHistoryBuffer[int](4)
	buf.Push(10)
	values := buf.Values()
	values[0] = 99
	if buf.At(0) != 10 {
		t.Errorf("mutating the returned slice changed buffer contents")
	}
}

func TestHistoryBufferMinimumCapacity(t *testing.T) {
	buf := NewHistoryBuffer[int](0)
	if buf.Capacity() != 1 {
		t.Errorf("expected capacity floor of 1, got %d", buf.Capacity())
	}
}
