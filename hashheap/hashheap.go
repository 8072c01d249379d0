package hashheap

import "cmp"

// Heap is a binary min-heap of T ordered by Value, indexed by Key.
// The zero value is not usable; create heaps with New.
type Heap[K comparable, V cmp.Ordered, T Item[K, V]] struct {
	items []T       // binary heap, root at 0
	index map[K]int // key → position in items
}

// New returns an empty heap.
func New[K comparable, V cmp.Ordered, T Item[K, V]](opts ...Option) *Heap[K, V, T] {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Heap[K, V, T]{
		items: make([]T, 0, cfg.Capacity),
		index: make(map[K]int, cfg.Capacity),
	}
}

// Len returns the number of stored items.
func (h *Heap[K, V, T]) Len() int { return len(h.items) }

// Contains reports whether an item with the given key is stored.
func (h *Heap[K, V, T]) Contains(key K) bool {
	_, ok := h.index[key]
	return ok
}

// Get returns the stored item for key.
func (h *Heap[K, V, T]) Get(key K) (T, bool) {
	i, ok := h.index[key]
	if !ok {
		var zero T
		return zero, false
	}

	return h.items[i], true
}

// Peek returns the item with the smallest value without removing it.
func (h *Heap[K, V, T]) Peek() (T, bool) {
	if len(h.items) == 0 {
		var zero T
		return zero, false
	}

	return h.items[0], true
}

// Reset removes all items, keeping allocated storage.
func (h *Heap[K, V, T]) Reset() {
	clear(h.items)
	h.items = h.items[:0]
	clear(h.index)
}

// Push inserts item. If no item with the same key is stored, the item is
// always inserted and Push returns true. Otherwise action decides:
//
//   - Keep:        nothing changes, returns false.
//   - DecreaseKey: replaces the stored item iff item.Value() is strictly
//     smaller, then sifts it toward the root.
//   - IncreaseKey: replaces the stored item iff item.Value() is strictly
//     larger, then sifts it toward the leaves.
//
// The result reports whether the heap changed.
func (h *Heap[K, V, T]) Push(action PushAction, item T) bool {
	key := item.Key()
	i, ok := h.index[key]
	if !ok {
		i = len(h.items)
		h.items = append(h.items, item)
		h.index[key] = i
		h.up(i)

		return true
	}

	switch action {
	case DecreaseKey:
		if !cmp.Less(item.Value(), h.items[i].Value()) {
			return false
		}
		h.items[i] = item
		h.up(i)
	case IncreaseKey:
		if !cmp.Less(h.items[i].Value(), item.Value()) {
			return false
		}
		h.items[i] = item
		h.down(i)
	default:
		return false
	}

	return true
}

// Pop removes and returns the item with the smallest value.
// It returns false if the heap is empty.
func (h *Heap[K, V, T]) Pop() (T, bool) {
	n := len(h.items)
	if n == 0 {
		var zero T
		return zero, false
	}

	last := n - 1
	h.swap(0, last)
	top := h.items[last]

	var zero T
	h.items[last] = zero
	h.items = h.items[:last]
	delete(h.index, top.Key())

	if last > 0 {
		h.down(0)
	}

	return top, true
}

// up moves the item at i toward the root until its parent is not larger.
func (h *Heap[K, V, T]) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !cmp.Less(h.items[i].Value(), h.items[parent].Value()) {
			return
		}
		h.swap(i, parent)
		i = parent
	}
}

// down moves the item at i toward the leaves until no child is smaller.
// On equal children the right child is taken.
func (h *Heap[K, V, T]) down(i int) {
	n := len(h.items)
	for {
		left := 2*i + 1
		if left >= n {
			return
		}
		child := left
		if right := left + 1; right < n && !cmp.Less(h.items[left].Value(), h.items[right].Value()) {
			child = right
		}
		if !cmp.Less(h.items[child].Value(), h.items[i].Value()) {
			return
		}
		h.swap(i, child)
		i = child
	}
}

// swap exchanges slots i and j and re-points both keys.
// Keys are read before the exchange and written right after it,
// so the slice and the index never disagree between calls.
func (h *Heap[K, V, T]) swap(i, j int) {
	ki, kj := h.items[i].Key(), h.items[j].Key()
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.index[ki] = j
	h.index[kj] = i
}
