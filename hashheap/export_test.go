package hashheap

import "fmt"

// Validate checks that the key index matches slice positions and that the
// min-heap property holds. Exposed to tests only.
func (h *Heap[K, V, T]) Validate() error {
	if len(h.index) != len(h.items) {
		return fmt.Errorf("index has %d keys, heap has %d items", len(h.index), len(h.items))
	}
	for i, it := range h.items {
		j, ok := h.index[it.Key()]
		if !ok {
			return fmt.Errorf("item at %d (key %v) missing from index", i, it.Key())
		}
		if j != i {
			return fmt.Errorf("key %v indexed at %d, stored at %d", it.Key(), j, i)
		}
		if i > 0 {
			parent := (i - 1) / 2
			if it.Value() < h.items[parent].Value() {
				return fmt.Errorf("item at %d (%v) smaller than parent at %d (%v)",
					i, it.Value(), parent, h.items[parent].Value())
			}
		}
	}

	return nil
}
