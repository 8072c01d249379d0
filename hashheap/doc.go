// Package hashheap provides a binary min-heap that also indexes its items by
// key, so the priority of an item already in the heap can be lowered or
// raised in place.
//
// Overview:
//
//   - Items implement Item[K, V]: Key() returns a comparable identity and
//     Value() returns an ordered priority.
//   - Push inserts a new key unconditionally. For a key that is already
//     stored, the PushAction decides what happens: Keep ignores the new item,
//     DecreaseKey replaces it only if the new value is strictly smaller and
//     IncreaseKey replaces it only if the new value is strictly larger.
//   - Pop removes the item with the smallest value.
//
// This is the open set used by A* style searches: pushing a neighbour with
// DecreaseKey both inserts first arrivals and improves later ones, and the
// boolean result tells the caller whether to record a new predecessor.
//
// Complexity:
//
//   - Push: O(log n) (amortized for the backing slice growth).
//   - Pop:  O(log n).
//   - Get, Contains, Peek, Len: O(1).
//   - Space: O(n) for the slice plus O(n) for the key index.
//
// Invariants:
//
//   - For every stored item, index[item.Key()] is its position in the slice.
//   - No item's value is smaller than its parent's value.
//
// Both invariants are maintained by a single swap helper that updates the
// slice and the index in the same step.
//
// Thread safety:
//
//   - A Heap is not safe for concurrent use. Synchronize externally.
package hashheap
