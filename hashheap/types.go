package hashheap

import "cmp"

// Item is implemented by values stored in a Heap.
// Key must be unique among the items currently stored.
type Item[K comparable, V cmp.Ordered] interface {
	Key() K
	Value() V
}

// PushAction selects what Push does when an item with the same key is
// already stored.
type PushAction int

const (
	// Keep leaves the stored item untouched.
	Keep PushAction = iota

	// DecreaseKey replaces the stored item if the new value is strictly smaller.
	DecreaseKey

	// IncreaseKey replaces the stored item if the new value is strictly larger.
	IncreaseKey
)

// String returns the action name.
func (a PushAction) String() string {
	switch a {
	case Keep:
		return "keep"
	case DecreaseKey:
		return "decrease-key"
	case IncreaseKey:
		return "increase-key"
	}

	return "unknown"
}

// Options configures a Heap.
type Options struct {
	Capacity int // initial capacity of the backing slice and key index
}

// Option represents a functional option for configuring a Heap.
type Option func(*Options)

// WithCapacity pre-sizes the heap for n items. Negative values are ignored.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Capacity = n
		}
	}
}

// DefaultOptions returns the zero-capacity defaults.
func DefaultOptions() Options {
	return Options{Capacity: 0}
}
