package jdict

import "iter"

// Range yields the positions 0 .. Len()-1 in ascending order. The
// sequence is restartable and reads the length at iteration time, so it
// always reflects the current state of the dict.
func (d *Dict) Range() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < len(d.keys); i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// EnumKeys yields (position, key) pairs in insertion order. Like Range,
// the sequence is restartable and reflects live order, not a cache.
func (d *Dict) EnumKeys() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i, k := range d.keys {
			if !yield(i, k) {
				return
			}
		}
	}
}

// EnumValues yields (position, value) pairs in insertion order.
func (d *Dict) EnumValues() iter.Seq2[int, any] {
	return func(yield func(int, any) bool) {
		for i, k := range d.keys {
			if !yield(i, d.store[k]) {
				return
			}
		}
	}
}

// EnumItems yields (position, item) pairs in insertion order.
func (d *Dict) EnumItems() iter.Seq2[int, Item] {
	return func(yield func(int, Item) bool) {
		for i, k := range d.keys {
			if !yield(i, Item{Key: k, Value: d.store[k]}) {
				return
			}
		}
	}
}
