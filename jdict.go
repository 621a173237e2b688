// Package jdict provides an insertion-ordered map from string keys to
// arbitrary values, extended with convenience accessors that lean heavily
// on that order: cached key/value/item views, first/last/any element
// access, positional indexing, pop-by-position helpers, ordered JSON
// serialization and optional columnar export.
package jdict

import "sort"

// Dict is an insertion-ordered string-keyed map.
//
// The key, value and item views returned by KeyList, ValueList and
// ItemList are rebuilt lazily: each carries a validity flag that every
// mutation clears, and a view is recomputed at most once between
// mutations. Stats exposes the rebuild counters.
//
// A Dict is not safe for concurrent use. Callers sharing one across
// goroutines must provide their own synchronization.
type Dict struct {
	keys  []string
	store map[string]any

	cachedKeys   []string
	cachedValues []any
	cachedItems  []Item

	keysValid   bool
	valuesValid bool
	itemsValid  bool

	stats CacheStatistics
}

// Item is a single key/value pair.
type Item struct {
	Key   string
	Value any
}

// CacheStatistics counts how many times each cached view has been rebuilt.
type CacheStatistics struct {
	KeyRebuilds   int64
	ValueRebuilds int64
	ItemRebuilds  int64
}

// New returns an empty Dict.
func New() *Dict {
	return &Dict{store: make(map[string]any)}
}

// From returns a Dict that adopts m as its backing store. The map is not
// cloned; callers that require isolation must not retain their own live
// reference to it. Go maps carry no insertion order, so the initial order
// is the sorted key order. Use FromItems for an explicit initial order.
func From(m map[string]any) *Dict {
	if m == nil {
		m = make(map[string]any)
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return &Dict{keys: keys, store: m}
}

// FromItems returns a Dict holding the given items in the given order.
// A repeated key keeps its first position and takes its last value.
func FromItems(items ...Item) *Dict {
	d := New()
	for _, it := range items {
		d.Set(it.Key, it.Value)
	}
	return d
}

// Len returns the number of entries.
func (d *Dict) Len() int { return len(d.keys) }

// invalidate clears all view caches. Every mutation path ends here.
func (d *Dict) invalidate() {
	d.keysValid = false
	d.valuesValid = false
	d.itemsValid = false
}

// Get returns the value stored under key, or a *KeyError if absent.
func (d *Dict) Get(key string) (any, error) {
	v, ok := d.store[key]
	if !ok {
		return nil, &KeyError{Key: key}
	}
	return v, nil
}

// Lookup is the comma-ok form of Get.
func (d *Dict) Lookup(key string) (any, bool) {
	v, ok := d.store[key]
	return v, ok
}

// Set stores value under key. A new key is appended to the order; an
// existing key keeps its position.
func (d *Dict) Set(key string, value any) {
	if _, ok := d.store[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.store[key] = value
	d.invalidate()
}

// Delete removes key, or returns a *KeyError if absent.
func (d *Dict) Delete(key string) error {
	if _, ok := d.store[key]; !ok {
		return &KeyError{Key: key}
	}
	delete(d.store, key)
	for i, k := range d.keys {
		if k == key {
			d.keys = append(d.keys[:i], d.keys[i+1:]...)
			break
		}
	}
	d.invalidate()
	return nil
}

// Field reads the named field. d.Field("x") is equivalent to d.Get("x");
// it exists so that field-style call sites read as such.
func (d *Dict) Field(name string) (any, error) { return d.Get(name) }

// SetField writes the named field, forwarding to Set.
func (d *Dict) SetField(name string, value any) { d.Set(name, value) }

// KeyList returns the keys in insertion order. The returned slice is
// cached until the next mutation; callers must not modify it.
func (d *Dict) KeyList() []string {
	if !d.keysValid {
		d.cachedKeys = append([]string(nil), d.keys...)
		d.keysValid = true
		d.stats.KeyRebuilds++
	}
	return d.cachedKeys
}

// ValueList returns the values in insertion order. The returned slice is
// cached until the next mutation; callers must not modify it.
func (d *Dict) ValueList() []any {
	if !d.valuesValid {
		vals := make([]any, len(d.keys))
		for i, k := range d.keys {
			vals[i] = d.store[k]
		}
		d.cachedValues = vals
		d.valuesValid = true
		d.stats.ValueRebuilds++
	}
	return d.cachedValues
}

// ItemList returns the key/value pairs in insertion order. The returned
// slice is cached until the next mutation; callers must not modify it.
func (d *Dict) ItemList() []Item {
	if !d.itemsValid {
		items := make([]Item, len(d.keys))
		for i, k := range d.keys {
			items[i] = Item{Key: k, Value: d.store[k]}
		}
		d.cachedItems = items
		d.itemsValid = true
		d.stats.ItemRebuilds++
	}
	return d.cachedItems
}

// Stats reports how often each cached view has been rebuilt.
func (d *Dict) Stats() CacheStatistics { return d.stats }

// FirstItem returns the item at position 0, or ok == false when empty.
func (d *Dict) FirstItem() (Item, bool) {
	if len(d.keys) == 0 {
		return Item{}, false
	}
	k := d.keys[0]
	return Item{Key: k, Value: d.store[k]}, true
}

// FirstKey returns the key at position 0, or ok == false when empty.
func (d *Dict) FirstKey() (string, bool) {
	if len(d.keys) == 0 {
		return "", false
	}
	return d.keys[0], true
}

// FirstValue returns the value at position 0, or ok == false when empty.
func (d *Dict) FirstValue() (any, bool) {
	if len(d.keys) == 0 {
		return nil, false
	}
	return d.store[d.keys[0]], true
}

// LastItem returns the item at the final position, or ok == false when
// empty.
func (d *Dict) LastItem() (Item, bool) {
	if len(d.keys) == 0 {
		return Item{}, false
	}
	k := d.keys[len(d.keys)-1]
	return Item{Key: k, Value: d.store[k]}, true
}

// LastKey returns the key at the final position, or ok == false when empty.
func (d *Dict) LastKey() (string, bool) {
	if len(d.keys) == 0 {
		return "", false
	}
	return d.keys[len(d.keys)-1], true
}

// LastValue returns the value at the final position, or ok == false when
// empty.
func (d *Dict) LastValue() (any, bool) {
	if len(d.keys) == 0 {
		return nil, false
	}
	return d.store[d.keys[len(d.keys)-1]], true
}

// AnyItem returns some item with no guarantee about which one. It always
// picks the first, so repeated calls between mutations are stable.
func (d *Dict) AnyItem() (Item, bool) { return d.FirstItem() }

// AnyKey returns some key with no guarantee about which one.
func (d *Dict) AnyKey() (string, bool) { return d.FirstKey() }

// AnyValue returns some value with no guarantee about which one.
func (d *Dict) AnyValue() (any, bool) { return d.FirstValue() }

// At returns the item at the given zero-based position in insertion
// order. Positions outside [0, Len) fail with an *IndexError; negative
// indices do not wrap around.
func (d *Dict) At(idx int) (Item, error) {
	if idx < 0 || idx >= len(d.keys) {
		return Item{}, &IndexError{Index: idx, Len: len(d.keys)}
	}
	k := d.keys[idx]
	return Item{Key: k, Value: d.store[k]}, nil
}

// KeyAt returns just the key from At.
func (d *Dict) KeyAt(idx int) (string, error) {
	it, err := d.At(idx)
	if err != nil {
		return "", err
	}
	return it.Key, nil
}

// ValueAt returns just the value from At.
func (d *Dict) ValueAt(idx int) (any, error) {
	it, err := d.At(idx)
	if err != nil {
		return nil, err
	}
	return it.Value, nil
}

// PopFirst removes and returns the first item. Fails with ErrEmpty on an
// empty dict, before any state changes.
func (d *Dict) PopFirst() (Item, error) {
	if len(d.keys) == 0 {
		return Item{}, ErrEmpty
	}
	return d.popAt(0), nil
}

// PopLast removes and returns the last item. Fails with ErrEmpty on an
// empty dict, before any state changes.
func (d *Dict) PopLast() (Item, error) {
	if len(d.keys) == 0 {
		return Item{}, ErrEmpty
	}
	return d.popAt(len(d.keys) - 1), nil
}

// popAt removes the entry at idx. The caller has already checked bounds.
func (d *Dict) popAt(idx int) Item {
	k := d.keys[idx]
	it := Item{Key: k, Value: d.store[k]}
	delete(d.store, k)
	d.keys = append(d.keys[:idx], d.keys[idx+1:]...)
	d.invalidate()
	return it
}

// PopFirstKey pops the first item and returns its key.
func (d *Dict) PopFirstKey() (string, error) {
	it, err := d.PopFirst()
	return it.Key, err
}

// PopFirstValue pops the first item and returns its value.
func (d *Dict) PopFirstValue() (any, error) {
	it, err := d.PopFirst()
	return it.Value, err
}

// PopLastKey pops the last item and returns its key.
func (d *Dict) PopLastKey() (string, error) {
	it, err := d.PopLast()
	return it.Key, err
}

// PopLastValue pops the last item and returns its value.
func (d *Dict) PopLastValue() (any, error) {
	it, err := d.PopLast()
	return it.Value, err
}
