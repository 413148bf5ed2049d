// Package collection provides an ordered, indexable container for models,
// records and scalar values with filtering, ordering and search helpers.
//
// Items are stored under integer keys. Add appends under the next free key
// and Remove deletes a key without renumbering the rest, so a collection can
// have gaps until it is reordered.
package collection

import (
	"iter"
)

// Collection is an ordered set of keyed items. The iteration cursor used by
// Rewind/Valid/Current/Key/Next belongs to the instance, so a collection must
// not be walked by two cursors at once; use All for independent loops.
type Collection struct {
	keys     []int
	data     map[int]any
	next     int
	position int
}

// New creates a collection holding items under keys 0..len(items)-1
func New(items ...any) *Collection {
	c := &Collection{
		keys: make([]int, 0, len(items)),
		data: make(map[int]any, len(items)),
	}
	for _, item := range items {
		c.Add(item)
	}
	return c
}

func (c *Collection) init() {
	if c.data == nil {
		c.data = make(map[int]any)
	}
}

// Add appends item under the next free key
func (c *Collection) Add(item any) {
	c.init()
	c.keys = append(c.keys, c.next)
	c.data[c.next] = item
	c.next++
}

// Remove deletes the item stored under index, leaving a gap
func (c *Collection) Remove(index int) {
	if _, ok := c.data[index]; !ok {
		return
	}
	delete(c.data, index)
	for i, k := range c.keys {
		if k == index {
			c.keys = append(c.keys[:i], c.keys[i+1:]...)
			break
		}
	}
}

// Count returns the number of items
func (c *Collection) Count() int {
	return len(c.keys)
}

// Rewind moves the cursor back to key 0
func (c *Collection) Rewind() {
	c.position = 0
}

// Valid reports whether an item is stored under the cursor key
func (c *Collection) Valid() bool {
	_, ok := c.data[c.position]
	return ok
}

// Current returns the item under the cursor key
func (c *Collection) Current() any {
	return c.data[c.position]
}

// Key returns the cursor key
func (c *Collection) Key() int {
	return c.position
}

// Next advances the cursor
func (c *Collection) Next() {
	c.position++
}

// All iterates over keys and items in order, independently of the cursor
func (c *Collection) All() iter.Seq2[int, any] {
	keys := c.Keys()
	return func(yield func(int, any) bool) {
		for _, k := range keys {
			v, ok := c.data[k]
			if !ok {
				continue
			}
			if !yield(k, v) {
				return
			}
		}
	}
}

// Keys returns the keys in order
func (c *Collection) Keys() []int {
	keys := make([]int, len(c.keys))
	copy(keys, c.keys)
	return keys
}

// Get returns the item stored under index
func (c *Collection) Get(index int) (any, bool) {
	v, ok := c.data[index]
	return v, ok
}

// Set stores item under index, replacing any existing item in place
func (c *Collection) Set(index int, item any) {
	c.init()
	if _, ok := c.data[index]; !ok {
		c.keys = append(c.keys, index)
		if index >= c.next {
			c.next = index + 1
		}
	}
	c.data[index] = item
}

// Exists reports whether an item is stored under index
func (c *Collection) Exists(index int) bool {
	_, ok := c.data[index]
	return ok
}

// Unset is Remove
func (c *Collection) Unset(index int) {
	c.Remove(index)
}

// Items returns the items in order
func (c *Collection) Items() []any {
	return c.ToSlice(false)
}

// ToSlice returns the items in order. With expand, models are replaced by
// their ToMap() output and nested collections by their ToSlice(false) output.
// The result is positional: after Remove, the preserved keys and their gaps
// are only visible through Keys and All.
func (c *Collection) ToSlice(expand bool) []any {
	result := make([]any, 0, len(c.keys))
	for _, k := range c.keys {
		item := c.data[k]
		if expand {
			item = flatten(item)
		}
		result = append(result, item)
	}
	return result
}

type mapper interface {
	ToMap(exclude ...string) map[string]any
}

type slicer interface {
	ToSlice(expand bool) []any
}

func flatten(item any) any {
	switch v := item.(type) {
	case mapper:
		return v.ToMap()
	case slicer:
		return v.ToSlice(false)
	default:
		return item
	}
}
