package collection

import (
	"sort"
)

// Direction selects the ordering used by Order. The names are inverted:
// SortDesc, the zero value, orders keys ascending and SortAsc orders them
// descending.
type Direction int

const (
	SortDesc Direction = iota
	SortAsc
)

// String returns the string representation of the direction
func (d Direction) String() string {
	if d == SortAsc {
		return "ASC"
	}
	return "DESC"
}

// Filter returns a new collection with the items for which fn returns true,
// keeping their relative order
func (c *Collection) Filter(fn func(item any) bool) *Collection {
	result := New()
	for _, item := range c.ToSlice(false) {
		if fn(item) {
			result.Add(item)
		}
	}
	return result
}

// Slice returns items by position. Without items the length defaults to
// Count()-1, so Slice(0) leaves out the last item. Negative start and length
// count from the end.
func (c *Collection) Slice(start int, items ...int) []any {
	values := c.ToSlice(false)
	n := len(values)

	length := n - 1
	if len(items) > 0 {
		length = items[0]
	}

	if start < 0 {
		start += n
		if start < 0 {
			start = 0
		}
	}
	if start > n {
		start = n
	}

	end := start + length
	if length < 0 {
		end = n + length
	}
	if end > n {
		end = n
	}
	if end <= start {
		return []any{}
	}

	result := make([]any, end-start)
	copy(result, values[start:end])
	return result
}

// Take returns a new collection with the result of Slice(0, limit)
func (c *Collection) Take(limit int) *Collection {
	return New(c.Slice(0, limit)...)
}

// Order sorts the collection in place and renumbers keys from 0. With a
// property, items are ordered by that property's value; otherwise by the
// items themselves. The sort is stable.
func (c *Collection) Order(dir Direction, property string) *Collection {
	type entry struct {
		key  any
		item any
	}

	items := c.ToSlice(false)
	entries := make([]entry, len(items))
	for i, item := range items {
		key := item
		if property != "" {
			key, _ = field(item, property)
		}
		entries[i] = entry{key: key, item: item}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		result := compareValues(entries[i].key, entries[j].key)
		if dir == SortAsc {
			return result > 0
		}
		return result < 0
	})

	c.keys = make([]int, 0, len(entries))
	c.data = make(map[int]any, len(entries))
	c.next = 0
	for _, e := range entries {
		c.Add(e.item)
	}
	return c
}

// Contains reports whether any item loosely equals value
func (c *Collection) Contains(value any) bool {
	for _, item := range c.ToSlice(false) {
		if looseEqual(item, value) {
			return true
		}
	}
	return false
}

// Find returns the first item whose property loosely equals value. Scalar
// items are compared whole.
func (c *Collection) Find(property string, value any) (any, bool) {
	for _, item := range c.ToSlice(false) {
		if matches(item, property, value) {
			return item, true
		}
	}
	return nil, false
}

// FindAll returns every item whose property loosely equals value
func (c *Collection) FindAll(property string, value any) []any {
	result := make([]any, 0)
	for _, item := range c.ToSlice(false) {
		if matches(item, property, value) {
			result = append(result, item)
		}
	}
	return result
}

func matches(item any, property string, value any) bool {
	v, ok := field(item, property)
	return ok && looseEqual(v, value)
}
