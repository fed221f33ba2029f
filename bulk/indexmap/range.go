package indexmap

import "fmt"

// Range maps local index i to start+i for 0 <= i < count.
//
// The zero value is an empty map ready for use.
type Range struct {
	start int
	count int
}

// Add implements IndexMap.
//
// On an empty Range the local index is ignored and the pair is recorded as
// 0 -> originalIndex. When originalIndex continues the block the Range grows in
// place. Otherwise the block is copied into a new Table that also holds the
// new pair, and that Table is returned; the receiver is left unchanged.
func (r *Range) Add(index, originalIndex int) IndexMap {
	switch {
	case r.count == 0:
		r.start = originalIndex
		r.count = 1
		return r
	case originalIndex == r.start+r.count:
		r.count++
		return r
	default:
		t := newTable(r.start, r.count, r.count+1)
		return t.Add(index, originalIndex)
	}
}

// Map implements IndexMap.
func (r *Range) Map(index int) (int, error) {
	if index < 0 {
		return 0, fmt.Errorf("%w: index %d is negative", ErrOutOfRange, index)
	}
	if index >= r.count {
		return 0, fmt.Errorf("%w: index %d >= count %d", ErrOutOfRange, index, r.count)
	}
	return r.start + index, nil
}

// Len implements IndexMap.
func (r *Range) Len() int { return r.count }

// Kind implements IndexMap.
func (r *Range) Kind() Kind { return KindRange }

// Bounds returns the first original index and the number of mappings.
// start is meaningless while count is 0.
func (r *Range) Bounds() (start, count int) {
	return r.start, r.count
}

func (r *Range) sealed() {}
