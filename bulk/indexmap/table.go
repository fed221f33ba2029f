package indexmap

import "fmt"

// Table is an explicit local index -> original index map.
//
// Adding a local index that is already present replaces its mapping.
type Table struct {
	entries map[int]int
}

// NewTable creates a Table seeded with 0..count-1 -> startIndex..startIndex+count-1.
func NewTable(startIndex, count int) (*Table, error) {
	if err := checkBounds(startIndex, count); err != nil {
		return nil, err
	}
	return newTable(startIndex, count, count), nil
}

func newTable(startIndex, count, capHint int) *Table {
	t := &Table{entries: make(map[int]int, capHint)}
	for i := startIndex; i < startIndex+count; i++ {
		t.entries[i-startIndex] = i
	}
	return t
}

// Add implements IndexMap. It always returns t.
func (t *Table) Add(index, originalIndex int) IndexMap {
	if t.entries == nil {
		t.entries = make(map[int]int)
	}
	t.entries[index] = originalIndex
	return t
}

// Map implements IndexMap.
func (t *Table) Map(index int) (int, error) {
	orig, ok := t.entries[index]
	if !ok {
		return 0, fmt.Errorf("%w for index %d", ErrMappingNotFound, index)
	}
	return orig, nil
}

// Len implements IndexMap.
func (t *Table) Len() int { return len(t.entries) }

// Kind implements IndexMap.
func (t *Table) Kind() Kind { return KindTable }

func (t *Table) sealed() {}
