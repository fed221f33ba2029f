package indexmap

import "fmt"

// Kind identifies the representation backing an IndexMap.
type Kind uint8

const (
	// KindRange is the contiguous start+i representation.
	KindRange Kind = iota
	// KindTable is the explicit per-index representation.
	KindTable
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindRange:
		return "Range"
	case KindTable:
		return "Table"
	default:
		return "Unknown"
	}
}

// IndexMap translates local sub-batch indices to original request indices.
// Range and Table are the only implementations.
type IndexMap interface {
	// Add records index -> originalIndex and returns the map to use from now
	// on. The returned map may be a different instance than the receiver.
	Add(index, originalIndex int) IndexMap

	// Map returns the original index recorded for index.
	Map(index int) (int, error)

	// Len returns the number of recorded mappings.
	Len() int

	// Kind reports which representation backs the map.
	Kind() Kind

	sealed()
}

// New creates an empty index map.
func New() IndexMap {
	return &Range{}
}

// NewRange creates an index map that maps 0..count-1 to
// startIndex..startIndex+count-1.
func NewRange(startIndex, count int) (IndexMap, error) {
	if err := checkBounds(startIndex, count); err != nil {
		return nil, err
	}
	return &Range{start: startIndex, count: count}, nil
}

func checkBounds(startIndex, count int) error {
	if startIndex < 0 {
		return fmt.Errorf("%w: start index %d is negative", ErrInvalidArgument, startIndex)
	}
	if count < 0 {
		return fmt.Errorf("%w: count %d is negative", ErrInvalidArgument, count)
	}
	return nil
}
