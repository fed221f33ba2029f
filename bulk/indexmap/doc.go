// Package indexmap maps positions inside a physical sub-batch back to
// positions in the caller's original, unsplit request.
//
// # Overview
//
// A bulk write is often too large to send in one message, so it is split into
// several sub-batches. Replies from the server report per-item errors by their
// position inside the sub-batch (the local index). Before those errors reach
// the caller they must be translated back to the position of the item in the
// request the caller actually built (the original index). An IndexMap records
// that translation for one sub-batch.
//
// # Representations
//
// Range: a single contiguous block of original indices (RECOMMENDED DEFAULT)
//   - Local index i maps to start+i
//   - O(1) memory, O(1) Add when indices arrive in increasing contiguous order
//   - Map fails with ErrOutOfRange outside [0, count)
//
// Table: an explicit map from local index to original index
//   - Used once an Add breaks contiguity
//   - O(n) memory, O(1) average lookup
//   - Map fails with ErrMappingNotFound for a local index never added
//
// Every map starts as a Range. The first non-contiguous Add copies the current
// block into a new Table and returns it. A Table never turns back into a
// Range.
//
// # Usage Example
//
// Always keep the value returned by Add:
//
//	m := indexmap.New()
//	for local, orig := range originals {
//	    m = m.Add(local, orig)
//	}
//
//	orig, err := m.Map(reportedIndex)
//	if err != nil {
//	    return err // bookkeeping bug: index was never registered
//	}
//
// For a contiguous slice of the request:
//
//	m, err := indexmap.NewRange(offset, len(slice))
//
// # Preconditions
//
// The first Add on an empty Range ignores its local index and is treated as
// local index 0. Callers must add local indices starting at 0 in increasing
// order. Adding the same local index twice to a Table overwrites the earlier
// mapping.
//
// # Thread Safety
//
// IndexMap instances are not thread-safe. All Add calls must come from a single
// owner. Once adds are finished, Map may be called from any number of
// goroutines because lookups never mutate state.
package indexmap
