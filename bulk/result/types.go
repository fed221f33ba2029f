package result

import (
	"fmt"
	"strings"
)

// WriteError is a per-item failure. In a BatchResult Index is local to the
// batch; in a BulkResult it is the original request position.
type WriteError struct {
	Index   int    `json:"index"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// WriteConcernError reports that the write concern could not be satisfied.
type WriteConcernError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// BatchResult is the reply to one batch.
type BatchResult struct {
	// N is the number of operations the server applied.
	N int `json:"n"`

	WriteErrors       []WriteError       `json:"writeErrors,omitempty"`
	WriteConcernError *WriteConcernError `json:"writeConcernError,omitempty"`
}

// BulkResult is the merged outcome of every batch of a request.
type BulkResult struct {
	Inserted int `json:"inserted"`
	Updated  int `json:"updated"`
	Deleted  int `json:"deleted"`

	// Batches is the number of batch replies merged.
	Batches int `json:"batches"`

	// WriteErrors are sorted by original index.
	WriteErrors []WriteError `json:"writeErrors,omitempty"`

	// WriteConcernErrors holds one entry per batch that reported one.
	WriteConcernErrors []WriteConcernError `json:"writeConcernErrors,omitempty"`
}

// HasErrors reports whether any write or write concern error was recorded.
func (r BulkResult) HasErrors() bool {
	return len(r.WriteErrors) > 0 || len(r.WriteConcernErrors) > 0
}

// BulkWriteError is returned when a bulk write completed with errors.
type BulkWriteError struct {
	Result BulkResult
}

func (e *BulkWriteError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "bulk write: %d write error(s)", len(e.Result.WriteErrors))
	if n := len(e.Result.WriteConcernErrors); n > 0 {
		fmt.Fprintf(&sb, ", %d write concern error(s)", n)
	}
	if len(e.Result.WriteErrors) > 0 {
		first := e.Result.WriteErrors[0]
		fmt.Fprintf(&sb, "; first at index %d: %s (code %d)", first.Index, first.Message, first.Code)
	}
	return sb.String()
}
