package result

import (
	"fmt"
	"sort"

	"github.com/joshuapare/bulkwrite/bulk/batch"
)

// Collector accumulates batch replies. It is not safe for concurrent use.
type Collector struct {
	ordered bool
	stopped bool
	res     BulkResult
}

// NewCollector creates a Collector. In ordered mode Continue reports false
// once any batch has reported a write error.
func NewCollector(ordered bool) *Collector {
	return &Collector{ordered: ordered}
}

// Add merges the reply r to batch b.
//
// Every write error index is translated from b's local positions to original
// request positions. If any translation fails nothing from r is recorded.
func (c *Collector) Add(b *batch.Batch, r BatchResult) error {
	if b == nil || b.Indexes == nil {
		return ErrNoIndexMap
	}

	mapped := make([]WriteError, len(r.WriteErrors))
	for i, we := range r.WriteErrors {
		orig, err := b.Indexes.Map(we.Index)
		if err != nil {
			return fmt.Errorf("result: batch %d write error %d: %w", b.Seq, i, err)
		}
		mapped[i] = WriteError{Index: orig, Code: we.Code, Message: we.Message}
	}

	switch b.Kind {
	case batch.OpInsert:
		c.res.Inserted += r.N
	case batch.OpUpdate:
		c.res.Updated += r.N
	case batch.OpDelete:
		c.res.Deleted += r.N
	}
	c.res.Batches++
	c.res.WriteErrors = append(c.res.WriteErrors, mapped...)
	if r.WriteConcernError != nil {
		c.res.WriteConcernErrors = append(c.res.WriteConcernErrors, *r.WriteConcernError)
	}
	if c.ordered && len(mapped) > 0 {
		c.stopped = true
	}
	return nil
}

// Continue reports whether further batches should be sent.
func (c *Collector) Continue() bool {
	return !c.stopped
}

// Result returns the merged result. Write errors are sorted by original index.
func (c *Collector) Result() BulkResult {
	out := c.res
	out.WriteErrors = append([]WriteError(nil), c.res.WriteErrors...)
	sort.SliceStable(out.WriteErrors, func(i, j int) bool {
		return out.WriteErrors[i].Index < out.WriteErrors[j].Index
	})
	out.WriteConcernErrors = append([]WriteConcernError(nil), c.res.WriteConcernErrors...)
	return out
}

// Err returns a *BulkWriteError if any errors were recorded, nil otherwise.
func (c *Collector) Err() error {
	if !c.res.HasErrors() {
		return nil
	}
	return &BulkWriteError{Result: c.Result()}
}
