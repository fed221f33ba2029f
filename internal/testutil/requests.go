package testutil

import (
	"fmt"

	"github.com/joshuapare/bulkwrite/bulk/batch"
)

// Doc returns a string document of exactly size bytes tagged with i.
func Doc(i, size int) string {
	s := fmt.Sprintf("doc-%d:", i)
	for len(s) < size {
		s += "x"
	}
	return s[:size]
}

// InsertRequest returns a request of n insert ops with size-byte documents.
//
// Example:
//
//	req := testutil.InsertRequest(true, 10, 16)
func InsertRequest(ordered bool, n, size int) *batch.Request {
	req := batch.NewRequest(ordered)
	for i := 0; i < n; i++ {
		req.AddInsert(Doc(i, size))
	}
	return req
}

// KindsRequest returns a request with one op per character of pattern:
// 'i' insert, 'u' update, 'd' delete. Documents are 8 bytes.
//
// Example:
//
//	req := testutil.KindsRequest(false, "iuiud") // inserts at 0, 2
func KindsRequest(ordered bool, pattern string) *batch.Request {
	req := batch.NewRequest(ordered)
	for i, c := range pattern {
		doc := Doc(i, 8)
		switch c {
		case 'i':
			req.AddInsert(doc)
		case 'u':
			req.AddUpdate(doc)
		case 'd':
			req.AddDelete(doc)
		default:
			panic(fmt.Sprintf("testutil: bad op pattern char %q", c))
		}
	}
	return req
}
