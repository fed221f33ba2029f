// Package batch splits a logical bulk write request into physical
// sub-batches that respect server size limits.
//
// Each Batch carries an indexmap.IndexMap that remembers where its items came
// from in the original request, so per-item errors reported against the
// sub-batch can later be reported against the caller's positions (see the
// result package).
//
// # Ordered and Unordered Requests
//
// Ordered requests must execute in request order. Consecutive operations of
// the same kind form a run, and each run is cut into batches at the size
// limits. Every batch therefore covers a contiguous slice of the request and
// its map stays a cheap indexmap.Range.
//
// Unordered requests may be reordered. Operations are grouped by kind
// (inserts, then updates, then deletes) and each group is cut at the limits.
// A group drawn from an interleaved request is not contiguous, so its map is
// promoted to an indexmap.Table on the first gap.
//
// # Limits
//
// Limits.MaxCount caps the number of operations per batch and
// Limits.MaxBytes caps the sum of encoded document sizes. A single document
// larger than MaxBytes can never be sent and fails the plan with
// ErrDocumentTooLarge.
//
// # Encoding
//
// Documents are measured through the Encoder interface. RawEncoder passes
// []byte and string documents through unchanged; JSONEncoder uses
// encoding/json. Wire encoding beyond that is out of scope for this package.
package batch
